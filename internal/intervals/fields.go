package intervals

// Fields is a raw provider record. intervals.icu payloads are sparse and
// field names drift between schema versions (the same concept can appear
// with or without an icu_ prefix), so records stay maps and callers read
// them through ordered-candidate accessors: the first present key wins.
type Fields map[string]any

// Activity is one training session record.
type Activity = Fields

// Profile is the athlete profile record.
type Profile = Fields

// WellnessEntry is one dated wellness record.
type WellnessEntry = Fields

// TrendPoint is one daily fitness-trend record.
type TrendPoint = Fields

// Has reports whether any of the candidate keys is present, even with a
// null value.
func (f Fields) Has(keys ...string) bool {
	for _, k := range keys {
		if _, ok := f[k]; ok {
			return true
		}
	}
	return false
}

// Number returns the first candidate key holding a numeric value.
func (f Fields) Number(keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := asNumber(f[k]); ok {
			return v, true
		}
	}
	return 0, false
}

// Text returns the first candidate key holding a non-empty string.
func (f Fields) Text(keys ...string) (string, bool) {
	for _, k := range keys {
		if s, ok := f[k].(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// NumberSlice returns the first candidate key holding a numeric array,
// such as per-zone time breakdowns.
func (f Fields) NumberSlice(keys ...string) ([]float64, bool) {
	for _, k := range keys {
		raw, ok := f[k].([]any)
		if !ok {
			continue
		}
		out := make([]float64, 0, len(raw))
		for _, item := range raw {
			n, ok := asNumber(item)
			if !ok {
				continue
			}
			out = append(out, n)
		}
		return out, true
	}
	return nil, false
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
