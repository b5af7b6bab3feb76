// Package report renders training data into the bounded text context
// handed to the language model.
package report

import (
	"fmt"
	"strconv"
	"strings"
)

// NotAvailable is the sentinel rendered for metrics a template shows but
// the record does not carry a usable value for.
const NotAvailable = "N/A"

// Duration renders whole seconds as "1h 5m 3s", dropping the hours
// component when zero and the minutes component only when both hours and
// minutes are zero.
func Duration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// Distance renders meters as kilometers at two decimals. Zero or negative
// meters means the session had no meaningful distance, so it renders as
// N/A rather than "0.00 km".
func Distance(meters float64) string {
	if meters <= 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f km", meters/1000)
}

// Number renders a value at fixed decimal precision.
func Number(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// Signed renders a value at fixed precision with an explicit +/- sign.
func Signed(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if !strings.HasPrefix(s, "-") {
		return "+" + s
	}
	return s
}

// ZoneTimes renders per-zone seconds as pipe-joined "Zn: {duration}"
// entries. The zone label list is fixed at Z1..Z7 and aligned positionally
// with the input; zones with zero or absent time are omitted. Returns N/A
// when no zone has time.
func ZoneTimes(seconds []float64) string {
	var parts []string
	for i, sec := range seconds {
		if i >= 7 {
			break
		}
		if sec <= 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("Z%d: %s", i+1, Duration(int(sec))))
	}
	if len(parts) == 0 {
		return NotAvailable
	}
	return strings.Join(parts, " | ")
}

// Value renders an arbitrary scalar from a sparse record, used for
// wellness entries whose keys vary by entry. Floats drop trailing zeros.
func Value(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, x != ""
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case bool:
		return strconv.FormatBool(x), true
	}
	return "", false
}
