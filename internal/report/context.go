package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vivek-dodia/fast/internal/intervals"
)

// Options bounds the rendered context. Caps are hard entry counts, not
// byte budgets.
type Options struct {
	DetailCap   int // per-activity detail entries
	WellnessCap int // most recent wellness entries
	TrendCap    int // most recent fitness-trend points
}

// ScopedOptions is used when a query narrowed the activity set.
func ScopedOptions() Options {
	return Options{DetailCap: 10, WellnessCap: 7, TrendCap: 14}
}

// FullOptions is used for whole-window questions.
func FullOptions() Options {
	return Options{DetailCap: 25, WellnessCap: 7, TrendCap: 14}
}

// metricRule declares one numeric line of a profile section: where the
// value may live, and how to render it. Rules are applied in declared
// order; a rule whose keys are all absent renders nothing, a rule whose
// key is present but unusable renders N/A.
type metricRule struct {
	label    string
	keys     []string
	decimals int
	unit     string
}

var physicalRules = []metricRule{
	{"Weight", keysWeight, 1, " kg"},
	{"Height", keysHeight, 2, " m"},
	{"Resting HR", keysRestingHR, 0, " bpm"},
	{"Max HR", keysMaxHR, 0, " bpm"},
}

var fitnessRules = []metricRule{
	{"Fitness (CTL)", keysFitness, 1, ""},
	{"Fatigue (ATL)", keysFatigue, 1, ""},
}

var rampRule = metricRule{"Ramp Rate", keysRampRate, 1, ""}

var thresholdRules = []metricRule{
	{"Cycling FTP", keysFTP, 0, " watts"},
	{"FTP per kg", keysFTPPerKg, 2, " w/kg"},
	{"Run Threshold Pace", keysPace, 2, ""},
	{"LTHR", keysLTHR, 0, " bpm"},
}

// Format renders the full analysis context. It is a pure function of its
// inputs: identical inputs produce byte-identical output.
func Format(
	profile intervals.Profile,
	activities []intervals.Activity,
	wellness []intervals.WellnessEntry,
	scopeDesc string,
	dateRange intervals.DateRange,
	trend []intervals.TrendPoint,
	opts Options,
) string {
	var b strings.Builder

	b.WriteString("# Training Data Analysis Context\n\n")
	b.WriteString("## Scope\n")
	fmt.Fprintf(&b, "Analyzing: %s\n", scopeDesc)
	fmt.Fprintf(&b, "Data window: %s to %s (%d days)\n", dateRange.Start, dateRange.End, dateRange.Days)

	writeProfile(&b, profile)
	writeTrend(&b, trend, opts.TrendCap)
	writeActivities(&b, activities, opts.DetailCap)
	writeWellness(&b, wellness, opts.WellnessCap)

	return b.String()
}

func writeProfile(b *strings.Builder, profile intervals.Profile) {
	b.WriteString("\n## Athlete Profile\n")
	if name, ok := profile.Text(keysName...); ok {
		fmt.Fprintf(b, "- Name: %s\n", name)
	}
	writeMetrics(b, profile, physicalRules)
	writeMetrics(b, profile, fitnessRules)

	// Training Stress Balance is derived, not stored: fitness minus
	// fatigue, only when both inputs are present.
	ctl, haveCTL := profile.Number(keysFitness...)
	atl, haveATL := profile.Number(keysFatigue...)
	if haveCTL && haveATL {
		fmt.Fprintf(b, "- Form (TSB): %s\n", Signed(ctl-atl, 1))
	}
	writeMetrics(b, profile, []metricRule{rampRule})
	writeMetrics(b, profile, thresholdRules)
}

func writeMetrics(b *strings.Builder, f intervals.Fields, rules []metricRule) {
	for _, r := range rules {
		if !f.Has(r.keys...) {
			continue
		}
		v, ok := f.Number(r.keys...)
		if !ok {
			fmt.Fprintf(b, "- %s: %s\n", r.label, NotAvailable)
			continue
		}
		fmt.Fprintf(b, "- %s: %s%s\n", r.label, Number(v, r.decimals), r.unit)
	}
}

func writeTrend(b *strings.Builder, trend []intervals.TrendPoint, limit int) {
	if len(trend) == 0 {
		return
	}
	if len(trend) > limit {
		trend = trend[len(trend)-limit:]
	}
	b.WriteString("\n## Fitness Trend\n")
	for _, point := range trend {
		date, _ := point.Text(keysTrendDate...)
		if date == "" {
			continue
		}
		ctl, haveCTL := point.Number(keysFitness...)
		atl, haveATL := point.Number(keysFatigue...)
		var parts []string
		if haveCTL {
			parts = append(parts, "CTL "+Number(ctl, 1))
		}
		if haveATL {
			parts = append(parts, "ATL "+Number(atl, 1))
		}
		if haveCTL && haveATL {
			parts = append(parts, "TSB "+Signed(ctl-atl, 1))
		}
		if len(parts) == 0 {
			continue
		}
		fmt.Fprintf(b, "- %s: %s\n", date, strings.Join(parts, ", "))
	}
}

// typeGroup is the per-type rollup, keyed by the activity's raw type in
// insertion order of first occurrence.
type typeGroup struct {
	name     string
	count    int
	distance float64
	seconds  float64
	load     float64
}

func writeActivities(b *strings.Builder, activities []intervals.Activity, detailCap int) {
	b.WriteString("\n## Activities Summary\n")
	fmt.Fprintf(b, "Total activities in scope: %d\n", len(activities))
	if len(activities) == 0 {
		return
	}

	var groups []*typeGroup
	index := map[string]*typeGroup{}
	for _, a := range activities {
		typ, ok := a.Text(keysActivityType...)
		if !ok {
			typ = "Unknown"
		}
		g, seen := index[typ]
		if !seen {
			g = &typeGroup{name: typ}
			index[typ] = g
			groups = append(groups, g)
		}
		g.count++
		if v, ok := a.Number(keysDistance...); ok {
			g.distance += v
		}
		if v, ok := a.Number(keysMovingTime...); ok {
			g.seconds += v
		}
		if v, ok := a.Number(keysLoad...); ok {
			g.load += v
		}
	}

	b.WriteString("\n### By Type\n")
	for _, g := range groups {
		fmt.Fprintf(b, "- %s: %d activities, %s, %s, load %s\n",
			g.name, g.count, Distance(g.distance), Duration(int(g.seconds)), Number(g.load, 0))
	}

	b.WriteString("\n### Activity Details\n")
	for i, a := range activities {
		if i >= detailCap {
			break
		}
		writeActivityDetail(b, i+1, a)
	}
}

// detailRule renders one optional line of an activity's detail block.
// Rules run in declared order; a rule returning ok=false renders nothing.
type detailRule func(a intervals.Activity) (string, bool)

var activityDetailRules = []detailRule{
	func(a intervals.Activity) (string, bool) {
		if !a.Has(keysDistance...) {
			return "", false
		}
		v, _ := a.Number(keysDistance...)
		return "Distance: " + Distance(v), true
	},
	func(a intervals.Activity) (string, bool) {
		v, ok := a.Number(keysMovingTime...)
		if !ok {
			return "", false
		}
		return "Duration: " + Duration(int(v)), true
	},
	func(a intervals.Activity) (string, bool) {
		avg, ok := a.Number(keysAvgHR...)
		if !ok {
			return "", false
		}
		line := fmt.Sprintf("Avg HR: %s bpm", Number(avg, 0))
		if max, ok := a.Number(keysActMaxHR...); ok {
			line += fmt.Sprintf(" (Max: %s bpm)", Number(max, 0))
		}
		return line, true
	},
	func(a intervals.Activity) (string, bool) {
		avg, ok := a.Number(keysAvgWatts...)
		if !ok {
			return "", false
		}
		line := fmt.Sprintf("Avg Power: %s watts", Number(avg, 0))
		if max, ok := a.Number(keysMaxWatts...); ok {
			line += fmt.Sprintf(" (Max: %s watts)", Number(max, 0))
		}
		return line, true
	},
	func(a intervals.Activity) (string, bool) {
		v, ok := a.Number(keysNormWatts...)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("Normalized Power: %s watts", Number(v, 0)), true
	},
	func(a intervals.Activity) (string, bool) {
		v, ok := a.Number(keysCadence...)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("Cadence: %s rpm", Number(v, 0)), true
	},
	func(a intervals.Activity) (string, bool) {
		v, ok := a.Number(keysRPE...)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("RPE: %s/10", Number(v, 0)), true
	},
	func(a intervals.Activity) (string, bool) {
		v, ok := a.Number(keysLoad...)
		if !ok {
			return "", false
		}
		return "Training Load: " + Number(v, 0), true
	},
	func(a intervals.Activity) (string, bool) {
		v, ok := a.Number(keysIntensity...)
		if !ok {
			return "", false
		}
		return "Intensity: " + Number(v, 0), true
	},
	func(a intervals.Activity) (string, bool) {
		v, ok := a.Number(keysDecoupling...)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("Decoupling: %s%%", Number(v, 2)), true
	},
	func(a intervals.Activity) (string, bool) {
		v, ok := a.Number(keysEfficiency...)
		if !ok {
			return "", false
		}
		return "Efficiency Factor: " + Number(v, 2), true
	},
	func(a intervals.Activity) (string, bool) {
		if !a.Has(keysHRZoneTimes...) {
			return "", false
		}
		zones, ok := a.NumberSlice(keysHRZoneTimes...)
		if !ok {
			return "HR Zones: " + NotAvailable, true
		}
		return "HR Zones: " + ZoneTimes(zones), true
	},
	func(a intervals.Activity) (string, bool) {
		v, ok := a.Number(keysWeatherTemp...)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("Weather: %s°C", Number(v, 0)), true
	},
	func(a intervals.Activity) (string, bool) {
		v, ok := a.Text(keysDevice...)
		if !ok {
			return "", false
		}
		return "Device: " + v, true
	},
}

func writeActivityDetail(b *strings.Builder, position int, a intervals.Activity) {
	name, ok := a.Text(keysName...)
	if !ok {
		name = "Unnamed"
	}
	typ, ok := a.Text(keysActivityType...)
	if !ok {
		typ = "Unknown"
	}
	day := "unknown date"
	if ts, ok := a.Text(keysStartLocal...); ok && len(ts) >= 10 {
		day = ts[:10]
	}

	fmt.Fprintf(b, "\n%d. **%s** (%s) - %s\n", position, name, typ, day)
	for _, rule := range activityDetailRules {
		if line, ok := rule(a); ok {
			fmt.Fprintf(b, "   - %s\n", line)
		}
	}
}

func writeWellness(b *strings.Builder, wellness []intervals.WellnessEntry, limit int) {
	if len(wellness) == 0 {
		return
	}
	// wellness.json arrives date-ascending; keep the most recent entries
	// and render newest first.
	if len(wellness) > limit {
		wellness = wellness[len(wellness)-limit:]
	}

	b.WriteString("\n## Wellness\n")
	for i := len(wellness) - 1; i >= 0; i-- {
		entry := wellness[i]
		label, _ := entry.Text(keysTrendDate...)
		if label == "" {
			label = "unknown date"
		}

		keys := make([]string, 0, len(entry))
		for k := range entry {
			if wellnessIDKeys[k] {
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var parts []string
		for _, k := range keys {
			if v, ok := Value(entry[k]); ok {
				parts = append(parts, k+": "+v)
			}
		}
		if len(parts) == 0 {
			fmt.Fprintf(b, "- %s: No data\n", label)
			continue
		}
		fmt.Fprintf(b, "- %s: %s\n", label, strings.Join(parts, ", "))
	}
}
