package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vivek-dodia/fast/internal/intervals"
)

var testRange = intervals.DateRange{Start: "2025-09-26", End: "2025-10-26", Days: 30}

func runActivity() intervals.Activity {
	return intervals.Activity{
		"id":                "act1",
		"name":              "Morning Run",
		"type":              "Run",
		"start_date_local":  "2025-10-26T08:00:00",
		"distance":          5000.0,
		"moving_time":       1800.0,
		"average_heartrate": 150.0,
		"icu_training_load": 45.0,
	}
}

func TestFormatScenario(t *testing.T) {
	profile := intervals.Profile{"name": "Test Athlete", "ctl": 40.0, "atl": 35.0}
	got := Format(profile, []intervals.Activity{runActivity()}, nil, "today's run", testRange, nil, ScopedOptions())

	for _, want := range []string{
		"Analyzing: today's run",
		"Data window: 2025-09-26 to 2025-10-26 (30 days)",
		"- Name: Test Athlete",
		"- Fitness (CTL): 40.0",
		"- Fatigue (ATL): 35.0",
		"- Form (TSB): +5.0",
		"Total activities in scope: 1",
		"1. **Morning Run** (Run) - 2025-10-26",
		"Distance: 5.00 km",
		"Duration: 30m 0s",
		"Avg HR: 150 bpm",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("context missing %q\n---\n%s", want, got)
		}
	}

	if n := strings.Count(got, "**Morning Run**"); n != 1 {
		t.Errorf("activity rendered %d times, want 1", n)
	}
}

func TestFormatIsDeterministic(t *testing.T) {
	profile := intervals.Profile{"name": "A", "ctl": 40.0, "atl": 42.5}
	activities := []intervals.Activity{runActivity()}
	wellness := []intervals.WellnessEntry{
		{"id": "2025-10-25", "restingHR": 52.0, "hrv": 80.0, "sleepSecs": 28800.0},
	}
	trend := []intervals.TrendPoint{{"id": "2025-10-25", "ctl": 40.0, "atl": 42.5}}

	first := Format(profile, activities, wellness, "all activities", testRange, trend, FullOptions())
	for i := 0; i < 20; i++ {
		again := Format(profile, activities, wellness, "all activities", testRange, trend, FullOptions())
		if again != first {
			t.Fatal("identical inputs produced different output")
		}
	}
}

func TestFormatTSB(t *testing.T) {
	t.Run("positive", func(t *testing.T) {
		got := Format(intervals.Profile{"ctl": 40.0, "atl": 35.0}, nil, nil, "all activities", testRange, nil, ScopedOptions())
		if !strings.Contains(got, "- Form (TSB): +5.0") {
			t.Errorf("missing +5.0 TSB line:\n%s", got)
		}
	})

	t.Run("negative", func(t *testing.T) {
		got := Format(intervals.Profile{"ctl": 30.0, "atl": 35.0}, nil, nil, "all activities", testRange, nil, ScopedOptions())
		if !strings.Contains(got, "- Form (TSB): -5.0") {
			t.Errorf("missing -5.0 TSB line:\n%s", got)
		}
	})

	t.Run("absent input renders no line", func(t *testing.T) {
		got := Format(intervals.Profile{"ctl": 30.0}, nil, nil, "all activities", testRange, nil, ScopedOptions())
		if strings.Contains(got, "TSB") {
			t.Errorf("unexpected TSB line:\n%s", got)
		}
	})
}

func TestFormatAliasedKeys(t *testing.T) {
	a := runActivity()
	delete(a, "average_heartrate")
	a["average_hr"] = 142.0
	a["training_load"] = 50.0
	delete(a, "icu_training_load")

	got := Format(nil, []intervals.Activity{a}, nil, "today's run", testRange, nil, ScopedOptions())
	if !strings.Contains(got, "Avg HR: 142 bpm") {
		t.Errorf("aliased HR key not read:\n%s", got)
	}
	if !strings.Contains(got, "Training Load: 50") {
		t.Errorf("aliased load key not read:\n%s", got)
	}
}

func TestFormatPresentButNullRendersNA(t *testing.T) {
	got := Format(intervals.Profile{"icu_ftp": nil}, nil, nil, "all activities", testRange, nil, ScopedOptions())
	if !strings.Contains(got, "- Cycling FTP: N/A") {
		t.Errorf("null FTP should render N/A:\n%s", got)
	}
}

func TestFormatOmitsAbsentConcepts(t *testing.T) {
	got := Format(nil, []intervals.Activity{runActivity()}, nil, "today's run", testRange, nil, ScopedOptions())
	for _, absent := range []string{"Avg Power", "Cycling FTP", "Weight", "Device"} {
		if strings.Contains(got, absent) {
			t.Errorf("line %q rendered without source data:\n%s", absent, got)
		}
	}
}

func TestFormatEmptyActivitySet(t *testing.T) {
	got := Format(nil, nil, nil, "today's activities", testRange, nil, ScopedOptions())
	if !strings.Contains(got, "Total activities in scope: 0") {
		t.Errorf("missing zero-count summary:\n%s", got)
	}
	if strings.Contains(got, "### Activity Details") {
		t.Errorf("detail section rendered for empty set:\n%s", got)
	}
}

func TestFormatGroupsByTypeInFirstSeenOrder(t *testing.T) {
	activities := []intervals.Activity{
		{"type": "Run", "distance": 5000.0, "moving_time": 1800.0, "icu_training_load": 45.0},
		{"type": "Ride", "distance": 20000.0, "moving_time": 3600.0, "icu_training_load": 60.0},
		{"type": "Run", "distance": 6000.0, "moving_time": 2100.0, "icu_training_load": 50.0},
	}
	got := Format(nil, activities, nil, "all activities", testRange, nil, FullOptions())

	runLine := "- Run: 2 activities, 11.00 km, 1h 5m 0s, load 95"
	rideLine := "- Ride: 1 activities, 20.00 km, 1h 0m 0s, load 60"
	if !strings.Contains(got, runLine) {
		t.Errorf("missing rollup %q:\n%s", runLine, got)
	}
	if !strings.Contains(got, rideLine) {
		t.Errorf("missing rollup %q:\n%s", rideLine, got)
	}
	if strings.Index(got, runLine) > strings.Index(got, rideLine) {
		t.Error("rollup not in first-seen order")
	}
}

func TestFormatDetailCap(t *testing.T) {
	var activities []intervals.Activity
	for i := 0; i < 40; i++ {
		a := runActivity()
		a["name"] = fmt.Sprintf("Session %d", i)
		activities = append(activities, a)
	}

	got := Format(nil, activities, nil, "all activities", testRange, nil, Options{DetailCap: 3, WellnessCap: 7, TrendCap: 14})
	if !strings.Contains(got, "Total activities in scope: 40") {
		t.Errorf("summary should count all activities:\n%s", got)
	}
	if n := strings.Count(got, "**Session"); n != 3 {
		t.Errorf("got %d detail entries, want 3", n)
	}
}

func TestFormatHRZones(t *testing.T) {
	a := runActivity()
	a["icu_hr_zone_times"] = []any{300.0, 1200.0, 0.0, 0.0, 0.0, 0.0, 0.0}
	got := Format(nil, []intervals.Activity{a}, nil, "today's run", testRange, nil, ScopedOptions())
	if !strings.Contains(got, "HR Zones: Z1: 5m 0s | Z2: 20m 0s") {
		t.Errorf("missing zone line:\n%s", got)
	}
}

func TestFormatWellness(t *testing.T) {
	t.Run("caps at seven most recent, newest first", func(t *testing.T) {
		var wellness []intervals.WellnessEntry
		for day := 10; day <= 19; day++ { // date-ascending, ten entries
			wellness = append(wellness, intervals.WellnessEntry{
				"id":        fmt.Sprintf("2025-10-%d", day),
				"restingHR": 50.0 + float64(day),
			})
		}
		got := Format(nil, nil, wellness, "all activities", testRange, nil, FullOptions())

		if strings.Contains(got, "2025-10-12") {
			t.Errorf("entry outside the cap rendered:\n%s", got)
		}
		newest := strings.Index(got, "2025-10-19")
		oldest := strings.Index(got, "2025-10-13")
		if newest == -1 || oldest == -1 {
			t.Fatalf("expected capped entries rendered:\n%s", got)
		}
		if newest > oldest {
			t.Error("wellness not rendered newest first")
		}
	})

	t.Run("entry keys are rendered sorted", func(t *testing.T) {
		wellness := []intervals.WellnessEntry{
			{"id": "2025-10-25", "restingHR": 52.0, "hrv": 80.0},
		}
		got := Format(nil, nil, wellness, "all activities", testRange, nil, FullOptions())
		if !strings.Contains(got, "- 2025-10-25: hrv: 80, restingHR: 52") {
			t.Errorf("wellness line wrong:\n%s", got)
		}
	})

	t.Run("entry with only an identifier renders No data", func(t *testing.T) {
		wellness := []intervals.WellnessEntry{{"id": "2025-10-25"}}
		got := Format(nil, nil, wellness, "all activities", testRange, nil, FullOptions())
		if !strings.Contains(got, "- 2025-10-25: No data") {
			t.Errorf("missing No data line:\n%s", got)
		}
	})
}

func TestFormatTrend(t *testing.T) {
	trend := []intervals.TrendPoint{
		{"id": "2025-10-24", "ctl": 39.0, "atl": 36.0},
		{"id": "2025-10-25", "ctl": 40.0, "atl": 35.0},
	}
	got := Format(nil, nil, nil, "all activities", testRange, trend, FullOptions())
	if !strings.Contains(got, "- 2025-10-25: CTL 40.0, ATL 35.0, TSB +5.0") {
		t.Errorf("missing trend line:\n%s", got)
	}
	if strings.Contains(got, "## Fitness Trend") == false {
		t.Errorf("missing trend section:\n%s", got)
	}

	empty := Format(nil, nil, nil, "all activities", testRange, nil, FullOptions())
	if strings.Contains(empty, "## Fitness Trend") {
		t.Errorf("trend section rendered without data:\n%s", empty)
	}
}

func TestFormatSectionOrder(t *testing.T) {
	profile := intervals.Profile{"name": "A", "ctl": 40.0, "atl": 35.0}
	wellness := []intervals.WellnessEntry{{"id": "2025-10-25", "hrv": 80.0}}
	trend := []intervals.TrendPoint{{"id": "2025-10-25", "ctl": 40.0, "atl": 35.0}}
	got := Format(profile, []intervals.Activity{runActivity()}, wellness, "all activities", testRange, trend, FullOptions())

	sections := []string{
		"## Scope",
		"## Athlete Profile",
		"## Fitness Trend",
		"## Activities Summary",
		"### By Type",
		"### Activity Details",
		"## Wellness",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(got, s)
		if idx == -1 {
			t.Fatalf("missing section %q:\n%s", s, got)
		}
		if idx < last {
			t.Errorf("section %q out of order", s)
		}
		last = idx
	}
}
