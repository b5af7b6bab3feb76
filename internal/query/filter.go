package query

import (
	"strings"
	"time"

	"github.com/vivek-dodia/fast/internal/dateutil"
	"github.com/vivek-dodia/fast/internal/intervals"
)

// Filter applies an intent to an activity list and returns the in-scope
// subset plus the human-readable scope description. The input is assumed
// newest-first (the provider's ordering) and is never re-sorted. now is
// injected so date windows are testable.
func Filter(activities []intervals.Activity, intent Intent, now time.Time) ([]intervals.Activity, string) {
	scoped := filterByType(activities, intent.ActivityType)

	switch intent.Scope {
	case ScopeToday:
		day := dateutil.DayString(dateutil.TruncateToDay(now))
		scoped = filterBetween(scoped, day, day)
	case ScopeYesterday:
		day := dateutil.DayString(dateutil.TruncateToDay(now).AddDate(0, 0, -1))
		scoped = filterBetween(scoped, day, day)
	case ScopeWeek:
		monday, _ := dateutil.WeekRange(now)
		scoped = filterBetween(scoped, dateutil.DayString(monday), "")
	case ScopeLastWeek:
		monday, sunday := dateutil.PreviousWeekRange(now)
		scoped = filterBetween(scoped, dateutil.DayString(monday), dateutil.DayString(sunday))
	case ScopeLatest:
		if len(scoped) > 1 {
			scoped = scoped[:1]
		}
	case ScopeCount:
		if intent.Count < len(scoped) {
			scoped = scoped[:intent.Count]
		}
	}
	// ScopeAll and ScopeRange pass through: the fetch window already bounds
	// what the provider returned.

	return scoped, intent.Description
}

// filterByType keeps activities whose type contains t, case-insensitively.
// The substring test is deliberately permissive so "ride" matches "E-Ride"
// and "VirtualRide".
func filterByType(activities []intervals.Activity, t ActivityType) []intervals.Activity {
	if t == TypeNone {
		return activities
	}
	var out []intervals.Activity
	for _, a := range activities {
		typ, ok := a.Text("type")
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(typ), string(t)) {
			out = append(out, a)
		}
	}
	return out
}

// filterBetween keeps activities whose local start date falls in
// [oldest, newest], inclusive. An empty newest leaves the window open-ended.
// YYYY-MM-DD strings compare correctly lexicographically.
func filterBetween(activities []intervals.Activity, oldest, newest string) []intervals.Activity {
	var out []intervals.Activity
	for _, a := range activities {
		day, ok := activityDay(a)
		if !ok {
			continue
		}
		if day < oldest {
			continue
		}
		if newest != "" && day > newest {
			continue
		}
		out = append(out, a)
	}
	return out
}

// activityDay extracts the date portion (first 10 characters) of the
// activity's local start timestamp.
func activityDay(a intervals.Activity) (string, bool) {
	ts, ok := a.Text("start_date_local", "start_date")
	if !ok || len(ts) < 10 {
		return "", false
	}
	return ts[:10], true
}
