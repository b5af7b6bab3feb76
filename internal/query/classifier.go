// Package query interprets free-text training questions and scopes
// activity lists to them.
package query

import (
	"fmt"
	"regexp"
	"strings"
)

// Scope identifies which slice of the training history a question is about.
type Scope string

const (
	ScopeToday     Scope = "today"
	ScopeYesterday Scope = "yesterday"
	ScopeLatest    Scope = "latest"
	ScopeWeek      Scope = "week"
	ScopeLastWeek  Scope = "last_week"
	ScopeCount     Scope = "count"
	ScopeRange     Scope = "range"
	ScopeAll       Scope = "all"
)

// ActivityType is an optional activity-type narrowing. Empty means no
// type filter.
type ActivityType string

const (
	TypeNone    ActivityType = ""
	TypeRun     ActivityType = "run"
	TypeRide    ActivityType = "ride"
	TypeSwim    ActivityType = "swim"
	TypeWorkout ActivityType = "workout"
)

// Intent is the structured reading of a free-text question.
// Count is set only when Scope is ScopeCount.
type Intent struct {
	Scope        Scope
	ActivityType ActivityType
	Count        int
	Description  string
}

// Classifier parses a free-text question into an Intent. Implementations
// never fail; unrecognized input maps to ScopeAll.
type Classifier interface {
	Classify(query string) Intent
}

// NewClassifier returns the keyword-cascade classifier. Rules are evaluated
// in declared order, first match wins; matching is case-insensitive
// substring matching rather than tokenized NLP.
func NewClassifier() Classifier {
	return &ruleClassifier{rules: classifierRules}
}

type ruleClassifier struct {
	rules []rule
}

type rule struct {
	name  string
	match func(q string) bool
	build func(q string) Intent
}

func (c *ruleClassifier) Classify(query string) Intent {
	q := strings.ToLower(query)
	for _, r := range c.rules {
		if r.match(q) {
			return r.build(q)
		}
	}
	return Intent{Scope: ScopeAll, Description: "all activities"}
}

var (
	countPattern = regexp.MustCompile(`last\s+(\d+)`)
	rangePattern = regexp.MustCompile(`last\s+(\d+)\s+(day|week|month)s?\b`)
)

// classifierRules is the ordered decision table. Earlier rules take
// precedence over later, more general ones.
var classifierRules = []rule{
	{
		name:  "today",
		match: func(q string) bool { return strings.Contains(q, "today") },
		build: func(q string) Intent {
			if t := detectType(q, TypeRun, TypeRide, TypeWorkout, TypeSwim); t != TypeNone {
				return Intent{Scope: ScopeToday, ActivityType: t, Description: "today's " + string(t)}
			}
			return Intent{Scope: ScopeToday, Description: "today's activities"}
		},
	},
	{
		name:  "yesterday",
		match: func(q string) bool { return strings.Contains(q, "yesterday") },
		build: func(q string) Intent {
			if t := detectType(q, TypeRun, TypeRide); t != TypeNone {
				return Intent{Scope: ScopeYesterday, ActivityType: t, Description: "yesterday's " + string(t)}
			}
			return Intent{Scope: ScopeYesterday, Description: "yesterday's activities"}
		},
	},
	{
		name: "latest",
		match: func(q string) bool {
			return containsAny(q, "latest", "most recent", "last workout", "last run", "last ride")
		},
		build: func(q string) Intent {
			if t := detectType(q, TypeRun, TypeRide); t != TypeNone {
				return Intent{Scope: ScopeLatest, ActivityType: t, Description: "most recent " + string(t)}
			}
			return Intent{Scope: ScopeLatest, Description: "most recent activity"}
		},
	},
	{
		name:  "this week",
		match: func(q string) bool { return strings.Contains(q, "this week") },
		build: func(string) Intent {
			return Intent{Scope: ScopeWeek, Description: "this week's activities"}
		},
	},
	{
		name:  "last week",
		match: func(q string) bool { return strings.Contains(q, "last week") },
		build: func(string) Intent {
			return Intent{Scope: ScopeLastWeek, Description: "last week's activities"}
		},
	},
	{
		// "last N days/weeks/months" is a date-range phrasing, not a count
		// phrasing; it must win over the count rule below.
		name:  "last n units",
		match: func(q string) bool { return rangePattern.MatchString(q) },
		build: func(q string) Intent {
			m := rangePattern.FindStringSubmatch(q)
			return Intent{Scope: ScopeRange, Description: fmt.Sprintf("last %s %ss", m[1], m[2])}
		},
	},
	{
		// Excluded whenever a unit word appears anywhere in the query,
		// not just adjacent to the number: "last 3 runs across previous
		// weeks" is not a count phrasing.
		name: "last n",
		match: func(q string) bool {
			return countPattern.MatchString(q) && !containsAny(q, "days", "weeks", "months")
		},
		build: func(q string) Intent {
			m := countPattern.FindStringSubmatch(q)
			n := 0
			_, _ = fmt.Sscanf(m[1], "%d", &n)
			if n <= 0 {
				return Intent{Scope: ScopeAll, Description: "all activities"}
			}
			if t := detectType(q, TypeRun, TypeRide); t != TypeNone {
				return Intent{
					Scope:        ScopeCount,
					ActivityType: t,
					Count:        n,
					Description:  fmt.Sprintf("last %d %ss", n, t),
				}
			}
			return Intent{Scope: ScopeCount, Count: n, Description: fmt.Sprintf("last %d activities", n)}
		},
	},
	{
		name:  "month",
		match: func(q string) bool { return containsAny(q, "this month", "last month") },
		build: func(q string) Intent {
			if strings.Contains(q, "last month") {
				return Intent{Scope: ScopeRange, Description: "last month"}
			}
			return Intent{Scope: ScopeRange, Description: "this month"}
		},
	},
}

// typeKeywords maps each activity type to the query keywords that select it.
var typeKeywords = map[ActivityType][]string{
	TypeRun:     {"run"},
	TypeRide:    {"ride", "bike", "cycle", "cycling"},
	TypeSwim:    {"swim"},
	TypeWorkout: {"workout"},
}

func detectType(q string, allowed ...ActivityType) ActivityType {
	for _, t := range allowed {
		if containsAny(q, typeKeywords[t]...) {
			return t
		}
	}
	return TypeNone
}

func containsAny(q string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
