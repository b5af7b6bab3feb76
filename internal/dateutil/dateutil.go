// Package dateutil provides date parsing and window utilities.
package dateutil

import (
	"errors"
	"time"
)

// DayFormat is the YYYY-MM-DD layout used by intervals.icu for local dates.
const DayFormat = "2006-01-02"

// ErrInvalidDateFormat is returned for dates not in YYYY-MM-DD format.
var ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayString renders t as YYYY-MM-DD.
func DayString(t time.Time) string {
	return t.Format(DayFormat)
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (monday, sunday time.Time) {
	t = TruncateToDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday becomes day 7 in ISO week
	}
	monday = t.AddDate(0, 0, -(weekday - 1))
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// PreviousWeekRange returns the Monday and Sunday of the week before the
// one containing t.
func PreviousWeekRange(t time.Time) (monday, sunday time.Time) {
	return WeekRange(t.AddDate(0, 0, -7))
}
