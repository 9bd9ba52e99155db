package timeutil

import (
	"fmt"
	"time"
)

// Relative renders a compact age label for t as seen from now:
// minutes under an hour, hours under a day, days under a week,
// otherwise the calendar date. now is explicit so callers stay
// deterministic; the function never reads the wall clock.
func Relative(now, t time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}

// DayKey collapses t to its calendar date in loc. Messages sent on the
// same local day share a key regardless of clock time.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// DayHeading renders the thread separator label for a calendar day,
// e.g. "Sunday, October 15".
func DayHeading(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Monday, January 2")
}

// ParseISO parses an RFC 3339 timestamp, returning the zero time on failure.
func ParseISO(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
