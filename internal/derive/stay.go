package derive

import (
	"fmt"
	"time"
)

// StayDuration buckets the time since a tenant's join date into a
// human-readable label
func StayDuration(joined, now time.Time) string {
	months := monthsBetween(joined, now)
	switch {
	case months <= 0:
		return "New Joiner"
	case months < 12:
		return fmt.Sprintf("%d Months", months)
	case months%12 == 0:
		return fmt.Sprintf("%d Years", months/12)
	default:
		return fmt.Sprintf("%dy %dm", months/12, months%12)
	}
}

// monthsBetween counts whole months elapsed from a to b
func monthsBetween(a, b time.Time) int {
	if b.Before(a) {
		return 0
	}
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
