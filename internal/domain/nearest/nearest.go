// internal/domain/nearest/nearest.go
package nearest

import (
	"math"
	"time"

	"event_reminder_bot/internal/domain/calendar"
)

// NoUpcoming is the Days value of a Result when every candidate has already
// passed this year.
const NoUpcoming = math.MaxInt

// Result is the smallest non-negative day offset from today and the items
// that fall on it, in input order.
type Result[T any] struct {
	Days  int
	Items []T
}

// Found reports whether any item is still ahead this year.
func (r Result[T]) Found() bool {
	return r.Days != NoUpcoming
}

// KeyFunc extracts the annual recurrence key of an item.
type KeyFunc[T any] func(item T) (day, month int)

// Select finds the items whose (day, month) in today's year is closest to
// today without being in the past. Dates that already passed this year are
// not carried over to the next one. A 29 February key is skipped in
// non-leap years.
func Select[T any](today time.Time, items []T, key KeyFunc[T]) Result[T] {
	year, month, day := today.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	result := Result[T]{Days: NoUpcoming}
	for _, item := range items {
		d, m := key(item)
		if m < 1 || m > 12 || d < 1 || d > calendar.DaysInMonth(m, year) {
			continue
		}
		candidate := time.Date(year, time.Month(m), d, 0, 0, 0, 0, time.UTC)
		delta := int(candidate.Sub(start).Hours() / 24)

		switch {
		case delta < 0:
			// already passed this year
		case delta == result.Days:
			result.Items = append(result.Items, item)
		case delta < result.Days:
			result.Days = delta
			result.Items = []T{item}
		}
	}
	return result
}
