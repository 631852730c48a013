// internal/domain/event/projector.go
package event

import (
	"fmt"
	"strconv"

	"event_reminder_bot/internal/domain/calendar"
)

var ErrNotFloating = fmt.Errorf("event has no floating rule")
var ErrUnrepresentableOccurrence = fmt.Errorf("occurrence does not exist in the target month")

// SpecialParams describes the floating rule derived from an anchor date.
// Ordinal and Total count occurrences of the weekday, so "3rd Thursday" has
// Ordinal 3; the calendar-row position of the anchor is in WeekOfMonth and
// WeeksInMonth.
type SpecialParams struct {
	Month   int
	Weekday int // 0=Monday
	// Ordinal is how many times Weekday has occurred in the month up to and
	// including the anchor day; Total is how many times it occurs in the month.
	Ordinal int
	Total   int
	// WeekOfMonth is the Monday-first calendar row holding the anchor day and
	// WeeksInMonth the number of rows the month spans (4-6).
	WeekOfMonth  int
	WeeksInMonth int
}

// IsLast reports whether the anchor is the last occurrence of its weekday.
func (p SpecialParams) IsLast() bool {
	return p.Ordinal == p.Total
}

// SpecialParams derives the floating rule of a special-rule event from its anchor date.
func (e *Event) SpecialParams() (SpecialParams, error) {
	if !e.specialRule {
		return SpecialParams{}, ErrNotFloating
	}
	weekday, err := e.Weekday()
	if err != nil {
		return SpecialParams{}, err
	}
	daysInMonth := e.DaysInOwnMonth()
	firstWeekSize := 7 - calendar.FirstWeekdayOfMonth(e.year, e.month)

	weekOfMonth := 1
	if e.day > firstWeekSize {
		weekOfMonth = (e.day-firstWeekSize-1)/7 + 2
	}

	ordinal := (e.day-1)/7 + 1
	return SpecialParams{
		Month:        e.month,
		Weekday:      weekday,
		Ordinal:      ordinal,
		Total:        ordinal + (daysInMonth-e.day)/7,
		WeekOfMonth:  weekOfMonth,
		WeeksInMonth: (daysInMonth-firstWeekSize+6)/7 + 1,
	}, nil
}

// Project returns the occurrence of e's floating rule in targetYear as a new
// Event. Without an explicit week number the rule means the last occurrence
// of the weekday in the month; otherwise it is the WeekNumber-th occurrence.
// e itself is never modified.
func (e *Event) Project(targetYear int) (*Event, error) {
	params, err := e.SpecialParams()
	if err != nil {
		return nil, err
	}
	if targetYear < e.limits.MinYear || targetYear > e.limits.MaxYear {
		return nil, fmt.Errorf("%w: %d is outside %d-%d", ErrInvalidYear, targetYear, e.limits.MinYear, e.limits.MaxYear)
	}

	daysInMonth := calendar.DaysInMonth(params.Month, targetYear)
	firstWeekday := calendar.FirstWeekdayOfMonth(targetYear, params.Month)
	firstOccurrence := 1 + (params.Weekday-firstWeekday+7)%7

	ordinal := e.weekNumber
	if ordinal == 0 {
		ordinal = (daysInMonth-firstOccurrence)/7 + 1
	}
	day := firstOccurrence + 7*(ordinal-1)
	if day > daysInMonth {
		return nil, fmt.Errorf("%w: %s number %d in %d.%d", ErrUnrepresentableOccurrence,
			calendar.WeekdayShortName(params.Weekday), ordinal, params.Month, targetYear)
	}

	return NewWithLimits(Record{
		DayMonth:    fmt.Sprintf("%02d%02d", day, params.Month),
		Year:        strconv.Itoa(targetYear),
		Description: e.description,
		SpecialRule: e.specialRule,
		WeekNumber:  e.weekNumber,
	}, e.limits)
}
