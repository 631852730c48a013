// internal/domain/event/event.go
package event

import (
	"fmt"
	"regexp"
	"strconv"

	"event_reminder_bot/internal/domain/calendar"
	"event_reminder_bot/internal/domain/declension"
)

// Validation errors. Every failure is reported at construction; an invalid Event never exists.
var (
	ErrInvalidFormat     = fmt.Errorf("invalid day and month format")
	ErrInvalidMonth      = fmt.Errorf("invalid month")
	ErrInvalidYear       = fmt.Errorf("invalid year")
	ErrDayOutOfRange     = fmt.Errorf("day out of range")
	ErrInvalidWeekNumber = fmt.Errorf("invalid week number")
	ErrNoYear            = fmt.Errorf("event has no year")
	ErrNoAnchorYear      = fmt.Errorf("floating rule has no anchor year")
)

const maxWeekNumber = 6

var dayMonthPattern = regexp.MustCompile(`^(\d{2})(\d{2})$`)

// Limits is the inclusive range of years an event may carry.
type Limits struct {
	MinYear int
	MaxYear int
}

// DefaultLimits is used by New.
var DefaultLimits = Limits{MinYear: 1900, MaxYear: 2050}

// Record is the raw, unvalidated description of an event as it comes from
// storage or from a user command.
type Record struct {
	DayMonth    string // DDMM
	Year        string // optional, empty when absent
	Description string
	SpecialRule bool
	WeekNumber  int // 0 means the last occurrence of the weekday in the month
}

// DayOutOfRangeError reports a day that does not exist in the given month.
type DayOutOfRangeError struct {
	Day    int
	Month  int
	Year   int // 0 when the event has no year
	MaxDay int
}

func (e *DayOutOfRangeError) Error() string {
	month, _ := declension.MonthName(e.Month, declension.CasePrepositional)
	days, _ := declension.FullValue(e.MaxDay, declension.UnitDays)
	if e.Year != 0 {
		return fmt.Sprintf("В %s %d года только %s", month, e.Year, days)
	}
	return fmt.Sprintf("В %s только %s", month, days)
}

func (e *DayOutOfRangeError) Is(target error) bool {
	return target == ErrDayOutOfRange
}

// Event is an annual reminder anchored to a day and month, optionally to a
// year. When SpecialRule is set the date is a sample occurrence of a floating
// rule such as "the last Thursday of November".
type Event struct {
	day         int
	month       int
	year        int
	description string
	specialRule bool
	weekNumber  int
	limits      Limits
}

// New validates r against DefaultLimits.
func New(r Record) (*Event, error) {
	return NewWithLimits(r, DefaultLimits)
}

// NewWithLimits validates r and returns the Event. Checks run in order and the
// first violated one is returned.
func NewWithLimits(r Record, limits Limits) (*Event, error) {
	groups := dayMonthPattern.FindStringSubmatch(r.DayMonth)
	if groups == nil {
		return nil, fmt.Errorf("%w: %q, expected 4 digits DDMM", ErrInvalidFormat, r.DayMonth)
	}
	day, _ := strconv.Atoi(groups[1])
	month, _ := strconv.Atoi(groups[2])

	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}

	var year int
	if r.Year != "" {
		if !isDigits(r.Year) {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidYear, r.Year)
		}
		year, _ = strconv.Atoi(r.Year)
		if year < limits.MinYear || year > limits.MaxYear {
			return nil, fmt.Errorf("%w: %d is outside %d-%d", ErrInvalidYear, year, limits.MinYear, limits.MaxYear)
		}
	}

	maxDay := calendar.DaysInMonth(month, year)
	if day < 1 || day > maxDay {
		return nil, &DayOutOfRangeError{Day: day, Month: month, Year: year, MaxDay: maxDay}
	}

	if r.WeekNumber < 0 || r.WeekNumber > maxWeekNumber {
		return nil, fmt.Errorf("%w: %d, expected 1-%d", ErrInvalidWeekNumber, r.WeekNumber, maxWeekNumber)
	}
	if r.SpecialRule && year == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidYear, ErrNoAnchorYear)
	}

	return &Event{
		day:         day,
		month:       month,
		year:        year,
		description: r.Description,
		specialRule: r.SpecialRule,
		weekNumber:  r.WeekNumber,
		limits:      limits,
	}, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

func (e *Event) Day() int            { return e.day }
func (e *Event) Month() int          { return e.month }
func (e *Event) Description() string { return e.description }
func (e *Event) SpecialRule() bool   { return e.specialRule }
func (e *Event) WeekNumber() int     { return e.weekNumber }

// Year returns the year and whether the event has one.
func (e *Event) Year() (int, bool) {
	return e.year, e.year != 0
}

// Token returns the DDMM form of the date.
func (e *Event) Token() string {
	return fmt.Sprintf("%02d%02d", e.day, e.month)
}

// Record returns the raw form of e. Validating it again yields an equal Event.
func (e *Event) Record() Record {
	r := Record{
		DayMonth:    e.Token(),
		Description: e.description,
		SpecialRule: e.specialRule,
		WeekNumber:  e.weekNumber,
	}
	if e.year != 0 {
		r.Year = strconv.Itoa(e.year)
	}
	return r
}

func (e *Event) String() string {
	if e.year != 0 {
		return fmt.Sprintf("%d.%d.%d", e.day, e.month, e.year)
	}
	return fmt.Sprintf("%d.%d", e.day, e.month)
}

// Weekday returns the Monday-indexed weekday of the date. It needs a year.
func (e *Event) Weekday() (int, error) {
	if e.year == 0 {
		return 0, ErrNoYear
	}
	return calendar.Weekday(e.year, e.month, e.day), nil
}

// DaysInOwnMonth returns the length of the event's month, leap-aware when a year is set.
func (e *Event) DaysInOwnMonth() int {
	return calendar.DaysInMonth(e.month, e.year)
}

// Summary renders "28 ноября - описание".
func (e *Event) Summary() string {
	month, _ := declension.MonthName(e.month, declension.CaseGenitive)
	return fmt.Sprintf("%d %s - %s", e.day, month, e.description)
}

// DisplayText renders the summary followed by the number of years elapsed
// since the event's year, when it has one. Years after currentYear get no suffix.
func (e *Event) DisplayText(currentYear int) string {
	if e.year == 0 || e.year > currentYear {
		return e.Summary()
	}
	elapsed, _ := declension.FullValue(currentYear-e.year, declension.UnitYears)
	return fmt.Sprintf("%s (%s)", e.Summary(), elapsed)
}
