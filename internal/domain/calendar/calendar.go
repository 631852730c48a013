// internal/domain/calendar/calendar.go
package calendar

import "time"

// monthDays holds the length of every month in a non-leap year. Index 0 is unused.
var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

var weekdayShortNames = [7]string{"пн", "вт", "ср", "чт", "пт", "сб", "вс"}

// IsLeapYear reports whether year is a leap year in the Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month. A zero year means the year
// is unknown, in which case February has 28 days.
func DaysInMonth(month, year int) int {
	if month == 2 && year != 0 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}

// Weekday returns the ISO weekday of the date, 0 for Monday through 6 for Sunday.
func Weekday(year, month, day int) int {
	wd := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday()
	return (int(wd) + 6) % 7
}

// FirstWeekdayOfMonth returns the weekday (0=Monday) of the 1st of the month.
func FirstWeekdayOfMonth(year, month int) int {
	return Weekday(year, month, 1)
}

// WeekdayShortName returns the two-letter Russian abbreviation for a Monday-indexed weekday.
func WeekdayShortName(weekday int) string {
	return weekdayShortNames[weekday]
}
