// internal/domain/declension/declension.go
package declension

import (
	"fmt"
	"unicode/utf8"
)

var ErrUnknownUnit = fmt.Errorf("unknown declension unit")
var ErrUnknownMonth = fmt.Errorf("unknown month")

// Unit is a counted noun that agrees with a numeral.
type Unit string

const (
	UnitDays    Unit = "days"
	UnitYears   Unit = "years"
	UnitMinutes Unit = "minutes"
	UnitSeconds Unit = "seconds"
)

// forms are ordered: one, few (2-4), many.
var forms = map[Unit][3]string{
	UnitDays:    {"день", "дня", "дней"},
	UnitYears:   {"год", "года", "лет"},
	UnitMinutes: {"минута", "минуты", "минут"},
	UnitSeconds: {"секунда", "секунды", "секунд"},
}

// Case selects the grammatical case of a month name.
type Case string

const (
	// CaseGenitive renders "1 января", "8 марта".
	CaseGenitive Case = "genitive"
	// CasePrepositional renders "в январе", "в марте".
	CasePrepositional Case = "prepositional"
)

type monthEndings struct {
	special string // appended to март and август
	mass    string // replaces the final letter of the other ten
}

var caseEndings = map[Case]monthEndings{
	CaseGenitive:      {special: "а", mass: "я"},
	CasePrepositional: {special: "е", mass: "е"},
}

var monthNames = [13]string{
	"", "январь", "февраль", "март", "апрель", "май", "июнь", "июль",
	"август", "сентябрь", "октябрь", "ноябрь", "декабрь",
}

// Word returns the form of unit that agrees with value.
func Word(value int, unit Unit) (string, error) {
	f, ok := forms[unit]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	if value < 0 {
		value = -value
	}
	mod10, mod100 := value%10, value%100
	switch {
	case mod10 == 1 && mod100 != 11:
		return f[0], nil
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 10 || mod100 >= 20):
		return f[1], nil
	default:
		return f[2], nil
	}
}

// FullValue renders value together with the agreeing unit, e.g. "21 день".
func FullValue(value int, unit Unit) (string, error) {
	word, err := Word(value, unit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %s", value, word), nil
}

// MonthName declines the name of month (1-12) into case c.
func MonthName(month int, c Case) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("%w: %d", ErrUnknownMonth, month)
	}
	endings, ok := caseEndings[c]
	if !ok {
		return "", fmt.Errorf("%w: case %q", ErrUnknownUnit, c)
	}
	name := monthNames[month]
	if month == 3 || month == 8 {
		return name + endings.special, nil
	}
	_, size := utf8.DecodeLastRuneInString(name)
	return name[:len(name)-size] + endings.mass, nil
}

// Duration renders a number of seconds as "M минут S секунд". Negative input renders as zero.
func Duration(totalSeconds int) string {
	totalSeconds = max(totalSeconds, 0)
	minutes, seconds := totalSeconds/60, totalSeconds%60
	m, _ := FullValue(minutes, UnitMinutes)
	s, _ := FullValue(seconds, UnitSeconds)
	return m + " " + s
}
