package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"event_reminder_bot/internal/domain/event"
)

var errAddUsage = fmt.Errorf("usage: /add DDMM [YYYY] [rule[:N]] description")

var ruleKeywords = []string{"rule", "правило"}

// parseAddArgs reads "/add DDMM [YYYY] [rule[:N]] description". A purely
// numeric second argument is taken as the year; the event constructor decides
// whether it is acceptable.
func parseAddArgs(args []string) (event.Record, error) {
	if len(args) < 2 {
		return event.Record{}, errAddUsage
	}
	rec := event.Record{DayMonth: args[0]}
	rest := args[1:]

	if isNumber(rest[0]) {
		rec.Year = rest[0]
		rest = rest[1:]
	}

	if len(rest) > 0 {
		if week, ok, err := parseRule(rest[0]); err != nil {
			return event.Record{}, err
		} else if ok {
			rec.SpecialRule = true
			rec.WeekNumber = week
			rest = rest[1:]
		}
	}

	rec.Description = strings.TrimSpace(strings.Join(rest, " "))
	if rec.Description == "" {
		return event.Record{}, errAddUsage
	}
	return rec, nil
}

// parseRule recognises "rule" and "rule:N". ok is false when arg is not a rule keyword.
func parseRule(arg string) (week int, ok bool, err error) {
	keyword, number, hasNumber := strings.Cut(strings.ToLower(arg), ":")
	for _, k := range ruleKeywords {
		if keyword != k {
			continue
		}
		if !hasNumber {
			return 0, true, nil
		}
		week, err := strconv.Atoi(number)
		if err != nil {
			return 0, false, errAddUsage
		}
		return week, true, nil
	}
	return 0, false, nil
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
