package telegram

import (
	"errors"
	"strings"
	"testing"

	"event_reminder_bot/internal/domain/event"
)

func TestParseAddArgs(t *testing.T) {
	tests := []struct {
		in   string
		want event.Record
	}{
		{"0101 Новый год", event.Record{DayMonth: "0101", Description: "Новый год"}},
		{"2803 1990 Юбилей", event.Record{DayMonth: "2803", Year: "1990", Description: "Юбилей"}},
		{"2811 2024 rule День благодарения", event.Record{DayMonth: "2811", Year: "2024", SpecialRule: true, Description: "День благодарения"}},
		{"1205 2024 правило:2 День матери", event.Record{DayMonth: "1205", Year: "2024", SpecialRule: true, WeekNumber: 2, Description: "День матери"}},
		{"1205 RULE:3 без года", event.Record{DayMonth: "1205", SpecialRule: true, WeekNumber: 3, Description: "без года"}},
		{"123 3000 что-то", event.Record{DayMonth: "123", Year: "3000", Description: "что-то"}},
	}
	for _, tt := range tests {
		got, err := parseAddArgs(strings.Fields(tt.in))
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseAddArgsUsage(t *testing.T) {
	for _, in := range []string{"", "0101", "0101 2024", "0101 2024 rule", "0101 rule:x праздник"} {
		if _, err := parseAddArgs(strings.Fields(in)); !errors.Is(err, errAddUsage) {
			t.Errorf("%q: got %v, want usage error", in, err)
		}
	}
}
