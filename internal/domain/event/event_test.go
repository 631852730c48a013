package event

import (
	"errors"
	"fmt"
	"testing"

	"event_reminder_bot/internal/domain/calendar"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		record  Record
		wantErr error
	}{
		{"three digits", Record{DayMonth: "123"}, ErrInvalidFormat},
		{"letters", Record{DayMonth: "1a12"}, ErrInvalidFormat},
		{"separator", Record{DayMonth: "01.12"}, ErrInvalidFormat},
		{"month 13", Record{DayMonth: "0113"}, ErrInvalidMonth},
		{"month 00", Record{DayMonth: "0100"}, ErrInvalidMonth},
		{"month checked before year", Record{DayMonth: "3113", Year: "abc"}, ErrInvalidMonth},
		{"year not numeric", Record{DayMonth: "0101", Year: "20x4"}, ErrInvalidYear},
		{"year negative", Record{DayMonth: "0101", Year: "-2000"}, ErrInvalidYear},
		{"year below range", Record{DayMonth: "0101", Year: "1899"}, ErrInvalidYear},
		{"year above range", Record{DayMonth: "0101", Year: "2051"}, ErrInvalidYear},
		{"year checked before day", Record{DayMonth: "3102", Year: "1800"}, ErrInvalidYear},
		{"30 february", Record{DayMonth: "3002", Year: "2023"}, ErrDayOutOfRange},
		{"29 february non leap", Record{DayMonth: "2902", Year: "2023"}, ErrDayOutOfRange},
		{"29 february no year", Record{DayMonth: "2902"}, ErrDayOutOfRange},
		{"31 april", Record{DayMonth: "3104"}, ErrDayOutOfRange},
		{"day zero", Record{DayMonth: "0005"}, ErrDayOutOfRange},
		{"week number too big", Record{DayMonth: "2811", Year: "2024", SpecialRule: true, WeekNumber: 7}, ErrInvalidWeekNumber},
		{"floating rule without anchor year", Record{DayMonth: "2811", SpecialRule: true}, ErrNoAnchorYear},
		{"missing anchor year is a year error", Record{DayMonth: "2811", SpecialRule: true}, ErrInvalidYear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.record)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got error %v, want %v", err, tt.wantErr)
			}
			if e != nil {
				t.Fatalf("expected no event, got %v", e)
			}
		})
	}
}

func TestNewLeapDay(t *testing.T) {
	e, err := New(Record{DayMonth: "2902", Year: "2024", Description: "високосный"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Day() != 29 || e.Month() != 2 {
		t.Fatalf("got %d.%d, want 29.2", e.Day(), e.Month())
	}
	if e.DaysInOwnMonth() != 29 {
		t.Errorf("DaysInOwnMonth = %d, want 29", e.DaysInOwnMonth())
	}
}

func TestDayOutOfRangeMessage(t *testing.T) {
	_, err := New(Record{DayMonth: "3002", Year: "2023"})
	var rangeErr *DayOutOfRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("got %T, want *DayOutOfRangeError", err)
	}
	if rangeErr.MaxDay != 28 {
		t.Errorf("MaxDay = %d, want 28", rangeErr.MaxDay)
	}
	if got, want := err.Error(), "В феврале 2023 года только 28 дней"; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}

	_, err = New(Record{DayMonth: "3030", Year: "2024"})
	if !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("got %v, want ErrInvalidMonth", err)
	}

	_, err = New(Record{DayMonth: "3102"})
	if got, want := err.Error(), "В феврале только 28 дней"; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestNewWithLimits(t *testing.T) {
	limits := Limits{MinYear: 2000, MaxYear: 2010}
	if _, err := NewWithLimits(Record{DayMonth: "0101", Year: "1999"}, limits); !errors.Is(err, ErrInvalidYear) {
		t.Errorf("1999: got %v, want ErrInvalidYear", err)
	}
	if _, err := NewWithLimits(Record{DayMonth: "0101", Year: "2010"}, limits); err != nil {
		t.Errorf("2010: unexpected error %v", err)
	}
}

func TestAllDayMonthPairsWithoutYear(t *testing.T) {
	for month := 1; month <= 12; month++ {
		for day := 1; day <= calendar.DaysInMonth(month, 0); day++ {
			token := fmt.Sprintf("%02d%02d", day, month)
			e, err := New(Record{DayMonth: token, Description: "x"})
			if err != nil {
				t.Fatalf("%s: unexpected error %v", token, err)
			}
			if e.Day() != day || e.Month() != month {
				t.Fatalf("%s: got %d.%d", token, e.Day(), e.Month())
			}
			if _, ok := e.Year(); ok {
				t.Fatalf("%s: unexpected year", token)
			}
		}
	}
}

func TestRevalidationIsTotal(t *testing.T) {
	records := []Record{
		{DayMonth: "0101", Description: "Новый год"},
		{DayMonth: "2902", Year: "2024", Description: "високосный"},
		{DayMonth: "2811", Year: "2024", Description: "День благодарения", SpecialRule: true},
		{DayMonth: "1205", Year: "2024", Description: "День матери", SpecialRule: true, WeekNumber: 2},
	}
	for _, r := range records {
		e, err := New(r)
		if err != nil {
			t.Fatalf("%v: %v", r, err)
		}
		again, err := New(e.Record())
		if err != nil {
			t.Fatalf("revalidating %v: %v", e, err)
		}
		if *again != *e {
			t.Errorf("revalidated %v differs from %v", again, e)
		}
	}
}

func TestDisplayText(t *testing.T) {
	withYear, err := New(Record{DayMonth: "2803", Year: "1990", Description: "Юбилей"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := withYear.DisplayText(2024), "28 марта - Юбилей (34 года)"; got != want {
		t.Errorf("DisplayText = %q, want %q", got, want)
	}
	if got, want := withYear.DisplayText(1991), "28 марта - Юбилей (1 год)"; got != want {
		t.Errorf("DisplayText = %q, want %q", got, want)
	}
	if got, want := withYear.DisplayText(1980), "28 марта - Юбилей"; got != want {
		t.Errorf("DisplayText before the event's year = %q, want %q", got, want)
	}
	if got, want := withYear.DisplayText(1990), "28 марта - Юбилей (0 лет)"; got != want {
		t.Errorf("DisplayText = %q, want %q", got, want)
	}
	if got, want := withYear.String(), "28.3.1990"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}

	noYear, err := New(Record{DayMonth: "0101", Description: "Новый год"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := noYear.DisplayText(2024), "1 января - Новый год"; got != want {
		t.Errorf("DisplayText = %q, want %q", got, want)
	}
	if got, want := noYear.String(), "1.1"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}

func TestWeekday(t *testing.T) {
	e, err := New(Record{DayMonth: "2811", Year: "2024"})
	if err != nil {
		t.Fatal(err)
	}
	wd, err := e.Weekday()
	if err != nil || wd != 3 {
		t.Errorf("Weekday = %d, %v; want 3 (Thursday)", wd, err)
	}

	noYear, _ := New(Record{DayMonth: "2811"})
	if _, err := noYear.Weekday(); !errors.Is(err, ErrNoYear) {
		t.Errorf("got %v, want ErrNoYear", err)
	}
}
