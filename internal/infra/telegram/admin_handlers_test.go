package telegram

import (
	"errors"
	"fmt"
	"testing"

	"event_reminder_bot/internal/domain/event"
)

func TestDescribeAddError(t *testing.T) {
	_, rangeErr := event.New(event.Record{DayMonth: "3002", Year: "2023"})
	_, noAnchorErr := event.New(event.Record{DayMonth: "2811", SpecialRule: true})
	tests := []struct {
		err  error
		want string
	}{
		{rangeErr, "В феврале 2023 года только 28 дней."},
		{fmt.Errorf("%w: \"123\"", event.ErrInvalidFormat), "Некорректная дата. Нужно 4 цифры вида ДДММ."},
		{event.ErrInvalidMonth, "Такого месяца нет."},
		{noAnchorErr, "Для плавающего правила нужен год образца, например: /add 2811 2024 правило День благодарения."},
		{event.ErrInvalidWeekNumber, "Номер недели должен быть от 1 до 6."},
		{errors.New("disk full"), "Произошла ошибка при добавлении события."},
	}
	for _, tt := range tests {
		if got := describeAddError(tt.err); got != tt.want {
			t.Errorf("describeAddError(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestDescribeEvent(t *testing.T) {
	tests := []struct {
		record event.Record
		want   string
	}{
		{event.Record{DayMonth: "0101", Description: "Новый год"}, "1 января - Новый год"},
		{event.Record{DayMonth: "2803", Year: "1990", Description: "Юбилей"}, "28 марта - Юбилей (35 лет)"},
		{event.Record{DayMonth: "2811", Year: "2024", Description: "День благодарения", SpecialRule: true},
			"28 ноября - День благодарения [последний чт, образец 28.11.2024]"},
		{event.Record{DayMonth: "1205", Year: "2024", Description: "День матери", SpecialRule: true, WeekNumber: 2},
			"12 мая - День матери [2-й вс, образец 12.5.2024]"},
	}
	for _, tt := range tests {
		ev, err := event.New(tt.record)
		if err != nil {
			t.Fatal(err)
		}
		if got := describeEvent(ev, 2025); got != tt.want {
			t.Errorf("describeEvent(%v) = %q, want %q", ev, got, tt.want)
		}
	}
}
