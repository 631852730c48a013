package app

import (
	"context"
	"errors"
	"testing"

	"event_reminder_bot/internal/domain/event"
)

const adminID = 42

func TestAddEvent(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := NewAdminService(repo, adminID, event.DefaultLimits)

	if _, _, err := svc.AddEvent(ctx, 7, event.Record{DayMonth: "0101"}); !errors.Is(err, ErrAdminNotAuthorized) {
		t.Fatalf("got %v, want ErrAdminNotAuthorized", err)
	}

	_, _, err := svc.AddEvent(ctx, adminID, event.Record{DayMonth: "3002", Year: "2023"})
	if !errors.Is(err, event.ErrDayOutOfRange) {
		t.Fatalf("got %v, want ErrDayOutOfRange", err)
	}
	if len(repo.records) != 0 {
		t.Fatal("invalid record was stored")
	}

	rec, ev, err := svc.AddEvent(ctx, adminID, event.Record{DayMonth: "2811", Year: "2024", Description: "День благодарения", SpecialRule: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != 1 || ev.Day() != 28 || !ev.SpecialRule() {
		t.Errorf("stored %+v / %v", rec, ev)
	}
}

func TestListAndRemoveEvents(t *testing.T) {
	ctx := context.Background()
	repo := stored(
		event.Record{DayMonth: "0101", Description: "Новый год"},
		event.Record{DayMonth: "1313", Description: "Сломанная запись"},
	)
	svc := NewAdminService(repo, adminID, event.DefaultLimits)

	if _, err := svc.ListEvents(ctx, 1); !errors.Is(err, ErrAdminNotAuthorized) {
		t.Fatalf("got %v, want ErrAdminNotAuthorized", err)
	}

	entries, err := svc.ListEvents(ctx, adminID)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries", len(entries))
	}
	if entries[0].Err != nil || entries[0].Event == nil {
		t.Errorf("first entry should be valid: %+v", entries[0])
	}
	if !errors.Is(entries[1].Err, event.ErrInvalidMonth) || entries[1].Event != nil {
		t.Errorf("second entry should carry ErrInvalidMonth: %+v", entries[1])
	}

	if err := svc.RemoveEvent(ctx, adminID, 2); err != nil {
		t.Fatalf("RemoveEvent: %v", err)
	}
	if err := svc.RemoveEvent(ctx, adminID, 2); !errors.Is(err, event.ErrRecordNotFound) {
		t.Fatalf("got %v, want ErrRecordNotFound", err)
	}
	if err := svc.RemoveEvent(ctx, 1, 1); !errors.Is(err, ErrAdminNotAuthorized) {
		t.Fatalf("got %v, want ErrAdminNotAuthorized", err)
	}
}
