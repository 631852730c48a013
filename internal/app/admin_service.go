package app

import (
	"context"
	"fmt"

	"event_reminder_bot/internal/domain/event"
)

// Custom application-level errors for admin service
var ErrAdminNotAuthorized = fmt.Errorf("performing user is not authorized as an admin")

type AdminService struct {
	repo            event.Repository
	adminTelegramID int64
	limits          event.Limits
}

func NewAdminService(repo event.Repository, adminID int64, limits event.Limits) *AdminService {
	return &AdminService{
		repo:            repo,
		adminTelegramID: adminID,
		limits:          limits,
	}
}

// EventEntry is a stored record together with the result of validating it.
type EventEntry struct {
	Stored *event.StoredRecord
	Event  *event.Event // nil when Err is set
	Err    error
}

// AddEvent validates r and stores it. Validation errors are returned unwrapped
// so callers can match them with errors.Is / errors.As.
func (s *AdminService) AddEvent(ctx context.Context, performingAdminID int64, r event.Record) (*event.StoredRecord, *event.Event, error) {
	if performingAdminID != s.adminTelegramID {
		return nil, nil, ErrAdminNotAuthorized
	}

	ev, err := event.NewWithLimits(r, s.limits)
	if err != nil {
		return nil, nil, err
	}

	// Store the normalised form so the table only ever holds valid records.
	stored := &event.StoredRecord{Record: ev.Record()}
	if err := s.repo.Create(ctx, stored); err != nil {
		return nil, nil, fmt.Errorf("failed to create event: %w", err)
	}
	return stored, ev, nil
}

// ListEvents returns every stored record, each validated against the configured limits.
func (s *AdminService) ListEvents(ctx context.Context, performingAdminID int64) ([]EventEntry, error) {
	if performingAdminID != s.adminTelegramID {
		return nil, ErrAdminNotAuthorized
	}

	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	entries := make([]EventEntry, 0, len(records))
	for _, rec := range records {
		ev, err := event.NewWithLimits(rec.Record, s.limits)
		entries = append(entries, EventEntry{Stored: rec, Event: ev, Err: err})
	}
	return entries, nil
}

func (s *AdminService) RemoveEvent(ctx context.Context, performingAdminID int64, id int64) error {
	if performingAdminID != s.adminTelegramID {
		return ErrAdminNotAuthorized
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event %d: %w", id, err)
	}
	return nil
}
