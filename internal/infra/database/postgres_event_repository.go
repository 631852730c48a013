package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"event_reminder_bot/internal/domain/event"
)

type PostgresEventRepository struct {
	db *sql.DB
}

func NewPostgresEventRepository(db *sql.DB) *PostgresEventRepository {
	return &PostgresEventRepository{db: db}
}

func (r *PostgresEventRepository) Create(ctx context.Context, rec *event.StoredRecord) error {
	query := `INSERT INTO events (day_month, year, description, special_rule, week_number)
               VALUES ($1, $2, $3, $4, $5)
               RETURNING id, created_at`

	year, err := nullYear(rec.Year)
	if err != nil {
		return err
	}
	weekNumber := sql.NullInt32{Int32: int32(rec.WeekNumber), Valid: rec.WeekNumber != 0}

	err = r.db.QueryRowContext(ctx, query, rec.DayMonth, year, rec.Description, rec.SpecialRule, weekNumber).
		Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}
	return nil
}

// ListAll returns every stored record in insertion order.
func (r *PostgresEventRepository) ListAll(ctx context.Context) ([]*event.StoredRecord, error) {
	query := `SELECT id, day_month, year, description, special_rule, week_number, created_at
               FROM events ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	records := make([]*event.StoredRecord, 0)
	for rows.Next() {
		var (
			rec        event.StoredRecord
			year       sql.NullInt32
			weekNumber sql.NullInt32
		)
		if err := rows.Scan(&rec.ID, &rec.DayMonth, &year, &rec.Description, &rec.SpecialRule, &weekNumber, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		if year.Valid {
			rec.Year = strconv.Itoa(int(year.Int32))
		}
		if weekNumber.Valid {
			rec.WeekNumber = int(weekNumber.Int32)
		}
		records = append(records, &rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}
	return records, nil
}

func (r *PostgresEventRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if affected == 0 {
		return event.ErrRecordNotFound
	}
	return nil
}

// nullYear converts the raw year of a record into a column value. Records are
// validated before they are stored, so a non-numeric year is a caller bug.
func nullYear(raw string) (sql.NullInt32, error) {
	if raw == "" {
		return sql.NullInt32{}, nil
	}
	y, err := strconv.Atoi(raw)
	if err != nil {
		return sql.NullInt32{}, fmt.Errorf("error creating event: year %q: %w", raw, err)
	}
	return sql.NullInt32{Int32: int32(y), Valid: true}, nil
}
