// Package yamlstore keeps event records in a single YAML file. It is meant for
// small deployments that do not run PostgreSQL; the file may be edited by hand
// between reads.
package yamlstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"event_reminder_bot/internal/domain/event"

	"gopkg.in/yaml.v3"
)

type fileRecord struct {
	ID          int64     `yaml:"id"`
	DayMonth    string    `yaml:"day_month"`
	Year        string    `yaml:"year,omitempty"`
	Description string    `yaml:"description"`
	SpecialRule bool      `yaml:"special_rule,omitempty"`
	WeekNumber  int       `yaml:"week_number,omitempty"`
	CreatedAt   time.Time `yaml:"created_at,omitempty"`
}

type document struct {
	Events []fileRecord `yaml:"events"`
}

// Store implements event.Repository on top of a YAML file.
type Store struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// Open returns a store for path, creating an empty file on first run.
func Open(path string) (*Store, error) {
	s := &Store{path: path, now: time.Now}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := s.write(&document{Events: []fileRecord{}}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("yamlstore: stat %s: %w", path, err)
	}
	return s, nil
}

func (s *Store) Create(_ context.Context, rec *event.StoredRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	var maxID int64
	for _, r := range doc.Events {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	rec.ID = maxID + 1
	rec.CreatedAt = s.now().UTC().Truncate(time.Second)

	doc.Events = append(doc.Events, fileRecord{
		ID:          rec.ID,
		DayMonth:    rec.DayMonth,
		Year:        rec.Year,
		Description: rec.Description,
		SpecialRule: rec.SpecialRule,
		WeekNumber:  rec.WeekNumber,
		CreatedAt:   rec.CreatedAt,
	})
	return s.write(doc)
}

// ListAll returns the records in file order.
func (s *Store) ListAll(_ context.Context) ([]*event.StoredRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	records := make([]*event.StoredRecord, 0, len(doc.Events))
	for _, r := range doc.Events {
		records = append(records, &event.StoredRecord{
			ID: r.ID,
			Record: event.Record{
				DayMonth:    r.DayMonth,
				Year:        r.Year,
				Description: r.Description,
				SpecialRule: r.SpecialRule,
				WeekNumber:  r.WeekNumber,
			},
			CreatedAt: r.CreatedAt,
		})
	}
	return records, nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	for i, r := range doc.Events {
		if r.ID == id {
			doc.Events = append(doc.Events[:i], doc.Events[i+1:]...)
			return s.write(doc)
		}
	}
	return event.ErrRecordNotFound
}

func (s *Store) read() (*document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("yamlstore: read %s: %w", s.path, err)
	}
	doc := &document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("yamlstore: parse %s: %w", s.path, err)
	}
	return doc, nil
}

// write replaces the file through a temporary sibling so readers never see a partial document.
func (s *Store) write(doc *document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("yamlstore: encode: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".events-*.yaml")
	if err != nil {
		return fmt.Errorf("yamlstore: write %s: %w", s.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("yamlstore: write %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("yamlstore: write %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("yamlstore: write %s: %w", s.path, err)
	}
	return nil
}
