package event

import (
	"context"
	"fmt"
	"time"
)

// StoredRecord is a raw record as kept by a Repository. It is validated by
// New when read, so a malformed row never breaks a listing.
type StoredRecord struct {
	ID int64
	Record
	CreatedAt time.Time
}

// Repository supplies the ordered collection of stored event records.
type Repository interface {
	Create(ctx context.Context, r *StoredRecord) error
	ListAll(ctx context.Context) ([]*StoredRecord, error)
	Delete(ctx context.Context, id int64) error
}

var ErrRecordNotFound = fmt.Errorf("event record not found")
