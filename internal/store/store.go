package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/emrgen/wiki/internal/model"
)

// ErrNotFound is returned when a referenced entry does not exist.
var ErrNotFound = errors.New("entry not found")

type Store interface {
	EntryStore
	EditStore
	Transaction(ctx context.Context, f func(tx Store) error) error
	Migrate() error
}

type EntryStore interface {
	// CreateEntry creates a new entry.
	CreateEntry(ctx context.Context, entry *model.Entry) error
	// GetEntry retrieves an entry by ID.
	GetEntry(ctx context.Context, id uuid.UUID) (*model.Entry, error)
	// ListEntries retrieves all entries ordered by last modification, newest first.
	ListEntries(ctx context.Context) ([]*model.Entry, int64, error)
	// UpdateEntry overwrites an entry's mutable fields.
	UpdateEntry(ctx context.Context, entry *model.Entry) error
}

// EditStore is the append-only edit log. Entry existence is the caller's
// concern; the log itself never validates it.
type EditStore interface {
	// CreateEdit appends a new edit. Edits are immutable once created.
	CreateEdit(ctx context.Context, edit *model.Edit) error
	// ListEdits retrieves the edits of an entry in chronological order, oldest first.
	ListEdits(ctx context.Context, entryID uuid.UUID) ([]*model.Edit, error)
}
