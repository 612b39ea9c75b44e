package cache

import (
	"context"

	"github.com/google/uuid"

	"github.com/emrgen/wiki/internal/model"
)

// EntryCache is a best-effort read cache for entries. A miss returns
// (nil, nil); cache failures must never fail the request that hit them.
type EntryCache interface {
	// GetEntry gets an entry from the cache.
	GetEntry(ctx context.Context, id uuid.UUID) (*model.Entry, error)
	// SetEntry sets an entry in the cache.
	SetEntry(ctx context.Context, entry *model.Entry) error
	// DeleteEntry deletes an entry from the cache.
	DeleteEntry(ctx context.Context, id uuid.UUID) error
}
