package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/emrgen/wiki/internal/model"
)

var _ EntryCache = (*MemoryEntryCache)(nil)

// MemoryEntryCache is an in-process EntryCache used when no redis address is
// configured, and by the tests.
type MemoryEntryCache struct {
	entries *gocache.Cache
}

func NewMemoryEntryCache() *MemoryEntryCache {
	return &MemoryEntryCache{
		entries: gocache.New(entryTTL, 10*time.Minute),
	}
}

func (m *MemoryEntryCache) GetEntry(ctx context.Context, id uuid.UUID) (*model.Entry, error) {
	v, ok := m.entries.Get(entryKey(id.String()))
	if !ok {
		return nil, nil
	}

	entry, ok := v.(model.Entry)
	if !ok {
		return nil, nil
	}

	return &entry, nil
}

func (m *MemoryEntryCache) SetEntry(ctx context.Context, entry *model.Entry) error {
	// store a copy, callers may mutate the entry after caching it
	m.entries.Set(entryKey(entry.ID), *entry, entryTTL)
	return nil
}

func (m *MemoryEntryCache) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	m.entries.Delete(entryKey(id.String()))
	return nil
}
