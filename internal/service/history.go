package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/emrgen/wiki/internal/compress"
	"github.com/emrgen/wiki/internal/diff"
	"github.com/emrgen/wiki/internal/model"
	"github.com/emrgen/wiki/internal/store"
)

// NewHistoryService creates a new HistoryService.
func NewHistoryService(store store.Store) *HistoryService {
	return &HistoryService{
		store: store,
	}
}

// HistoryService answers how an entry evolved, as line diffs between the
// stored snapshots. It never writes.
type HistoryService struct {
	store store.Store
}

// Revision is one transition in an entry's history: who changed it, when,
// the writer's summary and the line diff the write produced.
type Revision struct {
	ModifiedBy string
	ModifiedAt time.Time
	Summary    string
	Diff       []diff.Op
}

// GetHistory returns the revisions of an entry, newest first. The oldest
// revision is always the initial creation, diffed against the empty string.
func (h *HistoryService) GetHistory(ctx context.Context, id string) ([]*Revision, error) {
	entryID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrEntryNotFound
	}

	var entry *model.Entry
	var edits []*model.Edit

	// read the entry and its edits in one transaction so a concurrent write
	// is observed entirely or not at all
	err = h.store.Transaction(ctx, func(tx store.Store) error {
		entry, err = tx.GetEntry(ctx, entryID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrEntryNotFound
		}
		if err != nil {
			return err
		}

		edits, err = tx.ListEdits(ctx, entryID)
		return err
	})
	if err != nil {
		return nil, err
	}

	// chronological content sequence: one snapshot per edit, oldest first,
	// then the live content
	contents := make([]string, 0, len(edits)+1)
	for _, edit := range edits {
		codec, err := compress.ForName(edit.Compression)
		if err != nil {
			return nil, err
		}

		snapshot, err := codec.Decode([]byte(edit.Content))
		if err != nil {
			return nil, err
		}

		contents = append(contents, string(snapshot))
	}
	contents = append(contents, entry.Content)

	// the edit that snapshotted contents[i] is the write that produced
	// contents[i+1], so its metadata describes that transition
	revisions := make([]*Revision, 0, len(edits))
	for i, edit := range edits {
		revisions = append(revisions, &Revision{
			ModifiedBy: edit.ModifiedBy,
			ModifiedAt: edit.ModifiedAt,
			Summary:    edit.Summary,
			Diff:       diff.Strings(contents[i], contents[i+1]),
		})
	}

	// newest first
	for i, j := 0, len(revisions)-1; i < j; i, j = i+1, j-1 {
		revisions[i], revisions[j] = revisions[j], revisions[i]
	}

	return revisions, nil
}
