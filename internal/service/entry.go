package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/emrgen/wiki/internal/cache"
	"github.com/emrgen/wiki/internal/compress"
	"github.com/emrgen/wiki/internal/model"
	"github.com/emrgen/wiki/internal/store"
)

// NewEntryService creates a new EntryService. The compression name selects
// the codec recorded on new edit snapshots; it must be known to the compress
// package.
func NewEntryService(compression string, store store.Store, cache cache.EntryCache) (*EntryService, error) {
	codec, err := compress.ForName(compression)
	if err != nil {
		return nil, err
	}

	service := &EntryService{
		compression: compression,
		codec:       codec,
		cache:       cache,
		store:       store,
	}

	return service, nil
}

// EntryService is the single writer path for entries. Every update appends
// the prior content to the edit log and overwrites the entry inside one
// transaction, guarded by a per-entry lock.
type EntryService struct {
	compression string
	codec       compress.Compress
	cache       cache.EntryCache
	store       store.Store
	locks       keyedMutex
}

// CreateEntryRequest creates a named entry. All fields are required.
type CreateEntryRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedBy string `json:"createdBy"`
}

// UpdateEntryRequest overwrites an entry's content. Summary is optional;
// ExpectedVersion enables optimistic concurrency when supplied.
type UpdateEntryRequest struct {
	Content         string `json:"content"`
	ModifiedBy      string `json:"modifiedBy"`
	Summary         string `json:"summary"`
	ExpectedVersion *int64 `json:"expectedVersion"`
}

// CreateEntry creates a new entry together with its initial edit, so the
// history is complete from the empty string on.
func (s *EntryService) CreateEntry(ctx context.Context, request *CreateEntryRequest) (*model.Entry, error) {
	if request.Title == "" {
		return nil, fmt.Errorf("%w: title", ErrValidation)
	}
	if request.Content == "" {
		return nil, fmt.Errorf("%w: content", ErrValidation)
	}
	if request.CreatedBy == "" {
		return nil, fmt.Errorf("%w: createdBy", ErrValidation)
	}

	now := time.Now().UTC()
	entry := &model.Entry{
		ID:             uuid.New().String(),
		Title:          request.Title,
		Content:        request.Content,
		Version:        1,
		CreatedBy:      request.CreatedBy,
		LastModifiedBy: request.CreatedBy,
		LastModifiedAt: now,
	}
	entry.CreatedAt = now

	snapshot, err := s.codec.Encode([]byte(""))
	if err != nil {
		return nil, err
	}

	err = s.store.Transaction(ctx, func(tx store.Store) error {
		if err := tx.CreateEntry(ctx, entry); err != nil {
			return err
		}

		return tx.CreateEdit(ctx, &model.Edit{
			ID:          uuid.New().String(),
			EntryID:     entry.ID,
			Content:     string(snapshot),
			Compression: s.compression,
			ModifiedBy:  request.CreatedBy,
			ModifiedAt:  now,
			Summary:     model.InitialEditSummary,
		})
	})
	if err != nil {
		return nil, err
	}

	s.setCache(ctx, entry)

	return entry, nil
}

// GetEntry retrieves an entry by id.
func (s *EntryService) GetEntry(ctx context.Context, id string) (*model.Entry, error) {
	entryID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrEntryNotFound
	}

	if cached, err := s.cache.GetEntry(ctx, entryID); err != nil {
		logrus.Warnf("entry cache get failed: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	entry, err := s.store.GetEntry(ctx, entryID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	s.setCache(ctx, entry)

	return entry, nil
}

// ListEntries retrieves all entries ordered by last modification, newest first.
func (s *EntryService) ListEntries(ctx context.Context) ([]*model.Entry, int64, error) {
	return s.store.ListEntries(ctx)
}

// UpdateEntry overwrites the entry content. The read-append-overwrite
// sequence runs inside one transaction under the per-entry lock: concurrent
// updates to the same entry are serialized, each leaving exactly one edit.
func (s *EntryService) UpdateEntry(ctx context.Context, id string, request *UpdateEntryRequest) (*model.Entry, error) {
	if request.Content == "" {
		return nil, fmt.Errorf("%w: content", ErrValidation)
	}
	if request.ModifiedBy == "" {
		return nil, fmt.Errorf("%w: modifiedBy", ErrValidation)
	}

	entryID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrEntryNotFound
	}

	unlock := s.locks.Lock(entryID.String())
	defer unlock()

	now := time.Now().UTC()

	var entry *model.Entry
	err = s.store.Transaction(ctx, func(tx store.Store) error {
		entry, err = tx.GetEntry(ctx, entryID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrEntryNotFound
		}
		if err != nil {
			return err
		}

		if request.ExpectedVersion != nil && *request.ExpectedVersion != entry.Version {
			return ErrVersionMismatch
		}

		// snapshot the content as it existed before this write
		snapshot, err := s.codec.Encode([]byte(entry.Content))
		if err != nil {
			return err
		}

		err = tx.CreateEdit(ctx, &model.Edit{
			ID:          uuid.New().String(),
			EntryID:     entry.ID,
			Content:     string(snapshot),
			Compression: s.compression,
			ModifiedBy:  request.ModifiedBy,
			ModifiedAt:  now,
			Summary:     request.Summary,
		})
		if err != nil {
			return err
		}

		entry.Content = request.Content
		entry.LastModifiedBy = request.ModifiedBy
		entry.LastModifiedAt = now
		entry.Version = entry.Version + 1

		return tx.UpdateEntry(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.setCache(ctx, entry)

	return entry, nil
}

// setCache is best effort, a cache failure never fails the request.
func (s *EntryService) setCache(ctx context.Context, entry *model.Entry) {
	if err := s.cache.SetEntry(ctx, entry); err != nil {
		logrus.Warnf("entry cache set failed: %v", err)
	}
}
