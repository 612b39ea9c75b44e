package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/emrgen/wiki/internal/model"
	"github.com/emrgen/wiki/internal/tester"
)

func TestGormStore_GetEntryNotFound(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	gormStore := NewGormStore(tester.TestDB())

	_, err := gormStore.GetEntry(context.TODO(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

// edits must come back in chronological order no matter the insertion order;
// edit ids are opaque and carry no ordering
func TestGormStore_ListEditsOrder(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	gormStore := NewGormStore(tester.TestDB())
	entryID := uuid.New()

	base := time.Now().UTC().Truncate(time.Second)
	times := []time.Time{
		base.Add(2 * time.Minute),
		base,
		base.Add(1 * time.Minute),
	}

	for _, at := range times {
		err := gormStore.CreateEdit(context.TODO(), &model.Edit{
			ID:         uuid.New().String(),
			EntryID:    entryID.String(),
			Content:    "content",
			ModifiedBy: "alice",
			ModifiedAt: at,
		})
		assert.NoError(t, err)
	}

	edits, err := gormStore.ListEdits(context.TODO(), entryID)
	assert.NoError(t, err)
	assert.Len(t, edits, 3)

	for i := 1; i < len(edits); i++ {
		assert.True(t, !edits[i].ModifiedAt.Before(edits[i-1].ModifiedAt))
	}
	assert.True(t, edits[0].ModifiedAt.Equal(base))
}

func TestGormStore_TransactionRollback(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	gormStore := NewGormStore(tester.TestDB())

	entry := &model.Entry{
		ID:             uuid.New().String(),
		Title:          "Intro",
		Content:        "line1",
		Version:        1,
		CreatedBy:      "alice",
		LastModifiedBy: "alice",
		LastModifiedAt: time.Now().UTC(),
	}

	// a failing transaction must leave nothing behind
	err := gormStore.Transaction(context.TODO(), func(tx Store) error {
		if err := tx.CreateEntry(context.TODO(), entry); err != nil {
			return err
		}

		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	_, err = gormStore.GetEntry(context.TODO(), uuid.MustParse(entry.ID))
	assert.ErrorIs(t, err, ErrNotFound)
}
