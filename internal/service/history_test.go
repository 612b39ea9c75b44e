package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/emrgen/wiki/internal/compress"
	"github.com/emrgen/wiki/internal/diff"
	"github.com/emrgen/wiki/internal/store"
	"github.com/emrgen/wiki/internal/tester"
)

func TestHistoryService_GetHistory(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	gormStore := store.NewGormStore(tester.TestDB())
	client, err := NewEntryService(compress.None, gormStore, tester.Cache())
	assert.NoError(t, err)
	history := NewHistoryService(gormStore)

	entry, err := client.CreateEntry(context.TODO(), &CreateEntryRequest{
		Title:     "Intro",
		Content:   "line1",
		CreatedBy: "alice",
	})
	assert.NoError(t, err)

	_, err = client.UpdateEntry(context.TODO(), entry.ID, &UpdateEntryRequest{
		Content:    "line1\nline2",
		ModifiedBy: "bob",
		Summary:    "add line2",
	})
	assert.NoError(t, err)

	revisions, err := history.GetHistory(context.TODO(), entry.ID)
	assert.NoError(t, err)
	assert.Len(t, revisions, 2)

	// newest first
	newest := revisions[0]
	assert.Equal(t, "bob", newest.ModifiedBy)
	assert.Equal(t, "add line2", newest.Summary)
	assert.Equal(t, []diff.Op{
		{Tag: diff.Equal, Line: "line1"},
		{Tag: diff.Insert, Line: "line2"},
	}, newest.Diff)

	oldest := revisions[1]
	assert.Equal(t, "alice", oldest.ModifiedBy)
	assert.Equal(t, "Initial creation", oldest.Summary)
	assert.Equal(t, []diff.Op{
		{Tag: diff.Insert, Line: "line1"},
	}, oldest.Diff)
}

func TestHistoryService_Completeness(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	gormStore := store.NewGormStore(tester.TestDB())
	client, err := NewEntryService(compress.None, gormStore, tester.Cache())
	assert.NoError(t, err)
	history := NewHistoryService(gormStore)

	entry, err := client.CreateEntry(context.TODO(), &CreateEntryRequest{
		Title:     "Intro",
		Content:   "v0",
		CreatedBy: "alice",
	})
	assert.NoError(t, err)

	const updates = 4
	for i := 1; i <= updates; i++ {
		_, err = client.UpdateEntry(context.TODO(), entry.ID, &UpdateEntryRequest{
			Content:    fmt.Sprintf("v%d", i),
			ModifiedBy: "bob",
			Summary:    fmt.Sprintf("rev %d", i),
		})
		assert.NoError(t, err)
	}

	revisions, err := history.GetHistory(context.TODO(), entry.ID)
	assert.NoError(t, err)
	assert.Len(t, revisions, updates+1)

	// ordered newest first, ending with the initial creation
	for i := 1; i < len(revisions); i++ {
		assert.True(t, !revisions[i-1].ModifiedAt.Before(revisions[i].ModifiedAt))
	}
	assert.Equal(t, "Initial creation", revisions[len(revisions)-1].Summary)
}

func TestHistoryService_InitialRevision(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	gormStore := store.NewGormStore(tester.TestDB())
	client, err := NewEntryService(compress.None, gormStore, tester.Cache())
	assert.NoError(t, err)
	history := NewHistoryService(gormStore)

	entry, err := client.CreateEntry(context.TODO(), &CreateEntryRequest{
		Title:     "Intro",
		Content:   "line1\nline2\nline3",
		CreatedBy: "alice",
	})
	assert.NoError(t, err)

	revisions, err := history.GetHistory(context.TODO(), entry.ID)
	assert.NoError(t, err)
	assert.Len(t, revisions, 1)

	initial := revisions[0]
	added, removed := 0, 0
	for _, op := range initial.Diff {
		switch op.Tag {
		case diff.Insert:
			added++
		case diff.Delete:
			removed++
		}
	}

	assert.Equal(t, 3, added)
	assert.Equal(t, 0, removed)
}

func TestHistoryService_NotFound(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	history := NewHistoryService(store.NewGormStore(tester.TestDB()))

	_, err := history.GetHistory(context.TODO(), uuid.New().String())
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestHistoryService_CompressedSnapshots(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	gormStore := store.NewGormStore(tester.TestDB())
	history := NewHistoryService(gormStore)

	for _, compression := range []string{compress.Gzip, compress.LZ4, compress.Brotli} {
		t.Run(compression, func(t *testing.T) {
			client, err := NewEntryService(compression, gormStore, tester.Cache())
			assert.NoError(t, err)

			entry, err := client.CreateEntry(context.TODO(), &CreateEntryRequest{
				Title:     "Intro",
				Content:   "line1",
				CreatedBy: "alice",
			})
			assert.NoError(t, err)

			_, err = client.UpdateEntry(context.TODO(), entry.ID, &UpdateEntryRequest{
				Content:    "line1\nline2",
				ModifiedBy: "bob",
			})
			assert.NoError(t, err)

			revisions, err := history.GetHistory(context.TODO(), entry.ID)
			assert.NoError(t, err)
			assert.Len(t, revisions, 2)

			assert.Equal(t, []diff.Op{
				{Tag: diff.Equal, Line: "line1"},
				{Tag: diff.Insert, Line: "line2"},
			}, revisions[0].Diff)
		})
	}
}
