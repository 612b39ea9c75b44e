package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/emrgen/wiki/internal/model"
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

var _ Store = (*GormStore)(nil)

type GormStore struct {
	db *gorm.DB
}

func (g *GormStore) CreateEntry(ctx context.Context, entry *model.Entry) error {
	return g.db.WithContext(ctx).Create(entry).Error
}

func (g *GormStore) GetEntry(ctx context.Context, id uuid.UUID) (*model.Entry, error) {
	var entry model.Entry
	err := g.db.WithContext(ctx).Where("id = ?", id.String()).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

func (g *GormStore) ListEntries(ctx context.Context) ([]*model.Entry, int64, error) {
	var entries []*model.Entry
	err := g.db.WithContext(ctx).Order("last_modified_at desc, id asc").Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, int64(len(entries)), nil
}

func (g *GormStore) UpdateEntry(ctx context.Context, entry *model.Entry) error {
	return g.db.WithContext(ctx).Save(entry).Error
}

func (g *GormStore) CreateEdit(ctx context.Context, edit *model.Edit) error {
	return g.db.WithContext(ctx).Create(edit).Error
}

// ListEdits orders by the modification time with the id as a stable tie-break.
// Edit ids are opaque; contiguity is never assumed.
func (g *GormStore) ListEdits(ctx context.Context, entryID uuid.UUID) ([]*model.Edit, error) {
	var edits []*model.Edit
	err := g.db.WithContext(ctx).
		Where("entry_id = ?", entryID.String()).
		Order("modified_at asc, id asc").
		Find(&edits).Error
	if err != nil {
		return nil, err
	}

	return edits, nil
}

func (g *GormStore) Migrate() error {
	return model.Migrate(g.db)
}

func (g *GormStore) Transaction(ctx context.Context, f func(tx Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return f(&GormStore{db: tx})
	})
}
