package model

import (
	"time"

	"gorm.io/gorm"
)

// InitialEditSummary is the summary recorded on the edit that accompanies
// entry creation, so every entry has a gap-free history from the empty string.
const InitialEditSummary = "Initial creation"

// Edit is an append-only snapshot of an entry's content as it existed
// immediately before the write that produced the edit. Edits are never
// updated or deleted.
type Edit struct {
	gorm.Model
	ID          string `gorm:"primaryKey;uuid;not null;"`
	EntryID     string `gorm:"uuid;not null;index"`
	Content     string `gorm:"not null"`
	Compression string // the compression algorithm used to compress the snapshot
	ModifiedBy  string    `gorm:"not null"`
	ModifiedAt  time.Time `gorm:"not null;index"`
	Summary     string
}

func (Edit) TableName() string {
	return "edits"
}
