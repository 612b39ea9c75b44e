package model

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Entry is a named wiki document. The title is fixed at creation, the content
// changes only through updates and every update leaves an Edit behind.
type Entry struct {
	gorm.Model
	ID             string `gorm:"primaryKey;uuid;not null;"`
	Title          string `gorm:"not null"`
	Content        string `gorm:"not null"`
	Version        int64
	CreatedBy      string    `gorm:"not null"`
	LastModifiedBy string    `gorm:"not null"`
	LastModifiedAt time.Time `gorm:"not null;index"`
}

func (e *Entry) MarshalBinary() ([]byte, error) {
	return json.Marshal(e)
}
