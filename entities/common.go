package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

// Document is embedded by every content type. DocumentID is the stable public identifier;
// ID stays internal to joins.
type Document struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	DocumentID string `gorm:"type:varchar(36);uniqueIndex" json:"document_id"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.DocumentID == "" {
		d.DocumentID = uuid.NewString()
	}
	return nil
}
