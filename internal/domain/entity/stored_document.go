package entity

import "time"

// StoredDocument is the database row holding a serialized Document
type StoredDocument struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Data      []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for StoredDocument
func (StoredDocument) TableName() string {
	return "store_documents"
}
