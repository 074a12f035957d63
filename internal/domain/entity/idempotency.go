package entity

import (
	"time"
)

// IdempotencyKey stores the response of an issued receipt so a retried
// request replays it instead of issuing a second receipt
type IdempotencyKey struct {
	Key          string    `gorm:"primaryKey;size:255"`
	Scope        string    `gorm:"primaryKey;size:255"` // client the key belongs to
	Endpoint     string    `gorm:"size:255;not null"`
	ResponseCode int       `gorm:"not null"`
	ResponseBody string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	ExpiresAt    time.Time `gorm:"not null;index"`
}

// TableName returns the table name for IdempotencyKey
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// IsExpired checks if the idempotency key has expired
func (i *IdempotencyKey) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
