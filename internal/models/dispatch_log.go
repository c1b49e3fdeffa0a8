package models

import "time"

// DispatchLog is one audit row per processed record or direct send (PostgreSQL)
type DispatchLog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RecordID    string    `json:"record_id" gorm:"size:64;index"` // queue document ID, empty for direct sends
	UserID      string    `json:"user_id" gorm:"size:64;index"`
	Type        string    `json:"type" gorm:"size:30;index"`
	Status      string    `json:"status" gorm:"size:20;index"` // sent, skipped, failed
	MessageID   string    `json:"message_id"`
	SentToCount int       `json:"sent_to_count"`
	Detail      string    `json:"detail"` // skip reason or error message
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
