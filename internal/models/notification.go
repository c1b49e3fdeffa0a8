package models

import "time"

// Notification record statuses. A record is created as pending by the app
// and moves to exactly one terminal status.
const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// NotificationRecord represents one queued delivery request stored in the
// notification_queue collection
type NotificationRecord struct {
	ID     string `firestore:"-"`
	Status string `firestore:"status"`
	Title  string `firestore:"title"`
	Body   string `firestore:"body"`
	Type   string `firestore:"type"` // promotion, order, shipping, payment, product, price, security, system

	// Data is an opaque payload merged into the FCM data map alongside the
	// reserved "type" key. Values may be strings, numbers or booleans.
	Data map[string]interface{} `firestore:"data"`

	// Optional direct recipient token and/or recipient user.
	FCMToken string `firestore:"fcmToken"`
	UserID   string `firestore:"userId"`

	CreatedAt time.Time `firestore:"createdAt"`

	// Outcome fields, written once by the dispatcher.
	SentAt      time.Time `firestore:"sentAt"`
	FailedAt    time.Time `firestore:"failedAt"`
	SkippedAt   time.Time `firestore:"skippedAt"`
	MessageID   string    `firestore:"messageId"`
	SentToCount int       `firestore:"sentToCount"`
	Error       string    `firestore:"error"`
	Reason      string    `firestore:"reason"`
}

// SendNotificationRequest is the body of the direct send endpoint.
type SendNotificationRequest struct {
	FCMToken         string                 `json:"fcmToken,omitempty"`
	UserID           string                 `json:"userId,omitempty"`
	Title            string                 `json:"title"`
	Body             string                 `json:"body"`
	Type             string                 `json:"type,omitempty"`
	NotificationData map[string]interface{} `json:"notificationData,omitempty"`
}

// SendTopicRequest is the body of the topic send endpoint.
type SendTopicRequest struct {
	Topic            string                 `json:"topic"`
	Title            string                 `json:"title"`
	Body             string                 `json:"body"`
	Type             string                 `json:"type,omitempty"`
	NotificationData map[string]interface{} `json:"notificationData,omitempty"`
}

// SendNotificationResponse is returned by both send endpoints.
type SendNotificationResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
}
