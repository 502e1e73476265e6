package models

import "time"

// Notification lifecycle states. Transitions are one-way:
// pending -> sent | failed. A dispatch where some subscribers fail but
// the batch completes is still "sent"; only an engine-level inability
// to run the dispatch produces "failed".
const (
	NotificationStatusPending = "pending"
	NotificationStatusSent    = "sent"
	NotificationStatusFailed  = "failed"
)

// Content limits enforced before a notification record is created.
const (
	NotificationTitleMaxLen = 100
	NotificationBodyMaxLen  = 500
)

// Notification is one send attempt for one client. RecipientCount is the
// subscriber snapshot at dispatch time; SuccessCount + FailureCount equals
// RecipientCount once the record reaches "sent".
type Notification struct {
	ID             string     `bson:"id" json:"id"`
	ClientID       string     `bson:"clientId" json:"clientId"`
	Title          string     `bson:"title" json:"title"`
	Body           string     `bson:"body" json:"body"`
	ImageURL       string     `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	TargetURL      string     `bson:"targetUrl,omitempty" json:"targetUrl,omitempty"`
	Status         string     `bson:"status" json:"status"`
	RecipientCount int        `bson:"recipientCount" json:"recipientCount"`
	SuccessCount   int        `bson:"successCount" json:"successCount"`
	FailureCount   int        `bson:"failureCount" json:"failureCount"`
	ErrorMessage   string     `bson:"errorMessage,omitempty" json:"errorMessage,omitempty"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
	CompletedAt    *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}

// NotificationStats aggregates delivery bookkeeping across a client's
// finalized notifications.
type NotificationStats struct {
	TotalSent     int `bson:"totalSent" json:"totalSent"`
	TotalFailed   int `bson:"totalFailed" json:"totalFailed"`
	TotalSuccess  int `bson:"totalSuccess" json:"totalSuccess"`
	TotalFailures int `bson:"totalFailures" json:"totalFailures"`
}
