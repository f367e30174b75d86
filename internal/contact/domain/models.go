package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// ContactSubmission is one validated contact-form payload plus request
// metadata captured at intake time. Email is always stored normalized
// (trimmed, lower-cased); the rate-limit lookup relies on that.
type ContactSubmission struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"not null" json:"name"`
	Email     string       `gorm:"not null;index" json:"email"`
	Message   string       `gorm:"not null" json:"message"`
	CreatedAt time.Time    `gorm:"not null;index" json:"created_at"`
	Read      bool         `gorm:"not null;default:false" json:"read"`
	SourceIP  string       `gorm:"not null" json:"source_ip"`
	UserAgent string       `gorm:"not null" json:"user_agent"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

// SubmitRequest carries the raw form fields and request metadata into the
// intake pipeline. SourceIP and UserAgent may be empty; they default to
// "unknown" at persistence time.
type SubmitRequest struct {
	Name      string
	Email     string
	Message   string
	SourceIP  string
	UserAgent string
}

// NotificationStatus tags the outcome of the best-effort notification.
type NotificationStatus string

const (
	NotificationSent    NotificationStatus = "sent"
	NotificationSkipped NotificationStatus = "skipped"
	NotificationFailed  NotificationStatus = "failed"
)

// NotificationResult reports whether the outbound notification was sent,
// skipped for lack of configuration, or attempted and failed. A failed
// notification never fails the request; Reason carries the failure detail.
type NotificationResult struct {
	Status NotificationStatus
	Reason string
}

// SubmitResponse is returned once persistence succeeded.
type SubmitResponse struct {
	Submission   ContactSubmission
	Notification NotificationResult
}

type ListRequest struct {
	Limit int
}
