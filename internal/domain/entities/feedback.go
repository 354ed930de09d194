package entities

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackAction is the decision the user recorded for a meeting.
type FeedbackAction string

const (
	FeedbackActionKeep     FeedbackAction = "keep"
	FeedbackActionDelegate FeedbackAction = "delegate"
	FeedbackActionDecline  FeedbackAction = "decline"
)

// IsValid checks if the feedback action is valid
func (a FeedbackAction) IsValid() bool {
	switch a {
	case FeedbackActionKeep, FeedbackActionDelegate, FeedbackActionDecline:
		return true
	}
	return false
}

// Feedback records a user decision on an audited meeting. The log is
// append-only; entries are never updated.
type Feedback struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID int            `json:"meeting_id" gorm:"not null;index"`
	Action    FeedbackAction `json:"action" gorm:"type:varchar(20);not null"`
	Notes     *string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for Feedback
func (Feedback) TableName() string {
	return "feedback"
}

// NewFeedback creates a feedback entry for a meeting decision.
func NewFeedback(meetingID int, action FeedbackAction, notes *string) *Feedback {
	return &Feedback{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Action:    action,
		Notes:     notes,
	}
}
