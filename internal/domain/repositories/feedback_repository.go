package repositories

import (
	"context"

	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
)

// FeedbackRepository defines the interface for the append-only feedback log
type FeedbackRepository interface {
	// Create appends a feedback entry
	Create(ctx context.Context, feedback *entities.Feedback) error

	// List returns all feedback entries, oldest first
	List(ctx context.Context) ([]*entities.Feedback, error)

	// ListByMeetingID returns the feedback recorded for one meeting
	ListByMeetingID(ctx context.Context, meetingID int) ([]*entities.Feedback, error)
}
