package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
)

// FeedbackRepository implements the feedback repository interface using GORM
type FeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
	}
}

// Create appends a feedback entry
func (r *FeedbackRepository) Create(ctx context.Context, feedback *entities.Feedback) error {
	if err := r.db.WithContext(ctx).Create(feedback).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// List returns all feedback entries, newest first
func (r *FeedbackRepository) List(ctx context.Context) ([]*entities.Feedback, error) {
	var entries []*entities.Feedback
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return entries, nil
}

// ListByMeetingID returns feedback entries for one meeting, newest first
func (r *FeedbackRepository) ListByMeetingID(ctx context.Context, meetingID int) ([]*entities.Feedback, error) {
	var entries []*entities.Feedback
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list feedback by meeting: %w", err)
	}
	return entries, nil
}
