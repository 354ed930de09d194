package feedback

import (
	"context"

	"go.uber.org/zap"

	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
	"github.com/johnquangdev/chief-of-staff/internal/domain/repositories"
)

// Service records the user's keep/delegate/decline decisions on audited
// meetings. The log is append-only so later analysis can compare the
// scorer's recommendations against what the user actually did.
type Service struct {
	repo   repositories.FeedbackRepository
	logger *zap.Logger
}

// NewService creates a feedback service
func NewService(repo repositories.FeedbackRepository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Record validates and stores a decision for a meeting.
func (s *Service) Record(ctx context.Context, meetingID int, action entities.FeedbackAction, notes *string) (*entities.Feedback, error) {
	if !action.IsValid() {
		return nil, entities.ErrInvalidFeedbackAction
	}

	fb := entities.NewFeedback(meetingID, action, notes)
	if err := s.repo.Create(ctx, fb); err != nil {
		return nil, err
	}

	s.logger.Info("recorded meeting feedback",
		zap.Int("meeting_id", meetingID),
		zap.String("action", string(action)),
	)
	return fb, nil
}

// List returns every recorded decision, newest first.
func (s *Service) List(ctx context.Context) ([]*entities.Feedback, error) {
	return s.repo.List(ctx)
}

// ListByMeeting returns the decisions recorded for one meeting.
func (s *Service) ListByMeeting(ctx context.Context, meetingID int) ([]*entities.Feedback, error) {
	return s.repo.ListByMeetingID(ctx, meetingID)
}
