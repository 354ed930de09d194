package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
)

// CalendarAccountRepository defines the interface for connected calendar sources
type CalendarAccountRepository interface {
	// Upsert creates or replaces the account for (user, provider)
	Upsert(ctx context.Context, account *entities.CalendarAccount) error

	// FindByUserAndProvider finds one connected account
	FindByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entities.CalendarProvider) (*entities.CalendarAccount, error)

	// FindByUserID lists every account the user has connected
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.CalendarAccount, error)

	// TouchLastSynced records a successful sync
	TouchLastSynced(ctx context.Context, accountID uuid.UUID) error

	// Delete disconnects an account
	Delete(ctx context.Context, accountID uuid.UUID) error
}
