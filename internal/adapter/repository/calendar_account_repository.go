package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
)

// CalendarAccountRepository implements the calendar account repository
// interface using GORM
type CalendarAccountRepository struct {
	db *gorm.DB
}

// NewCalendarAccountRepository creates a new calendar account repository
func NewCalendarAccountRepository(db *gorm.DB) *CalendarAccountRepository {
	return &CalendarAccountRepository{
		db: db,
	}
}

// Upsert creates or replaces the account for (user, provider)
func (r *CalendarAccountRepository) Upsert(ctx context.Context, account *entities.CalendarAccount) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "provider"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"access_token", "refresh_token", "token_expiry",
				"apple_id", "app_password", "metadata", "updated_at",
			}),
		}).
		Create(account).Error; err != nil {
		return fmt.Errorf("failed to upsert calendar account: %w", err)
	}
	return nil
}

// FindByUserAndProvider finds one connected account
func (r *CalendarAccountRepository) FindByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entities.CalendarProvider) (*entities.CalendarAccount, error) {
	var account entities.CalendarAccount
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider).
		First(&account).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrCalendarAccountNotFound
		}
		return nil, fmt.Errorf("failed to find calendar account: %w", err)
	}
	return &account, nil
}

// FindByUserID lists every account the user has connected
func (r *CalendarAccountRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.CalendarAccount, error) {
	var accounts []*entities.CalendarAccount
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("provider ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list calendar accounts: %w", err)
	}
	return accounts, nil
}

// TouchLastSynced records a successful sync
func (r *CalendarAccountRepository) TouchLastSynced(ctx context.Context, accountID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Model(&entities.CalendarAccount{}).
		Where("id = ?", accountID).
		Update("last_synced_at", time.Now()).Error; err != nil {
		return fmt.Errorf("failed to update sync time: %w", err)
	}
	return nil
}

// Delete disconnects an account
func (r *CalendarAccountRepository) Delete(ctx context.Context, accountID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Delete(&entities.CalendarAccount{}, "id = ?", accountID).Error; err != nil {
		return fmt.Errorf("failed to delete calendar account: %w", err)
	}
	return nil
}
