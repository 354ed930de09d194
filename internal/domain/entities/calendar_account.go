package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CalendarProvider identifies an external calendar service.
type CalendarProvider string

const (
	CalendarProviderGoogle CalendarProvider = "google"
	CalendarProviderApple  CalendarProvider = "apple"
)

// IsValid checks if the provider is supported
func (p CalendarProvider) IsValid() bool {
	switch p {
	case CalendarProviderGoogle, CalendarProviderApple:
		return true
	}
	return false
}

// CalendarAccount stores a user's connection to an external calendar.
// For Google the tokens come from the OAuth flow; for Apple they are the
// Apple ID and app-specific password supplied by the user.
type CalendarAccount struct {
	ID       uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID   uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index:idx_user_provider,unique"`
	Provider CalendarProvider `json:"provider" gorm:"type:varchar(20);not null;index:idx_user_provider,unique"`

	// Credentials. Never exposed in JSON.
	AccessToken  *string    `json:"-" gorm:"type:text"`
	RefreshToken *string    `json:"-" gorm:"type:text"`
	TokenExpiry  *time.Time `json:"-" gorm:"type:timestamp"`
	AppleID      *string    `json:"-" gorm:"type:varchar(255)"`
	AppPassword  *string    `json:"-" gorm:"type:text"`

	Metadata datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb;default:'{}'"`

	LastSyncedAt *time.Time `json:"last_synced_at,omitempty" gorm:"type:timestamp"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for CalendarAccount
func (CalendarAccount) TableName() string {
	return "calendar_accounts"
}

// NewGoogleCalendarAccount creates an account backed by Google OAuth tokens.
func NewGoogleCalendarAccount(userID uuid.UUID, accessToken, refreshToken string, expiry time.Time) *CalendarAccount {
	acct := &CalendarAccount{
		ID:          uuid.New(),
		UserID:      userID,
		Provider:    CalendarProviderGoogle,
		AccessToken: &accessToken,
		TokenExpiry: &expiry,
	}
	if refreshToken != "" {
		acct.RefreshToken = &refreshToken
	}
	return acct
}

// NewAppleCalendarAccount creates an account backed by an app-specific password.
func NewAppleCalendarAccount(userID uuid.UUID, appleID, appPassword string) *CalendarAccount {
	return &CalendarAccount{
		ID:          uuid.New(),
		UserID:      userID,
		Provider:    CalendarProviderApple,
		AppleID:     &appleID,
		AppPassword: &appPassword,
	}
}
