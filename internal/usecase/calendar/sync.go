package calendar

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
	"github.com/johnquangdev/chief-of-staff/internal/domain/repositories"
)

// GoogleFetcher fetches upcoming events with an OAuth token.
type GoogleFetcher interface {
	FetchUpcomingEvents(ctx context.Context) ([]entities.Meeting, error)
}

// AppleFetcher fetches upcoming events with CalDAV credentials.
type AppleFetcher interface {
	FetchUpcomingEvents(ctx context.Context, appleID, appPassword string) ([]entities.Meeting, error)
}

// GoogleClientFactory builds an authenticated Google calendar client for
// a stored token.
type GoogleClientFactory func(ctx context.Context, token *oauth2.Token) GoogleFetcher

// SnapshotArchiver stores raw import payloads for later replay.
type SnapshotArchiver interface {
	ArchiveSnapshot(ctx context.Context, userID, source, content, contentType string) (string, error)
}

// Service merges the user's calendar sources into one meeting collection
// the audit pipeline can consume.
type Service struct {
	accounts    repositories.CalendarAccountRepository
	googleMaker GoogleClientFactory
	apple       AppleFetcher
	archiver    SnapshotArchiver
	csvPath     string
	logger      *zap.Logger
}

// NewService creates a calendar sync service. archiver may be nil when
// snapshot storage is not configured.
func NewService(
	accounts repositories.CalendarAccountRepository,
	googleMaker GoogleClientFactory,
	apple AppleFetcher,
	archiver SnapshotArchiver,
	csvPath string,
	logger *zap.Logger,
) *Service {
	return &Service{
		accounts:    accounts,
		googleMaker: googleMaker,
		apple:       apple,
		archiver:    archiver,
		csvPath:     csvPath,
		logger:      logger,
	}
}

// ImportCSV parses an uploaded calendar export and archives the raw
// payload when an archiver is configured.
func (s *Service) ImportCSV(ctx context.Context, userID uuid.UUID, content string) ([]entities.Meeting, error) {
	meetings, err := ParseCSV(strings.NewReader(content))
	if err != nil {
		return nil, err
	}

	if s.archiver != nil {
		if _, err := s.archiver.ArchiveSnapshot(ctx, userID.String(), "csv", content, "text/csv"); err != nil {
			// The import itself succeeded; losing the snapshot is not fatal.
			s.logger.Warn("failed to archive csv snapshot", zap.Error(err))
		}
	}

	s.logger.Info("imported calendar csv",
		zap.String("user_id", userID.String()),
		zap.Int("meetings", len(meetings)),
	)
	return meetings, nil
}

// LoadLocalCSV reads the configured sample calendar from disk.
func (s *Service) LoadLocalCSV() ([]entities.Meeting, error) {
	f, err := os.Open(s.csvPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseCSV(f)
}

// GoogleEvents fetches upcoming events for the user's connected Google
// calendar.
func (s *Service) GoogleEvents(ctx context.Context, userID uuid.UUID) ([]entities.Meeting, error) {
	account, err := s.accounts.FindByUserAndProvider(ctx, userID, entities.CalendarProviderGoogle)
	if err != nil {
		if errors.Is(err, entities.ErrCalendarAccountNotFound) {
			return nil, entities.ErrCalendarNotConnected
		}
		return nil, err
	}

	token := tokenFromAccount(account)
	fetcher := s.googleMaker(ctx, token)

	meetings, err := fetcher.FetchUpcomingEvents(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.TouchLastSynced(ctx, account.ID); err != nil {
		s.logger.Warn("failed to record sync time", zap.Error(err))
	}

	return meetings, nil
}

// ConnectApple verifies the supplied CalDAV credentials by fetching
// events, then stores the connection.
func (s *Service) ConnectApple(ctx context.Context, userID uuid.UUID, appleID, appPassword string) ([]entities.Meeting, error) {
	meetings, err := s.apple.FetchUpcomingEvents(ctx, appleID, appPassword)
	if err != nil {
		return nil, err
	}

	account := entities.NewAppleCalendarAccount(userID, appleID, appPassword)
	if err := s.accounts.Upsert(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("connected apple calendar",
		zap.String("user_id", userID.String()),
		zap.Int("meetings", len(meetings)),
	)
	return meetings, nil
}

// AppleEvents fetches events for the user's stored Apple connection.
func (s *Service) AppleEvents(ctx context.Context, userID uuid.UUID) ([]entities.Meeting, error) {
	account, err := s.accounts.FindByUserAndProvider(ctx, userID, entities.CalendarProviderApple)
	if err != nil {
		if errors.Is(err, entities.ErrCalendarAccountNotFound) {
			return nil, entities.ErrCalendarNotConnected
		}
		return nil, err
	}
	if account.AppleID == nil || account.AppPassword == nil {
		return nil, entities.ErrCalendarCredentials
	}

	meetings, err := s.apple.FetchUpcomingEvents(ctx, *account.AppleID, *account.AppPassword)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.TouchLastSynced(ctx, account.ID); err != nil {
		s.logger.Warn("failed to record sync time", zap.Error(err))
	}

	return meetings, nil
}

// Sync merges the local CSV calendar with every connected provider. A
// provider that fails is skipped with a warning so one bad connection
// does not sink the whole merge. Provider events receive IDs after the
// highest CSV ID.
func (s *Service) Sync(ctx context.Context, userID uuid.UUID) ([]entities.Meeting, error) {
	merged, err := s.LoadLocalCSV()
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		merged = nil
	}

	accounts, err := s.accounts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, account := range accounts {
		var meetings []entities.Meeting
		var fetchErr error

		switch account.Provider {
		case entities.CalendarProviderGoogle:
			meetings, fetchErr = s.GoogleEvents(ctx, userID)
		case entities.CalendarProviderApple:
			meetings, fetchErr = s.AppleEvents(ctx, userID)
		default:
			continue
		}

		if fetchErr != nil {
			s.logger.Warn("calendar source failed during sync",
				zap.String("provider", string(account.Provider)),
				zap.Error(fetchErr),
			)
			continue
		}
		merged = append(merged, meetings...)
	}

	assignIDs(merged)
	return merged, nil
}

// assignIDs numbers meetings without an ID after the highest existing one.
func assignIDs(meetings []entities.Meeting) {
	next := 0
	for _, m := range meetings {
		if m.ID > next {
			next = m.ID
		}
	}
	for i := range meetings {
		if meetings[i].ID == 0 {
			next++
			meetings[i].ID = next
		}
	}
}

// tokenFromAccount rebuilds an OAuth token from stored credentials.
func tokenFromAccount(account *entities.CalendarAccount) *oauth2.Token {
	token := &oauth2.Token{}
	if account.AccessToken != nil {
		token.AccessToken = *account.AccessToken
	}
	if account.RefreshToken != nil {
		token.RefreshToken = *account.RefreshToken
	}
	if account.TokenExpiry != nil {
		token.Expiry = *account.TokenExpiry
	}
	return token
}
