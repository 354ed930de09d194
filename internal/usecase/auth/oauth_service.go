package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
	"github.com/johnquangdev/chief-of-staff/internal/domain/repositories"
	"github.com/johnquangdev/chief-of-staff/internal/infrastructure/external/oauth"
	"github.com/johnquangdev/chief-of-staff/pkg/jwt"
)

// OAuthService handles OAuth authentication and session lifecycle. The
// Google consent it requests also covers read-only calendar access, so
// a successful login doubles as a calendar connection.
type OAuthService struct {
	userRepo     repositories.UserRepository
	sessionRepo  repositories.SessionRepository
	calendarRepo repositories.CalendarAccountRepository
	google       *oauth.GoogleProvider
	stateManager *oauth.StateManager
	jwtManager   *jwt.Manager
	logger       *zap.Logger
}

// NewOAuthService creates a new OAuth service
func NewOAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	calendarRepo repositories.CalendarAccountRepository,
	google *oauth.GoogleProvider,
	stateManager *oauth.StateManager,
	jwtManager *jwt.Manager,
	logger *zap.Logger,
) *OAuthService {
	return &OAuthService{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		calendarRepo: calendarRepo,
		google:       google,
		stateManager: stateManager,
		jwtManager:   jwtManager,
		logger:       logger,
	}
}

// GoogleAuthURLResponse represents the response for auth URL request
type GoogleAuthURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// GetGoogleAuthURL generates Google OAuth URL
func (s *OAuthService) GetGoogleAuthURL(ctx context.Context) (*GoogleAuthURLResponse, error) {
	state, err := s.stateManager.GenerateState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state: %w", err)
	}

	return &GoogleAuthURLResponse{
		URL:   s.google.GetAuthURL(state),
		State: state,
	}, nil
}

// GoogleCallbackRequest represents the callback request
type GoogleCallbackRequest struct {
	Code  string `json:"code"`
	State string `json:"state"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	User         *entities.User `json:"user"`
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token,omitempty"`
	ExpiresIn    int64          `json:"expires_in"`
	SessionID    string         `json:"session_id,omitempty"`
}

// HandleGoogleCallback handles the OAuth callback from Google
func (s *OAuthService) HandleGoogleCallback(ctx context.Context, req *GoogleCallbackRequest) (*AuthResponse, error) {
	// Validate state
	if !s.stateManager.ValidateState(req.State) {
		return nil, entities.ErrOAuthStateMismatch
	}

	// Exchange code for token
	token, err := s.google.ExchangeCode(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	// Get user info from Google
	googleUser, err := s.google.GetUserInfo(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}

	user, err := s.findOrCreateUser(ctx, googleUser, token.RefreshToken)
	if err != nil {
		return nil, err
	}

	// The granted token also unlocks the calendar scope; store the
	// connection so the sync service can use it right away.
	account := entities.NewGoogleCalendarAccount(user.ID, token.AccessToken, token.RefreshToken, token.Expiry)
	if err := s.calendarRepo.Upsert(ctx, account); err != nil {
		s.logger.Warn("failed to store calendar connection", zap.Error(err))
	}

	return s.issueSession(ctx, user)
}

func (s *OAuthService) findOrCreateUser(ctx context.Context, googleUser *oauth.GoogleUserInfo, refreshToken string) (*entities.User, error) {
	user, err := s.userRepo.FindByOAuth(ctx, "google", googleUser.ID)
	if err == nil {
		// Returning OAuth user
		user.UpdateLastLogin()
		user.AvatarURL = &googleUser.Picture
		if refreshToken != "" {
			user.OAuthRefreshToken = &refreshToken
		}
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		return user, nil
	}
	if !errors.Is(err, entities.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// User may exist with the same email from before OAuth linking
	existing, err := s.userRepo.FindByEmail(ctx, googleUser.Email)
	if err == nil {
		provider := "google"
		existing.OAuthProvider = &provider
		existing.OAuthID = &googleUser.ID
		existing.AvatarURL = &googleUser.Picture
		if refreshToken != "" {
			existing.OAuthRefreshToken = &refreshToken
		}
		if err := s.userRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to link accounts: %w", err)
		}
		return existing, nil
	}

	// New user
	user = entities.NewOAuthUser(googleUser.Email, googleUser.Name, "google", googleUser.ID)
	user.AvatarURL = &googleUser.Picture
	if refreshToken != "" {
		user.OAuthRefreshToken = &refreshToken
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// issueSession generates tokens and persists the hashed refresh token.
func (s *OAuthService) issueSession(ctx context.Context, user *entities.User) (*AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	tokenHash, err := s.jwtManager.HashToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to hash refresh token: %w", err)
	}

	session := entities.NewSession(
		user.ID,
		tokenHash,
		time.Now().Add(s.jwtManager.GetRefreshExpiry()),
	)

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.GetAccessExpiry().Seconds()),
		SessionID:    session.ID.String(),
	}, nil
}

// RefreshAccessToken refreshes the access token using refresh token
func (s *OAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, entities.ErrInvalidToken
	}

	tokenHash, err := s.jwtManager.HashToken(refreshToken)
	if err != nil {
		return nil, entities.ErrInvalidToken
	}

	session, err := s.sessionRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		return nil, entities.ErrSessionNotFound
	}

	if !session.IsValid() {
		return nil, entities.ErrSessionExpired
	}

	// Update last used (non-fatal)
	_ = s.sessionRepo.UpdateLastUsed(ctx, session.ID)

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	newAccessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResponse{
		User:        user,
		AccessToken: newAccessToken,
		ExpiresIn:   int64(s.jwtManager.GetAccessExpiry().Seconds()),
	}, nil
}

// ValidateSession validates an access token and returns the user
func (s *OAuthService) ValidateSession(ctx context.Context, token string) (*entities.User, error) {
	claims, err := s.jwtManager.ValidateAccessToken(token)
	if err != nil {
		return nil, entities.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, entities.ErrUnauthorized
	}

	return user, nil
}

// Logout revokes the session holding the refresh token
func (s *OAuthService) Logout(ctx context.Context, refreshToken string) error {
	tokenHash, err := s.jwtManager.HashToken(refreshToken)
	if err != nil {
		return entities.ErrInvalidToken
	}

	session, err := s.sessionRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		return entities.ErrSessionNotFound
	}

	return s.sessionRepo.Revoke(ctx, session.ID)
}

// LogoutAll revokes all sessions for a user
func (s *OAuthService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	return s.sessionRepo.RevokeAllByUserID(ctx, userID)
}
