package auth

import "github.com/johnquangdev/chief-of-staff/internal/domain/entities"

// LoginURLResponse carries the provider consent URL
type LoginURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// AuthResponse represents the authentication response with tokens
type AuthResponse struct {
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token,omitempty"`
	ExpiresIn    int64                `json:"expires_in"` // seconds
	TokenType    string               `json:"token_type"` // "Bearer"
	User         *entities.PublicUser `json:"user"`
}

// RefreshTokenResponse represents the response after refreshing token
type RefreshTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}
