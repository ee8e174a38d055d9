// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"shopfront/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a local account.
type SignUpInput struct {
	Email    string
	Password string
	Name     string
	Nickname string
}

// LoginInput defines the data required for a local login.
type LoginInput struct {
	Email    string
	Password string
}

// OAuthCallbackInput carries the provider redirect parameters.
type OAuthCallbackInput struct {
	Provider entity.ProviderType
	Code     string
	State    string
}

// --- Output DTOs ---

// AuthOutput returns the session issued by a successful signup or login.
// The token is opaque; the client stores it as a cookie and nothing else.
type AuthOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// SessionOutput is the result of validating a session token.
type SessionOutput struct {
	User    *entity.User
	Session *entity.Session
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// SignUp registers a local account and logs it in.
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)

	// Login authenticates a local account and issues a session.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Logout invalidates one session token.
	Logout(ctx context.Context, token string) error

	// ValidateSession checks a token and rotates the expiry of sessions past
	// half their lifetime. Expired sessions are deleted and rejected.
	ValidateSession(ctx context.Context, token string) (*SessionOutput, error)

	// OAuthAuthorizationURL starts the OAuth flow for one provider.
	OAuthAuthorizationURL(ctx context.Context, provider entity.ProviderType) (string, error)

	// OAuthCallback finishes the OAuth flow: verifies state, exchanges the
	// code, finds or creates the account, and issues a session.
	OAuthCallback(ctx context.Context, input *OAuthCallbackInput) (*AuthOutput, error)
}
