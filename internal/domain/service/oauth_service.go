package service

import (
	"context"

	"shopfront/internal/domain/entity"
)

// OAuthUser is the normalized identity returned by an OAuth provider.
type OAuthUser struct {
	ID       string
	Email    string
	Name     string
	Provider entity.ProviderType
}

// OAuthService is the boundary to one external identity provider. The
// protocol handshake is the provider's business; the core only needs the
// authorization URL, the code exchange, and the resulting identity.
type OAuthService interface {
	// Provider returns which provider this service talks to.
	Provider() entity.ProviderType

	// GenerateState produces a fresh CSRF state parameter.
	GenerateState() (string, error)

	// BuildAuthorizationURL constructs the provider's authorization URL and
	// stores the state parameter for later validation.
	BuildAuthorizationURL(state string) string

	// ValidateState checks and consumes a state parameter from the callback.
	ValidateState(state string) bool

	// ExchangeCodeForToken exchanges an authorization code for an access token.
	ExchangeCodeForToken(ctx context.Context, code string) (string, error)

	// GetUserInfo retrieves the provider identity behind an access token.
	GetUserInfo(ctx context.Context, accessToken string) (*OAuthUser, error)
}
