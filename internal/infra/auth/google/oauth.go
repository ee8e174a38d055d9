// Package google implements the OAuth handshake against Google's endpoints.
package google

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"shopfront/config"
	"shopfront/internal/domain/entity"
	"shopfront/internal/domain/service"
	"shopfront/internal/infra/auth"

	"github.com/pkg/errors"
)

const (
	googleOAuthURL    = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// OAuthService handles Google OAuth infrastructure operations
type OAuthService struct {
	clientID     string
	clientSecret string
	redirectURI  string
	scopes       string

	states *auth.StateStore
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(config *config.Config) service.OAuthService {
	return &OAuthService{
		clientID:     config.GoogleOAuth.ClientID,
		clientSecret: config.GoogleOAuth.ClientSecret,
		redirectURI:  config.GoogleOAuth.RedirectURI,
		scopes:       config.GoogleOAuth.Scopes,
		states:       auth.NewStateStore(),
	}
}

// Provider returns the OAuth provider type
func (s *OAuthService) Provider() entity.ProviderType {
	return entity.ProviderGoogle
}

// GenerateState produces a fresh CSRF state parameter
func (s *OAuthService) GenerateState() (string, error) {
	return s.states.Generate()
}

// BuildAuthorizationURL constructs the Google OAuth authorization URL with state parameter for CSRF protection
func (s *OAuthService) BuildAuthorizationURL(state string) string {
	s.states.Store(state)

	params := url.Values{}
	params.Set("client_id", s.clientID)
	params.Set("redirect_uri", s.redirectURI)
	params.Set("scope", s.scopes)
	params.Set("response_type", "code")
	params.Set("state", state)

	return googleOAuthURL + "?" + params.Encode()
}

// ValidateState validates the state parameter to prevent CSRF attacks
func (s *OAuthService) ValidateState(state string) bool {
	return s.states.Consume(state)
}

// ExchangeCodeForToken exchanges an authorization code for an access token
func (s *OAuthService) ExchangeCodeForToken(ctx context.Context, code string) (string, error) {
	data := url.Values{}
	data.Set("client_id", s.clientID)
	data.Set("client_secret", s.clientSecret)
	data.Set("code", code)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", s.redirectURI)

	req, err := http.NewRequestWithContext(ctx, "POST", googleTokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to create token exchange request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to exchange code for token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return "", errors.Errorf("token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", errors.Wrap(err, "failed to decode token response")
	}

	return tokenResponse.AccessToken, nil
}

// GetUserInfo retrieves user information using an access token
func (s *OAuthService) GetUserInfo(ctx context.Context, accessToken string) (*service.OAuthUser, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", googleUserInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var googleUser struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}

	return &service.OAuthUser{
		ID:       googleUser.ID,
		Email:    googleUser.Email,
		Name:     googleUser.Name,
		Provider: entity.ProviderGoogle,
	}, nil
}
