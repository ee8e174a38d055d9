// Package github implements the OAuth handshake against GitHub's endpoints.
package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"shopfront/config"
	"shopfront/internal/domain/entity"
	"shopfront/internal/domain/service"
	"shopfront/internal/infra/auth"

	"github.com/pkg/errors"
)

const (
	githubOAuthURL    = "https://github.com/login/oauth/authorize"
	githubTokenURL    = "https://github.com/login/oauth/access_token"
	githubUserInfoURL = "https://api.github.com/user"
	githubEmailsURL   = "https://api.github.com/user/emails"
)

// OAuthService handles GitHub OAuth infrastructure operations
type OAuthService struct {
	clientID     string
	clientSecret string
	redirectURI  string
	scopes       string

	states *auth.StateStore
}

// NewOAuthService creates a new GitHub OAuth service
func NewOAuthService(config *config.Config) service.OAuthService {
	return &OAuthService{
		clientID:     config.GithubOAuth.ClientID,
		clientSecret: config.GithubOAuth.ClientSecret,
		redirectURI:  config.GithubOAuth.RedirectURI,
		scopes:       config.GithubOAuth.Scopes,
		states:       auth.NewStateStore(),
	}
}

// Provider returns the OAuth provider type
func (s *OAuthService) Provider() entity.ProviderType {
	return entity.ProviderGithub
}

// GenerateState produces a fresh CSRF state parameter
func (s *OAuthService) GenerateState() (string, error) {
	return s.states.Generate()
}

// BuildAuthorizationURL constructs the GitHub OAuth authorization URL with state parameter for CSRF protection
func (s *OAuthService) BuildAuthorizationURL(state string) string {
	s.states.Store(state)

	params := url.Values{}
	params.Set("client_id", s.clientID)
	params.Set("redirect_uri", s.redirectURI)
	params.Set("scope", s.scopes)
	params.Set("state", state)

	return githubOAuthURL + "?" + params.Encode()
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
	data.Set("redirect_uri", s.redirectURI)

	req, err := http.NewRequestWithContext(ctx, "POST", githubTokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to create token exchange request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

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
		Scope       string `json:"scope"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", errors.Wrap(err, "failed to decode token response")
	}

	return tokenResponse.AccessToken, nil
}

// GetUserInfo retrieves user information using an access token. GitHub may
// keep the account email private, in which case the verified primary email
// is fetched separately.
func (s *OAuthService) GetUserInfo(ctx context.Context, accessToken string) (*service.OAuthUser, error) {
	var githubUser struct {
		ID    int64  `json:"id"`
		Login string `json:"login"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	if err := s.getJSON(ctx, githubUserInfoURL, accessToken, &githubUser); err != nil {
		return nil, err
	}

	email := githubUser.Email
	if email == "" {
		primary, err := s.primaryEmail(ctx, accessToken)
		if err != nil {
			return nil, err
		}
		email = primary
	}

	name := githubUser.Name
	if name == "" {
		name = githubUser.Login
	}

	return &service.OAuthUser{
		ID:       strconv.FormatInt(githubUser.ID, 10),
		Email:    email,
		Name:     name,
		Provider: entity.ProviderGithub,
	}, nil
}

// primaryEmail looks up the user's verified primary address.
func (s *OAuthService) primaryEmail(ctx context.Context, accessToken string) (string, error) {
	var emails []struct {
		Email    string `json:"email"`
		Primary  bool   `json:"primary"`
		Verified bool   `json:"verified"`
	}

	if err := s.getJSON(ctx, githubEmailsURL, accessToken, &emails); err != nil {
		return "", err
	}

	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}

	return "", errors.New("no verified primary email on GitHub account")
}

func (s *OAuthService) getJSON(ctx context.Context, endpoint, accessToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create user info request")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github+json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode user info response")
	}

	return nil
}
