// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
	"log/slog"
	"net/http"

	"shopfront/internal/delivery/http/middleware"
	"shopfront/internal/delivery/http/response"
	"shopfront/internal/domain/entity"
	"shopfront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Nickname string `json:"nickname"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUp handles local account registration. The new account is logged in
// immediately and the session cookie set on the response.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Nickname: req.Nickname,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	middleware.SetSessionCookie(c, output.Token, output.ExpiresAt)

	return response.Success(c, http.StatusCreated, sessionView{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
		User:      toUserView(output.User),
	}, "Account created successfully")
}

// Login handles local account login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	middleware.SetSessionCookie(c, output.Token, output.ExpiresAt)

	return response.Success(c, http.StatusOK, sessionView{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
		User:      toUserView(output.User),
	}, "Login successful")
}

// Logout invalidates the caller's session and clears the cookie. A missing
// or already-dead token still clears the cookie and succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := middleware.TokenFromRequest(c); token != "" {
		if err := h.uc.Logout(c.Request().Context(), token); err != nil {
			h.logger.Warn("logout failed", "error", err.Error())
		}
	}

	middleware.ClearSessionCookie(c)

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Me returns the account behind the current session.
func (h *AuthHandler) Me(c echo.Context) error {
	user := middleware.AuthenticatedUser(c)
	if user == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "No authenticated user")
	}

	return response.Success(c, http.StatusOK, toUserView(user), "Profile retrieved successfully")
}

// OAuthLogin starts the OAuth flow for the provider in the path. With
// redirect=true the client is sent straight to the provider; otherwise the
// authorization URL comes back as JSON for the frontend to use.
func (h *AuthHandler) OAuthLogin(c echo.Context) error {
	provider := entity.ProviderType(c.Param("provider"))

	oauthURL, err := h.uc.OAuthAuthorizationURL(c.Request().Context(), provider)
	if err != nil {
		return errors.WithStack(err)
	}

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, oauthURL)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"oauth_url": oauthURL,
	}, "OAuth URL generated successfully")
}

// OAuthCallback finishes the OAuth flow and issues a session.
func (h *AuthHandler) OAuthCallback(c echo.Context) error {
	code := c.QueryParam("code")
	state := c.QueryParam("state")
	if code == "" || state == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing code or state parameter")
	}

	output, err := h.uc.OAuthCallback(c.Request().Context(), &usecase.OAuthCallbackInput{
		Provider: entity.ProviderType(c.Param("provider")),
		Code:     code,
		State:    state,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	middleware.SetSessionCookie(c, output.Token, output.ExpiresAt)

	return response.Success(c, http.StatusOK, sessionView{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
		User:      toUserView(output.User),
	}, "OAuth authentication successful")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
