package middleware

import (
	"net/http"
	"strings"
	"time"

	"shopfront/internal/domain/entity"
	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName is the cookie holding the opaque session token.
	SessionCookieName = "session"

	// ContextKeyUser is where the authenticated user lives on echo.Context.
	ContextKeyUser = "user"

	// ContextKeyUserID is where the authenticated user id lives on echo.Context.
	ContextKeyUserID = "userID"

	// ContextKeySessionToken is where the raw token lives on echo.Context.
	ContextKeySessionToken = "sessionToken"
)

// AuthMiddleware validates opaque session tokens. The token is read from
// the session cookie, with an Authorization bearer fallback for API
// clients.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase}
}

// Authenticate rejects requests without a valid session. Sessions past half
// their lifetime come back rotated; the refreshed cookie rides along on the
// response.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := TokenFromRequest(c)
		if token == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("no session token")
		}

		output, err := m.authUsecase.ValidateSession(c.Request().Context(), token)
		if err != nil {
			return err
		}

		c.Set(ContextKeyUser, output.User)
		c.Set(ContextKeyUserID, output.User.ID)
		c.Set(ContextKeySessionToken, output.Session.ID)

		if output.Session.Fresh {
			SetSessionCookie(c, output.Session.ID, output.Session.ExpiresAt)
		}

		return next(c)
	}
}

// TokenFromRequest extracts the session token from the cookie or, failing
// that, from an Authorization bearer header.
func TokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return token
	}

	return ""
}

// SetSessionCookie writes the session cookie on the response.
func SetSessionCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on the response.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// AuthenticatedUser returns the user set by Authenticate.
func AuthenticatedUser(c echo.Context) *entity.User {
	user, _ := c.Get(ContextKeyUser).(*entity.User)

	return user
}

// AuthenticatedUserID returns the user id set by Authenticate.
func AuthenticatedUserID(c echo.Context) int64 {
	id, _ := c.Get(ContextKeyUserID).(int64)

	return id
}
