package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/vendorbuddy/backend/internal/tokens"
)

const SessionCookie = "session"

type Session struct {
	Secret []byte
}

func NewSession(secret []byte) *Session {
	return &Session{Secret: secret}
}

// RequireSession authenticates the caller from the signed session cookie and
// stores the user id under "user_id" in the echo context.
func (m *Session) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil || cookie.Value == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
		}

		claims, err := tokens.SessionClaimsFromToken(cookie.Value, m.Secret)
		if err != nil || claims == nil {
			c.SetCookie(tokens.DeleteCookie(SessionCookie, "/"))
			return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.SetCookie(tokens.DeleteCookie(SessionCookie, "/"))
			return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
		}

		c.Set("user_id", userID)
		return next(c)
	}
}

// UserID reads the id set by RequireSession.
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get("user_id").(uuid.UUID)
	return id, ok
}
