package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/unifit/unifit-api/internal/core/domain"
	"github.com/unifit/unifit-api/internal/core/ports"
	"github.com/unifit/unifit-api/internal/pkg/metrics"
)

const (
	sessionKey = "session"
	tokenKey   = "refreshed_token"
)

// Auth validates the bearer token, stores the decoded session in the context
// and issues the refreshed token handlers send back to the client.
//
// A missing header or a non-Bearer scheme is domain.ErrUnauthenticated (401).
// A token that is present but does not validate is domain.ErrInvalidToken (403).
func Auth(tokens ports.TokenAuthority) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				metrics.TokenValidationsTotal.WithLabelValues("missing").Inc()
				return domain.ErrUnauthenticated
			}

			session, err := tokens.Validate(raw)
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
				return domain.ErrInvalidToken
			}
			metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()

			refreshed, err := tokens.Refresh(session)
			if err != nil {
				return fmt.Errorf("refresh token: %w", err)
			}

			c.Set(sessionKey, session)
			c.Set(tokenKey, refreshed)
			return next(c)
		}
	}
}

// SessionFrom returns the session stored by Auth.
func SessionFrom(c echo.Context) (domain.Session, bool) {
	s, ok := c.Get(sessionKey).(domain.Session)
	return s, ok
}

// TokenFrom returns the refreshed token issued by Auth, or "" outside
// protected routes.
func TokenFrom(c echo.Context) string {
	t, _ := c.Get(tokenKey).(string)
	return t
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
