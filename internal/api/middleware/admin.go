package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/unifit/unifit-api/internal/core/domain"
)

// RequireAdmin lets through only sessions whose principal is an administrator.
// It must run after Auth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := SessionFrom(c)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if !session.Principal.IsAdmin() {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
