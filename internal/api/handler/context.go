package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/unifit/unifit-api/internal/api/middleware"
	"github.com/unifit/unifit-api/internal/core/domain"
)

const unknownIP = "unknown"

// currentSession returns the session attached by middleware.Auth. Reaching a
// handler without one means the route was registered without Auth.
func currentSession(c echo.Context) (domain.Session, error) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		return domain.Session{}, domain.ErrUnauthenticated
	}
	return s, nil
}

// clientIP is the first hop of X-Forwarded-For, else the peer address.
func clientIP(c echo.Context) string {
	if xff := c.Request().Header.Get(echo.HeaderXForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if ip := c.RealIP(); ip != "" {
		return ip
	}
	return unknownIP
}

// success writes a success envelope carrying the refreshed token, if any.
func success(c echo.Context, status int, msg, codigo string, dados any) error {
	return c.JSON(status, response{
		Status: true,
		Msg:    msg,
		Codigo: codigo,
		Dados:  dados,
		Token:  middleware.TokenFrom(c),
	})
}
