package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/unifit/unifit-api/internal/core/domain"
)

// errorResponse is the envelope of every failed request.
type errorResponse struct {
	Status bool   `json:"status"`
	Msg    string `json:"msg"`
}

// NewHTTPErrorHandler maps domain errors to status codes and renders
// {"status": false, "msg": "..."}. Unexpected errors are logged and answered
// with a generic message.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Status: false, Msg: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "Token não fornecido"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusForbidden, "Token inválido"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Acesso negado - não é admin"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Email ou senha incorretos"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "Usuário bloqueado"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Usuário não encontrado"
	case errors.Is(err, domain.ErrExerciseNotFound):
		return http.StatusNotFound, "Exercício não encontrado!"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Erro interno do servidor"
}
