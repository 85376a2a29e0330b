package handler

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/unifit/unifit-api/internal/api/middleware"
	"github.com/unifit/unifit-api/internal/core/domain"
	"github.com/unifit/unifit-api/internal/core/ports"
)

// Accepted date formats for startDate/endDate, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", time.DateTime, time.DateOnly}

// LogsHandler serves the activity log to administrators.
type LogsHandler struct {
	activity ports.ActivityService
	loc      *time.Location
}

// NewLogsHandler builds the handler. loc is used for date-only query params
// and CSV timestamps; nil means UTC.
func NewLogsHandler(activity ports.ActivityService, loc *time.Location) *LogsHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &LogsHandler{activity: activity, loc: loc}
}

// List returns one page of the filtered activity log, newest first.
//
// @Summary      List activity logs
// @Tags         logs
// @Produce      json
// @Security     BearerAuth
// @Param        page         query     int     false  "Page (default 1)"
// @Param        limit        query     int     false  "Page size (default 100)"
// @Param        usuarioTipo  query     string  false  "usuario or admin"
// @Param        acao         query     string  false  "Action substring"
// @Param        usuarioNome  query     string  false  "Actor name substring"
// @Param        startDate    query     string  false  "Range start, applied only with endDate"
// @Param        endDate      query     string  false  "Range end, applied only with startDate"
// @Success      200          {object}  logsResponse
// @Failure      400          {object}  map[string]any
// @Failure      401          {object}  map[string]any
// @Failure      403          {object}  map[string]any
// @Router       /admin/logs [get]
func (h *LogsHandler) List(c echo.Context) error {
	q, filter, err := h.bindFilter(c)
	if err != nil {
		return err
	}

	page, err := h.activity.Page(c.Request().Context(), filter, atoiOrZero(q.Page), atoiOrZero(q.Limit))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logsResponse{
		Status:     true,
		Logs:       page.Records,
		Pagination: toPagination(page),
		Token:      middleware.TokenFrom(c),
	})
}

// Export downloads every matching record as CSV.
//
// @Summary      Export activity logs
// @Tags         logs
// @Produce      text/csv
// @Security     BearerAuth
// @Param        usuarioTipo  query     string  false  "usuario or admin"
// @Param        acao         query     string  false  "Action substring"
// @Param        usuarioNome  query     string  false  "Actor name substring"
// @Param        startDate    query     string  false  "Range start"
// @Param        endDate      query     string  false  "Range end"
// @Success      200          {file}    file
// @Failure      400          {object}  map[string]any
// @Router       /admin/logs/export [get]
func (h *LogsHandler) Export(c echo.Context) error {
	_, filter, err := h.bindFilter(c)
	if err != nil {
		return err
	}

	records, err := h.activity.Export(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := writeActivityCSV(&buf, records, h.loc); err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=logs.csv")
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *LogsHandler) bindFilter(c echo.Context) (logsQuery, domain.ActivityFilter, error) {
	var q logsQuery
	if err := c.Bind(&q); err != nil {
		return q, domain.ActivityFilter{}, echo.NewHTTPError(http.StatusBadRequest, "Parâmetros inválidos")
	}

	filter := domain.ActivityFilter{
		ActorType: domain.ActorType(q.UsuarioTipo),
		Action:    q.Acao,
		ActorName: q.UsuarioNome,
	}

	// A lone bound is ignored, not rejected.
	if q.StartDate != "" && q.EndDate != "" {
		start, err := parseDate(q.StartDate, h.loc, false)
		if err != nil {
			return q, filter, echo.NewHTTPError(http.StatusBadRequest, "startDate inválida")
		}
		end, err := parseDate(q.EndDate, h.loc, true)
		if err != nil {
			return q, filter, echo.NewHTTPError(http.StatusBadRequest, "endDate inválida")
		}
		filter.StartDate, filter.EndDate = &start, &end
	}
	return q, filter, nil
}

// parseDate accepts RFC3339 or a local date/time. A bare date used as an end
// bound covers the whole day.
func parseDate(s string, loc *time.Location, endOfDay bool) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			lastErr = err
			continue
		}
		if layout == time.DateOnly && endOfDay {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		return t, nil
	}
	return time.Time{}, lastErr
}

// atoiOrZero leaves the default to the service when s is empty or malformed.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
