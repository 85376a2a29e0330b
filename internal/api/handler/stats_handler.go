package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unifit/unifit-api/internal/api/middleware"
	"github.com/unifit/unifit-api/internal/core/domain"
	"github.com/unifit/unifit-api/internal/core/ports"
)

type StatsHandler struct {
	stats ports.StatsService
}

func NewStatsHandler(stats ports.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

type dashboardResponse struct {
	Status bool `json:"status"`
	*domain.Dashboard
	Token string `json:"token,omitempty"`
}

type activityStatsResponse struct {
	Status bool `json:"status"`
	*domain.ActivityStats
	Token string `json:"token,omitempty"`
}

type userStatsResponse struct {
	Status bool `json:"status"`
	*domain.UserStats
	Token string `json:"token,omitempty"`
}

type exerciseStatsResponse struct {
	Status bool `json:"status"`
	*domain.ExerciseStats
	Token string `json:"token,omitempty"`
}

// Dashboard returns platform totals, exercise usage and recent activity.
//
// @Summary      Admin dashboard
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /admin/stats/dashboard [get]
func (h *StatsHandler) Dashboard(c echo.Context) error {
	d, err := h.stats.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{Status: true, Dashboard: d, Token: middleware.TokenFrom(c)})
}

// Activity returns activity per day and the most frequent actions.
//
// @Summary      Activity report
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Param        dias  query     int  false  "Days to cover (default 30)"
// @Param        top   query     int  false  "Number of top actions (default 10)"
// @Success      200   {object}  activityStatsResponse
// @Failure      400   {object}  map[string]any
// @Router       /admin/stats/atividades [get]
func (h *StatsHandler) Activity(c echo.Context) error {
	var q activityStatsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Parâmetros inválidos")
	}
	stats, err := h.stats.Activity(c.Request().Context(), q.Days, q.Top)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activityStatsResponse{Status: true, ActivityStats: stats, Token: middleware.TokenFrom(c)})
}

// Users returns the user base breakdown: sex, body measures, BMI and lists.
//
// @Summary      User statistics
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userStatsResponse
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /admin/stats/usuarios [get]
func (h *StatsHandler) Users(c echo.Context) error {
	st, err := h.stats.Users(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userStatsResponse{Status: true, UserStats: st, Token: middleware.TokenFrom(c)})
}

// @Summary      Exercise statistics
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  exerciseStatsResponse
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /admin/stats/exercicios [get]
func (h *StatsHandler) Exercises(c echo.Context) error {
	st, err := h.stats.Exercises(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, exerciseStatsResponse{Status: true, ExerciseStats: st, Token: middleware.TokenFrom(c)})
}
