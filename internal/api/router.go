package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/unifit/unifit-api/docs"
	"github.com/unifit/unifit-api/internal/api/handler"
	"github.com/unifit/unifit-api/internal/api/middleware"
	"github.com/unifit/unifit-api/internal/core/ports"
)

// Deps holds everything the router wires into handlers.
type Deps struct {
	Logger    zerolog.Logger
	Tokens    ports.TokenAuthority
	Auth      ports.AuthService
	Admin     ports.AdminService
	Activity  ports.ActivityService
	Exercises ports.ExerciseService
	Stats     ports.StatsService
	Location  *time.Location
	Checks    []handler.Check
	// Registry receives the HTTP metrics and backs /metrics. Nil means the
	// default prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(d.Logger))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "unifit",
		Registerer: registerer,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	exerciseHandler := handler.NewExerciseHandler(d.Exercises)
	adminHandler := handler.NewAdminHandler(d.Admin, d.Exercises)
	logsHandler := handler.NewLogsHandler(d.Activity, d.Location)
	statsHandler := handler.NewStatsHandler(d.Stats)
	healthHandler := handler.NewHealthHandler(d.Checks...)

	requireAuth := middleware.Auth(d.Tokens)

	// --- Public ---
	e.POST("/usuario/login", authHandler.LoginUser)
	e.POST("/admin/login", authHandler.LoginAdmin)

	// --- Any signed-in account ---
	e.POST("/logout", authHandler.Logout, requireAuth)
	e.GET("/sessao", authHandler.Session, requireAuth)
	e.GET("/exercicios/:id", exerciseHandler.Get, requireAuth)

	// --- Administrators ---
	admin := e.Group("/admin", requireAuth, middleware.RequireAdmin())
	admin.GET("/logs", logsHandler.List)
	admin.GET("/logs/export", logsHandler.Export)
	admin.GET("/stats/dashboard", statsHandler.Dashboard)
	admin.GET("/stats/atividades", statsHandler.Activity)
	admin.GET("/stats/usuarios", statsHandler.Users)
	admin.GET("/stats/exercicios", statsHandler.Exercises)
	admin.PATCH("/usuarios/:id/status", adminHandler.SetUserStatus)
	admin.POST("/exercicios/bulk-delete", adminHandler.BulkDelete)
	admin.POST("/exercicios/bulk-update", adminHandler.BulkUpdate)

	// --- Operations ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil || v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
