// @title                      Unifit API
// @version                    1.0
// @description                Authentication, activity log and admin panel API of the Unifit fitness app.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/unifit/unifit-api/internal/api"
	"github.com/unifit/unifit-api/internal/api/handler"
	"github.com/unifit/unifit-api/internal/core/ports"
	"github.com/unifit/unifit-api/internal/core/service"
	"github.com/unifit/unifit-api/internal/infrastructure/db/memory"
	"github.com/unifit/unifit-api/internal/infrastructure/db/mongo"
	"github.com/unifit/unifit-api/internal/infrastructure/db/postgres"
	"github.com/unifit/unifit-api/internal/infrastructure/db/redis"
	"github.com/unifit/unifit-api/internal/pkg/config"
	"github.com/unifit/unifit-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "unifit-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "unifit-api",
	})

	db, err := postgres.Connect(ctx, postgres.Config{
		URL:          cfg.Database.URL,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		return err
	}
	defer closeDB(db, log)
	log.Info().Msg("postgres connected")

	checks := []handler.Check{{Name: "postgres", Ping: db.PingContext}}

	activityRepo, mongoClient, err := activityStore(ctx, cfg, db, log)
	if err != nil {
		return err
	}
	if mongoClient != nil {
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				log.Warn().Err(err).Msg("mongo disconnect")
			}
		}()
		checks = append(checks, handler.Check{Name: "mongodb", Ping: func(ctx context.Context) error {
			return mongoClient.Ping(ctx, nil)
		}})
	}

	var statsCache ports.StatsCache
	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer closeRedis(rdb, log)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

		statsCache = redis.NewStatsCache(rdb, cfg.StatsCacheTTL)
		checks = append(checks, handler.Check{Name: "redis", Ping: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}})
	} else {
		log.Info().Msg("REDIS_ADDR not set, dashboard cache disabled")
	}

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	activity := service.NewActivityService(activityRepo, log)
	users := postgres.NewUserRepository(db)

	e := api.NewRouter(api.Deps{
		Logger:    log,
		Tokens:    tokens,
		Auth:      service.NewAuthService(users, postgres.NewAdminRepository(db), tokens, activity, log),
		Admin:     service.NewAdminService(users, activity, log),
		Activity:  activity,
		Exercises: service.NewExerciseService(postgres.NewExerciseRepository(db), activity, log),
		Stats:     service.NewStatsService(postgres.NewStatsRepository(db), activity, statsCache, log),
		Location:  cfg.Location(),
		Checks:    checks,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Str("audit_store", cfg.AuditStore).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

// activityStore selects the audit trail backend from AUDIT_STORE. The mongo
// client is returned so the caller can disconnect it.
func activityStore(ctx context.Context, cfg *config.Config, db *sqlx.DB, log zerolog.Logger) (ports.ActivityRepository, *mongodriver.Client, error) {
	switch cfg.AuditStore {
	case config.AuditStoreMongo:
		client, mdb, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		repo := mongo.NewActivityRepository(mdb)
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("audit trail on mongodb")
		return repo, client, nil
	case config.AuditStoreMemory:
		log.Warn().Msg("audit trail kept in memory, records are lost on restart")
		return memory.NewActivityRepository(nil), nil, nil
	default:
		return postgres.NewActivityRepository(db), nil, nil
	}
}

func closeDB(db *sqlx.DB, log zerolog.Logger) {
	if err := db.Close(); err != nil {
		log.Warn().Err(err).Msg("postgres close")
	}
}

func closeRedis(rdb *goredis.Client, log zerolog.Logger) {
	if err := rdb.Close(); err != nil {
		log.Warn().Err(err).Msg("redis close")
	}
}
