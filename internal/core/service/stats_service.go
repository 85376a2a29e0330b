package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/unifit/unifit-api/internal/core/domain"
	"github.com/unifit/unifit-api/internal/core/ports"
	"github.com/unifit/unifit-api/internal/pkg/metrics"
)

const (
	dashboardTopExercises = 10
	dashboardRecent       = 20

	topUsersByLists  = 10
	popularExercises = 15
	unusedExercises  = 20
)

// StatsService builds the admin dashboard and activity reports.
type StatsService struct {
	repo     ports.StatsRepository
	activity ports.ActivityService
	cache    ports.StatsCache
	log      zerolog.Logger
}

// NewStatsService wires the service. cache may be nil, in which case every
// call hits the database.
func NewStatsService(repo ports.StatsRepository, activity ports.ActivityService, cache ports.StatsCache, log zerolog.Logger) *StatsService {
	return &StatsService{repo: repo, activity: activity, cache: cache, log: log}
}

func (s *StatsService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			metrics.StatsCacheTotal.WithLabelValues("error").Inc()
			s.log.Warn().Err(err).Msg("stats cache read failed")
		case cached != nil:
			metrics.StatsCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.StatsCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	d, err := s.build(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, d); err != nil {
			s.log.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return d, nil
}

func (s *StatsService) Activity(ctx context.Context, days, top int) (*domain.ActivityStats, error) {
	return s.activity.Stats(ctx, days, top)
}

// Users reports the body and workout list statistics of the user base.
func (s *StatsService) Users(ctx context.Context) (*domain.UserStats, error) {
	st, err := s.repo.Users(ctx, topUsersByLists)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}
	return st, nil
}

// Exercises reports how the catalogue is composed and which entries lists use.
func (s *StatsService) Exercises(ctx context.Context) (*domain.ExerciseStats, error) {
	st, err := s.repo.Exercises(ctx, popularExercises, unusedExercises)
	if err != nil {
		return nil, fmt.Errorf("exercise stats: %w", err)
	}
	return st, nil
}

func (s *StatsService) build(ctx context.Context) (*domain.Dashboard, error) {
	totals, err := s.repo.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard totals: %w", err)
	}
	mostUsed, err := s.repo.MostUsedExercises(ctx, dashboardTopExercises)
	if err != nil {
		return nil, fmt.Errorf("dashboard most used exercises: %w", err)
	}
	byMuscle, err := s.repo.ExercisesByMuscle(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard exercises by muscle: %w", err)
	}
	recent, err := s.activity.Recent(ctx, dashboardRecent)
	if err != nil {
		return nil, err
	}

	return &domain.Dashboard{
		Totals:           *totals,
		MostUsed:         mostUsed,
		ByMuscle:         byMuscle,
		RecentActivities: recent,
	}, nil
}
