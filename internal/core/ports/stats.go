package ports

import (
	"context"

	"github.com/unifit/unifit-api/internal/core/domain"
)

// StatsRepository runs the aggregate queries of the admin dashboard.
type StatsRepository interface {
	Totals(ctx context.Context) (*domain.Totals, error)
	MostUsedExercises(ctx context.Context, limit int) ([]domain.ExerciseUsage, error)
	ExercisesByMuscle(ctx context.Context) ([]domain.MuscleCount, error)
	Users(ctx context.Context, top int) (*domain.UserStats, error)
	Exercises(ctx context.Context, popular, unused int) (*domain.ExerciseStats, error)
}

// StatsCache holds the last computed dashboard. A miss is (nil, nil).
type StatsCache interface {
	Get(ctx context.Context) (*domain.Dashboard, error)
	Set(ctx context.Context, d *domain.Dashboard) error
}

// StatsService serves the admin analytics endpoints.
type StatsService interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
	Activity(ctx context.Context, days, top int) (*domain.ActivityStats, error)
	Users(ctx context.Context) (*domain.UserStats, error)
	Exercises(ctx context.Context) (*domain.ExerciseStats, error)
}
