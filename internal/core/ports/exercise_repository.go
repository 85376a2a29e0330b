package ports

import (
	"context"

	"github.com/unifit/unifit-api/internal/core/domain"
)

// ExerciseRepository defines persistence operations for exercises.
type ExerciseRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Exercise, error)
	Delete(ctx context.Context, id int64) error
	// UpdateMany applies upd to every id in a single statement and returns the
	// number of affected rows.
	UpdateMany(ctx context.Context, ids []int64, upd domain.ExerciseUpdate) (int64, error)
}
