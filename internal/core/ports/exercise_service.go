package ports

import (
	"context"

	"github.com/unifit/unifit-api/internal/core/domain"
)

// ExerciseService defines use-case operations for exercises.
type ExerciseService interface {
	Get(ctx context.Context, id int64) (*domain.Exercise, error)
	BulkDelete(ctx context.Context, actor domain.Principal, ids []int64, ip string) (*domain.BulkResult, error)
	BulkUpdate(ctx context.Context, actor domain.Principal, ids []int64, upd domain.ExerciseUpdate, ip string) (*domain.BulkResult, error)
}
