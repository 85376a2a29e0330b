package ports

import (
	"context"

	"github.com/unifit/unifit-api/internal/core/domain"
)

// ActivityRepository is the append-only store behind the audit trail.
// Records are never updated or deleted.
type ActivityRepository interface {
	// Create appends a record and returns the id assigned by the store.
	Create(ctx context.Context, entry domain.ActivityEntry) (int64, error)
	// List returns matching records newest first, after applying limit/offset.
	List(ctx context.Context, filter domain.ActivityFilter, limit, offset int) ([]domain.ActivityRecord, error)
	// Count returns the number of matching records, ignoring pagination.
	Count(ctx context.Context, filter domain.ActivityFilter) (int64, error)
	// StatsByPeriod groups the last days of activity per calendar day.
	StatsByPeriod(ctx context.Context, days int) ([]domain.DailyActivity, error)
	// TopActions returns the most frequent action codes.
	TopActions(ctx context.Context, limit int) ([]domain.ActionCount, error)
}
