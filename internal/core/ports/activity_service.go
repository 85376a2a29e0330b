package ports

import (
	"context"

	"github.com/unifit/unifit-api/internal/core/domain"
)

// ActivityPage is one page of the filtered activity log.
type ActivityPage struct {
	Records    []domain.ActivityRecord
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// AuditRecorder is the write side of the audit trail used by other services.
// Record never fails the caller: errors are logged and dropped.
type AuditRecorder interface {
	Record(ctx context.Context, entry domain.ActivityEntry)
}

// ActivityService exposes the audit trail.
type ActivityService interface {
	AuditRecorder

	Append(ctx context.Context, entry domain.ActivityEntry) (int64, error)
	Query(ctx context.Context, filter domain.ActivityFilter, limit, offset int) ([]domain.ActivityRecord, error)
	Count(ctx context.Context, filter domain.ActivityFilter) (int64, error)
	Recent(ctx context.Context, n int) ([]domain.ActivityRecord, error)
	Page(ctx context.Context, filter domain.ActivityFilter, page, limit int) (*ActivityPage, error)
	Export(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityRecord, error)
	Stats(ctx context.Context, days, top int) (*domain.ActivityStats, error)
}
