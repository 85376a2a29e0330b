package service

import (
	"context"
	"fmt"
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/unifit/unifit-api/internal/core/domain"
	"github.com/unifit/unifit-api/internal/core/ports"
	"github.com/unifit/unifit-api/internal/pkg/metrics"
)

const (
	DefaultPageLimit  = 100
	ExportLimit       = 10000
	defaultRecent     = 20
	defaultStatsDays  = 30
	defaultTopActions = 10

	// maxOffset bounds (page-1)*limit so it never overflows.
	maxOffset = math.MaxInt32
)

// ActivityService is the audit trail: append-only writes plus filtered reads.
type ActivityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) *ActivityService {
	return &ActivityService{repo: repo, log: log}
}

// Append validates and stores one record. Store failures are wrapped in
// domain.ErrPersistence.
func (s *ActivityService) Append(ctx context.Context, entry domain.ActivityEntry) (int64, error) {
	if err := entry.Validate(); err != nil {
		return 0, err
	}
	id, err := s.repo.Create(ctx, entry)
	if err != nil {
		return 0, fmt.Errorf("append activity: %w: %w", domain.ErrPersistence, err)
	}
	return id, nil
}

// Record appends entry and swallows any failure: the action that triggered it
// has already succeeded and must not be reported as failed.
func (s *ActivityService) Record(ctx context.Context, entry domain.ActivityEntry) {
	if _, err := s.Append(ctx, entry); err != nil {
		metrics.AuditAppendErrorsTotal.WithLabelValues(entry.Action).Inc()
		s.log.Warn().Err(err).
			Str("action", entry.Action).
			Str("actor_type", string(entry.ActorType)).
			Int64("actor_id", entry.ActorID).
			Msg("failed to record activity")
	}
}

// Query returns matching records newest first. A non-positive limit falls
// back to DefaultPageLimit.
func (s *ActivityService) Query(ctx context.Context, filter domain.ActivityFilter, limit, offset int) ([]domain.ActivityRecord, error) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	timer := prometheus.NewTimer(metrics.AuditQueryDuration.WithLabelValues("list"))
	defer timer.ObserveDuration()

	records, err := s.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w: %w", domain.ErrPersistence, err)
	}
	return records, nil
}

// Count returns the number of records matching filter.
func (s *ActivityService) Count(ctx context.Context, filter domain.ActivityFilter) (int64, error) {
	timer := prometheus.NewTimer(metrics.AuditQueryDuration.WithLabelValues("count"))
	defer timer.ObserveDuration()

	n, err := s.repo.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count activity: %w: %w", domain.ErrPersistence, err)
	}
	return n, nil
}

// Recent returns the n most recent records without filtering.
func (s *ActivityService) Recent(ctx context.Context, n int) ([]domain.ActivityRecord, error) {
	if n <= 0 {
		n = defaultRecent
	}
	return s.Query(ctx, domain.ActivityFilter{}, n, 0)
}

// Page runs Query and Count for a 1-based page.
func (s *ActivityService) Page(ctx context.Context, filter domain.ActivityFilter, page, limit int) (*ports.ActivityPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > ExportLimit {
		limit = ExportLimit
	}
	if maxPage := maxOffset/limit + 1; page > maxPage {
		page = maxPage
	}

	records, err := s.Query(ctx, filter, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	total, err := s.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ActivityPage{
		Records:    records,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

// Export returns every matching record up to ExportLimit.
func (s *ActivityService) Export(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityRecord, error) {
	return s.Query(ctx, filter, ExportLimit, 0)
}

// Stats returns the per-day breakdown of the last days and the top actions.
func (s *ActivityService) Stats(ctx context.Context, days, top int) (*domain.ActivityStats, error) {
	if days <= 0 {
		days = defaultStatsDays
	}
	if top <= 0 {
		top = defaultTopActions
	}

	timer := prometheus.NewTimer(metrics.AuditQueryDuration.WithLabelValues("stats"))
	defer timer.ObserveDuration()

	byDay, err := s.repo.StatsByPeriod(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("activity stats by period: %w: %w", domain.ErrPersistence, err)
	}
	topActions, err := s.repo.TopActions(ctx, top)
	if err != nil {
		return nil, fmt.Errorf("activity top actions: %w: %w", domain.ErrPersistence, err)
	}
	return &domain.ActivityStats{ByDay: byDay, TopActions: topActions}, nil
}
