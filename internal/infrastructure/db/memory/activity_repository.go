// Package memory holds an in-process activity log used for local runs
// (AUDIT_STORE=memory) and tests. Contents are lost on restart.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/unifit/unifit-api/internal/core/domain"
)

// ActivityRepository implements ports.ActivityRepository in memory.
type ActivityRepository struct {
	mu      sync.RWMutex
	records []domain.ActivityRecord
	nextID  int64
	now     func() time.Time
}

// NewActivityRepository returns an empty repository. A nil clock means time.Now.
func NewActivityRepository(now func() time.Time) *ActivityRepository {
	if now == nil {
		now = time.Now
	}
	return &ActivityRepository{now: now}
}

func (r *ActivityRepository) Create(_ context.Context, e domain.ActivityEntry) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.records = append(r.records, domain.ActivityRecord{
		ID:        r.nextID,
		ActorType: e.ActorType,
		ActorID:   e.ActorID,
		ActorName: e.ActorName,
		Action:    e.Action,
		Details:   cloneString(e.Details),
		IP:        cloneString(e.IP),
		CreatedAt: r.now().UTC(),
	})
	return r.nextID, nil
}

func (r *ActivityRepository) List(_ context.Context, f domain.ActivityFilter, limit, offset int) ([]domain.ActivityRecord, error) {
	matched := r.matching(f)
	if offset >= len(matched) {
		return []domain.ActivityRecord{}, nil
	}
	matched = matched[offset:]
	if limit >= 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *ActivityRepository) Count(_ context.Context, f domain.ActivityFilter) (int64, error) {
	return int64(len(r.matching(f))), nil
}

func (r *ActivityRepository) StatsByPeriod(_ context.Context, days int) ([]domain.DailyActivity, error) {
	since := r.now().UTC().AddDate(0, 0, -days)

	r.mu.RLock()
	byDay := make(map[string]*domain.DailyActivity)
	for _, rec := range r.records {
		if rec.CreatedAt.Before(since) {
			continue
		}
		key := rec.CreatedAt.Format(time.DateOnly)
		d, ok := byDay[key]
		if !ok {
			d = &domain.DailyActivity{Date: key}
			byDay[key] = d
		}
		d.Total++
		switch rec.ActorType {
		case domain.ActorUser:
			d.Users++
		case domain.ActorAdmin:
			d.Admins++
		}
	}
	r.mu.RUnlock()

	out := make([]domain.DailyActivity, 0, len(byDay))
	for _, d := range byDay {
		out = append(out, *d)
	}
	slices.SortFunc(out, func(a, b domain.DailyActivity) int { return cmp.Compare(b.Date, a.Date) })
	return out, nil
}

func (r *ActivityRepository) TopActions(_ context.Context, limit int) ([]domain.ActionCount, error) {
	r.mu.RLock()
	counts := make(map[string]int64)
	for _, rec := range r.records {
		counts[rec.Action]++
	}
	r.mu.RUnlock()

	out := make([]domain.ActionCount, 0, len(counts))
	for action, n := range counts {
		out = append(out, domain.ActionCount{Action: action, Total: n})
	}
	slices.SortFunc(out, func(a, b domain.ActionCount) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Action, b.Action)
	})
	if limit >= 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// matching returns copies of the records that satisfy f, newest first.
func (r *ActivityRepository) matching(f domain.ActivityFilter) []domain.ActivityRecord {
	r.mu.RLock()
	out := make([]domain.ActivityRecord, 0, len(r.records))
	for _, rec := range r.records {
		if f.Matches(rec) {
			out = append(out, rec)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b domain.ActivityRecord) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
