package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/unifit/unifit-api/internal/core/domain"
	"github.com/unifit/unifit-api/internal/infrastructure/db/memory"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type failingActivityRepo struct {
	err   error
	calls int
}

func (r *failingActivityRepo) Create(context.Context, domain.ActivityEntry) (int64, error) {
	r.calls++
	return 0, r.err
}

func (r *failingActivityRepo) List(context.Context, domain.ActivityFilter, int, int) ([]domain.ActivityRecord, error) {
	return nil, r.err
}

func (r *failingActivityRepo) Count(context.Context, domain.ActivityFilter) (int64, error) {
	return 0, r.err
}

func (r *failingActivityRepo) StatsByPeriod(context.Context, int) ([]domain.DailyActivity, error) {
	return nil, r.err
}

func (r *failingActivityRepo) TopActions(context.Context, int) ([]domain.ActionCount, error) {
	return nil, r.err
}

// steppingClock advances one second on every call so records get distinct
// created_at values.
func steppingClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func strPtr(s string) *string { return &s }

func newActivitySvc() *ActivityService {
	repo := memory.NewActivityRepository(steppingClock(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)))
	return NewActivityService(repo, zerolog.Nop())
}

func seedActivity(t *testing.T, svc *ActivityService) {
	t.Helper()
	entries := []domain.ActivityEntry{
		{ActorType: domain.ActorUser, ActorID: 7, ActorName: "Ana", Action: domain.ActionLogin, Details: strPtr("Login realizado com sucesso"), IP: strPtr("10.0.0.1")},
		{ActorType: domain.ActorAdmin, ActorID: 3, ActorName: "Bea", Action: domain.ActionLogin, Details: strPtr("Login realizado com sucesso"), IP: strPtr("127.0.0.1")},
		{ActorType: domain.ActorAdmin, ActorID: 3, ActorName: "Bea", Action: domain.DeleteAction(domain.EntityExercicio), Details: strPtr("Excluiu exercicio ID: 4")},
		{ActorType: domain.ActorUser, ActorID: 8, ActorName: "Caio", Action: domain.ActionLogout},
		{ActorType: domain.ActorAdmin, ActorID: 5, ActorName: "Dora", Action: domain.UpdateAction(domain.EntityUsuario)},
	}
	for _, e := range entries {
		if _, err := svc.Append(context.Background(), e); err != nil {
			t.Fatalf("seed append: %v", err)
		}
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestActivityService_AppendThenQuery(t *testing.T) {
	svc := newActivitySvc()
	seedActivity(t, svc)

	id, err := svc.Append(context.Background(), domain.ActivityEntry{
		ActorType: domain.ActorAdmin,
		ActorID:   3,
		ActorName: "Bea",
		Action:    domain.ActionLogin,
		Details:   strPtr("Login realizado com sucesso"),
		IP:        strPtr("127.0.0.1"),
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	records, err := svc.Query(context.Background(), domain.ActivityFilter{}, 1000, 0)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(records) != 6 {
		t.Fatalf("expected 6 records, got %d", len(records))
	}

	first := records[0]
	if first.ID != id || first.ActorType != domain.ActorAdmin || first.ActorID != 3 || first.ActorName != "Bea" ||
		first.Action != domain.ActionLogin || *first.Details != "Login realizado com sucesso" || *first.IP != "127.0.0.1" {
		t.Fatalf("newest record does not match the append: %+v", first)
	}
	for i := 1; i < len(records); i++ {
		if records[i-1].CreatedAt.Before(records[i].CreatedAt) {
			t.Fatalf("records not ordered newest first at %d", i)
		}
	}
}

func TestActivityService_Append_Validation(t *testing.T) {
	repo := &failingActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	_, err := svc.Append(context.Background(), domain.ActivityEntry{ActorType: domain.ActorUser, ActorID: 7})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatal("store must not be called for an invalid entry")
	}
}

func TestActivityService_Append_PersistenceError(t *testing.T) {
	svc := NewActivityService(&failingActivityRepo{err: errors.New("db down")}, zerolog.Nop())

	_, err := svc.Append(context.Background(), domain.ActivityEntry{
		ActorType: domain.ActorUser, ActorID: 7, ActorName: "Ana", Action: domain.ActionLogin,
	})
	if !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}

func TestActivityService_Record_IsNonFatal(t *testing.T) {
	repo := &failingActivityRepo{err: errors.New("db down")}
	svc := NewActivityService(repo, zerolog.Nop())

	// Must not panic or surface the error.
	svc.Record(context.Background(), domain.ActivityEntry{
		ActorType: domain.ActorUser, ActorID: 7, ActorName: "Ana", Action: domain.ActionLogin,
	})
	if repo.calls != 1 {
		t.Fatalf("expected one append attempt, got %d", repo.calls)
	}
}

func TestActivityService_CountMatchesQuery(t *testing.T) {
	svc := newActivitySvc()
	seedActivity(t, svc)

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	filters := []domain.ActivityFilter{
		{},
		{ActorType: domain.ActorAdmin},
		{ActorType: domain.ActorUser},
		{Action: "LOG"},
		{ActorName: "bea"},
		{ActorType: domain.ActorAdmin, Action: "LOGIN"},
		{StartDate: &start, EndDate: &end},
		{Action: "nothing-matches"},
	}
	for _, f := range filters {
		n, err := svc.Count(context.Background(), f)
		if err != nil {
			t.Fatalf("Count(%+v): %v", f, err)
		}
		records, err := svc.Query(context.Background(), f, 1<<30, 0)
		if err != nil {
			t.Fatalf("Query(%+v): %v", f, err)
		}
		if int(n) != len(records) {
			t.Errorf("filter %+v: count %d != len(query) %d", f, n, len(records))
		}
	}
}

func TestActivityService_ActionSubstringFilter(t *testing.T) {
	svc := newActivitySvc()
	seedActivity(t, svc)

	records, err := svc.Query(context.Background(), domain.ActivityFilter{Action: "LOGIN"}, 10, 0)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 LOGIN records, got %d", len(records))
	}
	for _, r := range records {
		if !strings.Contains(r.Action, "LOGIN") {
			t.Errorf("record action %q does not contain LOGIN", r.Action)
		}
	}
}

func TestActivityService_AdminCountAfterLogin(t *testing.T) {
	svc := newActivitySvc()

	if _, err := svc.Append(context.Background(), domain.ActivityEntry{
		ActorType: domain.ActorAdmin, ActorID: 3, ActorName: "Bea",
		Action: domain.ActionLogin, Details: strPtr("Login realizado com sucesso"), IP: strPtr("127.0.0.1"),
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	n, err := svc.Count(context.Background(), domain.ActivityFilter{ActorType: domain.ActorAdmin})
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n < 1 {
		t.Fatalf("expected at least one admin record, got %d", n)
	}
}

func TestActivityService_PartialDateRangeIsIgnored(t *testing.T) {
	svc := newActivitySvc()
	seedActivity(t, svc)

	// A start date after every record would exclude all of them if applied.
	future := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	all, _ := svc.Query(context.Background(), domain.ActivityFilter{}, 100, 0)
	onlyStart, err := svc.Query(context.Background(), domain.ActivityFilter{StartDate: &future}, 100, 0)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(onlyStart) != len(all) {
		t.Fatalf("start-only filter changed the result: %d vs %d", len(onlyStart), len(all))
	}

	n, _ := svc.Count(context.Background(), domain.ActivityFilter{StartDate: &future})
	if int(n) != len(all) {
		t.Fatalf("start-only filter changed the count: %d vs %d", n, len(all))
	}
}

func TestActivityService_Page(t *testing.T) {
	svc := newActivitySvc()
	seedActivity(t, svc)

	page, err := svc.Page(context.Background(), domain.ActivityFilter{}, 2, 2)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if page.Total != 5 || page.TotalPages != 3 || page.Page != 2 || page.Limit != 2 {
		t.Fatalf("unexpected pagination: %+v", page)
	}
	if len(page.Records) != 2 {
		t.Fatalf("expected 2 records on page 2, got %d", len(page.Records))
	}

	all, _ := svc.Query(context.Background(), domain.ActivityFilter{}, 100, 0)
	if page.Records[0].ID != all[2].ID || page.Records[1].ID != all[3].ID {
		t.Fatalf("page 2 does not continue page 1")
	}

	defaults, err := svc.Page(context.Background(), domain.ActivityFilter{}, 0, 0)
	if err != nil {
		t.Fatalf("Page defaults: %v", err)
	}
	if defaults.Page != 1 || defaults.Limit != DefaultPageLimit || defaults.TotalPages != 1 {
		t.Fatalf("unexpected defaults: %+v", defaults)
	}
}

func TestActivityService_Page_CapsHugePage(t *testing.T) {
	svc := newActivitySvc()
	seedActivity(t, svc)

	page, err := svc.Page(context.Background(), domain.ActivityFilter{}, math.MaxInt, 100)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if len(page.Records) != 0 {
		t.Fatalf("a page past the end must be empty, got %d records", len(page.Records))
	}
	if page.Page != maxOffset/100+1 || page.Total != 5 {
		t.Fatalf("unexpected pagination: %+v", page)
	}
}

func TestActivityService_Page_PersistenceError(t *testing.T) {
	svc := NewActivityService(&failingActivityRepo{err: errors.New("db down")}, zerolog.Nop())

	if _, err := svc.Page(context.Background(), domain.ActivityFilter{}, 1, 10); !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}

func TestActivityService_Recent(t *testing.T) {
	svc := newActivitySvc()
	seedActivity(t, svc)

	recent, err := svc.Recent(context.Background(), 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 || recent[0].ActorName != "Dora" || recent[1].ActorName != "Caio" {
		t.Fatalf("unexpected recent records: %+v", recent)
	}
}

func TestActivityService_Stats(t *testing.T) {
	repo := memory.NewActivityRepository(nil)
	svc := NewActivityService(repo, zerolog.Nop())
	seedActivity(t, svc)

	stats, err := svc.Stats(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if len(stats.ByDay) != 1 || stats.ByDay[0].Total != 5 || stats.ByDay[0].Admins != 3 || stats.ByDay[0].Users != 2 {
		t.Fatalf("unexpected per-day stats: %+v", stats.ByDay)
	}
	if len(stats.TopActions) == 0 || stats.TopActions[0].Action != domain.ActionLogin || stats.TopActions[0].Total != 2 {
		t.Fatalf("unexpected top actions: %+v", stats.TopActions)
	}
}
