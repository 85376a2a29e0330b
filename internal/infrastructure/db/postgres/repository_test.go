package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/unifit/unifit-api/internal/core/domain"
)

var errUnreachable = errors.New("database unreachable")

// deadlineConn fails every statement and remembers how much time the
// context it was given had left.
type deadlineConn struct {
	mu        sync.Mutex
	remaining []time.Duration
	missing   int
}

func (c *deadlineConn) record(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	deadline, ok := ctx.Deadline()
	if !ok {
		c.missing++
		return errUnreachable
	}
	c.remaining = append(c.remaining, time.Until(deadline))
	return errUnreachable
}

func (c *deadlineConn) Connect(context.Context) (driver.Conn, error) { return c, nil }
func (c *deadlineConn) Driver() driver.Driver { return c }
func (c *deadlineConn) Open(string) (driver.Conn, error) { return c, nil }
func (c *deadlineConn) Prepare(string) (driver.Stmt, error) { return nil, errUnreachable }
func (c *deadlineConn) Close() error { return nil }
func (c *deadlineConn) Begin() (driver.Tx, error) { return nil, errUnreachable }
func (c *deadlineConn) CheckNamedValue(*driver.NamedValue) error { return nil }

func (c *deadlineConn) BeginTx(ctx context.Context, _ driver.TxOptions) (driver.Tx, error) {
	return nil, c.record(ctx)
}

func (c *deadlineConn) QueryContext(ctx context.Context, _ string, _ []driver.NamedValue) (driver.Rows, error) {
	return nil, c.record(ctx)
}

func (c *deadlineConn) ExecContext(ctx context.Context, _ string, _ []driver.NamedValue) (driver.Result, error) {
	return nil, c.record(ctx)
}

func newDeadlineDB(t *testing.T) (*sqlx.DB, *deadlineConn) {
	t.Helper()
	conn := &deadlineConn{}
	db := sqlx.NewDb(sql.OpenDB(conn), "postgres")
	t.Cleanup(func() { _ = db.Close() })
	return db, conn
}

func TestRepositories_BoundEveryCallWithTimeout(t *testing.T) {
	db, conn := newDeadlineDB(t)

	activity := NewActivityRepository(db)
	users := NewUserRepository(db)
	admins := NewAdminRepository(db)
	exercises := NewExerciseRepository(db)
	stats := NewStatsRepository(db)

	calls := map[string]func(context.Context) error{
		"activity create": func(ctx context.Context) error {
			_, err := activity.Create(ctx, domain.ActivityEntry{ActorType: domain.ActorUser, ActorID: 1, ActorName: "Ana", Action: domain.ActionLogin})
			return err
		},
		"activity list": func(ctx context.Context) error {
			_, err := activity.List(ctx, domain.ActivityFilter{}, 10, 0)
			return err
		},
		"activity count": func(ctx context.Context) error {
			_, err := activity.Count(ctx, domain.ActivityFilter{})
			return err
		},
		"activity by period": func(ctx context.Context) error {
			_, err := activity.StatsByPeriod(ctx, 30)
			return err
		},
		"activity top actions": func(ctx context.Context) error {
			_, err := activity.TopActions(ctx, 10)
			return err
		},
		"user by email": func(ctx context.Context) error {
			_, err := users.FindByEmail(ctx, "ana@unifit.com")
			return err
		},
		"user status": func(ctx context.Context) error {
			return users.SetActive(ctx, 7, false)
		},
		"admin by email": func(ctx context.Context) error {
			_, err := admins.FindByEmail(ctx, "bea@unifit.com")
			return err
		},
		"exercise by id": func(ctx context.Context) error {
			_, err := exercises.FindByID(ctx, 4)
			return err
		},
		"exercise delete": func(ctx context.Context) error {
			return exercises.Delete(ctx, 4)
		},
		"exercise bulk update": func(ctx context.Context) error {
			_, err := exercises.UpdateMany(ctx, []int64{1, 2}, domain.ExerciseUpdate{Difficulty: "Iniciante"})
			return err
		},
		"stats totals": func(ctx context.Context) error {
			_, err := stats.Totals(ctx)
			return err
		},
		"stats most used": func(ctx context.Context) error {
			_, err := stats.MostUsedExercises(ctx, 10)
			return err
		},
		"stats by muscle": func(ctx context.Context) error {
			_, err := stats.ExercisesByMuscle(ctx)
			return err
		},
		"stats users": func(ctx context.Context) error {
			_, err := stats.Users(ctx, 10)
			return err
		},
		"stats exercises": func(ctx context.Context) error {
			_, err := stats.Exercises(ctx, 15, 20)
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			if err := call(context.Background()); !errors.Is(err, domain.ErrPersistence) || !errors.Is(err, errUnreachable) {
				t.Fatalf("expected a wrapped persistence error, got %v", err)
			}
		})
	}

	if conn.missing != 0 {
		t.Fatalf("%d statements ran without a deadline", conn.missing)
	}
	if len(conn.remaining) < len(calls) {
		t.Fatalf("expected at least %d statements, driver saw %d", len(calls), len(conn.remaining))
	}
	for _, left := range conn.remaining {
		if left <= 0 || left > defaultTimeout {
			t.Fatalf("deadline %s outside (0, %s]", left, defaultTimeout)
		}
	}
}

func TestRepositories_KeepShorterCallerDeadline(t *testing.T) {
	db, conn := newDeadlineDB(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := NewStatsRepository(db).Totals(ctx); !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
	if len(conn.remaining) != 1 || conn.remaining[0] > time.Second {
		t.Fatalf("caller deadline not kept: %v", conn.remaining)
	}
}
