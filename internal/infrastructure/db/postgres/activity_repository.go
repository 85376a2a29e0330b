package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/unifit/unifit-api/internal/core/domain"
)

const activityColumns = `id, usuario_tipo, usuario_id, usuario_nome, acao, detalhes, ip, created_at`

// ActivityRepository stores the audit trail in the activity_logs table.
type ActivityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, e domain.ActivityEntry) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	const query = `
		INSERT INTO activity_logs (usuario_tipo, usuario_id, usuario_nome, acao, detalhes, ip)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		string(e.ActorType), e.ActorID, e.ActorName, e.Action, e.Details, e.IP,
	).Scan(&id)
	if err != nil {
		return 0, persistence("insert activity", err)
	}
	return id, nil
}

// List returns matching rows newest first. A negative limit means no limit.
func (r *ActivityRepository) List(ctx context.Context, f domain.ActivityFilter, limit, offset int) ([]domain.ActivityRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	where, args := activityWhere(f)
	query := `SELECT ` + activityColumns + ` FROM activity_logs` + where + ` ORDER BY created_at DESC, id DESC`
	if limit >= 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	query += ` OFFSET ?`
	args = append(args, offset)

	records := []domain.ActivityRecord{}
	if err := r.db.SelectContext(ctx, &records, r.db.Rebind(query), args...); err != nil {
		return nil, persistence("list activity", err)
	}
	return records, nil
}

func (r *ActivityRepository) Count(ctx context.Context, f domain.ActivityFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	where, args := activityWhere(f)
	query := `SELECT COUNT(*) FROM activity_logs` + where

	var n int64
	if err := r.db.GetContext(ctx, &n, r.db.Rebind(query), args...); err != nil {
		return 0, persistence("count activity", err)
	}
	return n, nil
}

func (r *ActivityRepository) StatsByPeriod(ctx context.Context, days int) ([]domain.DailyActivity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	const query = `
		SELECT to_char(created_at::date, 'YYYY-MM-DD') AS data,
		       COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE usuario_tipo = 'usuario') AS total_usuarios,
		       COUNT(*) FILTER (WHERE usuario_tipo = 'admin') AS total_admins
		FROM activity_logs
		WHERE created_at >= NOW() - make_interval(days => $1)
		GROUP BY created_at::date
		ORDER BY created_at::date DESC`

	out := []domain.DailyActivity{}
	if err := r.db.SelectContext(ctx, &out, query, days); err != nil {
		return nil, persistence("activity stats by period", err)
	}
	return out, nil
}

func (r *ActivityRepository) TopActions(ctx context.Context, limit int) ([]domain.ActionCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	const query = `
		SELECT acao, COUNT(*) AS total
		FROM activity_logs
		GROUP BY acao
		ORDER BY total DESC, acao
		LIMIT $1`

	out := []domain.ActionCount{}
	if err := r.db.SelectContext(ctx, &out, query, limit); err != nil {
		return nil, persistence("activity top actions", err)
	}
	return out, nil
}
