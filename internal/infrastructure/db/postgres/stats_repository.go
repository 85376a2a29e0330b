package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/unifit/unifit-api/internal/core/domain"
)

// StatsRepository runs the dashboard aggregates over the catalogue tables.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Totals(ctx context.Context) (*domain.Totals, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	const query = `
		SELECT (SELECT COUNT(*) FROM usuarios)        AS usuarios,
		       (SELECT COUNT(*) FROM administradores) AS admins,
		       (SELECT COUNT(*) FROM exercicios)      AS exercicios,
		       (SELECT COUNT(*) FROM lista)           AS listas`

	var t domain.Totals
	if err := r.db.GetContext(ctx, &t, query); err != nil {
		return nil, persistence("dashboard totals", err)
	}
	return &t, nil
}

func (r *StatsRepository) MostUsedExercises(ctx context.Context, limit int) ([]domain.ExerciseUsage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return mostUsedExercises(ctx, r.db, limit)
}

func (r *StatsRepository) ExercisesByMuscle(ctx context.Context) ([]domain.MuscleCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return exercisesByMuscle(ctx, r.db)
}

// Users runs the user statistics inside one read-only transaction so every
// figure comes from the same snapshot.
func (r *StatsRepository) Users(ctx context.Context, top int) (*domain.UserStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, persistence("user stats", err)
	}
	defer func() { _ = tx.Rollback() }()

	out := domain.UserStats{BySex: []domain.SexCount{}, TopUsers: []domain.UserListCount{}}

	const bySex = `
		SELECT sexo, COUNT(*) AS total
		FROM usuarios
		WHERE sexo IS NOT NULL AND sexo <> ''
		GROUP BY sexo
		ORDER BY total DESC, sexo`
	if err := sqlx.SelectContext(ctx, tx, &out.BySex, bySex); err != nil {
		return nil, persistence("users by sex", err)
	}

	const body = `
		SELECT AVG(altura) AS altura_media,
		       AVG(peso)   AS peso_media,
		       MIN(altura) AS altura_min,
		       MAX(altura) AS altura_max,
		       MIN(peso)   AS peso_min,
		       MAX(peso)   AS peso_max,
		       COUNT(*) FILTER (WHERE altura IS NOT NULL AND peso IS NOT NULL) AS total_com_dados
		FROM usuarios`
	if err := sqlx.GetContext(ctx, tx, &out.Body, body); err != nil {
		return nil, persistence("user body stats", err)
	}

	const bmi = `
		SELECT AVG(imc) AS imc_medio,
		       COUNT(*) FILTER (WHERE imc < $1)              AS abaixo_peso,
		       COUNT(*) FILTER (WHERE imc >= $1 AND imc < $2) AS peso_normal,
		       COUNT(*) FILTER (WHERE imc >= $2 AND imc < $3) AS sobrepeso,
		       COUNT(*) FILTER (WHERE imc >= $3)              AS obesidade
		FROM (
			SELECT peso / (altura * altura) AS imc
			FROM usuarios
			WHERE altura > 0 AND peso > 0
		) b`
	if err := sqlx.GetContext(ctx, tx, &out.BMI, bmi,
		domain.BMIUnderweight, domain.BMINormal, domain.BMIOverweight,
	); err != nil {
		return nil, persistence("user bmi stats", err)
	}

	const lists = `
		SELECT COUNT(*)                        AS usuarios_com_listas,
		       COALESCE(SUM(listas_por_usuario), 0)::bigint AS total_listas_usuarios,
		       AVG(listas_por_usuario)         AS media_listas
		FROM (
			SELECT usuarios_usuarioid, COUNT(*) AS listas_por_usuario
			FROM lista
			GROUP BY usuarios_usuarioid
		) l`
	if err := sqlx.GetContext(ctx, tx, &out.Lists, lists); err != nil {
		return nil, persistence("user list stats", err)
	}

	const topUsers = `
		SELECT u.nome, u.email, COUNT(l.idlista) AS total_listas
		FROM usuarios u
		LEFT JOIN lista l ON u.usuarioid = l.usuarios_usuarioid
		GROUP BY u.usuarioid, u.nome, u.email
		ORDER BY total_listas DESC, u.nome
		LIMIT $1`
	if err := sqlx.SelectContext(ctx, tx, &out.TopUsers, topUsers, top); err != nil {
		return nil, persistence("top users by lists", err)
	}

	return &out, nil
}

// Exercises runs the catalogue statistics in one read-only transaction.
func (r *StatsRepository) Exercises(ctx context.Context, popular, unused int) (*domain.ExerciseStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, persistence("exercise stats", err)
	}
	defer func() { _ = tx.Rollback() }()

	var out domain.ExerciseStats

	if out.ByMuscle, err = exercisesByMuscle(ctx, tx); err != nil {
		return nil, err
	}
	if out.ByEquipment, err = exercisesByColumn(ctx, tx, "equipamento", "total DESC, categoria"); err != nil {
		return nil, err
	}
	const difficultyOrder = `CASE dificuldade
		WHEN 'Iniciante' THEN 1
		WHEN 'Intermediário' THEN 2
		WHEN 'Avançado' THEN 3
		ELSE 4 END, dificuldade`
	if out.ByDifficulty, err = exercisesByColumn(ctx, tx, "dificuldade", difficultyOrder); err != nil {
		return nil, err
	}
	if out.ByType, err = exercisesByColumn(ctx, tx, "tipo", "total DESC, categoria"); err != nil {
		return nil, err
	}

	const utilization = `
		SELECT COUNT(*) AS total_exercicios,
		       COUNT(*) FILTER (WHERE used)     AS exercicios_usados,
		       COUNT(*) FILTER (WHERE NOT used) AS exercicios_nao_usados
		FROM (
			SELECT EXISTS (
				SELECT 1 FROM lista_exercicios le WHERE le.exercicios_idexercicio = e.idexercicio
			) AS used
			FROM exercicios e
		) u`
	if err := sqlx.GetContext(ctx, tx, &out.Utilization, utilization); err != nil {
		return nil, persistence("exercise utilization", err)
	}

	if out.Popular, err = mostUsedExercises(ctx, tx, popular); err != nil {
		return nil, err
	}

	const neverUsed = `
		SELECT e.nome,
		       COALESCE(e.musculo, '')     AS musculo,
		       COALESCE(e.dificuldade, '') AS dificuldade,
		       COALESCE(e.tipo, '')        AS tipo
		FROM exercicios e
		WHERE NOT EXISTS (
			SELECT 1 FROM lista_exercicios le WHERE le.exercicios_idexercicio = e.idexercicio
		)
		ORDER BY e.nome
		LIMIT $1`
	out.Unused = []domain.UnusedExercise{}
	if err := sqlx.SelectContext(ctx, tx, &out.Unused, neverUsed, unused); err != nil {
		return nil, persistence("unused exercises", err)
	}

	return &out, nil
}

func mostUsedExercises(ctx context.Context, q sqlx.QueryerContext, limit int) ([]domain.ExerciseUsage, error) {
	const query = `
		SELECT e.nome,
		       COALESCE(e.musculo, '')     AS musculo,
		       COALESCE(e.dificuldade, '') AS dificuldade,
		       COUNT(*) AS vezes_usado
		FROM exercicios e
		INNER JOIN lista_exercicios le ON e.idexercicio = le.exercicios_idexercicio
		GROUP BY e.idexercicio, e.nome, e.musculo, e.dificuldade
		ORDER BY vezes_usado DESC, e.nome
		LIMIT $1`

	out := []domain.ExerciseUsage{}
	if err := sqlx.SelectContext(ctx, q, &out, query, limit); err != nil {
		return nil, persistence("most used exercises", err)
	}
	return out, nil
}

func exercisesByMuscle(ctx context.Context, q sqlx.QueryerContext) ([]domain.MuscleCount, error) {
	const query = `
		SELECT musculo, COUNT(*) AS total
		FROM exercicios
		WHERE musculo IS NOT NULL AND musculo <> ''
		GROUP BY musculo
		ORDER BY total DESC, musculo`

	out := []domain.MuscleCount{}
	if err := sqlx.SelectContext(ctx, q, &out, query); err != nil {
		return nil, persistence("exercises by muscle", err)
	}
	return out, nil
}

// exercisesByColumn groups the catalogue by one of its text columns. column
// and orderBy are compile-time constants of this file, never user input.
func exercisesByColumn(ctx context.Context, q sqlx.QueryerContext, column, orderBy string) ([]domain.CategoryCount, error) {
	query := `
		SELECT ` + column + ` AS categoria, COUNT(*) AS total
		FROM exercicios
		WHERE ` + column + ` IS NOT NULL AND ` + column + ` <> ''
		GROUP BY ` + column + `
		ORDER BY ` + orderBy

	out := []domain.CategoryCount{}
	if err := sqlx.SelectContext(ctx, q, &out, query); err != nil {
		return nil, persistence("exercises by "+column, err)
	}
	return out, nil
}
