package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/unifit/unifit-api/internal/core/domain"
)

type ExerciseRepository struct {
	db *sqlx.DB
}

func NewExerciseRepository(db *sqlx.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) FindByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	const query = `
		SELECT idexercicio, nome, musculo, equipamento, dificuldade, instrucao, tipo, imagem
		FROM exercicios
		WHERE idexercicio = $1`

	var e domain.Exercise
	if err := r.db.GetContext(ctx, &e, query, id); err != nil {
		return nil, notFoundOr("find exercise", err, domain.ErrExerciseNotFound)
	}
	return &e, nil
}

func (r *ExerciseRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM exercicios WHERE idexercicio = $1`, id)
	if err != nil {
		return persistence("delete exercise", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return persistence("delete exercise", err)
	}
	if n == 0 {
		return domain.ErrExerciseNotFound
	}
	return nil
}

// UpdateMany leaves a column untouched when its field in upd is empty.
func (r *ExerciseRepository) UpdateMany(ctx context.Context, ids []int64, upd domain.ExerciseUpdate) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query, args, err := sqlx.In(`
		UPDATE exercicios
		SET dificuldade = COALESCE(NULLIF(?, ''), dificuldade),
		    tipo        = COALESCE(NULLIF(?, ''), tipo)
		WHERE idexercicio IN (?)`,
		upd.Difficulty, upd.Type, ids,
	)
	if err != nil {
		return 0, persistence("bulk update exercises", err)
	}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return 0, persistence("bulk update exercises", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, persistence("bulk update exercises", err)
	}
	return n, nil
}
