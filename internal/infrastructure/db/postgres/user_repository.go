package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/unifit/unifit-api/internal/core/domain"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	const query = `
		SELECT usuarioid, nome, email, senha, sexo, altura, peso, ativo
		FROM usuarios
		WHERE email = $1`

	var u domain.User
	if err := r.db.GetContext(ctx, &u, query, email); err != nil {
		return nil, notFoundOr("find user by email", err, domain.ErrUserNotFound)
	}
	return &u, nil
}

func (r *UserRepository) SetActive(ctx context.Context, id int64, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE usuarios SET ativo = $1 WHERE usuarioid = $2`, active, id)
	if err != nil {
		return persistence("set user status", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return persistence("set user status", err)
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

type AdminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	const query = `
		SELECT administradorid, nome, email, senha
		FROM administradores
		WHERE email = $1`

	var a domain.Admin
	if err := r.db.GetContext(ctx, &a, query, email); err != nil {
		return nil, notFoundOr("find admin by email", err, domain.ErrUserNotFound)
	}
	return &a, nil
}
