package domain

import "database/sql"

// User is a regular account of the fitness app (table usuarios).
type User struct {
	ID           int64           `json:"UsuarioID" db:"usuarioid"`
	Name         string          `json:"Nome"      db:"nome"`
	Email        string          `json:"Email"     db:"email"`
	PasswordHash string          `json:"-"         db:"senha"`
	Sex          sql.NullString  `json:"-"         db:"sexo"`
	Height       sql.NullFloat64 `json:"-"         db:"altura"`
	Weight       sql.NullFloat64 `json:"-"         db:"peso"`
	Active       bool            `json:"ativo"     db:"ativo"`
}

// Admin is an administrator account (table administradores).
type Admin struct {
	ID           int64  `json:"AdministradorID" db:"administradorid"`
	Name         string `json:"Nome"            db:"nome"`
	Email        string `json:"Email"           db:"email"`
	PasswordHash string `json:"-"               db:"senha"`
}
