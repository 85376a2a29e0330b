package domain

import "time"

// ActorType discriminates the two kinds of identity a token can assert.
// The values are the ones stored in activity_logs.usuario_tipo.
type ActorType string

const (
	ActorUser  ActorType = "usuario"
	ActorAdmin ActorType = "admin"
)

// Valid reports whether t is one of the known actor types.
func (t ActorType) Valid() bool {
	return t == ActorUser || t == ActorAdmin
}

// Principal is the identity carried by a session: either a user account or an
// administrator account, never both.
type Principal struct {
	Kind ActorType
	ID   int64
	Name string
}

// UserPrincipal builds the identity of a regular user account.
func UserPrincipal(id int64, name string) Principal {
	return Principal{Kind: ActorUser, ID: id, Name: name}
}

// AdminPrincipal builds the identity of an administrator account.
func AdminPrincipal(id int64, name string) Principal {
	return Principal{Kind: ActorAdmin, ID: id, Name: name}
}

func (p Principal) IsAdmin() bool {
	return p.Kind == ActorAdmin
}

// Session is the decoded content of a bearer token. It is never persisted.
type Session struct {
	Principal Principal
	IssuedAt  time.Time
	ExpiresAt time.Time
}
