package domain

import (
	"fmt"
	"strings"
	"time"
)

// Action codes written to the activity log.
const (
	ActionLogin  = "LOGIN"
	ActionLogout = "LOGOUT"
)

// Entity names used to build ATUALIZAR_/EXCLUIR_ action codes.
const (
	EntityUsuario   = "usuario"
	EntityExercicio = "exercicio"
)

// UpdateAction returns the action code for updating an entity.
func UpdateAction(entity string) string { return "ATUALIZAR_" + strings.ToUpper(entity) }

// DeleteAction returns the action code for deleting an entity.
func DeleteAction(entity string) string { return "EXCLUIR_" + strings.ToUpper(entity) }

// UpdateDetails renders the details text of an update, e.g. "Atualizou usuario ID: 4".
func UpdateDetails(entity string, id int64) string {
	return fmt.Sprintf("Atualizou %s ID: %d", entity, id)
}

// DeleteDetails renders the details text of a delete.
func DeleteDetails(entity string, id int64) string {
	return fmt.Sprintf("Excluiu %s ID: %d", entity, id)
}

// ActivityRecord is one immutable row of the activity log.
type ActivityRecord struct {
	ID        int64     `json:"id"           db:"id"           bson:"_id"`
	ActorType ActorType `json:"usuario_tipo" db:"usuario_tipo" bson:"usuario_tipo"`
	ActorID   int64     `json:"usuario_id"   db:"usuario_id"   bson:"usuario_id"`
	ActorName string    `json:"usuario_nome" db:"usuario_nome" bson:"usuario_nome"`
	Action    string    `json:"acao"         db:"acao"         bson:"acao"`
	Details   *string   `json:"detalhes"     db:"detalhes"     bson:"detalhes,omitempty"`
	IP        *string   `json:"ip"           db:"ip"           bson:"ip,omitempty"`
	CreatedAt time.Time `json:"created_at"   db:"created_at"   bson:"created_at"`
}

// ActivityEntry carries the caller-supplied fields of a new record.
// ID and CreatedAt are assigned by the store.
type ActivityEntry struct {
	ActorType ActorType
	ActorID   int64
	ActorName string
	Action    string
	Details   *string
	IP        *string
}

// Validate checks the fields every record must carry.
func (e ActivityEntry) Validate() error {
	switch {
	case !e.ActorType.Valid():
		return fmt.Errorf("%w: invalid actor type %q", ErrValidation, e.ActorType)
	case e.ActorID <= 0:
		return fmt.Errorf("%w: actor id is required", ErrValidation)
	case strings.TrimSpace(e.ActorName) == "":
		return fmt.Errorf("%w: actor name is required", ErrValidation)
	case strings.TrimSpace(e.Action) == "":
		return fmt.Errorf("%w: action is required", ErrValidation)
	}
	return nil
}

// ActivityFilter is a conjunction of optional predicates. Zero values are not
// applied. The date range only applies when both bounds are set.
type ActivityFilter struct {
	ActorType ActorType
	Action    string
	ActorName string
	StartDate *time.Time
	EndDate   *time.Time
}

// HasDateRange reports whether the created_at range predicate is active.
func (f ActivityFilter) HasDateRange() bool {
	return f.StartDate != nil && f.EndDate != nil
}

// Matches evaluates the filter against a record in memory. Substring matches
// ignore case, same as ILIKE in the postgres store.
func (f ActivityFilter) Matches(r ActivityRecord) bool {
	if f.ActorType != "" && r.ActorType != f.ActorType {
		return false
	}
	if f.Action != "" && !containsFold(r.Action, f.Action) {
		return false
	}
	if f.ActorName != "" && !containsFold(r.ActorName, f.ActorName) {
		return false
	}
	if f.HasDateRange() {
		if r.CreatedAt.Before(*f.StartDate) || r.CreatedAt.After(*f.EndDate) {
			return false
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// DailyActivity is one row of the per-day activity breakdown.
type DailyActivity struct {
	Date   string `json:"data"           db:"data"           bson:"data"`
	Total  int64  `json:"total"          db:"total"          bson:"total"`
	Users  int64  `json:"total_usuarios" db:"total_usuarios" bson:"total_usuarios"`
	Admins int64  `json:"total_admins"   db:"total_admins"   bson:"total_admins"`
}

// ActionCount is the number of records sharing an action code.
type ActionCount struct {
	Action string `json:"acao"  db:"acao"  bson:"_id"`
	Total  int64  `json:"total" db:"total" bson:"total"`
}
