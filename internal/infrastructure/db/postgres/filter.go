package postgres

import (
	"strings"

	"github.com/unifit/unifit-api/internal/core/domain"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// activityWhere renders filter as a WHERE clause with '?' placeholders. The
// caller rebinds it for the driver. Predicates are ANDed; the date range is
// only added when both bounds are present.
func activityWhere(f domain.ActivityFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.ActorType != "" {
		conds = append(conds, "usuario_tipo = ?")
		args = append(args, string(f.ActorType))
	}
	if f.Action != "" {
		conds = append(conds, "acao ILIKE ?")
		args = append(args, containsPattern(f.Action))
	}
	if f.ActorName != "" {
		conds = append(conds, "usuario_nome ILIKE ?")
		args = append(args, containsPattern(f.ActorName))
	}
	if f.HasDateRange() {
		conds = append(conds, "created_at BETWEEN ? AND ?")
		args = append(args, *f.StartDate, *f.EndDate)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// containsPattern turns s into a LIKE pattern matching s literally anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
