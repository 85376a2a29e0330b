package domain

import "database/sql"

// Exercise is a catalogue entry (table exercicios).
type Exercise struct {
	ID          int64          `db:"idexercicio"`
	Name        string         `db:"nome"`
	Muscle      sql.NullString `db:"musculo"`
	Equipment   sql.NullString `db:"equipamento"`
	Difficulty  sql.NullString `db:"dificuldade"`
	Instruction sql.NullString `db:"instrucao"`
	Type        sql.NullString `db:"tipo"`
	Image       sql.NullString `db:"imagem"`
}

// ExerciseUpdate lists the columns a bulk update may touch. Empty fields are
// left unchanged.
type ExerciseUpdate struct {
	Difficulty string
	Type       string
}

// Empty reports whether the update would change nothing.
func (u ExerciseUpdate) Empty() bool {
	return u.Difficulty == "" && u.Type == ""
}

// BulkResult summarises a bulk operation where single items may fail.
type BulkResult struct {
	Total     int
	Succeeded int
}
