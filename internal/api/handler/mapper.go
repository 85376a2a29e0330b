package handler

import (
	"database/sql"

	"github.com/unifit/unifit-api/internal/core/domain"
	"github.com/unifit/unifit-api/internal/core/ports"
)

func toExerciseResponse(e *domain.Exercise) exerciseResponse {
	return exerciseResponse{
		ID:          e.ID,
		Nome:        e.Name,
		Musculo:     nullString(e.Muscle),
		Equipamento: nullString(e.Equipment),
		Dificuldade: nullString(e.Difficulty),
		Instrucao:   nullString(e.Instruction),
		Tipo:        nullString(e.Type),
		Imagem:      nullString(e.Image),
	}
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func toLoginData(res *ports.LoginResult) loginData {
	d := loginData{Nome: res.Principal.Name, Email: res.Email}
	if res.Principal.IsAdmin() {
		d.AdministradorID = res.Principal.ID
	} else {
		d.UsuarioID = res.Principal.ID
	}
	return d
}

func toSessionData(s domain.Session) sessionData {
	return sessionData{
		Tipo:      string(s.Principal.Kind),
		ID:        s.Principal.ID,
		Nome:      s.Principal.Name,
		EmitidoEm: s.IssuedAt,
		ExpiraEm:  s.ExpiresAt,
	}
}

func toPagination(p *ports.ActivityPage) pagination {
	return pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}
