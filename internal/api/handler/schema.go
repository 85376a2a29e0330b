package handler

import "time"

// --- Envelope ---

// response is the success envelope the web client reads. Token carries the
// refreshed session token on protected routes.
type response struct {
	Status bool   `json:"status"`
	Msg    string `json:"msg,omitempty"`
	Codigo string `json:"codigo,omitempty"`
	Dados  any    `json:"dados,omitempty"`
	Token  string `json:"token,omitempty"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

type loginData struct {
	UsuarioID       int64  `json:"UsuarioID,omitempty"`
	AdministradorID int64  `json:"AdministradorID,omitempty"`
	Nome            string `json:"Nome"`
	Email           string `json:"Email"`
}

type sessionData struct {
	Tipo      string    `json:"tipo"`
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	EmitidoEm time.Time `json:"emitidoEm"`
	ExpiraEm  time.Time `json:"expiraEm"`
}

// --- Exercises ---

type exerciseResponse struct {
	ID          int64   `json:"idexercicio"`
	Nome        string  `json:"nome"`
	Musculo     *string `json:"musculo"`
	Equipamento *string `json:"equipamento"`
	Dificuldade *string `json:"dificuldade"`
	Instrucao   *string `json:"instrucao"`
	Tipo        *string `json:"tipo"`
	Imagem      *string `json:"imagem"`
}

type bulkDeleteRequest struct {
	IDs []int64 `json:"ids"`
}

type exerciseUpdates struct {
	Dificuldade string `json:"dificuldade"`
	Tipo        string `json:"tipo"`
}

type bulkUpdateRequest struct {
	IDs     []int64          `json:"ids"`
	Updates *exerciseUpdates `json:"updates"`
}

type bulkResponse struct {
	Status  bool   `json:"status"`
	Msg     string `json:"msg"`
	Total   int    `json:"total"`
	Sucesso int    `json:"sucesso"`
	Token   string `json:"token,omitempty"`
}

// --- Admin ---

type userStatusRequest struct {
	Ativo *bool `json:"ativo" validate:"required"`
}

// --- Activity log ---

// Page and Limit stay strings: a value that is not a number falls back to the
// default instead of failing the request.
type logsQuery struct {
	Page        string `query:"page"`
	Limit       string `query:"limit"`
	UsuarioTipo string `query:"usuarioTipo"`
	Acao        string `query:"acao"`
	UsuarioNome string `query:"usuarioNome"`
	StartDate   string `query:"startDate"`
	EndDate     string `query:"endDate"`
}

type pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type logsResponse struct {
	Status     bool       `json:"status"`
	Logs       any        `json:"logs"`
	Pagination pagination `json:"pagination"`
	Token      string     `json:"token,omitempty"`
}

// --- Stats ---

type activityStatsQuery struct {
	Days int `query:"dias"`
	Top  int `query:"top"`
}
