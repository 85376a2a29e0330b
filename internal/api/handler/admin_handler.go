package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unifit/unifit-api/internal/api/middleware"
	"github.com/unifit/unifit-api/internal/core/domain"
	"github.com/unifit/unifit-api/internal/core/ports"
)

// AdminHandler serves the account and catalogue management routes of the
// admin panel.
type AdminHandler struct {
	admin     ports.AdminService
	exercises ports.ExerciseService
}

func NewAdminHandler(admin ports.AdminService, exercises ports.ExerciseService) *AdminHandler {
	return &AdminHandler{admin: admin, exercises: exercises}
}

// SetUserStatus blocks or unblocks a user.
//
// @Summary      Block or unblock a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      userStatusRequest  true  "New status"
// @Success      200   {object}  response
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /admin/usuarios/{id}/status [patch]
func (h *AdminHandler) SetUserStatus(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req userStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.admin.SetUserStatus(c.Request().Context(), session.Principal, id, *req.Ativo, clientIP(c)); err != nil {
		return err
	}

	msg := "Usuário bloqueado com sucesso"
	if *req.Ativo {
		msg = "Usuário desbloqueado com sucesso"
	}
	return success(c, http.StatusOK, msg, "", nil)
}

// BulkDelete deletes several exercises. Ids that fail are skipped.
//
// @Summary      Delete exercises in bulk
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bulkDeleteRequest  true  "Exercise ids"
// @Success      200   {object}  bulkResponse
// @Failure      400   {object}  map[string]any
// @Router       /admin/exercicios/bulk-delete [post]
func (h *AdminHandler) BulkDelete(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	var req bulkDeleteRequest
	if err := c.Bind(&req); err != nil || len(req.IDs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "IDs inválidos")
	}

	res, err := h.exercises.BulkDelete(c.Request().Context(), session.Principal, req.IDs, clientIP(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bulkResponse{
		Status:  true,
		Msg:     fmt.Sprintf("%d exercício(s) deletado(s) com sucesso", res.Succeeded),
		Total:   res.Total,
		Sucesso: res.Succeeded,
		Token:   middleware.TokenFrom(c),
	})
}

// BulkUpdate sets difficulty and/or type on several exercises.
//
// @Summary      Update exercises in bulk
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bulkUpdateRequest  true  "Exercise ids and fields"
// @Success      200   {object}  bulkResponse
// @Failure      400   {object}  map[string]any
// @Router       /admin/exercicios/bulk-update [post]
func (h *AdminHandler) BulkUpdate(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	var req bulkUpdateRequest
	if err := c.Bind(&req); err != nil || len(req.IDs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "IDs inválidos")
	}
	if req.Updates == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados de atualização inválidos")
	}
	upd := domain.ExerciseUpdate{Difficulty: req.Updates.Dificuldade, Type: req.Updates.Tipo}
	if upd.Empty() {
		return echo.NewHTTPError(http.StatusBadRequest, "Nenhum campo para atualizar")
	}

	res, err := h.exercises.BulkUpdate(c.Request().Context(), session.Principal, req.IDs, upd, clientIP(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bulkResponse{
		Status:  true,
		Msg:     "Exercícios atualizados com sucesso",
		Total:   res.Total,
		Sucesso: res.Succeeded,
		Token:   middleware.TokenFrom(c),
	})
}
