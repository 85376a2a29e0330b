package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/unifit/unifit-api/internal/core/ports"
)

type ExerciseHandler struct {
	exercises ports.ExerciseService
}

func NewExerciseHandler(exercises ports.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exercises: exercises}
}

// Get returns one exercise of the catalogue.
//
// @Summary      Get exercise
// @Tags         exercicios
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Exercise id"
// @Success      200  {object}  response
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /exercicios/{id} [get]
func (h *ExerciseHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ex, err := h.exercises.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Exercício encontrado com sucesso!", "002", toExerciseResponse(ex))
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "ID inválido")
	}
	return id, nil
}
