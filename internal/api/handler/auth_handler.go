package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unifit/unifit-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginUser authenticates a regular user.
//
// @Summary      User login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  response
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Router       /usuario/login [post]
func (h *AuthHandler) LoginUser(c echo.Context) error {
	req, err := bindLogin(c)
	if err != nil {
		return err
	}
	res, err := h.authService.LoginUser(c.Request().Context(), req.Email, req.Password, clientIP(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse(res))
}

// LoginAdmin authenticates an administrator.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  response
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /admin/login [post]
func (h *AuthHandler) LoginAdmin(c echo.Context) error {
	req, err := bindLogin(c)
	if err != nil {
		return err
	}
	res, err := h.authService.LoginAdmin(c.Request().Context(), req.Email, req.Password, clientIP(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse(res))
}

// Logout records the logout. The client drops its token; no new one is sent.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	h.authService.Logout(c.Request().Context(), session, clientIP(c))
	return c.JSON(http.StatusOK, response{Status: true, Msg: "Logout realizado"})
}

// Session returns the identity behind the token and a refreshed token.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /sessao [get]
func (h *AuthHandler) Session(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Sessão válida", "", toSessionData(session))
}

func bindLogin(c echo.Context) (loginRequest, error) {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}

func loginResponse(res *ports.LoginResult) response {
	return response{
		Status: true,
		Msg:    "Login realizado com sucesso",
		Codigo: "001",
		Dados:  toLoginData(res),
		Token:  res.Token,
	}
}
