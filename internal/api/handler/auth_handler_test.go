package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/unifit/unifit-api/internal/api/middleware"
	"github.com/unifit/unifit-api/internal/core/domain"
	"github.com/unifit/unifit-api/internal/core/ports"
	"github.com/unifit/unifit-api/internal/core/service"
)

type stubAuthService struct {
	loginUserFn  func(ctx context.Context, email, password, ip string) (*ports.LoginResult, error)
	loginAdminFn func(ctx context.Context, email, password, ip string) (*ports.LoginResult, error)
	loggedOut    []domain.Session
	logoutIP     string
}

func (s *stubAuthService) LoginUser(ctx context.Context, email, password, ip string) (*ports.LoginResult, error) {
	return s.loginUserFn(ctx, email, password, ip)
}

func (s *stubAuthService) LoginAdmin(ctx context.Context, email, password, ip string) (*ports.LoginResult, error) {
	return s.loginAdminFn(ctx, email, password, ip)
}

func (s *stubAuthService) Logout(_ context.Context, session domain.Session, ip string) {
	s.loggedOut = append(s.loggedOut, session)
	s.logoutIP = ip
}

var testTokens = service.NewTokenService("handler-secret", time.Hour)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func newRecorder() *httptest.ResponseRecorder { return httptest.NewRecorder() }

// withPrincipal runs h behind middleware.Auth with a token issued for p.
func withPrincipal(t *testing.T, c echo.Context, p domain.Principal, h echo.HandlerFunc) error {
	t.Helper()
	token, _, err := testTokens.Issue(p)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	return middleware.Auth(testTokens)(h)(c)
}

func withAdmin(t *testing.T, c echo.Context, h echo.HandlerFunc) error {
	t.Helper()
	return withPrincipal(t, c, domain.AdminPrincipal(3, "Bea"), h)
}

func withUser(t *testing.T, c echo.Context, h echo.HandlerFunc) error {
	t.Helper()
	return withPrincipal(t, c, domain.UserPrincipal(7, "Ana"), h)
}

func signedIn(t *testing.T, e *echo.Echo, req *http.Request, p domain.Principal, h echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	rec := httptest.NewRecorder()
	err := withPrincipal(t, e.NewContext(req, rec), p, h)
	return rec, err
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestAuthHandler_LoginUser_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginUserFn: func(_ context.Context, email, password, ip string) (*ports.LoginResult, error) {
			if email != "ana@unifit.com" || password != "s3cret" || ip != "203.0.113.9" {
				t.Fatalf("unexpected args: %s %s %s", email, password, ip)
			}
			return &ports.LoginResult{Token: "tok", Principal: domain.UserPrincipal(7, "Ana"), Email: email}, nil
		},
	}
	h := NewAuthHandler(stub)

	req := jsonRequest(http.MethodPost, "/usuario/login", `{"email":"ana@unifit.com","senha":"s3cret"}`)
	req.Header.Set(echo.HeaderXForwardedFor, "203.0.113.9, 10.0.0.1")
	rec := httptest.NewRecorder()

	if err := h.LoginUser(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["status"] != true || body["msg"] != "Login realizado com sucesso" || body["codigo"] != "001" || body["token"] != "tok" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
	dados, ok := body["dados"].(map[string]any)
	if !ok {
		t.Fatal("expected dados in response")
	}
	if dados["UsuarioID"] != float64(7) || dados["Nome"] != "Ana" || dados["Email"] != "ana@unifit.com" {
		t.Fatalf("unexpected dados: %+v", dados)
	}
	if _, present := dados["AdministradorID"]; present {
		t.Fatal("user login must not carry AdministradorID")
	}
}

func TestAuthHandler_LoginAdmin_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginAdminFn: func(_ context.Context, email, _, _ string) (*ports.LoginResult, error) {
			return &ports.LoginResult{Token: "tok", Principal: domain.AdminPrincipal(3, "Bea"), Email: email}, nil
		},
	}
	h := NewAuthHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/admin/login", `{"email":"bea@unifit.com","senha":"admin123"}`), rec)
	if err := h.LoginAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	dados := decodeBody(t, rec)["dados"].(map[string]any)
	if dados["AdministradorID"] != float64(3) {
		t.Fatalf("unexpected dados: %+v", dados)
	}
}

func TestAuthHandler_Login_Errors(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginUserFn: func(context.Context, string, string, string) (*ports.LoginResult, error) {
			return nil, domain.ErrUserInactive
		},
	}
	h := NewAuthHandler(stub)

	cases := []struct {
		name string
		body string
		want func(error) bool
	}{
		{"missing password", `{"email":"ana@unifit.com"}`, func(err error) bool { return errors.Is(err, domain.ErrValidation) }},
		{"invalid email", `{"email":"ana","senha":"x"}`, func(err error) bool { return errors.Is(err, domain.ErrValidation) }},
		{"malformed json", `{"email":`, func(err error) bool {
			var he *echo.HTTPError
			return errors.As(err, &he) && he.Code == http.StatusBadRequest
		}},
		{"blocked user", `{"email":"caio@unifit.com","senha":"s3cret"}`, func(err error) bool { return errors.Is(err, domain.ErrUserInactive) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := e.NewContext(jsonRequest(http.MethodPost, "/usuario/login", tc.body), httptest.NewRecorder())
			if err := h.LoginUser(c); !tc.want(err) {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{}
	h := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set(echo.HeaderXForwardedFor, "198.51.100.4")
	rec, err := signedIn(t, e, req, domain.UserPrincipal(7, "Ana"), h.Logout)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := decodeBody(t, rec)
	if body["status"] != true || body["msg"] != "Logout realizado" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
	if _, present := body["token"]; present {
		t.Fatal("logout must not hand out a new token")
	}
	if len(stub.loggedOut) != 1 || stub.loggedOut[0].Principal.ID != 7 || stub.logoutIP != "198.51.100.4" {
		t.Fatalf("logout not forwarded: %+v %q", stub.loggedOut, stub.logoutIP)
	}
}

func TestAuthHandler_Session(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{})

	rec, err := signedIn(t, e, httptest.NewRequest(http.MethodGet, "/sessao", nil), domain.AdminPrincipal(3, "Bea"), h.Session)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := decodeBody(t, rec)
	token, _ := body["token"].(string)
	if session, err := testTokens.Validate(token); err != nil || session.Principal.ID != 3 {
		t.Fatalf("expected a refreshed admin token, got %q (%v)", token, err)
	}
	dados := body["dados"].(map[string]any)
	if dados["tipo"] != "admin" || dados["id"] != float64(3) || dados["nome"] != "Bea" {
		t.Fatalf("unexpected dados: %+v", dados)
	}
}

func TestAuthHandler_Session_WithoutAuth(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/sessao", nil), httptest.NewRecorder())
	if err := h.Session(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
