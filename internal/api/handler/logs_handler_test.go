package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/unifit/unifit-api/internal/core/domain"
	"github.com/unifit/unifit-api/internal/core/service"
	"github.com/unifit/unifit-api/internal/infrastructure/db/memory"
)

var brt = time.FixedZone("BRT", -3*60*60)

func strPtr(s string) *string { return &s }

func newSeededLogs(t *testing.T) *service.ActivityService {
	t.Helper()
	clock := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	repo := memory.NewActivityRepository(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	})
	svc := service.NewActivityService(repo, zerolog.Nop())

	entries := []domain.ActivityEntry{
		{ActorType: domain.ActorUser, ActorID: 7, ActorName: "Ana", Action: domain.ActionLogin, Details: strPtr("Login realizado com sucesso"), IP: strPtr("10.0.0.1")},
		{ActorType: domain.ActorAdmin, ActorID: 3, ActorName: "Bea", Action: domain.ActionLogin, Details: strPtr("Login realizado com sucesso"), IP: strPtr("127.0.0.1")},
		{ActorType: domain.ActorAdmin, ActorID: 3, ActorName: "Bea", Action: domain.DeleteAction(domain.EntityExercicio), Details: strPtr(`Excluiu "Supino"`)},
	}
	for _, e := range entries {
		if _, err := svc.Append(context.Background(), e); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return svc
}

func TestLogsHandler_List(t *testing.T) {
	e := newEcho()
	h := NewLogsHandler(newSeededLogs(t), brt)

	req := httptest.NewRequest(http.MethodGet, "/admin/logs?page=1&limit=2", nil)
	rec, err := signedIn(t, e, req, domain.AdminPrincipal(3, "Bea"), h.List)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["status"] != true || body["token"] == "" || body["token"] == nil {
		t.Fatalf("unexpected envelope: %+v", body)
	}
	logs := body["logs"].([]any)
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(logs))
	}
	newest := logs[0].(map[string]any)
	if newest["acao"] != "EXCLUIR_EXERCICIO" || newest["ip"] != nil {
		t.Fatalf("unexpected newest record: %+v", newest)
	}

	p := body["pagination"].(map[string]any)
	if p["page"] != float64(1) || p["limit"] != float64(2) || p["total"] != float64(3) || p["totalPages"] != float64(2) {
		t.Fatalf("unexpected pagination: %+v", p)
	}
}

func TestLogsHandler_List_MalformedPaging(t *testing.T) {
	e := newEcho()
	h := NewLogsHandler(newSeededLogs(t), brt)

	cases := []struct {
		name      string
		query     string
		wantPage  float64
		wantLimit float64
		wantLogs  int
	}{
		{"limit not a number", "?limit=abc", 1, 100, 3},
		{"page not a number", "?page=x&limit=2", 1, 2, 2},
		{"page beyond int range", "?page=99999999999999999999999&limit=2", 1, 2, 2},
		{"huge page", "?page=4611686018427387904&limit=2", math.MaxInt32/2 + 1, 2, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/logs"+tc.query, nil)
			rec, err := signedIn(t, e, req, domain.AdminPrincipal(3, "Bea"), h.List)
			if err != nil {
				t.Fatalf("handler error: %v", err)
			}
			body := decodeBody(t, rec)
			p := body["pagination"].(map[string]any)
			if p["page"] != tc.wantPage || p["limit"] != tc.wantLimit {
				t.Fatalf("unexpected pagination: %+v", p)
			}
			if logs := body["logs"].([]any); len(logs) != tc.wantLogs {
				t.Fatalf("expected %d logs, got %d", tc.wantLogs, len(logs))
			}
		})
	}
}

func TestLogsHandler_List_Filters(t *testing.T) {
	e := newEcho()
	h := NewLogsHandler(newSeededLogs(t), brt)

	cases := []struct {
		query string
		total float64
	}{
		{"acao=LOGIN", 2},
		{"usuarioTipo=admin", 2},
		{"usuarioNome=ana", 1},
		{"usuarioTipo=admin&acao=LOGIN", 1},
		{"startDate=2024-05-01&endDate=2024-05-01", 3},
		{"startDate=2024-04-01&endDate=2024-04-30", 0},
		{"startDate=2030-01-01", 3},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/logs?"+tc.query, nil)
			rec, err := signedIn(t, e, req, domain.AdminPrincipal(3, "Bea"), h.List)
			if err != nil {
				t.Fatalf("handler error: %v", err)
			}
			p := decodeBody(t, rec)["pagination"].(map[string]any)
			if p["total"] != tc.total {
				t.Fatalf("expected total %v, got %v", tc.total, p["total"])
			}
		})
	}
}

func TestLogsHandler_List_BadDate(t *testing.T) {
	e := newEcho()
	h := NewLogsHandler(newSeededLogs(t), brt)

	req := httptest.NewRequest(http.MethodGet, "/admin/logs?startDate=ontem&endDate=2024-05-01", nil)
	_, err := signedIn(t, e, req, domain.AdminPrincipal(3, "Bea"), h.List)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestLogsHandler_Export(t *testing.T) {
	e := newEcho()
	h := NewLogsHandler(newSeededLogs(t), brt)

	req := httptest.NewRequest(http.MethodGet, "/admin/logs/export?usuarioTipo=admin", nil)
	rec, err := signedIn(t, e, req, domain.AdminPrincipal(3, "Bea"), h.Export)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if got := rec.Header().Get(echo.HeaderContentDisposition); got != "attachment; filename=logs.csv" {
		t.Errorf("Content-Disposition = %q", got)
	}
	if got := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(got, "text/csv") {
		t.Errorf("Content-Type = %q", got)
	}

	lines := strings.Split(strings.TrimPrefix(rec.Body.String(), csvBOM), "\n")
	if !strings.HasPrefix(rec.Body.String(), csvBOM) {
		t.Error("missing UTF-8 BOM")
	}
	if len(lines) != 3 || lines[0] != csvHeader {
		t.Fatalf("unexpected csv lines: %q", lines)
	}
	if want := `3,"01/05/2024, 05:03:00","admin",3,"Bea","EXCLUIR_EXERCICIO","Excluiu ""Supino""",""`; lines[1] != want {
		t.Fatalf("row mismatch\n got: %s\nwant: %s", lines[1], want)
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in       string
		endOfDay bool
		want     time.Time
	}{
		{"2024-05-01", false, time.Date(2024, 5, 1, 0, 0, 0, 0, brt)},
		{"2024-05-01", true, time.Date(2024, 5, 1, 23, 59, 59, 999999999, brt)},
		{"2024-05-01T10:30", true, time.Date(2024, 5, 1, 10, 30, 0, 0, brt)},
		{"2024-05-01 10:30:15", false, time.Date(2024, 5, 1, 10, 30, 15, 0, brt)},
		{"2024-05-01T10:30:00Z", false, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := parseDate(tc.in, brt, tc.endOfDay)
		if err != nil {
			t.Fatalf("parseDate(%q): %v", tc.in, err)
		}
		if !got.Equal(tc.want) {
			t.Errorf("parseDate(%q, %v) = %v, want %v", tc.in, tc.endOfDay, got, tc.want)
		}
	}

	if _, err := parseDate("01/05/2024", brt, false); err == nil {
		t.Error("expected an error for an unsupported layout")
	}
}
