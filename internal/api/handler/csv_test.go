package handler

import (
	"bytes"
	"testing"
	"time"

	"github.com/unifit/unifit-api/internal/core/domain"
)

func TestWriteActivityCSV(t *testing.T) {
	records := []domain.ActivityRecord{
		{
			ID: 12, ActorType: domain.ActorUser, ActorID: 7, ActorName: "Ana, a primeira",
			Action: domain.ActionLogin, Details: strPtr("Login realizado com sucesso"), IP: strPtr("10.0.0.1"),
			CreatedAt: time.Date(2024, 5, 1, 2, 15, 0, 0, time.UTC),
		},
		{
			ID: 11, ActorType: domain.ActorAdmin, ActorID: 3, ActorName: "Bea",
			Action:    domain.ActionLogout,
			CreatedAt: time.Date(2024, 4, 30, 23, 0, 9, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	if err := writeActivityCSV(&buf, records, brt); err != nil {
		t.Fatalf("writeActivityCSV: %v", err)
	}

	want := csvBOM + csvHeader + "\n" +
		`12,"30/04/2024, 23:15:00","usuario",7,"Ana, a primeira","LOGIN","Login realizado com sucesso","10.0.0.1"` + "\n" +
		`11,"30/04/2024, 20:00:09","admin",3,"Bea","LOGOUT","",""`
	if got := buf.String(); got != want {
		t.Fatalf("csv mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestWriteActivityCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := writeActivityCSV(&buf, nil, time.UTC); err != nil {
		t.Fatalf("writeActivityCSV: %v", err)
	}
	if got, want := buf.String(), csvBOM+csvHeader+"\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestQuoteCSV(t *testing.T) {
	cases := map[string]string{
		``:          `""`,
		`plain`:     `"plain"`,
		`a "b" c`:   `"a ""b"" c"`,
		"line\nnew": "\"line\nnew\"",
	}
	for in, want := range cases {
		if got := quoteCSV(in); got != want {
			t.Errorf("quoteCSV(%q) = %q, want %q", in, got, want)
		}
	}
}
