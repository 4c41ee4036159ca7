package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vkmindia80/reconcile/internal/adapter/http/dto"
	"github.com/vkmindia80/reconcile/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"session not found", domain.ErrSessionNotFound, http.StatusNotFound},
		{"entry not found", domain.ErrEntryNotFound, http.StatusNotFound},
		{"transaction not found", domain.ErrTransactionNotFound, http.StatusNotFound},
		{"match not found", domain.ErrMatchNotFound, http.StatusNotFound},
		{"session completed", domain.ErrSessionCompleted, http.StatusConflict},
		{"entry already matched", domain.ErrEntryAlreadyMatched, http.StatusConflict},
		{"entry not matched", domain.ErrEntryNotMatched, http.StatusConflict},
		{"transaction reconciled", domain.ErrTransactionAlreadyReconciled, http.StatusConflict},
		{"account mismatch", domain.ErrAccountMismatch, http.StatusConflict},
		{"unsupported format", domain.ErrUnsupportedFormat, http.StatusUnprocessableEntity},
		{"missing account", domain.ErrMissingAccountID, http.StatusBadRequest},
		{"missing statement date", domain.ErrMissingStatementDate, http.StatusBadRequest},
		{"empty statement", domain.ErrEmptyStatement, http.StatusBadRequest},
		{"missing actor", domain.ErrMissingActor, http.StatusBadRequest},
		{"notes too long", domain.ErrNotesTooLong, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapDomainError(tc.err); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestMapDomainError_Wrapped(t *testing.T) {
	err := errors.Join(errors.New("context"), domain.ErrSessionCompleted)
	if got := mapDomainError(err); got != http.StatusConflict {
		t.Fatalf("expected wrapped error to map to 409, got %d", got)
	}
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusCreated, map[string]string{"id": "sess-1"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %s", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["id"] != "sess-1" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, http.StatusConflict, "failed to match entry", "ledger transaction is already reconciled")

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Error != "failed to match entry" || resp.Message == "" {
		t.Fatalf("unexpected error payload: %+v", resp)
	}
}

func TestParseIntQuery(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  int
	}{
		{"present", "limit=25", 25},
		{"missing", "", 10},
		{"not a number", "limit=abc", 10},
		{"negative", "limit=-3", -3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/reconciliations?"+tc.query, nil)
			if got := parseIntQuery(req, "limit", 10); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
