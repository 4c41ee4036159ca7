package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vkmindia80/reconcile/internal/adapter/http/dto"
	"github.com/vkmindia80/reconcile/internal/domain"
	"github.com/vkmindia80/reconcile/internal/infrastructure/metrics"
	"github.com/vkmindia80/reconcile/internal/usecase"
)

// reconciliationService is the slice of usecase.ReconciliationUseCase the
// session handler needs.
type reconciliationService interface {
	CreateSession(ctx context.Context, input usecase.CreateSessionInput) (*usecase.CreateSessionOutput, error)
	GetSession(ctx context.Context, id string) (*usecase.SessionDetail, error)
	ListSessions(ctx context.Context, input usecase.ListSessionsInput) ([]*domain.ReconciliationSession, error)
	CompleteSession(ctx context.Context, input usecase.CompleteSessionInput) (*usecase.CompleteSessionOutput, error)
	UpdateNotes(ctx context.Context, sessionID string, notes *string) error
	DeleteSession(ctx context.Context, sessionID string) error
	GetReport(ctx context.Context, sessionID string) (*usecase.Report, error)
}

// SessionHandler handles reconciliation session HTTP requests.
type SessionHandler struct {
	service reconciliationService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(service reconciliationService) *SessionHandler {
	return &SessionHandler{service: service}
}

// Upload creates a session from an uploaded statement.
func (h *SessionHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req dto.UploadStatementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid statement date", err.Error())
		return
	}

	out, err := h.service.CreateSession(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create session", err.Error())

		return
	}

	metrics.SessionsCreated.Inc()
	metrics.EntriesParsed.Add(float64(len(out.Entries)))
	metrics.ParseRowsSkipped.Add(float64(out.Skipped))
	for range out.AutoMatches {
		metrics.MatchesCommitted.WithLabelValues(string(domain.MatchTypeAutomatic)).Inc()
	}

	writeJSON(w, http.StatusCreated, dto.UploadFromOutput(out))
}

// Get retrieves a session with its entries.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing session ID", "")
		return
	}

	detail, err := h.service.GetSession(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get session", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.SessionDetailFromUseCase(detail))
}

// List lists sessions, optionally filtered by account.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.service.ListSessions(r.Context(), usecase.ListSessionsInput{
		AccountID: r.URL.Query().Get("account_id"),
		Limit:     parseIntQuery(r, "limit", 0),
		Offset:    parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list sessions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SessionsFromDomain(sessions))
}

// Complete finalizes a session and returns its report.
func (h *SessionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing session ID", "")
		return
	}

	var req dto.CompleteSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	out, err := h.service.CompleteSession(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to complete session", err.Error())

		return
	}

	metrics.SessionsCompleted.Inc()

	writeJSON(w, http.StatusOK, map[string]any{
		"session": dto.SessionFromDomain(out.Session),
		"report":  out.Report,
	})
}

// UpdateNotes updates a session's notes.
func (h *SessionHandler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing session ID", "")
		return
	}

	var req dto.UpdateNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.service.UpdateNotes(r.Context(), id, req.Notes); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update notes", err.Error())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes an in-progress session.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing session ID", "")
		return
	}

	if err := h.service.DeleteSession(r.Context(), id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete session", err.Error())

		return
	}

	metrics.SessionsDeleted.Inc()

	w.WriteHeader(http.StatusNoContent)
}

// Report returns the reconciliation report for a session.
func (h *SessionHandler) Report(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing session ID", "")
		return
	}

	report, err := h.service.GetReport(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to build report", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, report)
}
