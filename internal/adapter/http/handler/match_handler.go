package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vkmindia80/reconcile/internal/adapter/http/dto"
	"github.com/vkmindia80/reconcile/internal/domain"
	"github.com/vkmindia80/reconcile/internal/infrastructure/metrics"
	"github.com/vkmindia80/reconcile/internal/matching"
	"github.com/vkmindia80/reconcile/internal/usecase"
)

// matchingService is the slice of usecase.MatchingUseCase the match handler
// needs.
type matchingService interface {
	Suggestions(ctx context.Context, sessionID, entryID string) ([]matching.Suggestion, error)
	MatchEntry(ctx context.Context, input usecase.MatchEntryInput) (*usecase.MatchResult, error)
	UnmatchEntry(ctx context.Context, input usecase.UnmatchEntryInput) (*domain.ReconciliationSession, error)
}

// MatchHandler handles match, unmatch and suggestion HTTP requests.
type MatchHandler struct {
	service matchingService
}

// NewMatchHandler creates a new MatchHandler.
func NewMatchHandler(service matchingService) *MatchHandler {
	return &MatchHandler{service: service}
}

// Suggestions returns ranked candidates for one bank entry.
func (h *MatchHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	entryID := chi.URLParam(r, "entryID")
	if sessionID == "" || entryID == "" {
		writeError(w, http.StatusBadRequest, "missing session or entry ID", "")
		return
	}

	suggestions, err := h.service.Suggestions(r.Context(), sessionID, entryID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to build suggestions", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.SuggestionsFromEngine(suggestions))
}

// Match commits a manual match for one bank entry.
func (h *MatchHandler) Match(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	entryID := chi.URLParam(r, "entryID")
	if sessionID == "" || entryID == "" {
		writeError(w, http.StatusBadRequest, "missing session or entry ID", "")
		return
	}

	var req dto.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.service.MatchEntry(r.Context(), req.ToUseCaseInput(sessionID, entryID))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to match entry", err.Error())

		return
	}

	metrics.MatchesCommitted.WithLabelValues(string(result.Match.Type)).Inc()

	writeJSON(w, http.StatusCreated, dto.MatchResultFromUseCase(result))
}

// Unmatch reverts the match of one bank entry.
func (h *MatchHandler) Unmatch(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	entryID := chi.URLParam(r, "entryID")
	if sessionID == "" || entryID == "" {
		writeError(w, http.StatusBadRequest, "missing session or entry ID", "")
		return
	}

	session, err := h.service.UnmatchEntry(r.Context(), usecase.UnmatchEntryInput{
		SessionID: sessionID,
		EntryID:   entryID,
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to unmatch entry", err.Error())

		return
	}

	metrics.MatchesReverted.Inc()

	writeJSON(w, http.StatusOK, dto.SessionFromDomain(session))
}
