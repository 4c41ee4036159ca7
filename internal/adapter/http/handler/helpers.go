package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vkmindia80/reconcile/internal/adapter/http/dto"
	"github.com/vkmindia80/reconcile/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrEntryNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrMatchNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSessionCompleted),
		errors.Is(err, domain.ErrEntryAlreadyMatched),
		errors.Is(err, domain.ErrEntryNotMatched),
		errors.Is(err, domain.ErrTransactionAlreadyReconciled),
		errors.Is(err, domain.ErrAccountMismatch):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrMissingAccountID),
		errors.Is(err, domain.ErrMissingStatementDate),
		errors.Is(err, domain.ErrEmptyStatement),
		errors.Is(err, domain.ErrMissingActor),
		errors.Is(err, domain.ErrNotesTooLong):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
