package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation errors
var (
	ErrMissingAccountID     = errors.New("account ID is required")
	ErrMissingStatementDate = errors.New("statement date is required")
	ErrEmptyStatement       = errors.New("statement contains no parsable entries")
	ErrNotesTooLong         = errors.New("notes exceed maximum length")
	ErrMissingActor         = errors.New("acting user is required")
)

// Validation constants
const (
	MaxNotesLength = 2000
)

// ValidateAccountID validates an account reference.
func ValidateAccountID(accountID string) error {
	if strings.TrimSpace(accountID) == "" {
		return ErrMissingAccountID
	}
	return nil
}

// ValidateStatementDate validates a statement date.
func ValidateStatementDate(date time.Time) error {
	if date.IsZero() {
		return ErrMissingStatementDate
	}
	return nil
}

// ValidateNotes validates optional free-text notes.
func ValidateNotes(notes *string) error {
	if notes == nil {
		return nil
	}

	if len(*notes) > MaxNotesLength {
		return fmt.Errorf("%w: limit is %d characters", ErrNotesTooLong, MaxNotesLength)
	}

	return nil
}

// ValidateActor validates the acting user identifier on mutating operations.
func ValidateActor(actor string) error {
	if strings.TrimSpace(actor) == "" {
		return ErrMissingActor
	}
	return nil
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
