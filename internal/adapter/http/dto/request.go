package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkmindia80/reconcile/internal/statement"
	"github.com/vkmindia80/reconcile/internal/usecase"
)

const statementDateLayout = "2006-01-02"

// UploadStatementRequest represents a statement upload.
type UploadStatementRequest struct {
	AccountID      string          `json:"account_id"`
	StatementDate  string          `json:"statement_date"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	// Format is "csv" or "ofx"; empty means auto-detect.
	Format    string `json:"format,omitempty"`
	Statement string `json:"statement"`
	// AutoMatch defaults to true when omitted.
	AutoMatch  *bool  `json:"auto_match,omitempty"`
	UploadedBy string `json:"uploaded_by"`
}

// ToUseCaseInput converts to use case input.
func (r *UploadStatementRequest) ToUseCaseInput() (usecase.CreateSessionInput, error) {
	var statementDate time.Time
	if r.StatementDate != "" {
		var err error
		statementDate, err = time.ParseInLocation(statementDateLayout, r.StatementDate, time.UTC)
		if err != nil {
			return usecase.CreateSessionInput{}, fmt.Errorf("invalid statement_date %q: %w", r.StatementDate, err)
		}
	}

	autoMatch := true
	if r.AutoMatch != nil {
		autoMatch = *r.AutoMatch
	}

	return usecase.CreateSessionInput{
		AccountID:      r.AccountID,
		StatementDate:  statementDate,
		OpeningBalance: r.OpeningBalance,
		ClosingBalance: r.ClosingBalance,
		File:           []byte(r.Statement),
		Format:         statement.Format(r.Format),
		AutoMatch:      autoMatch,
		UploadedBy:     r.UploadedBy,
	}, nil
}

// MatchRequest represents a manual match of one entry.
type MatchRequest struct {
	LedgerTransactionID string `json:"ledger_transaction_id"`
	MatchedBy           string `json:"matched_by"`
	// ConfidenceScore overrides the scorer when set.
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *MatchRequest) ToUseCaseInput(sessionID, entryID string) usecase.MatchEntryInput {
	return usecase.MatchEntryInput{
		SessionID:           sessionID,
		EntryID:             entryID,
		LedgerTransactionID: r.LedgerTransactionID,
		MatchedBy:           r.MatchedBy,
		ConfidenceScore:     r.ConfidenceScore,
	}
}

// CompleteSessionRequest represents a session completion.
type CompleteSessionRequest struct {
	CompletedBy string  `json:"completed_by"`
	Notes       *string `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CompleteSessionRequest) ToUseCaseInput(sessionID string) usecase.CompleteSessionInput {
	return usecase.CompleteSessionInput{
		SessionID:   sessionID,
		CompletedBy: r.CompletedBy,
		Notes:       r.Notes,
	}
}

// UpdateNotesRequest represents a notes update.
type UpdateNotesRequest struct {
	Notes *string `json:"notes"`
}
