package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkmindia80/reconcile/internal/domain"
	"github.com/vkmindia80/reconcile/internal/matching"
	"github.com/vkmindia80/reconcile/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SessionResponse represents a reconciliation session in API responses.
type SessionResponse struct {
	ID               string          `json:"id"`
	AccountID        string          `json:"account_id"`
	StatementDate    time.Time       `json:"statement_date"`
	OpeningBalance   decimal.Decimal `json:"opening_balance"`
	ClosingBalance   decimal.Decimal `json:"closing_balance"`
	Status           string          `json:"status"`
	TotalBankEntries int             `json:"total_bank_entries"`
	MatchedCount     int             `json:"matched_count"`
	UnmatchedCount   int             `json:"unmatched_count"`
	MatchRate        float64         `json:"match_rate"`
	Notes            *string         `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	CompletedAt      *time.Time      `json:"completed_at,omitempty"`
	CompletedBy      *string         `json:"completed_by,omitempty"`
}

// SessionFromDomain converts a domain session to a response.
func SessionFromDomain(s *domain.ReconciliationSession) *SessionResponse {
	return &SessionResponse{
		ID:               s.ID,
		AccountID:        s.AccountID,
		StatementDate:    s.StatementDate,
		OpeningBalance:   s.OpeningBalance,
		ClosingBalance:   s.ClosingBalance,
		Status:           string(s.Status),
		TotalBankEntries: s.TotalBankEntries,
		MatchedCount:     s.MatchedCount,
		UnmatchedCount:   s.UnmatchedCount,
		MatchRate:        s.MatchRate(),
		Notes:            s.Notes,
		CreatedAt:        s.CreatedAt,
		CompletedAt:      s.CompletedAt,
		CompletedBy:      s.CompletedBy,
	}
}

// SessionsFromDomain converts domain sessions to responses.
func SessionsFromDomain(sessions []*domain.ReconciliationSession) []*SessionResponse {
	result := make([]*SessionResponse, len(sessions))
	for i, s := range sessions {
		result[i] = SessionFromDomain(s)
	}
	return result
}

// EntryResponse represents a bank statement entry in API responses.
type EntryResponse struct {
	ID                   string           `json:"id"`
	Sequence             int              `json:"sequence"`
	Date                 time.Time        `json:"date"`
	Description          string           `json:"description"`
	Amount               decimal.Decimal  `json:"amount"`
	Reference            *string          `json:"reference,omitempty"`
	RunningBalance       *decimal.Decimal `json:"running_balance,omitempty"`
	Matched              bool             `json:"matched"`
	MatchedTransactionID *string          `json:"matched_transaction_id,omitempty"`
}

// EntryFromDomain converts a domain bank entry to a response.
func EntryFromDomain(e *domain.BankEntry) *EntryResponse {
	return &EntryResponse{
		ID:                   e.ID,
		Sequence:             e.Sequence,
		Date:                 e.Date,
		Description:          e.Description,
		Amount:               e.Amount,
		Reference:            e.Reference,
		RunningBalance:       e.RunningBalance,
		Matched:              e.Matched,
		MatchedTransactionID: e.MatchedTransactionID,
	}
}

// EntriesFromDomain converts domain bank entries to responses.
func EntriesFromDomain(entries []*domain.BankEntry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// MatchResponse represents a committed match in API responses.
type MatchResponse struct {
	ID                  string    `json:"id"`
	BankEntryID         string    `json:"bank_entry_id"`
	LedgerTransactionID string    `json:"ledger_transaction_id"`
	ConfidenceScore     float64   `json:"confidence_score"`
	MatchType           string    `json:"match_type"`
	MatchedAt           time.Time `json:"matched_at"`
	MatchedBy           string    `json:"matched_by"`
}

// MatchFromDomain converts a domain match to a response.
func MatchFromDomain(m *domain.Match) *MatchResponse {
	return &MatchResponse{
		ID:                  m.ID,
		BankEntryID:         m.BankEntryID,
		LedgerTransactionID: m.LedgerTransactionID,
		ConfidenceScore:     m.ConfidenceScore,
		MatchType:           string(m.Type),
		MatchedAt:           m.MatchedAt,
		MatchedBy:           m.MatchedBy,
	}
}

// MatchesFromDomain converts domain matches to responses.
func MatchesFromDomain(matches []*domain.Match) []*MatchResponse {
	result := make([]*MatchResponse, len(matches))
	for i, m := range matches {
		result[i] = MatchFromDomain(m)
	}
	return result
}

// UploadResponse represents the outcome of a statement upload.
type UploadResponse struct {
	Session     *SessionResponse `json:"session"`
	Entries     []*EntryResponse `json:"entries"`
	AutoMatches []*MatchResponse `json:"auto_matches"`
	SkippedRows int              `json:"skipped_rows"`
}

// UploadFromOutput converts a create-session output to a response.
func UploadFromOutput(out *usecase.CreateSessionOutput) *UploadResponse {
	return &UploadResponse{
		Session:     SessionFromDomain(out.Session),
		Entries:     EntriesFromDomain(out.Entries),
		AutoMatches: MatchesFromDomain(out.AutoMatches),
		SkippedRows: out.Skipped,
	}
}

// SessionDetailResponse represents a session with its entries.
type SessionDetailResponse struct {
	Session *SessionResponse `json:"session"`
	Entries []*EntryResponse `json:"entries"`
}

// SessionDetailFromUseCase converts a session detail to a response.
func SessionDetailFromUseCase(detail *usecase.SessionDetail) *SessionDetailResponse {
	return &SessionDetailResponse{
		Session: SessionFromDomain(detail.Session),
		Entries: EntriesFromDomain(detail.Entries),
	}
}

// SuggestionResponse represents one match candidate for a bank entry.
type SuggestionResponse struct {
	Transaction *LedgerTransactionResponse `json:"transaction"`
	Confidence  float64                    `json:"confidence"`
	DaysApart   int                        `json:"days_apart"`
}

// LedgerTransactionResponse represents a ledger transaction in API responses.
type LedgerTransactionResponse struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// SuggestionsFromEngine converts engine suggestions to responses.
func SuggestionsFromEngine(suggestions []matching.Suggestion) []*SuggestionResponse {
	result := make([]*SuggestionResponse, len(suggestions))
	for i, s := range suggestions {
		result[i] = &SuggestionResponse{
			Transaction: &LedgerTransactionResponse{
				ID:          s.Transaction.ID,
				AccountID:   s.Transaction.AccountID,
				Date:        s.Transaction.Date,
				Amount:      s.Transaction.Amount,
				Description: s.Transaction.Description,
			},
			Confidence: s.Score,
			DaysApart:  s.DaysApart,
		}
	}
	return result
}

// MatchResultResponse represents a committed manual match with the session's
// updated counters.
type MatchResultResponse struct {
	Match   *MatchResponse   `json:"match"`
	Session *SessionResponse `json:"session"`
}

// MatchResultFromUseCase converts a match result to a response.
func MatchResultFromUseCase(result *usecase.MatchResult) *MatchResultResponse {
	return &MatchResultResponse{
		Match:   MatchFromDomain(result.Match),
		Session: SessionFromDomain(result.Session),
	}
}
