package domain

import "time"

type MatchType string

const (
	MatchTypeAutomatic MatchType = "automatic"
	MatchTypeManual    MatchType = "manual"
)

// Match records a realized association between one bank entry and one ledger
// transaction. Kept independently of the entry's matched flag for audit history.
type Match struct {
	ID                  string
	SessionID           string
	BankEntryID         string
	LedgerTransactionID string
	ConfidenceScore     float64
	Type                MatchType
	MatchedAt           time.Time
	MatchedBy           string
}
