package domain

import "time"

// Event types
const (
	EventTypeSessionCreated   = "reconciliation.session.created"
	EventTypeSessionCompleted = "reconciliation.session.completed"
	EventTypeMatchCommitted   = "reconciliation.match.committed"
	EventTypeMatchReverted    = "reconciliation.match.reverted"
)

// Aggregate types
const (
	AggregateTypeSession = "reconciliation_session"
	AggregateTypeMatch   = "match"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// SessionCreatedEvent payload
type SessionCreatedEvent struct {
	SessionID    string `json:"session_id"`
	AccountID    string `json:"account_id"`
	TotalEntries int    `json:"total_entries"`
	AutoMatched  int    `json:"auto_matched"`
}

// SessionCompletedEvent payload
type SessionCompletedEvent struct {
	SessionID      string  `json:"session_id"`
	AccountID      string  `json:"account_id"`
	MatchedCount   int     `json:"matched_count"`
	UnmatchedCount int     `json:"unmatched_count"`
	MatchRate      float64 `json:"match_rate"`
	CompletedBy    string  `json:"completed_by"`
}

// MatchCommittedEvent payload
type MatchCommittedEvent struct {
	MatchID             string  `json:"match_id"`
	SessionID           string  `json:"session_id"`
	BankEntryID         string  `json:"bank_entry_id"`
	LedgerTransactionID string  `json:"ledger_transaction_id"`
	ConfidenceScore     float64 `json:"confidence_score"`
	MatchType           string  `json:"match_type"`
}

// MatchRevertedEvent payload
type MatchRevertedEvent struct {
	MatchID             string `json:"match_id"`
	SessionID           string `json:"session_id"`
	BankEntryID         string `json:"bank_entry_id"`
	LedgerTransactionID string `json:"ledger_transaction_id"`
}
