package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SessionStatus string

const (
	SessionStatusInProgress SessionStatus = "in_progress"
	SessionStatusCompleted  SessionStatus = "completed"
)

// ReconciliationSession is the aggregate root for one statement-upload-to-completion
// reconciliation run against a single account.
type ReconciliationSession struct {
	ID               string
	AccountID        string
	StatementDate    time.Time
	OpeningBalance   decimal.Decimal
	ClosingBalance   decimal.Decimal
	Status           SessionStatus
	TotalBankEntries int
	MatchedCount     int
	UnmatchedCount   int
	Notes            *string
	CreatedAt        time.Time
	CompletedAt      *time.Time
	CompletedBy      *string
}

// CanModify reports whether matching operations are still permitted.
// A completed session is immutable except for its notes.
func (s *ReconciliationSession) CanModify() error {
	if s.Status == SessionStatusCompleted {
		return ErrSessionCompleted
	}
	return nil
}

// RecordMatch moves one entry from the unmatched to the matched count.
func (s *ReconciliationSession) RecordMatch() {
	s.MatchedCount++
	s.UnmatchedCount--
}

// RecordUnmatch moves one entry from the matched to the unmatched count.
func (s *ReconciliationSession) RecordUnmatch() {
	s.MatchedCount--
	s.UnmatchedCount++
}

// Complete transitions the session to its terminal state. There is no reopening.
func (s *ReconciliationSession) Complete(completedBy string, notes *string, now time.Time) error {
	if s.Status == SessionStatusCompleted {
		return ErrSessionCompleted
	}

	s.Status = SessionStatusCompleted
	s.CompletedAt = &now
	s.CompletedBy = &completedBy
	if notes != nil {
		s.Notes = notes
	}

	return nil
}

// MatchRate returns matched/total, or 0 for an empty statement.
func (s *ReconciliationSession) MatchRate() float64 {
	if s.TotalBankEntries == 0 {
		return 0
	}
	return float64(s.MatchedCount) / float64(s.TotalBankEntries)
}

// NetChange returns the declared balance movement over the statement period.
func (s *ReconciliationSession) NetChange() decimal.Decimal {
	return s.ClosingBalance.Sub(s.OpeningBalance)
}

// CountersConsistent verifies matched + unmatched == total.
func (s *ReconciliationSession) CountersConsistent() bool {
	return s.MatchedCount+s.UnmatchedCount == s.TotalBankEntries
}
