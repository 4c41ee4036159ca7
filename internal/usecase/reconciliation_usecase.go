package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkmindia80/reconcile/internal/domain"
	"github.com/vkmindia80/reconcile/internal/matching"
	"github.com/vkmindia80/reconcile/internal/statement"
)

// ReconciliationUseCase handles the reconciliation session lifecycle: upload,
// read, completion and deletion.
type ReconciliationUseCase struct {
	txManager   TransactionManager
	sessionRepo SessionRepository
	entryRepo   BankEntryRepository
	matchRepo   MatchRepository
	ledgerRepo  LedgerTransactionRepository
	outboxRepo  OutboxRepository
	idGen       IDGenerator
	cache       Cache
}

// NewReconciliationUseCase creates a new ReconciliationUseCase. The cache is
// optional and only used for completed-session reports.
func NewReconciliationUseCase(
	txManager TransactionManager,
	sessionRepo SessionRepository,
	entryRepo BankEntryRepository,
	matchRepo MatchRepository,
	ledgerRepo LedgerTransactionRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	cache Cache,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		txManager:   txManager,
		sessionRepo: sessionRepo,
		entryRepo:   entryRepo,
		matchRepo:   matchRepo,
		ledgerRepo:  ledgerRepo,
		outboxRepo:  outboxRepo,
		idGen:       idGen,
		cache:       cache,
	}
}

// CreateSessionInput represents a statement upload.
type CreateSessionInput struct {
	AccountID      string
	StatementDate  time.Time
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	File           []byte
	Format         statement.Format
	AutoMatch      bool
	UploadedBy     string
}

// CreateSessionOutput summarizes the created session, including any
// auto-matches made and the soft parse-skip count.
type CreateSessionOutput struct {
	Session     *domain.ReconciliationSession
	Entries     []*domain.BankEntry
	AutoMatches []*domain.Match
	Skipped     int
}

// CreateSession parses the uploaded statement, creates the session with all
// entries, and optionally runs the auto-matcher. Everything commits in one
// database transaction; a failure anywhere leaves no partial state.
func (uc *ReconciliationUseCase) CreateSession(ctx context.Context, input CreateSessionInput) (*CreateSessionOutput, error) {
	if err := domain.ValidateAccountID(input.AccountID); err != nil {
		return nil, err
	}
	if err := domain.ValidateStatementDate(input.StatementDate); err != nil {
		return nil, err
	}
	if err := domain.ValidateActor(input.UploadedBy); err != nil {
		return nil, err
	}

	parsed, err := statement.Parse(input.File, input.Format)
	if err != nil {
		return nil, err
	}
	if len(parsed.Entries) == 0 {
		return nil, domain.ErrEmptyStatement
	}

	now := time.Now().UTC()

	session := &domain.ReconciliationSession{
		ID:               uc.idGen.Generate(),
		AccountID:        input.AccountID,
		StatementDate:    input.StatementDate,
		OpeningBalance:   input.OpeningBalance,
		ClosingBalance:   input.ClosingBalance,
		Status:           domain.SessionStatusInProgress,
		TotalBankEntries: len(parsed.Entries),
		MatchedCount:     0,
		UnmatchedCount:   len(parsed.Entries),
		CreatedAt:        now,
	}

	entries := make([]*domain.BankEntry, len(parsed.Entries))
	for i, pe := range parsed.Entries {
		entries[i] = &domain.BankEntry{
			ID:             uc.idGen.Generate(),
			SessionID:      session.ID,
			Sequence:       pe.Sequence,
			Date:           pe.Date,
			Description:    pe.Description,
			Amount:         pe.Amount,
			Reference:      pe.Reference,
			RunningBalance: pe.RunningBalance,
			CreatedAt:      now,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var planned []matching.PlannedMatch
	if input.AutoMatch {
		planned, err = uc.planAutoMatches(ctx, session.AccountID, entries)
		if err != nil {
			return nil, err
		}
	}

	matches := make([]*domain.Match, 0, len(planned))
	for _, plan := range planned {
		txID := plan.Transaction.ID
		plan.Entry.Matched = true
		plan.Entry.MatchedTransactionID = &txID
		session.RecordMatch()

		matches = append(matches, &domain.Match{
			ID:                  uc.idGen.Generate(),
			SessionID:           session.ID,
			BankEntryID:         plan.Entry.ID,
			LedgerTransactionID: txID,
			ConfidenceScore:     plan.Score,
			Type:                domain.MatchTypeAutomatic,
			MatchedAt:           now,
			MatchedBy:           input.UploadedBy,
		})
	}

	if err := uc.sessionRepo.Create(ctx, tx, session); err != nil {
		return nil, err
	}

	if err := uc.entryRepo.CreateBatch(ctx, tx, entries); err != nil {
		return nil, err
	}

	for i, plan := range planned {
		if err := uc.ledgerRepo.Claim(ctx, tx, plan.Transaction.ID); err != nil {
			return nil, err
		}

		match := matches[i]
		if err := uc.matchRepo.Create(ctx, tx, match); err != nil {
			return nil, err
		}

		if err := uc.emitMatchCommitted(ctx, tx, match, now); err != nil {
			return nil, err
		}
	}

	event := &domain.OutboxEvent{
		AggregateID:   session.ID,
		AggregateType: domain.AggregateTypeSession,
		EventType:     domain.EventTypeSessionCreated,
		Payload: map[string]any{
			"session_id":    session.ID,
			"account_id":    session.AccountID,
			"total_entries": session.TotalBankEntries,
			"auto_matched":  len(matches),
		},
		CreatedAt: now,
	}
	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &CreateSessionOutput{
		Session:     session,
		Entries:     entries,
		AutoMatches: matches,
		Skipped:     parsed.Skipped,
	}, nil
}

// planAutoMatches fetches one candidate set spanning all entry dates and runs
// the engine over it. Read-only; commits happen in the caller's transaction.
func (uc *ReconciliationUseCase) planAutoMatches(ctx context.Context, accountID string, entries []*domain.BankEntry) ([]matching.PlannedMatch, error) {
	minDate, maxDate := entries[0].Date, entries[0].Date
	for _, e := range entries[1:] {
		if e.Date.Before(minDate) {
			minDate = e.Date
		}
		if e.Date.After(maxDate) {
			maxDate = e.Date
		}
	}

	from, _ := matching.CandidateWindow(minDate)
	_, to := matching.CandidateWindow(maxDate)

	candidates, err := uc.ledgerRepo.LookupCandidates(ctx, accountID, from, to)
	if err != nil {
		return nil, err
	}

	return matching.PlanAutoMatches(entries, candidates), nil
}

// SessionDetail is a read-only projection of a session with its entries.
type SessionDetail struct {
	Session *domain.ReconciliationSession
	Entries []*domain.BankEntry
}

// GetSession retrieves a session and its bank entries.
func (uc *ReconciliationUseCase) GetSession(ctx context.Context, id string) (*SessionDetail, error) {
	session, err := uc.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entries, err := uc.entryRepo.ListBySession(ctx, id)
	if err != nil {
		return nil, err
	}

	return &SessionDetail{Session: session, Entries: entries}, nil
}

// ListSessionsInput represents input for listing sessions.
type ListSessionsInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// ListSessions lists sessions, optionally filtered to one account.
func (uc *ReconciliationUseCase) ListSessions(ctx context.Context, input ListSessionsInput) ([]*domain.ReconciliationSession, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.sessionRepo.List(ctx, input.AccountID, limit, offset)
}

// CompleteSessionInput represents input for completing a session.
type CompleteSessionInput struct {
	SessionID   string
	CompletedBy string
	Notes       *string
}

// CompleteSessionOutput holds the finalized session and its report.
type CompleteSessionOutput struct {
	Session *domain.ReconciliationSession
	Report  *Report
}

// CompleteSession transitions the session to its terminal completed state.
// Completing with unmatched entries remaining is allowed; the report carries
// a warning for them.
func (uc *ReconciliationUseCase) CompleteSession(ctx context.Context, input CompleteSessionInput) (*CompleteSessionOutput, error) {
	if err := domain.ValidateActor(input.CompletedBy); err != nil {
		return nil, err
	}
	if err := domain.ValidateNotes(input.Notes); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	session, err := uc.sessionRepo.GetByIDForUpdate(ctx, tx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if err := session.Complete(input.CompletedBy, input.Notes, now); err != nil {
		return nil, err
	}

	// Conditional on in_progress: of two racing completions exactly one wins.
	if err := uc.sessionRepo.Complete(ctx, tx, session.ID, now, input.CompletedBy, input.Notes); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		AggregateID:   session.ID,
		AggregateType: domain.AggregateTypeSession,
		EventType:     domain.EventTypeSessionCompleted,
		Payload: map[string]any{
			"session_id":      session.ID,
			"account_id":      session.AccountID,
			"matched_count":   session.MatchedCount,
			"unmatched_count": session.UnmatchedCount,
			"match_rate":      session.MatchRate(),
			"completed_by":    input.CompletedBy,
		},
		CreatedAt: now,
	}
	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	report, err := uc.buildReport(ctx, session)
	if err != nil {
		return nil, err
	}

	return &CompleteSessionOutput{Session: session, Report: report}, nil
}

// UpdateNotes changes the session notes. Notes are the one field that stays
// mutable after completion.
func (uc *ReconciliationUseCase) UpdateNotes(ctx context.Context, sessionID string, notes *string) error {
	if err := domain.ValidateNotes(notes); err != nil {
		return err
	}

	if _, err := uc.sessionRepo.GetByID(ctx, sessionID); err != nil {
		return err
	}

	return uc.sessionRepo.UpdateNotes(ctx, sessionID, notes)
}

// DeleteSession removes an in-progress session together with its entries and
// matches, releasing every ledger-transaction claim the session had made.
// Completed sessions are audit history and cannot be deleted.
func (uc *ReconciliationUseCase) DeleteSession(ctx context.Context, sessionID string) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	session, err := uc.sessionRepo.GetByIDForUpdate(ctx, tx, sessionID)
	if err != nil {
		return err
	}

	if err := session.CanModify(); err != nil {
		return err
	}

	matches, err := uc.matchRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return err
	}

	for _, match := range matches {
		if err := uc.ledgerRepo.Release(ctx, tx, match.LedgerTransactionID); err != nil {
			return err
		}
	}

	if err := uc.matchRepo.DeleteBySession(ctx, tx, sessionID); err != nil {
		return err
	}

	if err := uc.entryRepo.DeleteBySession(ctx, tx, sessionID); err != nil {
		return err
	}

	if err := uc.sessionRepo.Delete(ctx, tx, sessionID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Report is a read-only projection of a session's reconciliation outcome.
type Report struct {
	SessionID        string                   `json:"session_id"`
	AccountID        string                   `json:"account_id"`
	StatementDate    time.Time                `json:"statement_date"`
	Status           domain.SessionStatus     `json:"status"`
	OpeningBalance   decimal.Decimal          `json:"opening_balance"`
	ClosingBalance   decimal.Decimal          `json:"closing_balance"`
	NetChange        decimal.Decimal          `json:"net_change"`
	TotalBankEntries int                      `json:"total_bank_entries"`
	MatchedCount     int                      `json:"matched_count"`
	UnmatchedCount   int                      `json:"unmatched_count"`
	MatchRate        float64                  `json:"match_rate"`
	UnmatchedEntries []*domain.BankEntry      `json:"unmatched_entries"`
	Warnings         []string                 `json:"warnings,omitempty"`
	GeneratedAt      time.Time                `json:"generated_at"`
}

// GetReport builds the reconciliation report for a session. Completed-session
// reports are immutable and served from cache when one is configured.
func (uc *ReconciliationUseCase) GetReport(ctx context.Context, sessionID string) (*Report, error) {
	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, reportCacheKey(sessionID)); err == nil && data != nil {
			var report Report
			if err := json.Unmarshal(data, &report); err == nil {
				return &report, nil
			}
		}
	}

	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return uc.buildReport(ctx, session)
}

func (uc *ReconciliationUseCase) buildReport(ctx context.Context, session *domain.ReconciliationSession) (*Report, error) {
	unmatched, err := uc.entryRepo.ListUnmatched(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	report := &Report{
		SessionID:        session.ID,
		AccountID:        session.AccountID,
		StatementDate:    session.StatementDate,
		Status:           session.Status,
		OpeningBalance:   session.OpeningBalance,
		ClosingBalance:   session.ClosingBalance,
		NetChange:        session.NetChange(),
		TotalBankEntries: session.TotalBankEntries,
		MatchedCount:     session.MatchedCount,
		UnmatchedCount:   session.UnmatchedCount,
		MatchRate:        session.MatchRate(),
		UnmatchedEntries: unmatched,
		GeneratedAt:      time.Now().UTC(),
	}

	if len(unmatched) > 0 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%d bank entries remain unmatched", len(unmatched)))
	}

	if session.Status == domain.SessionStatusCompleted && uc.cache != nil {
		if data, err := json.Marshal(report); err == nil {
			_ = uc.cache.Set(ctx, reportCacheKey(session.ID), data, ReportCacheTTL)
		}
	}

	return report, nil
}

func (uc *ReconciliationUseCase) emitMatchCommitted(ctx context.Context, tx Transaction, match *domain.Match, now time.Time) error {
	return uc.outboxRepo.Create(ctx, tx, &domain.OutboxEvent{
		AggregateID:   match.ID,
		AggregateType: domain.AggregateTypeMatch,
		EventType:     domain.EventTypeMatchCommitted,
		Payload: map[string]any{
			"match_id":              match.ID,
			"session_id":            match.SessionID,
			"bank_entry_id":         match.BankEntryID,
			"ledger_transaction_id": match.LedgerTransactionID,
			"confidence_score":      match.ConfidenceScore,
			"match_type":            string(match.Type),
		},
		CreatedAt: now,
	})
}

func reportCacheKey(sessionID string) string {
	return "report:" + sessionID
}
