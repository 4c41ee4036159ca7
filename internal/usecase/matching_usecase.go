package usecase

import (
	"context"
	"time"

	"github.com/vkmindia80/reconcile/internal/domain"
	"github.com/vkmindia80/reconcile/internal/matching"
)

// MatchingUseCase handles manual match, unmatch and suggestion operations on
// an in-progress session.
type MatchingUseCase struct {
	txManager   TransactionManager
	sessionRepo SessionRepository
	entryRepo   BankEntryRepository
	matchRepo   MatchRepository
	ledgerRepo  LedgerTransactionRepository
	outboxRepo  OutboxRepository
	idGen       IDGenerator
	retrier     Retrier
}

// NewMatchingUseCase creates a new MatchingUseCase. The retrier is optional;
// when set, commits retry on transient storage conflicts.
func NewMatchingUseCase(
	txManager TransactionManager,
	sessionRepo SessionRepository,
	entryRepo BankEntryRepository,
	matchRepo MatchRepository,
	ledgerRepo LedgerTransactionRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	retrier Retrier,
) *MatchingUseCase {
	return &MatchingUseCase{
		txManager:   txManager,
		sessionRepo: sessionRepo,
		entryRepo:   entryRepo,
		matchRepo:   matchRepo,
		ledgerRepo:  ledgerRepo,
		outboxRepo:  outboxRepo,
		idGen:       idGen,
		retrier:     retrier,
	}
}

// Suggestions returns the ranked candidate list for one bank entry. Read-only.
func (uc *MatchingUseCase) Suggestions(ctx context.Context, sessionID, entryID string) ([]matching.Suggestion, error) {
	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	entry, err := uc.entryRepo.GetByID(ctx, sessionID, entryID)
	if err != nil {
		return nil, err
	}

	from, to := matching.CandidateWindow(entry.Date)
	candidates, err := uc.ledgerRepo.LookupCandidates(ctx, session.AccountID, from, to)
	if err != nil {
		return nil, err
	}

	return matching.Suggest(entry, candidates), nil
}

// MatchEntryInput represents a manual match request.
type MatchEntryInput struct {
	SessionID           string
	EntryID             string
	LedgerTransactionID string
	MatchedBy           string
	// ConfidenceScore, when nil, is recomputed by the scorer.
	ConfidenceScore *float64
}

// MatchResult holds the committed match and the session's updated counters.
type MatchResult struct {
	Match   *domain.Match
	Session *domain.ReconciliationSession
}

// MatchEntry commits a manual match. The ledger-transaction claim and the
// match insert happen in one database transaction, so two concurrent matches
// against the same ledger transaction cannot both succeed.
func (uc *MatchingUseCase) MatchEntry(ctx context.Context, input MatchEntryInput) (*MatchResult, error) {
	if err := domain.ValidateActor(input.MatchedBy); err != nil {
		return nil, err
	}

	var result *MatchResult
	err := uc.withRetry(ctx, func() error {
		var err error
		result, err = uc.commitMatch(ctx, input)
		return err
	})

	return result, err
}

func (uc *MatchingUseCase) commitMatch(ctx context.Context, input MatchEntryInput) (*MatchResult, error) {
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

	if err := session.CanModify(); err != nil {
		return nil, err
	}

	entry, err := uc.entryRepo.GetByIDForUpdate(ctx, tx, input.SessionID, input.EntryID)
	if err != nil {
		return nil, err
	}

	if entry.Matched {
		return nil, domain.ErrEntryAlreadyMatched
	}

	ledgerTx, err := uc.ledgerRepo.GetByID(ctx, input.LedgerTransactionID)
	if err != nil {
		return nil, err
	}

	if ledgerTx.AccountID != session.AccountID {
		return nil, domain.ErrAccountMismatch
	}

	confidence := matching.Score(entry, ledgerTx)
	if input.ConfidenceScore != nil {
		confidence = *input.ConfidenceScore
	}

	if err := uc.ledgerRepo.Claim(ctx, tx, ledgerTx.ID); err != nil {
		return nil, err
	}

	if err := uc.entryRepo.SetMatched(ctx, tx, entry.ID, ledgerTx.ID); err != nil {
		return nil, err
	}

	match := &domain.Match{
		ID:                  uc.idGen.Generate(),
		SessionID:           session.ID,
		BankEntryID:         entry.ID,
		LedgerTransactionID: ledgerTx.ID,
		ConfidenceScore:     confidence,
		Type:                domain.MatchTypeManual,
		MatchedAt:           now,
		MatchedBy:           input.MatchedBy,
	}
	if err := uc.matchRepo.Create(ctx, tx, match); err != nil {
		return nil, err
	}

	session.RecordMatch()
	if err := uc.sessionRepo.UpdateCounters(ctx, tx, session.ID, session.MatchedCount, session.UnmatchedCount); err != nil {
		return nil, err
	}

	if err := uc.emitMatchEvent(ctx, tx, domain.EventTypeMatchCommitted, match, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	entry.Matched = true
	entry.MatchedTransactionID = &ledgerTx.ID

	return &MatchResult{Match: match, Session: session}, nil
}

// UnmatchEntryInput represents an unmatch request.
type UnmatchEntryInput struct {
	SessionID string
	EntryID   string
}

// UnmatchEntry reverts a committed match: the entry goes back to unmatched,
// the ledger transaction's reconciled flag is cleared and the match record is
// deleted. Rejected once the session is completed.
func (uc *MatchingUseCase) UnmatchEntry(ctx context.Context, input UnmatchEntryInput) (*domain.ReconciliationSession, error) {
	var session *domain.ReconciliationSession
	err := uc.withRetry(ctx, func() error {
		var err error
		session, err = uc.commitUnmatch(ctx, input)
		return err
	})

	return session, err
}

func (uc *MatchingUseCase) commitUnmatch(ctx context.Context, input UnmatchEntryInput) (*domain.ReconciliationSession, error) {
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

	if err := session.CanModify(); err != nil {
		return nil, err
	}

	entry, err := uc.entryRepo.GetByIDForUpdate(ctx, tx, input.SessionID, input.EntryID)
	if err != nil {
		return nil, err
	}

	if !entry.Matched {
		return nil, domain.ErrEntryNotMatched
	}

	match, err := uc.matchRepo.GetByEntry(ctx, input.SessionID, input.EntryID)
	if err != nil {
		return nil, err
	}

	if err := uc.ledgerRepo.Release(ctx, tx, match.LedgerTransactionID); err != nil {
		return nil, err
	}

	if err := uc.entryRepo.ClearMatched(ctx, tx, entry.ID); err != nil {
		return nil, err
	}

	if err := uc.matchRepo.Delete(ctx, tx, match.ID); err != nil {
		return nil, err
	}

	session.RecordUnmatch()
	if err := uc.sessionRepo.UpdateCounters(ctx, tx, session.ID, session.MatchedCount, session.UnmatchedCount); err != nil {
		return nil, err
	}

	if err := uc.emitMatchEvent(ctx, tx, domain.EventTypeMatchReverted, match, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	entry.Matched = false
	entry.MatchedTransactionID = nil

	return session, nil
}

func (uc *MatchingUseCase) withRetry(ctx context.Context, operation func() error) error {
	if uc.retrier == nil {
		return operation()
	}
	return uc.retrier.Retry(ctx, operation)
}

func (uc *MatchingUseCase) emitMatchEvent(ctx context.Context, tx Transaction, eventType string, match *domain.Match, now time.Time) error {
	payload := map[string]any{
		"match_id":              match.ID,
		"session_id":            match.SessionID,
		"bank_entry_id":         match.BankEntryID,
		"ledger_transaction_id": match.LedgerTransactionID,
	}
	if eventType == domain.EventTypeMatchCommitted {
		payload["confidence_score"] = match.ConfidenceScore
		payload["match_type"] = string(match.Type)
	}

	return uc.outboxRepo.Create(ctx, tx, &domain.OutboxEvent{
		AggregateID:   match.ID,
		AggregateType: domain.AggregateTypeMatch,
		EventType:     eventType,
		Payload:       payload,
		CreatedAt:     now,
	})
}
