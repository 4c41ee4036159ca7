package usecase

import (
	"context"
	"time"

	"github.com/vkmindia80/reconcile/internal/domain"
)

// SessionRepository defines data access for reconciliation sessions.
type SessionRepository interface {
	Create(ctx context.Context, tx Transaction, session *domain.ReconciliationSession) error
	GetByID(ctx context.Context, id string) (*domain.ReconciliationSession, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.ReconciliationSession, error)
	List(ctx context.Context, accountID string, limit, offset int) ([]*domain.ReconciliationSession, error)
	UpdateCounters(ctx context.Context, tx Transaction, id string, matched, unmatched int) error
	// Complete transitions in_progress -> completed. The update is conditional
	// on the current status so concurrent completions cannot both win; zero
	// affected rows surface as domain.ErrSessionCompleted.
	Complete(ctx context.Context, tx Transaction, id string, completedAt time.Time, completedBy string, notes *string) error
	UpdateNotes(ctx context.Context, id string, notes *string) error
	Delete(ctx context.Context, tx Transaction, id string) error
}

// BankEntryRepository defines data access for parsed bank entries.
type BankEntryRepository interface {
	CreateBatch(ctx context.Context, tx Transaction, entries []*domain.BankEntry) error
	GetByID(ctx context.Context, sessionID, entryID string) (*domain.BankEntry, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, sessionID, entryID string) (*domain.BankEntry, error)
	ListBySession(ctx context.Context, sessionID string) ([]*domain.BankEntry, error)
	ListUnmatched(ctx context.Context, sessionID string) ([]*domain.BankEntry, error)
	SetMatched(ctx context.Context, tx Transaction, entryID string, transactionID string) error
	ClearMatched(ctx context.Context, tx Transaction, entryID string) error
	DeleteBySession(ctx context.Context, tx Transaction, sessionID string) error
}

// MatchRepository defines data access for committed matches.
type MatchRepository interface {
	Create(ctx context.Context, tx Transaction, match *domain.Match) error
	GetByEntry(ctx context.Context, sessionID, entryID string) (*domain.Match, error)
	ListBySession(ctx context.Context, sessionID string) ([]*domain.Match, error)
	Delete(ctx context.Context, tx Transaction, id string) error
	DeleteBySession(ctx context.Context, tx Transaction, sessionID string) error
}

// LedgerTransactionRepository is the capability interface onto the ledger.
// The reconciliation core only reads transactions and flips their reconciled
// flag; financial fields are owned elsewhere.
type LedgerTransactionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.LedgerTransaction, error)
	// LookupCandidates returns unreconciled transactions for the account dated
	// within [from, to], in insertion order.
	LookupCandidates(ctx context.Context, accountID string, from, to time.Time) ([]*domain.LedgerTransaction, error)
	// Claim marks a transaction reconciled. The update is conditional on the
	// transaction being unreconciled so two concurrent claims cannot both
	// succeed; a lost race surfaces as domain.ErrTransactionAlreadyReconciled.
	Claim(ctx context.Context, tx Transaction, id string) error
	// Release clears the reconciled flag set by a previous Claim.
	Release(ctx context.Context, tx Transaction, id string) error
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier retries an operation on transient storage conflicts.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release removes a claimed key so a failed request can be retried.
	Release(ctx context.Context, key string) error
}
