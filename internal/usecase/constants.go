package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	DefaultTransactionTimeout = 10 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// ReportCacheTTL is how long completed-session reports are cached.
	// Completed sessions are immutable, so the TTL is generous.
	ReportCacheTTL = 12 * time.Hour
)
