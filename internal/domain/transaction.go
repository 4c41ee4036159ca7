package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerTransaction is a reference to a transaction owned by the ledger.
// The reconciliation core only ever flips its Reconciled flag; financial
// fields are never mutated here.
type LedgerTransaction struct {
	ID          string
	AccountID   string
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	Reconciled  bool
	CreatedAt   time.Time
}
