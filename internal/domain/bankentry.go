package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankEntry represents a single line item parsed from an uploaded bank statement.
type BankEntry struct {
	ID                   string
	SessionID            string
	Sequence             int
	Date                 time.Time
	Description          string
	Amount               decimal.Decimal
	Reference            *string
	RunningBalance       *decimal.Decimal
	Matched              bool
	MatchedTransactionID *string
	CreatedAt            time.Time
}
