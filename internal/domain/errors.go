package domain

import "errors"

var (
	// Session errors
	ErrSessionNotFound  = errors.New("reconciliation session not found")
	ErrSessionCompleted = errors.New("reconciliation session is completed")

	// Bank entry errors
	ErrEntryNotFound       = errors.New("bank entry not found")
	ErrEntryAlreadyMatched = errors.New("bank entry is already matched")
	ErrEntryNotMatched     = errors.New("bank entry is not matched")

	// Ledger transaction errors
	ErrTransactionNotFound          = errors.New("ledger transaction not found")
	ErrTransactionAlreadyReconciled = errors.New("ledger transaction is already reconciled")
	ErrAccountMismatch              = errors.New("ledger transaction belongs to a different account")

	// Match errors
	ErrMatchNotFound = errors.New("match not found")

	// Statement errors
	ErrUnsupportedFormat = errors.New("unsupported statement format")
)
