package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vkmindia80/reconcile/internal/domain"
	"github.com/vkmindia80/reconcile/internal/usecase"
)

// LedgerTransactionRepository implements usecase.LedgerTransactionRepository.
// Ledger transactions are owned by the accounting system; reconciliation only
// reads them and flips the reconciled flag.
type LedgerTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerTransactionRepository creates a new LedgerTransactionRepository.
func NewLedgerTransactionRepository(pool *pgxpool.Pool) *LedgerTransactionRepository {
	return &LedgerTransactionRepository{pool: pool}
}

const ledgerTransactionColumns = `
	id, account_id, transaction_date, amount, description, reconciled, created_at
`

// GetByID retrieves one ledger transaction.
func (r *LedgerTransactionRepository) GetByID(ctx context.Context, id string) (*domain.LedgerTransaction, error) {
	query := `SELECT ` + ledgerTransactionColumns + ` FROM ledger_transactions WHERE id = $1`
	return r.scanTransaction(r.pool.QueryRow(ctx, query, id))
}

// LookupCandidates retrieves the unreconciled transactions of one account
// whose dates fall inside [from, to], in date then insertion order.
func (r *LedgerTransactionRepository) LookupCandidates(ctx context.Context, accountID string, from, to time.Time) ([]*domain.LedgerTransaction, error) {
	query := `
		SELECT ` + ledgerTransactionColumns + `
		FROM ledger_transactions
		WHERE account_id = $1 AND reconciled = false
		  AND transaction_date >= $2 AND transaction_date <= $3
		ORDER BY transaction_date, id
	`

	rows, err := r.pool.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*domain.LedgerTransaction
	for rows.Next() {
		tx, err := r.scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

// Claim flips the reconciled flag. The update is conditional on the flag
// being clear, so two transactions claiming the same row cannot both win.
func (r *LedgerTransactionRepository) Claim(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		`UPDATE ledger_transactions SET reconciled = true WHERE id = $1 AND reconciled = false`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.claimFailure(ctx, pgxTx, id)
	}
	return nil
}

// Release clears the reconciled flag during unmatch or session delete.
func (r *LedgerTransactionRepository) Release(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		`UPDATE ledger_transactions SET reconciled = false WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// claimFailure distinguishes a missing row from an already-claimed one.
func (r *LedgerTransactionRepository) claimFailure(ctx context.Context, pgxTx pgx.Tx, id string) error {
	var exists bool
	err := pgxTx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM ledger_transactions WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrTransactionNotFound
	}
	return domain.ErrTransactionAlreadyReconciled
}

func (r *LedgerTransactionRepository) scanTransaction(row pgx.Row) (*domain.LedgerTransaction, error) {
	var tx domain.LedgerTransaction
	var amount pgtype.Numeric

	err := row.Scan(
		&tx.ID,
		&tx.AccountID,
		&tx.Date,
		&amount,
		&tx.Description,
		&tx.Reconciled,
		&tx.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}

	if tx.Amount, err = toDecimal(amount); err != nil {
		return nil, err
	}

	return &tx, nil
}
