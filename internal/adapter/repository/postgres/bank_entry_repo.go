package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vkmindia80/reconcile/internal/domain"
	"github.com/vkmindia80/reconcile/internal/usecase"
)

// BankEntryRepository implements usecase.BankEntryRepository.
type BankEntryRepository struct {
	pool *pgxpool.Pool
}

// NewBankEntryRepository creates a new BankEntryRepository.
func NewBankEntryRepository(pool *pgxpool.Pool) *BankEntryRepository {
	return &BankEntryRepository{pool: pool}
}

const bankEntryColumns = `
	id, session_id, sequence, entry_date, description, amount,
	reference, running_balance, matched, matched_transaction_id, created_at
`

const insertBankEntry = `
	INSERT INTO bank_entries (` + bankEntryColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

// CreateBatch inserts all statement entries in one round trip.
func (r *BankEntryRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, entries []*domain.BankEntry) error {
	pgxTx := tx.(*Tx).PgxTx()

	batch := &pgx.Batch{}
	for _, entry := range entries {
		batch.Queue(insertBankEntry,
			entry.ID,
			entry.SessionID,
			entry.Sequence,
			entry.Date,
			entry.Description,
			decimalArg(entry.Amount),
			entry.Reference,
			decimalPtrArg(entry.RunningBalance),
			entry.Matched,
			entry.MatchedTransactionID,
			entry.CreatedAt,
		)
	}

	results := pgxTx.SendBatch(ctx, batch)
	defer results.Close()

	for range entries {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}

	return results.Close()
}

// GetByID retrieves one entry scoped to its session.
func (r *BankEntryRepository) GetByID(ctx context.Context, sessionID, entryID string) (*domain.BankEntry, error) {
	query := `SELECT ` + bankEntryColumns + ` FROM bank_entries WHERE id = $1 AND session_id = $2`
	return r.scanEntry(r.pool.QueryRow(ctx, query, entryID, sessionID))
}

// GetByIDForUpdate retrieves one entry with a row lock inside the transaction.
func (r *BankEntryRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, sessionID, entryID string) (*domain.BankEntry, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `SELECT ` + bankEntryColumns + ` FROM bank_entries WHERE id = $1 AND session_id = $2 FOR UPDATE`
	return r.scanEntry(pgxTx.QueryRow(ctx, query, entryID, sessionID))
}

// ListBySession retrieves a session's entries in statement order.
func (r *BankEntryRepository) ListBySession(ctx context.Context, sessionID string) ([]*domain.BankEntry, error) {
	query := `SELECT ` + bankEntryColumns + ` FROM bank_entries WHERE session_id = $1 ORDER BY sequence`
	return r.queryEntries(ctx, query, sessionID)
}

// ListUnmatched retrieves a session's unmatched entries in statement order.
func (r *BankEntryRepository) ListUnmatched(ctx context.Context, sessionID string) ([]*domain.BankEntry, error) {
	query := `SELECT ` + bankEntryColumns + ` FROM bank_entries WHERE session_id = $1 AND matched = false ORDER BY sequence`
	return r.queryEntries(ctx, query, sessionID)
}

// SetMatched marks an entry matched to a ledger transaction.
func (r *BankEntryRepository) SetMatched(ctx context.Context, tx usecase.Transaction, entryID, transactionID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		`UPDATE bank_entries SET matched = true, matched_transaction_id = $2 WHERE id = $1`,
		entryID, transactionID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// ClearMatched reverts an entry to its unmatched state.
func (r *BankEntryRepository) ClearMatched(ctx context.Context, tx usecase.Transaction, entryID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		`UPDATE bank_entries SET matched = false, matched_transaction_id = NULL WHERE id = $1`,
		entryID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// DeleteBySession removes all entries of a session within a transaction.
func (r *BankEntryRepository) DeleteBySession(ctx context.Context, tx usecase.Transaction, sessionID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM bank_entries WHERE session_id = $1`, sessionID)
	return err
}

func (r *BankEntryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]*domain.BankEntry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.BankEntry
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *BankEntryRepository) scanEntry(row pgx.Row) (*domain.BankEntry, error) {
	var entry domain.BankEntry
	var amount, runningBalance pgtype.Numeric

	err := row.Scan(
		&entry.ID,
		&entry.SessionID,
		&entry.Sequence,
		&entry.Date,
		&entry.Description,
		&amount,
		&entry.Reference,
		&runningBalance,
		&entry.Matched,
		&entry.MatchedTransactionID,
		&entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}

	if entry.Amount, err = toDecimal(amount); err != nil {
		return nil, err
	}
	if entry.RunningBalance, err = toDecimalPtr(runningBalance); err != nil {
		return nil, err
	}

	return &entry, nil
}
