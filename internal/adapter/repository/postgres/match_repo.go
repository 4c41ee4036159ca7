package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vkmindia80/reconcile/internal/domain"
	"github.com/vkmindia80/reconcile/internal/usecase"
)

const pgErrUniqueViolation = "23505"

// MatchRepository implements usecase.MatchRepository.
type MatchRepository struct {
	pool *pgxpool.Pool
}

// NewMatchRepository creates a new MatchRepository.
func NewMatchRepository(pool *pgxpool.Pool) *MatchRepository {
	return &MatchRepository{pool: pool}
}

const matchColumns = `
	id, session_id, bank_entry_id, ledger_transaction_id,
	confidence_score, match_type, matched_at, matched_by
`

// Create inserts a match within a transaction. The unique index on
// ledger_transaction_id backs up the claim: a second match against the same
// ledger transaction fails here even if both writers raced past the flag.
func (r *MatchRepository) Create(ctx context.Context, tx usecase.Transaction, match *domain.Match) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO matches (` + matchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := pgxTx.Exec(ctx, query,
		match.ID,
		match.SessionID,
		match.BankEntryID,
		match.LedgerTransactionID,
		match.ConfidenceScore,
		string(match.Type),
		match.MatchedAt,
		match.MatchedBy,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
		return domain.ErrTransactionAlreadyReconciled
	}

	return err
}

// GetByEntry retrieves the match for one bank entry.
func (r *MatchRepository) GetByEntry(ctx context.Context, sessionID, entryID string) (*domain.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE session_id = $1 AND bank_entry_id = $2`
	return r.scanMatch(r.pool.QueryRow(ctx, query, sessionID, entryID))
}

// ListBySession retrieves all matches of a session.
func (r *MatchRepository) ListBySession(ctx context.Context, sessionID string) ([]*domain.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE session_id = $1 ORDER BY matched_at, id`

	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*domain.Match
	for rows.Next() {
		match, err := r.scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}

	return matches, rows.Err()
}

// Delete removes one match within a transaction.
func (r *MatchRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

// DeleteBySession removes all matches of a session within a transaction.
func (r *MatchRepository) DeleteBySession(ctx context.Context, tx usecase.Transaction, sessionID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM matches WHERE session_id = $1`, sessionID)
	return err
}

func (r *MatchRepository) scanMatch(row pgx.Row) (*domain.Match, error) {
	var match domain.Match
	var matchType string

	err := row.Scan(
		&match.ID,
		&match.SessionID,
		&match.BankEntryID,
		&match.LedgerTransactionID,
		&match.ConfidenceScore,
		&matchType,
		&match.MatchedAt,
		&match.MatchedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}

	match.Type = domain.MatchType(matchType)
	return &match, nil
}
