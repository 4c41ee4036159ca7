package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vkmindia80/reconcile/internal/domain"
	"github.com/vkmindia80/reconcile/internal/usecase"
)

// SessionRepository implements usecase.SessionRepository.
type SessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

const sessionColumns = `
	id, account_id, statement_date, opening_balance, closing_balance,
	status, total_bank_entries, matched_count, unmatched_count,
	notes, created_at, completed_at, completed_by
`

// Create inserts a new session within a transaction.
func (r *SessionRepository) Create(ctx context.Context, tx usecase.Transaction, session *domain.ReconciliationSession) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO reconciliation_sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := pgxTx.Exec(ctx, query,
		session.ID,
		session.AccountID,
		session.StatementDate,
		decimalArg(session.OpeningBalance),
		decimalArg(session.ClosingBalance),
		string(session.Status),
		session.TotalBankEntries,
		session.MatchedCount,
		session.UnmatchedCount,
		session.Notes,
		session.CreatedAt,
		session.CompletedAt,
		session.CompletedBy,
	)

	return err
}

// GetByID retrieves a session by ID.
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.ReconciliationSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM reconciliation_sessions WHERE id = $1`
	return r.scanSession(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate retrieves a session with a row lock inside the transaction.
func (r *SessionRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.ReconciliationSession, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `SELECT ` + sessionColumns + ` FROM reconciliation_sessions WHERE id = $1 FOR UPDATE`
	return r.scanSession(pgxTx.QueryRow(ctx, query, id))
}

// List retrieves sessions newest first, optionally filtered to one account.
func (r *SessionRepository) List(ctx context.Context, accountID string, limit, offset int) ([]*domain.ReconciliationSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM reconciliation_sessions`
	args := []any{}

	if accountID != "" {
		args = append(args, accountID)
		query += fmt.Sprintf(` WHERE account_id = $%d`, len(args))
	}

	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args))

	args = append(args, offset)
	query += fmt.Sprintf(` OFFSET $%d`, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*domain.ReconciliationSession
	for rows.Next() {
		session, err := r.scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

// UpdateCounters writes the matched/unmatched counts within a transaction.
func (r *SessionRepository) UpdateCounters(ctx context.Context, tx usecase.Transaction, id string, matched, unmatched int) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		`UPDATE reconciliation_sessions SET matched_count = $2, unmatched_count = $3 WHERE id = $1`,
		id, matched, unmatched,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

// Complete transitions the session to completed. The update is conditional on
// the current status, so of two racing completions exactly one succeeds.
func (r *SessionRepository) Complete(ctx context.Context, tx usecase.Transaction, id string, completedAt time.Time, completedBy string, notes *string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `
		UPDATE reconciliation_sessions
		SET status = $2, completed_at = $3, completed_by = $4,
		    notes = COALESCE($5, notes)
		WHERE id = $1 AND status = $6
	`,
		id,
		string(domain.SessionStatusCompleted),
		completedAt,
		completedBy,
		notes,
		string(domain.SessionStatusInProgress),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSessionCompleted
	}
	return nil
}

// UpdateNotes writes the session notes. Not transactional; notes stay
// editable after completion.
func (r *SessionRepository) UpdateNotes(ctx context.Context, id string, notes *string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE reconciliation_sessions SET notes = $2 WHERE id = $1`,
		id, notes,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

// Delete removes a session row within a transaction.
func (r *SessionRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `DELETE FROM reconciliation_sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepository) scanSession(row pgx.Row) (*domain.ReconciliationSession, error) {
	var session domain.ReconciliationSession
	var opening, closing pgtype.Numeric
	var status string

	err := row.Scan(
		&session.ID,
		&session.AccountID,
		&session.StatementDate,
		&opening,
		&closing,
		&status,
		&session.TotalBankEntries,
		&session.MatchedCount,
		&session.UnmatchedCount,
		&session.Notes,
		&session.CreatedAt,
		&session.CompletedAt,
		&session.CompletedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	session.Status = domain.SessionStatus(status)

	if session.OpeningBalance, err = toDecimal(opening); err != nil {
		return nil, err
	}
	if session.ClosingBalance, err = toDecimal(closing); err != nil {
		return nil, err
	}

	return &session, nil
}
