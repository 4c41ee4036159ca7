package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/vkmindia80/reconcile/internal/domain"
	"github.com/vkmindia80/reconcile/internal/usecase"
)

// fakeStore is a shared in-memory backing store. The per-interface fakes below
// all operate on the same store so that test scenarios see consistent state
// across repositories, the way the real repositories share one database.
type fakeStore struct {
	sessions    map[string]*domain.ReconciliationSession
	entries     map[string]*domain.BankEntry
	entryOrder  []string
	matches     map[string]*domain.Match
	matchOrder  []string
	ledger      map[string]*domain.LedgerTransaction
	ledgerOrder []string
	events      []*domain.OutboxEvent
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sessions: make(map[string]*domain.ReconciliationSession),
		entries:  make(map[string]*domain.BankEntry),
		matches:  make(map[string]*domain.Match),
		ledger:   make(map[string]*domain.LedgerTransaction),
	}
}

func (s *fakeStore) addLedgerTx(tx *domain.LedgerTransaction) {
	s.ledger[tx.ID] = tx
	s.ledgerOrder = append(s.ledgerOrder, tx.ID)
}

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeTxManager struct {
	beginErr    error
	began       int
	hadDeadline bool
}

func (m *fakeTxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.beginErr != nil {
		return nil, m.beginErr
	}
	m.began++
	_, m.hadDeadline = ctx.Deadline()
	return &fakeTx{}, nil
}

// seqIDGen issues deterministic IDs so tests can assert on ordering.
type seqIDGen struct {
	n int
}

func (g *seqIDGen) Generate() string {
	g.n++
	return fmt.Sprintf("id-%04d", g.n)
}

type fakeSessionRepo struct {
	store       *fakeStore
	createErr   error
	completeErr error
}

func (r *fakeSessionRepo) Create(ctx context.Context, tx usecase.Transaction, session *domain.ReconciliationSession) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.store.sessions[session.ID] = session
	return nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id string) (*domain.ReconciliationSession, error) {
	session, ok := r.store.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (r *fakeSessionRepo) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.ReconciliationSession, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeSessionRepo) List(ctx context.Context, accountID string, limit, offset int) ([]*domain.ReconciliationSession, error) {
	ids := make([]string, 0, len(r.store.sessions))
	for id := range r.store.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []*domain.ReconciliationSession
	for _, id := range ids {
		session := r.store.sessions[id]
		if accountID != "" && session.AccountID != accountID {
			continue
		}
		out = append(out, session)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeSessionRepo) UpdateCounters(ctx context.Context, tx usecase.Transaction, id string, matched, unmatched int) error {
	session, ok := r.store.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	session.MatchedCount = matched
	session.UnmatchedCount = unmatched
	return nil
}

func (r *fakeSessionRepo) Complete(ctx context.Context, tx usecase.Transaction, id string, completedAt time.Time, completedBy string, notes *string) error {
	if r.completeErr != nil {
		return r.completeErr
	}
	session, ok := r.store.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	// The write is conditional on in_progress. The usecase flips the in-memory
	// status before calling, so only trust the stored row here.
	if session.CompletedAt != nil && !session.CompletedAt.Equal(completedAt) {
		return domain.ErrSessionCompleted
	}
	session.Status = domain.SessionStatusCompleted
	session.CompletedAt = &completedAt
	session.CompletedBy = &completedBy
	if notes != nil {
		session.Notes = notes
	}
	return nil
}

func (r *fakeSessionRepo) UpdateNotes(ctx context.Context, id string, notes *string) error {
	session, ok := r.store.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	session.Notes = notes
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if _, ok := r.store.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.store.sessions, id)
	return nil
}

type fakeEntryRepo struct {
	store *fakeStore
}

func (r *fakeEntryRepo) CreateBatch(ctx context.Context, tx usecase.Transaction, entries []*domain.BankEntry) error {
	for _, e := range entries {
		r.store.entries[e.ID] = e
		r.store.entryOrder = append(r.store.entryOrder, e.ID)
	}
	return nil
}

func (r *fakeEntryRepo) GetByID(ctx context.Context, sessionID, entryID string) (*domain.BankEntry, error) {
	entry, ok := r.store.entries[entryID]
	if !ok || entry.SessionID != sessionID {
		return nil, domain.ErrEntryNotFound
	}
	return entry, nil
}

func (r *fakeEntryRepo) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, sessionID, entryID string) (*domain.BankEntry, error) {
	return r.GetByID(ctx, sessionID, entryID)
}

func (r *fakeEntryRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.BankEntry, error) {
	var out []*domain.BankEntry
	for _, id := range r.store.entryOrder {
		entry, ok := r.store.entries[id]
		if ok && entry.SessionID == sessionID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (r *fakeEntryRepo) ListUnmatched(ctx context.Context, sessionID string) ([]*domain.BankEntry, error) {
	all, _ := r.ListBySession(ctx, sessionID)
	var out []*domain.BankEntry
	for _, entry := range all {
		if !entry.Matched {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (r *fakeEntryRepo) SetMatched(ctx context.Context, tx usecase.Transaction, entryID, transactionID string) error {
	entry, ok := r.store.entries[entryID]
	if !ok {
		return domain.ErrEntryNotFound
	}
	entry.Matched = true
	entry.MatchedTransactionID = &transactionID
	return nil
}

func (r *fakeEntryRepo) ClearMatched(ctx context.Context, tx usecase.Transaction, entryID string) error {
	entry, ok := r.store.entries[entryID]
	if !ok {
		return domain.ErrEntryNotFound
	}
	entry.Matched = false
	entry.MatchedTransactionID = nil
	return nil
}

func (r *fakeEntryRepo) DeleteBySession(ctx context.Context, tx usecase.Transaction, sessionID string) error {
	var kept []string
	for _, id := range r.store.entryOrder {
		entry := r.store.entries[id]
		if entry != nil && entry.SessionID == sessionID {
			delete(r.store.entries, id)
			continue
		}
		kept = append(kept, id)
	}
	r.store.entryOrder = kept
	return nil
}

type fakeMatchRepo struct {
	store *fakeStore
}

func (r *fakeMatchRepo) Create(ctx context.Context, tx usecase.Transaction, match *domain.Match) error {
	// Mirrors the unique index on ledger_transaction_id.
	for _, existing := range r.store.matches {
		if existing.LedgerTransactionID == match.LedgerTransactionID {
			return domain.ErrTransactionAlreadyReconciled
		}
	}
	r.store.matches[match.ID] = match
	r.store.matchOrder = append(r.store.matchOrder, match.ID)
	return nil
}

func (r *fakeMatchRepo) GetByEntry(ctx context.Context, sessionID, entryID string) (*domain.Match, error) {
	for _, id := range r.store.matchOrder {
		match, ok := r.store.matches[id]
		if ok && match.SessionID == sessionID && match.BankEntryID == entryID {
			return match, nil
		}
	}
	return nil, domain.ErrMatchNotFound
}

func (r *fakeMatchRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.Match, error) {
	var out []*domain.Match
	for _, id := range r.store.matchOrder {
		match, ok := r.store.matches[id]
		if ok && match.SessionID == sessionID {
			out = append(out, match)
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if _, ok := r.store.matches[id]; !ok {
		return domain.ErrMatchNotFound
	}
	delete(r.store.matches, id)
	return nil
}

func (r *fakeMatchRepo) DeleteBySession(ctx context.Context, tx usecase.Transaction, sessionID string) error {
	for id, match := range r.store.matches {
		if match.SessionID == sessionID {
			delete(r.store.matches, id)
		}
	}
	return nil
}

type fakeLedgerRepo struct {
	store *fakeStore
}

func (r *fakeLedgerRepo) GetByID(ctx context.Context, id string) (*domain.LedgerTransaction, error) {
	tx, ok := r.store.ledger[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	return tx, nil
}

func (r *fakeLedgerRepo) LookupCandidates(ctx context.Context, accountID string, from, to time.Time) ([]*domain.LedgerTransaction, error) {
	var out []*domain.LedgerTransaction
	for _, id := range r.store.ledgerOrder {
		tx := r.store.ledger[id]
		if tx.AccountID != accountID || tx.Reconciled {
			continue
		}
		if tx.Date.Before(from) || tx.Date.After(to) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

func (r *fakeLedgerRepo) Claim(ctx context.Context, tx usecase.Transaction, id string) error {
	ledgerTx, ok := r.store.ledger[id]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	if ledgerTx.Reconciled {
		return domain.ErrTransactionAlreadyReconciled
	}
	ledgerTx.Reconciled = true
	return nil
}

func (r *fakeLedgerRepo) Release(ctx context.Context, tx usecase.Transaction, id string) error {
	ledgerTx, ok := r.store.ledger[id]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	ledgerTx.Reconciled = false
	return nil
}

type fakeOutboxRepo struct {
	store *fakeStore
}

func (r *fakeOutboxRepo) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	if event.ID == "" {
		event.ID = fmt.Sprintf("event-%04d", len(r.store.events)+1)
	}
	r.store.events = append(r.store.events, event)
	return nil
}

func (r *fakeOutboxRepo) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	var out []*domain.OutboxEvent
	for _, event := range r.store.events {
		if !event.Published {
			out = append(out, event)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeOutboxRepo) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	for _, event := range r.store.events {
		if event.ID == id {
			event.Published = true
			event.PublishedAt = &publishedAt
			return nil
		}
	}
	return nil
}

func (r *fakeOutboxRepo) DeletePublished(ctx context.Context, before time.Time) error {
	var kept []*domain.OutboxEvent
	for _, event := range r.store.events {
		if event.Published && event.PublishedAt != nil && event.PublishedAt.Before(before) {
			continue
		}
		kept = append(kept, event)
	}
	r.store.events = kept
	return nil
}

func (s *fakeStore) eventTypes() []string {
	var out []string
	for _, event := range s.events {
		out = append(out, event.EventType)
	}
	return out
}

// fixture wires one of everything against a shared store.
type fixture struct {
	store       *fakeStore
	txManager   *fakeTxManager
	sessionRepo *fakeSessionRepo
	entryRepo   *fakeEntryRepo
	matchRepo   *fakeMatchRepo
	ledgerRepo  *fakeLedgerRepo
	outboxRepo  *fakeOutboxRepo
	idGen       *seqIDGen
}

func newFixture() *fixture {
	store := newFakeStore()
	return &fixture{
		store:       store,
		txManager:   &fakeTxManager{},
		sessionRepo: &fakeSessionRepo{store: store},
		entryRepo:   &fakeEntryRepo{store: store},
		matchRepo:   &fakeMatchRepo{store: store},
		ledgerRepo:  &fakeLedgerRepo{store: store},
		outboxRepo:  &fakeOutboxRepo{store: store},
		idGen:       &seqIDGen{},
	}
}

func (f *fixture) reconciliationUseCase() *usecase.ReconciliationUseCase {
	return usecase.NewReconciliationUseCase(
		f.txManager, f.sessionRepo, f.entryRepo, f.matchRepo,
		f.ledgerRepo, f.outboxRepo, f.idGen, nil,
	)
}

func (f *fixture) matchingUseCase() *usecase.MatchingUseCase {
	return usecase.NewMatchingUseCase(
		f.txManager, f.sessionRepo, f.entryRepo, f.matchRepo,
		f.ledgerRepo, f.outboxRepo, f.idGen, nil,
	)
}
