package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/vkmindia80/reconcile/internal/adapter/http/handler"
	apimiddleware "github.com/vkmindia80/reconcile/internal/adapter/http/middleware"
	"github.com/vkmindia80/reconcile/internal/domain"
	"github.com/vkmindia80/reconcile/internal/matching"
	"github.com/vkmindia80/reconcile/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_MetricsEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"account_id":"acc-1","statement_date":"2025-10-31","statement":"","uploaded_by":"alice"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reconciliations/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/reconciliations/",
		"GET /api/v1/reconciliations/",
		"GET /api/v1/reconciliations/{id}",
		"DELETE /api/v1/reconciliations/{id}",
		"POST /api/v1/reconciliations/{id}/complete",
		"PUT /api/v1/reconciliations/{id}/notes",
		"GET /api/v1/reconciliations/{id}/report",
		"GET /api/v1/reconciliations/{id}/entries/{entryID}/suggestions",
		"POST /api/v1/reconciliations/{id}/entries/{entryID}/match",
		"POST /api/v1/reconciliations/{id}/entries/{entryID}/unmatch",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	cfg := RouterConfig{
		SessionHandler: handler.NewSessionHandler(&stubReconciliationService{}),
		MatchHandler:   handler.NewMatchHandler(&stubMatchingService{}),
		HealthHandler:  &handler.HealthHandler{},
		Logger:         zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubReconciliationService struct{}

func (stubReconciliationService) CreateSession(ctx context.Context, input usecase.CreateSessionInput) (*usecase.CreateSessionOutput, error) {
	return &usecase.CreateSessionOutput{Session: &domain.ReconciliationSession{ID: "sess"}}, nil
}

func (stubReconciliationService) GetSession(ctx context.Context, id string) (*usecase.SessionDetail, error) {
	return &usecase.SessionDetail{Session: &domain.ReconciliationSession{ID: id}}, nil
}

func (stubReconciliationService) ListSessions(ctx context.Context, input usecase.ListSessionsInput) ([]*domain.ReconciliationSession, error) {
	return []*domain.ReconciliationSession{}, nil
}

func (stubReconciliationService) CompleteSession(ctx context.Context, input usecase.CompleteSessionInput) (*usecase.CompleteSessionOutput, error) {
	return &usecase.CompleteSessionOutput{
		Session: &domain.ReconciliationSession{ID: input.SessionID},
		Report:  &usecase.Report{SessionID: input.SessionID},
	}, nil
}

func (stubReconciliationService) UpdateNotes(ctx context.Context, sessionID string, notes *string) error {
	return nil
}

func (stubReconciliationService) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

func (stubReconciliationService) GetReport(ctx context.Context, sessionID string) (*usecase.Report, error) {
	return &usecase.Report{SessionID: sessionID}, nil
}

type stubMatchingService struct{}

func (stubMatchingService) Suggestions(ctx context.Context, sessionID, entryID string) ([]matching.Suggestion, error) {
	return []matching.Suggestion{}, nil
}

func (stubMatchingService) MatchEntry(ctx context.Context, input usecase.MatchEntryInput) (*usecase.MatchResult, error) {
	return &usecase.MatchResult{
		Match:   &domain.Match{ID: "match"},
		Session: &domain.ReconciliationSession{ID: input.SessionID},
	}, nil
}

func (stubMatchingService) UnmatchEntry(ctx context.Context, input usecase.UnmatchEntryInput) (*domain.ReconciliationSession, error) {
	return &domain.ReconciliationSession{ID: input.SessionID}, nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}

func (s *stubIdempotencyStore) Release(ctx context.Context, key string) error {
	return nil
}
