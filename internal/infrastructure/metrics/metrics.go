// Package metrics exposes the Prometheus instruments for reconciliation
// activity. HTTP-level metrics live in the router middleware; these cover the
// domain itself.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SessionsCreated counts statement uploads that produced a session.
	SessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reconcile_sessions_created_total",
		Help: "Total number of reconciliation sessions created",
	})

	// SessionsCompleted counts sessions reaching their terminal state.
	SessionsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reconcile_sessions_completed_total",
		Help: "Total number of reconciliation sessions completed",
	})

	// SessionsDeleted counts discarded in-progress sessions.
	SessionsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reconcile_sessions_deleted_total",
		Help: "Total number of reconciliation sessions deleted",
	})

	// MatchesCommitted counts committed matches by type (automatic, manual).
	MatchesCommitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reconcile_matches_committed_total",
			Help: "Total number of matches committed",
		},
		[]string{"type"},
	)

	// MatchesReverted counts unmatched entries.
	MatchesReverted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reconcile_matches_reverted_total",
		Help: "Total number of matches reverted",
	})

	// EntriesParsed counts bank entries parsed out of uploaded statements.
	EntriesParsed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reconcile_entries_parsed_total",
		Help: "Total number of bank statement entries parsed",
	})

	// ParseRowsSkipped counts malformed statement rows that were dropped.
	ParseRowsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reconcile_parse_rows_skipped_total",
		Help: "Total number of malformed statement rows skipped during parsing",
	})

	// OutboxEventsPublished counts events drained from the outbox.
	OutboxEventsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reconcile_outbox_events_published_total",
		Help: "Total number of outbox events published",
	})
)
