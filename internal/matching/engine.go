package matching

import (
	"sort"
	"time"

	"github.com/vkmindia80/reconcile/internal/domain"
)

const (
	// MaxSuggestions caps the candidate list surfaced per bank entry.
	MaxSuggestions = 5

	// CandidateWindowDays bounds candidate lookup around an entry's date.
	// Must stay wider than the 4-day scoring band or scorable candidates
	// would never be fetched.
	CandidateWindowDays = 5
)

// Suggestion is one ranked candidate for a bank entry.
type Suggestion struct {
	Transaction *domain.LedgerTransaction
	Score       float64
	DaysApart   int
}

// PlannedMatch is an auto-match decision produced by PlanAutoMatches. The
// caller commits it transactionally; the engine itself has no side effects.
type PlannedMatch struct {
	Entry       *domain.BankEntry
	Transaction *domain.LedgerTransaction
	Score       float64
}

// CandidateWindow returns the inclusive date range to fetch candidates for.
func CandidateWindow(date time.Time) (from, to time.Time) {
	span := CandidateWindowDays * 24 * time.Hour
	return date.Add(-span), date.Add(span)
}

// Suggest scores a bank entry against every candidate and returns the top
// candidates in a deterministic total order: score descending, then calendar
// distance ascending, then candidate insertion order. Reconciled candidates
// and those outside the date window are excluded.
func Suggest(entry *domain.BankEntry, candidates []*domain.LedgerTransaction) []Suggestion {
	suggestions := make([]Suggestion, 0, len(candidates))

	for _, tx := range candidates {
		if tx.Reconciled {
			continue
		}
		if DaysApart(entry.Date, tx.Date) > CandidateWindowDays {
			continue
		}

		suggestions = append(suggestions, Suggestion{
			Transaction: tx,
			Score:       Score(entry, tx),
			DaysApart:   DaysApart(entry.Date, tx.Date),
		})
	}

	// Stable sort preserves insertion order as the final tie-breaker.
	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].DaysApart < suggestions[j].DaysApart
	})

	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}

	return suggestions
}

// PlanAutoMatches walks unmatched entries in statement order and pairs each
// with its best candidate when the score clears AutoMatchThreshold. A ledger
// transaction is claimed by at most one entry: once planned, it leaves the
// candidate pool for subsequent entries.
func PlanAutoMatches(entries []*domain.BankEntry, candidates []*domain.LedgerTransaction) []PlannedMatch {
	claimed := make(map[string]bool)

	var planned []PlannedMatch
	for _, entry := range entries {
		if entry.Matched {
			continue
		}

		pool := make([]*domain.LedgerTransaction, 0, len(candidates))
		for _, tx := range candidates {
			if !claimed[tx.ID] {
				pool = append(pool, tx)
			}
		}

		suggestions := Suggest(entry, pool)
		if len(suggestions) == 0 || suggestions[0].Score < AutoMatchThreshold {
			continue
		}

		best := suggestions[0]
		claimed[best.Transaction.ID] = true
		planned = append(planned, PlannedMatch{
			Entry:       entry,
			Transaction: best.Transaction,
			Score:       best.Score,
		})
	}

	return planned
}
