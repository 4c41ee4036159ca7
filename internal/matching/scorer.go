// Package matching holds the confidence scorer and the candidate-ranking
// engine used to pair bank entries with ledger transactions.
package matching

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkmindia80/reconcile/internal/domain"
)

// Scoring weights. The three components sum to at most 1.0.
const (
	amountWeightExact = 0.5
	amountWeightClose = 0.2

	dateWeightSameDay    = 0.3
	dateWeightWithinTwo  = 0.2
	dateWeightWithinFour = 0.1

	descriptionWeight = 0.2
)

// AutoMatchThreshold is the score at or above which the engine commits a
// match without human review.
const AutoMatchThreshold = 0.8

var (
	amountToleranceExact = decimal.RequireFromString("0.01")
	amountToleranceClose = decimal.RequireFromString("0.05")
)

// Score computes the confidence that a bank entry and a ledger transaction
// describe the same movement. Pure and deterministic: identical inputs always
// produce identical output, independent of call order or prior state.
func Score(entry *domain.BankEntry, tx *domain.LedgerTransaction) float64 {
	return amountScore(entry.Amount, tx.Amount) +
		dateScore(entry.Date, tx.Date) +
		descriptionScore(entry.Description, tx.Description)
}

// amountScore awards the full weight only for exact equality within the
// currency's minor unit. No linear interpolation between the bands.
func amountScore(a, b decimal.Decimal) float64 {
	diff := a.Sub(b).Abs()

	// Both band edges are inclusive: a difference of exactly 0.01 still
	// counts as exact, 0.05 as close.
	switch {
	case diff.LessThanOrEqual(amountToleranceExact):
		return amountWeightExact
	case diff.LessThanOrEqual(amountToleranceClose):
		return amountWeightClose
	default:
		return 0
	}
}

func dateScore(a, b time.Time) float64 {
	switch days := DaysApart(a, b); {
	case days == 0:
		return dateWeightSameDay
	case days <= 2:
		return dateWeightWithinTwo
	case days <= 4:
		return dateWeightWithinFour
	default:
		return 0
	}
}

// descriptionScore tokenizes both descriptions on whitespace, case folded,
// and scores the unique-token overlap against the larger side.
func descriptionScore(a, b string) float64 {
	tokensA := tokenSet(a)
	tokensB := tokenSet(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	overlap := 0
	for token := range tokensA {
		if tokensB[token] {
			overlap++
		}
	}

	larger := len(tokensA)
	if len(tokensB) > larger {
		larger = len(tokensB)
	}

	return float64(overlap) / float64(larger) * descriptionWeight
}

func tokenSet(s string) map[string]bool {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return nil
	}

	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}

	return set
}

// DaysApart returns the absolute calendar-day distance between two dates,
// direction-agnostic.
func DaysApart(a, b time.Time) int {
	da := a.UTC().Truncate(24 * time.Hour)
	db := b.UTC().Truncate(24 * time.Hour)

	days := int(da.Sub(db).Hours() / 24)
	if days < 0 {
		days = -days
	}

	return days
}
