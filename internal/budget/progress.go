// Package budget recomputes budget progress: how much of each
// configured limit a user's debit spending has consumed.
package budget

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/store"
)

// Warning values attached to a Progress. They are derived on every
// evaluation and never persisted.
const (
	WarningExceeded    = "exceeded"
	WarningWithinLimit = "within limit"
)

// Progress is one budget with its freshly computed spending.
type Progress struct {
	Budget  domain.Budget
	Warning string
}

// Evaluate is the pure half of the engine: it applies a computed spent
// amount to a budget and derives the warning.
func Evaluate(b domain.Budget, spent decimal.Decimal) Progress {
	b.SpentAmount = spent
	warning := WarningWithinLimit
	if spent.GreaterThan(b.LimitAmount) {
		warning = WarningExceeded
	}
	return Progress{Budget: b, Warning: warning}
}

// Engine recomputes and persists spent amounts.
type Engine struct {
	store store.Store
	log   zerolog.Logger
}

// NewEngine creates a progress engine.
func NewEngine(st store.Store, log zerolog.Logger) *Engine {
	return &Engine{store: st, log: log}
}

// Recompute refreshes spent_amount for every budget the user owns and
// persists the new values. The debit sum is scoped to the user's own
// accounts by category and calendar month. Recompute is idempotent:
// with no intervening transactions a second call yields identical
// results.
func (e *Engine) Recompute(ctx context.Context, userID string) ([]Progress, error) {
	var results []Progress
	err := e.store.Atomically(ctx, func(tx store.Tx) error {
		budgets, err := tx.ListBudgets(ctx, userID)
		if err != nil {
			return err
		}

		results = make([]Progress, 0, len(budgets))
		for _, b := range budgets {
			spent, err := tx.SumDebits(ctx, userID, b.Category, b.Month, b.Year)
			if err != nil {
				return err
			}
			if err := tx.UpdateBudgetSpent(ctx, b.ID, spent); err != nil {
				return err
			}
			results = append(results, Evaluate(b, spent))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.log.Debug().Str("user_id", userID).Int("budgets", len(results)).Msg("Budget progress recomputed")
	return results, nil
}
