// Package rewards implements loyalty point accrual for the single
// modeled program, "Bank Rewards".
package rewards

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/store"
)

var hundred = decimal.NewFromInt(100)

// Earned returns the points a debit of the given amount yields:
// floor(amount / 100). QuoRem truncates where Div would round the
// quotient at DivisionPrecision, which matters for amounts a hair under
// a multiple of 100. Credits never call this.
func Earned(amount decimal.Decimal) int64 {
	q, _ := amount.QuoRem(hundred, 0)
	return q.IntPart()
}

// Accrue applies the points for one debit to the user's "Bank Rewards"
// balance, creating the record on the first qualifying debit. It must
// run inside the same unit of work as the transaction posting, so it
// takes a store.Tx rather than a Store. Returns the points earned.
func Accrue(ctx context.Context, tx store.Tx, userID string, amount decimal.Decimal, at time.Time) (int64, error) {
	earned := Earned(amount)
	if earned <= 0 {
		return 0, nil
	}

	reward, err := tx.GetRewardForUpdate(ctx, userID, domain.RewardProgram)
	if errors.Is(err, domain.ErrNotFound) {
		fresh := &domain.Reward{
			ID:          uuid.New().String(),
			UserID:      userID,
			ProgramName: domain.RewardProgram,
			LastUpdated: at,
		}
		if err := tx.EnsureReward(ctx, fresh); err != nil {
			return 0, fmt.Errorf("creating reward record: %w", err)
		}
		// Re-read under lock; EnsureReward may have found a record a
		// concurrent posting created first.
		reward, err = tx.GetRewardForUpdate(ctx, userID, domain.RewardProgram)
		if err != nil {
			return 0, fmt.Errorf("reloading reward record: %w", err)
		}
	} else if err != nil {
		return 0, fmt.Errorf("loading reward record: %w", err)
	}

	if err := tx.UpdateRewardPoints(ctx, reward.ID, reward.PointsBalance+earned, at); err != nil {
		return 0, fmt.Errorf("updating reward points: %w", err)
	}
	return earned, nil
}
