package rewards

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/store"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/store/memory"
)

func TestEarned(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
	}{
		{"350", 3},
		{"100", 1},
		{"99.99", 0},
		{"100.01", 1},
		{"0", 0},
		{"1250.75", 12},
		// Truncation must hold even when the quotient would round up at
		// decimal's division precision.
		{"99.99999999999999999999", 0},
		{"199.99999999999999999999", 1},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, Earned(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestAccrue_CreatesRecordLazily(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	err := s.Atomically(ctx, func(tx store.Tx) error {
		earned, err := Accrue(ctx, tx, "u1", decimal.RequireFromString("350"), at)
		require.NoError(t, err)
		assert.EqualValues(t, 3, earned)
		return nil
	})
	require.NoError(t, err)

	r, err := s.GetRewardForUpdate(ctx, "u1", domain.RewardProgram)
	require.NoError(t, err)
	assert.EqualValues(t, 3, r.PointsBalance)
	assert.Equal(t, at, r.LastUpdated)
}

func TestAccrue_AccumulatesAcrossDebits(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	at := time.Now()

	for _, amount := range []string{"350", "120", "99"} {
		err := s.Atomically(ctx, func(tx store.Tx) error {
			_, err := Accrue(ctx, tx, "u1", decimal.RequireFromString(amount), at)
			return err
		})
		require.NoError(t, err)
	}

	r, err := s.GetRewardForUpdate(ctx, "u1", domain.RewardProgram)
	require.NoError(t, err)
	// floor(350/100) + floor(120/100) + floor(99/100) = 3 + 1 + 0
	assert.EqualValues(t, 4, r.PointsBalance)
}

func TestAccrue_NoRecordForSmallDebit(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	err := s.Atomically(ctx, func(tx store.Tx) error {
		earned, err := Accrue(ctx, tx, "u1", decimal.RequireFromString("99.99"), time.Now())
		require.NoError(t, err)
		assert.Zero(t, earned)
		return nil
	})
	require.NoError(t, err)

	// No qualifying debit yet, so no record should exist.
	_, err = s.GetRewardForUpdate(ctx, "u1", domain.RewardProgram)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
