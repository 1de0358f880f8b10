package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/store/memory"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// newFixture seeds a store with one user owning one account with
// balance 1000, a second user with an account, and a Food category.
func newFixture(t *testing.T) (*Poster, *memory.Store) {
	t.Helper()
	s := memory.New()
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, &domain.User{ID: "u1", Email: "u1@example.com"}))
	require.NoError(t, s.CreateUser(ctx, &domain.User{ID: "u2", Email: "u2@example.com"}))
	require.NoError(t, s.CreateAccount(ctx, &domain.Account{
		ID: "a1", UserID: "u1", BankName: "HDFC", AccountType: "savings", Balance: dec("1000"),
	}))
	require.NoError(t, s.CreateAccount(ctx, &domain.Account{
		ID: "a2", UserID: "u2", BankName: "SBI", AccountType: "savings", Balance: dec("500"),
	}))
	require.NoError(t, s.CreateCategory(ctx, &domain.Category{
		ID: "c1", Name: "Food", Keywords: "starbucks, restaurant",
	}))

	return NewPoster(s, zerolog.Nop()), s
}

func TestPost_DebitUpdatesBalanceAndCategory(t *testing.T) {
	p, s := newFixture(t)
	ctx := context.Background()

	txn, err := p.Post(ctx, "u1", PostParams{
		AccountID: "a1",
		Amount:    dec("250"),
		TxnType:   "debit",
		Merchant:  "Starbucks",
	})
	require.NoError(t, err)

	assert.Equal(t, "Food", txn.Category)
	assert.Equal(t, domain.TxnDebit, txn.TxnType)
	assert.Equal(t, domain.DefaultCurrency, txn.Currency)
	assert.False(t, txn.TxnDate.IsZero())

	account, err := s.GetAccount(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(dec("750")), "got %s", account.Balance)
}

func TestPost_CreditAddsToBalance(t *testing.T) {
	p, s := newFixture(t)
	ctx := context.Background()

	_, err := p.Post(ctx, "u1", PostParams{AccountID: "a1", Amount: dec("300"), TxnType: "credit"})
	require.NoError(t, err)

	account, err := s.GetAccount(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(dec("1300")))
}

func TestPost_BalanceMatchesSignedSum(t *testing.T) {
	p, s := newFixture(t)
	ctx := context.Background()

	postings := []struct {
		typ    string
		amount string
	}{
		{"credit", "100"}, {"debit", "40"}, {"debit", "60.50"}, {"credit", "0.50"}, {"debit", "999"},
	}
	expected := dec("1000")
	for _, pt := range postings {
		_, err := p.Post(ctx, "u1", PostParams{AccountID: "a1", Amount: dec(pt.amount), TxnType: pt.typ})
		require.NoError(t, err)
		if pt.typ == "credit" {
			expected = expected.Add(dec(pt.amount))
		} else {
			expected = expected.Sub(dec(pt.amount))
		}
	}

	account, err := s.GetAccount(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(expected), "want %s got %s", expected, account.Balance)
}

func TestPost_NoOverdraftCheck(t *testing.T) {
	p, s := newFixture(t)
	ctx := context.Background()

	_, err := p.Post(ctx, "u1", PostParams{AccountID: "a1", Amount: dec("5000"), TxnType: "debit"})
	require.NoError(t, err)

	account, err := s.GetAccount(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, account.Balance.IsNegative())
}

func TestPost_ForeignAccountIsNotFound(t *testing.T) {
	p, s := newFixture(t)
	ctx := context.Background()

	// a2 exists but belongs to u2; u1 must get the same NotFound as for
	// a missing account, with nothing persisted.
	_, err := p.Post(ctx, "u1", PostParams{AccountID: "a2", Amount: dec("100"), TxnType: "debit"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	account, err := s.GetAccount(ctx, "a2")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(dec("500")), "balance must be untouched")
	txns, err := s.ListTransactionsByAccount(ctx, "a2")
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestPost_UnknownAccountIsNotFound(t *testing.T) {
	p, _ := newFixture(t)

	_, err := p.Post(context.Background(), "u1", PostParams{AccountID: "nope", Amount: dec("100"), TxnType: "debit"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPost_InvalidTypeHasNoSideEffects(t *testing.T) {
	p, s := newFixture(t)
	ctx := context.Background()

	_, err := p.Post(ctx, "u1", PostParams{AccountID: "a1", Amount: dec("100"), TxnType: "transfer"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	account, err := s.GetAccount(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(dec("1000")))
	txns, err := s.ListTransactionsByAccount(ctx, "a1")
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestPost_NonPositiveAmount(t *testing.T) {
	p, _ := newFixture(t)
	ctx := context.Background()

	_, err := p.Post(ctx, "u1", PostParams{AccountID: "a1", Amount: dec("0"), TxnType: "debit"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = p.Post(ctx, "u1", PostParams{AccountID: "a1", Amount: dec("-5"), TxnType: "credit"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestPost_DebitAccruesRewards(t *testing.T) {
	p, s := newFixture(t)
	ctx := context.Background()

	_, err := p.Post(ctx, "u1", PostParams{AccountID: "a1", Amount: dec("350"), TxnType: "debit"})
	require.NoError(t, err)

	r, err := s.GetRewardForUpdate(ctx, "u1", domain.RewardProgram)
	require.NoError(t, err)
	assert.EqualValues(t, 3, r.PointsBalance)
}

func TestPost_CreditDoesNotAccrue(t *testing.T) {
	p, s := newFixture(t)
	ctx := context.Background()

	_, err := p.Post(ctx, "u1", PostParams{AccountID: "a1", Amount: dec("5000"), TxnType: "credit"})
	require.NoError(t, err)

	_, err = s.GetRewardForUpdate(ctx, "u1", domain.RewardProgram)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPost_UppercaseTypeNormalized(t *testing.T) {
	p, _ := newFixture(t)

	txn, err := p.Post(context.Background(), "u1", PostParams{AccountID: "a1", Amount: dec("10"), TxnType: "DEBIT"})
	require.NoError(t, err)
	assert.Equal(t, domain.TxnDebit, txn.TxnType)
}

func TestPost_CallerSuppliedDateAndCurrency(t *testing.T) {
	p, _ := newFixture(t)
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	txn, err := p.Post(context.Background(), "u1", PostParams{
		AccountID: "a1", Amount: dec("10"), TxnType: "credit", Currency: "USD", TxnDate: at,
	})
	require.NoError(t, err)
	assert.Equal(t, at, txn.TxnDate)
	assert.Equal(t, "USD", txn.Currency)
}

func TestPost_NoCategoryMatchIsUncategorized(t *testing.T) {
	p, _ := newFixture(t)

	txn, err := p.Post(context.Background(), "u1", PostParams{
		AccountID: "a1", Amount: dec("10"), TxnType: "debit", Description: "salary advance",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Uncategorized, txn.Category)
}

func TestRecategorize(t *testing.T) {
	p, s := newFixture(t)
	ctx := context.Background()

	txn, err := p.Post(ctx, "u1", PostParams{AccountID: "a1", Amount: dec("10"), TxnType: "debit"})
	require.NoError(t, err)

	require.NoError(t, p.Recategorize(ctx, "u1", "a1", txn.ID, "Food"))

	txns, err := s.ListTransactionsByAccount(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "Food", txns[0].Category)

	// Another user cannot touch it.
	err = p.Recategorize(ctx, "u2", "a1", txn.ID, "Travel")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListForAccount_OwnershipEnforced(t *testing.T) {
	p, _ := newFixture(t)
	ctx := context.Background()

	_, err := p.Post(ctx, "u1", PostParams{AccountID: "a1", Amount: dec("10"), TxnType: "debit"})
	require.NoError(t, err)

	txns, err := p.ListForAccount(ctx, "u1", "a1")
	require.NoError(t, err)
	assert.Len(t, txns, 1)

	_, err = p.ListForAccount(ctx, "u2", "a1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
