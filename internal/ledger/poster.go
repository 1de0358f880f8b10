// Package ledger posts transactions: it validates the request, adjusts
// the owning account's balance, assigns a category, accrues reward
// points for debits, and persists everything in one unit of work.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/category"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/rewards"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/store"
)

// Poster records transactions against accounts.
type Poster struct {
	store store.Store
	log   zerolog.Logger
	now   func() time.Time
}

// NewPoster creates a Poster.
func NewPoster(st store.Store, log zerolog.Logger) *Poster {
	return &Poster{store: st, log: log, now: time.Now}
}

// PostParams holds one transaction to record. TxnDate zero means "now";
// Currency empty means domain.DefaultCurrency.
type PostParams struct {
	AccountID   string
	Amount      decimal.Decimal
	TxnType     string
	Description string
	Merchant    string
	Currency    string
	TxnDate     time.Time
}

// Post validates and records a single transaction for the given user.
//
// The account must belong to userID; any other account id fails with
// ErrNotFound so callers cannot probe for other users' accounts. The
// balance update, transaction row, category assignment and reward
// accrual all commit together or not at all. There is no overdraft
// check: a debit may take the balance negative.
func (p *Poster) Post(ctx context.Context, userID string, params PostParams) (*domain.Transaction, error) {
	var posted *domain.Transaction
	err := p.store.Atomically(ctx, func(tx store.Tx) error {
		account, err := tx.GetAccountForUpdate(ctx, params.AccountID)
		if err != nil {
			return err
		}
		if account.UserID != userID {
			return fmt.Errorf("account %s: %w", params.AccountID, domain.ErrNotFound)
		}

		txnType, ok := domain.ParseTxnType(params.TxnType)
		if !ok {
			return fmt.Errorf("txn_type %q (use 'credit' or 'debit'): %w", params.TxnType, domain.ErrInvalidArgument)
		}
		if !params.Amount.IsPositive() {
			return fmt.Errorf("amount must be positive: %w", domain.ErrInvalidArgument)
		}

		categories, err := tx.ListCategories(ctx)
		if err != nil {
			return err
		}

		txn, err := p.record(ctx, tx, account, txnType, params, categories)
		if err != nil {
			return err
		}
		posted = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.log.Info().
		Str("transaction_id", posted.ID).
		Str("account_id", posted.AccountID).
		Str("txn_type", string(posted.TxnType)).
		Str("category", posted.Category).
		Msg("Transaction posted")
	return posted, nil
}

// record writes one already-validated transaction. Callers hold the
// account row lock.
func (p *Poster) record(ctx context.Context, tx store.Tx, account *domain.Account,
	txnType domain.TxnType, params PostParams, categories []domain.Category) (*domain.Transaction, error) {

	txnDate := params.TxnDate
	if txnDate.IsZero() {
		txnDate = p.now()
	}
	currency := params.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	txn := &domain.Transaction{
		ID:          uuid.New().String(),
		AccountID:   account.ID,
		Amount:      params.Amount,
		TxnType:     txnType,
		Description: params.Description,
		Merchant:    params.Merchant,
		Currency:    currency,
		Category:    category.Match(params.Merchant, params.Description, categories),
		TxnDate:     txnDate,
	}

	if err := tx.UpdateAccountBalance(ctx, account.ID, account.Balance.Add(txn.Signed())); err != nil {
		return nil, err
	}
	if err := tx.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}
	if txnType == domain.TxnDebit {
		if _, err := rewards.Accrue(ctx, tx, account.UserID, txn.Amount, txnDate); err != nil {
			return nil, err
		}
	}
	return txn, nil
}

// Recategorize manually corrects a posted transaction's category. The
// transaction must belong to one of the user's accounts.
func (p *Poster) Recategorize(ctx context.Context, userID, accountID, txnID, newCategory string) error {
	return p.store.Atomically(ctx, func(tx store.Tx) error {
		account, err := tx.GetAccount(ctx, accountID)
		if err != nil {
			return err
		}
		if account.UserID != userID {
			return fmt.Errorf("account %s: %w", accountID, domain.ErrNotFound)
		}
		txns, err := tx.ListTransactionsByAccount(ctx, accountID)
		if err != nil {
			return err
		}
		for _, t := range txns {
			if t.ID == txnID {
				return tx.UpdateTransactionCategory(ctx, txnID, newCategory)
			}
		}
		return fmt.Errorf("transaction %s: %w", txnID, domain.ErrNotFound)
	})
}

// ListForAccount returns the account's transactions, oldest first. The
// account must belong to userID.
func (p *Poster) ListForAccount(ctx context.Context, userID, accountID string) ([]domain.Transaction, error) {
	account, err := p.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != userID {
		return nil, fmt.Errorf("account %s: %w", accountID, domain.ErrNotFound)
	}
	return p.store.ListTransactionsByAccount(ctx, accountID)
}
