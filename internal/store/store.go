// Package store defines the persistence interface the services run
// against. Two implementations exist: postgres (production) and memory
// (tests).
package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
)

// Tx is the repository method set. It is available both directly on a
// Store and inside a unit of work started with Atomically.
//
// Get methods return domain.ErrNotFound when no row matches; Create
// methods return domain.ErrConflict on uniqueness violations. Ownership
// is not checked here — services compare UserID themselves so that
// "missing" and "not yours" collapse into the same ErrNotFound.
type Tx interface {
	// Users
	CreateUser(ctx context.Context, u *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error

	// Accounts
	CreateAccount(ctx context.Context, a *domain.Account) error
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	// GetAccountForUpdate locks the account row for the remainder of
	// the unit of work so concurrent postings cannot lose updates.
	GetAccountForUpdate(ctx context.Context, id string) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	UpdateAccountBalance(ctx context.Context, id string, balance decimal.Decimal) error
	DeleteAccount(ctx context.Context, id string) error

	// Transactions
	CreateTransaction(ctx context.Context, t *domain.Transaction) error
	ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)
	UpdateTransactionCategory(ctx context.Context, id, category string) error
	// SumDebits totals debit amounts for one user's accounts in the
	// given category and calendar month.
	SumDebits(ctx context.Context, userID, category string, month, year int) (decimal.Decimal, error)

	// Categories
	CreateCategory(ctx context.Context, c *domain.Category) error
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// Budgets
	CreateBudget(ctx context.Context, b *domain.Budget) error
	GetBudget(ctx context.Context, id string) (*domain.Budget, error)
	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)
	UpdateBudgetSpent(ctx context.Context, id string, spent decimal.Decimal) error
	DeleteBudget(ctx context.Context, id string) error

	// Bills
	CreateBill(ctx context.Context, b *domain.Bill) error
	GetBill(ctx context.Context, id string) (*domain.Bill, error)
	ListBills(ctx context.Context, userID string) ([]domain.Bill, error)
	UpdateBill(ctx context.Context, b *domain.Bill) error
	DeleteBill(ctx context.Context, id string) error

	// Rewards
	// EnsureReward inserts the reward record unless one already exists
	// for its (user, program) pair; a duplicate is not an error. This
	// keeps first-debit accrual idempotent under concurrency.
	EnsureReward(ctx context.Context, r *domain.Reward) error
	// GetRewardForUpdate locks the (user, program) reward row like
	// GetAccountForUpdate does for accounts.
	GetRewardForUpdate(ctx context.Context, userID, program string) (*domain.Reward, error)
	UpdateRewardPoints(ctx context.Context, id string, points int64, at time.Time) error
	ListRewards(ctx context.Context, userID string) ([]domain.Reward, error)
}

// Store is a Tx that can also open transactional units of work.
type Store interface {
	Tx

	// Atomically runs fn inside one transaction: every write fn makes
	// commits together, or none do.
	Atomically(ctx context.Context, fn func(tx Tx) error) error
}
