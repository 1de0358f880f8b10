package memory

// Store methods take the mutex and delegate to state; txView methods
// delegate directly because Atomically already holds the lock.

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
)

func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.createUser(u)
}

func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.getUser(id)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.getUserByEmail(email)
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.deleteUser(id)
}

func (s *Store) CreateAccount(ctx context.Context, a *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.createAccount(a)
}

func (s *Store) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.getAccount(id)
}

func (s *Store) GetAccountForUpdate(ctx context.Context, id string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.getAccount(id)
}

func (s *Store) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.listAccounts(userID), nil
}

func (s *Store) UpdateAccountBalance(ctx context.Context, id string, balance decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.updateAccountBalance(id, balance)
}

func (s *Store) DeleteAccount(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.deleteAccount(id)
}

func (s *Store) CreateTransaction(ctx context.Context, t *domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.createTransaction(t)
}

func (s *Store) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.listTransactionsByAccount(accountID), nil
}

func (s *Store) UpdateTransactionCategory(ctx context.Context, id, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.updateTransactionCategory(id, category)
}

func (s *Store) SumDebits(ctx context.Context, userID, category string, month, year int) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.sumDebits(userID, category, month, year), nil
}

func (s *Store) CreateCategory(ctx context.Context, c *domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.createCategory(c)
}

func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.listCategories(), nil
}

func (s *Store) CreateBudget(ctx context.Context, b *domain.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.createBudget(b)
}

func (s *Store) GetBudget(ctx context.Context, id string) (*domain.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.getBudget(id)
}

func (s *Store) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.listBudgets(userID), nil
}

func (s *Store) UpdateBudgetSpent(ctx context.Context, id string, spent decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.updateBudgetSpent(id, spent)
}

func (s *Store) DeleteBudget(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.deleteBudget(id)
}

func (s *Store) CreateBill(ctx context.Context, b *domain.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.createBill(b)
}

func (s *Store) GetBill(ctx context.Context, id string) (*domain.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.getBill(id)
}

func (s *Store) ListBills(ctx context.Context, userID string) ([]domain.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.listBills(userID), nil
}

func (s *Store) UpdateBill(ctx context.Context, b *domain.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.updateBill(b)
}

func (s *Store) DeleteBill(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.deleteBill(id)
}

func (s *Store) EnsureReward(ctx context.Context, r *domain.Reward) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.ensureReward(r)
}

func (s *Store) GetRewardForUpdate(ctx context.Context, userID, program string) (*domain.Reward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.getReward(userID, program)
}

func (s *Store) UpdateRewardPoints(ctx context.Context, id string, points int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.updateRewardPoints(id, points, at)
}

func (s *Store) ListRewards(ctx context.Context, userID string) ([]domain.Reward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.listRewards(userID), nil
}

// txView delegates without locking.

func (t *txView) CreateUser(ctx context.Context, u *domain.User) error {
	return t.st.createUser(u)
}

func (t *txView) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return t.st.getUser(id)
}

func (t *txView) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return t.st.getUserByEmail(email)
}

func (t *txView) DeleteUser(ctx context.Context, id string) error {
	return t.st.deleteUser(id)
}

func (t *txView) CreateAccount(ctx context.Context, a *domain.Account) error {
	return t.st.createAccount(a)
}

func (t *txView) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return t.st.getAccount(id)
}

func (t *txView) GetAccountForUpdate(ctx context.Context, id string) (*domain.Account, error) {
	return t.st.getAccount(id)
}

func (t *txView) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	return t.st.listAccounts(userID), nil
}

func (t *txView) UpdateAccountBalance(ctx context.Context, id string, balance decimal.Decimal) error {
	return t.st.updateAccountBalance(id, balance)
}

func (t *txView) DeleteAccount(ctx context.Context, id string) error {
	return t.st.deleteAccount(id)
}

func (t *txView) CreateTransaction(ctx context.Context, txn *domain.Transaction) error {
	return t.st.createTransaction(txn)
}

func (t *txView) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	return t.st.listTransactionsByAccount(accountID), nil
}

func (t *txView) UpdateTransactionCategory(ctx context.Context, id, category string) error {
	return t.st.updateTransactionCategory(id, category)
}

func (t *txView) SumDebits(ctx context.Context, userID, category string, month, year int) (decimal.Decimal, error) {
	return t.st.sumDebits(userID, category, month, year), nil
}

func (t *txView) CreateCategory(ctx context.Context, c *domain.Category) error {
	return t.st.createCategory(c)
}

func (t *txView) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return t.st.listCategories(), nil
}

func (t *txView) CreateBudget(ctx context.Context, b *domain.Budget) error {
	return t.st.createBudget(b)
}

func (t *txView) GetBudget(ctx context.Context, id string) (*domain.Budget, error) {
	return t.st.getBudget(id)
}

func (t *txView) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	return t.st.listBudgets(userID), nil
}

func (t *txView) UpdateBudgetSpent(ctx context.Context, id string, spent decimal.Decimal) error {
	return t.st.updateBudgetSpent(id, spent)
}

func (t *txView) DeleteBudget(ctx context.Context, id string) error {
	return t.st.deleteBudget(id)
}

func (t *txView) CreateBill(ctx context.Context, b *domain.Bill) error {
	return t.st.createBill(b)
}

func (t *txView) GetBill(ctx context.Context, id string) (*domain.Bill, error) {
	return t.st.getBill(id)
}

func (t *txView) ListBills(ctx context.Context, userID string) ([]domain.Bill, error) {
	return t.st.listBills(userID), nil
}

func (t *txView) UpdateBill(ctx context.Context, b *domain.Bill) error {
	return t.st.updateBill(b)
}

func (t *txView) DeleteBill(ctx context.Context, id string) error {
	return t.st.deleteBill(id)
}

func (t *txView) EnsureReward(ctx context.Context, r *domain.Reward) error {
	return t.st.ensureReward(r)
}

func (t *txView) GetRewardForUpdate(ctx context.Context, userID, program string) (*domain.Reward, error) {
	return t.st.getReward(userID, program)
}

func (t *txView) UpdateRewardPoints(ctx context.Context, id string, points int64, at time.Time) error {
	return t.st.updateRewardPoints(id, points, at)
}

func (t *txView) ListRewards(ctx context.Context, userID string) ([]domain.Reward, error) {
	return t.st.listRewards(userID), nil
}
