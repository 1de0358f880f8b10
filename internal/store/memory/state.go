package memory

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
)

// rec pairs a record with its insertion sequence so list operations
// return rows in a stable creation order.
type rec[T any] struct {
	v   T
	seq int
}

type state struct {
	seq          int
	users        map[string]rec[domain.User]
	accounts     map[string]rec[domain.Account]
	transactions map[string]rec[domain.Transaction]
	categories   map[string]rec[domain.Category]
	budgets      map[string]rec[domain.Budget]
	bills        map[string]rec[domain.Bill]
	rewards      map[string]rec[domain.Reward]
}

func newState() *state {
	return &state{
		users:        make(map[string]rec[domain.User]),
		accounts:     make(map[string]rec[domain.Account]),
		transactions: make(map[string]rec[domain.Transaction]),
		categories:   make(map[string]rec[domain.Category]),
		budgets:      make(map[string]rec[domain.Budget]),
		bills:        make(map[string]rec[domain.Bill]),
		rewards:      make(map[string]rec[domain.Reward]),
	}
}

// clone copies every map. Record values are plain value structs, so a
// shallow copy per entry is a full snapshot.
func (s *state) clone() *state {
	c := newState()
	c.seq = s.seq
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	for k, v := range s.transactions {
		c.transactions[k] = v
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.budgets {
		c.budgets[k] = v
	}
	for k, v := range s.bills {
		c.bills[k] = v
	}
	for k, v := range s.rewards {
		c.rewards[k] = v
	}
	return c
}

func (s *state) nextSeq() int {
	s.seq++
	return s.seq
}

func sortedBySeq[T any](m map[string]rec[T], keep func(T) bool) []T {
	recs := make([]rec[T], 0, len(m))
	for _, r := range m {
		if keep(r.v) {
			recs = append(recs, r)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })
	out := make([]T, len(recs))
	for i, r := range recs {
		out[i] = r.v
	}
	return out
}

// Users

func (s *state) createUser(u *domain.User) error {
	if u.ID == "" {
		return fmt.Errorf("user ID is required")
	}
	for _, r := range s.users {
		if r.v.Email == u.Email {
			return fmt.Errorf("email %s: %w", u.Email, domain.ErrConflict)
		}
	}
	s.users[u.ID] = rec[domain.User]{v: *u, seq: s.nextSeq()}
	return nil
}

func (s *state) getUser(id string) (*domain.User, error) {
	r, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	u := r.v
	return &u, nil
}

func (s *state) getUserByEmail(email string) (*domain.User, error) {
	for _, r := range s.users {
		if r.v.Email == email {
			u := r.v
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
}

func (s *state) deleteUser(id string) error {
	if _, ok := s.users[id]; !ok {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	delete(s.users, id)
	for aid, a := range s.accounts {
		if a.v.UserID == id {
			s.cascadeDeleteAccount(aid)
		}
	}
	for bid, b := range s.budgets {
		if b.v.UserID == id {
			delete(s.budgets, bid)
		}
	}
	for bid, b := range s.bills {
		if b.v.UserID == id {
			delete(s.bills, bid)
		}
	}
	for rid, r := range s.rewards {
		if r.v.UserID == id {
			delete(s.rewards, rid)
		}
	}
	return nil
}

// Accounts

func (s *state) createAccount(a *domain.Account) error {
	if a.ID == "" {
		return fmt.Errorf("account ID is required")
	}
	s.accounts[a.ID] = rec[domain.Account]{v: *a, seq: s.nextSeq()}
	return nil
}

func (s *state) getAccount(id string) (*domain.Account, error) {
	r, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	a := r.v
	return &a, nil
}

func (s *state) listAccounts(userID string) []domain.Account {
	return sortedBySeq(s.accounts, func(a domain.Account) bool { return a.UserID == userID })
}

func (s *state) updateAccountBalance(id string, balance decimal.Decimal) error {
	r, ok := s.accounts[id]
	if !ok {
		return fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	r.v.Balance = balance
	s.accounts[id] = r
	return nil
}

func (s *state) deleteAccount(id string) error {
	if _, ok := s.accounts[id]; !ok {
		return fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	s.cascadeDeleteAccount(id)
	return nil
}

func (s *state) cascadeDeleteAccount(id string) {
	delete(s.accounts, id)
	for tid, t := range s.transactions {
		if t.v.AccountID == id {
			delete(s.transactions, tid)
		}
	}
}

// Transactions

func (s *state) createTransaction(t *domain.Transaction) error {
	if t.ID == "" {
		return fmt.Errorf("transaction ID is required")
	}
	s.transactions[t.ID] = rec[domain.Transaction]{v: *t, seq: s.nextSeq()}
	return nil
}

func (s *state) listTransactionsByAccount(accountID string) []domain.Transaction {
	return sortedBySeq(s.transactions, func(t domain.Transaction) bool { return t.AccountID == accountID })
}

func (s *state) updateTransactionCategory(id, category string) error {
	r, ok := s.transactions[id]
	if !ok {
		return fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}
	r.v.Category = category
	s.transactions[id] = r
	return nil
}

func (s *state) sumDebits(userID, category string, month, year int) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range s.transactions {
		txn := t.v
		if txn.TxnType != domain.TxnDebit || txn.Category != category {
			continue
		}
		if int(txn.TxnDate.Month()) != month || txn.TxnDate.Year() != year {
			continue
		}
		acct, ok := s.accounts[txn.AccountID]
		if !ok || acct.v.UserID != userID {
			continue
		}
		sum = sum.Add(txn.Amount)
	}
	return sum
}

// Categories

func (s *state) createCategory(c *domain.Category) error {
	if c.ID == "" {
		return fmt.Errorf("category ID is required")
	}
	for _, r := range s.categories {
		if r.v.Name == c.Name {
			return fmt.Errorf("category %s: %w", c.Name, domain.ErrConflict)
		}
	}
	s.categories[c.ID] = rec[domain.Category]{v: *c, seq: s.nextSeq()}
	return nil
}

func (s *state) listCategories() []domain.Category {
	return sortedBySeq(s.categories, func(domain.Category) bool { return true })
}

// Budgets

func (s *state) createBudget(b *domain.Budget) error {
	if b.ID == "" {
		return fmt.Errorf("budget ID is required")
	}
	for _, r := range s.budgets {
		v := r.v
		if v.UserID == b.UserID && v.Month == b.Month && v.Year == b.Year && v.Category == b.Category {
			return fmt.Errorf("budget %s %d/%d: %w", b.Category, b.Month, b.Year, domain.ErrConflict)
		}
	}
	s.budgets[b.ID] = rec[domain.Budget]{v: *b, seq: s.nextSeq()}
	return nil
}

func (s *state) getBudget(id string) (*domain.Budget, error) {
	r, ok := s.budgets[id]
	if !ok {
		return nil, fmt.Errorf("budget %s: %w", id, domain.ErrNotFound)
	}
	b := r.v
	return &b, nil
}

func (s *state) listBudgets(userID string) []domain.Budget {
	return sortedBySeq(s.budgets, func(b domain.Budget) bool { return b.UserID == userID })
}

func (s *state) updateBudgetSpent(id string, spent decimal.Decimal) error {
	r, ok := s.budgets[id]
	if !ok {
		return fmt.Errorf("budget %s: %w", id, domain.ErrNotFound)
	}
	r.v.SpentAmount = spent
	s.budgets[id] = r
	return nil
}

func (s *state) deleteBudget(id string) error {
	if _, ok := s.budgets[id]; !ok {
		return fmt.Errorf("budget %s: %w", id, domain.ErrNotFound)
	}
	delete(s.budgets, id)
	return nil
}

// Bills

func (s *state) createBill(b *domain.Bill) error {
	if b.ID == "" {
		return fmt.Errorf("bill ID is required")
	}
	s.bills[b.ID] = rec[domain.Bill]{v: *b, seq: s.nextSeq()}
	return nil
}

func (s *state) getBill(id string) (*domain.Bill, error) {
	r, ok := s.bills[id]
	if !ok {
		return nil, fmt.Errorf("bill %s: %w", id, domain.ErrNotFound)
	}
	b := r.v
	return &b, nil
}

func (s *state) listBills(userID string) []domain.Bill {
	return sortedBySeq(s.bills, func(b domain.Bill) bool { return b.UserID == userID })
}

func (s *state) updateBill(b *domain.Bill) error {
	r, ok := s.bills[b.ID]
	if !ok {
		return fmt.Errorf("bill %s: %w", b.ID, domain.ErrNotFound)
	}
	r.v = *b
	s.bills[b.ID] = r
	return nil
}

func (s *state) deleteBill(id string) error {
	if _, ok := s.bills[id]; !ok {
		return fmt.Errorf("bill %s: %w", id, domain.ErrNotFound)
	}
	delete(s.bills, id)
	return nil
}

// Rewards

func (s *state) ensureReward(r *domain.Reward) error {
	if r.ID == "" {
		return fmt.Errorf("reward ID is required")
	}
	for _, existing := range s.rewards {
		v := existing.v
		if v.UserID == r.UserID && v.ProgramName == r.ProgramName {
			return nil
		}
	}
	s.rewards[r.ID] = rec[domain.Reward]{v: *r, seq: s.nextSeq()}
	return nil
}

func (s *state) getReward(userID, program string) (*domain.Reward, error) {
	for _, existing := range s.rewards {
		if existing.v.UserID == userID && existing.v.ProgramName == program {
			r := existing.v
			return &r, nil
		}
	}
	return nil, fmt.Errorf("reward %s/%s: %w", userID, program, domain.ErrNotFound)
}

func (s *state) updateRewardPoints(id string, points int64, at time.Time) error {
	r, ok := s.rewards[id]
	if !ok {
		return fmt.Errorf("reward %s: %w", id, domain.ErrNotFound)
	}
	r.v.PointsBalance = points
	r.v.LastUpdated = at
	s.rewards[id] = r
	return nil
}

func (s *state) listRewards(userID string) []domain.Reward {
	return sortedBySeq(s.rewards, func(r domain.Reward) bool { return r.UserID == userID })
}
