package postgres

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
)

func (q *queries) CreateAccount(ctx context.Context, a *domain.Account) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO accounts (id, user_id, bank_name, account_type, balance) VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.UserID, a.BankName, a.AccountType, a.Balance)
	return mapErr(err, "creating account")
}

func (q *queries) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return q.scanAccount(q.db.QueryRowContext(ctx,
		`SELECT id, user_id, bank_name, account_type, balance FROM accounts WHERE id = $1`, id))
}

// GetAccountForUpdate takes a row lock; callers must be inside Atomically.
func (q *queries) GetAccountForUpdate(ctx context.Context, id string) (*domain.Account, error) {
	return q.scanAccount(q.db.QueryRowContext(ctx,
		`SELECT id, user_id, bank_name, account_type, balance FROM accounts WHERE id = $1 FOR UPDATE`, id))
}

func (q *queries) scanAccount(row *sql.Row) (*domain.Account, error) {
	a := &domain.Account{}
	err := row.Scan(&a.ID, &a.UserID, &a.BankName, &a.AccountType, &a.Balance)
	if err != nil {
		return nil, mapErr(err, "getting account")
	}
	return a, nil
}

func (q *queries) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, user_id, bank_name, account_type, balance FROM accounts WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, mapErr(err, "listing accounts")
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.BankName, &a.AccountType, &a.Balance); err != nil {
			return nil, mapErr(err, "scanning account")
		}
		accounts = append(accounts, a)
	}
	return accounts, mapErr(rows.Err(), "listing accounts")
}

func (q *queries) UpdateAccountBalance(ctx context.Context, id string, balance decimal.Decimal) error {
	res, err := q.db.ExecContext(ctx,
		`UPDATE accounts SET balance = $2 WHERE id = $1`, id, balance)
	if err != nil {
		return mapErr(err, "updating account balance")
	}
	return mustAffect(res, "updating account balance")
}

// DeleteAccount relies on ON DELETE CASCADE for the account's transactions.
func (q *queries) DeleteAccount(ctx context.Context, id string) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return mapErr(err, "deleting account")
	}
	return mustAffect(res, "deleting account")
}
