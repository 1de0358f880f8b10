package postgres

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
)

func (q *queries) CreateTransaction(ctx context.Context, t *domain.Transaction) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO transactions (id, account_id, amount, txn_type, description, merchant, currency, category, txn_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID, t.AccountID, t.Amount, t.TxnType, t.Description, t.Merchant, t.Currency, t.Category, t.TxnDate)
	return mapErr(err, "creating transaction")
}

func (q *queries) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, account_id, amount, txn_type, description, merchant, currency, category, txn_date
		 FROM transactions WHERE account_id = $1 ORDER BY txn_date, id`, accountID)
	if err != nil {
		return nil, mapErr(err, "listing transactions")
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.AccountID, &t.Amount, &t.TxnType, &t.Description,
			&t.Merchant, &t.Currency, &t.Category, &t.TxnDate); err != nil {
			return nil, mapErr(err, "scanning transaction")
		}
		txns = append(txns, t)
	}
	return txns, mapErr(rows.Err(), "listing transactions")
}

func (q *queries) UpdateTransactionCategory(ctx context.Context, id, category string) error {
	res, err := q.db.ExecContext(ctx,
		`UPDATE transactions SET category = $2 WHERE id = $1`, id, category)
	if err != nil {
		return mapErr(err, "updating transaction category")
	}
	return mustAffect(res, "updating transaction category")
}

// SumDebits joins through the user's own accounts so one user's budgets
// never see another user's spending.
func (q *queries) SumDebits(ctx context.Context, userID, category string, month, year int) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := q.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(t.amount), 0)
		 FROM transactions t
		 JOIN accounts a ON a.id = t.account_id
		 WHERE a.user_id = $1
		   AND t.txn_type = 'debit'
		   AND t.category = $2
		   AND EXTRACT(MONTH FROM t.txn_date) = $3
		   AND EXTRACT(YEAR FROM t.txn_date) = $4`,
		userID, category, month, year).Scan(&sum)
	if err != nil {
		return decimal.Zero, mapErr(err, "summing debits")
	}
	return sum, nil
}
