package postgres

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
)

func (q *queries) CreateBudget(ctx context.Context, b *domain.Budget) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO budgets (id, user_id, month, year, category, limit_amount, spent_amount)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID, b.UserID, b.Month, b.Year, b.Category, b.LimitAmount, b.SpentAmount)
	return mapErr(err, "creating budget")
}

func (q *queries) GetBudget(ctx context.Context, id string) (*domain.Budget, error) {
	b := &domain.Budget{}
	err := q.db.QueryRowContext(ctx,
		`SELECT id, user_id, month, year, category, limit_amount, spent_amount FROM budgets WHERE id = $1`, id).
		Scan(&b.ID, &b.UserID, &b.Month, &b.Year, &b.Category, &b.LimitAmount, &b.SpentAmount)
	if err != nil {
		return nil, mapErr(err, "getting budget")
	}
	return b, nil
}

func (q *queries) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, user_id, month, year, category, limit_amount, spent_amount
		 FROM budgets WHERE user_id = $1 ORDER BY year, month, category`, userID)
	if err != nil {
		return nil, mapErr(err, "listing budgets")
	}
	defer rows.Close()

	var budgets []domain.Budget
	for rows.Next() {
		var b domain.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Month, &b.Year, &b.Category, &b.LimitAmount, &b.SpentAmount); err != nil {
			return nil, mapErr(err, "scanning budget")
		}
		budgets = append(budgets, b)
	}
	return budgets, mapErr(rows.Err(), "listing budgets")
}

func (q *queries) UpdateBudgetSpent(ctx context.Context, id string, spent decimal.Decimal) error {
	res, err := q.db.ExecContext(ctx,
		`UPDATE budgets SET spent_amount = $2 WHERE id = $1`, id, spent)
	if err != nil {
		return mapErr(err, "updating budget spent amount")
	}
	return mustAffect(res, "updating budget spent amount")
}

func (q *queries) DeleteBudget(ctx context.Context, id string) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return mapErr(err, "deleting budget")
	}
	return mustAffect(res, "deleting budget")
}
