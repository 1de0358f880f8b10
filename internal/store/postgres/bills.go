package postgres

import (
	"context"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
)

func (q *queries) CreateBill(ctx context.Context, b *domain.Bill) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO bills (id, user_id, biller_name, due_date, amount_due, status, auto_pay, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID, b.UserID, b.BillerName, b.DueDate, b.AmountDue, b.Status, b.AutoPay, b.CreatedAt)
	return mapErr(err, "creating bill")
}

func (q *queries) GetBill(ctx context.Context, id string) (*domain.Bill, error) {
	b := &domain.Bill{}
	err := q.db.QueryRowContext(ctx,
		`SELECT id, user_id, biller_name, due_date, amount_due, status, auto_pay, created_at
		 FROM bills WHERE id = $1`, id).
		Scan(&b.ID, &b.UserID, &b.BillerName, &b.DueDate, &b.AmountDue, &b.Status, &b.AutoPay, &b.CreatedAt)
	if err != nil {
		return nil, mapErr(err, "getting bill")
	}
	return b, nil
}

func (q *queries) ListBills(ctx context.Context, userID string) ([]domain.Bill, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, user_id, biller_name, due_date, amount_due, status, auto_pay, created_at
		 FROM bills WHERE user_id = $1 ORDER BY due_date, id`, userID)
	if err != nil {
		return nil, mapErr(err, "listing bills")
	}
	defer rows.Close()

	var bills []domain.Bill
	for rows.Next() {
		var b domain.Bill
		if err := rows.Scan(&b.ID, &b.UserID, &b.BillerName, &b.DueDate, &b.AmountDue,
			&b.Status, &b.AutoPay, &b.CreatedAt); err != nil {
			return nil, mapErr(err, "scanning bill")
		}
		bills = append(bills, b)
	}
	return bills, mapErr(rows.Err(), "listing bills")
}

func (q *queries) UpdateBill(ctx context.Context, b *domain.Bill) error {
	res, err := q.db.ExecContext(ctx,
		`UPDATE bills SET biller_name = $2, due_date = $3, amount_due = $4, status = $5, auto_pay = $6
		 WHERE id = $1`,
		b.ID, b.BillerName, b.DueDate, b.AmountDue, b.Status, b.AutoPay)
	if err != nil {
		return mapErr(err, "updating bill")
	}
	return mustAffect(res, "updating bill")
}

func (q *queries) DeleteBill(ctx context.Context, id string) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		return mapErr(err, "deleting bill")
	}
	return mustAffect(res, "deleting bill")
}
