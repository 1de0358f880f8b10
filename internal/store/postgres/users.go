package postgres

import (
	"context"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
)

func (q *queries) CreateUser(ctx context.Context, u *domain.User) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, phone) VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Phone)
	return mapErr(err, "creating user")
}

func (q *queries) GetUser(ctx context.Context, id string) (*domain.User, error) {
	u := &domain.User{}
	err := q.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, phone FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone)
	if err != nil {
		return nil, mapErr(err, "getting user")
	}
	return u, nil
}

func (q *queries) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	err := q.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, phone FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone)
	if err != nil {
		return nil, mapErr(err, "getting user by email")
	}
	return u, nil
}

// DeleteUser relies on ON DELETE CASCADE for accounts (and through them
// transactions), budgets, bills and rewards.
func (q *queries) DeleteUser(ctx context.Context, id string) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapErr(err, "deleting user")
	}
	return mustAffect(res, "deleting user")
}
