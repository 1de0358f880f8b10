package postgres

import (
	"context"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
)

func (q *queries) CreateCategory(ctx context.Context, c *domain.Category) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, keywords) VALUES ($1, $2, $3)`,
		c.ID, c.Name, c.Keywords)
	return mapErr(err, "creating category")
}

func (q *queries) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, name, keywords FROM categories ORDER BY name`)
	if err != nil {
		return nil, mapErr(err, "listing categories")
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Keywords); err != nil {
			return nil, mapErr(err, "scanning category")
		}
		categories = append(categories, c)
	}
	return categories, mapErr(rows.Err(), "listing categories")
}
