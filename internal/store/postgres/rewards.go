package postgres

import (
	"context"
	"time"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
)

func (q *queries) EnsureReward(ctx context.Context, r *domain.Reward) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO rewards (id, user_id, program_name, points_balance, last_updated)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, program_name) DO NOTHING`,
		r.ID, r.UserID, r.ProgramName, r.PointsBalance, r.LastUpdated)
	return mapErr(err, "ensuring reward")
}

// GetRewardForUpdate takes a row lock; callers must be inside Atomically.
func (q *queries) GetRewardForUpdate(ctx context.Context, userID, program string) (*domain.Reward, error) {
	r := &domain.Reward{}
	err := q.db.QueryRowContext(ctx,
		`SELECT id, user_id, program_name, points_balance, last_updated
		 FROM rewards WHERE user_id = $1 AND program_name = $2 FOR UPDATE`,
		userID, program).
		Scan(&r.ID, &r.UserID, &r.ProgramName, &r.PointsBalance, &r.LastUpdated)
	if err != nil {
		return nil, mapErr(err, "getting reward")
	}
	return r, nil
}

func (q *queries) UpdateRewardPoints(ctx context.Context, id string, points int64, at time.Time) error {
	res, err := q.db.ExecContext(ctx,
		`UPDATE rewards SET points_balance = $2, last_updated = $3 WHERE id = $1`,
		id, points, at)
	if err != nil {
		return mapErr(err, "updating reward points")
	}
	return mustAffect(res, "updating reward points")
}

func (q *queries) ListRewards(ctx context.Context, userID string) ([]domain.Reward, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, user_id, program_name, points_balance, last_updated
		 FROM rewards WHERE user_id = $1 ORDER BY program_name`, userID)
	if err != nil {
		return nil, mapErr(err, "listing rewards")
	}
	defer rows.Close()

	var rewards []domain.Reward
	for rows.Next() {
		var r domain.Reward
		if err := rows.Scan(&r.ID, &r.UserID, &r.ProgramName, &r.PointsBalance, &r.LastUpdated); err != nil {
			return nil, mapErr(err, "scanning reward")
		}
		rewards = append(rewards, r)
	}
	return rewards, mapErr(rows.Err(), "listing rewards")
}
