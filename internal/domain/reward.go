package domain

import "time"

// RewardProgram is the single loyalty program modeled.
const RewardProgram = "Bank Rewards"

// Reward is a user's points balance in one program. One row per
// (user, program), created lazily on the first qualifying debit.
type Reward struct {
	ID            string
	UserID        string
	ProgramName   string
	PointsBalance int64
	LastUpdated   time.Time
}
