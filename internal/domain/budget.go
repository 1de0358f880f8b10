package domain

import "github.com/shopspring/decimal"

// Budget is a per-user spending limit for one (category, month, year).
// SpentAmount is derived: it is recomputed by the progress engine and is
// not authoritative between recomputations.
type Budget struct {
	ID          string
	UserID      string
	Month       int
	Year        int
	Category    string
	LimitAmount decimal.Decimal
	SpentAmount decimal.Decimal
}
