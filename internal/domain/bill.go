package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus is a bill's persisted lifecycle state. Only upcoming and
// paid are ever stored; "overdue" exists purely as a display value
// derived from the due date (see the bills package).
type BillStatus string

const (
	BillUpcoming BillStatus = "upcoming"
	BillPaid     BillStatus = "paid"
	BillOverdue  BillStatus = "overdue" // derived only, never persisted
)

// NormalizeBillStatus maps a caller-supplied status to a storable one.
// "overdue" collapses to upcoming: the derivation would overwrite it on
// the next read anyway, so storing it would just be dead state.
func NormalizeBillStatus(raw string) (BillStatus, bool) {
	switch BillStatus(raw) {
	case BillPaid:
		return BillPaid, true
	case BillUpcoming, BillOverdue:
		return BillUpcoming, true
	}
	return "", false
}

// Bill is a payable owned by one user.
type Bill struct {
	ID         string
	UserID     string
	BillerName string
	DueDate    time.Time // date precision; time-of-day ignored
	AmountDue  decimal.Decimal
	Status     BillStatus
	AutoPay    bool
	CreatedAt  time.Time
}
