// Package bills derives a bill's display status from its persisted
// state and due date. The derivation is pure and never written back;
// only explicit updates change the stored status.
package bills

import (
	"time"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
)

// Display is the presentation view of a bill's status.
type Display struct {
	Status  domain.BillStatus
	Overdue bool
}

// Derive computes the display status as of today:
//   - stored paid stays paid whatever the date
//   - an open bill past its due date shows overdue
//   - otherwise upcoming
//
// Comparison is at date precision; a bill is not overdue on its due
// date itself.
func Derive(b domain.Bill, today time.Time) Display {
	if b.Status == domain.BillPaid {
		return Display{Status: domain.BillPaid}
	}
	if truncateToDay(today).After(truncateToDay(b.DueDate)) {
		return Display{Status: domain.BillOverdue, Overdue: true}
	}
	return Display{Status: domain.BillUpcoming}
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
