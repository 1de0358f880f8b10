package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TxnType is the direction of a transaction relative to the account.
type TxnType string

const (
	TxnCredit TxnType = "credit"
	TxnDebit  TxnType = "debit"
)

// ParseTxnType normalizes a raw direction string. The zero TxnType and
// false are returned for anything outside {credit, debit}.
func ParseTxnType(raw string) (TxnType, bool) {
	switch TxnType(strings.ToLower(strings.TrimSpace(raw))) {
	case TxnCredit:
		return TxnCredit, true
	case TxnDebit:
		return TxnDebit, true
	}
	return "", false
}

// DefaultCurrency is applied when a transaction arrives without one.
const DefaultCurrency = "INR"

// Transaction is one posted movement on an account. Rows are immutable
// once written except for Category, which may be corrected manually.
type Transaction struct {
	ID          string
	AccountID   string
	Amount      decimal.Decimal // always non-negative; TxnType carries the sign
	TxnType     TxnType
	Description string
	Merchant    string
	Currency    string
	Category    string
	TxnDate     time.Time
}

// Signed returns the amount with the direction applied: positive for
// credits, negative for debits.
func (t Transaction) Signed() decimal.Decimal {
	if t.TxnType == TxnDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}
