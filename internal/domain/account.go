package domain

import "github.com/shopspring/decimal"

// Account is a bank account belonging to one user.
//
// Balance is a cached aggregate: it always equals the signed sum of the
// account's transactions applied since creation (credits add, debits
// subtract). Only the ledger poster mutates it, and only inside the same
// store transaction that records the transaction row.
type Account struct {
	ID          string
	UserID      string
	BankName    string
	AccountType string
	Balance     decimal.Decimal
}
