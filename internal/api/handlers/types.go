package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/bills"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/budget"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
)

// Response shapes. Amounts serialize as decimal strings.

type accountResponse struct {
	ID          string          `json:"id"`
	BankName    string          `json:"bank_name"`
	AccountType string          `json:"account_type"`
	Balance     decimal.Decimal `json:"balance"`
}

func toAccountResponse(a domain.Account) accountResponse {
	return accountResponse{
		ID:          a.ID,
		BankName:    a.BankName,
		AccountType: a.AccountType,
		Balance:     a.Balance,
	}
}

type transactionResponse struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	Amount      decimal.Decimal `json:"amount"`
	TxnType     string          `json:"txn_type"`
	Description string          `json:"description"`
	Merchant    string          `json:"merchant,omitempty"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category"`
	TxnDate     time.Time       `json:"txn_date"`
}

func toTransactionResponse(t domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:          t.ID,
		AccountID:   t.AccountID,
		Amount:      t.Amount,
		TxnType:     string(t.TxnType),
		Description: t.Description,
		Merchant:    t.Merchant,
		Currency:    t.Currency,
		Category:    t.Category,
		TxnDate:     t.TxnDate,
	}
}

type categoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Keywords string `json:"keywords"`
}

type budgetResponse struct {
	ID          string          `json:"id"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Category    string          `json:"category"`
	LimitAmount decimal.Decimal `json:"limit_amount"`
	SpentAmount decimal.Decimal `json:"spent_amount"`
	Warning     string          `json:"warning,omitempty"`
}

func toBudgetResponse(b domain.Budget, warning string) budgetResponse {
	return budgetResponse{
		ID:          b.ID,
		Month:       b.Month,
		Year:        b.Year,
		Category:    b.Category,
		LimitAmount: b.LimitAmount,
		SpentAmount: b.SpentAmount,
		Warning:     warning,
	}
}

func toProgressResponses(results []budget.Progress) []budgetResponse {
	out := make([]budgetResponse, len(results))
	for i, p := range results {
		out[i] = toBudgetResponse(p.Budget, p.Warning)
	}
	return out
}

// dateOnly marshals a due date as YYYY-MM-DD.
const dateOnly = "2006-01-02"

type billResponse struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	BillerName string          `json:"biller_name"`
	DueDate    string          `json:"due_date"`
	AmountDue  decimal.Decimal `json:"amount_due"`
	Status     string          `json:"status"`
	AutoPay    bool            `json:"auto_pay"`
	Overdue    bool            `json:"overdue"`
	CreatedAt  time.Time       `json:"created_at"`
}

// toBillResponse attaches the derived display status; the stored status
// is never exposed raw.
func toBillResponse(b domain.Bill, today time.Time) billResponse {
	display := bills.Derive(b, today)
	return billResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		BillerName: b.BillerName,
		DueDate:    b.DueDate.Format(dateOnly),
		AmountDue:  b.AmountDue,
		Status:     string(display.Status),
		AutoPay:    b.AutoPay,
		Overdue:    display.Overdue,
		CreatedAt:  b.CreatedAt,
	}
}

type rewardResponse struct {
	ID            string    `json:"id"`
	ProgramName   string    `json:"program_name"`
	PointsBalance int64     `json:"points_balance"`
	LastUpdated   time.Time `json:"last_updated"`
}

func toRewardResponse(r domain.Reward) rewardResponse {
	return rewardResponse{
		ID:            r.ID,
		ProgramName:   r.ProgramName,
		PointsBalance: r.PointsBalance,
		LastUpdated:   r.LastUpdated,
	}
}
