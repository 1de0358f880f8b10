package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/api/handlers"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/auth"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/logger"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/store/memory"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	authSvc := auth.NewService("test-secret", time.Hour)
	return handlers.NewRouter(memory.New(), authSvc, logger.NewWithWriter(io.Discard))
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
}

// registerAndLogin creates a user and returns a bearer token for it.
func registerAndLogin(t *testing.T, h http.Handler, email string) string {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/users/register", "", map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/users/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decode(t, rec, &resp)
	require.Equal(t, "bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

type accountOut struct {
	ID      string          `json:"id"`
	Balance decimal.Decimal `json:"balance"`
}

// createAccount opens an account with the given starting balance.
func createAccount(t *testing.T, h http.Handler, token, balance string) accountOut {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/api/accounts", token, map[string]interface{}{
		"bank_name":    "HDFC",
		"account_type": "savings",
		"balance":      balance,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var a accountOut
	decode(t, rec, &a)
	return a
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/users/register", "", map[string]string{
		"email": "dup@example.com", "password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/users/register", "", map[string]string{
		"email": "dup@example.com", "password": "other456",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already exists")
}

func TestLoginInvalidCredentials(t *testing.T) {
	h := newTestRouter(t)
	registerAndLogin(t, h, "alice@example.com")

	// Wrong password and unknown email look identical.
	rec := doJSON(t, h, http.MethodPost, "/users/login", "", map[string]string{
		"email": "alice@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/users/login", "", map[string]string{
		"email": "nobody@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodGet, "/api/accounts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/accounts", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccountLifecycle(t *testing.T) {
	h := newTestRouter(t)
	token := registerAndLogin(t, h, "alice@example.com")

	a := createAccount(t, h, token, "1000")

	rec := doJSON(t, h, http.MethodGet, "/api/accounts", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []accountOut
	decode(t, rec, &list)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)

	rec = doJSON(t, h, http.MethodDelete, "/api/accounts/"+a.ID, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/accounts", token, nil)
	decode(t, rec, &list)
	assert.Empty(t, list)
}

func TestAccountOwnership(t *testing.T) {
	h := newTestRouter(t)
	aliceToken := registerAndLogin(t, h, "alice@example.com")
	bobToken := registerAndLogin(t, h, "bob@example.com")

	a := createAccount(t, h, aliceToken, "1000")

	// Bob cannot delete or read Alice's account.
	rec := doJSON(t, h, http.MethodDelete, "/api/accounts/"+a.ID, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/transactions/"+a.ID, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostTransaction(t *testing.T) {
	h := newTestRouter(t)
	token := registerAndLogin(t, h, "alice@example.com")
	a := createAccount(t, h, token, "1000")

	rec := doJSON(t, h, http.MethodPost, "/api/categories", token, map[string]string{
		"name": "Food", "keywords": "starbucks, restaurant",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/transactions", token, map[string]interface{}{
		"account_id": a.ID,
		"amount":     "250",
		"txn_type":   "debit",
		"merchant":   "Starbucks",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var txn struct {
		Category string          `json:"category"`
		Currency string          `json:"currency"`
		Amount   decimal.Decimal `json:"amount"`
	}
	decode(t, rec, &txn)
	assert.Equal(t, "Food", txn.Category)
	assert.Equal(t, "INR", txn.Currency)

	// Balance reflects the debit.
	rec = doJSON(t, h, http.MethodGet, "/api/accounts", token, nil)
	var list []accountOut
	decode(t, rec, &list)
	require.Len(t, list, 1)
	assert.True(t, list[0].Balance.Equal(decimal.NewFromInt(750)),
		"balance = %s", list[0].Balance)
}

func TestPostTransactionValidation(t *testing.T) {
	h := newTestRouter(t)
	token := registerAndLogin(t, h, "alice@example.com")
	a := createAccount(t, h, token, "1000")

	rec := doJSON(t, h, http.MethodPost, "/api/transactions", token, map[string]interface{}{
		"account_id": a.ID, "amount": "50", "txn_type": "transfer",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/transactions", token, map[string]interface{}{
		"account_id": a.ID, "amount": "-50", "txn_type": "debit",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/transactions", token, map[string]interface{}{
		"account_id": "no-such-account", "amount": "50", "txn_type": "debit",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRewardsAccrueOnDebits(t *testing.T) {
	h := newTestRouter(t)
	token := registerAndLogin(t, h, "alice@example.com")
	a := createAccount(t, h, token, "1000")

	rec := doJSON(t, h, http.MethodGet, "/api/rewards", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rewards []struct {
		ProgramName   string `json:"program_name"`
		PointsBalance int64  `json:"points_balance"`
	}
	decode(t, rec, &rewards)
	assert.Empty(t, rewards, "no rewards before the first debit")

	rec = doJSON(t, h, http.MethodPost, "/api/transactions", token, map[string]interface{}{
		"account_id": a.ID, "amount": "350", "txn_type": "debit",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/rewards", token, nil)
	decode(t, rec, &rewards)
	require.Len(t, rewards, 1)
	assert.Equal(t, "Bank Rewards", rewards[0].ProgramName)
	assert.Equal(t, int64(3), rewards[0].PointsBalance)
}

func TestRecategorize(t *testing.T) {
	h := newTestRouter(t)
	token := registerAndLogin(t, h, "alice@example.com")
	a := createAccount(t, h, token, "1000")

	rec := doJSON(t, h, http.MethodPost, "/api/transactions", token, map[string]interface{}{
		"account_id": a.ID, "amount": "100", "txn_type": "debit",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var txn struct {
		ID       string `json:"id"`
		Category string `json:"category"`
	}
	decode(t, rec, &txn)
	require.Equal(t, "Uncategorized", txn.Category)

	path := fmt.Sprintf("/api/transactions/%s/%s/category", a.ID, txn.ID)
	rec = doJSON(t, h, http.MethodPut, path, token, map[string]string{"category": "Travel"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/transactions/"+a.ID, token, nil)
	var txns []struct {
		Category string `json:"category"`
	}
	decode(t, rec, &txns)
	require.Len(t, txns, 1)
	assert.Equal(t, "Travel", txns[0].Category)
}

func TestUploadCSV(t *testing.T) {
	h := newTestRouter(t)
	token := registerAndLogin(t, h, "alice@example.com")
	a := createAccount(t, h, token, "1000")

	csv := "account_id,amount,txn_type,description,merchant\n" +
		a.ID + ",100,debit,coffee,Starbucks\n" +
		a.ID + ",abc,debit,bad amount,\n" +
		a.ID + ",200,credit,salary,\n"

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "statement.csv")
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader(csv))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/transactions/upload-csv", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Created int `json:"created"`
	}
	decode(t, rec, &resp)
	assert.Equal(t, 2, resp.Created, "malformed row is skipped")

	// 1000 - 100 + 200
	recAcc := doJSON(t, h, http.MethodGet, "/api/accounts", token, nil)
	var list []accountOut
	decode(t, recAcc, &list)
	require.Len(t, list, 1)
	assert.True(t, list[0].Balance.Equal(decimal.NewFromInt(1100)),
		"balance = %s", list[0].Balance)
}

func TestBudgetProgress(t *testing.T) {
	h := newTestRouter(t)
	token := registerAndLogin(t, h, "alice@example.com")
	a := createAccount(t, h, token, "5000")

	rec := doJSON(t, h, http.MethodPost, "/api/categories", token, map[string]string{
		"name": "Food", "keywords": "restaurant",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	now := time.Now()
	rec = doJSON(t, h, http.MethodPost, "/api/budgets", token, map[string]interface{}{
		"month": int(now.Month()), "year": now.Year(),
		"category": "Food", "limit_amount": "500",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	for _, amount := range []string{"200", "400"} {
		rec = doJSON(t, h, http.MethodPost, "/api/transactions", token, map[string]interface{}{
			"account_id": a.ID, "amount": amount, "txn_type": "debit",
			"merchant": "Restaurant",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/budgets/progress", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var progress []struct {
		Category    string          `json:"category"`
		SpentAmount decimal.Decimal `json:"spent_amount"`
		Warning     string          `json:"warning"`
	}
	decode(t, rec, &progress)
	require.Len(t, progress, 1)
	assert.True(t, progress[0].SpentAmount.Equal(decimal.NewFromInt(600)),
		"spent = %s", progress[0].SpentAmount)
	assert.Equal(t, "exceeded", progress[0].Warning)
}

func TestBudgetDuplicateKey(t *testing.T) {
	h := newTestRouter(t)
	token := registerAndLogin(t, h, "alice@example.com")

	b := map[string]interface{}{
		"month": 6, "year": 2026, "category": "Food", "limit_amount": "500",
	}
	rec := doJSON(t, h, http.MethodPost, "/api/budgets", token, b)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/budgets", token, b)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBillStatusDerivation(t *testing.T) {
	h := newTestRouter(t)
	token := registerAndLogin(t, h, "alice@example.com")

	past := time.Now().AddDate(0, 0, -3).Format("2006-01-02")
	rec := doJSON(t, h, http.MethodPost, "/api/bills", token, map[string]interface{}{
		"biller_name": "Electric Co", "amount_due": "120", "due_date": past,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var bill struct {
		ID      string `json:"id"`
		Status  string `json:"status"`
		Overdue bool   `json:"overdue"`
	}
	decode(t, rec, &bill)
	assert.Equal(t, "overdue", bill.Status)
	assert.True(t, bill.Overdue)

	// Marking the bill paid clears the derived overdue state.
	rec = doJSON(t, h, http.MethodPut, "/api/bills/"+bill.ID, token, map[string]string{
		"status": "paid",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &bill)
	assert.Equal(t, "paid", bill.Status)
	assert.False(t, bill.Overdue)
}

func TestBillPartialUpdatesComposeAcrossRequests(t *testing.T) {
	h := newTestRouter(t)
	token := registerAndLogin(t, h, "alice@example.com")

	due := time.Now().AddDate(0, 0, 10).Format("2006-01-02")
	rec := doJSON(t, h, http.MethodPost, "/api/bills", token, map[string]interface{}{
		"biller_name": "Electric Co", "amount_due": "120", "due_date": due, "auto_pay": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var bill struct {
		ID string `json:"id"`
	}
	decode(t, rec, &bill)

	// Each request touches one field; none may clobber the others.
	rec = doJSON(t, h, http.MethodPut, "/api/bills/"+bill.ID, token, map[string]string{
		"amount_due": "135.50",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, h, http.MethodPut, "/api/bills/"+bill.ID, token, map[string]string{
		"status": "paid",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		BillerName string          `json:"biller_name"`
		AmountDue  decimal.Decimal `json:"amount_due"`
		DueDate    string          `json:"due_date"`
		Status     string          `json:"status"`
		AutoPay    bool            `json:"auto_pay"`
	}
	decode(t, rec, &out)
	assert.Equal(t, "Electric Co", out.BillerName)
	assert.True(t, out.AmountDue.Equal(decimal.RequireFromString("135.50")), "got %s", out.AmountDue)
	assert.Equal(t, due, out.DueDate)
	assert.Equal(t, "paid", out.Status)
	assert.True(t, out.AutoPay)
}

func TestBillUpdateRejectsUnknownStatus(t *testing.T) {
	h := newTestRouter(t)
	token := registerAndLogin(t, h, "alice@example.com")

	due := time.Now().AddDate(0, 0, 10).Format("2006-01-02")
	rec := doJSON(t, h, http.MethodPost, "/api/bills", token, map[string]interface{}{
		"biller_name": "Water Co", "amount_due": "40", "due_date": due,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var bill struct {
		ID string `json:"id"`
	}
	decode(t, rec, &bill)

	rec = doJSON(t, h, http.MethodPut, "/api/bills/"+bill.ID, token, map[string]string{
		"status": "cancelled",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthIsPublic(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}
