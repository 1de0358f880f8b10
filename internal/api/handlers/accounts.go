package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/api/middleware"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/store"
)

// AccountsHandler handles account CRUD for the authenticated user.
type AccountsHandler struct {
	store store.Store
	log   zerolog.Logger
}

// NewAccountsHandler creates an accounts handler.
func NewAccountsHandler(st store.Store, log zerolog.Logger) *AccountsHandler {
	return &AccountsHandler{store: st, log: log}
}

// Create handles POST /api/accounts
func (h *AccountsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BankName    string          `json:"bank_name"`
		AccountType string          `json:"account_type"`
		Balance     decimal.Decimal `json:"balance"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.BankName == "" || req.AccountType == "" {
		middleware.WriteError(w, http.StatusBadRequest, "bank_name and account_type are required")
		return
	}

	account := &domain.Account{
		ID:          uuid.New().String(),
		UserID:      middleware.UserID(r.Context()),
		BankName:    req.BankName,
		AccountType: req.AccountType,
		Balance:     req.Balance,
	}
	if err := h.store.CreateAccount(r.Context(), account); err != nil {
		h.log.Error().Err(err).Msg("Failed to create account")
		middleware.WriteDomainError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, toAccountResponse(*account))
}

// List handles GET /api/accounts
func (h *AccountsHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.store.ListAccounts(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list accounts")
		middleware.WriteDomainError(w, err)
		return
	}

	out := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = toAccountResponse(a)
	}
	middleware.WriteJSON(w, http.StatusOK, out)
}

// Delete handles DELETE /api/accounts/{id}. The account's transactions
// are deleted with it.
func (h *AccountsHandler) Delete(w http.ResponseWriter, r *http.Request, accountID string) {
	ctx := r.Context()
	userID := middleware.UserID(ctx)

	account, err := h.store.GetAccount(ctx, accountID)
	if err != nil {
		middleware.WriteDomainError(w, err)
		return
	}
	if account.UserID != userID {
		middleware.WriteDomainError(w, fmt.Errorf("account %s: %w", accountID, domain.ErrNotFound))
		return
	}

	if err := h.store.DeleteAccount(ctx, accountID); err != nil {
		h.log.Error().Err(err).Msg("Failed to delete account")
		middleware.WriteDomainError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]string{"message": "Account deleted"})
}
