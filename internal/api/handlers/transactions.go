package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/api/middleware"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/ledger"
)

// maxUploadBytes caps bulk import files.
const maxUploadBytes = 10 << 20

// TransactionsHandler handles posting, listing and bulk import.
type TransactionsHandler struct {
	poster *ledger.Poster
	log    zerolog.Logger
}

// NewTransactionsHandler creates a transactions handler.
func NewTransactionsHandler(poster *ledger.Poster, log zerolog.Logger) *TransactionsHandler {
	return &TransactionsHandler{poster: poster, log: log}
}

// Create handles POST /api/transactions
func (h *TransactionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AccountID   string          `json:"account_id"`
		Amount      decimal.Decimal `json:"amount"`
		TxnType     string          `json:"txn_type"`
		Description string          `json:"description"`
		Merchant    string          `json:"merchant"`
		Currency    string          `json:"currency"`
		TxnDate     *time.Time      `json:"txn_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := ledger.PostParams{
		AccountID:   req.AccountID,
		Amount:      req.Amount,
		TxnType:     req.TxnType,
		Description: req.Description,
		Merchant:    req.Merchant,
		Currency:    req.Currency,
	}
	if req.TxnDate != nil {
		params.TxnDate = *req.TxnDate
	}

	txn, err := h.poster.Post(r.Context(), middleware.UserID(r.Context()), params)
	if err != nil {
		middleware.WriteDomainError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, toTransactionResponse(*txn))
}

// List handles GET /api/transactions/{account_id}
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request, accountID string) {
	txns, err := h.poster.ListForAccount(r.Context(), middleware.UserID(r.Context()), accountID)
	if err != nil {
		middleware.WriteDomainError(w, err)
		return
	}

	out := make([]transactionResponse, len(txns))
	for i, t := range txns {
		out[i] = toTransactionResponse(t)
	}
	middleware.WriteJSON(w, http.StatusOK, out)
}

// UploadCSV handles POST /api/transactions/upload-csv
func (h *TransactionsHandler) UploadCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "A 'file' upload is required")
		return
	}
	defer file.Close()

	created, err := h.poster.ImportCSV(r.Context(), middleware.UserID(r.Context()), header.Filename, file)
	if err != nil {
		middleware.WriteDomainError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("%d transactions uploaded successfully", created),
		"created": created,
	})
}

// Recategorize handles PUT /api/transactions/{account_id}/{txn_id}/category
func (h *TransactionsHandler) Recategorize(w http.ResponseWriter, r *http.Request, accountID, txnID string) {
	var req struct {
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Category == "" {
		middleware.WriteError(w, http.StatusBadRequest, "A category is required")
		return
	}

	err := h.poster.Recategorize(r.Context(), middleware.UserID(r.Context()), accountID, txnID, req.Category)
	if err != nil {
		middleware.WriteDomainError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]string{"message": "Category updated"})
}
