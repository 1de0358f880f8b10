package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/api/middleware"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/store"
)

// BillsHandler handles bill CRUD. Every response carries the derived
// display status and overdue flag.
type BillsHandler struct {
	store store.Store
	log   zerolog.Logger
	now   func() time.Time
}

// NewBillsHandler creates a bills handler.
func NewBillsHandler(st store.Store, log zerolog.Logger) *BillsHandler {
	return &BillsHandler{store: st, log: log, now: time.Now}
}

// Create handles POST /api/bills
func (h *BillsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BillerName string          `json:"biller_name"`
		AmountDue  decimal.Decimal `json:"amount_due"`
		DueDate    string          `json:"due_date"`
		AutoPay    bool            `json:"auto_pay"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.BillerName == "" {
		middleware.WriteError(w, http.StatusBadRequest, "biller_name is required")
		return
	}
	dueDate, err := time.Parse(dateOnly, req.DueDate)
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "due_date must be YYYY-MM-DD")
		return
	}

	bill := &domain.Bill{
		ID:         uuid.New().String(),
		UserID:     middleware.UserID(r.Context()),
		BillerName: req.BillerName,
		DueDate:    dueDate,
		AmountDue:  req.AmountDue,
		Status:     domain.BillUpcoming,
		AutoPay:    req.AutoPay,
		CreatedAt:  h.now(),
	}
	if err := h.store.CreateBill(r.Context(), bill); err != nil {
		h.log.Error().Err(err).Msg("Failed to create bill")
		middleware.WriteDomainError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, toBillResponse(*bill, h.now()))
}

// List handles GET /api/bills
func (h *BillsHandler) List(w http.ResponseWriter, r *http.Request) {
	userBills, err := h.store.ListBills(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list bills")
		middleware.WriteDomainError(w, err)
		return
	}

	today := h.now()
	out := make([]billResponse, len(userBills))
	for i, b := range userBills {
		out[i] = toBillResponse(b, today)
	}
	middleware.WriteJSON(w, http.StatusOK, out)
}

// Update handles PUT /api/bills/{id}: partial field updates, including
// marking the bill paid.
func (h *BillsHandler) Update(w http.ResponseWriter, r *http.Request, billID string) {
	var req struct {
		BillerName *string          `json:"biller_name"`
		AmountDue  *decimal.Decimal `json:"amount_due"`
		DueDate    *string          `json:"due_date"`
		Status     *string          `json:"status"`
		AutoPay    *bool            `json:"auto_pay"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Validate before touching the store so the transaction below only
	// fails for store reasons.
	var dueDate time.Time
	if req.DueDate != nil {
		var err error
		dueDate, err = time.Parse(dateOnly, *req.DueDate)
		if err != nil {
			middleware.WriteError(w, http.StatusBadRequest, "due_date must be YYYY-MM-DD")
			return
		}
	}
	var status domain.BillStatus
	if req.Status != nil {
		var ok bool
		status, ok = domain.NormalizeBillStatus(*req.Status)
		if !ok {
			middleware.WriteError(w, http.StatusBadRequest, "status must be 'upcoming', 'paid' or 'overdue'")
			return
		}
	}

	ctx := r.Context()

	// Fetch and rewrite in one unit of work so two concurrent partial
	// updates cannot lose each other's fields.
	var bill *domain.Bill
	err := h.store.Atomically(ctx, func(tx store.Tx) error {
		var err error
		bill, err = h.ownedBill(ctx, tx, billID)
		if err != nil {
			return err
		}

		if req.BillerName != nil {
			bill.BillerName = *req.BillerName
		}
		if req.AmountDue != nil {
			bill.AmountDue = *req.AmountDue
		}
		if req.DueDate != nil {
			bill.DueDate = dueDate
		}
		if req.Status != nil {
			bill.Status = status
		}
		if req.AutoPay != nil {
			bill.AutoPay = *req.AutoPay
		}

		return tx.UpdateBill(ctx, bill)
	})
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to update bill")
		middleware.WriteDomainError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, toBillResponse(*bill, h.now()))
}

// Delete handles DELETE /api/bills/{id}
func (h *BillsHandler) Delete(w http.ResponseWriter, r *http.Request, billID string) {
	ctx := r.Context()
	err := h.store.Atomically(ctx, func(tx store.Tx) error {
		if _, err := h.ownedBill(ctx, tx, billID); err != nil {
			return err
		}
		return tx.DeleteBill(ctx, billID)
	})
	if err != nil {
		middleware.WriteDomainError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]string{"message": "Bill deleted successfully"})
}

// ownedBill fetches a bill and enforces ownership.
func (h *BillsHandler) ownedBill(ctx context.Context, tx store.Tx, billID string) (*domain.Bill, error) {
	bill, err := tx.GetBill(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill.UserID != middleware.UserID(ctx) {
		return nil, fmt.Errorf("bill %s: %w", billID, domain.ErrNotFound)
	}
	return bill, nil
}
