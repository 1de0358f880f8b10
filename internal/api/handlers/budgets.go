package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/api/middleware"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/budget"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/store"
)

// BudgetsHandler handles budget CRUD and progress.
type BudgetsHandler struct {
	store  store.Store
	engine *budget.Engine
	log    zerolog.Logger
}

// NewBudgetsHandler creates a budgets handler.
func NewBudgetsHandler(st store.Store, engine *budget.Engine, log zerolog.Logger) *BudgetsHandler {
	return &BudgetsHandler{store: st, engine: engine, log: log}
}

// Create handles POST /api/budgets
func (h *BudgetsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Month       int             `json:"month"`
		Year        int             `json:"year"`
		Category    string          `json:"category"`
		LimitAmount decimal.Decimal `json:"limit_amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Month < 1 || req.Month > 12 {
		middleware.WriteError(w, http.StatusBadRequest, "month must be between 1 and 12")
		return
	}
	if req.Category == "" || req.Year == 0 {
		middleware.WriteError(w, http.StatusBadRequest, "category and year are required")
		return
	}

	b := &domain.Budget{
		ID:          uuid.New().String(),
		UserID:      middleware.UserID(r.Context()),
		Month:       req.Month,
		Year:        req.Year,
		Category:    req.Category,
		LimitAmount: req.LimitAmount,
		SpentAmount: decimal.Zero,
	}
	if err := h.store.CreateBudget(r.Context(), b); err != nil {
		middleware.WriteDomainError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, toBudgetResponse(*b, ""))
}

// List handles GET /api/budgets. Spent amounts are the last computed
// values; GET /api/budgets/progress refreshes them.
func (h *BudgetsHandler) List(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.store.ListBudgets(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list budgets")
		middleware.WriteDomainError(w, err)
		return
	}

	out := make([]budgetResponse, len(budgets))
	for i, b := range budgets {
		out[i] = toBudgetResponse(b, "")
	}
	middleware.WriteJSON(w, http.StatusOK, out)
}

// Progress handles GET /api/budgets/progress: recompute, persist and
// return every budget with its warning.
func (h *BudgetsHandler) Progress(w http.ResponseWriter, r *http.Request) {
	results, err := h.engine.Recompute(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to recompute budget progress")
		middleware.WriteDomainError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, toProgressResponses(results))
}

// Delete handles DELETE /api/budgets/{id}
func (h *BudgetsHandler) Delete(w http.ResponseWriter, r *http.Request, budgetID string) {
	ctx := r.Context()

	b, err := h.store.GetBudget(ctx, budgetID)
	if err != nil {
		middleware.WriteDomainError(w, err)
		return
	}
	if b.UserID != middleware.UserID(ctx) {
		middleware.WriteDomainError(w, fmt.Errorf("budget %s: %w", budgetID, domain.ErrNotFound))
		return
	}

	if err := h.store.DeleteBudget(ctx, budgetID); err != nil {
		middleware.WriteDomainError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]string{"message": "Budget deleted successfully"})
}
