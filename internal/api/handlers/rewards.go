package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/api/middleware"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/store"
)

// RewardsHandler exposes the user's reward balances.
type RewardsHandler struct {
	store store.Store
	log   zerolog.Logger
}

// NewRewardsHandler creates a rewards handler.
func NewRewardsHandler(st store.Store, log zerolog.Logger) *RewardsHandler {
	return &RewardsHandler{store: st, log: log}
}

// List handles GET /api/rewards. The list is empty until the first
// qualifying debit creates a record.
func (h *RewardsHandler) List(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.store.ListRewards(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list rewards")
		middleware.WriteDomainError(w, err)
		return
	}

	out := make([]rewardResponse, len(rewards))
	for i, rw := range rewards {
		out[i] = toRewardResponse(rw)
	}
	middleware.WriteJSON(w, http.StatusOK, out)
}
