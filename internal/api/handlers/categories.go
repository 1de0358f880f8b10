package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/api/middleware"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/store"
)

// CategoriesHandler manages the matcher's reference data.
type CategoriesHandler struct {
	store store.Store
	log   zerolog.Logger
}

// NewCategoriesHandler creates a categories handler.
func NewCategoriesHandler(st store.Store, log zerolog.Logger) *CategoriesHandler {
	return &CategoriesHandler{store: st, log: log}
}

// List handles GET /api/categories
func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.ListCategories(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list categories")
		middleware.WriteDomainError(w, err)
		return
	}

	out := make([]categoryResponse, len(categories))
	for i, c := range categories {
		out[i] = categoryResponse{ID: c.ID, Name: c.Name, Keywords: c.Keywords}
	}
	middleware.WriteJSON(w, http.StatusOK, out)
}

// Create handles POST /api/categories
func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Keywords string `json:"keywords"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		middleware.WriteError(w, http.StatusBadRequest, "A name is required")
		return
	}

	c := &domain.Category{ID: uuid.New().String(), Name: req.Name, Keywords: req.Keywords}
	if err := h.store.CreateCategory(r.Context(), c); err != nil {
		middleware.WriteDomainError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, categoryResponse{ID: c.ID, Name: c.Name, Keywords: c.Keywords})
}
