package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/api/middleware"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/auth"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/store"
)

// UsersHandler handles registration and login.
type UsersHandler struct {
	store store.Store
	auth  *auth.Service
	log   zerolog.Logger
}

// NewUsersHandler creates a users handler.
func NewUsersHandler(st store.Store, authSvc *auth.Service, log zerolog.Logger) *UsersHandler {
	return &UsersHandler{store: st, auth: authSvc, log: log}
}

// Register handles POST /users/register
func (h *UsersHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		middleware.WriteError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to hash password")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
	}
	if err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			middleware.WriteError(w, http.StatusBadRequest, "Email already exists")
			return
		}
		h.log.Error().Err(err).Msg("Failed to create user")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	h.log.Info().Str("user_id", user.ID).Msg("User registered")
	middleware.WriteJSON(w, http.StatusCreated, map[string]string{"message": "User registered"})
}

// Login handles POST /users/login
func (h *UsersHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil || !auth.VerifyPassword(req.Password, user.PasswordHash) {
		// Same response for unknown email and wrong password.
		middleware.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.auth.IssueToken(user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to issue token")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}
