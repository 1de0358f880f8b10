package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/api/middleware"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/auth"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/budget"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/ledger"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/store"
)

// NewRouter wires every endpoint and the middleware chain. Routes under
// /api require a bearer token; /users/* and /health are public.
func NewRouter(st store.Store, authSvc *auth.Service, log zerolog.Logger) http.Handler {
	poster := ledger.NewPoster(st, log)
	engine := budget.NewEngine(st, log)

	usersHandler := NewUsersHandler(st, authSvc, log)
	accountsHandler := NewAccountsHandler(st, log)
	transactionsHandler := NewTransactionsHandler(poster, log)
	categoriesHandler := NewCategoriesHandler(st, log)
	budgetsHandler := NewBudgetsHandler(st, engine, log)
	billsHandler := NewBillsHandler(st, log)
	rewardsHandler := NewRewardsHandler(st, log)

	api := http.NewServeMux()

	api.HandleFunc("/api/accounts", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			accountsHandler.List(w, r)
		case http.MethodPost:
			accountsHandler.Create(w, r)
		default:
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	api.HandleFunc("/api/accounts/", func(w http.ResponseWriter, r *http.Request) {
		accountID := strings.TrimPrefix(r.URL.Path, "/api/accounts/")
		if accountID == "" {
			middleware.WriteError(w, http.StatusBadRequest, "Account ID is required")
			return
		}
		if r.Method != http.MethodDelete {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		accountsHandler.Delete(w, r, accountID)
	})

	api.HandleFunc("/api/transactions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			transactionsHandler.Create(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	api.HandleFunc("/api/transactions/upload-csv", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			transactionsHandler.UploadCSV(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	api.HandleFunc("/api/transactions/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/transactions/")
		parts := strings.Split(strings.Trim(rest, "/"), "/")

		switch {
		case len(parts) == 1 && parts[0] != "" && r.Method == http.MethodGet:
			transactionsHandler.List(w, r, parts[0])
		case len(parts) == 3 && parts[2] == "category" && r.Method == http.MethodPut:
			transactionsHandler.Recategorize(w, r, parts[0], parts[1])
		default:
			middleware.WriteError(w, http.StatusNotFound, "Not found")
		}
	})

	api.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			categoriesHandler.List(w, r)
		case http.MethodPost:
			categoriesHandler.Create(w, r)
		default:
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	api.HandleFunc("/api/budgets", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			budgetsHandler.List(w, r)
		case http.MethodPost:
			budgetsHandler.Create(w, r)
		default:
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	api.HandleFunc("/api/budgets/progress", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			budgetsHandler.Progress(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	api.HandleFunc("/api/budgets/", func(w http.ResponseWriter, r *http.Request) {
		budgetID := strings.TrimPrefix(r.URL.Path, "/api/budgets/")
		if budgetID == "progress" || budgetID == "" {
			middleware.WriteError(w, http.StatusNotFound, "Not found")
			return
		}
		if r.Method != http.MethodDelete {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		budgetsHandler.Delete(w, r, budgetID)
	})

	api.HandleFunc("/api/bills", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			billsHandler.List(w, r)
		case http.MethodPost:
			billsHandler.Create(w, r)
		default:
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	api.HandleFunc("/api/bills/", func(w http.ResponseWriter, r *http.Request) {
		billID := strings.TrimPrefix(r.URL.Path, "/api/bills/")
		if billID == "" {
			middleware.WriteError(w, http.StatusBadRequest, "Bill ID is required")
			return
		}
		switch r.Method {
		case http.MethodPut:
			billsHandler.Update(w, r, billID)
		case http.MethodDelete:
			billsHandler.Delete(w, r, billID)
		default:
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	api.HandleFunc("/api/rewards", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			rewardsHandler.List(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux := http.NewServeMux()
	mux.Handle("/api/", middleware.Auth(authSvc)(api))

	mux.HandleFunc("/users/register", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			usersHandler.Register(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/users/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			usersHandler.Login(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				middleware.CORS(mux),
			),
		),
	)
}
