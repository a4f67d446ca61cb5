package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/refresh", h.refresh)
	})

	// routes behind the access-token check
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		r.Route("/api/expenses", func(r chi.Router) {
			r.Post("/", h.createExpense)
			r.Get("/", h.listExpenses)
			r.Post("/bulk", h.bulkCreateExpenses)
			r.Get("/by-category", h.expensesByCategory)
			r.Get("/{id}", h.getExpenseByID)
			r.Put("/{id}", h.updateExpense)
			r.Delete("/{id}", h.deleteExpense)
		})
	})

	return router
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, "Expense Tracker API is running", nil)
}
