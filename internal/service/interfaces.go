package service

import (
	"context"

	"github.com/MKhiriev/go-expense-tracker/models"
)

type AuthService interface {
	// Register creates an account from already-validated signup data and
	// issues its first token pair.
	Register(ctx context.Context, user models.User, password string) (models.User, models.TokenPair, error)

	// Login verifies credentials and issues a fresh token pair. Any failure
	// surfaces as ErrInvalidCredentials regardless of whether the email or
	// the password was wrong.
	Login(ctx context.Context, email, password string) (models.User, models.TokenPair, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)

	// ParseAccessToken validates an access token and returns its decoded form.
	ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error)

	// GetUserByID loads the account behind an authenticated request.
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
}

type ExpenseService interface {
	CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)
	BulkCreateExpenses(ctx context.Context, expenses []models.Expense) ([]models.Expense, error)

	ListExpenses(ctx context.Context, filter models.ExpenseFilter) ([]models.Expense, models.Pagination, error)
	GetExpenseByID(ctx context.Context, userID int64, expenseID string) (models.Expense, error)

	UpdateExpense(ctx context.Context, userID int64, expenseID string, changes models.ExpenseChanges) (models.Expense, error)
	DeleteExpense(ctx context.Context, userID int64, expenseID string) error

	CategoryReport(ctx context.Context, filter models.ExpenseFilter) (models.CategoryReport, error)
}
