package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-expense-tracker/models"
)

// UserRepository is the persistence contract of the credential store.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up an account by its lower-cased email,
	// including the password hash. Only the login path may call it.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks up an account by its identifier. The password hash
	// is not selected.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ExpenseRepository is the persistence contract for expense records. Every
// method that targets an existing record takes the owner's userID and scopes
// the query to it: a record owned by someone else behaves exactly like a
// missing one.
type ExpenseRepository interface {
	CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)
	CreateExpenses(ctx context.Context, expenses []models.Expense) ([]models.Expense, error)

	ListExpenses(ctx context.Context, filter models.ExpenseFilter) ([]models.Expense, int64, error)
	GetExpenseByID(ctx context.Context, userID int64, expenseID string) (models.Expense, error)

	UpdateExpense(ctx context.Context, userID int64, expenseID string, changes models.ExpenseChanges) (models.Expense, error)
	DeleteExpense(ctx context.Context, userID int64, expenseID string) error

	TotalsByCategory(ctx context.Context, filter models.ExpenseFilter) ([]models.CategoryTotal, error)
}
