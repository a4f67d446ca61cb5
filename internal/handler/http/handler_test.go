package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/service"
	"github.com/MKhiriev/go-expense-tracker/internal/utils"
	"github.com/MKhiriev/go-expense-tracker/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn         func(ctx context.Context, user models.User, password string) (models.User, models.TokenPair, error)
	loginFn            func(ctx context.Context, email, password string) (models.User, models.TokenPair, error)
	refreshFn          func(ctx context.Context, refreshToken string) (models.TokenPair, error)
	parseAccessTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
	getUserByIDFn      func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, user models.User, password string) (models.User, models.TokenPair, error) {
	return m.registerFn(ctx, user, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, models.TokenPair, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	return m.refreshFn(ctx, refreshToken)
}

func (m *mockAuthService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseAccessTokenFn(ctx, tokenString)
}

func (m *mockAuthService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserByIDFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Mock ExpenseService
// ─────────────────────────────────────────────

// mockExpenseService implements service.ExpenseService for unit tests.
type mockExpenseService struct {
	createExpenseFn      func(ctx context.Context, expense models.Expense) (models.Expense, error)
	bulkCreateExpensesFn func(ctx context.Context, expenses []models.Expense) ([]models.Expense, error)
	listExpensesFn       func(ctx context.Context, filter models.ExpenseFilter) ([]models.Expense, models.Pagination, error)
	getExpenseByIDFn     func(ctx context.Context, userID int64, expenseID string) (models.Expense, error)
	updateExpenseFn      func(ctx context.Context, userID int64, expenseID string, changes models.ExpenseChanges) (models.Expense, error)
	deleteExpenseFn      func(ctx context.Context, userID int64, expenseID string) error
	categoryReportFn     func(ctx context.Context, filter models.ExpenseFilter) (models.CategoryReport, error)
}

func (m *mockExpenseService) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	return m.createExpenseFn(ctx, expense)
}

func (m *mockExpenseService) BulkCreateExpenses(ctx context.Context, expenses []models.Expense) ([]models.Expense, error) {
	return m.bulkCreateExpensesFn(ctx, expenses)
}

func (m *mockExpenseService) ListExpenses(ctx context.Context, filter models.ExpenseFilter) ([]models.Expense, models.Pagination, error) {
	return m.listExpensesFn(ctx, filter)
}

func (m *mockExpenseService) GetExpenseByID(ctx context.Context, userID int64, expenseID string) (models.Expense, error) {
	return m.getExpenseByIDFn(ctx, userID, expenseID)
}

func (m *mockExpenseService) UpdateExpense(ctx context.Context, userID int64, expenseID string, changes models.ExpenseChanges) (models.Expense, error) {
	return m.updateExpenseFn(ctx, userID, expenseID, changes)
}

func (m *mockExpenseService) DeleteExpense(ctx context.Context, userID int64, expenseID string) error {
	return m.deleteExpenseFn(ctx, userID, expenseID)
}

func (m *mockExpenseService) CategoryReport(ctx context.Context, filter models.ExpenseFilter) (models.CategoryReport, error) {
	return m.categoryReportFn(ctx, filter)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// newHandlerWithExpenses builds a Handler with the given ExpenseService mock.
func newHandlerWithExpenses(t *testing.T, expenses service.ExpenseService) *Handler {
	t.Helper()
	svcs := &service.Services{
		ExpenseService: expenses,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises any value to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// withAuthedUser stores user in the request context the same way the auth
// middleware does, so protected handlers can be exercised directly.
func withAuthedUser(r *http.Request, user models.User) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserCtxKey, user)
	return r.WithContext(ctx)
}

// decodeResponse unmarshals the recorded body into the response envelope.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var response models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

// validUser is a convenience fixture used across multiple tests.
var validUser = models.User{
	UserID: 42,
	Email:  "ivan@example.com",
	Name:   "Ivan Ivanov",
}

// validTokenPair is a convenience fixture for issued credentials.
var validTokenPair = models.TokenPair{
	AccessToken:  "signed.access.token",
	RefreshToken: "signed.refresh.token",
}
