package models

import "time"

// RegisterRequest is the JSON body of POST /api/auth/signup.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the JSON body of POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ExpenseCreate carries the client-supplied fields of a new expense.
// Defaults for Account, Source and Status are applied server-side.
type ExpenseCreate struct {
	Title       string `json:"title"`
	Amount      float64 `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Account     string `json:"account"`
	Source      string `json:"source"`
	Status      string `json:"status"`
}

// ExpenseUpdate represents a partial update of a single expense.
// Only non-nil fields are written; ownership is enforced by the repository
// which scopes the UPDATE to both the record ID and the caller's user ID.
type ExpenseUpdate struct {
	Title       *string  `json:"title"`
	Amount      *float64 `json:"amount"`
	Category    *string  `json:"category"`
	Date        *string  `json:"date"`
	Description *string  `json:"description"`
	Account     *string  `json:"account"`
	Source      *string  `json:"source"`
	Status      *string  `json:"status"`
}

// ExpenseChanges is the typed, already-validated counterpart of
// [ExpenseUpdate]: the date is parsed and enum fields are checked before the
// value reaches the persistence layer. Nil fields are left untouched.
type ExpenseChanges struct {
	Title       *string
	Amount      *float64
	Category    *string
	Date        *time.Time
	Description *string
	Account     *string
	Source      *ExpenseSource
	Status      *ExpenseStatus
}

// Empty reports whether no field is set, i.e. the update is a no-op.
func (c ExpenseChanges) Empty() bool {
	return c.Title == nil && c.Amount == nil && c.Category == nil &&
		c.Date == nil && c.Description == nil && c.Account == nil &&
		c.Source == nil && c.Status == nil
}

// BulkCreateRequest is the JSON body of POST /api/expenses/bulk.
type BulkCreateRequest struct {
	Expenses []ExpenseCreate `json:"expenses"`
}

// ExpenseFilter represents the query parameters of GET /api/expenses and
// GET /api/expenses/by-category. Zero values mean "not filtered".
type ExpenseFilter struct {
	// UserID scopes every query to the caller. Always set by the handler
	// from the authenticated identity, never from client input.
	UserID int64

	// StartDate and EndDate bound the expense date (inclusive).
	StartDate *time.Time
	EndDate   *time.Time

	// Category and Status narrow the result set when non-empty.
	Category string
	Status   string

	// Page and Limit control pagination. Defaults: page 1, limit 50.
	Page  int
	Limit int
}

// Offset returns the number of records to skip for the current page.
func (f ExpenseFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// CategoryTotal is one row of the per-category aggregation: the summed
// amount and record count for a single category, plus its share of the
// overall total.
type CategoryTotal struct {
	Category   string  `json:"category"`
	Total      float64 `json:"total"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CategoryReport is the full response of GET /api/expenses/by-category:
// per-category totals sorted descending plus the overall total.
type CategoryReport struct {
	Categories []CategoryTotal `json:"categories"`
	Total      float64         `json:"total"`
}
