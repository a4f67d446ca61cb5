// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the uniform JSON envelope returned by every endpoint:
//
//	{"success": true, "message": "...", "data": {...}}
//	{"success": false, "message": "...", "errors": [...]}
//
// Success is always present; the remaining fields are omitted when empty.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes a single input-validation failure tied to one
// request field. A validation response carries one entry per failed field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AuthData is the "data" payload of signup and login responses: the public
// view of the user plus a freshly minted token pair.
type AuthData struct {
	User User `json:"user"`
	TokenPair
}

// UserData is the "data" payload of GET /api/auth/me.
type UserData struct {
	User User `json:"user"`
}

// ExpenseData is the "data" payload of single-expense responses.
type ExpenseData struct {
	Expense Expense `json:"expense"`
}

// ExpenseListData is the "data" payload of GET /api/expenses.
type ExpenseListData struct {
	Expenses   []Expense  `json:"expenses"`
	Pagination Pagination `json:"pagination"`
}

// BulkCreateData is the "data" payload of POST /api/expenses/bulk.
type BulkCreateData struct {
	Expenses []Expense `json:"expenses"`
	Count    int       `json:"count"`
}
