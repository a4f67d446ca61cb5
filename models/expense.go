// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ExpenseSource tags how an expense record entered the system.
type ExpenseSource string

// Allowed ExpenseSource values.
const (
	SourceManual ExpenseSource = "manual"
	SourceSMS    ExpenseSource = "sms"
	SourceEmail  ExpenseSource = "email"
)

// ExpenseStatus is the review state of an expense record.
type ExpenseStatus string

// Allowed ExpenseStatus values.
const (
	StatusApproved ExpenseStatus = "approved"
	StatusPending  ExpenseStatus = "pending"
	StatusRejected ExpenseStatus = "rejected"
)

// Expense represents a single spending record strictly owned by one user.
// Every read, update, and delete against this model must be scoped by
// UserID in addition to ID; ownership is enforced per-query.
type Expense struct {
	// ID is the unique identifier of the record (UUID, generated app-side).
	ID string `json:"id"`

	// UserID identifies the owning user. Never exposed via JSON; the
	// caller's identity is taken from the request context, not the payload.
	UserID int64 `json:"-"`

	// Title is a short human-readable label for the expense.
	Title string `json:"title"`

	// Amount is the spent sum. Always non-negative.
	Amount float64 `json:"amount"`

	// Category groups expenses for aggregation (e.g. "Food", "Transport").
	Category string `json:"category"`

	// Date is when the expense occurred, as supplied by the client.
	Date time.Time `json:"date"`

	// Description is optional free-form text.
	Description string `json:"description,omitempty"`

	// Account is the payment account label. Defaults to "Cash".
	Account string `json:"account"`

	// Source tags how the record was captured. Defaults to SourceManual.
	Source ExpenseSource `json:"source"`

	// Status is the review state. Defaults to StatusApproved.
	Status ExpenseStatus `json:"status"`

	// CreatedAt and UpdatedAt are server-assigned timestamps.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Expense model.
func (e Expense) TableName() string {
	return "expenses"
}

// Valid reports whether s is one of the allowed source tags.
func (s ExpenseSource) Valid() bool {
	switch s {
	case SourceManual, SourceSMS, SourceEmail:
		return true
	}
	return false
}

// Valid reports whether s is one of the allowed statuses.
func (s ExpenseStatus) Valid() bool {
	switch s {
	case StatusApproved, StatusPending, StatusRejected:
		return true
	}
	return false
}

// ApplyDefaults fills Account, Source and Status with their default values
// when the client left them empty.
func (e *Expense) ApplyDefaults() {
	if e.Account == "" {
		e.Account = "Cash"
	}
	if e.Source == "" {
		e.Source = SourceManual
	}
	if e.Status == "" {
		e.Status = StatusApproved
	}
}
