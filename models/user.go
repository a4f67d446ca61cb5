// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is serialized as "id" to keep API compatibility with clients.
	UserID int64 `json:"id"`

	// Email is the unique user identifier used during authentication.
	// Stored lower-cased; lookups are therefore case-insensitive.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a bcrypt digest, never plaintext. It is excluded
	// from JSON and selected from the database only on the login path.
	PasswordHash string `json:"-"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// PhoneNumber is an optional contact number supplied at signup.
	PhoneNumber string `json:"phoneNumber"`

	// Settings holds per-user preferences with server-side defaults.
	Settings Settings `json:"settings"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is the timestamp of the last account mutation.
	UpdatedAt time.Time `json:"-"`
}

// Settings is the per-user preferences sub-record. Every field has a
// server-side default applied at registration time.
type Settings struct {
	// Country is the user's country of residence.
	Country string `json:"country"`

	// Currency is the ISO 4217 code used to display amounts.
	Currency string `json:"currency"`

	// BudgetAlerts toggles notifications when spending approaches
	// MonthlyBudget.
	BudgetAlerts bool `json:"budgetAlerts"`

	// MonthlyBudget is the spending ceiling used by budget alerts.
	MonthlyBudget float64 `json:"monthlyBudget"`
}

// DefaultSettings returns the Settings applied to newly registered users.
func DefaultSettings() Settings {
	return Settings{
		Country:       "Pakistan",
		Currency:      "PKR",
		BudgetAlerts:  false,
		MonthlyBudget: 0,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
