// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createUser = `INSERT INTO users (email, password_hash, name, phone_number, country, currency, budget_alerts, monthly_budget)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING user_id, email, name, phone_number, country, currency, budget_alerts, monthly_budget, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, name, phone_number, country, currency, budget_alerts, monthly_budget, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, name, phone_number, country, currency, budget_alerts, monthly_budget, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	createExpense = `INSERT INTO expenses (id, user_id, title, amount, category, date, description, account, source, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING id, user_id, title, amount, category, date, description, account, source, status, created_at, updated_at;`

	getExpenseByID = `SELECT id, user_id, title, amount, category, date, description, account, source, status, created_at, updated_at
    FROM expenses
    WHERE id = $1 AND user_id = $2;`

	deleteExpense = `DELETE FROM expenses
    WHERE id = $1 AND user_id = $2;`
)

// expenseColumns is the canonical column list scanned into models.Expense.
var expenseColumns = []string{
	"id", "user_id", "title", "amount", "category", "date",
	"description", "account", "source", "status", "created_at", "updated_at",
}
