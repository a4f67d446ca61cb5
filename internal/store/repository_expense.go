// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/models"
	sq "github.com/Masterminds/squirrel"
)

// expenseRepository is the PostgreSQL-backed implementation of
// [ExpenseRepository]. Dynamic queries (list filters, partial updates,
// aggregation) are built with squirrel; fixed-shape queries use the prepared
// constants from sql_queries.go.
//
// Ownership isolation invariant: every statement that touches an existing
// row carries `user_id = <caller>` in its WHERE clause. There is no code
// path that addresses an expense by id alone.
type expenseRepository struct {
	logger *logger.Logger
	db     *DB
}

// psql builds squirrel statements with PostgreSQL $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// NewExpenseRepository constructs an [ExpenseRepository] backed by the
// provided database connection and logger.
func NewExpenseRepository(db *DB, logger *logger.Logger) ExpenseRepository {
	logger.Debug().Msg("creating expense repository")
	return &expenseRepository{
		db:     db,
		logger: logger,
	}
}

// CreateExpense persists a single expense and returns the stored record with
// server-assigned timestamps.
func (r *expenseRepository) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createExpense,
		expense.ID, expense.UserID, expense.Title, expense.Amount,
		expense.Category, expense.Date, expense.Description,
		expense.Account, expense.Source, expense.Status,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*expenseRepository.CreateExpense").Msg("error: row is nil")
		return models.Expense{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanExpenseRow(row)
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.CreateExpense").Msg("error: scanning error")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// CreateExpenses persists a batch of expenses with a single multi-row INSERT
// and returns the stored records in insertion order.
func (r *expenseRepository) CreateExpenses(ctx context.Context, expenses []models.Expense) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	if len(expenses) == 0 {
		return nil, ErrExpensesNotSaved
	}

	builder := psql.Insert("expenses").
		Columns("id", "user_id", "title", "amount", "category", "date",
			"description", "account", "source", "status").
		Suffix("RETURNING id, user_id, title, amount, category, date, description, account, source, status, created_at, updated_at")

	for _, e := range expenses {
		builder = builder.Values(e.ID, e.UserID, e.Title, e.Amount, e.Category,
			e.Date, e.Description, e.Account, e.Source, e.Status)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.CreateExpenses").Msg("error building insert query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.CreateExpenses").Msg("error executing insert query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer rows.Close()

	saved := make([]models.Expense, 0, len(expenses))
	for rows.Next() {
		e, err := scanExpenseRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		saved = append(saved, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(saved) == 0 {
		return nil, ErrExpensesNotSaved
	}

	return saved, nil
}

// ListExpenses returns one page of the caller's expenses, newest first, plus
// the total number of records matching the filter (for pagination math).
func (r *expenseRepository) ListExpenses(ctx context.Context, filter models.ExpenseFilter) ([]models.Expense, int64, error) {
	log := logger.FromContext(ctx)

	builder := psql.Select(expenseColumns...).
		From("expenses").
		OrderBy("date DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset()))
	builder = applyExpenseFilter(builder, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.ListExpenses").Msg("error building select query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.ListExpenses").Msg("error executing select query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0, filter.Limit)
	for rows.Next() {
		e, err := scanExpenseRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	total, err := r.countExpenses(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return expenses, total, nil
}

// countExpenses returns the total number of rows matching the filter,
// ignoring pagination.
func (r *expenseRepository) countExpenses(ctx context.Context, filter models.ExpenseFilter) (int64, error) {
	log := logger.FromContext(ctx)

	builder := applyExpenseFilter(psql.Select("COUNT(*)").From("expenses"), filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*expenseRepository.countExpenses").Msg("error executing count query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// GetExpenseByID retrieves a single expense scoped to its owner.
// A record owned by another user yields [ErrExpenseNotFound].
func (r *expenseRepository) GetExpenseByID(ctx context.Context, userID int64, expenseID string) (models.Expense, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getExpenseByID, expenseID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*expenseRepository.GetExpenseByID").Msg("error: row is nil")
		return models.Expense{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	expense, err := scanExpenseRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Expense{}, ErrExpenseNotFound
		}
		log.Err(err).Str("func", "*expenseRepository.GetExpenseByID").Msg("error: scanning error")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return expense, nil
}

// UpdateExpense applies the non-nil fields of changes to the caller's
// expense and returns the updated record. The UPDATE is scoped to both the
// record id and the owner id; zero matched rows yield [ErrExpenseNotFound].
func (r *expenseRepository) UpdateExpense(ctx context.Context, userID int64, expenseID string, changes models.ExpenseChanges) (models.Expense, error) {
	log := logger.FromContext(ctx)

	builder := psql.Update("expenses").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": expenseID, "user_id": userID}).
		Suffix("RETURNING id, user_id, title, amount, category, date, description, account, source, status, created_at, updated_at")

	if changes.Title != nil {
		builder = builder.Set("title", *changes.Title)
	}
	if changes.Amount != nil {
		builder = builder.Set("amount", *changes.Amount)
	}
	if changes.Category != nil {
		builder = builder.Set("category", *changes.Category)
	}
	if changes.Date != nil {
		builder = builder.Set("date", *changes.Date)
	}
	if changes.Description != nil {
		builder = builder.Set("description", *changes.Description)
	}
	if changes.Account != nil {
		builder = builder.Set("account", *changes.Account)
	}
	if changes.Source != nil {
		builder = builder.Set("source", *changes.Source)
	}
	if changes.Status != nil {
		builder = builder.Set("status", *changes.Status)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.UpdateExpense").Msg("error building update query")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*expenseRepository.UpdateExpense").Msg("error executing update query")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	updated, err := scanExpenseRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Expense{}, ErrExpenseNotFound
		}
		log.Err(err).Str("func", "*expenseRepository.UpdateExpense").Msg("error: scanning error")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteExpense removes the caller's expense. Zero affected rows — the
// record does not exist or belongs to someone else — yield
// [ErrExpenseNotFound].
func (r *expenseRepository) DeleteExpense(ctx context.Context, userID int64, expenseID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteExpense, expenseID, userID)
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.DeleteExpense").Msg("error executing delete query")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// TotalsByCategory aggregates the caller's expenses per category: summed
// amount and record count, ordered by total descending. Only the date bounds
// of the filter apply; pagination, category, and status are ignored.
func (r *expenseRepository) TotalsByCategory(ctx context.Context, filter models.ExpenseFilter) ([]models.CategoryTotal, error) {
	log := logger.FromContext(ctx)

	builder := psql.Select("category", "SUM(amount) AS total", "COUNT(*) AS count").
		From("expenses").
		Where(sq.Eq{"user_id": filter.UserID}).
		GroupBy("category").
		OrderBy("total DESC")
	if filter.StartDate != nil {
		builder = builder.Where(sq.GtOrEq{"date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(sq.LtOrEq{"date": *filter.EndDate})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.TotalsByCategory").Msg("error building aggregate query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.TotalsByCategory").Msg("error executing aggregate query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	totals := make([]models.CategoryTotal, 0)
	for rows.Next() {
		var ct models.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total, &ct.Count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		totals = append(totals, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return totals, nil
}

// applyExpenseFilter appends the WHERE conditions shared by the list and
// count queries. The owner condition is unconditional.
func applyExpenseFilter(builder sq.SelectBuilder, filter models.ExpenseFilter) sq.SelectBuilder {
	builder = builder.Where(sq.Eq{"user_id": filter.UserID})

	if filter.StartDate != nil {
		builder = builder.Where(sq.GtOrEq{"date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(sq.LtOrEq{"date": *filter.EndDate})
	}
	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}

	return builder
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpenseRow(row rowScanner) (models.Expense, error) {
	var e models.Expense
	err := row.Scan(
		&e.ID, &e.UserID, &e.Title, &e.Amount, &e.Category, &e.Date,
		&e.Description, &e.Account, &e.Source, &e.Status,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}
