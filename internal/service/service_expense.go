package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/store"
	"github.com/MKhiriev/go-expense-tracker/models"
)

// Pagination bounds applied when the client omits or mangles the query
// parameters.
const (
	DefaultPage  = 1
	DefaultLimit = 50
)

// IDGenerator mints identifiers for new expense records.
type IDGenerator interface {
	Generate() string
}

// expenseService is the concrete implementation of ExpenseService. All
// ownership checks live in the repository: every call is scoped by the
// caller's user ID, so this layer only handles identifiers, pagination
// arithmetic and the category report shape.
type expenseService struct {
	expenseRepository store.ExpenseRepository
	idGenerator       IDGenerator
	logger            *logger.Logger
}

// NewExpenseService constructs a new ExpenseService wired to the given
// ExpenseRepository.
func NewExpenseService(expenseRepository store.ExpenseRepository, idGenerator IDGenerator, logger *logger.Logger) ExpenseService {
	return &expenseService{
		expenseRepository: expenseRepository,
		idGenerator:       idGenerator,
		logger:            logger,
	}
}

// CreateExpense persists a single validated expense record, assigning it a
// fresh identifier.
func (e *expenseService) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	log := logger.FromContext(ctx)

	if expense.UserID == 0 {
		log.Error().Msg("expense without an owner")
		return models.Expense{}, ErrInvalidDataProvided
	}

	expense.ID = e.idGenerator.Generate()

	created, err := e.expenseRepository.CreateExpense(ctx, expense)
	if err != nil {
		log.Err(err).Int64("userID", expense.UserID).Msg("expense creation ended with error")
		return models.Expense{}, fmt.Errorf("expense creation ended with error: %w", err)
	}

	return created, nil
}

// BulkCreateExpenses persists a batch of validated expense records in one
// statement. The whole batch shares a fate: either every record lands or none
// does.
func (e *expenseService) BulkCreateExpenses(ctx context.Context, expenses []models.Expense) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	if len(expenses) == 0 {
		log.Error().Msg("empty expense batch")
		return nil, ErrInvalidDataProvided
	}

	for idx := range expenses {
		if expenses[idx].UserID == 0 {
			log.Error().Int("index", idx).Msg("expense without an owner in batch")
			return nil, ErrInvalidDataProvided
		}
		expenses[idx].ID = e.idGenerator.Generate()
	}

	created, err := e.expenseRepository.CreateExpenses(ctx, expenses)
	if err != nil {
		log.Err(err).Int("count", len(expenses)).Msg("bulk expense creation ended with error")
		return nil, fmt.Errorf("bulk expense creation ended with error: %w", err)
	}

	return created, nil
}

// ListExpenses returns one page of the caller's expenses, newest first, plus
// the window description. Page and limit fall back to their defaults when
// unset.
func (e *expenseService) ListExpenses(ctx context.Context, filter models.ExpenseFilter) ([]models.Expense, models.Pagination, error) {
	log := logger.FromContext(ctx)

	if filter.Page <= 0 {
		filter.Page = DefaultPage
	}
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}

	expenses, total, err := e.expenseRepository.ListExpenses(ctx, filter)
	if err != nil {
		log.Err(err).Int64("userID", filter.UserID).Msg("expense listing ended with error")
		return nil, models.Pagination{}, fmt.Errorf("expense listing ended with error: %w", err)
	}

	if expenses == nil {
		expenses = []models.Expense{}
	}

	pagination := models.Pagination{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
		Pages: pageCount(total, filter.Limit),
	}

	return expenses, pagination, nil
}

// GetExpenseByID returns a single record owned by userID. A record owned by
// someone else is indistinguishable from a missing one.
func (e *expenseService) GetExpenseByID(ctx context.Context, userID int64, expenseID string) (models.Expense, error) {
	log := logger.FromContext(ctx)

	expense, err := e.expenseRepository.GetExpenseByID(ctx, userID, expenseID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Str("expenseID", expenseID).Msg("expense lookup ended with error")
		return models.Expense{}, fmt.Errorf("expense lookup ended with error: %w", err)
	}

	return expense, nil
}

// UpdateExpense applies a partial update to a record owned by userID and
// returns the updated row. An empty change set is a no-op that returns the
// current record.
func (e *expenseService) UpdateExpense(ctx context.Context, userID int64, expenseID string, changes models.ExpenseChanges) (models.Expense, error) {
	log := logger.FromContext(ctx)

	if changes.Empty() {
		return e.GetExpenseByID(ctx, userID, expenseID)
	}

	expense, err := e.expenseRepository.UpdateExpense(ctx, userID, expenseID, changes)
	if err != nil {
		log.Err(err).Int64("userID", userID).Str("expenseID", expenseID).Msg("expense update ended with error")
		return models.Expense{}, fmt.Errorf("expense update ended with error: %w", err)
	}

	return expense, nil
}

// DeleteExpense removes a record owned by userID.
func (e *expenseService) DeleteExpense(ctx context.Context, userID int64, expenseID string) error {
	log := logger.FromContext(ctx)

	if err := e.expenseRepository.DeleteExpense(ctx, userID, expenseID); err != nil {
		log.Err(err).Int64("userID", userID).Str("expenseID", expenseID).Msg("expense deletion ended with error")
		return fmt.Errorf("expense deletion ended with error: %w", err)
	}

	return nil
}

// CategoryReport aggregates the caller's expenses per category within the
// filter's date window. Categories arrive from the repository sorted by
// summed amount, largest first; this layer adds each category's share of the
// overall total.
func (e *expenseService) CategoryReport(ctx context.Context, filter models.ExpenseFilter) (models.CategoryReport, error) {
	log := logger.FromContext(ctx)

	totals, err := e.expenseRepository.TotalsByCategory(ctx, filter)
	if err != nil {
		log.Err(err).Int64("userID", filter.UserID).Msg("category aggregation ended with error")
		return models.CategoryReport{}, fmt.Errorf("category aggregation ended with error: %w", err)
	}

	if totals == nil {
		totals = []models.CategoryTotal{}
	}

	var overallTotal float64
	for _, categoryTotal := range totals {
		overallTotal += categoryTotal.Total
	}

	for idx := range totals {
		if overallTotal > 0 {
			totals[idx].Percentage = totals[idx].Total / overallTotal * 100
		}
	}

	return models.CategoryReport{
		Categories: totals,
		Total:      overallTotal,
	}, nil
}

// pageCount returns how many pages of size limit the total spans.
func pageCount(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
