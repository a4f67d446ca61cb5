package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/mock"
	"github.com/MKhiriev/go-expense-tracker/internal/store"
	"github.com/MKhiriev/go-expense-tracker/models"
)

// sequenceIDGenerator hands out predictable identifiers so tests can assert
// on them.
type sequenceIDGenerator struct {
	next int
}

func (g *sequenceIDGenerator) Generate() string {
	g.next++
	return fmt.Sprintf("id-%d", g.next)
}

func newTestExpenseSvc(t *testing.T, ctrl *gomock.Controller) (*expenseService, *mock.MockExpenseRepository) {
	t.Helper()

	mockExpenses := mock.NewMockExpenseRepository(ctrl)
	svc := NewExpenseService(mockExpenses, &sequenceIDGenerator{}, logger.Nop()).(*expenseService)

	return svc, mockExpenses
}

func TestExpenseService_CreateExpense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockExpenses := newTestExpenseSvc(t, ctrl)

	expense := models.Expense{
		UserID:   42,
		Title:    "Groceries",
		Amount:   42.50,
		Category: "Food",
		Date:     time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC),
	}

	mockExpenses.EXPECT().
		CreateExpense(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, stored models.Expense) (models.Expense, error) {
			assert.Equal(t, "id-1", stored.ID)
			assert.Equal(t, int64(42), stored.UserID)
			return stored, nil
		})

	created, err := svc.CreateExpense(context.Background(), expense)
	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID)
}

func TestExpenseService_CreateExpense_NoOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestExpenseSvc(t, ctrl)

	_, err := svc.CreateExpense(context.Background(), models.Expense{Title: "Orphan"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestExpenseService_BulkCreateExpenses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockExpenses := newTestExpenseSvc(t, ctrl)

	batch := []models.Expense{
		{UserID: 42, Title: "Groceries", Amount: 42.50, Category: "Food"},
		{UserID: 42, Title: "Bus ticket", Amount: 2, Category: "Transport"},
	}

	mockExpenses.EXPECT().
		CreateExpenses(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, stored []models.Expense) ([]models.Expense, error) {
			require.Len(t, stored, 2)
			assert.Equal(t, "id-1", stored[0].ID)
			assert.Equal(t, "id-2", stored[1].ID)
			return stored, nil
		})

	created, err := svc.BulkCreateExpenses(context.Background(), batch)
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.NotEqual(t, created[0].ID, created[1].ID)
}

func TestExpenseService_BulkCreateExpenses_EmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestExpenseSvc(t, ctrl)

	_, err := svc.BulkCreateExpenses(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestExpenseService_ListExpenses_DefaultsApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockExpenses := newTestExpenseSvc(t, ctrl)

	mockExpenses.EXPECT().
		ListExpenses(gomock.Any(), models.ExpenseFilter{UserID: 42, Page: DefaultPage, Limit: DefaultLimit}).
		Return([]models.Expense{{ID: "id-1", UserID: 42}}, int64(1), nil)

	expenses, pagination, err := svc.ListExpenses(context.Background(), models.ExpenseFilter{UserID: 42})
	require.NoError(t, err)
	assert.Len(t, expenses, 1)
	assert.Equal(t, models.Pagination{Page: 1, Limit: 50, Total: 1, Pages: 1}, pagination)
}

func TestExpenseService_ListExpenses_PageArithmetic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockExpenses := newTestExpenseSvc(t, ctrl)

	// 5 records with a window of 2 span 3 pages
	mockExpenses.EXPECT().
		ListExpenses(gomock.Any(), models.ExpenseFilter{UserID: 42, Page: 2, Limit: 2}).
		Return([]models.Expense{{ID: "id-3"}, {ID: "id-4"}}, int64(5), nil)

	_, pagination, err := svc.ListExpenses(context.Background(), models.ExpenseFilter{UserID: 42, Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, models.Pagination{Page: 2, Limit: 2, Total: 5, Pages: 3}, pagination)
}

func TestExpenseService_ListExpenses_EmptyResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockExpenses := newTestExpenseSvc(t, ctrl)

	mockExpenses.EXPECT().
		ListExpenses(gomock.Any(), gomock.Any()).
		Return(nil, int64(0), nil)

	expenses, pagination, err := svc.ListExpenses(context.Background(), models.ExpenseFilter{UserID: 42})
	require.NoError(t, err)
	assert.NotNil(t, expenses)
	assert.Empty(t, expenses)
	assert.Equal(t, int64(0), pagination.Pages)
}

func TestExpenseService_GetExpenseByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockExpenses := newTestExpenseSvc(t, ctrl)

	mockExpenses.EXPECT().
		GetExpenseByID(gomock.Any(), int64(42), "missing-id").
		Return(models.Expense{}, store.ErrExpenseNotFound)

	_, err := svc.GetExpenseByID(context.Background(), 42, "missing-id")
	assert.ErrorIs(t, err, store.ErrExpenseNotFound)
}

func TestExpenseService_UpdateExpense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockExpenses := newTestExpenseSvc(t, ctrl)

	newTitle := "Groceries and more"
	changes := models.ExpenseChanges{Title: &newTitle}

	mockExpenses.EXPECT().
		UpdateExpense(gomock.Any(), int64(42), "id-1", changes).
		Return(models.Expense{ID: "id-1", UserID: 42, Title: newTitle}, nil)

	updated, err := svc.UpdateExpense(context.Background(), 42, "id-1", changes)
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
}

func TestExpenseService_UpdateExpense_EmptyChangesReadsCurrentRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockExpenses := newTestExpenseSvc(t, ctrl)

	// no UPDATE is issued for a no-op change set
	mockExpenses.EXPECT().
		GetExpenseByID(gomock.Any(), int64(42), "id-1").
		Return(models.Expense{ID: "id-1", UserID: 42, Title: "Groceries"}, nil)

	updated, err := svc.UpdateExpense(context.Background(), 42, "id-1", models.ExpenseChanges{})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", updated.Title)
}

func TestExpenseService_DeleteExpense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockExpenses := newTestExpenseSvc(t, ctrl)

	mockExpenses.EXPECT().
		DeleteExpense(gomock.Any(), int64(42), "id-1").
		Return(nil)
	assert.NoError(t, svc.DeleteExpense(context.Background(), 42, "id-1"))

	mockExpenses.EXPECT().
		DeleteExpense(gomock.Any(), int64(42), "missing-id").
		Return(store.ErrExpenseNotFound)
	assert.ErrorIs(t, svc.DeleteExpense(context.Background(), 42, "missing-id"), store.ErrExpenseNotFound)
}

func TestExpenseService_CategoryReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockExpenses := newTestExpenseSvc(t, ctrl)

	mockExpenses.EXPECT().
		TotalsByCategory(gomock.Any(), gomock.Any()).
		Return([]models.CategoryTotal{
			{Category: "Food", Total: 150, Count: 3},
			{Category: "Transport", Total: 50, Count: 2},
		}, nil)

	report, err := svc.CategoryReport(context.Background(), models.ExpenseFilter{UserID: 42})
	require.NoError(t, err)

	assert.Equal(t, 200.0, report.Total)
	require.Len(t, report.Categories, 2)
	assert.Equal(t, 75.0, report.Categories[0].Percentage)
	assert.Equal(t, 25.0, report.Categories[1].Percentage)
}

func TestExpenseService_CategoryReport_NoExpenses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockExpenses := newTestExpenseSvc(t, ctrl)

	mockExpenses.EXPECT().
		TotalsByCategory(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	report, err := svc.CategoryReport(context.Background(), models.ExpenseFilter{UserID: 42})
	require.NoError(t, err)

	assert.NotNil(t, report.Categories)
	assert.Empty(t, report.Categories)
	assert.Equal(t, 0.0, report.Total)
}
