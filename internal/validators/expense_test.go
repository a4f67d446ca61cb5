package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-expense-tracker/models"
)

func TestValidateExpenseCreate(t *testing.T) {
	expense, fieldErrors := ValidateExpenseCreate(models.ExpenseCreate{
		Title:    "Groceries",
		Amount:   42.50,
		Category: "Food",
		Date:     "2026-08-15T10:30:00Z",
	})

	require.Empty(t, fieldErrors)
	assert.Equal(t, "Groceries", expense.Title)
	assert.Equal(t, 42.50, expense.Amount)
	assert.Equal(t, "Food", expense.Category)
	assert.Equal(t, time.Date(2026, time.August, 15, 10, 30, 0, 0, time.UTC), expense.Date)
}

func TestValidateExpenseCreate_Defaults(t *testing.T) {
	expense, fieldErrors := ValidateExpenseCreate(models.ExpenseCreate{
		Title:    "Bus ticket",
		Amount:   2,
		Category: "Transport",
		Date:     "2026-08-15",
	})

	require.Empty(t, fieldErrors)
	assert.Equal(t, "Cash", expense.Account)
	assert.Equal(t, models.SourceManual, expense.Source)
	assert.Equal(t, models.StatusApproved, expense.Status)
}

func TestValidateExpenseCreate_DateOnlyLayout(t *testing.T) {
	expense, fieldErrors := ValidateExpenseCreate(models.ExpenseCreate{
		Title:    "Rent",
		Amount:   500,
		Category: "Housing",
		Date:     "2026-02-01",
	})

	require.Empty(t, fieldErrors)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), expense.Date)
}

func TestValidateExpenseCreate_ZeroAmountIsAllowed(t *testing.T) {
	_, fieldErrors := ValidateExpenseCreate(models.ExpenseCreate{
		Title:    "Free sample",
		Amount:   0,
		Category: "Other",
		Date:     "2026-08-15",
	})

	assert.Empty(t, fieldErrors)
}

func TestValidateExpenseCreate_FieldErrors(t *testing.T) {
	tests := []struct {
		name       string
		request    models.ExpenseCreate
		wantFields []string
	}{
		{
			name: "missing title",
			request: models.ExpenseCreate{
				Amount:   10,
				Category: "Food",
				Date:     "2026-08-15",
			},
			wantFields: []string{"title"},
		},
		{
			name: "negative amount",
			request: models.ExpenseCreate{
				Title:    "Refund",
				Amount:   -5,
				Category: "Food",
				Date:     "2026-08-15",
			},
			wantFields: []string{"amount"},
		},
		{
			name: "missing category",
			request: models.ExpenseCreate{
				Title:  "Groceries",
				Amount: 10,
				Date:   "2026-08-15",
			},
			wantFields: []string{"category"},
		},
		{
			name: "garbage date",
			request: models.ExpenseCreate{
				Title:    "Groceries",
				Amount:   10,
				Category: "Food",
				Date:     "15/08/2026",
			},
			wantFields: []string{"date"},
		},
		{
			name: "unknown source",
			request: models.ExpenseCreate{
				Title:    "Groceries",
				Amount:   10,
				Category: "Food",
				Date:     "2026-08-15",
				Source:   "carrier-pigeon",
			},
			wantFields: []string{"source"},
		},
		{
			name: "unknown status",
			request: models.ExpenseCreate{
				Title:    "Groceries",
				Amount:   10,
				Category: "Food",
				Date:     "2026-08-15",
				Status:   "maybe",
			},
			wantFields: []string{"status"},
		},
		{
			name:       "empty payload reports every required field",
			request:    models.ExpenseCreate{},
			wantFields: []string{"title", "category", "date"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, fieldErrors := ValidateExpenseCreate(test.request)
			assert.Equal(t, test.wantFields, fieldNames(fieldErrors))
		})
	}
}

func TestValidateBulkCreate(t *testing.T) {
	expenses, fieldErrors := ValidateBulkCreate(models.BulkCreateRequest{
		Expenses: []models.ExpenseCreate{
			{Title: "Groceries", Amount: 42.50, Category: "Food", Date: "2026-08-15"},
			{Title: "Bus ticket", Amount: 2, Category: "Transport", Date: "2026-08-16", Source: "sms"},
		},
	})

	require.Empty(t, fieldErrors)
	require.Len(t, expenses, 2)
	assert.Equal(t, models.SourceManual, expenses[0].Source)
	assert.Equal(t, models.SourceSMS, expenses[1].Source)
}

func TestValidateBulkCreate_ErrorsArePrefixedWithItemIndex(t *testing.T) {
	expenses, fieldErrors := ValidateBulkCreate(models.BulkCreateRequest{
		Expenses: []models.ExpenseCreate{
			{Title: "Groceries", Amount: 42.50, Category: "Food", Date: "2026-08-15"},
			{Amount: -1, Category: "Food", Date: "not-a-date"},
		},
	})

	assert.Nil(t, expenses)
	assert.Equal(t,
		[]string{"expenses[1].title", "expenses[1].amount", "expenses[1].date"},
		fieldNames(fieldErrors))
}

func TestValidateExpenseUpdate(t *testing.T) {
	title := "Groceries and more"
	amount := 55.0
	date := "2026-08-20T00:00:00Z"
	status := "pending"

	changes, fieldErrors := ValidateExpenseUpdate(models.ExpenseUpdate{
		Title:  &title,
		Amount: &amount,
		Date:   &date,
		Status: &status,
	})

	require.Empty(t, fieldErrors)
	require.NotNil(t, changes.Title)
	assert.Equal(t, title, *changes.Title)
	require.NotNil(t, changes.Amount)
	assert.Equal(t, amount, *changes.Amount)
	require.NotNil(t, changes.Date)
	assert.Equal(t, time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC), *changes.Date)
	require.NotNil(t, changes.Status)
	assert.Equal(t, models.StatusPending, *changes.Status)
	assert.Nil(t, changes.Category)
	assert.Nil(t, changes.Description)
	assert.Nil(t, changes.Account)
	assert.Nil(t, changes.Source)
}

func TestValidateExpenseUpdate_EmptyPayloadIsNoOp(t *testing.T) {
	changes, fieldErrors := ValidateExpenseUpdate(models.ExpenseUpdate{})

	assert.Empty(t, fieldErrors)
	assert.True(t, changes.Empty())
}

func TestValidateExpenseUpdate_FieldErrors(t *testing.T) {
	emptyTitle := ""
	negativeAmount := -10.0
	badDate := "yesterday"
	badSource := "telegram"

	tests := []struct {
		name       string
		request    models.ExpenseUpdate
		wantFields []string
	}{
		{
			name:       "title cannot be blanked",
			request:    models.ExpenseUpdate{Title: &emptyTitle},
			wantFields: []string{"title"},
		},
		{
			name:       "amount cannot go negative",
			request:    models.ExpenseUpdate{Amount: &negativeAmount},
			wantFields: []string{"amount"},
		},
		{
			name:       "date must parse",
			request:    models.ExpenseUpdate{Date: &badDate},
			wantFields: []string{"date"},
		},
		{
			name:       "source must be a known tag",
			request:    models.ExpenseUpdate{Source: &badSource},
			wantFields: []string{"source"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			changes, fieldErrors := ValidateExpenseUpdate(test.request)
			assert.Equal(t, test.wantFields, fieldNames(fieldErrors))
			assert.True(t, changes.Empty())
		})
	}
}
