// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-expense-tracker/models"
)

// dateLayouts lists the accepted formats of the `date` field, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ValidateExpenseCreate checks a single-expense payload and converts it into
// a domain record with the date parsed and the defaults applied. The returned
// expense is only meaningful when the error slice is empty.
func ValidateExpenseCreate(request models.ExpenseCreate) (models.Expense, []models.FieldError) {
	fieldErrors := checkExpenseFields(request, "")

	date, err := parseDate(request.Date)
	if err != nil {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "date",
			Message: "Date must be a valid ISO 8601 date",
		})
	}

	if len(fieldErrors) != 0 {
		return models.Expense{}, fieldErrors
	}

	expense := models.Expense{
		Title:       request.Title,
		Amount:      request.Amount,
		Category:    request.Category,
		Date:        date,
		Description: request.Description,
		Account:     request.Account,
		Source:      models.ExpenseSource(request.Source),
		Status:      models.ExpenseStatus(request.Status),
	}
	expense.ApplyDefaults()

	return expense, nil
}

// ValidateBulkCreate checks every item of a bulk payload. Field errors are
// prefixed with the item's position (`expenses[2].amount`) so the client can
// tell which record is broken.
func ValidateBulkCreate(request models.BulkCreateRequest) ([]models.Expense, []models.FieldError) {
	var fieldErrors []models.FieldError
	expenses := make([]models.Expense, 0, len(request.Expenses))

	for idx, item := range request.Expenses {
		prefix := fmt.Sprintf("expenses[%d].", idx)
		itemErrors := checkExpenseFields(item, prefix)

		date, err := parseDate(item.Date)
		if err != nil {
			itemErrors = append(itemErrors, models.FieldError{
				Field:   prefix + "date",
				Message: "Date must be a valid ISO 8601 date",
			})
		}

		if len(itemErrors) != 0 {
			fieldErrors = append(fieldErrors, itemErrors...)
			continue
		}

		expense := models.Expense{
			Title:       item.Title,
			Amount:      item.Amount,
			Category:    item.Category,
			Date:        date,
			Description: item.Description,
			Account:     item.Account,
			Source:      models.ExpenseSource(item.Source),
			Status:      models.ExpenseStatus(item.Status),
		}
		expense.ApplyDefaults()
		expenses = append(expenses, expense)
	}

	if len(fieldErrors) != 0 {
		return nil, fieldErrors
	}

	return expenses, nil
}

// ValidateExpenseUpdate checks a partial update. Only fields present in the
// payload are validated; absent fields stay nil in the returned changes.
func ValidateExpenseUpdate(request models.ExpenseUpdate) (models.ExpenseChanges, []models.FieldError) {
	var fieldErrors []models.FieldError
	var changes models.ExpenseChanges

	if request.Title != nil {
		if *request.Title == "" {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   "title",
				Message: "Title is required",
			})
		} else {
			changes.Title = request.Title
		}
	}
	if request.Amount != nil {
		if *request.Amount < 0 {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   "amount",
				Message: "Amount must be a positive number",
			})
		} else {
			changes.Amount = request.Amount
		}
	}
	if request.Category != nil {
		if *request.Category == "" {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   "category",
				Message: "Category is required",
			})
		} else {
			changes.Category = request.Category
		}
	}
	if request.Date != nil {
		date, err := parseDate(*request.Date)
		if err != nil {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   "date",
				Message: "Date must be a valid ISO 8601 date",
			})
		} else {
			changes.Date = &date
		}
	}
	if request.Description != nil {
		changes.Description = request.Description
	}
	if request.Account != nil {
		changes.Account = request.Account
	}
	if request.Source != nil {
		source := models.ExpenseSource(*request.Source)
		if !source.Valid() {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   "source",
				Message: "Source must be one of: manual, sms, email",
			})
		} else {
			changes.Source = &source
		}
	}
	if request.Status != nil {
		status := models.ExpenseStatus(*request.Status)
		if !status.Valid() {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   "status",
				Message: "Status must be one of: approved, pending, rejected",
			})
		} else {
			changes.Status = &status
		}
	}

	if len(fieldErrors) != 0 {
		return models.ExpenseChanges{}, fieldErrors
	}

	return changes, nil
}

// checkExpenseFields runs the shared per-record checks of create and bulk
// payloads. Date parsing is handled separately by the callers.
func checkExpenseFields(request models.ExpenseCreate, prefix string) []models.FieldError {
	var fieldErrors []models.FieldError

	if request.Title == "" {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   prefix + "title",
			Message: "Title is required",
		})
	}
	if request.Amount < 0 {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   prefix + "amount",
			Message: "Amount must be a positive number",
		})
	}
	if request.Category == "" {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   prefix + "category",
			Message: "Category is required",
		})
	}
	if request.Source != "" && !models.ExpenseSource(request.Source).Valid() {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   prefix + "source",
			Message: "Source must be one of: manual, sms, email",
		})
	}
	if request.Status != "" && !models.ExpenseStatus(request.Status).Valid() {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   prefix + "status",
			Message: "Status must be one of: approved, pending, rejected",
		})
	}

	return fieldErrors
}

func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		date, err := time.Parse(layout, value)
		if err == nil {
			return date.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
