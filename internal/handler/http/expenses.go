// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/store"
	"github.com/MKhiriev/go-expense-tracker/internal/utils"
	"github.com/MKhiriev/go-expense-tracker/internal/validators"
	"github.com/MKhiriev/go-expense-tracker/models"
)

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var request models.ExpenseCreate
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	expense, fieldErrors := validators.ValidateExpenseCreate(request)
	if fieldErrors != nil {
		log.Error().Int("fields", len(fieldErrors)).Msg("expense validation failed")
		writeValidationErrors(w, fieldErrors)
		return
	}
	expense.UserID = currentUser.UserID

	created, err := h.services.ExpenseService.CreateExpense(ctx, expense)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during expense creation")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeData(w, http.StatusCreated, "Expense created successfully", models.ExpenseData{Expense: created})
}

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	filter := parseExpenseFilter(r, currentUser.UserID)

	expenses, pagination, err := h.services.ExpenseService.ListExpenses(ctx, filter)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during expense listing")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeData(w, http.StatusOK, "", models.ExpenseListData{
		Expenses:   expenses,
		Pagination: pagination,
	})
}

func (h *Handler) getExpenseByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	expenseID := chi.URLParam(r, "id")

	expense, err := h.services.ExpenseService.GetExpenseByID(ctx, currentUser.UserID, expenseID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrExpenseNotFound):
			writeError(w, http.StatusNotFound, "Expense not found")
			return
		default:
			log.Err(err).Str("expenseID", expenseID).Msg("unexpected error occurred during expense lookup")
			writeError(w, http.StatusInternalServerError, "Server error")
			return
		}
	}

	writeData(w, http.StatusOK, "", models.ExpenseData{Expense: expense})
}

func (h *Handler) updateExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	expenseID := chi.URLParam(r, "id")

	var request models.ExpenseUpdate
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	changes, fieldErrors := validators.ValidateExpenseUpdate(request)
	if fieldErrors != nil {
		log.Error().Int("fields", len(fieldErrors)).Msg("expense update validation failed")
		writeValidationErrors(w, fieldErrors)
		return
	}

	updated, err := h.services.ExpenseService.UpdateExpense(ctx, currentUser.UserID, expenseID, changes)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrExpenseNotFound):
			writeError(w, http.StatusNotFound, "Expense not found")
			return
		default:
			log.Err(err).Str("expenseID", expenseID).Msg("unexpected error occurred during expense update")
			writeError(w, http.StatusInternalServerError, "Server error")
			return
		}
	}

	writeData(w, http.StatusOK, "Expense updated successfully", models.ExpenseData{Expense: updated})
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	expenseID := chi.URLParam(r, "id")

	if err := h.services.ExpenseService.DeleteExpense(ctx, currentUser.UserID, expenseID); err != nil {
		switch {
		case errors.Is(err, store.ErrExpenseNotFound):
			writeError(w, http.StatusNotFound, "Expense not found")
			return
		default:
			log.Err(err).Str("expenseID", expenseID).Msg("unexpected error occurred during expense deletion")
			writeError(w, http.StatusInternalServerError, "Server error")
			return
		}
	}

	writeData(w, http.StatusOK, "Expense deleted successfully", nil)
}

func (h *Handler) expensesByCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	// only the date window applies here; category/status/pagination are
	// list-endpoint concerns
	filter := models.ExpenseFilter{UserID: currentUser.UserID}
	filter.StartDate = parseDateParam(r.URL.Query().Get("startDate"))
	filter.EndDate = parseDateParam(r.URL.Query().Get("endDate"))

	report, err := h.services.ExpenseService.CategoryReport(ctx, filter)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during category aggregation")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeData(w, http.StatusOK, "", report)
}

func (h *Handler) bulkCreateExpenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var request models.BulkCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	if len(request.Expenses) == 0 {
		writeError(w, http.StatusBadRequest, "Expenses array is required")
		return
	}

	expenses, fieldErrors := validators.ValidateBulkCreate(request)
	if fieldErrors != nil {
		log.Error().Int("fields", len(fieldErrors)).Msg("bulk expense validation failed")
		writeValidationErrors(w, fieldErrors)
		return
	}
	for idx := range expenses {
		expenses[idx].UserID = currentUser.UserID
	}

	created, err := h.services.ExpenseService.BulkCreateExpenses(ctx, expenses)
	if err != nil {
		log.Err(err).Int("count", len(expenses)).Msg("unexpected error occurred during bulk expense creation")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeData(w, http.StatusCreated, "Expenses created successfully", models.BulkCreateData{
		Expenses: created,
		Count:    len(created),
	})
}

// parseExpenseFilter reads the supported query parameters of the list
// endpoint. Unparseable values behave like absent ones.
func parseExpenseFilter(r *http.Request, userID int64) models.ExpenseFilter {
	query := r.URL.Query()

	filter := models.ExpenseFilter{
		UserID:   userID,
		Category: query.Get("category"),
		Status:   query.Get("status"),
	}
	filter.StartDate = parseDateParam(query.Get("startDate"))
	filter.EndDate = parseDateParam(query.Get("endDate"))

	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil {
		filter.Limit = limit
	}

	return filter
}

// parseDateParam parses an optional date query parameter, accepting both
// RFC 3339 timestamps and plain dates. Nil means "no bound".
func parseDateParam(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if date, err := time.Parse(layout, value); err == nil {
			date = date.UTC()
			return &date
		}
	}
	return nil
}
