package http

import (
	"net/http"

	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/service"
	"github.com/MKhiriev/go-expense-tracker/internal/utils"
	"github.com/MKhiriev/go-expense-tracker/models"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// writeData sends a successful response envelope. The message is optional
// and omitted from the payload when empty.
func writeData(w http.ResponseWriter, statusCode int, message string, data any) {
	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: message,
		Data:    data,
	}, statusCode)
}

// writeError sends a failed response envelope carrying only a message.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	utils.WriteJSON(w, models.Response{
		Success: false,
		Message: message,
	}, statusCode)
}

// writeValidationErrors sends the standard 400 envelope listing every field
// that failed validation.
func writeValidationErrors(w http.ResponseWriter, fieldErrors []models.FieldError) {
	utils.WriteJSON(w, models.Response{
		Success: false,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}, http.StatusBadRequest)
}
