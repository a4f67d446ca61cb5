package validators

import (
	"regexp"

	"github.com/MKhiriev/go-expense-tracker/models"
)

// MinPasswordLength is the minimum accepted password length for new accounts.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateRegister checks a signup payload. A nil result means the payload
// is valid.
func ValidateRegister(request models.RegisterRequest) []models.FieldError {
	var fieldErrors []models.FieldError

	if !emailPattern.MatchString(request.Email) {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "email",
			Message: "Please provide a valid email",
		})
	}
	if len(request.Password) < MinPasswordLength {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "password",
			Message: "Password must be at least 6 characters",
		})
	}
	if request.Name == "" {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "name",
			Message: "Name is required",
		})
	}

	return fieldErrors
}

// ValidateLogin checks a login payload. Unlike registration the password is
// only required to be present: length rules apply when the account is
// created, not on every login.
func ValidateLogin(request models.LoginRequest) []models.FieldError {
	var fieldErrors []models.FieldError

	if !emailPattern.MatchString(request.Email) {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "email",
			Message: "Please provide a valid email",
		})
	}
	if request.Password == "" {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "password",
			Message: "Password is required",
		})
	}

	return fieldErrors
}
