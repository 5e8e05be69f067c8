package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/taskflow/taskflow-api/internal/api/shared"
	"github.com/taskflow/taskflow-api/internal/domain"
	"github.com/taskflow/taskflow-api/internal/service/auth"
	"github.com/taskflow/taskflow-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Ownership failures surface as 404, indistinguishable from a missing
// resource, so existence never leaks across accounts.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidSession),
		errors.Is(err, auth.ErrMissingSession),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrEmailExists):
		return http.StatusConflict

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the sanitized client-facing message for
// an error. Internal detail stays in the server logs.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"

	case errors.Is(err, auth.ErrInvalidCredentials):
		// Same message for unknown email and wrong password.
		return "Invalid email or password"

	case errors.Is(err, auth.ErrInvalidSession),
		errors.Is(err, auth.ErrMissingSession),
		errors.Is(err, domain.ErrUnauthorized):
		return "Please log in to access this resource"

	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrEmailExists):
		return "An account with this email already exists"

	case errors.Is(err, domain.ErrValidation):
		return "Validation failed"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request data"

	default:
		return "An unexpected error occurred"
	}
}

// respondWithMappedError is the single exit for handler error branches:
// status from MapErrorToStatusCode, message from GetSafeErrorMessage.
// Generic server errors get the operation-specific serverMessage
// instead, so a 500 still says which operation failed. The raw error is
// logged server-side only.
func respondWithMappedError(w http.ResponseWriter, r *http.Request, err error, serverMessage string) {
	statusCode := MapErrorToStatusCode(err)
	safeMessage := GetSafeErrorMessage(err)

	if statusCode == http.StatusInternalServerError && serverMessage != "" {
		safeMessage = serverMessage
	}

	shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
}

// validationFieldErrors converts errors into the structured per-field
// map used by 400 responses. It understands validator.ValidationErrors
// and domain ValidationErrors; anything else gets a generic entry.
func validationFieldErrors(err error) map[string][]string {
	fields := make(map[string][]string)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := fe.Field()
			fields[field] = append(fields[field], validationTagMessage(fe))
		}
		return fields
	}

	var dverr *domain.ValidationError
	if errors.As(err, &dverr) {
		fields[dverr.Field] = append(fields[dverr.Field], dverr.Message)
		return fields
	}

	fields["request"] = append(fields["request"], "is invalid")
	return fields
}

// validationTagMessage maps a validator tag failure to a short
// client-facing message.
func validationTagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "is not a valid email address"
	case "min":
		return "is too short (minimum " + fe.Param() + ")"
	case "max":
		return "is too long (maximum " + fe.Param() + ")"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
