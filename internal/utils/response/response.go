package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/geekfaka/storefront/internal/errors"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error      string   `json:"error"`
	Code       string   `json:"code"`
	Details    []string `json:"details,omitempty"`
	RetryAfter int      `json:"retry_after,omitempty"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// interface {} == any
func WriteJson(w http.ResponseWriter, statusCode int, data any) error {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data) //struct to json
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	WriteJson(w, statusCode, data)
}

func Error(w http.ResponseWriter, err error) {

	var statusCode int
	var errorResponse ErrorResponse

	if appErr, ok := errors.IsAppError(err); ok {
		statusCode = appErr.StatusCode
		errorResponse = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}

		if appErr.Detail != "" {
			errorResponse.Details = []string{appErr.Detail}
		}

		if appErr.RetryAfter > 0 {
			errorResponse.RetryAfter = appErr.RetryAfter
			w.Header().Set("Retry-After", strconv.Itoa(appErr.RetryAfter))
		}

	} else {

		statusCode = http.StatusInternalServerError
		errorResponse = ErrorResponse{
			Error: "An unexpected error occurred",
			Code:  errors.ErrCodeInternal,
		}

	}

	WriteJson(w, statusCode, errorResponse)
}

// ValidationError sends one message per failed field.
func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {

	var errMsgs []string

	for _, err := range errs {

		var message string

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("Field %s is required", err.Field())
		case "email":
			message = fmt.Sprintf("Field %s must be a valid email address", err.Field())
		case "min":
			message = fmt.Sprintf("Field %s must be at least %s characters", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("Field %s must be at most %s characters", err.Field(), err.Param())
		case "gt":
			message = fmt.Sprintf("Field %s must be greater than %s", err.Field(), err.Param())
		case "gte":
			message = fmt.Sprintf("Field %s must be at least %s", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("Field %s must be one of [%s]", err.Field(), err.Param())
		default:
			message = fmt.Sprintf("Field %s is invalid: %s=%s", err.Field(), err.Tag(), err.Param())
		}

		errMsgs = append(errMsgs, message)

	}

	WriteJson(w, http.StatusBadRequest, ErrorResponse{
		Error:   "Validation failed",
		Code:    errors.ErrCodeValidation,
		Details: errMsgs,
	})

}
