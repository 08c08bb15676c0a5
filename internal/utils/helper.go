package utils

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	appErrors "github.com/geekfaka/storefront/internal/errors"
	"github.com/geekfaka/storefront/internal/models"
	"github.com/geekfaka/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := DecodeJSONBody(r, dest); err != nil {
		response.Error(w, appErrors.BadRequestError(err.Error()))
		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
			return false
		}

		slog.Error("Validation could not run", slog.String("error", err.Error()))
		response.Error(w, appErrors.ValidationError("Invalid input data"))
		return false
	}

	return true

}

// ParsePagination reads page and pageSize from the query string, falling back
// to page 1 and the default size; pageSize is capped at MaxPageSize.
func ParsePagination(r *http.Request) (page, pageSize int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err = strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil || pageSize < 1 {
		pageSize = models.DefaultPageSize
	}

	if pageSize > models.MaxPageSize {
		pageSize = models.MaxPageSize
	}

	return page, pageSize
}
