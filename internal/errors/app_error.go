package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	RetryAfter int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

// WithRetryAfter tells the client how many seconds to wait before retrying.
func (e *AppError) WithRetryAfter(seconds int) *AppError {
	e.RetryAfter = seconds

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeDatabaseError   = "DATABASE_ERROR"
	ErrCodeDuplicateEntry  = "DUPLICATE_ENTRY"
	ErrCodeThirdPartyError = "THIRD_PARTY_ERROR"
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS"
	ErrCodeOutOfStock      = "OUT_OF_STOCK"
	ErrCodeCouponsDisabled = "COUPONS_DISABLED"
)

// Coupon rejection reasons. Each one maps to exactly one response body.
const (
	ErrCodeMissingCode      = "MISSING_CODE"
	ErrCodeCouponNotFound   = "NOT_FOUND"
	ErrCodeNotYetValid      = "NOT_YET_VALID"
	ErrCodeExpired          = "EXPIRED"
	ErrCodeAlreadyUsed      = "ALREADY_USED"
	ErrCodeProductMismatch  = "PRODUCT_MISMATCH"
	ErrCodeCategoryMismatch = "CATEGORY_MISMATCH"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, http.StatusUnauthorized)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, http.StatusForbidden)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func DatabaseError(message string) *AppError {
	return NewAppError(ErrCodeDatabaseError, message, http.StatusInternalServerError)
}

func DuplicateEntryError(message string) *AppError {
	return NewAppError(ErrCodeDuplicateEntry, message, http.StatusConflict)
}

func ThirdPartyError(message string) *AppError {
	return NewAppError(ErrCodeThirdPartyError, message, http.StatusBadGateway)
}

func TooManyRequestsError(message string) *AppError {
	return NewAppError(ErrCodeTooManyRequests, message, http.StatusTooManyRequests)
}

func OutOfStockError() *AppError {
	return NewAppError(ErrCodeOutOfStock, "库存不足", http.StatusConflict)
}

func CouponsDisabledError() *AppError {
	return NewAppError(ErrCodeCouponsDisabled, "该商品不支持使用优惠码", http.StatusBadRequest)
}

func MissingCodeError() *AppError {
	return NewAppError(ErrCodeMissingCode, "Missing code", http.StatusBadRequest)
}

func CouponNotFoundError() *AppError {
	return NewAppError(ErrCodeCouponNotFound, "无效的优惠码", http.StatusNotFound)
}

func CouponNotYetValidError() *AppError {
	return NewAppError(ErrCodeNotYetValid, "优惠码尚未生效", http.StatusBadRequest)
}

func CouponExpiredError() *AppError {
	return NewAppError(ErrCodeExpired, "优惠码已过期", http.StatusBadRequest)
}

func CouponAlreadyUsedError() *AppError {
	return NewAppError(ErrCodeAlreadyUsed, "该优惠码已被使用", http.StatusBadRequest)
}

func CouponProductMismatchError() *AppError {
	return NewAppError(ErrCodeProductMismatch, "该优惠码不适用于此商品", http.StatusBadRequest)
}

func CouponCategoryMismatchError() *AppError {
	return NewAppError(ErrCodeCategoryMismatch, "该优惠码不适用于此分类下的商品", http.StatusBadRequest)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code string) bool {
	appErr, ok := IsAppError(err)

	return ok && appErr.Code == code
}

// field validation error.
func AddValidationError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Invalid field '%s': %s", field, reason))
}
