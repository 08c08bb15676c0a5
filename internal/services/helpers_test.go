package service_test

import (
	"testing"

	appErrors "github.com/geekfaka/storefront/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

// assertAppError checks that err is an AppError with the given code and status.
func assertAppError(t *testing.T, err error, code string, status int) *appErrors.AppError {
	t.Helper()

	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok, "expected an AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, status, appErr.StatusCode)

	return appErr
}
