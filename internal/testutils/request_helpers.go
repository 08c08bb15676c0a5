package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/geekfaka/storefront/internal/api/middleware"
	"github.com/geekfaka/storefront/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// AdminClaims are the claims a successful admin login would carry.
func AdminClaims(ttl time.Duration) *models.Claims {
	now := time.Now()

	return &models.Claims{
		Username: "admin",
		Role:     models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

// AdminBearer signs AdminClaims with key and returns an Authorization header value.
func AdminBearer(t *testing.T, key []byte) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims(time.Hour)).SignedString(key)
	require.NoError(t, err)

	return "Bearer " + token
}

// CreateAdminRequest builds a request that already passed the admin auth middleware.
func CreateAdminRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := CreateTestRequestWithoutContext(method, target, body, pathParams)

	return req.WithContext(middleware.WithClaims(req.Context(), AdminClaims(time.Hour)))
}

// CreateTestRequestWithoutContext builds an anonymous request with path values
// set and a discarding request logger, as the router would.
func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	return req.WithContext(middleware.WithLogger(req.Context(), discardLogger))
}
