package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/geekfaka/storefront/internal/testutils"
	"github.com/stretchr/testify/require"
)

// newTestRequest -> creates a request with context containing a logger
func newTestRequest(method, target string, body []byte) *http.Request {
	return testutils.CreateTestRequestWithoutContext(method, target, bytes.NewReader(body), nil)
}

// newAdminRequest -> same, plus admin claims and the path values
func newAdminRequest(method, target string, body []byte, pathParams map[string]string) *http.Request {
	return testutils.CreateAdminRequest(method, target, bytes.NewReader(body), pathParams)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)

	return b
}
