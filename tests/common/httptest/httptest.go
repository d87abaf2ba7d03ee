package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// PerformRequest runs a request through the router. A non-empty passkey
// is sent in the admin header; body is JSON-encoded when not nil.
func PerformRequest(t *testing.T, router *gin.Engine, method, url string, body any, passkey string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if passkey != "" {
		req.Header.Set("X-Admin-Passkey", passkey)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// AssertSuccessResponse checks the status and decodes the body into out
// when out is not nil.
func AssertSuccessResponse(t *testing.T, rec *httptest.ResponseRecorder, expectCode int, out any) {
	t.Helper()

	require.Equal(t, expectCode, rec.Code, "unexpected status, body: %s", rec.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
}

// AssertErrorResponse checks the status and, when expectMsg is non-empty,
// that the error message contains it.
func AssertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, expectCode int, expectMsg string) {
	t.Helper()

	require.Equal(t, expectCode, rec.Code, "unexpected status, body: %s", rec.Body.String())
	if expectMsg == "" {
		return
	}

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, expectMsg)
}

// AssertHeaders checks that every expected header is present.
func AssertHeaders(t *testing.T, rec *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()

	for k, v := range expected {
		assert.Equal(t, v, rec.Header().Get(k), "header %s", k)
	}
}
