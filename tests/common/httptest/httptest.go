//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// RawJSON is sent verbatim, for requests whose body must not be valid JSON.
type RawJSON string

// PerformRequest sends body as JSON and authToken as a bearer token when they are set.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, encodeBody(t, body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func encodeBody(t *testing.T, body any) io.Reader {
	t.Helper()

	switch b := body.(type) {
	case nil:
		return http.NoBody
	case RawJSON:
		return bytes.NewBufferString(string(b))
	default:
		encoded, err := json.Marshal(b)
		require.NoError(t, err, "Failed to encode request body to JSON")
		return bytes.NewBuffer(encoded)
	}
}

// WithQuery appends pairs of key and value to path as a query string.
func WithQuery(path string, kv ...string) string {
	if len(kv)%2 != 0 {
		panic("WithQuery: odd number of key/value arguments")
	}
	q := url.Values{}
	for i := 0; i < len(kv); i += 2 {
		q.Set(kv[i], kv[i+1])
	}
	return path + "?" + q.Encode()
}

func DecodeResponseBody(t *testing.T, body *bytes.Buffer, target any) error {
	t.Helper()

	err := json.NewDecoder(body).Decode(target)
	require.NoError(t, err, "Failed to decode response body")

	return err
}
