//go:build integration

package e2e

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type productPayload struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

var httpClient = &http.Client{Timeout: 10 * time.Second}

// doJSON issues a request against the package server and returns the
// status code and raw body.
func doJSON(t *testing.T, method, path, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, baseURL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// mustCreateProduct creates a product over the API and fails the test on
// anything but 201.
func mustCreateProduct(t *testing.T, code, name string) productPayload {
	t.Helper()

	status, body := doJSON(t, http.MethodPost, "/products",
		`{"code":"`+code+`","name":"`+name+`"}`)
	require.Equal(t, http.StatusCreated, status, "create %s: %s", code, body)
	return decodeProduct(t, body)
}

func decodeProduct(t *testing.T, body []byte) productPayload {
	t.Helper()
	var p productPayload
	require.NoError(t, json.Unmarshal(body, &p))
	return p
}

func decodeProducts(t *testing.T, body []byte) []productPayload {
	t.Helper()
	var items []productPayload
	require.NoError(t, json.Unmarshal(body, &items))
	return items
}

// truncateProducts resets the table so listing tests see exactly what
// they seeded.
func truncateProducts(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := pool.Exec(ctx, "truncate table products restart identity")
	require.NoError(t, err)
}
