package onedrive

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

// rawMessage wraps bytes as a *json.RawMessage for facet presence tests.
func rawMessage(b []byte) *json.RawMessage {
	m := json.RawMessage(b)
	return &m
}

// newTestAdapter creates an Adapter pointing at the given httptest server.
func newTestAdapter(t *testing.T, url string) *Adapter {
	t.Helper()

	return New(Options{
		BaseURL: url,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

// noNetworkServer fails the test if any request reaches it. Used to prove
// that logout and thumbnail never touch the network.
func noNetworkServer(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected network call: %s %s", r.Method, r.URL)
	}))
}

// meHandler writes a standard /me profile response.
func meHandler(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{
		"id": "user-1",
		"displayName": "Test User",
		"mail": "test@example.com",
		"userPrincipalName": "upn@example.com"
	}`))
}
