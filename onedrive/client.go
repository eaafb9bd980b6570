package onedrive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fileferry/onedrive-provider/provider"
)

const userAgent = "fileferry-onedrive/0.1"

// client is a throwaway HTTP client bound to one bearer token. A fresh value
// is constructed per operation so no credential or connection state leaks
// across calls — the transport collaborator owns pooling.
type client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// newClient binds the adapter's base URL and transport to a per-call token.
func (a *Adapter) newClient(token string) *client {
	return &client{
		baseURL:    a.baseURL,
		token:      token,
		httpClient: a.httpClient,
	}
}

// requestError carries a failed Graph response: status code, request ID, and
// the message extracted from the Graph error envelope when present.
type requestError struct {
	StatusCode int
	RequestID  string
	Message    string
}

func (e *requestError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("graph: HTTP %d (request-id: %s): %s", e.StatusCode, e.RequestID, e.Message)
	}

	return fmt.Sprintf("graph: HTTP %d: %s", e.StatusCode, e.Message)
}

// errorEnvelope mirrors the Graph API JSON error body.
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// get issues an authenticated GET against the Graph API. The path is appended
// to the client's base URL. Non-2xx responses are drained, closed, and
// returned as *requestError. The caller closes the body on success.
func (c *client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("graph: creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("graph: request canceled: %w", ctx.Err())
		}

		return nil, fmt.Errorf("graph: %s: %w", path, err)
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return resp, nil
	}

	body, readErr := io.ReadAll(resp.Body)
	resp.Body.Close()

	if readErr != nil {
		body = nil
	}

	return nil, &requestError{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get("request-id"),
		Message:    envelopeMessage(body),
	}
}

// getJSON issues a GET and decodes the JSON response body into out.
func (c *client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("graph: decoding response for %s: %w", path, err)
	}

	return nil
}

// envelopeMessage extracts error.message from a Graph error body. Returns the
// raw body text when the envelope does not parse, so no detail is lost.
func envelopeMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
		return env.Error.Message
	}

	return string(body)
}

// classify translates a transport-layer error into the provider taxonomy,
// tagging it with the operation name. HTTP 401 maps to ErrAuthExpired so the
// caller can distinguish an expired credential and attempt refresh; every
// other failure maps to ErrRequestFailed.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	sentinel := provider.ErrRequestFailed
	message := err.Error()

	var reqErr *requestError
	if errors.As(err, &reqErr) {
		message = reqErr.Message

		if reqErr.StatusCode == http.StatusUnauthorized {
			sentinel = provider.ErrAuthExpired
		}
	}

	return &provider.OpError{
		Provider: providerName,
		Op:       op,
		Message:  message,
		Err:      sentinel,
	}
}
