package provider

import (
	"errors"
	"fmt"
)

// Sentinel errors for provider failure classification.
// Use errors.Is(err, provider.ErrAuthExpired) to check.
var (
	// ErrAuthExpired signals the vendor rejected the credential (HTTP 401).
	// The caller may refresh the token and retry the operation.
	ErrAuthExpired = errors.New("provider: authentication expired")

	// ErrRequestFailed covers every other transport or vendor-reported failure.
	ErrRequestFailed = errors.New("provider: request failed")

	// ErrUnsupported signals an operation the adapter deliberately refuses.
	ErrUnsupported = errors.New("provider: operation not supported")
)

// OpError wraps a sentinel error with the provider name, the operation tag,
// and a human-readable message resolved from the vendor's error envelope
// when one was present.
type OpError struct {
	Provider string
	Op       string // "list", "download", "size", "thumbnail"
	Message  string
	Err      error // sentinel, for errors.Is()
}

func (e *OpError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s: %s", e.Provider, e.Op, e.Message)
	}

	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
