// Package provider defines the generic cloud file provider contract consumed
// by the upload orchestration service. Vendor adapters (onedrive, and future
// backends) implement Provider and translate their API's response shapes into
// the normalized types here — callers never see raw vendor data.
package provider

import (
	"context"
	"io"
	"time"
)

// RootDirectory is the logical root marker. A List call whose Directory is
// empty or equal to RootDirectory addresses the root of the selected drive.
const RootDirectory = "root"

// Query carries the per-request selectors shared by all operations.
type Query struct {
	// DriveID selects which backing drive or site collection to target.
	// Empty means "the set of drives available to the authenticated user".
	// Adapters may reserve sentinel values for special collections.
	DriveID string

	// Cursor is an opaque pagination cursor previously returned in
	// Listing.NextPagePath. Empty starts from the first page.
	Cursor string
}

// ListInput is the request for Provider.List.
type ListInput struct {
	// Directory is the folder to list within the selected drive. Empty or
	// RootDirectory addresses the drive root.
	Directory string
	Query     Query
	// Token is an opaque bearer token supplied per call. Adapters never
	// store it beyond the lifetime of one operation.
	Token string
}

// DownloadInput is the request for Provider.Download and Provider.Size.
type DownloadInput struct {
	ID    string
	Query Query
	Token string
}

// Listing is the normalized result of a List operation. Items preserve the
// order returned by the vendor.
type Listing struct {
	Username     string `json:"username"`
	Items        []Item `json:"items"`
	NextPagePath string `json:"nextPagePath,omitempty"`
}

// Item is a vendor item projected into the common shape.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType,omitempty"`
	IsFolder bool   `json:"isFolder"`
	Size     int64  `json:"size"`
	// Thumbnail is a public thumbnail URL embedded by the vendor, if any.
	Thumbnail string `json:"thumbnail,omitempty"`
	// RequestPath is the value a caller passes back (as Directory or as a
	// DriveID query) to descend into this item.
	RequestPath string    `json:"requestPath"`
	ModifiedAt  time.Time `json:"modifiedAt"`
}

// Download is an open content stream. The caller must Close the stream.
// Adapters verify the transfer has started successfully before returning,
// so a non-nil Download never wraps a silently failed request.
type Download struct {
	Stream io.ReadCloser
	// ContentLength is the vendor-reported length, -1 if unknown.
	ContentLength int64
}

// LogoutResult reports whether the adapter revoked the credential vendor-side.
// When Revoked is false, ManualRevokeURL points the user at the vendor's
// account management page to revoke access themselves.
type LogoutResult struct {
	Revoked         bool   `json:"revoked"`
	ManualRevokeURL string `json:"manual_revoke_url,omitempty"`
}

// Provider is the capability contract a vendor adapter fulfills.
type Provider interface {
	List(ctx context.Context, in ListInput) (*Listing, error)
	Download(ctx context.Context, in DownloadInput) (*Download, error)
	Size(ctx context.Context, in DownloadInput) (int64, error)
	Logout(ctx context.Context) (*LogoutResult, error)
	// Thumbnail fetches an out-of-band thumbnail. Adapters whose listing
	// items embed public thumbnail URLs refuse with ErrUnsupported.
	Thumbnail(ctx context.Context, in DownloadInput) (*Download, error)
}
