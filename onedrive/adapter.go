// Package onedrive implements the provider contract against the Microsoft
// Graph v1.0 API: drive and SharePoint site listing, folder children with
// thumbnail expansion, content download, and item size lookup. Responses are
// normalized into provider types; pagination is exposed through an opaque
// cursor so callers never see Graph continuation links.
package onedrive

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/fileferry/onedrive-provider/provider"
)

// providerName tags log records and OpError values from this adapter.
const providerName = "onedrive"

// DefaultBaseURL is the Graph v1.0 endpoint.
const DefaultBaseURL = "https://graph.microsoft.com/v1.0"

// SharePointSitesID is the reserved DriveID sentinel that selects the
// SharePoint site search instead of a concrete drive.
const SharePointSitesID = "sharepoint-sites"

// manualRevokeURL is where users revoke app access themselves — Graph has no
// token revocation endpoint an app can call.
const manualRevokeURL = "https://account.live.com/consent/Manage"

// defaultSiteConcurrency bounds the per-site drive fetch fan-out when
// Options.SiteConcurrency is unset. Site search can return hundreds of sites
// on large tenants; an unbounded burst trips Graph throttling.
const defaultSiteConcurrency = 5

// Options configures an Adapter. The zero value is usable.
type Options struct {
	// BaseURL overrides the Graph endpoint. Tests point this at a fake server.
	BaseURL string
	// HTTPClient overrides the transport. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	// SiteConcurrency bounds the concurrent sites/{id}/drives fetches during
	// SharePoint sites shaping. Defaults to defaultSiteConcurrency.
	SiteConcurrency int
	// Logger receives structured operation logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// Adapter implements provider.Provider against the Graph API. It holds no
// per-user state: tokens arrive per call and die with the operation.
type Adapter struct {
	baseURL         string
	httpClient      *http.Client
	siteConcurrency int
	logger          *slog.Logger
}

var _ provider.Provider = (*Adapter)(nil)

// New creates an Adapter from opts, filling in defaults for unset fields.
func New(opts Options) *Adapter {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	if opts.SiteConcurrency <= 0 {
		opts.SiteConcurrency = defaultSiteConcurrency
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Adapter{
		baseURL:         opts.BaseURL,
		httpClient:      opts.HTTPClient,
		siteConcurrency: opts.SiteConcurrency,
		logger:          opts.Logger,
	}
}

// opLogger returns a logger tagged with the operation name and a fresh
// correlation ID, so one operation's records can be grepped together.
func (a *Adapter) opLogger(op string) *slog.Logger {
	return a.logger.With(
		slog.String("provider", providerName),
		slog.String("op", op),
		slog.String("op_id", uuid.NewString()),
	)
}

// Logout reports that the credential cannot be revoked vendor-side. Graph
// exposes no revocation call, so the user must revoke access manually at the
// account management page. No network request is made.
func (a *Adapter) Logout(_ context.Context) (*provider.LogoutResult, error) {
	a.opLogger("logout").Info("no vendor-side revocation, returning manual revoke URL")

	return &provider.LogoutResult{
		Revoked:         false,
		ManualRevokeURL: manualRevokeURL,
	}, nil
}

// Thumbnail always refuses. Listing items embed public thumbnail URLs
// (via $expand=thumbnails), so out-of-band thumbnail fetching is never needed
// and deliberately unimplemented. No network request is made.
func (a *Adapter) Thumbnail(_ context.Context, _ provider.DownloadInput) (*provider.Download, error) {
	a.opLogger("thumbnail").Error("thumbnail fetch is not supported, use the thumbnail URL from listing items")

	return nil, &provider.OpError{
		Provider: providerName,
		Op:       "thumbnail",
		Message:  "call to thumbnail is not implemented",
		Err:      provider.ErrUnsupported,
	}
}
