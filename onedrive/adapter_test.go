package onedrive

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fileferry/onedrive-provider/provider"
)

func TestNew_Defaults(t *testing.T) {
	adapter := New(Options{})

	assert.Equal(t, DefaultBaseURL, adapter.baseURL)
	assert.Equal(t, http.DefaultClient, adapter.httpClient)
	assert.Equal(t, defaultSiteConcurrency, adapter.siteConcurrency)
	assert.NotNil(t, adapter.logger)
}

func TestLogout_NoNetworkCall(t *testing.T) {
	srv := noNetworkServer(t)
	defer srv.Close()

	adapter := newTestAdapter(t, srv.URL)
	res, err := adapter.Logout(context.Background())
	require.NoError(t, err)

	assert.False(t, res.Revoked)
	assert.NotEmpty(t, res.ManualRevokeURL)
}

func TestThumbnail_AlwaysFailsWithoutNetworkCall(t *testing.T) {
	srv := noNetworkServer(t)
	defer srv.Close()

	adapter := newTestAdapter(t, srv.URL)
	_, err := adapter.Thumbnail(context.Background(), provider.DownloadInput{ID: "item-1", Token: "t"})
	require.Error(t, err)

	assert.ErrorIs(t, err, provider.ErrUnsupported)

	var opErr *provider.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "thumbnail", opErr.Op)
	assert.Equal(t, "onedrive", opErr.Provider)
}
