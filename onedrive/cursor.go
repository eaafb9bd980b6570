package onedrive

import (
	"fmt"
	"net/url"
)

// skipTokenParam is the Graph pagination continuation query parameter.
const skipTokenParam = "$skiptoken"

// cursorParam is the portable pagination parameter this adapter exposes.
// Callers round-trip it as an opaque string and never see Graph's
// continuation-link format.
const cursorParam = "cursor"

// nextPagePath converts a Graph @odata.nextLink into the adapter's portable
// cursor query string ("?cursor=<value>"). Returns "" when there is no
// further page.
func nextPagePath(nextLink string) (string, error) {
	if nextLink == "" {
		return "", nil
	}

	u, err := url.Parse(nextLink)
	if err != nil {
		return "", fmt.Errorf("onedrive: parsing continuation link: %w", err)
	}

	token := u.Query().Get(skipTokenParam)
	if token == "" {
		return "", nil
	}

	q := url.Values{cursorParam: {token}}

	return "?" + q.Encode(), nil
}

// applyCursor attaches a previously issued cursor to an outgoing request's
// query as the Graph skip-token. The cursor carries the raw skip-token value,
// so the round trip through nextPagePath reproduces it exactly.
func applyCursor(q url.Values, cursor string) {
	if cursor != "" {
		q.Set(skipTokenParam, cursor)
	}
}
