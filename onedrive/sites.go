package onedrive

import (
	"context"
	"log/slog"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/fileferry/onedrive-provider/provider"
)

// shapeSiteDrives expands a site search response into one flat drive listing:
// every site's drives are fetched, normalized as a drive list, and each item
// name is prefixed with the owning site's display name so identically-named
// document libraries from different sites stay distinguishable.
//
// All per-site fetches complete before the listing is returned, and any
// failure fails the whole operation. The fan-out is bounded by the adapter's
// SiteConcurrency option — site search can return hundreds of sites on large
// tenants, and an unbounded burst trips Graph throttling.
//
// The next-page cursor comes from the original site search response, not
// from any per-site drive collection: pagination advances through sites.
func (a *Adapter) shapeSiteDrives(
	ctx context.Context,
	c *client,
	sites *siteCollection,
	username string,
	logger *slog.Logger,
) (*provider.Listing, error) {
	logger.Info("expanding site drives",
		slog.Int("sites", len(sites.Value)),
		slog.Int("concurrency", a.siteConcurrency),
	)

	// Indexed by site so the flattened result preserves site order
	// regardless of fetch completion order.
	perSite := make([][]provider.Item, len(sites.Value))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.siteConcurrency)

	for i := range sites.Value {
		i := i
		site := &sites.Value[i]

		g.Go(func() error {
			var dc driveCollection
			if err := c.getJSON(gctx, "/sites/"+url.PathEscape(site.ID)+"/drives", &dc); err != nil {
				return err
			}

			items := adaptDrives(&dc)
			for j := range items {
				items[j].Name = normalizeName(site.DisplayName) + " " + items[j].Name
			}

			perSite[i] = items

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, classify("list", err)
	}

	next, err := nextPagePath(sites.NextLink)
	if err != nil {
		return nil, classify("list", err)
	}

	var items []provider.Item
	for _, si := range perSite {
		items = append(items, si...)
	}

	return &provider.Listing{
		Username:     username,
		Items:        items,
		NextPagePath: next,
	}, nil
}
