package onedrive

import (
	"context"
	"log/slog"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/fileferry/onedrive-provider/provider"
)

// listKind selects which Graph collection a List call targets.
type listKind int

const (
	// listDrives targets the set of drives for the current user.
	listDrives listKind = iota
	// listSites targets the SharePoint site search.
	listSites
	// listChildren targets a folder's children within a specific drive.
	listChildren
)

// listPath resolves the target path for a List call. The selection is
// mutually exclusive and checked in order: no drive ID means the user's
// drive set, the sites sentinel means the SharePoint site search, and any
// other drive ID means a folder's children (root when Directory is absent
// or the root marker). The children path always requests thumbnail
// expansion; the cursor, when present, attaches on every path kind.
func listPath(in provider.ListInput) (listKind, string) {
	q := url.Values{}
	applyCursor(q, in.Query.Cursor)

	switch {
	case in.Query.DriveID == "":
		return listDrives, "/me/drives" + encodeQuery(q)

	case in.Query.DriveID == SharePointSitesID:
		q.Set("search", "")
		return listSites, "/sites" + encodeQuery(q)

	default:
		q.Set("$expand", "thumbnails")

		folder := "root"
		if in.Directory != "" && in.Directory != provider.RootDirectory {
			folder = "items/" + url.PathEscape(in.Directory)
		}

		return listChildren, "/drives/" + url.PathEscape(in.Query.DriveID) + "/" + folder + "/children" + encodeQuery(q)
	}
}

// encodeQuery renders a query string with its leading "?", or "" when empty.
func encodeQuery(q url.Values) string {
	if len(q) == 0 {
		return ""
	}

	return "?" + q.Encode()
}

// List returns one page of the selected collection, normalized. The profile
// fetch (for username attribution) and the listing fetch run concurrently;
// both must succeed or the whole operation fails — there is no
// partial-success result.
func (a *Adapter) List(ctx context.Context, in provider.ListInput) (*provider.Listing, error) {
	logger := a.opLogger("list")
	c := a.newClient(in.Token)

	kind, path := listPath(in)

	logger.Info("listing",
		slog.String("path", path),
		slog.String("drive_id", in.Query.DriveID),
		slog.Bool("has_cursor", in.Query.Cursor != ""),
	)

	var (
		user     userResource
		drives   driveCollection
		sites    siteCollection
		children itemCollection
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.getJSON(gctx, "/me", &user)
	})

	g.Go(func() error {
		switch kind {
		case listDrives:
			return c.getJSON(gctx, path, &drives)
		case listSites:
			return c.getJSON(gctx, path, &sites)
		default:
			return c.getJSON(gctx, path, &children)
		}
	})

	if err := g.Wait(); err != nil {
		return nil, classify("list", err)
	}

	listing, err := a.shapeListing(ctx, c, kind, &drives, &sites, &children, user.username(), logger)
	if err != nil {
		return nil, err
	}

	logger.Debug("listing complete",
		slog.String("username", listing.Username),
		slog.Int("items", len(listing.Items)),
		slog.Bool("has_next_page", listing.NextPagePath != ""),
	)

	return listing, nil
}

// shapeListing dispatches the fetched collection to the right normalizer.
// The sites path fans out per site (sites.go); the other paths normalize
// directly and attach the portable next-page cursor.
func (a *Adapter) shapeListing(
	ctx context.Context,
	c *client,
	kind listKind,
	drives *driveCollection,
	sites *siteCollection,
	children *itemCollection,
	username string,
	logger *slog.Logger,
) (*provider.Listing, error) {
	switch kind {
	case listSites:
		return a.shapeSiteDrives(ctx, c, sites, username, logger)

	case listDrives:
		next, err := nextPagePath(drives.NextLink)
		if err != nil {
			return nil, classify("list", err)
		}

		return &provider.Listing{
			Username:     username,
			Items:        adaptDrives(drives),
			NextPagePath: next,
		}, nil

	default:
		next, err := nextPagePath(children.NextLink)
		if err != nil {
			return nil, classify("list", err)
		}

		return &provider.Listing{
			Username:     username,
			Items:        adaptItems(children, logger),
			NextPagePath: next,
		}, nil
	}
}
