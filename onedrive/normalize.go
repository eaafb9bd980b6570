package onedrive

import (
	"log/slog"
	"net/url"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/fileferry/onedrive-provider/provider"
)

// normalizeName NFC-normalizes an item display name. Graph returns NFD names
// for items created on macOS clients, which breaks string comparison against
// names entered elsewhere.
func normalizeName(name string) string {
	return norm.NFC.String(name)
}

// adaptDrives converts a Graph drive collection into normalized items.
// Drives present as folder-like entries whose RequestPath carries the
// driveId query a caller passes back to list that drive's contents.
func adaptDrives(dc *driveCollection) []provider.Item {
	items := make([]provider.Item, 0, len(dc.Value))

	for i := range dc.Value {
		d := &dc.Value[i]
		items = append(items, provider.Item{
			ID:          d.ID,
			Name:        normalizeName(d.Name),
			IsFolder:    true,
			RequestPath: "?" + url.Values{"driveId": {d.ID}}.Encode(),
		})
	}

	return items
}

// adaptItems converts a Graph driveItem collection into normalized items,
// preserving vendor order.
func adaptItems(ic *itemCollection, logger *slog.Logger) []provider.Item {
	items := make([]provider.Item, 0, len(ic.Value))

	for i := range ic.Value {
		items = append(items, adaptItem(&ic.Value[i], logger))
	}

	return items
}

// adaptItem projects one driveItem into the common shape.
func adaptItem(r *itemResource, logger *slog.Logger) provider.Item {
	item := provider.Item{
		ID:          r.ID,
		Name:        normalizeName(r.Name),
		IsFolder:    r.Folder != nil,
		Size:        r.Size,
		RequestPath: r.ID,
		ModifiedAt:  parseModified(r.LastModifiedDateTime, r.ID, logger),
	}

	if r.File != nil {
		item.MimeType = r.File.MimeType
	}

	// $expand=thumbnails returns at most one set per item; medium is the
	// size the orchestration UI consumes.
	if len(r.Thumbnails) > 0 && r.Thumbnails[0].Medium != nil {
		item.Thumbnail = r.Thumbnails[0].Medium.URL
	}

	return item
}

// parseModified parses the RFC3339 modification timestamp. Malformed or
// missing timestamps produce the zero time and a warning rather than failing
// the whole listing.
func parseModified(raw, itemID string, logger *slog.Logger) time.Time {
	if raw == "" {
		return time.Time{}
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		logger.Warn("invalid modification timestamp",
			slog.String("item_id", itemID),
			slog.String("raw", raw),
			slog.String("error", err.Error()),
		)

		return time.Time{}
	}

	return t
}
