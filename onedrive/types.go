package onedrive

import "encoding/json"

// Raw Graph API response shapes. Unexported — callers only ever see the
// normalized provider types produced in normalize.go.

// userResource mirrors the Graph API /me JSON response.
type userResource struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Mail        string `json:"mail"`
	// UPN is a fallback when mail is empty (common on Personal accounts
	// where the mail field is often blank).
	UPN string `json:"userPrincipalName"`
}

// username resolves the email-like identifier used for attribution:
// mail address first, principal name when mail is absent.
func (u *userResource) username() string {
	if u.Mail != "" {
		return u.Mail
	}

	return u.UPN
}

// driveResource mirrors one entry of a Graph drive collection.
type driveResource struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	DriveType string `json:"driveType"`
}

// driveCollection wraps GET me/drives and GET sites/{id}/drives.
type driveCollection struct {
	Value    []driveResource `json:"value"`
	NextLink string          `json:"@odata.nextLink"` //nolint:tagliatelle // OData annotation key
}

// siteResource mirrors one entry of a Graph site search response.
type siteResource struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// siteCollection wraps GET sites?search=.
type siteCollection struct {
	Value    []siteResource `json:"value"`
	NextLink string         `json:"@odata.nextLink"` //nolint:tagliatelle // OData annotation key
}

// itemResource mirrors a Graph driveItem.
type itemResource struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	Size                 int64            `json:"size"`
	LastModifiedDateTime string           `json:"lastModifiedDateTime"`
	File                 *fileFacet       `json:"file"`
	Folder               *json.RawMessage `json:"folder"`
	Thumbnails           []thumbnailSet   `json:"thumbnails"`
}

type fileFacet struct {
	MimeType string `json:"mimeType"`
}

// thumbnailSet carries the pre-sized thumbnail URLs returned by
// $expand=thumbnails. Medium is the size the orchestration UI consumes.
type thumbnailSet struct {
	Medium *thumbnailInfo `json:"medium"`
}

type thumbnailInfo struct {
	URL string `json:"url"`
}

// itemCollection wraps GET .../children.
type itemCollection struct {
	Value    []itemResource `json:"value"`
	NextLink string         `json:"@odata.nextLink"` //nolint:tagliatelle // OData annotation key
}
