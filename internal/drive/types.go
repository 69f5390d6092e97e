// Package drive implements a thin REST client for a Drive-style remote
// file store: list files by query, download file content by id.
// Authentication uses a service account: an RS256-signed JWT assertion is
// exchanged for a short-lived bearer token.
package drive

// MimeTypeCSV is the MIME type of the tabular source files.
const MimeTypeCSV = "text/csv"

// File describes one remote file. Identity is ID (opaque, store-assigned,
// stable); Name is used only for matching and logging and is not unique.
type File struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Size        int64    `json:"size,string,omitempty"`
	CreatedTime string   `json:"createdTime,omitempty"`
	Parents     []string `json:"parents,omitempty"`
}

// listResponse is the wire shape of the listing endpoint.
type listResponse struct {
	Files []File `json:"files"`
}

// tokenResponse is the wire shape of the token endpoint.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}
