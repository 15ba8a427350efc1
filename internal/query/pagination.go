package query

import "net/url"

// PageFromURL extracts the page query parameter from a next/previous cursor
// URL returned by a paginated list endpoint. The server owns the page
// numbering; this never computes a page locally. Returns ok=false when the
// URL is unparsable or carries no page parameter.
func PageFromURL(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	page := u.Query().Get("page")
	if page == "" {
		return "", false
	}
	return page, true
}
