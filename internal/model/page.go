package model

// Page is the paginated list envelope returned by every list endpoint.
// Next and Previous are opaque cursor URLs; the page number consumed by a
// follow-up fetch is parsed out of them, never computed locally.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}
