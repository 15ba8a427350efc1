// Package service implements the remote operation families. Every method
// follows the same lifecycle: mark the owning resource pending, call the
// endpoint, settle with the typed payload or a normalized error string.
// Bearer attachment is explicit per call site; operations that need it take
// the token from the session through TokenSource.
package service

// TokenSource supplies the current access token. The session manager
// implements it.
type TokenSource interface {
	AccessToken() string
}

type detailResponse struct {
	Detail string `json:"detail"`
}
