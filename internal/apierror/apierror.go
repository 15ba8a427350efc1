// Package apierror decodes the backend's error envelope into a tagged value
// instead of probing response bodies property-by-property. The backend emits
// either {"detail": "..."} or, for login validation failures,
// {"non_field_errors": ["..."]}; anything else falls back to the unknown
// variant and callers substitute a family-specific default message.
package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Variant tags which envelope shape the server returned.
type Variant string

const (
	VariantDetail   Variant = "detail"
	VariantNonField Variant = "non_field_errors"
	VariantUnknown  Variant = "unknown"
)

// APIError is a non-2xx response from the marketplace API.
type APIError struct {
	StatusCode     int
	Variant        Variant
	Detail         string
	NonFieldErrors []string
}

func (e *APIError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// Message returns the server-supplied human-readable message, or "" when the
// envelope carried none.
func (e *APIError) Message() string {
	switch e.Variant {
	case VariantDetail:
		return e.Detail
	case VariantNonField:
		if len(e.NonFieldErrors) > 0 {
			return e.NonFieldErrors[0]
		}
	}
	return ""
}

type envelope struct {
	Detail         string   `json:"detail"`
	NonFieldErrors []string `json:"non_field_errors"`
}

// Decode builds an APIError from a response body. A body that is not the
// conventional envelope still yields a usable error with VariantUnknown.
func Decode(statusCode int, body []byte) *APIError {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		if len(env.NonFieldErrors) > 0 {
			return &APIError{
				StatusCode:     statusCode,
				Variant:        VariantNonField,
				NonFieldErrors: env.NonFieldErrors,
			}
		}
		if env.Detail != "" {
			return &APIError{
				StatusCode: statusCode,
				Variant:    VariantDetail,
				Detail:     env.Detail,
			}
		}
	}
	return &APIError{StatusCode: statusCode, Variant: VariantUnknown}
}

// As unwraps err into an *APIError if one is in the chain.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// StatusCode returns the HTTP status of err, or 0 for transport failures
// that never produced a response.
func StatusCode(err error) int {
	if apiErr, ok := As(err); ok {
		return apiErr.StatusCode
	}
	return 0
}

// MessageOr returns the server message carried by err, falling back to
// fallback for transport errors and envelopes without one.
func MessageOr(err error, fallback string) string {
	if apiErr, ok := As(err); ok {
		if msg := apiErr.Message(); msg != "" {
			return msg
		}
	}
	return fallback
}
