package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the fields the client reads out of the access token. The
// decode is unverified: signature verification happens server-side, and
// this payload feeds display state only, never an authorization decision.
type Claims struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	IsSuperuser bool   `json:"is_superuser"`
	jwt.RegisteredClaims
}

// DecodeClaims parses the token payload without verifying the signature.
// It never panics; a malformed token yields an error the caller degrades
// from.
func DecodeClaims(tokenString string) (Claims, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return Claims{}, fmt.Errorf("decode token: %w", err)
	}
	return claims, nil
}
