package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT bearer token issued for a remote store account.
//
// It embeds [jwt.RegisteredClaims] for standard claim access. The "sub" claim
// carries the account ID.
type Token struct {
	// Token is the underlying parsed JWT. Excluded from JSON serialization
	// because only the compact string form is meaningful outside the process.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// AccountID is a cached copy of the "sub" claim.
	AccountID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
