package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed session token together with the identity it binds.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation sent to the client.
	SignedString string `json:"-"`

	// UserID is the identity extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// ExpiresAt mirrors the "exp" claim.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
