package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT identifying the front-end surface (the caller) that sends
// requests to the vault daemon.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for standard claim access. Caller is the cached "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Caller names the surface the token was issued to (e.g. "vaultctl").
	Caller string `json:"-"`
}

// GetCaller extracts the caller name from the "sub" claim.
func (t *Token) GetCaller() (string, error) {
	caller, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting caller from token: %w", err)
	}
	return caller, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
