package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the claim set carried by every issued bearer token.
//
// The standard "sub" claim holds the user identifier; Superuser carries the
// elevated capability flag so the server does not need a user lookup per request.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Superuser mirrors [User.Superuser] at the moment the token was issued.
	Superuser bool `json:"su,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"token"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID uuid.UUID `json:"-"`

	// Superuser is the elevated capability flag extracted from the claims.
	Superuser bool `json:"-"`
}

// Principal returns the actor the token was issued for.
func (t *Token) Principal() Principal {
	return Principal{ID: t.UserID, Superuser: t.Superuser}
}

// GetUserID extracts the user identifier from the token's "sub" claim.
func (t *Token) GetUserID() (uuid.UUID, error) {
	if t.Token == nil {
		return uuid.Nil, fmt.Errorf("error extracting UserID from token: empty token")
	}

	subject, err := t.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error converting UserID from token to uuid: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
