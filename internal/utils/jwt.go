// Package utils provides helpers for minting and checking editor tokens.
package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// EditorRole is the role claim required on create, edit and delete routes.
const EditorRole = "EDITOR"

// EditorToken is a signed HS256 JWT along with its expiry.
type EditorToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// EditorClaims are the claims carried by an editor token.
type EditorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// NewEditorToken signs a token for subject that expires after ttl.
func NewEditorToken(secret, subject string, ttl time.Duration) (EditorToken, error) {
	if secret == "" {
		return EditorToken{}, errors.New("empty signing secret")
	}
	now := time.Now().UTC()
	exp := now.Add(ttl)
	claims := EditorClaims{
		Role: EditorRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return EditorToken{}, err
	}
	return EditorToken{Token: signed, Exp: exp}, nil
}

// ParseEditorToken verifies raw against secret and returns its claims.
// Tokens signed with anything but HMAC, expired tokens and tokens without
// the editor role are rejected.
func ParseEditorToken(secret, raw string) (*EditorClaims, error) {
	var claims EditorClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Role != EditorRole {
		return nil, fmt.Errorf("role %q is not allowed to edit", claims.Role)
	}
	return &claims, nil
}
