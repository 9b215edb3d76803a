// Package auth implements the identity gate: bcrypt password hashing and
// stateless HS256 tokens. Tokens are valid for exactly one hour from issuance;
// there is no refresh or revocation, so a compromised token stays usable until
// it expires naturally.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// tokenTTL is the fixed lifetime of issued tokens.
const tokenTTL = time.Hour

var (
	// ErrMissingToken means no credentials were supplied at all.
	ErrMissingToken = errors.New("missing authorization")
	// ErrInvalidToken means credentials were supplied but are malformed,
	// tampered with, or expired.
	ErrInvalidToken = errors.New("invalid token")
)

// Principal represents the authenticated caller from JWT.
type Principal struct {
	UserID int64
}

type principalKey struct{}

// WithPrincipal stores the principal in context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext retrieves the principal from context (if any).
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok
}

type claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token embedding the user id, valid for one hour
// from now.
func IssueToken(userID int64, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	now := time.Now()
	c := claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

// ParseFromRequest extracts and validates a Bearer JWT from the Authorization
// header and returns a Principal. A missing header yields ErrMissingToken so
// callers can distinguish "no credentials" from "bad credentials".
func ParseFromRequest(r *http.Request, secret string) (*Principal, error) {
	h := r.Header.Get("Authorization")
	if strings.TrimSpace(h) == "" {
		return nil, ErrMissingToken
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, ErrInvalidToken
	}
	return ParseToken(strings.TrimSpace(parts[1]), secret)
}

// ParseToken validates signature and expiry and extracts the caller identity.
func ParseToken(tokenStr string, secret string) (*Principal, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	var c claims
	tok, err := jwt.ParseWithClaims(tokenStr, &c, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if c.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return &Principal{UserID: c.UserID}, nil
}
