// Package jwt issues and verifies the bearer tokens of gateway operators.
package jwt

import (
	"context"
	"fmt"
	"time"
)

type Strategy string

const StrategyHMAC Strategy = "hmac"

type Options struct {
	Strategy Strategy

	// Secret must be at least 32 bytes.
	Secret []byte

	// Algorithm is one of HS256 (default), HS384, HS512.
	Algorithm string

	Issuer   string
	Audience []string

	// TTL sets exp. Zero issues tokens without expiry.
	TTL time.Duration
}

// Claims carries the registered claims plus the operator's community and
// role. Zero fields are filled from Options when signing.
type Claims struct {
	Subject   string
	Issuer    string
	Audience  []string
	ExpiresAt time.Time
	IssuedAt  time.Time
	NotBefore time.Time
	ID        string

	// Community scopes the operator to one GNOSS community. Empty means any.
	Community string
	Role      string
}

type Signer interface {
	Sign(ctx context.Context, claims Claims) (string, error)
}

// Verifier returns an error for invalid, expired or foreign tokens.
type Verifier interface {
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

type TokenManager interface {
	Signer
	Verifier
}

func New(opts Options) (TokenManager, error) {
	switch opts.Strategy {
	case StrategyHMAC, "":
		return NewHMAC(opts)
	default:
		return nil, fmt.Errorf("jwt: unknown strategy %q", opts.Strategy)
	}
}
