// Package oauth signs outbound requests with OAuth 1.0a (RFC 5849).
// Signers are safe for concurrent use; every Sign call draws a fresh
// timestamp and nonce.
package oauth

import (
	"context"
	"fmt"
	"time"
)

// Strategy defines which signature method to use.
type Strategy string

const (
	StrategyHMACSHA1 Strategy = "HMAC-SHA1"
)

const (
	Version      = "1.0"
	DefaultRealm = "Example"
)

// NonceSource yields the per-request nonce. uid.UIDGenerator satisfies it.
type NonceSource interface {
	Generate(ctx context.Context) (string, error)
}

// Options configures the signer.
type Options struct {
	// Strategy selects the signature method.
	Strategy Strategy

	ConsumerKey    string
	ConsumerSecret string
	TokenKey       string
	TokenSecret    string

	// Realm is rendered in the Authorization header only. Defaults to DefaultRealm.
	Realm string

	// Clock returns the signing time. Defaults to time.Now.
	Clock func() time.Time

	// Nonce generates nonces. Defaults to a random UUID without dashes.
	Nonce NonceSource
}

// Signer produces signed requests.
// Implementations must be safe for concurrent use.
type Signer interface {
	// Sign computes the signature of method and rawURL. Query parameters of
	// rawURL take part in the signature and are kept in the signed URL.
	Sign(ctx context.Context, method, rawURL string) (SignedRequest, error)
}

// New creates a Signer based on the provided options.
func New(opts Options) (Signer, error) {
	switch opts.Strategy {
	case StrategyHMACSHA1, "":
		return NewHMACSHA1(opts)
	default:
		return nil, fmt.Errorf("oauth: unknown strategy %q", opts.Strategy)
	}
}
