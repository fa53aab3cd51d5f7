// Package hash stores and checks operator passwords.
package hash

import (
	"context"
	"errors"
	"fmt"
)

// ErrMismatch is returned by Compare when the plaintext does not match.
var ErrMismatch = errors.New("hash: plaintext does not match")

type Strategy string

const StrategyBcrypt Strategy = "bcrypt"

type Options struct {
	Strategy Strategy

	// Cost is the bcrypt work factor. Zero uses bcrypt.DefaultCost.
	Cost int
}

// Hasher must be safe for concurrent use.
type Hasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)

	// Compare returns nil on a match and an error wrapping ErrMismatch
	// otherwise.
	Compare(ctx context.Context, hashed, plaintext string) error
}

func New(opts Options) (Hasher, error) {
	switch opts.Strategy {
	case StrategyBcrypt, "":
		return NewBcrypt(opts.Cost)
	default:
		return nil, fmt.Errorf("hash: unknown strategy %q", opts.Strategy)
	}
}
