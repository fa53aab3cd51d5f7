// Package uid generates identifiers. Snowflake ids serve as OAuth nonces,
// UUID v7 ids name massive loads and their packages.
package uid

import (
	"context"
	"fmt"
	"strings"
)

type Strategy string

const (
	StrategySnowflake Strategy = "snowflake"
	StrategyUUIDv7    Strategy = "uuidv7"
)

type Options struct {
	Strategy Strategy

	// NodeID is the snowflake node, 0 to 1023. Ignored by uuidv7.
	NodeID int64
}

type UIDGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// New defaults to uuidv7. Strategy names are case-insensitive.
func New(opts Options) (UIDGenerator, error) {
	strategy := Strategy(strings.ToLower(strings.TrimSpace(string(opts.Strategy))))
	switch strategy {
	case StrategySnowflake:
		return NewSnowflake(opts.NodeID)
	case StrategyUUIDv7, "":
		return NewUUIDv7()
	}
	return nil, fmt.Errorf("uid: unknown strategy %q", opts.Strategy)
}
