// Package affinity scopes a correlation token to a logical unit of work so
// every outbound call made for it can be grouped on the server side.
package affinity

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Header carries the token on outbound requests.
const Header = "X-Request-ID"

type tokenKey struct{}

type unitKey struct{}

// WithToken pins token to ctx. An inbound request id is the usual source.
func WithToken(ctx context.Context, token string) context.Context {
	token = strings.TrimSpace(token)
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the token pinned with WithToken.
func TokenFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

// WithUnit marks ctx as belonging to the named unit of work. Calls sharing a
// unit share a token until the unit is released.
func WithUnit(ctx context.Context, unit string) context.Context {
	return context.WithValue(ctx, unitKey{}, unit)
}

func unitFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	unit, ok := ctx.Value(unitKey{}).(string)
	return unit, ok && unit != ""
}

// Correlator resolves the token of the current unit of work.
// It is safe for concurrent use.
type Correlator struct {
	units    sync.Map
	generate func() string

	defaultOnce  sync.Once
	defaultToken string
}

type Option func(*Correlator)

// WithGenerator replaces the token generator. Defaults to random UUIDs.
func WithGenerator(generate func() string) Option {
	return func(c *Correlator) {
		c.generate = generate
	}
}

func NewCorrelator(opts ...Option) *Correlator {
	c := &Correlator{generate: uuid.NewString}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns, in order of precedence, the token pinned to ctx, the token
// of the unit carried by ctx, or the correlator's own default token.
func (c *Correlator) Token(ctx context.Context) string {
	if token, ok := TokenFromContext(ctx); ok {
		return token
	}

	if unit, ok := unitFromContext(ctx); ok {
		if token, ok := c.units.Load(unit); ok {
			return token.(string)
		}
		token, _ := c.units.LoadOrStore(unit, c.generate())
		return token.(string)
	}

	c.defaultOnce.Do(func() {
		c.defaultToken = c.generate()
	})
	return c.defaultToken
}

// Begin starts a unit of work with a fresh token pinned to the returned ctx.
func (c *Correlator) Begin(ctx context.Context) context.Context {
	return WithToken(ctx, c.generate())
}

// Release forgets the token of unit. Later calls for the same unit start a
// new token.
func (c *Correlator) Release(unit string) {
	c.units.Delete(unit)
}
