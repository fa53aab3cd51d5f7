package jwt

import (
	"context"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var _ TokenManager = (*hmacManager)(nil)

type operatorClaims struct {
	jwtlib.RegisteredClaims
	Community string `json:"community,omitempty"`
	Role      string `json:"role,omitempty"`
}

type hmacManager struct {
	secret   []byte
	method   jwtlib.SigningMethod
	issuer   string
	audience []string
	ttl      time.Duration
	now      func() time.Time
}

func NewHMAC(opts Options) (TokenManager, error) {
	if len(opts.Secret) < 32 {
		return nil, fmt.Errorf("jwt: HMAC secret must be at least 32 bytes, got %d", len(opts.Secret))
	}

	var method jwtlib.SigningMethod
	switch opts.Algorithm {
	case "", "HS256":
		method = jwtlib.SigningMethodHS256
	case "HS384":
		method = jwtlib.SigningMethodHS384
	case "HS512":
		method = jwtlib.SigningMethodHS512
	default:
		return nil, fmt.Errorf("jwt: unsupported HMAC algorithm %q", opts.Algorithm)
	}

	return &hmacManager{
		secret:   opts.Secret,
		method:   method,
		issuer:   opts.Issuer,
		audience: opts.Audience,
		ttl:      opts.TTL,
		now:      time.Now,
	}, nil
}

func (m *hmacManager) Sign(_ context.Context, claims Claims) (string, error) {
	now := m.now()

	registered := jwtlib.RegisteredClaims{
		Subject:  claims.Subject,
		ID:       claims.ID,
		Issuer:   firstNonEmpty(claims.Issuer, m.issuer),
		IssuedAt: jwtlib.NewNumericDate(now),
	}

	switch {
	case claims.Audience != nil:
		registered.Audience = claims.Audience
	case m.audience != nil:
		registered.Audience = m.audience
	}

	if !claims.IssuedAt.IsZero() {
		registered.IssuedAt = jwtlib.NewNumericDate(claims.IssuedAt)
	}
	switch {
	case !claims.ExpiresAt.IsZero():
		registered.ExpiresAt = jwtlib.NewNumericDate(claims.ExpiresAt)
	case m.ttl > 0:
		registered.ExpiresAt = jwtlib.NewNumericDate(now.Add(m.ttl))
	}
	if !claims.NotBefore.IsZero() {
		registered.NotBefore = jwtlib.NewNumericDate(claims.NotBefore)
	}

	token := jwtlib.NewWithClaims(m.method, operatorClaims{
		RegisteredClaims: registered,
		Community:        claims.Community,
		Role:             claims.Role,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *hmacManager) Verify(_ context.Context, tokenString string) (*Claims, error) {
	parsed := &operatorClaims{}

	_, err := jwtlib.ParseWithClaims(tokenString, parsed, func(token *jwtlib.Token) (any, error) {
		return m.secret, nil
	}, jwtlib.WithValidMethods([]string{m.method.Alg()}), jwtlib.WithTimeFunc(m.now))
	if err != nil {
		return nil, fmt.Errorf("jwt: token validation failed: %w", err)
	}

	claims := &Claims{
		Subject:   parsed.Subject,
		Issuer:    parsed.Issuer,
		Audience:  parsed.Audience,
		ID:        parsed.ID,
		Community: parsed.Community,
		Role:      parsed.Role,
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Time
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time
	}
	if parsed.NotBefore != nil {
		claims.NotBefore = parsed.NotBefore.Time
	}
	return claims, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
