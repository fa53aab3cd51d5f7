package jwt

import "context"

type claimsKey struct{}

// WithClaims stores the verified operator claims on ctx. Nil claims leave
// ctx untouched.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	if claims == nil {
		return ctx
	}
	return context.WithValue(ctx, claimsKey{}, claims)
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	if ctx == nil {
		return nil, false
	}
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	return claims, ok && claims != nil
}

// CommunityFromContext is the community the calling operator is bound to.
// Unauthenticated calls and unscoped tokens yield "".
func CommunityFromContext(ctx context.Context) string {
	if claims, ok := ClaimsFromContext(ctx); ok {
		return claims.Community
	}
	return ""
}
