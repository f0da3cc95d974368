package auth

import (
	"context"

	"articlehub/internal/domain/entity"
)

type ctxKey struct{}

// WithPrincipal stores p in ctx.
func WithPrincipal(ctx context.Context, p entity.Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// PrincipalFrom returns the request principal. Anonymous requests get the
// zero Principal, which is not Authenticated.
func PrincipalFrom(ctx context.Context) entity.Principal {
	p, _ := ctx.Value(ctxKey{}).(entity.Principal)
	return p
}
