package http

import "context"

// principalHolder lets the outer access log see the user id resolved by the
// inner auth middleware.
type principalHolder struct {
	userID int64
}

type principalHolderKey struct{}

func withPrincipalHolder(ctx context.Context, h *principalHolder) context.Context {
	return context.WithValue(ctx, principalHolderKey{}, h)
}

func principalHolderFrom(ctx context.Context) *principalHolder {
	h, _ := ctx.Value(principalHolderKey{}).(*principalHolder)
	return h
}
