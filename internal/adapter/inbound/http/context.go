package http

import (
	"context"

	"github.com/0xsj/overwatch-accounts/internal/port/outbound/authz"
)

type contextKey struct{ name string }

var principalKey = &contextKey{"principal"}

// withPrincipal stores the authenticated principal on the context.
func withPrincipal(ctx context.Context, p authz.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// principalFrom extracts the authenticated principal from the context.
func principalFrom(ctx context.Context) (authz.Principal, bool) {
	p, ok := ctx.Value(principalKey).(authz.Principal)
	return p, ok
}
