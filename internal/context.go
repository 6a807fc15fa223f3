package internal

import (
	"context"
	"time"
)

// Identity is the verified caller attached to a request context by the
// authentication middleware. RoleIDs are loaded from storage at verification
// time rather than decoded from the token, so role changes take effect
// without re-login.
type Identity struct {
	UserID  int64
	Email   string
	RoleIDs []int64
}

type ctxKey string

const contextIdentityKey ctxKey = "identity"

func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	if ctx == nil {
		return nil, false
	}
	identity, ok := ctx.Value(contextIdentityKey).(*Identity)
	if !ok || identity == nil {
		return nil, false
	}
	return identity, true
}

func ContextWithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, contextIdentityKey, identity)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
