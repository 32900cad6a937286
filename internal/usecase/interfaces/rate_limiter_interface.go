package interfaces

import "context"

// IRateLimiter reports whether one more action identified by key fits in
// the current window.
type IRateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
