package upstream

import (
	"context"
	"sync"
)

// CancelRegistry is a side-table of named cancellation tokens: a caller
// registers an in-flight request under a key and anyone holding the key
// can abort it. Registering the same key again cancels the previous
// request first, so only the latest call per key survives.
type CancelRegistry struct {
	mu     sync.Mutex
	cancel map[string]context.CancelFunc
}

// NewCancelRegistry returns an empty registry.
func NewCancelRegistry() *CancelRegistry {
	return &CancelRegistry{cancel: make(map[string]context.CancelFunc)}
}

// Register derives a cancellable context from parent and stores its cancel
// function under key.
func (r *CancelRegistry) Register(parent context.Context, key string) context.Context {
	ctx, cancel := context.WithCancel(parent)
	r.mu.Lock()
	if prev, ok := r.cancel[key]; ok {
		prev()
	}
	r.cancel[key] = cancel
	r.mu.Unlock()
	return ctx
}

// Cancel aborts the request registered under key, if any, and removes the
// token. It reports whether a token existed.
func (r *CancelRegistry) Cancel(key string) bool {
	r.mu.Lock()
	cancel, ok := r.cancel[key]
	delete(r.cancel, key)
	r.mu.Unlock()
	if ok {
		cancel()
	}
	return ok
}

// Release drops the token for key without cancelling, releasing the
// context's resources. Call it once the request completes.
func (r *CancelRegistry) Release(key string) {
	r.mu.Lock()
	cancel, ok := r.cancel[key]
	delete(r.cancel, key)
	r.mu.Unlock()
	if ok {
		cancel()
	}
}
