// Package dedup tracks which token addresses the bot has already admitted for processing.
package dedup

import "sync"

// Registry is a process-lifetime set of addresses keyed by exact string
// equality. Entries are never evicted; real deployments run for bounded
// periods, so unbounded growth is an accepted scaling limitation.
type Registry struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]struct{})}
}

// Seen reports whether the address was already marked. No normalization is
// applied; callers trim before asking.
func (r *Registry) Seen(address string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.seen[address]
	return ok
}

// Mark records the address as handled. Marking twice is a no-op.
func (r *Registry) Mark(address string) {
	r.mu.Lock()
	r.seen[address] = struct{}{}
	r.mu.Unlock()
}

// Len returns the number of distinct addresses marked so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}
