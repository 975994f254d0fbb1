package session

import (
	"sync"
	"sync/atomic"
)

// Registry hands out strictly increasing ordinals per key. It is safe for
// concurrent use: concurrent Next calls on the same key never return the
// same ordinal.
type Registry struct {
	counters sync.Map // string -> *atomic.Int64
}

// NewRegistry creates an empty ordinal registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Next returns the next ordinal for key, starting at 1.
func (r *Registry) Next(key string) int64 {
	c, ok := r.counters.Load(key)
	if !ok {
		c, _ = r.counters.LoadOrStore(key, new(atomic.Int64))
	}
	return c.(*atomic.Int64).Add(1)
}

// Key builds the registry key for a category and optional name, joined
// with '/'. An empty name yields the bare category, so named and unnamed
// events of one category count independently only when the name is set.
func Key(category, name string) string {
	if name == "" {
		return category
	}
	return category + "/" + name
}

// defaultRegistry backs package-level ordinal allocation.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry shared by emitters
// that are not wired to an explicit one.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
