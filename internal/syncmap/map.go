package syncmap

import (
	"sort"
	"sync"
)

// Map is a thread-safe generic map structure
type Map[T any] struct {
	mux sync.RWMutex
	m   map[string]T
}

// NewRegistry creates a new instance of Map
func NewRegistry[T any]() *Map[T] {
	return &Map[T]{
		m: make(map[string]T),
	}
}

// Get retrieves an item by name
func (r *Map[T]) Get(name string) T {
	r.mux.RLock()
	defer r.mux.RUnlock()
	if v, ok := r.m[name]; ok {
		return v
	}
	var zero T
	return zero
}

// Lookup retrieves an item by name together with a presence flag.
func (r *Map[T]) Lookup(name string) (T, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	v, ok := r.m[name]
	return v, ok
}

// Set adds or updates an item by name
func (r *Map[T]) Set(name string, value T) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.m[name] = value
}

// SetBatch merges all entries under a single lock acquisition.  Entries from
// one batch are never interleaved with another writer's; a colliding name is
// overwritten (last completed batch wins).
func (r *Map[T]) SetBatch(entries map[string]T) {
	if len(entries) == 0 {
		return
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	for name, value := range entries {
		r.m[name] = value
	}
}

// Delete removes an item by name
func (r *Map[T]) Delete(name string) {
	r.mux.Lock()
	defer r.mux.Unlock()
	delete(r.m, name)
}

// Len returns the number of stored items.
func (r *Map[T]) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.m)
}

// Keys returns all item names in lexical order.
func (r *Map[T]) Keys() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	keys := make([]string, 0, len(r.m))
	for k := range r.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// List returns a slice of all items
func (r *Map[T]) List() []T {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]T, 0, len(r.m))
	for _, v := range r.m {
		ret = append(ret, v)
	}
	return ret
}
