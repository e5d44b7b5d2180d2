package behaviortree

import "sync"

// Blackboard is a thread-safe key-value store for state shared between the
// leaves of a tree (and, optionally, the host application). The tick path
// itself never touches a Blackboard; it exists purely as a convenience for
// leaf implementations such as those in the exprcond package.
//
// Create with new(Blackboard); the internal map is lazily initialized on
// the first write.
type Blackboard struct {
	mu   sync.RWMutex
	data map[string]any
}

// Get retrieves the value stored under key, or nil when absent.
func (b *Blackboard) Get(key string) any {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.data[key]
}

// Set stores value under key.
func (b *Blackboard) Set(key string, value any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		b.data = make(map[string]any)
	}
	b.data[key] = value
}

// Has reports whether key is present.
func (b *Blackboard) Has(key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.data[key]
	return ok
}

// Delete removes key, if present.
func (b *Blackboard) Delete(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, key)
}

// Keys returns the stored keys in unspecified order.
func (b *Blackboard) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	keys := make([]string, 0, len(b.data))
	for k := range b.data {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of stored keys.
func (b *Blackboard) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.data)
}

// Clear removes every entry.
func (b *Blackboard) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = nil
}

// Snapshot returns a shallow copy of the stored data. Mutable values
// (slices, maps, pointers) are shared with the blackboard; callers needing
// isolation must deep-copy themselves.
func (b *Blackboard) Snapshot() map[string]any {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[string]any, len(b.data))
	for k, v := range b.data {
		out[k] = v
	}
	return out
}
