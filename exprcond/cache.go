package exprcond

import (
	"container/list"
	"sync"

	"github.com/expr-lang/expr/vm"
)

// DefaultCacheSize is the default bound on the number of compiled programs
// retained, limiting memory growth for long-running processes that build
// conditions from dynamic expressions.
const DefaultCacheSize = 256

// programCache is a bounded LRU of compiled expr programs keyed by
// expression text. Get must take the write lock: it both reorders the LRU
// list and reads the program pointer that Put may replace.
type programCache struct {
	mu      sync.Mutex
	max     int
	entries map[string]*list.Element
	order   *list.List // front is most recently used
}

type cacheEntry struct {
	expression string
	program    *vm.Program
}

func newProgramCache(max int) *programCache {
	if max < 1 {
		max = DefaultCacheSize
	}
	return &programCache{
		max:     max,
		entries: make(map[string]*list.Element, max),
		order:   list.New(),
	}
}

func (c *programCache) get(expression string) (*vm.Program, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.entries[expression]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).program, true
}

func (c *programCache) put(expression string, program *vm.Program) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.entries[expression]; ok {
		elem.Value.(*cacheEntry).program = program
		c.order.MoveToFront(elem)
		return
	}
	c.entries[expression] = c.order.PushFront(&cacheEntry{expression: expression, program: program})
	c.evict()
}

func (c *programCache) resize(max int) {
	if max < 1 {
		max = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.max = max
	c.evict()
}

// evict drops least-recently-used entries until the bound holds. Caller
// holds c.mu.
func (c *programCache) evict() {
	for c.order.Len() > c.max {
		elem := c.order.Back()
		delete(c.entries, elem.Value.(*cacheEntry).expression)
		c.order.Remove(elem)
	}
}

func (c *programCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// cache is the process-wide compiled program cache.
var cache = newProgramCache(DefaultCacheSize)

// SetCacheSize bounds the process-wide compiled program cache, evicting
// least-recently-used entries if the new bound is smaller. Values below 1
// are clamped to 1.
func SetCacheSize(n int) {
	cache.resize(n)
}

// CacheLen returns the current number of cached compiled programs.
func CacheLen() int {
	return cache.len()
}
