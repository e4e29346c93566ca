package cache

import "sync"

// Locked serializes all calls to wrapped LRU.
// Mutex is used instead of RWMutex, because Get changes recency.
type Locked[V any] struct {
	mu  sync.Mutex
	lru *LRU[V]
}

var _ Cache[interface{}] = (*Locked[interface{}])(nil)

// NewLocked wraps c. c should not be used directly after that.
// EvictCallback of c is called with mutex held, and will deadlock if it calls
// returned Locked.
func NewLocked[V any](c *LRU[V]) *Locked[V] {
	return &Locked[V]{lru: c}
}

func (l *Locked[V]) Set(key string, value V) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lru.Set(key, value)
}

func (l *Locked[V]) Get(key string) (value V, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.Get(key)
}

func (l *Locked[V]) Has(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.Has(key)
}

func (l *Locked[V]) Keys() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.Keys()
}

func (l *Locked[V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.Len()
}
