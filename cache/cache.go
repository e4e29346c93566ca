package cache

import (
	"github.com/skipor/lru/log"
)

// Cache is LRU cache of values of type V.
type Cache[V any] interface {
	// Set adds or updates value, and makes key most recently used.
	Set(key string, value V)
	// Get returns value for key and makes key most recently used.
	// ok is false, if key was not found in cache.
	Get(key string) (value V, ok bool)
	// Has checks key presence without touching key recency.
	Has(key string) bool
	// Keys returns keys from most to least recently used.
	Keys() []string
	Len() int
}

// EvictCallback is called after key eviction, when cache state is already consistent.
// Callback is called inside Set, so it may use *LRU directly, but must not call
// Locked wrapper of the same cache: Locked mutex is not reentrant.
type EvictCallback[V any] func(key string, value V)

// LRU is count bounded cache that evicts least recently used entry on overflow.
// LRU is not thread safe: every call should be serialized by caller. See Locked.
type LRU[V any] struct {
	capacity int
	index    map[string]handle
	recency  recency[V]
	onEvict  EvictCallback[V]
	stats    stats
	log      log.Logger
}

var _ Cache[interface{}] = (*LRU[interface{}])(nil)

// New creates LRU. Nil logger is allowed.
func New[V any](l log.Logger, conf Config) (*LRU[V], error) {
	return NewWithEvict[V](l, conf, nil)
}

// NewWithEvict creates LRU that calls onEvict for every evicted entry. Nil onEvict is allowed.
func NewWithEvict[V any](l log.Logger, conf Config, onEvict EvictCallback[V]) (*LRU[V], error) {
	if l == nil {
		l = log.NewNop()
	}
	if err := conf.Validate(); err != nil {
		l.Errorf("Cache create failed: %v", err)
		return nil, err
	}
	c := &LRU[V]{
		capacity: conf.Capacity,
		index:    make(map[string]handle, conf.Capacity+1),
		recency:  newRecency[V](conf.Capacity),
		onEvict:  onEvict,
		stats:    newStats(conf.Metrics, conf.MetricsPrefix),
		log:      l.WithFields(log.Fields{"cache": "lru", "capacity": conf.Capacity}),
	}
	return c, nil
}

// Set adds or updates value, and makes key most recently used.
// Set of new key evicts least recently used entry, if capacity is exceeded.
func (c *LRU[V]) Set(key string, value V) {
	defer c.checkInvariants()
	if h, ok := c.index[key]; ok {
		c.log.Debugf("Update item %s.", key)
		c.recency.at(h).value = value
		c.recency.moveToHead(h)
		c.stats.updates.Inc(1)
		return
	}
	c.log.Debugf("Add item %s.", key)
	h := c.recency.alloc(key, value)
	c.recency.pushHead(h)
	c.index[key] = h
	c.stats.inserts.Inc(1)
	if len(c.index) > c.capacity {
		// Only one entry was added, so one eviction is enough.
		c.evict()
	}
	c.stats.entries.Update(int64(len(c.index)))
}

// Get returns value for key and makes key most recently used.
// On miss zero value and false are returned, and cache is not changed.
func (c *LRU[V]) Get(key string) (value V, ok bool) {
	defer c.checkInvariants()
	h, ok := c.index[key]
	if !ok {
		c.stats.misses.Inc(1)
		return
	}
	c.stats.hits.Inc(1)
	c.recency.moveToHead(h)
	return c.recency.at(h).value, true
}

// Has checks key presence. Key recency is not changed.
func (c *LRU[V]) Has(key string) bool {
	_, ok := c.index[key]
	return ok
}

// Keys returns keys from most to least recently used. For debug and tests.
func (c *LRU[V]) Keys() []string { return c.recency.keys(len(c.index)) }

// Len returns number of entries.
func (c *LRU[V]) Len() int { return len(c.index) }

// Capacity returns max number of entries.
func (c *LRU[V]) Capacity() int { return c.capacity }

func (c *LRU[V]) evict() {
	h := c.recency.popTail()
	e := c.recency.at(h)
	key, value := e.key, e.value
	delete(c.index, key)
	c.recency.release(h)
	c.stats.evictions.Inc(1)
	c.log.Debugf("Item %s evicted.", key)
	if c.onEvict != nil {
		c.onEvict(key, value)
	}
}
