// Package cache provide count bounded LRU cache.
//
// * Cache index is hash map from key to entry handle.
// * Entries are linked in recency list from most recently used (head) to
// least recently used (tail). Set and Get move entry to head.
// * When Set of new key makes entries number greater than capacity,
// tail entry is evicted.
//
// Entries are stored in slice and linked by slice indexes, so list
// modifications don't allocate, and slots of evicted entries are reused.
// LRU is not thread safe. Wrap it with Locked, if it should be shared
// between goroutines.
//
// Build with "debug" tag to check cache invariants after every modification.
package cache
