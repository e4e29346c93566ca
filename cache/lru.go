package cache

import (
	"fmt"

	"github.com/skipor/lru/internal/tag"
)

// handle is index of entry slot in recency arena.
type handle int

// none is nil handle.
const none handle = -1

type entry[V any] struct {
	key   string
	value V
	// older is one step closer to tail. none for tail.
	older handle
	// newer is one step closer to head. none for head.
	newer handle
}

// Pre and post conditions (Invariants) for recency methods:
// * linked entries are correct doubly linked list:
//   none <- tail <-> ... <-> head -> none
// * head.newer and tail.older are none. head == tail for single entry.
// * released slots are in free list and are not linked.
//
// recency allocate entries in slots slice and reference them by handles,
// so there are no pointers between entries and released slots are reused.
type recency[V any] struct {
	slots []entry[V]
	free  []handle
	// head is most recently used entry.
	head handle
	// tail is least recently used entry.
	tail handle
}

func newRecency[V any](capacity int) recency[V] {
	return recency[V]{
		// Set may link one extra entry before evict.
		slots: make([]entry[V], 0, capacity+1),
		head:  none,
		tail:  none,
	}
}

func (r *recency[V]) at(h handle) *entry[V] { return &r.slots[h] }
func (r *recency[V]) empty() bool          { return r.head == none }

// alloc returns handle of unlinked entry.
func (r *recency[V]) alloc(key string, value V) handle {
	e := entry[V]{key: key, value: value, older: none, newer: none}
	if n := len(r.free); n > 0 {
		h := r.free[n-1]
		r.free = r.free[:n-1]
		r.slots[h] = e
		return h
	}
	r.slots = append(r.slots, e)
	return handle(len(r.slots) - 1)
}

// release puts unlinked entry slot to free list.
func (r *recency[V]) release(h handle) {
	if tag.Debug {
		r.assertUnlinked(h)
	}
	// Drop key and value references.
	r.slots[h] = entry[V]{older: none, newer: none}
	r.free = append(r.free, h)
}

// pushHead links unlinked entry as most recently used.
func (r *recency[V]) pushHead(h handle) {
	e := r.at(h)
	e.older, e.newer = r.head, none
	if r.head == none {
		r.tail = h
	} else {
		r.at(r.head).newer = h
	}
	r.head = h
}

// moveToHead relinks linked entry as most recently used.
func (r *recency[V]) moveToHead(h handle) {
	if h == r.head {
		return
	}
	e := r.at(h)
	older, newer := e.older, e.newer // Not head, so newer is not none.
	r.at(newer).older = older
	if older == none {
		r.tail = newer
	} else {
		r.at(older).newer = newer
	}
	r.pushHead(h)
}

// popTail unlinks least recently used entry. Recency should not be empty.
func (r *recency[V]) popTail() handle {
	h := r.tail
	if h == none {
		panic("pop tail of empty recency")
	}
	e := r.at(h)
	r.tail = e.newer
	if r.tail == none {
		r.head = none
	} else {
		r.at(r.tail).older = none
	}
	e.newer = none
	return h
}

// keys returns keys from most to least recently used.
func (r *recency[V]) keys(n int) []string {
	keys := make([]string, 0, n)
	for h := r.head; h != none; h = r.at(h).older {
		keys = append(keys, r.at(h).key)
	}
	return keys
}

func (r *recency[V]) assertUnlinked(h handle) {
	e := r.at(h)
	if e.older != none || e.newer != none || r.head == h || r.tail == h {
		panic(fmt.Sprintf("release of linked entry %#v", e))
	}
}

func (e entry[V]) GoString() string {
	return fmt.Sprintf("{key:%q, value:%#v, older:%v, newer:%v}", e.key, e.value, e.older, e.newer)
}

var _ fmt.GoStringer = entry[int]{}
