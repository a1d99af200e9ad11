package pure

import (
	"sync"
	"sync/atomic"
)

// Trie maps key paths to values. Each key component selects a nested
// sync.Map; the last component holds the value.
//
// Entries live in two generations. Stores go to the head generation; after
// maxSize stores the tail generation is discarded and replaced by an empty
// head.
type Trie[O any] struct {
	generations [2]atomic.Pointer[sync.Map]
	head        atomic.Uint32
	size        atomic.Uint32
	maxSize     uint32
}

func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &Trie[O]{maxSize: maxSize}
	t.generations[0].Store(&sync.Map{})
	t.generations[1].Store(&sync.Map{})
	return t
}

// Load returns the value stored under keys, looking in the head generation
// first. It panics if keys is empty.
func (t *Trie[O]) Load(keys []Key) (O, bool) {
	head := t.head.Load()
	for _, gen := range []uint32{head, 1 - head} {
		if v, ok := lookup(t.generations[gen].Load(), keys); ok {
			return v.(O), true
		}
	}
	var zero O
	return zero, false
}

// Store records value under keys in the head generation.
// It panics if keys is empty.
func (t *Trie[O]) Store(keys []Key, value O) {
	if t.size.CompareAndSwap(t.maxSize, 0) {
		next := 1 - t.head.Load()
		t.generations[next].Store(&sync.Map{})
		t.head.Store(next)
	}
	m, k := descend(t.generations[t.head.Load()].Load(), keys)
	m.Store(k, value)
	t.size.Add(1)
}

func lookup(m *sync.Map, keys []Key) (any, bool) {
	last := len(keys) - 1
	if last < 0 {
		panic("trie: empty keys")
	}
	for _, k := range keys[:last] {
		v, ok := m.Load(k)
		if !ok {
			return nil, false
		}
		m = v.(*sync.Map)
	}
	return m.Load(keys[last])
}

// descend walks to the map holding the last key, creating nodes on the way.
func descend(m *sync.Map, keys []Key) (*sync.Map, Key) {
	last := len(keys) - 1
	if last < 0 {
		panic("trie: empty keys")
	}
	for _, k := range keys[:last] {
		v, _ := m.LoadOrStore(k, &sync.Map{})
		m = v.(*sync.Map)
	}
	return m, keys[last]
}
