package pure_test

import (
	"testing"

	"github.com/on-the-ground/powereggs/pure"
	"github.com/stretchr/testify/assert"
)

func TestTrie_BasicUsage(t *testing.T) {
	trie := pure.NewTrie[string](1)

	trie.Store([]pure.Key{"a", "b", "c"}, "final")

	val, ok := trie.Load([]pure.Key{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "final", val)

	// wrong key path
	_, ok = trie.Load([]pure.Key{"a", "b", "x"})
	assert.False(t, ok)
	_, ok = trie.Load([]pure.Key{"x", "b", "c"})
	assert.False(t, ok)

	// overwrite existing
	trie.Store([]pure.Key{"a", "b", "c"}, "updated")
	val, ok = trie.Load([]pure.Key{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestTrie_MixedKeyTypes(t *testing.T) {
	trie := pure.NewTrie[int](8)

	trie.Store([]pure.Key{100, 2}, 14)
	trie.Store([]pure.Key{"100", 2}, -1)

	v, ok := trie.Load([]pure.Key{100, 2})
	assert.True(t, ok)
	assert.Equal(t, 14, v)

	v, ok = trie.Load([]pure.Key{"100", 2})
	assert.True(t, ok)
	assert.Equal(t, -1, v)
}

func TestTrie_Rotation(t *testing.T) {
	trie := pure.NewTrie[int](2)

	trie.Store([]pure.Key{1}, 1)
	trie.Store([]pure.Key{2}, 2)
	trie.Store([]pure.Key{3}, 3) // head rotates, 1 and 2 survive in the tail

	for _, k := range []int{1, 2, 3} {
		v, ok := trie.Load([]pure.Key{k})
		assert.True(t, ok, "key %d", k)
		assert.Equal(t, k, v)
	}

	trie.Store([]pure.Key{4}, 4)
	trie.Store([]pure.Key{5}, 5) // rotates again, dropping 1 and 2

	for _, k := range []int{1, 2} {
		_, ok := trie.Load([]pure.Key{k})
		assert.False(t, ok, "key %d", k)
	}
	for _, k := range []int{3, 4, 5} {
		_, ok := trie.Load([]pure.Key{k})
		assert.True(t, ok, "key %d", k)
	}
}

func TestTrie_EmptyKeysPanics(t *testing.T) {
	trie := pure.NewTrie[int](2)
	assert.Panics(t, func() { trie.Load([]pure.Key{}) })
	assert.Panics(t, func() { trie.Store(nil, 1) })
}

func TestNewTrie_ZeroSizePanics(t *testing.T) {
	assert.Panics(t, func() { pure.NewTrie[int](0) })
}
