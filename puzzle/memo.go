package puzzle

import (
	"fmt"
	"strconv"

	ristretto "github.com/dgraph-io/ristretto/v2"
	"github.com/on-the-ground/powereggs/pure"
)

// MemoKind selects how answers are remembered across the cases of a batch.
// Only whole answers are shared; every case still solves on its own table.
type MemoKind string

const (
	MemoTrie      MemoKind = "trie"
	MemoRistretto MemoKind = "ristretto"
	MemoNone      MemoKind = "none"
)

func ParseMemoKind(s string) (MemoKind, error) {
	switch k := MemoKind(s); k {
	case MemoTrie, MemoRistretto, MemoNone:
		return k, nil
	default:
		return "", fmt.Errorf("unknown memo kind %q", s)
	}
}

// SolveFunc answers one (floors, eggs) pair.
type SolveFunc func(floors, eggs int) (int, error)

// memoize wraps solve according to kind. The returned closer releases the
// memo's resources.
func memoize(kind MemoKind, size int, solve SolveFunc) (SolveFunc, func(), error) {
	switch kind {
	case MemoNone:
		return solve, func() {}, nil
	case MemoTrie:
		return pure.TableizeI2O2[int, int, int, error](solve, uint32(size)), func() {}, nil
	case MemoRistretto:
		return newRistrettoMemo(size, solve)
	default:
		return nil, nil, fmt.Errorf("unknown memo kind %q", kind)
	}
}

type answer struct {
	drops int
	err   error
}

func answerKey(floors, eggs int) string {
	return strconv.Itoa(floors) + "x" + strconv.Itoa(eggs)
}

func newRistrettoMemo(size int, solve SolveFunc) (SolveFunc, func(), error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, answer]{
		NumCounters:        int64(size) * 10, // keys tracked for admission, ~10x capacity.
		MaxCost:            int64(size),      // every answer costs 1.
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("ristretto memo: %w", err)
	}
	return func(floors, eggs int) (int, error) {
		key := answerKey(floors, eggs)
		if a, ok := cache.Get(key); ok {
			return a.drops, a.err
		}
		drops, err := solve(floors, eggs)
		cache.Set(key, answer{drops: drops, err: err}, 1)
		return drops, err
	}, cache.Close, nil
}
