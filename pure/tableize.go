package pure

import (
	"fmt"
)

// Arg is a tableized function argument: a comparable value or a fmt.Stringer.
type Arg any

// Key is the form an Arg takes inside a Trie.
type Key any

// TableizeI1O1 memoizes a one-argument, one-result pure function.
func TableizeI1O1[I1 Arg, O1 any](
	pureFn func(I1) O1,
	maxTableSize uint32,
) func(I1) O1 {
	tableized := tableize(
		func(args ...Arg) O1 {
			return pureFn(args[0].(I1))
		},
		maxTableSize,
	)
	return func(i1 I1) O1 {
		return tableized(i1)
	}
}

// TableizeI2O1 memoizes a two-argument, one-result pure function.
func TableizeI2O1[I1, I2 Arg, O1 any](
	pureFn func(I1, I2) O1,
	maxTableSize uint32,
) func(I1, I2) O1 {
	tableized := tableize(
		func(args ...Arg) O1 {
			return pureFn(args[0].(I1), args[1].(I2))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized(i1, i2)
	}
}

// TableizeI1O2 memoizes a one-argument, two-result pure function, such as
// one returning (value, error).
func TableizeI1O2[I1 Arg, O1, O2 any](
	pureFn func(I1) (O1, O2),
	maxTableSize uint32,
) func(I1) (O1, O2) {
	tableized := tableize(
		func(args ...Arg) pair[O1, O2] {
			v1, v2 := pureFn(args[0].(I1))
			return pair[O1, O2]{v1, v2}
		},
		maxTableSize,
	)
	return func(i1 I1) (O1, O2) {
		p := tableized(i1)
		return p.o1, p.o2
	}
}

// TableizeI2O2 memoizes a two-argument, two-result pure function.
func TableizeI2O2[I1, I2 Arg, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	maxTableSize uint32,
) func(I1, I2) (O1, O2) {
	tableized := tableize(
		func(args ...Arg) pair[O1, O2] {
			v1, v2 := pureFn(args[0].(I1), args[1].(I2))
			return pair[O1, O2]{v1, v2}
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2) (O1, O2) {
		p := tableized(i1, i2)
		return p.o1, p.o2
	}
}

type pair[O1, O2 any] struct {
	o1 O1
	o2 O2
}

func keyOf(arg Arg) Key {
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringer.String()
	}
	return arg
}

func tableize[O any](
	pureFn func(...Arg) O,
	maxTableSize uint32,
) func(...Arg) O {
	memo := NewTrie[O](maxTableSize)
	return func(args ...Arg) O {
		keys := make([]Key, len(args))
		for i, arg := range args {
			keys[i] = keyOf(arg)
		}
		v, ok := memo.Load(keys)
		if !ok {
			v = pureFn(args...)
			memo.Store(keys, v)
		}
		return v
	}
}
