// Package pure memoizes pure functions by their arguments.
//
// Tableize turns a pure function into a lazily filled table: the first call
// with a given argument tuple computes the value, later calls read it back.
// Wrapping a function forces the question of whether it really is pure. A
// function that reads the clock, does I/O or depends on mutable state must
// not be tableized.
//
// Arguments must be comparable or implement fmt.Stringer, in which case
// String() is used as the key. Anything else panics on first use.
//
// Tables are bounded. A Trie keeps two generations of entries; when the head
// generation reaches its size limit the older generation is dropped and a
// fresh one becomes the head, so a hot entry survives at least one rotation.
//
// Example:
//
//	var fib func(int) int
//	fib = pure.TableizeI1O1(func(n int) int {
//		if n <= 1 {
//			return n
//		}
//		return fib(n-1) + fib(n-2)
//	}, 64)
package pure
