package eggdrop

import "fmt"

// Strategy selects how Solver fills its memo table.
type Strategy string

const (
	// StrategyScan fills the table bottom-up and tries every first-drop floor.
	StrategyScan Strategy = "scan"

	// StrategyBisect fills the table bottom-up and binary-searches the floor
	// where the break and survive branches cross.
	StrategyBisect Strategy = "bisect"

	// StrategyRecursive resolves cells on demand by memoized recursion.
	StrategyRecursive Strategy = "recursive"

	// StrategyClosed skips the table and counts covered floors instead.
	StrategyClosed Strategy = "closed"
)

// ParseStrategy returns the Strategy named s.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(s); st {
	case StrategyScan, StrategyBisect, StrategyRecursive, StrategyClosed:
		return st, nil
	default:
		return "", fmt.Errorf("unknown strategy %q", s)
	}
}

// Limits bounds the problem sizes a Solver accepts.
type Limits struct {
	MaxFloors int
	MaxEggs   int
}

// MaxTableCells caps the cells a table strategy may allocate.
const MaxTableCells = 1 << 22

// tableFits reports whether a (floors+1) × (eggs+1) table stays within
// MaxTableCells.
func tableFits(floors, eggs int) bool {
	return eggs < MaxTableCells && floors < MaxTableCells/(eggs+1)
}

// Check returns ErrTableTooLarge if strategy builds tables and the largest
// table l admits would exceed MaxTableCells.
func (l Limits) Check(strategy Strategy) error {
	if strategy == StrategyClosed || l.MaxFloors < 0 || l.MaxEggs < 0 {
		return nil
	}
	if !tableFits(l.MaxFloors, l.MaxEggs) {
		return fmt.Errorf("%w: strategy %s with limits %+v needs more than %d cells; use %s",
			ErrTableTooLarge, strategy, l, MaxTableCells, StrategyClosed)
	}
	return nil
}

// DefaultLimits matches the memo table size of the reference contest solution.
var DefaultLimits = Limits{MaxFloors: 100, MaxEggs: 100}

// Solver computes minimal worst-case drop counts.
// A Solver holds no state between calls; every call owns a fresh table.
type Solver struct {
	limits   Limits
	strategy Strategy
}

// NewSolver returns a Solver bounded by limits that answers with strategy.
func NewSolver(limits Limits, strategy Strategy) *Solver {
	return &Solver{limits: limits, strategy: strategy}
}

// Limits returns the problem sizes the solver accepts.
func (s *Solver) Limits() Limits { return s.limits }

// Strategy returns the strategy the solver answers with.
func (s *Solver) Strategy() Strategy { return s.strategy }

// MinDrops returns the minimal number of drops that determines the critical
// floor among floors floors with eggs eggs, in the worst case.
//
// It returns ErrOutOfRange if either argument is negative or above the
// solver limits, ErrTableTooLarge if a table strategy would need more than
// MaxTableCells cells, and ErrNoEggs if there are floors to test but no eggs.
func (s *Solver) MinDrops(floors, eggs int) (int, error) {
	if floors < 0 || eggs < 0 || floors > s.limits.MaxFloors || eggs > s.limits.MaxEggs {
		return 0, fmt.Errorf("%w: floors=%d eggs=%d limits=%+v", ErrOutOfRange, floors, eggs, s.limits)
	}
	if floors == 0 {
		return 0, nil
	}
	if eggs == 0 {
		return 0, fmt.Errorf("%w: floors=%d", ErrNoEggs, floors)
	}

	if s.strategy == StrategyClosed {
		return ClosedForm(floors, eggs), nil
	}
	if !tableFits(floors, eggs) {
		return 0, fmt.Errorf("%w: floors=%d eggs=%d", ErrTableTooLarge, floors, eggs)
	}

	switch s.strategy {
	case StrategyRecursive:
		t := NewTable(floors, eggs)
		return resolve(t, floors, eggs), nil
	case StrategyBisect:
		t := NewTable(floors, eggs)
		fill(t, bisect)
		v, _ := t.Get(floors, eggs)
		return v, nil
	default:
		t := NewTable(floors, eggs)
		fill(t, scan)
		v, _ := t.Get(floors, eggs)
		return v, nil
	}
}

// Fill returns a table of every (f, e) with f <= floors and e <= eggs,
// computed bottom-up with the solver strategy. The closed strategy fills
// by scanning.
func (s *Solver) Fill(floors, eggs int) (*Table, error) {
	if floors < 0 || eggs < 1 || floors > s.limits.MaxFloors || eggs > s.limits.MaxEggs {
		return nil, fmt.Errorf("%w: floors=%d eggs=%d limits=%+v", ErrOutOfRange, floors, eggs, s.limits)
	}
	if !tableFits(floors, eggs) {
		return nil, fmt.Errorf("%w: floors=%d eggs=%d", ErrTableTooLarge, floors, eggs)
	}
	t := NewTable(floors, eggs)
	switch s.strategy {
	case StrategyBisect:
		fill(t, bisect)
	case StrategyRecursive:
		for e := 2; e <= eggs; e++ {
			for f := 2; f <= floors; f++ {
				resolve(t, f, e)
			}
		}
	default:
		fill(t, scan)
	}
	return t, nil
}

type chooser func(t *Table, floors, eggs int) int

// fill resolves every unseeded cell. Eggs ascend in the outer loop so the
// break branch (d-1, e-1) is always known; floors ascend in the inner loop
// so the survive branch (f-d, e) is too.
func fill(t *Table, choose chooser) {
	for e := 2; e <= t.Eggs(); e++ {
		for f := 2; f <= t.Floors(); f++ {
			t.Set(f, e, choose(t, f, e))
		}
	}
}

func mustGet(t *Table, floors, eggs int) int {
	v, ok := t.Get(floors, eggs)
	if !ok {
		panic(fmt.Sprintf("eggdrop: cell (%d, %d) read before it was resolved", floors, eggs))
	}
	return v
}

// worst is the drop count when the first egg goes from floor d.
func worst(t *Table, floors, eggs, d int) int {
	return 1 + max(mustGet(t, d-1, eggs-1), mustGet(t, floors-d, eggs))
}

func scan(t *Table, floors, eggs int) int {
	best := worst(t, floors, eggs, 1)
	for d := 2; d <= floors; d++ {
		best = min(best, worst(t, floors, eggs, d))
	}
	return best
}

// bisect relies on the break branch growing and the survive branch
// shrinking with d: the optimum sits at their crossover or just below it.
func bisect(t *Table, floors, eggs int) int {
	lo, hi := 1, floors
	for lo < hi {
		mid := lo + (hi-lo)/2
		if mustGet(t, mid-1, eggs-1) >= mustGet(t, floors-mid, eggs) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	best := worst(t, floors, eggs, lo)
	if lo > 1 {
		best = min(best, worst(t, floors, eggs, lo-1))
	}
	return best
}

// resolve computes (floors, eggs) top-down, consulting t before recursing.
// Every call strictly lowers floors+eggs, so the recursion terminates.
func resolve(t *Table, floors, eggs int) int {
	if v, ok := t.Get(floors, eggs); ok {
		return v
	}
	best := -1
	for d := 1; d <= floors; d++ {
		w := 1 + max(resolve(t, d-1, eggs-1), resolve(t, floors-d, eggs))
		if best == -1 || w < best {
			best = w
		}
	}
	t.Set(floors, eggs, best)
	return best
}
