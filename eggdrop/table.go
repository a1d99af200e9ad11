package eggdrop

import "fmt"

type cell struct {
	drops int
	known bool
}

// Table is a dense memo of drop counts indexed by (floors, eggs).
// A cell is written at most once.
type Table struct {
	cells  []cell
	floors int
	eggs   int
}

// NewTable allocates a table covering [0, floors] × [0, eggs] and seeds
// the base cases: no floor needs no drop, one floor needs one drop, and a
// single egg needs one drop per floor.
func NewTable(floors, eggs int) *Table {
	t := &Table{
		cells:  make([]cell, (floors+1)*(eggs+1)),
		floors: floors,
		eggs:   eggs,
	}
	for e := 0; e <= eggs; e++ {
		t.Set(0, e, 0)
		if floors >= 1 && e >= 1 {
			t.Set(1, e, 1)
		}
	}
	if eggs >= 1 {
		for f := 2; f <= floors; f++ {
			t.Set(f, 1, f)
		}
	}
	return t
}

func (t *Table) index(floors, eggs int) int {
	if floors < 0 || floors > t.floors || eggs < 0 || eggs > t.eggs {
		panic(fmt.Sprintf("eggdrop: cell (%d, %d) outside table (%d, %d)", floors, eggs, t.floors, t.eggs))
	}
	return floors*(t.eggs+1) + eggs
}

// Get returns the drop count stored for (floors, eggs) and whether it is known.
func (t *Table) Get(floors, eggs int) (int, bool) {
	c := t.cells[t.index(floors, eggs)]
	return c.drops, c.known
}

// Set records the drop count for (floors, eggs).
// It panics if the cell is already known.
func (t *Table) Set(floors, eggs, drops int) {
	i := t.index(floors, eggs)
	if t.cells[i].known {
		panic(fmt.Sprintf("eggdrop: cell (%d, %d) already set", floors, eggs))
	}
	t.cells[i] = cell{drops: drops, known: true}
}

// Floors returns the largest floor count the table covers.
func (t *Table) Floors() int { return t.floors }

// Eggs returns the largest egg count the table covers.
func (t *Table) Eggs() int { return t.eggs }
