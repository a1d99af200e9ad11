package eggdrop

import (
	"errors"
	"strconv"
)

// DefaultDropCeiling is the number of drops after which the tester gives up.
const DefaultDropCeiling = 32

// Kind classifies the outcome of one test case.
type Kind int

const (
	Solved Kind = iota
	Impossible
	OutOfRange
	InvalidInput
)

func (k Kind) String() string {
	switch k {
	case Solved:
		return "solved"
	case Impossible:
		return "impossible"
	case OutOfRange:
		return "out_of_range"
	case InvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Verdict is what gets reported for one test case.
type Verdict struct {
	Kind  Kind
	Drops int
}

// String renders the verdict as an output line, without the newline.
func (v Verdict) String() string {
	switch v.Kind {
	case Solved:
		return strconv.Itoa(v.Drops)
	case Impossible:
		return "Impossible"
	case OutOfRange:
		return "Out of Range"
	default:
		return "Invalid Input"
	}
}

// Judge turns a solver result into a Verdict. Drop counts above ceiling and
// cases without eggs are Impossible; the numeric answer is kept in Drops
// when there is one.
func Judge(ceiling, drops int, err error) Verdict {
	switch {
	case errors.Is(err, ErrOutOfRange):
		return Verdict{Kind: OutOfRange}
	case errors.Is(err, ErrNoEggs):
		return Verdict{Kind: Impossible}
	case err != nil:
		return Verdict{Kind: InvalidInput}
	case drops > ceiling:
		return Verdict{Kind: Impossible, Drops: drops}
	default:
		return Verdict{Kind: Solved, Drops: drops}
	}
}
