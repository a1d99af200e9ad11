package eggdrop

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when floors or eggs fall outside the solver limits.
	ErrOutOfRange = errors.New("out of range")

	// ErrNoEggs is returned when there is at least one floor to test but no egg to drop.
	ErrNoEggs = errors.New("no eggs to drop")

	// ErrInvalidInput marks a malformed test case. The solver never returns it;
	// readers wrap it so that Judge can classify the case.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTableTooLarge is returned when a table strategy would need more than
	// MaxTableCells cells. It is an ErrOutOfRange.
	ErrTableTooLarge = fmt.Errorf("%w: table too large", ErrOutOfRange)
)
