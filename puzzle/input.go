package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/on-the-ground/powereggs/eggdrop"
)

// MaxCases is the largest case count a batch header may declare.
const MaxCases = 10000

// Case is one test case as read from the input.
// Err is set when the line could not be parsed; Floors and Eggs are then zero.
type Case struct {
	Index  int
	Line   int
	Floors int
	Eggs   int
	Err    error
}

// Reader reads a batch header followed by its cases.
type Reader struct {
	sc    *bufio.Scanner
	line  int
	total int
	read  int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r), total: -1}
}

// nextLine returns the next non-blank line, trimmed.
func (r *Reader) nextLine() (string, error) {
	for r.sc.Scan() {
		r.line++
		if text := strings.TrimSpace(r.sc.Text()); text != "" {
			return text, nil
		}
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Header reads the case count. It must be called once, before Next.
func (r *Reader) Header() (int, error) {
	text, err := r.nextLine()
	if err == io.EOF {
		return 0, fmt.Errorf("%w: missing case count", eggdrop.ErrInvalidInput)
	} else if err != nil {
		return 0, err
	}
	total, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: case count %q is not an integer", eggdrop.ErrInvalidInput, r.line, text)
	}
	if total < 1 || total > MaxCases {
		return 0, fmt.Errorf("%w: line %d: case count %d not in [1, %d]", eggdrop.ErrInvalidInput, r.line, total, MaxCases)
	}
	r.total = total
	return total, nil
}

// Next returns the next case. It returns io.EOF once every declared case has
// been read, and an ErrInvalidInput wrapping io.ErrUnexpectedEOF if the input
// ends early. A malformed line is not an error of Next; it is reported in
// Case.Err so that the batch can go on.
func (r *Reader) Next() (Case, error) {
	if r.total < 0 {
		panic("puzzle: Next called before Header")
	}
	if r.read == r.total {
		return Case{}, io.EOF
	}
	text, err := r.nextLine()
	if err == io.EOF {
		return Case{}, fmt.Errorf("%w: %d of %d cases: %w", eggdrop.ErrInvalidInput, r.read, r.total, io.ErrUnexpectedEOF)
	} else if err != nil {
		return Case{}, err
	}
	r.read++

	c := Case{Index: r.read, Line: r.line}
	fields := strings.Fields(text)
	if len(fields) != 2 {
		c.Err = fmt.Errorf("%w: line %d: want \"N K\", got %q", eggdrop.ErrInvalidInput, r.line, text)
		return c, nil
	}
	floors, err := strconv.Atoi(fields[0])
	if err != nil {
		c.Err = fmt.Errorf("%w: line %d: floors %q is not an integer", eggdrop.ErrInvalidInput, r.line, fields[0])
		return c, nil
	}
	eggs, err := strconv.Atoi(fields[1])
	if err != nil {
		c.Err = fmt.Errorf("%w: line %d: eggs %q is not an integer", eggdrop.ErrInvalidInput, r.line, fields[1])
		return c, nil
	}
	c.Floors, c.Eggs = floors, eggs
	return c, nil
}
