package puzzle_test

import (
	"io"
	"strings"
	"testing"

	"github.com/on-the-ground/powereggs/eggdrop"
	"github.com/on-the-ground/powereggs/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, input string) ([]puzzle.Case, error) {
	t.Helper()
	r := puzzle.NewReader(strings.NewReader(input))
	_, err := r.Header()
	require.NoError(t, err)

	var cases []puzzle.Case
	for {
		c, err := r.Next()
		if err == io.EOF {
			return cases, nil
		} else if err != nil {
			return cases, err
		}
		cases = append(cases, c)
	}
}

func TestReader_ReadsDeclaredCases(t *testing.T) {
	cases, err := readAll(t, "3\n3 1\n\n  100 2  \n1 1\n5 5\n")
	require.NoError(t, err)
	require.Len(t, cases, 3, "lines past the declared count are ignored")

	assert.Equal(t, puzzle.Case{Index: 1, Line: 2, Floors: 3, Eggs: 1}, cases[0])
	assert.Equal(t, puzzle.Case{Index: 2, Line: 4, Floors: 100, Eggs: 2}, cases[1])
	assert.Equal(t, puzzle.Case{Index: 3, Line: 5, Floors: 1, Eggs: 1}, cases[2])
}

func TestReader_MalformedCaseLines(t *testing.T) {
	cases, err := readAll(t, "4\n3\nten 2\n10 two\n2000000007 32\n")
	require.NoError(t, err)
	require.Len(t, cases, 4)

	for _, c := range cases[:3] {
		assert.ErrorIs(t, c.Err, eggdrop.ErrInvalidInput, "line %d", c.Line)
	}
	assert.NoError(t, cases[3].Err)
	assert.Equal(t, 2000000007, cases[3].Floors)
	assert.Equal(t, 32, cases[3].Eggs)
}

func TestReader_TruncatedInput(t *testing.T) {
	cases, err := readAll(t, "3\n3 1\n")
	assert.Len(t, cases, 1)
	assert.ErrorIs(t, err, eggdrop.ErrInvalidInput)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReader_BadHeader(t *testing.T) {
	for _, input := range []string{"", "\n\n", "three\n", "0\n", "10001\n", "-2\n"} {
		_, err := puzzle.NewReader(strings.NewReader(input)).Header()
		assert.ErrorIs(t, err, eggdrop.ErrInvalidInput, "input %q", input)
	}

	total, err := puzzle.NewReader(strings.NewReader("10000\n")).Header()
	require.NoError(t, err)
	assert.Equal(t, puzzle.MaxCases, total)
}

func TestReader_NextBeforeHeaderPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = puzzle.NewReader(strings.NewReader("1\n1 1\n")).Next()
	})
}
