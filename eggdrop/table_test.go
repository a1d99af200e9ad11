package eggdrop_test

import (
	"testing"

	"github.com/on-the-ground/powereggs/eggdrop"
	"github.com/stretchr/testify/assert"
)

func TestNewTable_SeedsBaseCases(t *testing.T) {
	table := eggdrop.NewTable(5, 3)

	for e := 0; e <= 3; e++ {
		v, ok := table.Get(0, e)
		assert.True(t, ok)
		assert.Equal(t, 0, v)
	}
	for e := 1; e <= 3; e++ {
		v, ok := table.Get(1, e)
		assert.True(t, ok)
		assert.Equal(t, 1, v)
	}
	for f := 0; f <= 5; f++ {
		v, ok := table.Get(f, 1)
		assert.True(t, ok)
		assert.Equal(t, f, v)
	}

	_, ok := table.Get(1, 0)
	assert.False(t, ok, "one floor with no eggs has no answer")
	_, ok = table.Get(4, 3)
	assert.False(t, ok)
}

func TestTable_SetOnce(t *testing.T) {
	table := eggdrop.NewTable(4, 2)
	table.Set(4, 2, 3)

	v, ok := table.Get(4, 2)
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	assert.Panics(t, func() { table.Set(4, 2, 3) })
	assert.Panics(t, func() { table.Set(0, 2, 0) })
}

func TestTable_OutsideBoundsPanics(t *testing.T) {
	table := eggdrop.NewTable(4, 2)

	assert.Panics(t, func() { table.Get(5, 1) })
	assert.Panics(t, func() { table.Get(1, 3) })
	assert.Panics(t, func() { table.Get(-1, 1) })
	assert.Equal(t, 4, table.Floors())
	assert.Equal(t, 2, table.Eggs())
}
