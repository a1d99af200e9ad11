package eggdrop_test

import (
	"math"
	"testing"

	"github.com/on-the-ground/powereggs/eggdrop"
	"github.com/stretchr/testify/assert"
)

func TestCoverage(t *testing.T) {
	tests := []struct {
		drops, eggs, want int
	}{
		{drops: 0, eggs: 3, want: 0},
		{drops: 3, eggs: 0, want: 0},
		{drops: 5, eggs: 1, want: 5},
		{drops: 14, eggs: 2, want: 105},
		{drops: 13, eggs: 2, want: 91},
		{drops: 10, eggs: 3, want: 175},
		{drops: 4, eggs: 10, want: 15},
		{drops: 62, eggs: 62, want: 1<<62 - 1},
		{drops: 63, eggs: 63, want: math.MaxInt},
		{drops: 64, eggs: 64, want: math.MaxInt},
		{drops: 1 << 20, eggs: 32, want: math.MaxInt},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, eggdrop.Coverage(tt.drops, tt.eggs), "Coverage(%d, %d)", tt.drops, tt.eggs)
	}
}

func TestClosedForm(t *testing.T) {
	assert.Equal(t, 0, eggdrop.ClosedForm(0, 4))
	assert.Equal(t, 1, eggdrop.ClosedForm(1, 4))
	assert.Equal(t, 3, eggdrop.ClosedForm(3, 1))
	assert.Equal(t, 14, eggdrop.ClosedForm(100, 2))
	assert.Equal(t, 14, eggdrop.ClosedForm(105, 2))
	assert.Equal(t, 15, eggdrop.ClosedForm(106, 2))
	assert.Equal(t, 32, eggdrop.ClosedForm(1<<32-1, 32))
	assert.Equal(t, 33, eggdrop.ClosedForm(1<<32, 32))
}
