package gridpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdrpinto/gridpath"
)

var sampleCoords = []gridpath.Coords{
	{X: 0, Y: 0},
	{X: 3, Y: -7},
	{X: -12, Y: 5},
	{X: 1 << 20, Y: -(1 << 20)},
}

func TestCoords_AddThenSubIsIdentity(t *testing.T) {
	for _, a := range sampleCoords {
		for _, b := range sampleCoords {
			assert.Equal(t, a, a.Add(b).Sub(b), "a=%v b=%v", a, b)
		}
	}
}

func TestCoords_OppositeOffsetsCancel(t *testing.T) {
	for _, a := range sampleCoords {
		assert.Equal(t, a, a.Add(gridpath.Up).Add(gridpath.Down))
		assert.Equal(t, a, a.Add(gridpath.Right).Add(gridpath.Left))
	}
}

func TestCoords_UnitOffsets(t *testing.T) {
	assert.Equal(t, gridpath.NewCoords(0, 1), gridpath.Up)
	assert.Equal(t, gridpath.NewCoords(0, -1), gridpath.Down)
	assert.Equal(t, gridpath.NewCoords(1, 0), gridpath.Right)
	assert.Equal(t, gridpath.NewCoords(-1, 0), gridpath.Left)
}

func TestCoords_EqualAndHash(t *testing.T) {
	for _, a := range sampleCoords {
		b := gridpath.NewCoords(a.X, a.Y)
		assert.True(t, a.Equal(b))
		assert.Equal(t, a.Hash(), b.Hash())
	}
	assert.False(t, gridpath.NewCoords(1, 2).Equal(gridpath.NewCoords(2, 1)))
}

func TestCoords_String(t *testing.T) {
	assert.Equal(t, "(3, -4)", gridpath.NewCoords(3, -4).String())
}
