package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raysnake/game/types"
)

func TestBoardMarkAndClear(t *testing.T) {
	b := types.NewBoard(types.Grid{Width: 4, Height: 3})
	p := types.Point{X: 2, Y: 1}

	assert.False(t, b.Occupied(p))
	b.Mark(p)
	assert.True(t, b.Occupied(p))
	assert.Equal(t, 1, b.Count())

	b.Clear(p)
	assert.False(t, b.Occupied(p))
	assert.Equal(t, 0, b.Count())
}

func TestBoardSharedCellStaysOccupied(t *testing.T) {
	b := types.NewBoard(types.DefaultGrid)
	p := types.Point{X: 5, Y: 5}

	b.Mark(p)
	b.Mark(p)
	b.Clear(p)
	assert.True(t, b.Occupied(p), "one occupant left")

	b.Clear(p)
	b.Clear(p)
	assert.False(t, b.Occupied(p))
}

func TestBoardOutOfRange(t *testing.T) {
	b := types.NewBoard(types.Grid{Width: 3, Height: 3})

	for _, p := range []types.Point{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 3}} {
		assert.False(t, b.InBounds(p), "%v", p)
		assert.NotPanics(t, func() {
			b.Mark(p)
			b.Clear(p)
		})
		assert.False(t, b.Occupied(p))
	}
	assert.Equal(t, 0, b.Count())
}

func TestBoardFreeAndFull(t *testing.T) {
	b := types.NewBoard(types.Grid{Width: 2, Height: 2})
	b.Mark(types.Point{X: 0, Y: 0})
	b.Mark(types.Point{X: 1, Y: 1})

	assert.Equal(t, []types.Point{{X: 1, Y: 0}, {X: 0, Y: 1}}, b.Free())
	assert.False(t, b.Full())

	b.Mark(types.Point{X: 1, Y: 0})
	b.Mark(types.Point{X: 0, Y: 1})
	assert.True(t, b.Full())
	assert.Empty(t, b.Free())

	b.Reset()
	require.Equal(t, 0, b.Count())
	assert.Len(t, b.Free(), 4)
}

func TestTickInterval(t *testing.T) {
	assert.InDelta(t, 1.0/3.0, types.TickInterval, 1e-12)
	assert.Equal(t, types.Point{X: 12, Y: 12}, types.Center)
}
