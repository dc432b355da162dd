package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"raysnake/game/entity"
	"raysnake/game/types"
)

func TestDirectionVectors(t *testing.T) {
	tests := []struct {
		dir      entity.Direction
		vec      types.Point
		opposite entity.Direction
		name     string
	}{
		{entity.North, types.Point{X: 0, Y: -1}, entity.South, "north"},
		{entity.East, types.Point{X: 1, Y: 0}, entity.West, "east"},
		{entity.South, types.Point{X: 0, Y: 1}, entity.North, "south"},
		{entity.West, types.Point{X: -1, Y: 0}, entity.East, "west"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.vec, tt.dir.Vector())
			assert.Equal(t, tt.opposite, tt.dir.Opposite())
			assert.Equal(t, tt.name, tt.dir.String())
		})
	}

	assert.Len(t, entity.AllDirections, 4)
	assert.Equal(t, types.Point{}, entity.Direction(7).Vector())
	assert.Equal(t, "none", entity.Direction(-1).String())
}

func TestNewSnake(t *testing.T) {
	s := entity.NewSnake(types.Point{X: 12, Y: 12}, entity.South)

	assert.Equal(t, []entity.Segment{
		{Pos: types.Point{X: 12, Y: 12}, Dir: entity.South},
		{Pos: types.Point{X: 12, Y: 11}, Dir: entity.South},
	}, s.Segments)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, types.Point{X: 12, Y: 12}, s.GetHead().Pos)
	assert.Equal(t, types.Point{X: 12, Y: 11}, s.GetTail().Pos)
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	s := entity.NewSnake(types.Point{X: 5, Y: 5}, entity.South)

	assert.False(t, s.SetDirection(entity.North))
	assert.Equal(t, entity.South, s.GetHead().Dir)

	assert.True(t, s.SetDirection(entity.East))
	assert.Equal(t, entity.East, s.GetHead().Dir)

	// The check is against the head's current heading, not the last move.
	assert.True(t, s.SetDirection(entity.North))
	assert.Equal(t, entity.North, s.GetHead().Dir)

	assert.False(t, s.SetDirection(entity.Direction(9)))
}

func TestPropagateDirections(t *testing.T) {
	s := &entity.Snake{Segments: []entity.Segment{
		{Dir: entity.East},
		{Dir: entity.South},
		{Dir: entity.West},
	}}

	s.PropagateDirections()

	assert.Equal(t, entity.East, s.Segments[0].Dir)
	assert.Equal(t, entity.East, s.Segments[1].Dir)
	assert.Equal(t, entity.South, s.Segments[2].Dir)
}

func TestGrowAppendsBehindTail(t *testing.T) {
	s := entity.NewSnake(types.Point{X: 3, Y: 3}, entity.East)

	seg := s.Grow()

	assert.Equal(t, entity.Segment{Pos: types.Point{X: 1, Y: 3}, Dir: entity.East}, seg)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, seg, s.GetTail())
	assert.Equal(t, []types.Point{{X: 3, Y: 3}, {X: 2, Y: 3}, {X: 1, Y: 3}}, s.Positions())
}
