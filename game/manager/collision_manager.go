package manager

import (
	"raysnake/game/entity"
	"raysnake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckSegment classifies a segment that has just moved. Walls win over
// self collisions when both apply.
func (cm *CollisionManager) CheckSegment(seg entity.Segment, snake *entity.Snake) CollisionType {
	if cm.isWallCollision(seg.Pos) {
		return WallCollision
	}
	if CountAt(snake, seg.Pos) > 1 {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// CountAt counts the segments of the whole snake sitting on pos.
func CountAt(snake *entity.Snake, pos types.Point) int {
	n := 0
	for _, seg := range snake.Segments {
		if seg.Pos == pos {
			n++
		}
	}
	return n
}

// IsFoodCollision checks if the head reached the apple
func (cm *CollisionManager) IsFoodCollision(head types.Point, apple entity.Apple) bool {
	return apple.Placed && head == apple.Pos
}
