package manager

import (
	"errors"

	"raysnake/game/types"
)

// ErrBoardFull is returned when no free cell is left for an apple.
var ErrBoardFull = errors.New("board full: no free cell for apple")

// Rand is the uniform integer source used for placement.
type Rand interface {
	Intn(n int) int
}

type FoodManager struct {
	rng         Rand
	maxAttempts int
}

func NewFoodManager(rng Rand) *FoodManager {
	return &FoodManager{
		rng:         rng,
		maxAttempts: types.MaxSpawnAttempts,
	}
}

// GenerateFood picks a uniformly random free cell. It samples blindly first,
// which is cheap while the board is mostly empty, and switches to drawing
// from the enumerated free cells once maxAttempts samples have missed.
func (fm *FoodManager) GenerateFood(board *types.Board) (types.Point, error) {
	grid := board.Grid()
	for i := 0; i < fm.maxAttempts; i++ {
		food := types.Point{
			X: fm.rng.Intn(grid.Width),
			Y: fm.rng.Intn(grid.Height),
		}
		if !board.Occupied(food) {
			return food, nil
		}
	}

	free := board.Free()
	if len(free) == 0 {
		return types.Point{}, ErrBoardFull
	}
	return free[fm.rng.Intn(len(free))], nil
}
