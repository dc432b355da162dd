package types

// Board is the occupancy cache for snake segments and the apple.
//
// Cells hold a count rather than a flag so that two entities sharing a cell
// (the head entering the apple, or the tick that ends in a self collision)
// release the cell only when both have left. Coordinates outside the grid
// are never indexed.
type Board struct {
	grid  Grid
	cells []uint8
}

func NewBoard(grid Grid) *Board {
	return &Board{
		grid:  grid,
		cells: make([]uint8, grid.Width*grid.Height),
	}
}

func (b *Board) Grid() Grid {
	return b.grid
}

func (b *Board) InBounds(p Point) bool {
	return b.grid.Contains(p)
}

func (b *Board) index(p Point) int {
	return p.Y*b.grid.Width + p.X
}

// Occupied reports whether anything sits on p. Out-of-range cells are free.
func (b *Board) Occupied(p Point) bool {
	if !b.InBounds(p) {
		return false
	}
	return b.cells[b.index(p)] > 0
}

// Mark records one more occupant on p.
func (b *Board) Mark(p Point) {
	if !b.InBounds(p) {
		return
	}
	b.cells[b.index(p)]++
}

// Clear removes one occupant from p.
func (b *Board) Clear(p Point) {
	if !b.InBounds(p) {
		return
	}
	if i := b.index(p); b.cells[i] > 0 {
		b.cells[i]--
	}
}

// Reset empties every cell.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = 0
	}
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for _, c := range b.cells {
		if c > 0 {
			n++
		}
	}
	return n
}

// Free lists the unoccupied cells in row-major order.
func (b *Board) Free() []Point {
	free := make([]Point, 0, len(b.cells)-b.Count())
	for y := 0; y < b.grid.Height; y++ {
		for x := 0; x < b.grid.Width; x++ {
			if b.cells[y*b.grid.Width+x] == 0 {
				free = append(free, Point{X: x, Y: y})
			}
		}
	}
	return free
}

// Full reports whether no cell is left for an apple.
func (b *Board) Full() bool {
	return b.Count() == len(b.cells)
}
