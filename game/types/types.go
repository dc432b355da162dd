package types

// Point is a cell coordinate on the grid.
type Point struct {
	X, Y int
}

// Add returns p displaced by v.
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns p displaced by -v.
func (p Point) Sub(v Point) Point {
	return Point{X: p.X - v.X, Y: p.Y - v.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Game constants
const (
	GridSize = 25 // Cells per side

	FramesPerSecond = 60
	FramesPerTick   = 20 // Rendered frames between two movement ticks

	MaxTicksPerFrame = 3 // Catch-up cap after a stalled frame
	MaxSpawnAttempts = GridSize * GridSize * 4
)

// TickInterval is the simulation step length in seconds.
const TickInterval = float64(FramesPerTick) / float64(FramesPerSecond)

// DefaultGrid is the fixed square playfield.
var DefaultGrid = Grid{Width: GridSize, Height: GridSize}

// Center is the middle cell of the playfield.
var Center = Point{X: GridSize / 2, Y: GridSize / 2}
