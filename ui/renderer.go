package ui

import (
	"raysnake/game"
	"raysnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window and palette constants.
const (
	WindowWidth  = 900
	WindowHeight = 900
	WindowTitle  = "Snake"

	TileWidth  = WindowWidth / types.GridSize
	TileHeight = WindowHeight / types.GridSize
)

var (
	BackgroundColor = rl.NewColor(220, 220, 220, 255)
	SnakeColor      = rl.NewColor(0, 200, 50, 255)
	AppleColor      = rl.NewColor(200, 0, 0, 255)
	GridLineColor   = rl.Black
)

// Surface is the immediate-mode drawing target.
type Surface interface {
	ClearBackground(col rl.Color)
	DrawRectangle(x, y, width, height int32, col rl.Color)
	DrawLine(x1, y1, x2, y2 int32, col rl.Color)
}

// RaylibSurface draws straight into the current raylib frame.
type RaylibSurface struct{}

func (RaylibSurface) ClearBackground(col rl.Color) {
	rl.ClearBackground(col)
}

func (RaylibSurface) DrawRectangle(x, y, width, height int32, col rl.Color) {
	rl.DrawRectangle(x, y, width, height, col)
}

func (RaylibSurface) DrawLine(x1, y1, x2, y2 int32, col rl.Color) {
	rl.DrawLine(x1, y1, x2, y2, col)
}

type Renderer struct {
	width      int32
	height     int32
	tileWidth  int32
	tileHeight int32
	gridSize   int32
}

func NewRenderer() *Renderer {
	return &Renderer{
		width:      WindowWidth,
		height:     WindowHeight,
		tileWidth:  TileWidth,
		tileHeight: TileHeight,
		gridSize:   types.GridSize,
	}
}

// Draw paints one frame of g onto s. It only reads game state.
func (r *Renderer) Draw(s Surface, g *game.Game) {
	s.ClearBackground(BackgroundColor)

	for _, seg := range g.GetSnake().Segments {
		r.drawTile(s, seg.Pos, SnakeColor)
	}

	if apple := g.GetApple(); apple.Placed {
		r.drawTile(s, apple.Pos, AppleColor)
	}

	r.drawGrid(s)
}

func (r *Renderer) drawTile(s Surface, p types.Point, col rl.Color) {
	s.DrawRectangle(
		int32(p.X)*r.tileWidth,
		int32(p.Y)*r.tileHeight,
		r.tileWidth, r.tileHeight, col)
}

func (r *Renderer) drawGrid(s Surface) {
	stepX := r.width / r.gridSize
	stepY := r.height / r.gridSize
	for i := int32(0); i <= r.gridSize; i++ {
		s.DrawLine(0, stepY*i, r.width, stepY*i, GridLineColor)
		s.DrawLine(stepX*i, 0, stepX*i, r.height, GridLineColor)
	}
}
