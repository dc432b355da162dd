package game

import (
	"raysnake/game/entity"
	"raysnake/game/manager"
	"raysnake/game/types"

	"github.com/google/uuid"
)

// StartDirection is the heading of a freshly reset snake.
const StartDirection = entity.South

// TickResult reports what a single Tick did.
type TickResult struct {
	Reset     bool // the tick only applied a pending reset
	Ate       bool
	BoardFull bool
	Collision manager.CollisionType
}

type Game struct {
	UUID  string // current round
	Grid  types.Grid
	Board *types.Board
	Snake *entity.Snake
	Apple entity.Apple
	Clock *Clock
	Ticks int

	Events *EventBus

	collisions *manager.CollisionManager
	food       *manager.FoodManager

	pendingReset bool
	pendingCause ResetCause
}

// NewGame builds a game and performs the start reset. Handlers already
// subscribed on events see that first EventReset; a nil bus gets a fresh one.
func NewGame(rng manager.Rand, events *EventBus) *Game {
	if events == nil {
		events = NewEventBus()
	}
	grid := types.DefaultGrid
	g := &Game{
		Grid:       grid,
		Board:      types.NewBoard(grid),
		Clock:      NewClock(types.TickInterval, types.MaxTicksPerFrame),
		Events:     events,
		collisions: manager.NewCollisionManager(grid),
		food:       manager.NewFoodManager(rng),
	}
	g.reset(ResetStart)
	return g
}

func (g *Game) GetSnake() *entity.Snake {
	return g.Snake
}

func (g *Game) GetApple() entity.Apple {
	return g.Apple
}

// ResetPending reports whether a reset will run before the next movement tick.
func (g *Game) ResetPending() bool {
	return g.pendingReset
}

// Steer turns the head for the next tick. Reversals are rejected.
func (g *Game) Steer(dir entity.Direction) bool {
	return g.Snake.SetDirection(dir)
}

// RequestReset schedules a manual reset before the next movement tick.
func (g *Game) RequestReset() {
	g.schedule(ResetManual)
}

func (g *Game) schedule(cause ResetCause) {
	if g.pendingReset {
		return
	}
	g.pendingReset = true
	g.pendingCause = cause
}

// Update runs one frame of simulation: a pending reset first, then every
// tick the clock says is due. Ticks stop early once a reset is scheduled so
// that it lands before any further movement. It returns the ticks run.
func (g *Game) Update(dt float64) int {
	if g.pendingReset {
		g.reset(g.pendingCause)
	}
	due := g.Clock.Advance(dt)
	ran := 0
	for ; ran < due; ran++ {
		if g.pendingReset {
			break
		}
		g.Tick()
	}
	return ran
}

// Tick advances the snake by one cell. A pending reset is applied instead
// of moving.
func (g *Game) Tick() TickResult {
	if g.pendingReset {
		g.reset(g.pendingCause)
		return TickResult{Reset: true}
	}
	g.Ticks++

	var res TickResult
	for i := range g.Snake.Segments {
		seg := &g.Snake.Segments[i]
		g.Board.Clear(seg.Pos)
		seg.Pos = seg.Pos.Add(seg.Dir.Vector())

		switch c := g.collisions.CheckSegment(*seg, g.Snake); c {
		case manager.WallCollision:
			res.Collision = c
		case manager.SelfCollision:
			if res.Collision == manager.NoCollision {
				res.Collision = c
			}
		}
		g.Board.Mark(seg.Pos)
	}

	g.Snake.PropagateDirections()

	if res.Collision != manager.NoCollision {
		cause := ResetSelf
		if res.Collision == manager.WallCollision {
			cause = ResetWall
		}
		g.schedule(cause)
		g.Events.Emit(Event{
			Type:      EventCollision,
			Pos:       g.Snake.GetHead().Pos,
			Length:    g.Snake.Len(),
			Collision: res.Collision,
			RoundID:   g.UUID,
		})
	}

	head := g.Snake.GetHead().Pos
	if g.collisions.IsFoodCollision(head, g.Apple) {
		res.Ate = true
		g.Board.Clear(g.Apple.Pos)

		// The new tail is on the board before the apple is placed so the
		// apple cannot land on it.
		tail := g.Snake.Grow()
		g.Board.Mark(tail.Pos)

		g.Events.Emit(Event{
			Type:    EventAppleEaten,
			Pos:     head,
			Length:  g.Snake.Len(),
			RoundID: g.UUID,
		})

		if !g.placeApple() {
			res.BoardFull = true
			g.schedule(ResetBoardFull)
			g.Events.Emit(Event{
				Type:    EventBoardFull,
				Length:  g.Snake.Len(),
				RoundID: g.UUID,
			})
		}
	}

	return res
}

// placeApple spawns a new apple and reports false when the board is full.
func (g *Game) placeApple() bool {
	pos, err := g.food.GenerateFood(g.Board)
	if err != nil {
		g.Apple = entity.Apple{}
		return false
	}
	g.Apple = entity.Apple{Pos: pos, Placed: true}
	g.Board.Mark(pos)
	return true
}

func (g *Game) reset(cause ResetCause) {
	g.Board.Reset()
	g.Snake = entity.NewSnake(types.Center, StartDirection)
	for _, seg := range g.Snake.Segments {
		g.Board.Mark(seg.Pos)
	}
	g.placeApple()

	g.pendingReset = false
	g.Clock.Reset()
	g.UUID = uuid.NewString()

	g.Events.Emit(Event{
		Type:    EventReset,
		Length:  g.Snake.Len(),
		Cause:   cause,
		RoundID: g.UUID,
	})
}
