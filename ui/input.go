package ui

import (
	"raysnake/game"
	"raysnake/game/entity"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Keyboard reports keys pressed during the current frame.
type Keyboard interface {
	IsKeyPressed(key int32) bool
}

// RaylibKeyboard reads the window's keyboard state.
type RaylibKeyboard struct{}

func (RaylibKeyboard) IsKeyPressed(key int32) bool {
	return rl.IsKeyPressed(key)
}

// Binding ties a set of keys to one heading.
type Binding struct {
	Dir  entity.Direction
	Keys []int32
}

// Controls maps key presses onto game commands.
type Controls struct {
	Bindings []Binding
	Reset    []int32
}

// DefaultControls uses WASD with the arrow keys as aliases, R to restart.
// Bindings are checked north, east, south, west.
func DefaultControls() *Controls {
	return &Controls{
		Bindings: []Binding{
			{Dir: entity.North, Keys: []int32{rl.KeyW, rl.KeyUp}},
			{Dir: entity.East, Keys: []int32{rl.KeyD, rl.KeyRight}},
			{Dir: entity.South, Keys: []int32{rl.KeyS, rl.KeyDown}},
			{Dir: entity.West, Keys: []int32{rl.KeyA, rl.KeyLeft}},
		},
		Reset: []int32{rl.KeyR},
	}
}

// Apply feeds this frame's presses to g. Each accepted turn overwrites the
// previous one, so the last accepted key before the tick decides the heading.
func (c *Controls) Apply(kb Keyboard, g *game.Game) {
	for _, b := range c.Bindings {
		if anyPressed(kb, b.Keys) {
			g.Steer(b.Dir)
		}
	}
	if anyPressed(kb, c.Reset) {
		g.RequestReset()
	}
}

func anyPressed(kb Keyboard, keys []int32) bool {
	for _, k := range keys {
		if kb.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
