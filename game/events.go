package game

import (
	"raysnake/game/manager"
	"raysnake/game/types"
)

type EventType int

const (
	EventAppleEaten EventType = iota
	EventCollision
	EventBoardFull
	EventReset
)

// ResetCause records what scheduled a reset.
type ResetCause int

const (
	ResetStart ResetCause = iota
	ResetManual
	ResetWall
	ResetSelf
	ResetBoardFull
)

func (c ResetCause) String() string {
	switch c {
	case ResetStart:
		return "start"
	case ResetManual:
		return "manual"
	case ResetWall:
		return "wall"
	case ResetSelf:
		return "self"
	case ResetBoardFull:
		return "board-full"
	}
	return "unknown"
}

type Event struct {
	Type      EventType
	Pos       types.Point
	Length    int
	Collision manager.CollisionType
	Cause     ResetCause
	RoundID   string
}

type EventHandler func(Event)

// EventBus delivers events synchronously on the caller's goroutine.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
