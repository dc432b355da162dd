package entity

import "raysnake/game/types"

// Segment is one cell of the snake body, carrying its own lagged heading.
type Segment struct {
	Pos types.Point
	Dir Direction
}

// Snake is an ordered body; Segments[0] is the head.
type Snake struct {
	Segments []Segment
}

// Apple is the single piece of food on the board. Placed is false only
// after the board filled up and no free cell was left.
type Apple struct {
	Pos    types.Point
	Placed bool
}

// NewSnake builds the two-segment starting body: head on start, neck one
// cell behind it, both moving in dir.
func NewSnake(start types.Point, dir Direction) *Snake {
	return &Snake{
		Segments: []Segment{
			{Pos: start, Dir: dir},
			{Pos: start.Sub(dir.Vector()), Dir: dir},
		},
	}
}

func (s *Snake) Len() int {
	return len(s.Segments)
}

func (s *Snake) GetHead() Segment {
	return s.Segments[0]
}

func (s *Snake) GetTail() Segment {
	return s.Segments[len(s.Segments)-1]
}

// SetDirection turns the head unless dir would reverse it onto its neck.
// It reports whether the turn was accepted.
func (s *Snake) SetDirection(dir Direction) bool {
	if !dir.valid() || dir == s.Segments[0].Dir.Opposite() {
		return false
	}
	s.Segments[0].Dir = dir
	return true
}

// PropagateDirections hands every segment the heading its predecessor held,
// walking tail to head so the head's own turn lands one tick later.
func (s *Snake) PropagateDirections() {
	for i := len(s.Segments) - 1; i > 0; i-- {
		s.Segments[i].Dir = s.Segments[i-1].Dir
	}
}

// Grow appends a segment one cell behind the tail, sharing its heading.
func (s *Snake) Grow() Segment {
	tail := s.GetTail()
	seg := Segment{Pos: tail.Pos.Sub(tail.Dir.Vector()), Dir: tail.Dir}
	s.Segments = append(s.Segments, seg)
	return seg
}

// Positions returns a copy of every segment position, head first.
func (s *Snake) Positions() []types.Point {
	out := make([]types.Point, len(s.Segments))
	for i, seg := range s.Segments {
		out[i] = seg.Pos
	}
	return out
}
