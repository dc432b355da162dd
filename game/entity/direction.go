package entity

import "raysnake/game/types"

// Direction is a cardinal heading on the grid.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// AllDirections lists every heading in clockwise order.
var AllDirections = [...]Direction{North, East, South, West}

var directionVectors = [...]types.Point{
	North: {X: 0, Y: -1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: 1},
	West:  {X: -1, Y: 0},
}

var directionNames = [...]string{
	North: "north",
	East:  "east",
	South: "south",
	West:  "west",
}

func (d Direction) valid() bool {
	return d >= North && d <= West
}

// Vector returns the unit displacement for d, or the zero vector for an unknown value.
func (d Direction) Vector() types.Point {
	if !d.valid() {
		return types.Point{}
	}
	return directionVectors[d]
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	if !d.valid() {
		return d
	}
	return (d + 2) % 4
}

func (d Direction) String() string {
	if !d.valid() {
		return "none"
	}
	return directionNames[d]
}
