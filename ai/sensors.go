package ai

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/types"
)

// Point is a position in grid cells
type Point struct {
	X, Y int
}

// State is what the pilot sees of a board: where the food lies relative
// to the head, and which of the three reachable cells are occupied.
type State struct {
	Heading  types.Direction
	FoodDir  [2]int  // sign of the shortest wrapped offset to the food (x, y)
	Dangers  [3]bool // left, front, right
	FoodDist int
}

// Key is the Q-table row for the state. Distance is left out so the table
// stays small.
func (s State) Key() string {
	return fmt.Sprintf("%s:%d,%d:%d%d%d", s.Heading, s.FoodDir[0], s.FoodDir[1],
		boolToInt(s.Dangers[0]), boolToInt(s.Dangers[1]), boolToInt(s.Dangers[2]))
}

// Observe builds the pilot state from a view
func Observe(v game.View) State {
	grid := v.Grid
	head := toCell(v.Head(), grid)
	food := toCell(v.Food, grid)
	heading := currentDirection(v.Heading)

	dx := wrappedOffset(food.X-head.X, grid.Width)
	dy := wrappedOffset(food.Y-head.Y, grid.Height)

	step := v.Speed
	if step < 1 {
		step = 1
	}

	s := State{
		Heading:  heading,
		FoodDir:  [2]int{sign(dx), sign(dy)},
		FoodDist: manhattanDistance(head, food, grid.Width, grid.Height),
	}
	for i, rel := range []Action{TurnLeft, Straight, TurnRight} {
		next := move(head, rel.Apply(heading), step, grid)
		s.Dangers[i] = isDanger(next, v.Snake, grid)
	}
	return s
}

// currentDirection treats a snake at rest as heading right
func currentDirection(d types.Direction) types.Direction {
	if d == types.None {
		return types.Right
	}
	return d
}

func toCell(s types.Segment, grid types.Grid) Point {
	return Point{X: int(s.X) / grid.Cell, Y: int(s.Y) / grid.Cell}
}

// toPoint converts a direction into a one-cell step
func toPoint(d types.Direction) Point {
	switch d {
	case types.Up:
		return Point{X: 0, Y: -1}
	case types.Right:
		return Point{X: 1, Y: 0}
	case types.Down:
		return Point{X: 0, Y: 1}
	case types.Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

func move(p Point, d types.Direction, step int, grid types.Grid) Point {
	v := toPoint(d)
	return Point{
		X: mod(p.X+v.X*step, grid.Width),
		Y: mod(p.Y+v.Y*step, grid.Height),
	}
}

// isDanger reports whether the head would land on the body after one
// trailing step. The last segment moves away, so it never counts.
func isDanger(p Point, body []types.Segment, grid types.Grid) bool {
	for i := 1; i < len(body)-1; i++ {
		if toCell(body[i], grid) == p {
			return true
		}
	}
	return false
}

// manhattanDistance measures cells between two points on the wrapping grid
func manhattanDistance(p1, p2 Point, width, height int) int {
	dx := abs(p2.X - p1.X)
	dy := abs(p2.Y - p1.Y)

	if dx > width/2 {
		dx = width - dx
	}
	if dy > height/2 {
		dy = height - dy
	}

	return dx + dy
}

// wrappedOffset picks the shorter way round an axis of the given extent
func wrappedOffset(d, extent int) int {
	if d > extent/2 {
		return d - extent
	}
	if d < -extent/2 {
		return d + extent
	}
	return d
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
