package entity

import (
	"gridsnake/game/types"
)

type Snake struct {
	Body      []types.Segment // Body[0] is the head
	Direction types.Direction
	Speed     float32 // cells per tick
	Color     types.Color
	grid      types.Grid
}

// NewSnake creates a single segment snake with no heading
func NewSnake(x, y float32, grid types.Grid) *Snake {
	return &Snake{
		Body:      []types.Segment{types.NewSegment(x, y, grid.Cell)},
		Direction: types.None,
		Speed:     1,
		Color:     types.White,
		grid:      grid,
	}
}

func (s *Snake) GetHead() types.Segment {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Segment {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// MoveSegments shifts every trailing segment onto its predecessor's
// position, then advances the head along the current heading, wrapping
// at the grid edges.
func (s *Snake) MoveSegments() {
	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i].X = s.Body[i-1].X
		s.Body[i].Y = s.Body[i-1].Y
	}

	head := &s.Body[0]
	step := float32(s.grid.Cell) * s.Speed
	switch s.Direction {
	case types.Up:
		head.Y = wrap(head.Y-step, s.grid.PixelHeight(), s.grid.Cell)
	case types.Down:
		head.Y = wrap(head.Y+step, s.grid.PixelHeight(), s.grid.Cell)
	case types.Left:
		head.X = wrap(head.X-step, s.grid.PixelWidth(), s.grid.Cell)
	case types.Right:
		head.X = wrap(head.X+step, s.grid.PixelWidth(), s.grid.Cell)
	case types.None:
	}
}

// Grow appends a placeholder tail one pixel right of the current tail.
// The placeholder is off-grid, so it never matches a head position; the
// next MoveSegments overwrites it with the old tail position.
func (s *Snake) Grow() {
	tail := s.GetTail()
	s.Body = append(s.Body, types.NewSegment(tail.X+1, tail.Y, s.grid.Cell))
}

// wrap sends a coordinate that left [0, extent-cell] to the opposite edge
func wrap(pos, extent float32, cell int) float32 {
	last := extent - float32(cell)
	if pos < 0 {
		return last
	}
	if pos > last {
		return 0
	}
	return pos
}
