package types

// Grid represents the game grid dimensions
type Grid struct {
	Width  int // cells
	Height int // cells
	Cell   int // pixels per cell side
}

// PixelWidth returns the horizontal extent of the grid in pixels
func (g Grid) PixelWidth() float32 {
	return float32(g.Width * g.Cell)
}

// PixelHeight returns the vertical extent of the grid in pixels
func (g Grid) PixelHeight() float32 {
	return float32(g.Height * g.Cell)
}

// Center returns the pixel position of the grid's center cell
func (g Grid) Center() (float32, float32) {
	return float32(g.Width / 2 * g.Cell), float32(g.Height / 2 * g.Cell)
}

// Direction is a cardinal heading. None is only valid as the initial heading.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Opposite returns the reverse heading. None has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Segment is one grid cell sized square in pixel space
type Segment struct {
	X, Y          float32
	Width, Height float32
}

// NewSegment creates a cell sized segment at the given pixel position
func NewSegment(x, y float32, cell int) Segment {
	return Segment{X: x, Y: y, Width: float32(cell), Height: float32(cell)}
}

// SamePosition reports exact coordinate equality, not overlap
func (s Segment) SamePosition(o Segment) bool {
	return s.X == o.X && s.Y == o.Y
}

// Color holds normalized channels in [0, 1]
type Color struct {
	R, G, B, A float32
}

var (
	White = Color{R: 1, G: 1, B: 1, A: 1}
	Black = Color{R: 0, G: 0, B: 0, A: 1}
)

// GameState is the session lifecycle
type GameState int

const (
	Playing GameState = iota
	Paused
	GameOver
)

func (s GameState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Input is what the host delivers for one frame: at most one direction
// intent and an optional pause toggle.
type Input struct {
	Direction Direction
	Pause     bool
}
