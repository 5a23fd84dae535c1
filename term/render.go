// Package term draws a session on a character terminal through tcell.
// Each grid cell is two columns wide so cells come out roughly square.
package term

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

const CellColumns = 2

type Renderer struct {
	screen tcell.Screen
	hud    tcell.Style
	banner tcell.Style
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		hud:    tcell.StyleDefault.Foreground(tcell.ColorGray),
		banner: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	}
}

// Draw renders the view and flushes it to the terminal
func (r *Renderer) Draw(v game.View) {
	r.screen.Clear()
	grid := v.Grid

	for _, seg := range v.Snake {
		r.fillCell(seg, grid, v.SnakeColor)
	}
	r.fillCell(v.Food, grid, v.FoodColor)

	drawText(r.screen, 0, grid.Height, fmt.Sprintf("Score: %d", v.Score), r.hud)

	switch v.State {
	case types.GameOver:
		drawText(r.screen, 0, 0, "You Died.", r.banner)
	case types.Paused:
		drawCentered(r.screen, grid.Width*CellColumns/2, grid.Height/2, "Paused", r.banner)
	}

	r.screen.Show()
}

// fillCell paints the grid cell under a segment. Segments off the grid
// are skipped.
func (r *Renderer) fillCell(seg types.Segment, grid types.Grid, c types.Color) {
	col, row, ok := CellOf(seg, grid)
	if !ok {
		return
	}
	st := tcell.StyleDefault.Background(ToColor(c))
	for i := 0; i < CellColumns; i++ {
		r.screen.SetContent(col*CellColumns+i, row, ' ', nil, st)
	}
}

// CellOf maps a segment's pixel position to a grid column and row
func CellOf(seg types.Segment, grid types.Grid) (int, int, bool) {
	if seg.X < 0 || seg.Y < 0 {
		return 0, 0, false
	}
	col := int(seg.X) / grid.Cell
	row := int(seg.Y) / grid.Cell
	if col >= grid.Width || row >= grid.Height {
		return 0, 0, false
	}
	return col, row, true
}

// ToColor converts a normalized color to a 24-bit terminal color
func ToColor(c types.Color) tcell.Color {
	return tcell.NewRGBColor(channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float32) int32 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return int32(v * 255)
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

func drawCentered(s tcell.Screen, cx, cy int, text string, st tcell.Style) {
	drawText(s, cx-len([]rune(text))/2, cy, text, st)
}
