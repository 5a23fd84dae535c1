package ui

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	deathTextX    = 275
	deathTextY    = 0
	deathFontSize = 40
	hudFontSize   = 20
	hudPadding    = 5
)

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	showHUD      bool
}

func NewRenderer(screenWidth, screenHeight int, showHUD bool) *Renderer {
	return &Renderer{
		screenWidth:  int32(screenWidth),
		screenHeight: int32(screenHeight),
		showHUD:      showHUD,
	}
}

// Draw renders one frame of the view. Must be called on the window thread.
func (r *Renderer) Draw(v game.View) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	for _, seg := range v.Snake {
		rl.DrawRectangleRec(toRect(seg), toColor(v.SnakeColor))
	}
	rl.DrawRectangleRec(toRect(v.Food), toColor(v.FoodColor))

	if r.showHUD {
		score := fmt.Sprintf("Score: %d", v.Score)
		rl.DrawText(score, hudPadding, r.screenHeight-hudFontSize-hudPadding, hudFontSize, rl.Gray)
	}

	switch v.State {
	case types.GameOver:
		rl.DrawText("You Died.", deathTextX, deathTextY, deathFontSize, rl.White)
	case types.Paused:
		r.drawCentered("Paused", deathFontSize, rl.White)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawCentered(text string, fontSize int32, col rl.Color) {
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (r.screenWidth-width)/2, (r.screenHeight-fontSize)/2, fontSize, col)
}

func toRect(s types.Segment) rl.Rectangle {
	return rl.NewRectangle(s.X, s.Y, s.Width, s.Height)
}

// toColor maps a normalized RGBA color onto raylib's 8-bit channels
func toColor(c types.Color) rl.Color {
	return rl.ColorFromNormalized(rl.NewVector4(c.R, c.G, c.B, c.A))
}
