package ui

import (
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var directionKeys = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyRight, types.Right},
}

// PollInput reads key-down edges for this frame. If several arrows went
// down in the same frame the last one checked wins.
func PollInput() types.Input {
	var in types.Input
	for _, k := range directionKeys {
		if rl.IsKeyPressed(k.key) {
			in.Direction = k.dir
		}
	}
	in.Pause = rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeySpace)
	return in
}
