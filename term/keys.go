package term

import (
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

// KeyToInput maps a key press to a frame input. Arrows steer; p and space
// toggle pause. Anything else maps to the empty input.
func KeyToInput(ev *tcell.EventKey) types.Input {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.Input{Direction: types.Up}
	case tcell.KeyDown:
		return types.Input{Direction: types.Down}
	case tcell.KeyLeft:
		return types.Input{Direction: types.Left}
	case tcell.KeyRight:
		return types.Input{Direction: types.Right}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'p', 'P', ' ':
			return types.Input{Pause: true}
		}
	}
	return types.Input{}
}

// IsQuit reports whether the key closes the host
func IsQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}

