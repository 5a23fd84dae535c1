package term

import (
	"strings"
	"testing"

	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

var testGrid = types.Grid{Width: 10, Height: 8, Cell: 10}

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(40, 12)
	t.Cleanup(s.Fini)
	return s
}

func testView(state types.GameState) game.View {
	return game.View{
		Grid:       testGrid,
		Snake:      []types.Segment{types.NewSegment(30, 20, 10), types.NewSegment(20, 20, 10)},
		SnakeColor: types.White,
		Food:       types.NewSegment(90, 70, 10),
		FoodColor:  types.Color{R: 1, G: 0, B: 0, A: 1},
		State:      state,
		Score:      3,
	}
}

func cellAt(s tcell.SimulationScreen, x, y int) tcell.SimCell {
	cells, w, _ := s.GetContents()
	return cells[y*w+x]
}

func rowText(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		runes := cells[y*w+x].Runes
		if len(runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(runes[0])
	}
	return b.String()
}

func background(c tcell.SimCell) tcell.Color {
	_, bg, _ := c.Style.Decompose()
	return bg
}

func TestDrawCellsAreTwoColumnsWide(t *testing.T) {
	s := newTestScreen(t)
	NewRenderer(s).Draw(testView(types.Playing))

	white := ToColor(types.White)
	for _, x := range []int{6, 7, 4, 5} {
		if bg := background(cellAt(s, x, 2)); bg != white {
			t.Errorf("column %d row 2 background = %v, want snake white", x, bg)
		}
	}
	if bg := background(cellAt(s, 8, 2)); bg == white {
		t.Error("snake spilled past its cell")
	}

	red := ToColor(types.Color{R: 1, A: 1})
	if bg := background(cellAt(s, 18, 7)); bg != red {
		t.Errorf("food background = %v, want red", bg)
	}
	if bg := background(cellAt(s, 19, 7)); bg != red {
		t.Errorf("food second column background = %v, want red", bg)
	}
}

func TestDrawHUDAndBanners(t *testing.T) {
	s := newTestScreen(t)
	r := NewRenderer(s)

	r.Draw(testView(types.Playing))
	if !strings.HasPrefix(rowText(s, 8), "Score: 3") {
		t.Errorf("hud row = %q", rowText(s, 8))
	}
	if strings.Contains(rowText(s, 0), "You Died.") {
		t.Error("death banner while playing")
	}

	r.Draw(testView(types.Paused))
	if !strings.Contains(rowText(s, 4), "Paused") {
		t.Errorf("pause row = %q", rowText(s, 4))
	}

	r.Draw(testView(types.GameOver))
	if !strings.HasPrefix(rowText(s, 0), "You Died.") {
		t.Errorf("top row = %q", rowText(s, 0))
	}
}

func TestCellOf(t *testing.T) {
	tests := []struct {
		seg      types.Segment
		col, row int
		ok       bool
	}{
		{types.NewSegment(0, 0, 10), 0, 0, true},
		{types.NewSegment(90, 70, 10), 9, 7, true},
		{types.NewSegment(31, 20, 10), 3, 2, true},
		{types.NewSegment(100, 0, 10), 0, 0, false},
		{types.NewSegment(-1, 0, 10), 0, 0, false},
	}

	for _, tt := range tests {
		col, row, ok := CellOf(tt.seg, testGrid)
		if ok != tt.ok || (ok && (col != tt.col || row != tt.row)) {
			t.Errorf("CellOf(%v,%v) = %d,%d,%v want %d,%d,%v", tt.seg.X, tt.seg.Y, col, row, ok, tt.col, tt.row, tt.ok)
		}
	}
}

func TestToColor(t *testing.T) {
	got := ToColor(types.Color{R: 1, G: 0.5, B: 2, A: 1})
	r, g, b := got.RGB()
	if r != 255 || g != 127 || b != 255 {
		t.Errorf("rgb = %d,%d,%d want 255,127,255", r, g, b)
	}
}

func TestKeyToInput(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want types.Input
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), types.Input{Direction: types.Up}},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), types.Input{Direction: types.Down}},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), types.Input{Direction: types.Left}},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), types.Input{Direction: types.Right}},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), types.Input{Pause: true}},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), types.Input{Pause: true}},
		{"other", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), types.Input{}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), types.Input{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyToInput(tt.ev); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIsQuit(t *testing.T) {
	quits := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	}
	for _, ev := range quits {
		if !IsQuit(ev) {
			t.Errorf("%s should quit", ev.Name())
		}
	}
	if IsQuit(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)) {
		t.Error("p should not quit")
	}
}
