// Command snake-term plays the game in a terminal, with synthesised audio.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"gridsnake/ai"
	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"gridsnake/term"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

const hostFrame = time.Second / 60

func main() {
	cfg := config.Default()
	cfg.BindFlags(flag.CommandLine)
	logPath := flag.String("log", "", "Write the session log to this file")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	cfg.Seed = cfg.ResolveSeed(time.Now())

	out, err := openLog(*logPath)
	if err != nil {
		log.Fatalf("failed to open log: %v", err)
	}
	defer out.Close()

	var cue manager.AudioCue = manager.NopAudio{}
	if !cfg.Mute {
		audio, err := newSpeakerAudio(rand.New(rand.NewSource(cfg.Seed)))
		if err != nil {
			log.Fatalf("failed to start audio: %v", err)
		}
		defer audio.Close()
		cue = audio
	}

	screen, err := newScreen()
	if err != nil {
		log.Fatalf("failed to start terminal: %v", err)
	}
	defer screen.Fini()

	g := game.NewGame(cfg, game.Options{Audio: cue, Output: out})
	var pilot *ai.Autopilot
	if cfg.Autopilot {
		pilot = ai.NewAutopilot(cfg.Seed, g.Logger())
	}

	run(screen, g, pilot)

	v := g.View()
	g.Logger().Printf("session closed: state=%s score=%d ticks=%d", v.State, v.Score, v.Ticks)
}

// run owns the frame loop until the player quits. Key events arrive on a
// channel fed by tcell and are applied as they come; the frame ticker
// drives the simulation and redraw.
func run(screen tcell.Screen, g *game.Game, pilot *ai.Autopilot) {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	renderer := term.NewRenderer(screen)
	ticker := time.NewTicker(hostFrame)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if term.IsQuit(ev) {
					return
				}
				g.HandleInput(term.KeyToInput(ev))
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			var in types.Input
			if pilot != nil {
				in = pilot.Next(g.View())
			}
			g.Update(in)
			renderer.Draw(g.View())
		}
	}
}

func newScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "new screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "screen init")
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.HideCursor()
	return screen, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openLog returns the session log sink. The terminal belongs to tcell, so
// without a path the log is discarded.
func openLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return f, nil
}
