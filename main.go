package main

import (
	"flag"
	"log"
	"os"
	"time"

	"gridsnake/ai"
	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"gridsnake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

const targetFPS = 60

func main() {
	cfg := config.Default()
	cfg.BindFlags(flag.CommandLine)
	trace := flag.Bool("trace", false, "Enable raylib trace logging")
	hud := flag.Bool("hud", true, "Show the score")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if *trace {
		rl.SetTraceLogLevel(rl.LogAll)
	} else {
		rl.SetTraceLogLevel(rl.LogWarning)
	}

	width, height := cfg.ScreenSize()
	rl.InitWindow(int32(width), int32(height), "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(targetFPS)

	seed := cfg.ResolveSeed(time.Now())
	cfg.Seed = seed

	var cue manager.AudioCue = manager.NopAudio{}
	var audio *ui.Audio
	if !cfg.Mute {
		var err error
		audio, err = ui.NewAudio(cfg.AssetDir, rand.New(rand.NewSource(seed)))
		if err != nil {
			log.Fatalf("failed to start audio: %v", err)
		}
		defer audio.Close()
		cue = audio
	}

	g := game.NewGame(cfg, game.Options{Audio: cue, Output: os.Stderr})

	var pilot *ai.Autopilot
	if cfg.Autopilot {
		pilot = ai.NewAutopilot(seed, g.Logger())
	}

	renderer := ui.NewRenderer(width, height, *hud)

	for !rl.WindowShouldClose() {
		in := ui.PollInput()
		if pilot != nil {
			in = merge(in, pilot.Next(g.View()))
		}

		g.Update(in)
		if audio != nil {
			audio.Update()
		}
		renderer.Draw(g.View())
	}

	v := g.View()
	g.Logger().Printf("session closed: state=%s score=%d ticks=%d", v.State, v.Score, v.Ticks)
}

// merge keeps the keyboard's pause toggle while the pilot steers
func merge(keys, pilot types.Input) types.Input {
	pilot.Pause = keys.Pause
	return pilot
}
