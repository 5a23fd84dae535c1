package game

import (
	"io"
	"log"
	"time"

	"gridsnake/config"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Options carries the collaborators a host plugs into a session. Zero
// values fall back to silent audio, the system clock and a discarded log.
type Options struct {
	Audio  manager.AudioCue
	Clock  manager.Clock
	Output io.Writer
}

type Game struct {
	UUID      string
	StartTime time.Time
	Seed      uint64

	logger       *log.Logger
	stateManager *manager.StateManager
}

// View is a read-only snapshot of a session for renderers and input
// sources. Slices are copies; mutating them does not touch the game.
type View struct {
	Grid       types.Grid
	Snake      []types.Segment
	SnakeColor types.Color
	Heading    types.Direction
	Speed      int
	Food       types.Segment
	FoodColor  types.Color
	State      types.GameState
	Score      int
	Ticks      int
}

func NewGame(cfg config.Config, opts Options) *Game {
	clock := opts.Clock
	if clock == nil {
		clock = manager.SystemClock{}
	}
	out := opts.Output
	if out == nil {
		out = io.Discard
	}

	id := uuid.New().String()
	start := clock.Now()
	seed := cfg.ResolveSeed(start)
	logger := log.New(out, "snake "+id[:8]+" ", log.LstdFlags)

	settings := manager.Settings{
		Grid:     cfg.Grid(),
		Speed:    float32(cfg.SnakeSpeed),
		Interval: cfg.FrameInterval(),
	}
	sm := manager.NewStateManager(settings, rand.New(rand.NewSource(seed)), opts.Audio, clock, logger)

	logger.Printf("session started: grid=%dx%d cell=%d interval=%v seed=%d",
		cfg.GridWidth, cfg.GridHeight, cfg.CellSize, settings.Interval, seed)

	return &Game{
		UUID:         id,
		StartTime:    start,
		Seed:         seed,
		logger:       logger,
		stateManager: sm,
	}
}

// Update runs one host frame
func (g *Game) Update(in types.Input) {
	g.stateManager.Update(in)
}

// HandleInput applies input between frames, for hosts that receive key
// events asynchronously
func (g *Game) HandleInput(in types.Input) {
	g.stateManager.HandleInput(in)
}

func (g *Game) IsGameOver() bool {
	return g.stateManager.IsGameOver()
}

func (g *Game) GetStateManager() *manager.StateManager {
	return g.stateManager
}

func (g *Game) Logger() *log.Logger {
	return g.logger
}

// View copies the current session state
func (g *Game) View() View {
	sm := g.stateManager
	snake := sm.GetSnake()
	food := sm.GetFood()

	return View{
		Grid:       sm.GetGrid(),
		Snake:      append([]types.Segment(nil), snake.Body...),
		SnakeColor: snake.Color,
		Heading:    snake.Direction,
		Speed:      int(snake.Speed),
		Food:       food.Segment,
		FoodColor:  food.Color,
		State:      sm.GetState(),
		Score:      sm.GetScore(),
		Ticks:      sm.GetTicks(),
	}
}

// Head returns the first segment of the snake in the view
func (v View) Head() types.Segment {
	return v.Snake[0]
}

func (v View) Paused() bool {
	return v.State == types.Paused
}

func (v View) GameOver() bool {
	return v.State == types.GameOver
}
