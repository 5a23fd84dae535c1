package config

import (
	"flag"
	"time"

	"gridsnake/game/types"

	"github.com/pkg/errors"
)

// Grid defaults
const (
	DefaultGridWidth  = 30
	DefaultGridHeight = 30
	DefaultCellSize   = 25
)

// Timing defaults
const (
	DefaultTicksPerSecond = 12.0
	DefaultSnakeSpeed     = 1
)

// Audio constants
const (
	MusicVolume    = 0.5
	FoodSoundCount = 5
)

// Asset layout, relative to the asset directory
const (
	DefaultAssetDir = "resources"
	MusicFile       = "sounds/music.mp3"
	FoodSoundFormat = "sounds/food%d.mp3" // numbered 1..FoodSoundCount
)

type Config struct {
	GridWidth      int
	GridHeight     int
	CellSize       int
	TicksPerSecond float64
	SnakeSpeed     int
	Seed           uint64 // 0 picks a time based seed
	Autopilot      bool
	Mute           bool
	AssetDir       string
}

// Default returns the stock 30x30 board at 12 ticks per second
func Default() Config {
	return Config{
		GridWidth:      DefaultGridWidth,
		GridHeight:     DefaultGridHeight,
		CellSize:       DefaultCellSize,
		TicksPerSecond: DefaultTicksPerSecond,
		SnakeSpeed:     DefaultSnakeSpeed,
		AssetDir:       DefaultAssetDir,
	}
}

// BindFlags registers the shared command line flags on fs, using the
// current values as defaults
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.GridWidth, "width", c.GridWidth, "Grid width in cells")
	fs.IntVar(&c.GridHeight, "height", c.GridHeight, "Grid height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "Cell size in pixels")
	fs.Float64Var(&c.TicksPerSecond, "tps", c.TicksPerSecond, "Simulation ticks per second")
	fs.IntVar(&c.SnakeSpeed, "speed", c.SnakeSpeed, "Cells the snake moves per tick")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Random seed (0 = time based)")
	fs.BoolVar(&c.Autopilot, "autopilot", c.Autopilot, "Let the Q-learning pilot steer")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "Disable music and sound effects")
	fs.StringVar(&c.AssetDir, "assets", c.AssetDir, "Directory holding the sounds/ folder")
}

// Validate rejects configurations the simulation cannot run with
func (c Config) Validate() error {
	if c.GridWidth < 1 || c.GridHeight < 1 {
		return errors.Errorf("grid must be at least 1x1, got %dx%d", c.GridWidth, c.GridHeight)
	}
	if c.CellSize < 1 {
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.TicksPerSecond <= 0 || c.TicksPerSecond > 1000 {
		return errors.Errorf("ticks per second must be in (0, 1000], got %v", c.TicksPerSecond)
	}
	if c.SnakeSpeed < 1 {
		return errors.Errorf("snake speed must be at least 1, got %d", c.SnakeSpeed)
	}
	return nil
}

// FrameInterval is the wall-clock time between ticks, truncated to whole
// milliseconds (12 ticks per second gives 83ms)
func (c Config) FrameInterval() time.Duration {
	return time.Duration(1.0/c.TicksPerSecond*1000) * time.Millisecond
}

// ScreenSize returns the window size in pixels
func (c Config) ScreenSize() (int, int) {
	return c.GridWidth * c.CellSize, c.GridHeight * c.CellSize
}

func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.GridWidth, Height: c.GridHeight, Cell: c.CellSize}
}

// ResolveSeed returns the configured seed, or one derived from now
func (c Config) ResolveSeed(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(now.UnixNano())
}
