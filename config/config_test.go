package config

import (
	"flag"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	c := Default()

	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	w, h := c.ScreenSize()
	if w != 750 || h != 750 {
		t.Errorf("screen = %dx%d, want 750x750", w, h)
	}
	if got := c.FrameInterval(); got != 83*time.Millisecond {
		t.Errorf("frame interval = %v, want 83ms", got)
	}
	g := c.Grid()
	if g.Width != 30 || g.Height != 30 || g.Cell != 25 {
		t.Errorf("grid = %+v", g)
	}
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		tps  float64
		want time.Duration
	}{
		{12, 83 * time.Millisecond},
		{10, 100 * time.Millisecond},
		{1, time.Second},
		{60, 16 * time.Millisecond},
	}

	for _, tt := range tests {
		c := Default()
		c.TicksPerSecond = tt.tps
		if got := c.FrameInterval(); got != tt.want {
			t.Errorf("tps %v: interval = %v, want %v", tt.tps, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero width", func(c *Config) { c.GridWidth = 0 }, false},
		{"negative height", func(c *Config) { c.GridHeight = -3 }, false},
		{"zero cell", func(c *Config) { c.CellSize = 0 }, false},
		{"zero tps", func(c *Config) { c.TicksPerSecond = 0 }, false},
		{"huge tps", func(c *Config) { c.TicksPerSecond = 5000 }, false},
		{"zero speed", func(c *Config) { c.SnakeSpeed = 0 }, false},
		{"single cell grid", func(c *Config) { c.GridWidth, c.GridHeight = 1, 1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if tt.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.valid && err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}

func TestBindFlags(t *testing.T) {
	c := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.BindFlags(fs)

	args := []string{"-width", "4", "-height", "5", "-cell", "10", "-tps", "20", "-seed", "42", "-autopilot", "-mute"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if c.GridWidth != 4 || c.GridHeight != 5 || c.CellSize != 10 {
		t.Errorf("grid flags not applied: %+v", c)
	}
	if c.TicksPerSecond != 20 || c.Seed != 42 || !c.Autopilot || !c.Mute {
		t.Errorf("flags not applied: %+v", c)
	}
	if c.AssetDir != DefaultAssetDir {
		t.Errorf("asset dir = %q, want default %q", c.AssetDir, DefaultAssetDir)
	}
}

func TestResolveSeed(t *testing.T) {
	now := time.Unix(0, 1234)

	c := Default()
	if got := c.ResolveSeed(now); got != 1234 {
		t.Errorf("time based seed = %d, want 1234", got)
	}
	c.Seed = 7
	if got := c.ResolveSeed(now); got != 7 {
		t.Errorf("explicit seed = %d, want 7", got)
	}
}
