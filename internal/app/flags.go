package app

import (
	"flag"
	"time"

	"github.com/JavaHello/game-life/internal/driver"
	"github.com/JavaHello/game-life/internal/input"
	"github.com/JavaHello/game-life/internal/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	Pitch  int
	Period time.Duration
	TPS    int
	Seed   int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Width:  def.Width,
		Height: def.Height,
		Pitch:  input.DefaultPitch,
		Period: driver.DefaultPeriod,
		TPS:    60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Pitch, "pitch", c.Pitch, "cell pitch in pixels")
	fs.DurationVar(&c.Period, "period", c.Period, "simulation quantum")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the GUI loop")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills (0 picks one from the clock)")
}

// LifeConfig returns the simulation configuration, resolving a zero seed
// from the current time.
func (c *Config) LifeConfig() life.Config {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return life.Config{Width: c.Width, Height: c.Height, Seed: seed}
}
