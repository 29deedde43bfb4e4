package life

import "strconv"

// Config controls the grid dimensions and the fill seed.
type Config struct {
	Width  int
	Height int

	// Seed drives random fills. Reset draws from the same stream, so every
	// reset produces a new board.
	Seed int64
}

// DefaultConfig returns the standard 64x64 configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, Seed: 1}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
