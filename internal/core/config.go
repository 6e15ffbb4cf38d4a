package core

import "time"

// RuntimeConfig contains configuration passed to a simulation at startup.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// SecondsToTicks converts a duration in seconds to simulation ticks.
func (c RuntimeConfig) SecondsToTicks(sec float64) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return int(sec * float64(rate))
}

// TickDuration returns the wall-clock length of one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}
