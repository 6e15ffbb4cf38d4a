// Package config provides YAML-based game-variant configuration for the
// hunting simulation: the level-indexed timing tables, point values, bonus
// table, actor speeds and the maze layout.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// IndefiniteTicks marks a hunting phase that never expires.
const IndefiniteTicks = -1

// Variant names a game variant. Each variant only differs in constants.
type Variant string

const (
	VariantPacMan   Variant = "pacman"
	VariantMsPacMan Variant = "mspacman"
)

// Variants lists the variants that ship with embedded defaults.
func Variants() []Variant {
	return []Variant{VariantPacMan, VariantMsPacMan}
}

// VariantConfig contains all configuration for one game variant.
type VariantConfig struct {
	Variant             Variant       `yaml:"variant"`
	Title               string        `yaml:"title"`
	Lives               int           `yaml:"lives"`
	ExtraLifeThresholds []int         `yaml:"extra_life_thresholds"`
	Points              PointsConfig  `yaml:"points"`
	Power               PowerConfig   `yaml:"power"`
	Hunting             HuntingConfig `yaml:"hunting"`
	House               HouseConfig   `yaml:"house"`
	Bonus               BonusConfig   `yaml:"bonus"`
	Speeds              SpeedConfig   `yaml:"speeds"`
	Collision           string        `yaml:"collision"`   // registered collision strategy name
	DemoSafety          string        `yaml:"demo_safety"` // registered demo-safety policy name
	Maze                []string      `yaml:"maze"`
}

// PointsConfig defines score values.
type PointsConfig struct {
	Pellet               int   `yaml:"pellet"`
	Energizer            int   `yaml:"energizer"`
	Ghosts               []int `yaml:"ghosts"` // Indexed by kills already made with the current energizer
	AllGhostsKilled      int   `yaml:"all_ghosts_killed"`
	AllGhostsKilledCount int   `yaml:"all_ghosts_killed_count"`
}

// PowerConfig defines how long an energizer lasts.
type PowerConfig struct {
	FadingTicks int          `yaml:"fading_ticks"` // Trailing window in which Pac visibly loses power
	Levels      []PowerLevel `yaml:"levels"`
}

// PowerLevel is a power-duration row valid from a level on.
type PowerLevel struct {
	From    int     `yaml:"from"`
	Seconds float64 `yaml:"seconds"`
}

// HuntingConfig holds the scatter/chase phase-duration table.
type HuntingConfig struct {
	Levels []PhaseRow `yaml:"levels"`
}

// PhaseRow lists the phase durations in ticks valid from a level on.
// Even indices are scatter phases, odd indices chase phases.
type PhaseRow struct {
	From  int   `yaml:"from"`
	Ticks []int `yaml:"ticks"`
}

// HouseConfig holds the per-ghost dot limits of the ghost house.
type HouseConfig struct {
	DotLimits []DotLimitRow `yaml:"dot_limits"`
}

// DotLimitRow gives the private dot limits valid from a level on.
type DotLimitRow struct {
	From  int `yaml:"from"`
	Pinky int `yaml:"pinky"`
	Inky  int `yaml:"inky"`
	Clyde int `yaml:"clyde"`
}

// BonusConfig defines when bonus symbols appear and what they are worth.
type BonusConfig struct {
	FoodTriggers []int      `yaml:"food_triggers"` // Eaten-food counts that spawn a bonus
	EdibleTicks  int        `yaml:"edible_ticks"`
	EatenTicks   int        `yaml:"eaten_ticks"`
	Levels       []BonusRow `yaml:"levels"`
}

// BonusRow is the bonus symbol valid from a level on.
type BonusRow struct {
	From   int    `yaml:"from"`
	Symbol string `yaml:"symbol"`
	Points int    `yaml:"points"`
}

// SpeedConfig defines actor speeds as ticks needed to cross one tile.
type SpeedConfig struct {
	Pac        int `yaml:"pac"`
	Ghost      int `yaml:"ghost"`
	Frightened int `yaml:"frightened"`
	Tunnel     int `yaml:"tunnel"`
	Eyes       int `yaml:"eyes"`
	House      int `yaml:"house"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *VariantConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Lives = 5
	case DifficultyHard:
		cfg.Lives = 2
	}
}

// Validate checks the configuration for errors that would make the
// simulation fail later.
func (c *VariantConfig) Validate() error {
	if c.Lives < 0 {
		return fmt.Errorf("%w: negative life count %d", ErrInvalidConfig, c.Lives)
	}
	if len(c.Hunting.Levels) == 0 {
		return fmt.Errorf("%w: empty hunting phase table", ErrInvalidConfig)
	}
	numPhases := -1
	for _, row := range c.Hunting.Levels {
		if len(row.Ticks) == 0 {
			return fmt.Errorf("%w: hunting row from level %d has no phases", ErrInvalidConfig, row.From)
		}
		if numPhases >= 0 && len(row.Ticks) != numPhases {
			return fmt.Errorf("%w: hunting row from level %d has %d phases, expected %d",
				ErrInvalidConfig, row.From, len(row.Ticks), numPhases)
		}
		numPhases = len(row.Ticks)
		for i, ticks := range row.Ticks {
			if ticks <= 0 && ticks != IndefiniteTicks {
				return fmt.Errorf("%w: hunting row from level %d phase %d has duration %d",
					ErrInvalidConfig, row.From, i, ticks)
			}
		}
	}
	if err := checkRows("hunting", len(c.Hunting.Levels), func(i int) int { return c.Hunting.Levels[i].From }); err != nil {
		return err
	}
	if err := checkRows("power", len(c.Power.Levels), func(i int) int { return c.Power.Levels[i].From }); err != nil {
		return err
	}
	if err := checkRows("dot limit", len(c.House.DotLimits), func(i int) int { return c.House.DotLimits[i].From }); err != nil {
		return err
	}
	if err := checkRows("bonus", len(c.Bonus.Levels), func(i int) int { return c.Bonus.Levels[i].From }); err != nil {
		return err
	}
	if len(c.Points.Ghosts) == 0 {
		return fmt.Errorf("%w: no ghost point values", ErrInvalidConfig)
	}
	for _, th := range c.ExtraLifeThresholds {
		if th <= 0 {
			return fmt.Errorf("%w: extra life threshold %d", ErrInvalidConfig, th)
		}
	}
	if c.Power.FadingTicks < 0 {
		return fmt.Errorf("%w: negative power fading window", ErrInvalidConfig)
	}
	s := c.Speeds
	if s.Pac <= 0 || s.Ghost <= 0 || s.Frightened <= 0 || s.Tunnel <= 0 || s.Eyes <= 0 || s.House <= 0 {
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidConfig)
	}
	if len(c.Maze) == 0 {
		return fmt.Errorf("%w: no maze layout", ErrInvalidConfig)
	}
	return nil
}

// checkRows requires a non-empty table starting at level 1 with strictly
// increasing "from" levels.
func checkRows(name string, n int, from func(int) int) error {
	if n == 0 {
		return fmt.Errorf("%w: empty %s table", ErrInvalidConfig, name)
	}
	if from(0) != 1 {
		return fmt.Errorf("%w: %s table must start at level 1", ErrInvalidConfig, name)
	}
	for i := 1; i < n; i++ {
		if from(i) <= from(i-1) {
			return fmt.Errorf("%w: %s table levels not increasing at row %d", ErrInvalidConfig, name, i)
		}
	}
	return nil
}
