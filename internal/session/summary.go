package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/arcade-hunt/internal/core"
	"github.com/vovakirdan/arcade-hunt/internal/hunt"
)

// Summary describes a session after it stopped.
type Summary struct {
	SessionID       uuid.UUID
	Variant         string
	Ticks           uint64
	GameTime        time.Duration
	Score           int
	HighScore       int
	Level           int
	LevelsCompleted int
	LivesLeft       int
	GameOver        bool

	PelletsEaten    int
	EnergizersEaten int
	GhostsKilled    int
	BonusesEaten    int
	ExtraLives      int
	Deaths          int
	Releases        int
}

// Summary returns the current summary.
func (s *Session) Summary() Summary {
	ledger := s.engine.Ledger()
	ticks := s.engine.Tick()
	return Summary{
		SessionID:       s.id,
		Variant:         string(s.cfg.Variant),
		Ticks:           ticks,
		GameTime:        time.Duration(ticks) * s.runtime.TickDuration(),
		Score:           ledger.Score().Points,
		HighScore:       ledger.HighScore().Points,
		Level:           s.level.Number(),
		LevelsCompleted: s.levelsCompleted,
		LivesLeft:       s.engine.Lives().Count(),
		GameOver:        s.gameOver,
		PelletsEaten:    s.stats.pellets,
		EnergizersEaten: s.stats.energizers,
		GhostsKilled:    s.stats.ghostsKilled,
		BonusesEaten:    s.stats.bonuses,
		ExtraLives:      s.stats.extraLives,
		Deaths:          s.stats.deaths,
		Releases:        s.stats.releases,
	}
}

// statsSink counts engine events for the summary.
type statsSink struct {
	pellets      int
	energizers   int
	ghostsKilled int
	bonuses      int
	extraLives   int
	deaths       int
	releases     int
}

func (c *statsSink) OnEvent(_ uint64, e hunt.Event) {
	switch e := e.(type) {
	case hunt.PacFoundFoodEvent:
		if e.Energizer {
			c.energizers++
		} else {
			c.pellets++
		}
	case hunt.GhostKilledEvent:
		c.ghostsKilled++
	case hunt.BonusEatenEvent:
		c.bonuses++
	case hunt.ExtraLifeEvent:
		c.extraLives++
	case hunt.PacKilledEvent:
		c.deaths++
	case hunt.GhostReleasedEvent:
		c.releases++
	}
}

// GhostSnapshot is the observable state of one ghost.
type GhostSnapshot struct {
	State hunt.GhostState
	Tile  core.Tile
	Dir   core.Direction
}

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Level       int
	Score       int
	Lives       int
	PacTile     core.Tile
	PacDir      core.Direction
	PacPower    bool
	Ghosts      [hunt.NumGhosts]GhostSnapshot
	UneatenFood int
	PhaseIndex  int
	GameOver    bool
}

// Snapshot returns the current game snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        s.engine.Tick(),
		Level:       s.level.Number(),
		Score:       s.engine.Ledger().Score().Points,
		Lives:       s.engine.Lives().Count(),
		PacTile:     s.level.Pac.Tile(),
		PacDir:      s.level.Pac.Dir(),
		PacPower:    s.level.Pac.HasPower(),
		UneatenFood: s.level.UneatenFoodCount(),
		PhaseIndex:  s.engine.Clock().PhaseIndex(),
		GameOver:    s.gameOver,
	}
	for i, g := range s.level.Ghosts() {
		snap.Ghosts[i] = GhostSnapshot{State: g.State(), Tile: g.Tile(), Dir: g.Dir()}
	}
	return snap
}
