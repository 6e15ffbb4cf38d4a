// Package session drives the hunting engine headlessly: it builds every
// component from a variant configuration, steers Pac with the autopilot and
// handles life loss, level completion and game over between ticks.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/arcade-hunt/internal/config"
	"github.com/vovakirdan/arcade-hunt/internal/core"
	"github.com/vovakirdan/arcade-hunt/internal/hunt"
	"github.com/vovakirdan/arcade-hunt/internal/motion"
	"github.com/vovakirdan/arcade-hunt/internal/registry"
	"github.com/vovakirdan/arcade-hunt/internal/world"
)

// ErrGameOver is returned when stepping a finished session.
var ErrGameOver = errors.New("session: game over")

// History records finished games.
type History interface {
	SaveScore(sessionID uuid.UUID, variant string, score, level int) (int64, error)
}

// Session is one headless game of a variant.
type Session struct {
	id      uuid.UUID
	cfg     config.VariantConfig
	runtime core.RuntimeConfig
	demo    bool

	maze   *world.Map
	mover  *motion.Mover
	pilot  *motion.Pilot
	engine *hunt.Engine
	level  *hunt.LevelState

	stats     *statsSink
	sinks     []hunt.EventSink
	highScore hunt.ScoreStore
	history   History
	logger    *log.Logger

	gameOver        bool
	finished        bool
	levelsCompleted int
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. The engine and the maze log through it too.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithEventSink adds a sink for engine events.
func WithEventSink(sink hunt.EventSink) Option {
	return func(s *Session) { s.sinks = append(s.sinks, sink) }
}

// WithHighScoreStore sets where the high score is loaded from and saved to.
func WithHighScoreStore(store hunt.ScoreStore) Option {
	return func(s *Session) { s.highScore = store }
}

// WithHistory sets where the final score is recorded.
func WithHistory(h History) Option {
	return func(s *Session) { s.history = h }
}

// WithDemo plays the attract-mode demo level rules.
func WithDemo(demo bool) Option {
	return func(s *Session) { s.demo = demo }
}

// New builds a session and gets level 1 ready to play.
func New(cfg config.VariantConfig, rt core.RuntimeConfig, opts ...Option) (*Session, error) {
	s := &Session{
		id:      uuid.New(),
		cfg:     cfg,
		runtime: rt,
		stats:   &statsSink{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	maze, err := world.Parse(cfg.Maze, s.logger)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.maze = maze

	collision, err := registry.Collision(cfg.Collision)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	demoSafety, err := registry.DemoSafety(cfg.DemoSafety)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	clock, err := hunt.NewHuntingPhaseClock(cfg.NumPhases(), func(level, phase int) int {
		return cfg.PhaseTicks(level)[phase]
	})
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	lives, err := hunt.NewLives(cfg.Lives)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	ledger := hunt.NewScoreLedger(cfg.ExtraLifeThresholds, hunt.WithLedgerLogger(s.logger))
	house := hunt.NewGhostHouseGatekeeper(func(level int) [hunt.NumGhosts]int {
		row := cfg.DotLimits(level)
		return [hunt.NumGhosts]int{hunt.Speedy: row.Pinky, hunt.Bashful: row.Inky, hunt.Pokey: row.Clyde}
	})

	s.mover = motion.New(maze, motion.Speeds{
		Pac:        cfg.Speeds.Pac,
		Ghost:      cfg.Speeds.Ghost,
		Frightened: cfg.Speeds.Frightened,
		Tunnel:     cfg.Speeds.Tunnel,
		Eyes:       cfg.Speeds.Eyes,
		House:      cfg.Speeds.House,
	}, rt.Seed)
	s.pilot = motion.NewPilot(maze)

	engineOpts := []hunt.EngineOption{
		hunt.WithMover(s.mover),
		hunt.WithCollision(collision),
		hunt.WithDemoSafety(demoSafety),
		hunt.WithLogger(s.logger),
		hunt.WithEventSink(s.stats),
	}
	for _, sink := range s.sinks {
		engineOpts = append(engineOpts, hunt.WithEventSink(sink))
	}
	s.engine = hunt.NewEngine(s.settings(), clock, house, ledger, lives, engineOpts...)

	if s.highScore != nil {
		ledger.LoadHighScore(s.highScore)
	}
	if err := s.startLevel(1); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) settings() hunt.Settings {
	cfg := s.cfg
	return hunt.Settings{
		PelletPoints:          cfg.Points.Pellet,
		EnergizerPoints:       cfg.Points.Energizer,
		GhostPoints:           cfg.Points.Ghosts,
		AllGhostsKilledPoints: cfg.Points.AllGhostsKilled,
		AllGhostsKilledCount:  cfg.Points.AllGhostsKilledCount,
		PowerTicks: func(level int) int {
			return s.runtime.SecondsToTicks(cfg.PowerSeconds(level))
		},
		PowerFadingTicks: cfg.Power.FadingTicks,
		BonusTriggers:    cfg.Bonus.FoodTriggers,
		BonusEdibleTicks: cfg.Bonus.EdibleTicks,
		BonusEatenTicks:  cfg.Bonus.EatenTicks,
		BonusFor: func(level int) (string, int) {
			row := cfg.BonusFor(level)
			return row.Symbol, row.Points
		},
	}
}

func (s *Session) startLevel(number int) error {
	s.maze.RestoreFood()
	level, err := hunt.NewLevelState(number, s.maze, s.demo)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	level.BonusTile = s.maze.BonusTile()
	s.level = level
	s.engine.StartLevel(level)
	s.engine.GetReadyToPlay(level)
	s.logger.Debug("level started", "level", number, "food", level.UneatenFoodCount())
	return nil
}

// ID returns the session id recorded with the final score.
func (s *Session) ID() uuid.UUID { return s.id }

// Level returns the level being played.
func (s *Session) Level() *hunt.LevelState { return s.level }

// Maze returns the maze the session plays in.
func (s *Session) Maze() *world.Map { return s.maze }

// Engine returns the simulation engine.
func (s *Session) Engine() *hunt.Engine { return s.engine }

// GameOver reports whether Pac has no lives left.
func (s *Session) GameOver() bool { return s.gameOver }

// Step steers Pac, simulates one tick and handles its outcome.
func (s *Session) Step() (*hunt.StepResult, error) {
	if s.gameOver {
		return nil, ErrGameOver
	}
	s.pilot.Steer(s.level)
	res, err := s.engine.Step(s.level)
	if err != nil {
		return res, fmt.Errorf("session: tick %d: %w", s.engine.Tick(), err)
	}
	if err := s.apply(res); err != nil {
		return res, err
	}
	return res, nil
}

// apply handles what a tick means for the game around the level.
func (s *Session) apply(res *hunt.StepResult) error {
	switch {
	case res.PacKilled:
		if err := s.engine.LoseLife(); err != nil {
			return fmt.Errorf("session: %w", err)
		}
		if s.engine.Lives().Count() == 0 {
			s.gameOver = true
			s.logger.Info("game over", "score", s.engine.Ledger().Score().Points, "level", s.level.Number())
			return nil
		}
		s.logger.Debug("pac died", "killer", res.PacKiller, "lives", s.engine.Lives().Count())
		s.engine.GetReadyToPlay(s.level)
	case res.LevelCompleted:
		s.levelsCompleted++
		s.logger.Info("level completed", "level", s.level.Number(), "score", s.engine.Ledger().Score().Points)
		return s.startLevel(s.level.Number() + 1)
	}
	return nil
}

// Run steps the session until the game is over, maxTicks ticks have been
// simulated or the context is done. A non-positive maxTicks means no limit.
// The final score is persisted before Run returns.
func (s *Session) Run(ctx context.Context, maxTicks int) (Summary, error) {
	for ticks := 0; !s.gameOver && (maxTicks <= 0 || ticks < maxTicks); ticks++ {
		if err := ctx.Err(); err != nil {
			s.Finish()
			return s.Summary(), err
		}
		if _, err := s.Step(); err != nil {
			s.Finish()
			return s.Summary(), err
		}
	}
	s.Finish()
	return s.Summary(), nil
}

// Finish persists the high score and records the final score. Calling it
// again does nothing.
func (s *Session) Finish() {
	if s.finished {
		return
	}
	s.finished = true
	ledger := s.engine.Ledger()
	if s.highScore != nil {
		ledger.UpdateHighScore(s.highScore)
	}
	if s.history != nil {
		score := ledger.Score()
		if _, err := s.history.SaveScore(s.id, string(s.cfg.Variant), score.Points, s.level.Number()); err != nil {
			s.logger.Warn("could not record score", "error", err)
		}
	}
}
