package hunt

import (
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
)

// Score is a score together with the level it was reached on and when.
type Score struct {
	Points      int
	LevelNumber int
	Date        time.Time
}

// ScoreStore reads and writes the persisted high score. The format behind
// it is up to the implementation.
type ScoreStore interface {
	LoadHighScore() (Score, error)
	SaveHighScore(s Score) error
}

// ExtraLife reports an extra life earned by a scoring call.
type ExtraLife struct {
	Threshold int // The threshold that was crossed
	Score     int // The score after the call
}

// ScoreLedger accumulates points, keeps the high score and grants extra
// lives at configured score thresholds.
type ScoreLedger struct {
	score            Score
	highScore        Score
	thresholds       []int
	scoringEnabled   bool
	highScoreEnabled bool
	levelNumber      int
	now              func() time.Time
	logger           *log.Logger
}

// LedgerOption configures a ScoreLedger.
type LedgerOption func(*ScoreLedger)

// WithClock sets the time source used to date high scores.
func WithClock(now func() time.Time) LedgerOption {
	return func(l *ScoreLedger) { l.now = now }
}

// WithLedgerLogger sets the logger for persistence failures.
func WithLedgerLogger(logger *log.Logger) LedgerOption {
	return func(l *ScoreLedger) { l.logger = logger }
}

// NewScoreLedger creates a ledger with scoring and high-score tracking
// enabled. Thresholds are checked in ascending order.
func NewScoreLedger(extraLifeThresholds []int, opts ...LedgerOption) *ScoreLedger {
	l := &ScoreLedger{
		thresholds:       slices.Sorted(slices.Values(extraLifeThresholds)),
		scoringEnabled:   true,
		highScoreEnabled: true,
		levelNumber:      1,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = log.Default()
	}
	return l
}

// SetLevelNumber sets the level recorded with new scores.
func (l *ScoreLedger) SetLevelNumber(n int) {
	l.levelNumber = n
	l.score.LevelNumber = n
}

// SetScoringEnabled switches scoring on or off. Cheats switch it off.
func (l *ScoreLedger) SetScoringEnabled(enabled bool) { l.scoringEnabled = enabled }

// ScoringEnabled reports whether points are counted.
func (l *ScoreLedger) ScoringEnabled() bool { return l.scoringEnabled }

// SetHighScoreEnabled switches high-score tracking on or off.
func (l *ScoreLedger) SetHighScoreEnabled(enabled bool) { l.highScoreEnabled = enabled }

// Score returns the current score.
func (l *ScoreLedger) Score() Score { return l.score }

// HighScore returns the in-memory high score.
func (l *ScoreLedger) HighScore() Score { return l.highScore }

// Thresholds returns the extra-life thresholds in ascending order.
func (l *ScoreLedger) Thresholds() []int { return slices.Clone(l.thresholds) }

// ResetScore sets the current score back to zero.
func (l *ScoreLedger) ResetScore() {
	l.score = Score{LevelNumber: l.levelNumber}
}

// ScorePoints adds points to the score. If the addition crosses one or more
// extra-life thresholds, the smallest crossed threshold earns one extra life.
func (l *ScoreLedger) ScorePoints(points int) *ExtraLife {
	if !l.scoringEnabled || points <= 0 {
		return nil
	}
	old := l.score.Points
	l.score.Points += points
	l.score.LevelNumber = l.levelNumber
	if l.highScoreEnabled && l.score.Points > l.highScore.Points {
		l.highScore = Score{Points: l.score.Points, LevelNumber: l.levelNumber, Date: l.now()}
	}
	for _, th := range l.thresholds {
		if old < th && th <= l.score.Points {
			return &ExtraLife{Threshold: th, Score: l.score.Points}
		}
	}
	return nil
}

// LoadHighScore replaces the in-memory high score with the persisted one.
// A read failure is logged and leaves a zero high score.
func (l *ScoreLedger) LoadHighScore(store ScoreStore) {
	s, err := store.LoadHighScore()
	if err != nil {
		l.logger.Warn("could not load high score", "error", err)
		l.highScore = Score{}
		return
	}
	l.highScore = s
}

// SaveHighScore persists the in-memory high score. A write failure is logged
// and leaves the in-memory high score untouched.
func (l *ScoreLedger) SaveHighScore(store ScoreStore) {
	if err := store.SaveHighScore(l.highScore); err != nil {
		l.logger.Warn("could not save high score", "error", err)
	}
}

// UpdateHighScore persists the in-memory high score if it beats the persisted
// one. An unreadable store counts as holding no high score.
func (l *ScoreLedger) UpdateHighScore(store ScoreStore) {
	persisted, err := store.LoadHighScore()
	if err != nil {
		l.logger.Warn("could not read persisted high score", "error", err)
		persisted = Score{}
	}
	if l.highScore.Points > persisted.Points {
		l.SaveHighScore(store)
	}
}

// Lives counts Pac's remaining lives.
type Lives struct {
	n int
}

// NewLives creates a life counter.
func NewLives(n int) (*Lives, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLives, n)
	}
	return &Lives{n: n}, nil
}

// Count returns the lives left.
func (l *Lives) Count() int { return l.n }

// Add grants extra lives.
func (l *Lives) Add(n int) { l.n += n }

// Lose takes one life. Losing a life with none left is an error.
func (l *Lives) Lose() error {
	if l.n == 0 {
		return fmt.Errorf("%w: no life left to lose", ErrNegativeLives)
	}
	l.n--
	return nil
}
