package session

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-hunt/internal/config"
	"github.com/vovakirdan/arcade-hunt/internal/core"
	"github.com/vovakirdan/arcade-hunt/internal/hunt"
)

type memBlob struct {
	score hunt.Score
}

func (b *memBlob) LoadHighScore() (hunt.Score, error) { return b.score, nil }

func (b *memBlob) SaveHighScore(s hunt.Score) error {
	b.score = s
	return nil
}

type savedScore struct {
	session uuid.UUID
	variant string
	score   int
	level   int
}

type memHistory struct {
	saved []savedScore
}

func (h *memHistory) SaveScore(id uuid.UUID, variant string, score, level int) (int64, error) {
	h.saved = append(h.saved, savedScore{id, variant, score, level})
	return int64(len(h.saved)), nil
}

func newTestSession(t *testing.T, variant config.Variant, seed int64, opts ...Option) *Session {
	t.Helper()
	cfg, err := config.Default(variant)
	require.NoError(t, err)
	opts = append([]Option{WithLogger(log.New(io.Discard))}, opts...)
	s, err := New(cfg, core.RuntimeConfig{TickRate: 60, Seed: seed}, opts...)
	require.NoError(t, err)
	return s
}

func TestNewSessionIsReady(t *testing.T) {
	s := newTestSession(t, config.VariantPacMan, 1)
	snap := s.Snapshot()

	assert.Equal(t, 1, snap.Level)
	assert.Equal(t, 3, snap.Lives)
	assert.Zero(t, snap.Score)
	assert.Equal(t, 244, snap.UneatenFood)
	assert.Equal(t, core.T(13, 23), snap.PacTile)
	for _, g := range snap.Ghosts {
		assert.Equal(t, hunt.Locked, g.State)
	}
	assert.False(t, snap.GameOver)
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	cfg, err := config.Default(config.VariantPacMan)
	require.NoError(t, err)

	bad := cfg
	bad.Collision = "teleport"
	_, err = New(bad, core.DefaultConfig(), WithLogger(log.New(io.Discard)))
	require.Error(t, err)

	bad = cfg
	bad.Lives = -1
	_, err = New(bad, core.DefaultConfig(), WithLogger(log.New(io.Discard)))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestDeterminism(t *testing.T) {
	for _, v := range config.Variants() {
		t.Run(string(v), func(t *testing.T) {
			s1 := newTestSession(t, v, 12345)
			s2 := newTestSession(t, v, 12345)

			for range 3000 {
				if s1.GameOver() {
					break
				}
				_, err1 := s1.Step()
				_, err2 := s2.Step()
				require.NoError(t, err1)
				require.NoError(t, err2)
				require.Equal(t, s1.Snapshot(), s2.Snapshot())
			}
		})
	}
}

func TestRunScoresAndReleasesGhosts(t *testing.T) {
	s := newTestSession(t, config.VariantPacMan, 7)

	sum, err := s.Run(context.Background(), 600)
	require.NoError(t, err)

	if !sum.GameOver {
		assert.Equal(t, uint64(600), sum.Ticks)
	}
	assert.Positive(t, sum.Score)
	assert.Positive(t, sum.PelletsEaten)
	assert.GreaterOrEqual(t, sum.Releases, 2, "Blinky and Pinky leave at once on level 1")
	assert.Equal(t, time.Duration(sum.Ticks)*(time.Second/60), sum.GameTime)
	assert.Equal(t, s.ID(), sum.SessionID)
	assert.Equal(t, "pacman", sum.Variant)
}

func TestRunPersistsScores(t *testing.T) {
	blob := &memBlob{}
	history := &memHistory{}
	s := newTestSession(t, config.VariantMsPacMan, 3, WithHighScoreStore(blob), WithHistory(history))

	sum, err := s.Run(context.Background(), 300)
	require.NoError(t, err)

	require.Len(t, history.saved, 1)
	assert.Equal(t, savedScore{s.ID(), "mspacman", sum.Score, sum.Level}, history.saved[0])
	assert.Equal(t, sum.Score, blob.score.Points)

	s.Finish()
	assert.Len(t, history.saved, 1, "finishing twice records once")
}

func TestRunLoadsHighScore(t *testing.T) {
	blob := &memBlob{score: hunt.Score{Points: 999999, LevelNumber: 9}}
	s := newTestSession(t, config.VariantPacMan, 3, WithHighScoreStore(blob))

	sum, err := s.Run(context.Background(), 60)
	require.NoError(t, err)
	assert.Equal(t, 999999, sum.HighScore)
	assert.Equal(t, 999999, blob.score.Points, "a lower score never overwrites the stored one")
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	s := newTestSession(t, config.VariantPacMan, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := s.Run(ctx, 100)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, sum.Ticks)
}

func TestLifeLossAndGameOver(t *testing.T) {
	blob := &memBlob{}
	s := newTestSession(t, config.VariantPacMan, 1, WithHighScoreStore(blob))
	for range 30 {
		_, err := s.Step()
		require.NoError(t, err)
	}

	require.NoError(t, s.apply(&hunt.StepResult{PacKilled: true, PacKiller: hunt.Shadow}))
	assert.Equal(t, 2, s.engine.Lives().Count())
	assert.False(t, s.GameOver())
	assert.Equal(t, core.T(13, 23), s.Level().Pac.Tile(), "Pac starts over")
	assert.True(t, s.engine.House().GlobalCounterEnabled())
	for _, g := range s.Level().Ghosts() {
		assert.Equal(t, hunt.Locked, g.State())
	}

	require.NoError(t, s.apply(&hunt.StepResult{PacKilled: true}))
	require.NoError(t, s.apply(&hunt.StepResult{PacKilled: true}))
	assert.True(t, s.GameOver())

	_, err := s.Step()
	require.ErrorIs(t, err, ErrGameOver)
}

func TestLevelCompletionStartsNextLevel(t *testing.T) {
	s := newTestSession(t, config.VariantPacMan, 1)
	s.Level().Maze.RegisterFoodEaten(core.T(1, 1))

	require.NoError(t, s.apply(&hunt.StepResult{LevelCompleted: true}))
	assert.Equal(t, 2, s.Level().Number())
	assert.Equal(t, 244, s.Level().UneatenFoodCount(), "food is restored")
	assert.Equal(t, 1, s.Summary().LevelsCompleted)
	assert.Equal(t, 0, s.engine.House().DotLimit(hunt.Bashful))
	assert.Equal(t, 50, s.engine.House().DotLimit(hunt.Pokey))
}
