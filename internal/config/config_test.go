package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsValidate(t *testing.T) {
	for _, v := range Variants() {
		t.Run(string(v), func(t *testing.T) {
			cfg, err := Default(v)
			require.NoError(t, err)
			assert.Equal(t, v, cfg.Variant)
			assert.NoError(t, cfg.Validate())
			assert.Equal(t, 8, cfg.NumPhases())
			assert.Len(t, cfg.Maze, 31)
		})
	}
}

func TestDefaultUnknownVariant(t *testing.T) {
	_, err := Default("galaga")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPhaseTicksByLevel(t *testing.T) {
	cfg, err := Default(VariantPacMan)
	require.NoError(t, err)

	assert.Equal(t, []int{420, 1200, 420, 1200, 300, 1200, 300, IndefiniteTicks}, cfg.PhaseTicks(1))
	assert.Equal(t, 61980, cfg.PhaseTicks(2)[5])
	assert.Equal(t, 61980, cfg.PhaseTicks(4)[5])
	assert.Equal(t, 300, cfg.PhaseTicks(5)[0])
	assert.Equal(t, 300, cfg.PhaseTicks(99)[0])
	assert.Nil(t, cfg.PhaseTicks(0))
}

func TestLevelTablesClampToLastRow(t *testing.T) {
	cfg, err := Default(VariantPacMan)
	require.NoError(t, err)

	assert.Equal(t, 6.0, cfg.PowerSeconds(1))
	assert.Equal(t, 2.0, cfg.PowerSeconds(8))
	assert.Equal(t, 0.0, cfg.PowerSeconds(40))

	assert.Equal(t, DotLimitRow{From: 1, Pinky: 0, Inky: 30, Clyde: 60}, cfg.DotLimits(1))
	assert.Equal(t, DotLimitRow{From: 2, Pinky: 0, Inky: 0, Clyde: 50}, cfg.DotLimits(2))
	assert.Equal(t, DotLimitRow{From: 3}, cfg.DotLimits(12))

	assert.Equal(t, "cherries", cfg.BonusFor(1).Symbol)
	assert.Equal(t, "peach", cfg.BonusFor(4).Symbol)
	assert.Equal(t, 5000, cfg.BonusFor(21).Points)
}

func TestValidateRejectsBrokenTables(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*VariantConfig)
	}{
		{"negative lives", func(c *VariantConfig) { c.Lives = -1 }},
		{"no phases", func(c *VariantConfig) { c.Hunting.Levels = nil }},
		{"zero phase duration", func(c *VariantConfig) { c.Hunting.Levels[0].Ticks[2] = 0 }},
		{"ragged phase rows", func(c *VariantConfig) { c.Hunting.Levels[1].Ticks = []int{1, 2} }},
		{"table not starting at level 1", func(c *VariantConfig) { c.Power.Levels[0].From = 2 }},
		{"levels not increasing", func(c *VariantConfig) { c.Bonus.Levels[1].From = 1 }},
		{"no ghost points", func(c *VariantConfig) { c.Points.Ghosts = nil }},
		{"bad threshold", func(c *VariantConfig) { c.ExtraLifeThresholds = []int{0} }},
		{"zero speed", func(c *VariantConfig) { c.Speeds.Eyes = 0 }},
		{"no maze", func(c *VariantConfig) { c.Maze = nil }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Default(VariantPacMan)
			require.NoError(t, err)
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	cfg, err := Default(VariantMsPacMan)
	require.NoError(t, err)
	cfg.Lives = 7
	cfg.ExtraLifeThresholds = []int{5000, 20000}

	data, err := yaml.Marshal(&cfg)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := Load(VariantMsPacMan, path)
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.Lives)
	assert.Equal(t, []int{5000, 20000}, loaded.ExtraLifeThresholds)
	assert.Equal(t, cfg.Maze, loaded.Maze)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(VariantPacMan, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lives: [oops"), 0o644))
	_, err = Load(VariantPacMan, path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("lives: -3\n"), 0o644))
	_, err = Load(VariantPacMan, path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestApplyPreset(t *testing.T) {
	cfg, err := Default(VariantPacMan)
	require.NoError(t, err)

	ApplyPreset(&cfg, DifficultyNormal)
	assert.Equal(t, 3, cfg.Lives)
	ApplyPreset(&cfg, DifficultyEasy)
	assert.Equal(t, 5, cfg.Lives)
	ApplyPreset(&cfg, DifficultyHard)
	assert.Equal(t, 2, cfg.Lives)
}
