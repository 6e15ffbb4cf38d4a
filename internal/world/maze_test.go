package world

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-hunt/internal/config"
	"github.com/vovakirdan/arcade-hunt/internal/core"
)

var smallLayout = []string{
	"##########",
	"T.o..P..$T",
	"#.##-##..#",
	"#.#1H2#0.#",
	"#.##3##..#",
	"##########",
}

func parseSmall(t *testing.T) *Map {
	t.Helper()
	m, err := Parse(smallLayout, log.New(io.Discard))
	require.NoError(t, err)
	return m
}

func TestParse(t *testing.T) {
	m := parseSmall(t)

	assert.Equal(t, 10, m.Width())
	assert.Equal(t, 6, m.Height())
	assert.Equal(t, core.T(5, 1), m.PacStart())
	assert.Equal(t, core.T(8, 1), m.BonusTile())
	assert.Equal(t, core.T(7, 3), m.HouseExit())
	assert.Equal(t, core.T(3, 3), m.GhostStart(1))
	assert.Equal(t, core.T(4, 4), m.GhostStart(3))
	assert.Equal(t, []core.Tile{core.T(4, 2)}, m.DoorTiles())

	assert.True(t, m.IsHouse(core.T(4, 3)))
	assert.True(t, m.IsHouse(m.GhostStart(2)))
	assert.False(t, m.IsHouse(m.HouseExit()))
	assert.True(t, m.IsDoor(core.T(4, 2)))
	assert.True(t, m.IsPortal(core.T(0, 1)))
	assert.True(t, m.IsWall(core.T(0, 0)))
	assert.True(t, m.IsWall(core.T(-1, 3)), "outside the grid is wall")
	assert.False(t, m.IsWall(core.T(-1, 1)), "portal rows wrap")

	assert.Equal(t, 14, m.TotalFoodCount())
	assert.Equal(t, 14, m.UneatenFoodCount())
	assert.Equal(t, []core.Tile{core.T(2, 1)}, m.EnergizerTiles())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
	}{
		{"empty", nil},
		{"unknown cell", []string{"#x#"}},
		{"no pac", []string{"#.$0-1H23#"}},
		{"no bonus", []string{"#.P0-1H23#"}},
		{"no ghost", []string{"#.P$0-1H2#"}},
		{"no door", []string{"#.P$01H23#"}},
		{"no food", []string{"# P$0-1H23#"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.layout, log.New(io.Discard))
			require.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

func TestParsePadsShortRows(t *testing.T) {
	layout := append([]string(nil), smallLayout...)
	layout = append(layout, "#")
	m, err := Parse(layout, log.New(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, 7, m.Height())
	assert.True(t, m.IsWall(core.T(5, 6)))
}

func TestWrap(t *testing.T) {
	m := parseSmall(t)
	assert.Equal(t, core.T(9, 1), m.Wrap(core.T(-1, 1)))
	assert.Equal(t, core.T(0, 1), m.Wrap(core.T(10, 1)))
	assert.Equal(t, core.T(-1, 2), m.Wrap(core.T(-1, 2)), "no portal on this row")
	assert.Equal(t, core.T(4, 4), m.Wrap(core.T(4, 4)))
}

func TestFoodBookkeeping(t *testing.T) {
	m := parseSmall(t)
	pellet := core.T(1, 1)
	energizer := core.T(2, 1)

	assert.Equal(t, FoodPellet, m.FoodAt(pellet))
	assert.Equal(t, FoodEnergizer, m.FoodAt(energizer))
	assert.Equal(t, FoodNone, m.FoodAt(m.PacStart()))
	assert.False(t, m.HasFoodAt(core.T(50, 50)))

	m.RegisterFoodEaten(pellet)
	m.RegisterFoodEaten(energizer)
	assert.False(t, m.HasFoodAt(pellet))
	assert.Equal(t, 12, m.UneatenFoodCount())
	assert.Equal(t, 14, m.TotalFoodCount())
	assert.True(t, m.IsEnergizerTile(energizer), "the layout keeps its energizer tiles")
	assert.NotContains(t, m.FoodTiles(), pellet)
	assert.Len(t, m.FoodTiles(), 12)

	m.RestoreFood()
	assert.Equal(t, 14, m.UneatenFoodCount())
	assert.Equal(t, core.T(1, 1), m.FoodTiles()[0])
}

func TestRegisterFoodEatenTwiceIsNoOp(t *testing.T) {
	m := parseSmall(t)
	m.RegisterFoodEaten(core.T(1, 1))
	assert.NotPanics(t, func() { m.RegisterFoodEaten(core.T(1, 1)) })
	assert.NotPanics(t, func() { m.RegisterFoodEaten(core.T(-3, 1)) })
	assert.Equal(t, 13, m.UneatenFoodCount())
}

func TestDefaultMazes(t *testing.T) {
	for _, v := range config.Variants() {
		t.Run(string(v), func(t *testing.T) {
			cfg, err := config.Default(v)
			require.NoError(t, err)
			m, err := Parse(cfg.Maze, log.New(io.Discard))
			require.NoError(t, err)

			assert.Equal(t, 28, m.Width())
			assert.Equal(t, 31, m.Height())
			assert.Equal(t, 244, m.TotalFoodCount())
			assert.Len(t, m.EnergizerTiles(), 4)
			assert.Equal(t, core.T(13, 11), m.HouseExit())
			assert.Equal(t, core.T(13, 23), m.PacStart())
			assert.Equal(t, core.T(13, 17), m.BonusTile())
			assert.True(t, m.IsPortal(core.T(0, 14)))
			assert.True(t, m.IsPortal(core.T(27, 14)))
			for g := 1; g < NumGhosts; g++ {
				assert.True(t, m.IsHouse(m.GhostStart(g)), "ghost %d starts inside", g)
			}
		})
	}
}
