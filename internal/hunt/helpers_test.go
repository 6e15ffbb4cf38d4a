package hunt

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-hunt/internal/core"
)

// fakeMaze is an in-memory Maze for tests.
type fakeMaze struct {
	food       map[core.Tile]bool // true marks an energizer
	energizers map[core.Tile]bool
	house      map[core.Tile]bool
	portals    map[core.Tile]bool
	total      int
	reEaten    int
}

func newFakeMaze() *fakeMaze {
	return &fakeMaze{
		food:       map[core.Tile]bool{},
		energizers: map[core.Tile]bool{},
		house:      map[core.Tile]bool{},
		portals:    map[core.Tile]bool{},
	}
}

func (m *fakeMaze) addPellets(tiles ...core.Tile) *fakeMaze {
	for _, t := range tiles {
		m.food[t] = false
		m.total++
	}
	return m
}

func (m *fakeMaze) addEnergizer(t core.Tile) *fakeMaze {
	m.food[t] = true
	m.energizers[t] = true
	m.total++
	return m
}

func (m *fakeMaze) HasFoodAt(t core.Tile) bool {
	_, ok := m.food[t]
	return ok
}

func (m *fakeMaze) IsEnergizerTile(t core.Tile) bool { return m.energizers[t] }

func (m *fakeMaze) RegisterFoodEaten(t core.Tile) {
	if _, ok := m.food[t]; !ok {
		m.reEaten++
		return
	}
	delete(m.food, t)
}

func (m *fakeMaze) UneatenFoodCount() int    { return len(m.food) }
func (m *fakeMaze) TotalFoodCount() int      { return m.total }
func (m *fakeMaze) IsHouse(t core.Tile) bool { return m.house[t] }
func (m *fakeMaze) IsPortal(t core.Tile) bool {
	return m.portals[t]
}

// House layout shared by the tests.
var (
	houseExit  = core.T(13, 11)
	pinkyStart = core.T(13, 14)
	inkyStart  = core.T(11, 14)
	clydeStart = core.T(15, 14)
)

func houseMaze() *fakeMaze {
	m := newFakeMaze()
	for x := 11; x <= 15; x++ {
		m.house[core.T(x, 14)] = true
	}
	return m
}

// newTestLevel creates a level with Blinky outside the house and the other
// ghosts locked inside it.
func newTestLevel(t *testing.T, number int, maze *fakeMaze) *LevelState {
	t.Helper()
	level, err := NewLevelState(number, maze, false)
	require.NoError(t, err)
	placeGhostsAtHome(level)
	level.Pac.PlaceAt(core.T(1, 1), core.DirLeft)
	return level
}

func placeGhostsAtHome(level *LevelState) {
	level.Ghost(Shadow).PlaceAt(houseExit, core.DirLeft)
	level.Ghost(Speedy).PlaceAt(pinkyStart, core.DirDown)
	level.Ghost(Bashful).PlaceAt(inkyStart, core.DirUp)
	level.Ghost(Pokey).PlaceAt(clydeStart, core.DirUp)
	for _, g := range level.Ghosts() {
		g.SetState(Locked)
	}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}
