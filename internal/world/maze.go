// Package world holds the maze the hunting simulation runs in: walls, the
// ghost house, portals and the food still lying on the floor.
//
// Layout legend:
//
//	#  wall            .  pellet          o  energizer
//	-  house door      H  house interior  T  portal (tunnel end)
//	P  Pac start       $  bonus tile      0-3 ghost starts (0 sits outside the house)
//	   (space) empty floor
package world

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/arcade-hunt/internal/core"
)

// Cell is the static content of a maze tile.
type Cell uint8

const (
	CellFloor Cell = iota
	CellWall
	CellDoor
	CellHouse
	CellPortal
)

// Food is the edible content of a tile.
type Food uint8

const (
	FoodNone Food = iota
	FoodPellet
	FoodEnergizer
)

// NumGhosts is the number of ghost start tiles a layout must declare.
const NumGhosts = 4

// ErrInvalidLayout is returned when a layout cannot be turned into a playable maze.
var ErrInvalidLayout = errors.New("world: invalid layout")

// Map is a parsed maze. Food bookkeeping is mutable; everything else is fixed
// once Parse returns.
type Map struct {
	width, height int
	cells         []Cell

	initialFood []foodTile
	food        *intmap.Map[int32, Food]
	energizers  []core.Tile

	pacStart    core.Tile
	ghostStarts [NumGhosts]core.Tile
	bonusTile   core.Tile
	doorTiles   []core.Tile

	logger *log.Logger
}

type foodTile struct {
	index int32
	kind  Food
}

// Parse builds a maze from layout rows. Short rows are padded with walls.
func Parse(layout []string, logger *log.Logger) (*Map, error) {
	if logger == nil {
		logger = log.Default()
	}
	if len(layout) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidLayout)
	}

	m := &Map{
		height: len(layout),
		logger: logger,
	}
	for _, row := range layout {
		if len(row) > m.width {
			m.width = len(row)
		}
	}
	m.cells = make([]Cell, m.width*m.height)
	for i := range m.cells {
		m.cells[i] = CellWall
	}

	var (
		pacFound   bool
		bonusFound bool
		ghostFound [NumGhosts]bool
	)
	for y, row := range layout {
		for x, ch := range []byte(row) {
			t := core.T(x, y)
			idx := m.index(t)
			switch ch {
			case '#':
				m.cells[idx] = CellWall
			case ' ':
				m.cells[idx] = CellFloor
			case '.':
				m.cells[idx] = CellFloor
				m.initialFood = append(m.initialFood, foodTile{index: int32(idx), kind: FoodPellet})
			case 'o':
				m.cells[idx] = CellFloor
				m.initialFood = append(m.initialFood, foodTile{index: int32(idx), kind: FoodEnergizer})
				m.energizers = append(m.energizers, t)
			case '-':
				m.cells[idx] = CellDoor
				m.doorTiles = append(m.doorTiles, t)
			case 'H':
				m.cells[idx] = CellHouse
			case 'T':
				m.cells[idx] = CellPortal
			case 'P':
				m.cells[idx] = CellFloor
				m.pacStart = t
				pacFound = true
			case '$':
				m.cells[idx] = CellFloor
				m.bonusTile = t
				bonusFound = true
			case '0':
				m.cells[idx] = CellFloor
				m.ghostStarts[0] = t
				ghostFound[0] = true
			case '1', '2', '3':
				g := int(ch - '0')
				m.cells[idx] = CellHouse
				m.ghostStarts[g] = t
				ghostFound[g] = true
			default:
				return nil, fmt.Errorf("%w: unknown cell %q at %v", ErrInvalidLayout, ch, t)
			}
		}
	}

	if !pacFound {
		return nil, fmt.Errorf("%w: no Pac start tile", ErrInvalidLayout)
	}
	if !bonusFound {
		return nil, fmt.Errorf("%w: no bonus tile", ErrInvalidLayout)
	}
	for g, ok := range ghostFound {
		if !ok {
			return nil, fmt.Errorf("%w: no start tile for ghost %d", ErrInvalidLayout, g)
		}
	}
	if len(m.doorTiles) == 0 {
		return nil, fmt.Errorf("%w: no house door", ErrInvalidLayout)
	}
	if len(m.initialFood) == 0 {
		return nil, fmt.Errorf("%w: no food", ErrInvalidLayout)
	}

	m.RestoreFood()
	return m, nil
}

func (m *Map) index(t core.Tile) int {
	return t.Y*m.width + t.X
}

func (m *Map) tileAt(index int) core.Tile {
	return core.T(index%m.width, index/m.width)
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// Contains reports whether the tile lies inside the grid.
func (m *Map) Contains(t core.Tile) bool {
	return t.X >= 0 && t.X < m.width && t.Y >= 0 && t.Y < m.height
}

// Cell returns the static content of a tile. Tiles outside the grid are walls.
func (m *Map) Cell(t core.Tile) Cell {
	if !m.Contains(t) {
		return CellWall
	}
	return m.cells[m.index(t)]
}

// IsWall reports whether the tile blocks every actor.
func (m *Map) IsWall(t core.Tile) bool { return m.Cell(m.Wrap(t)) == CellWall }

// IsDoor reports whether the tile is part of the house door.
func (m *Map) IsDoor(t core.Tile) bool { return m.Cell(t) == CellDoor }

// IsHouse reports whether the tile lies inside the ghost house.
func (m *Map) IsHouse(t core.Tile) bool { return m.Cell(t) == CellHouse }

// IsPortal reports whether the tile is a tunnel end.
func (m *Map) IsPortal(t core.Tile) bool { return m.Cell(t) == CellPortal }

// Wrap maps a tile that left the grid through a portal row back onto the
// opposite side. Other tiles are returned unchanged.
func (m *Map) Wrap(t core.Tile) core.Tile {
	if t.Y < 0 || t.Y >= m.height {
		return t
	}
	switch {
	case t.X < 0 && m.Cell(core.T(0, t.Y)) == CellPortal:
		return core.T(m.width-1, t.Y)
	case t.X >= m.width && m.Cell(core.T(m.width-1, t.Y)) == CellPortal:
		return core.T(0, t.Y)
	}
	return t
}

// PacStart returns the tile Pac starts each life on.
func (m *Map) PacStart() core.Tile { return m.pacStart }

// GhostStart returns the start tile of ghost g (0..3).
func (m *Map) GhostStart(g int) core.Tile { return m.ghostStarts[g] }

// HouseExit returns the tile right above the door where ghosts leave the house.
func (m *Map) HouseExit() core.Tile { return m.ghostStarts[0] }

// BonusTile returns where bonus symbols appear.
func (m *Map) BonusTile() core.Tile { return m.bonusTile }

// DoorTiles returns the tiles of the house door.
func (m *Map) DoorTiles() []core.Tile { return m.doorTiles }
