package motion

import (
	"github.com/vovakirdan/arcade-hunt/internal/core"
	"github.com/vovakirdan/arcade-hunt/internal/hunt"
)

// clydeShyness is the squared distance below which Clyde gives up the chase
// and heads for its corner.
const clydeShyness = 8 * 8

// scatterTile returns the corner target of a ghost. The targets lie outside
// the maze so a scattering ghost circles the block next to its corner.
func (m *Mover) scatterTile(p hunt.Personality) core.Tile {
	w, h := m.maze.Width(), m.maze.Height()
	switch p {
	case hunt.Shadow:
		return core.T(w-3, -3)
	case hunt.Speedy:
		return core.T(2, -3)
	case hunt.Bashful:
		return core.T(w-1, h+1)
	default:
		return core.T(0, h+1)
	}
}

// chaseTile returns the tile a hunting ghost aims for during a chase phase.
func (m *Mover) chaseTile(level *hunt.LevelState, g *hunt.Ghost) core.Tile {
	pac := level.Pac
	switch g.Personality() {
	case hunt.Shadow:
		return pac.Tile()
	case hunt.Speedy:
		return ahead(pac, 4)
	case hunt.Bashful:
		pivot := ahead(pac, 2)
		blinky := level.Ghost(hunt.Shadow).Tile()
		return core.T(2*pivot.X-blinky.X, 2*pivot.Y-blinky.Y)
	default:
		if g.Tile().EuclideanSq(pac.Tile()) < clydeShyness {
			return m.scatterTile(hunt.Pokey)
		}
		return pac.Tile()
	}
}

func (m *Mover) targetTile(level *hunt.LevelState, g *hunt.Ghost, phase hunt.Phase) core.Tile {
	if phase == hunt.Scatter {
		return m.scatterTile(g.Personality())
	}
	return m.chaseTile(level, g)
}

// revivalTile is where an eaten ghost comes back to life. Blinky starts
// outside the house, so it revives on Pinky's start tile.
func (m *Mover) revivalTile(p hunt.Personality) core.Tile {
	if p == hunt.Shadow {
		return m.maze.GhostStart(int(hunt.Speedy))
	}
	return m.maze.GhostStart(int(p))
}

func ahead(a *hunt.Pac, n int) core.Tile {
	dx, dy := a.Dir().Delta()
	return a.Tile().Plus(n*dx, n*dy)
}
