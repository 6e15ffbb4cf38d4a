// Package motion moves Pac and the ghosts through a maze one tile at a time.
// It is the movement collaborator of the hunting engine: the engine only
// looks at the tiles the actors end up on.
package motion

import (
	"math/rand"

	"github.com/vovakirdan/arcade-hunt/internal/core"
	"github.com/vovakirdan/arcade-hunt/internal/hunt"
	"github.com/vovakirdan/arcade-hunt/internal/world"
)

// DefaultEatenTicks is how long an eaten ghost stays put before its eyes
// head back to the house.
const DefaultEatenTicks = 60

// Speeds are movement intervals in ticks per tile. Lower is faster.
type Speeds struct {
	Pac        int
	Ghost      int
	Frightened int
	Tunnel     int
	Eyes       int
	House      int
}

// Mover implements hunt.Mover on a grid maze.
type Mover struct {
	maze       *world.Map
	speeds     Speeds
	rng        *rand.Rand
	eatenTicks int

	outside walkable
	inside  walkable
}

var _ hunt.Mover = (*Mover)(nil)

// New creates a mover. The seed drives the turns of frightened ghosts.
func New(maze *world.Map, speeds Speeds, seed int64) *Mover {
	return &Mover{
		maze:       maze,
		speeds:     speeds,
		rng:        rand.New(rand.NewSource(seed)),
		eatenTicks: DefaultEatenTicks,
		outside:    outsideWalkable(maze),
		inside:     houseWalkable(maze),
	}
}

// SetEatenTicks changes how long eaten ghosts wait before returning home.
func (m *Mover) SetEatenTicks(ticks int) { m.eatenTicks = ticks }

// Reset puts every actor on its start tile.
func (m *Mover) Reset(level *hunt.LevelState) {
	level.Pac.PlaceAt(m.maze.PacStart(), core.DirLeft)
	for _, g := range level.Ghosts() {
		dir := core.DirUp
		switch g.Personality() {
		case hunt.Shadow:
			dir = core.DirLeft
		case hunt.Speedy:
			dir = core.DirDown
		}
		g.PlaceAt(m.maze.GhostStart(int(g.Personality())), dir)
	}
}

// MovePac moves Pac one tile when its cooldown allows it. Pac turns into its
// wish direction when that is open, otherwise keeps going until a wall stops it.
func (m *Mover) MovePac(level *hunt.LevelState) {
	pac := level.Pac
	if pac.Dead() || m.coolingDown(&pac.Actor) {
		pac.Hold()
		return
	}
	switch {
	case m.canGo(pac.Tile(), pac.WishDir(), m.outside):
		pac.SetDir(pac.WishDir())
	case !m.canGo(pac.Tile(), pac.Dir(), m.outside):
		pac.Hold()
		return
	}
	pac.MoveTo(neighbour(m.maze, pac.Tile(), pac.Dir()))
	pac.SetCooldown(interval(m.speeds.Pac) - 1)
}

// MoveGhost moves a ghost according to its state.
func (m *Mover) MoveGhost(level *hunt.LevelState, g *hunt.Ghost, phase hunt.Phase) {
	switch g.State() {
	case hunt.Locked:
		g.Hold()
		return
	case hunt.Eaten:
		g.Hold()
		if g.StateTicks() >= m.eatenTicks {
			g.SetState(hunt.ReturningToHouse)
		}
		return
	}
	if m.coolingDown(&g.Actor) {
		g.Hold()
		return
	}

	var dir core.Direction
	switch g.State() {
	case hunt.LeavingHouse:
		if g.Tile() == m.maze.HouseExit() {
			g.SetState(hunt.HuntingPac)
			g.SetDir(core.DirLeft)
			g.Hold()
			return
		}
		dir = m.pathTo(g.Tile(), m.maze.HouseExit(), m.inside)
	case hunt.ReturningToHouse:
		if g.Tile() == m.maze.HouseExit() {
			g.SetState(hunt.EnteringHouse)
			g.Hold()
			return
		}
		dir = m.pathTo(g.Tile(), m.maze.HouseExit(), m.outside)
	case hunt.EnteringHouse:
		home := m.revivalTile(g.Personality())
		if g.Tile() == home {
			g.SetState(hunt.Locked)
			g.SetDir(core.DirUp)
			g.Hold()
			return
		}
		dir = m.pathTo(g.Tile(), home, m.inside)
	case hunt.HuntingPac:
		dir = m.bestTurn(g, m.targetTile(level, g, phase))
	case hunt.Frightened:
		dir = m.randomTurn(g)
	}

	if dir == core.DirNone {
		g.Hold()
		return
	}
	g.SetDir(dir)
	g.SetWishDir(dir)
	g.MoveTo(neighbour(m.maze, g.Tile(), dir))
	g.SetCooldown(m.ghostInterval(g) - 1)
}

func (m *Mover) coolingDown(a *hunt.Actor) bool {
	if a.Cooldown() > 0 {
		a.SetCooldown(a.Cooldown() - 1)
		return true
	}
	return false
}

func (m *Mover) canGo(from core.Tile, d core.Direction, open walkable) bool {
	if d == core.DirNone {
		return false
	}
	return open(neighbour(m.maze, from, d))
}

func (m *Mover) pathTo(from, to core.Tile, open walkable) core.Direction {
	dir, ok := firstStep(m.maze, from, open, func(t core.Tile) bool { return t == to })
	if !ok {
		return core.DirNone
	}
	return dir
}

// bestTurn picks the open direction whose next tile is closest to the
// target. A ghost never turns around on its own; only a dead end reverses it.
func (m *Mover) bestTurn(g *hunt.Ghost, target core.Tile) core.Direction {
	best, bestDist := core.DirNone, 0
	for _, d := range m.turns(g) {
		dist := neighbour(m.maze, g.Tile(), d).EuclideanSq(target)
		if best == core.DirNone || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

func (m *Mover) randomTurn(g *hunt.Ghost) core.Direction {
	turns := m.turns(g)
	if len(turns) == 0 {
		return core.DirNone
	}
	return turns[m.rng.Intn(len(turns))]
}

// turns lists the open directions of a ghost outside the house, without the
// way back unless it is the only way.
func (m *Mover) turns(g *hunt.Ghost) []core.Direction {
	back := g.Dir().Opposite()
	var out []core.Direction
	for _, d := range core.Directions {
		if d != back && m.canGo(g.Tile(), d, m.outside) {
			out = append(out, d)
		}
	}
	if len(out) == 0 && m.canGo(g.Tile(), back, m.outside) {
		out = append(out, back)
	}
	return out
}

func (m *Mover) ghostInterval(g *hunt.Ghost) int {
	switch g.State() {
	case hunt.LeavingHouse:
		return interval(m.speeds.House)
	case hunt.ReturningToHouse, hunt.EnteringHouse:
		return interval(m.speeds.Eyes)
	case hunt.Frightened:
		return interval(m.speeds.Frightened)
	}
	if m.maze.IsPortal(g.Tile()) {
		return interval(m.speeds.Tunnel)
	}
	return interval(m.speeds.Ghost)
}

func interval(ticksPerTile int) int {
	return max(1, ticksPerTile)
}
