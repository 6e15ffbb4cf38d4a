package motion

import (
	"github.com/vovakirdan/arcade-hunt/internal/core"
	"github.com/vovakirdan/arcade-hunt/internal/hunt"
	"github.com/vovakirdan/arcade-hunt/internal/world"
)

// Pilot steers Pac in headless runs: it heads for the nearest food, edible
// bonus or frightened ghost and walks around hunting ghosts when it can.
type Pilot struct {
	maze *world.Map
	open walkable
}

// NewPilot creates an autopilot for a maze.
func NewPilot(maze *world.Map) *Pilot {
	return &Pilot{maze: maze, open: outsideWalkable(maze)}
}

// Steer sets Pac's wish direction for the next move.
func (p *Pilot) Steer(level *hunt.LevelState) {
	pac := level.Pac
	danger := map[core.Tile]bool{}
	prey := map[core.Tile]bool{}
	for _, g := range level.Ghosts() {
		switch g.State() {
		case hunt.HuntingPac:
			danger[g.Tile()] = true
			danger[neighbour(p.maze, g.Tile(), g.Dir())] = true
		case hunt.Frightened:
			prey[g.Tile()] = true
		}
	}
	goal := func(t core.Tile) bool {
		if prey[t] || p.maze.HasFoodAt(t) {
			return true
		}
		return level.Bonus != nil && level.Bonus.IsEdible() && t == level.Bonus.Tile
	}
	safe := func(t core.Tile) bool { return p.open(t) && !danger[t] }

	dir, ok := firstStep(p.maze, pac.Tile(), safe, goal)
	if !ok {
		dir, ok = firstStep(p.maze, pac.Tile(), p.open, goal)
	}
	if ok && dir != core.DirNone {
		pac.SetWishDir(dir)
	}
}
