package motion

import (
	"github.com/vovakirdan/arcade-hunt/internal/core"
	"github.com/vovakirdan/arcade-hunt/internal/world"
)

// walkable decides whether an actor may stand on a tile.
type walkable func(t core.Tile) bool

func outsideWalkable(maze *world.Map) walkable {
	return func(t core.Tile) bool {
		return maze.Contains(t) && !maze.IsWall(t) && !maze.IsDoor(t) && !maze.IsHouse(t)
	}
}

func houseWalkable(maze *world.Map) walkable {
	return func(t core.Tile) bool {
		return maze.Contains(t) && !maze.IsWall(t)
	}
}

// neighbour returns the tile one step away, wrapped through portals.
func neighbour(maze *world.Map, t core.Tile, d core.Direction) core.Tile {
	return maze.Wrap(t.Add(d))
}

// firstStep runs a breadth-first search from start and returns the direction
// of the first move on a shortest path to the nearest tile accepted by goal.
// Neighbours are expanded in arcade direction order, so ties are stable.
func firstStep(maze *world.Map, start core.Tile, open walkable, goal func(core.Tile) bool) (core.Direction, bool) {
	if goal(start) {
		return core.DirNone, true
	}
	type node struct {
		tile  core.Tile
		first core.Direction
	}
	seen := map[core.Tile]bool{start: true}
	queue := []node{{tile: start}}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, d := range core.Directions {
			next := neighbour(maze, n.tile, d)
			if seen[next] || !open(next) {
				continue
			}
			seen[next] = true
			first := n.first
			if first == core.DirNone {
				first = d
			}
			if goal(next) {
				return first, true
			}
			queue = append(queue, node{tile: next, first: first})
		}
	}
	return core.DirNone, false
}
