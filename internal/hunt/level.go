package hunt

import (
	"fmt"

	"github.com/vovakirdan/arcade-hunt/internal/core"
)

// Maze is the world-map collaborator: it owns the food and knows where the
// ghost house and the portals are.
type Maze interface {
	HasFoodAt(t core.Tile) bool
	IsEnergizerTile(t core.Tile) bool
	RegisterFoodEaten(t core.Tile)
	UneatenFoodCount() int
	TotalFoodCount() int
	IsHouse(t core.Tile) bool
	IsPortal(t core.Tile) bool
}

// VictimSet is the ordered set of ghosts killed by the current energizer,
// keyed by personality.
type VictimSet struct {
	member [NumGhosts]bool
	order  []Personality
}

// Add records a victim. Adding a ghost twice keeps its first position.
func (v *VictimSet) Add(p Personality) {
	if v.member[p] {
		return
	}
	v.member[p] = true
	v.order = append(v.order, p)
}

// Contains reports whether the ghost was killed by the current energizer.
func (v *VictimSet) Contains(p Personality) bool {
	return p.Valid() && v.member[p]
}

// Len returns the number of victims.
func (v *VictimSet) Len() int { return len(v.order) }

// Ghosts returns the victims in kill order.
func (v *VictimSet) Ghosts() []Personality {
	out := make([]Personality, len(v.order))
	copy(out, v.order)
	return out
}

// Clear forgets all victims.
func (v *VictimSet) Clear() {
	v.member = [NumGhosts]bool{}
	v.order = v.order[:0]
}

// LevelState aggregates everything one level of the hunt consists of.
type LevelState struct {
	number int
	demo   bool

	Pac       *Pac
	ghosts    [NumGhosts]*Ghost
	Bonus     *Bonus
	BonusTile core.Tile
	Maze      Maze

	uneatenFoodCount int
	ghostKillCount   int
	victims          VictimSet
	bonusesSpawned   int
	allKilledScored  bool
}

// NewLevelState creates a level with Pac and four locked ghosts.
func NewLevelState(number int, maze Maze, demo bool) (*LevelState, error) {
	if number < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, number)
	}
	l := &LevelState{
		number:           number,
		demo:             demo,
		Pac:              NewPac(),
		Maze:             maze,
		uneatenFoodCount: maze.UneatenFoodCount(),
	}
	for _, p := range Personalities {
		l.ghosts[p] = NewGhost(p)
	}
	return l, nil
}

// Number returns the level number.
func (l *LevelState) Number() int { return l.number }

// Demo reports whether this is the attract-mode demo level.
func (l *LevelState) Demo() bool { return l.demo }

// Ghost returns the ghost with the given personality. An invalid personality
// is a programming error and panics.
func (l *LevelState) Ghost(p Personality) *Ghost {
	if !p.Valid() {
		panic(fmt.Sprintf("hunt: illegal ghost personality %d", int(p)))
	}
	return l.ghosts[p]
}

// Ghosts returns all ghosts in personality order.
func (l *LevelState) Ghosts() []*Ghost {
	return l.ghosts[:]
}

// GhostsIn returns the ghosts in any of the given states, in personality order.
func (l *LevelState) GhostsIn(states ...GhostState) []*Ghost {
	var out []*Ghost
	for _, g := range l.ghosts {
		if g.In(states...) {
			out = append(out, g)
		}
	}
	return out
}

// InsideHouse reports whether the ghost currently stands inside the house.
func (l *LevelState) InsideHouse(g *Ghost) bool {
	return l.Maze.IsHouse(g.Tile())
}

// UneatenFoodCount returns the food left in the level.
func (l *LevelState) UneatenFoodCount() int { return l.uneatenFoodCount }

// EatenFoodCount returns how much food Pac has eaten in the level.
func (l *LevelState) EatenFoodCount() int {
	return l.Maze.TotalFoodCount() - l.uneatenFoodCount
}

// GhostKillCount returns the ghosts killed in the level.
func (l *LevelState) GhostKillCount() int { return l.ghostKillCount }

// Victims returns the ghosts killed by the current energizer.
func (l *LevelState) Victims() *VictimSet { return &l.victims }

// Completed reports whether all food has been eaten.
func (l *LevelState) Completed() bool { return l.uneatenFoodCount == 0 }

func (l *LevelState) foodEaten() {
	if l.uneatenFoodCount > 0 {
		l.uneatenFoodCount--
	}
}
