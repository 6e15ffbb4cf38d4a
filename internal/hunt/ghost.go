package hunt

import (
	"fmt"

	"github.com/vovakirdan/arcade-hunt/internal/core"
)

// NumGhosts is the number of ghosts in a level.
const NumGhosts = 4

// Personality identifies a ghost. The value doubles as the ghost's index in
// every per-ghost array.
type Personality int

const (
	Shadow  Personality = iota // Blinky, red
	Speedy                     // Pinky, pink
	Bashful                    // Inky, cyan
	Pokey                      // Clyde, orange
)

// Personalities lists the ghosts in index order.
var Personalities = [NumGhosts]Personality{Shadow, Speedy, Bashful, Pokey}

// ParsePersonality validates a ghost id coming from outside the core.
func ParsePersonality(id int) (Personality, error) {
	if id < 0 || id >= NumGhosts {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPersonality, id)
	}
	return Personality(id), nil
}

// Valid reports whether p names one of the four ghosts.
func (p Personality) Valid() bool {
	return p >= Shadow && p <= Pokey
}

// String returns the ghost's arcade name.
func (p Personality) String() string {
	switch p {
	case Shadow:
		return "Blinky"
	case Speedy:
		return "Pinky"
	case Bashful:
		return "Inky"
	case Pokey:
		return "Clyde"
	default:
		return fmt.Sprintf("Personality(%d)", int(p))
	}
}

// GhostState is a node of the ghost state machine:
//
//	Locked -> LeavingHouse -> HuntingPac <-> Frightened -> Eaten
//	       -> ReturningToHouse -> EnteringHouse -> Locked
type GhostState int

const (
	Locked GhostState = iota
	LeavingHouse
	HuntingPac
	Frightened
	Eaten
	ReturningToHouse
	EnteringHouse
)

func (s GhostState) String() string {
	switch s {
	case Locked:
		return "locked"
	case LeavingHouse:
		return "leaving_house"
	case HuntingPac:
		return "hunting_pac"
	case Frightened:
		return "frightened"
	case Eaten:
		return "eaten"
	case ReturningToHouse:
		return "returning_to_house"
	case EnteringHouse:
		return "entering_house"
	default:
		return "unknown"
	}
}

// Actor is the movement state shared by Pac and the ghosts.
type Actor struct {
	tile     core.Tile
	prevTile core.Tile
	dir      core.Direction
	wishDir  core.Direction
	cooldown int
}

// Tile returns the tile the actor occupies.
func (a *Actor) Tile() core.Tile { return a.tile }

// PrevTile returns the tile the actor occupied before its last move.
func (a *Actor) PrevTile() core.Tile { return a.prevTile }

// Dir returns the current movement direction.
func (a *Actor) Dir() core.Direction { return a.dir }

// SetDir changes the movement direction.
func (a *Actor) SetDir(d core.Direction) { a.dir = d }

// WishDir returns the direction the actor wants to take next.
func (a *Actor) WishDir() core.Direction { return a.wishDir }

// SetWishDir records the direction the actor wants to take next.
func (a *Actor) SetWishDir(d core.Direction) { a.wishDir = d }

// Reverse turns the actor around.
func (a *Actor) Reverse() { a.dir = a.dir.Opposite() }

// PlaceAt puts the actor on a tile without counting it as a move.
func (a *Actor) PlaceAt(t core.Tile, d core.Direction) {
	a.tile = t
	a.prevTile = t
	a.dir = d
	a.wishDir = d
	a.cooldown = 0
}

// MoveTo moves the actor to a neighbouring (or wrapped) tile.
func (a *Actor) MoveTo(t core.Tile) {
	a.prevTile = a.tile
	a.tile = t
}

// Hold records that the actor did not move this tick.
func (a *Actor) Hold() {
	a.prevTile = a.tile
}

// Cooldown returns the ticks until the actor may move again.
func (a *Actor) Cooldown() int { return a.cooldown }

// SetCooldown sets the ticks until the actor may move again.
func (a *Actor) SetCooldown(n int) { a.cooldown = n }

// Ghost is one of the four hunters.
type Ghost struct {
	Actor
	personality Personality
	state       GhostState
	stateTicks  int
}

// NewGhost creates a locked ghost.
func NewGhost(p Personality) *Ghost {
	if !p.Valid() {
		panic(fmt.Sprintf("hunt: illegal ghost personality %d", int(p)))
	}
	return &Ghost{personality: p, state: Locked}
}

// Personality returns which ghost this is.
func (g *Ghost) Personality() Personality { return g.personality }

// State returns the current state.
func (g *Ghost) State() GhostState { return g.state }

// StateTicks returns how many ticks the ghost has spent in its current state.
func (g *Ghost) StateTicks() int { return g.stateTicks }

// In reports whether the ghost is in any of the given states.
func (g *Ghost) In(states ...GhostState) bool {
	for _, s := range states {
		if g.state == s {
			return true
		}
	}
	return false
}

// SetState moves the ghost to a new state.
func (g *Ghost) SetState(s GhostState) {
	g.state = s
	g.stateTicks = 0
}

// Age counts one more tick in the current state.
func (g *Ghost) Age() {
	g.stateTicks++
}

func (g *Ghost) String() string {
	return fmt.Sprintf("%s[%s %v]", g.personality, g.state, g.tile)
}
