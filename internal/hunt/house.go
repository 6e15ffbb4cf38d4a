package hunt

import (
	"fmt"

	"github.com/vovakirdan/arcade-hunt/internal/core"
)

const (
	starvingLimitEarly = 240 // Levels 1-4
	starvingLimitLate  = 180

	// globalClydeEscape is the global counter value that switches the counter
	// off when it is reached while Clyde is still locked.
	globalClydeEscape = 32

	noGlobalLimit = -1
)

// globalLimits are the global counter checkpoints. A ghost is only released
// when the counter equals its checkpoint. Blinky never waits and Clyde only
// gets out through the escape rule.
var globalLimits = [NumGhosts]int{Shadow: noGlobalLimit, Speedy: 7, Bashful: 17, Pokey: noGlobalLimit}

// gatedOrder is the preference order of the ghosts whose release is gated.
var gatedOrder = [...]Personality{Speedy, Bashful, Pokey}

// DotLimits returns the private dot limits of a level, indexed by personality.
type DotLimits func(levelNumber int) [NumGhosts]int

// ArcadeDotLimits is the dot-limit table of the arcade games.
func ArcadeDotLimits(levelNumber int) [NumGhosts]int {
	switch levelNumber {
	case 1:
		return [NumGhosts]int{Speedy: 0, Bashful: 30, Pokey: 60}
	case 2:
		return [NumGhosts]int{Speedy: 0, Bashful: 0, Pokey: 50}
	default:
		return [NumGhosts]int{}
	}
}

// ReleaseReason tells why the gatekeeper let a ghost out.
type ReleaseReason int

const (
	ReleaseAlways ReleaseReason = iota
	ReleasePrivateDotLimit
	ReleaseGlobalDotLimit
	ReleasePacStarving
)

func (r ReleaseReason) String() string {
	switch r {
	case ReleaseAlways:
		return "always released"
	case ReleasePrivateDotLimit:
		return "private dot counter reached limit"
	case ReleaseGlobalDotLimit:
		return "global dot counter reached limit"
	case ReleasePacStarving:
		return "pac starving"
	default:
		return "unknown"
	}
}

// GhostRelease describes a ghost the gatekeeper released.
type GhostRelease struct {
	Ghost  Personality
	Reason ReleaseReason
}

func (r GhostRelease) String() string {
	return fmt.Sprintf("%s released: %s", r.Ghost, r.Reason)
}

// GhostHouseGatekeeper decides when locked ghosts may leave the house.
//
// Each gated ghost has a private dot counter that only runs while it is the
// preferred locked ghost inside the house. After Pac loses a life a global
// counter takes over until Clyde escapes or the level ends. Independently, a
// ghost is released whenever Pac has not eaten for too long.
type GhostHouseGatekeeper struct {
	dotLimits     DotLimits
	limits        [NumGhosts]int
	counters      [NumGhosts]int
	globalCounter int
	globalEnabled bool
	starvingLimit int
}

// NewGhostHouseGatekeeper creates a gatekeeper using a dot-limit table.
// A nil table selects ArcadeDotLimits.
func NewGhostHouseGatekeeper(limits DotLimits) *GhostHouseGatekeeper {
	if limits == nil {
		limits = ArcadeDotLimits
	}
	h := &GhostHouseGatekeeper{dotLimits: limits}
	h.SetLevelNumber(1)
	return h
}

// SetLevelNumber prepares the counters and limits for a new level.
func (h *GhostHouseGatekeeper) SetLevelNumber(levelNumber int) {
	h.counters = [NumGhosts]int{}
	h.limits = h.dotLimits(levelNumber)
	h.globalCounter = 0
	h.globalEnabled = false
	if levelNumber < 5 {
		h.starvingLimit = starvingLimitEarly
	} else {
		h.starvingLimit = starvingLimitLate
	}
}

// ResetCounterAndSetEnabled zeroes the global counter and switches it on or
// off. Losing a life switches it on.
func (h *GhostHouseGatekeeper) ResetCounterAndSetEnabled(enabled bool) {
	h.globalCounter = 0
	h.globalEnabled = enabled
}

// RegisterFoodEaten counts a pellet or energizer Pac just ate.
func (h *GhostHouseGatekeeper) RegisterFoodEaten(level *LevelState) {
	if h.globalEnabled {
		h.globalCounter++
		if h.globalCounter == globalClydeEscape && level.Ghost(Pokey).In(Locked) {
			h.ResetCounterAndSetEnabled(false)
		}
		return
	}
	if g := h.preferredLockedGhost(level, true); g != nil {
		h.counters[g.Personality()]++
	}
}

// UnlockGhostIfPossible releases at most one ghost and reports it.
func (h *GhostHouseGatekeeper) UnlockGhostIfPossible(level *LevelState) *GhostRelease {
	if blinky := level.Ghost(Shadow); blinky.In(Locked) {
		if level.InsideHouse(blinky) {
			h.release(blinky)
		} else {
			blinky.SetState(HuntingPac)
			blinky.SetDir(core.DirLeft)
			blinky.SetWishDir(core.DirLeft)
		}
		return &GhostRelease{Ghost: Shadow, Reason: ReleaseAlways}
	}

	g := h.preferredLockedGhost(level, false)
	if g == nil {
		return nil
	}
	p := g.Personality()
	switch {
	case !h.globalEnabled && h.counters[p] >= h.limits[p]:
		h.release(g)
		return &GhostRelease{Ghost: p, Reason: ReleasePrivateDotLimit}
	case h.globalEnabled && globalLimits[p] != noGlobalLimit && h.globalCounter == globalLimits[p]:
		h.release(g)
		return &GhostRelease{Ghost: p, Reason: ReleaseGlobalDotLimit}
	case level.Pac.StarvingTicks() >= h.starvingLimit:
		level.Pac.EndStarving()
		h.release(g)
		return &GhostRelease{Ghost: p, Reason: ReleasePacStarving}
	}
	return nil
}

func (h *GhostHouseGatekeeper) release(g *Ghost) {
	g.SetState(LeavingHouse)
	g.SetDir(core.DirUp)
	g.SetWishDir(core.DirUp)
}

// preferredLockedGhost returns the first locked gated ghost in preference
// order, optionally only among those standing inside the house.
func (h *GhostHouseGatekeeper) preferredLockedGhost(level *LevelState, insideOnly bool) *Ghost {
	for _, p := range gatedOrder {
		g := level.Ghost(p)
		if !g.In(Locked) {
			continue
		}
		if insideOnly && !level.InsideHouse(g) {
			continue
		}
		return g
	}
	return nil
}

// DotLimit returns the private dot limit of a ghost on the current level.
func (h *GhostHouseGatekeeper) DotLimit(p Personality) int { return h.limits[p] }

// DotCounter returns the private dot counter of a ghost.
func (h *GhostHouseGatekeeper) DotCounter(p Personality) int { return h.counters[p] }

// GlobalCounter returns the global dot counter.
func (h *GhostHouseGatekeeper) GlobalCounter() int { return h.globalCounter }

// GlobalCounterEnabled reports whether the global counter regime is active.
func (h *GhostHouseGatekeeper) GlobalCounterEnabled() bool { return h.globalEnabled }

// StarvingLimit returns the ticks without food after which a ghost is forced out.
func (h *GhostHouseGatekeeper) StarvingLimit() int { return h.starvingLimit }
