package hunt

import "github.com/vovakirdan/arcade-hunt/internal/core"

// Event is a fact the engine reports to its sinks. Each fact is reported
// once, on the tick it happens.
type Event interface {
	huntEvent()
}

// GhostReleasedEvent is sent when the gatekeeper lets a ghost out.
type GhostReleasedEvent struct {
	Release GhostRelease
}

func (GhostReleasedEvent) huntEvent() {}

// GhostKilledEvent is sent when Pac eats a frightened ghost.
type GhostKilledEvent struct {
	Ghost  Personality
	Points int
	Victim int // 0-based position among the current energizer's victims
}

func (GhostKilledEvent) huntEvent() {}

// PacKilledEvent is sent when a hunting ghost catches Pac.
type PacKilledEvent struct {
	Killer Personality
}

func (PacKilledEvent) huntEvent() {}

// PacFoundFoodEvent is sent when Pac eats a pellet or an energizer.
type PacFoundFoodEvent struct {
	Tile      core.Tile
	Energizer bool
}

func (PacFoundFoodEvent) huntEvent() {}

// PacGetsPowerEvent is sent when an energizer takes effect.
type PacGetsPowerEvent struct {
	Ticks int
}

func (PacGetsPowerEvent) huntEvent() {}

// PacStartsLosingPowerEvent is sent when the power enters its fading window.
type PacStartsLosingPowerEvent struct{}

func (PacStartsLosingPowerEvent) huntEvent() {}

// PacLostPowerEvent is sent when the power has run out.
type PacLostPowerEvent struct{}

func (PacLostPowerEvent) huntEvent() {}

// ExtraLifeEvent is sent when the score crosses an extra-life threshold.
type ExtraLifeEvent struct {
	ExtraLife ExtraLife
}

func (ExtraLifeEvent) huntEvent() {}

// BonusActivatedEvent is sent when a bonus symbol appears.
type BonusActivatedEvent struct {
	Symbol string
	Points int
	Tile   core.Tile
}

func (BonusActivatedEvent) huntEvent() {}

// BonusEatenEvent is sent when Pac eats the bonus.
type BonusEatenEvent struct {
	Symbol string
	Points int
}

func (BonusEatenEvent) huntEvent() {}

// BonusExpiredEvent is sent when a bonus disappears uneaten.
type BonusExpiredEvent struct {
	Symbol string
}

func (BonusExpiredEvent) huntEvent() {}

// HuntingPhaseStartedEvent is sent when a new scatter or chase phase starts.
type HuntingPhaseStartedEvent struct {
	Index int
	Phase Phase
}

func (HuntingPhaseStartedEvent) huntEvent() {}

// LevelCompletedEvent is sent when the last food of a level is eaten.
type LevelCompletedEvent struct {
	Level int
}

func (LevelCompletedEvent) huntEvent() {}

// EventSink receives the facts of every tick.
type EventSink interface {
	OnEvent(tick uint64, e Event)
}

// EventSinkFunc adapts a function to an EventSink.
type EventSinkFunc func(tick uint64, e Event)

// OnEvent calls f.
func (f EventSinkFunc) OnEvent(tick uint64, e Event) { f(tick, e) }
