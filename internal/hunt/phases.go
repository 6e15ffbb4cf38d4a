package hunt

import "fmt"

// Phase is the behavior window of ghosts that are not frightened.
type Phase int

const (
	Scatter Phase = iota
	Chase
)

func (p Phase) String() string {
	if p == Scatter {
		return "scatter"
	}
	return "chase"
}

// PhaseDurations returns the duration in ticks of a hunting phase of a
// level. It must be defined for every phase index below the clock's phase
// count; Indefinite marks a phase that never ends.
type PhaseDurations func(levelNumber, phaseIndex int) int

// HuntingPhaseClock alternates scatter and chase phases. Even phase indices
// are scatter phases, odd ones chase phases.
type HuntingPhaseClock struct {
	durations  PhaseDurations
	numPhases  int
	phaseIndex int
	timer      TickTimer
}

// NewHuntingPhaseClock creates a stopped clock.
func NewHuntingPhaseClock(numPhases int, durations PhaseDurations) (*HuntingPhaseClock, error) {
	if numPhases <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPhases, numPhases)
	}
	c := &HuntingPhaseClock{durations: durations, numPhases: numPhases}
	c.Reset()
	return c, nil
}

// StartFirstPhase starts the first scatter phase of a level.
func (c *HuntingPhaseClock) StartFirstPhase(levelNumber int) {
	c.phaseIndex = 0
	c.timer.Restart(c.durations(levelNumber, 0))
}

// Update advances the clock by one tick. When the current phase has expired
// the next phase starts and Update reports the change. A stopped clock stays
// in its phase, even one that has already expired.
func (c *HuntingPhaseClock) Update(levelNumber int) (bool, error) {
	if !c.timer.Running() {
		return false, nil
	}
	if !c.timer.Expired() {
		c.timer.Tick()
		return false, nil
	}
	next := c.phaseIndex + 1
	if next >= c.numPhases {
		return false, fmt.Errorf("%w: %d (phases: %d)", ErrInvalidPhaseIndex, next, c.numPhases)
	}
	c.phaseIndex = next
	c.timer.Restart(c.durations(levelNumber, next))
	return true, nil
}

// Reset stops the clock at phase 0 with no expiry until the next
// StartFirstPhase.
func (c *HuntingPhaseClock) Reset() {
	c.phaseIndex = 0
	c.timer.Reset(Indefinite)
}

// Stop pauses the current phase, e.g. while Pac has power.
func (c *HuntingPhaseClock) Stop() {
	c.timer.Stop()
}

// Resume continues the current phase where it was stopped.
func (c *HuntingPhaseClock) Resume() {
	c.timer.Start()
}

// Running reports whether the current phase is counting down.
func (c *HuntingPhaseClock) Running() bool {
	return c.timer.Running()
}

// PhaseIndex returns the index of the current phase.
func (c *HuntingPhaseClock) PhaseIndex() int { return c.phaseIndex }

// NumPhases returns the number of phases per level.
func (c *HuntingPhaseClock) NumPhases() int { return c.numPhases }

// Remaining returns the ticks left in the current phase.
func (c *HuntingPhaseClock) Remaining() int { return c.timer.Remaining() }

// Phase returns scatter for even phase indices and chase for odd ones.
func (c *HuntingPhaseClock) Phase() Phase {
	if c.phaseIndex%2 == 0 {
		return Scatter
	}
	return Chase
}

// CurrentScatterPhaseIndex returns the number of the scatter phase in
// progress, counting from 0.
func (c *HuntingPhaseClock) CurrentScatterPhaseIndex() (int, bool) {
	if c.Phase() != Scatter {
		return 0, false
	}
	return c.phaseIndex / 2, true
}

// CurrentChasingPhaseIndex returns the number of the chase phase in
// progress, counting from 0.
func (c *HuntingPhaseClock) CurrentChasingPhaseIndex() (int, bool) {
	if c.Phase() != Chase {
		return 0, false
	}
	return c.phaseIndex / 2, true
}
