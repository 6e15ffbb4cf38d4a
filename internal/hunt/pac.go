package hunt

// Pac is the player's actor.
type Pac struct {
	Actor
	powerTimer    TickTimer
	losingPower   bool
	starvingTicks int
	immune        bool
	dead          bool
}

// NewPac creates Pac without power.
func NewPac() *Pac {
	p := &Pac{}
	p.powerTimer.Reset(0)
	return p
}

// PowerTimer exposes the energizer countdown for read access.
func (p *Pac) PowerTimer() *TickTimer { return &p.powerTimer }

// HasPower reports whether an energizer is in effect.
func (p *Pac) HasPower() bool { return p.powerTimer.Running() }

// LosingPower reports whether the power has entered its fading window.
func (p *Pac) LosingPower() bool { return p.losingPower }

// StarvingTicks returns the ticks since Pac last ate food.
func (p *Pac) StarvingTicks() int { return p.starvingTicks }

// Starve counts one more tick without food.
func (p *Pac) Starve() { p.starvingTicks++ }

// EndStarving resets the starving timer.
func (p *Pac) EndStarving() { p.starvingTicks = 0 }

// Immune reports whether ghosts cannot kill Pac (cheat).
func (p *Pac) Immune() bool { return p.immune }

// SetImmune toggles immunity.
func (p *Pac) SetImmune(immune bool) { p.immune = immune }

// Dead reports whether a ghost killed Pac.
func (p *Pac) Dead() bool { return p.dead }

// Revive clears death, power and starving state for a new life.
func (p *Pac) Revive() {
	p.dead = false
	p.powerTimer.Reset(0)
	p.losingPower = false
	p.starvingTicks = 0
}

func (p *Pac) die() {
	p.dead = true
	p.powerTimer.Reset(0)
	p.losingPower = false
}
