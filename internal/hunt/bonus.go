package hunt

import "github.com/vovakirdan/arcade-hunt/internal/core"

// BonusState is the lifecycle of a bonus symbol.
type BonusState int

const (
	BonusInactive BonusState = iota
	BonusEdible
	BonusEaten
)

// Bonus is a fruit-like symbol Pac can eat for extra points.
type Bonus struct {
	Symbol string
	Points int
	Tile   core.Tile
	state  BonusState
	timer  TickTimer
}

// NewBonus creates an inactive bonus.
func NewBonus(symbol string, points int, tile core.Tile) *Bonus {
	return &Bonus{Symbol: symbol, Points: points, Tile: tile}
}

// State returns the lifecycle state.
func (b *Bonus) State() BonusState { return b.state }

// IsEdible reports whether Pac can eat the bonus right now.
func (b *Bonus) IsEdible() bool { return b.state == BonusEdible }

// Activate makes the bonus edible for the given number of ticks.
func (b *Bonus) Activate(ticks int) {
	b.state = BonusEdible
	b.timer.Restart(ticks)
}

// Eat marks the bonus eaten; its value stays visible for the given ticks.
func (b *Bonus) Eat(ticks int) {
	b.state = BonusEaten
	b.timer.Restart(ticks)
}

// Update advances the bonus timer and reports whether an edible bonus
// expired uneaten on this tick.
func (b *Bonus) Update() bool {
	if b.state == BonusInactive {
		return false
	}
	b.timer.Tick()
	if !b.timer.Expired() {
		return false
	}
	wasEdible := b.state == BonusEdible
	b.state = BonusInactive
	b.timer.Stop()
	return wasEdible
}
