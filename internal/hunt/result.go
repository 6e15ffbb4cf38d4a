package hunt

import "github.com/vovakirdan/arcade-hunt/internal/core"

// StepResult records everything that happened during one tick. A fresh
// result is created for every tick; consumers only read it.
type StepResult struct {
	Tick uint64

	Released *GhostRelease

	FoodFound      bool
	FoodTile       core.Tile
	EnergizerFound bool
	BonusEaten     bool

	KilledGhosts []Personality
	PacKilled    bool
	PacKiller    Personality // Valid only when PacKilled is set

	PacGotPower          bool
	PacStartsLosingPower bool
	PacLostPower         bool

	ExtraLife *ExtraLife

	PhaseChanged   bool
	LevelCompleted bool

	// Events lists the reported facts in the order they happened.
	Events []Event
}

func (r *StepResult) record(e Event) {
	r.Events = append(r.Events, e)
}
