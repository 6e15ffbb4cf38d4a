// Package hunt is the deterministic, tick-based hunting-round simulation of a
// Pac-Man style game. Once per tick the Engine moves the actors, resolves
// collisions, food and bonus pickups, drives power mode and the scatter/chase
// clock, and reports what happened in a StepResult.
//
// The package owns no goroutines. A LevelState belongs to the engine for the
// duration of Step and may only be read by other parties between ticks.
package hunt

import "errors"

// Configuration errors. They signal a programming or configuration mistake,
// never a state the game can recover from.
var (
	ErrInvalidPhaseIndex  = errors.New("hunt: invalid phase index")
	ErrInvalidPersonality = errors.New("hunt: invalid ghost personality")
	ErrNegativeLives      = errors.New("hunt: negative life count")
	ErrInvalidLevel       = errors.New("hunt: invalid level number")
	ErrInvalidPhases      = errors.New("hunt: invalid number of hunting phases")
)
