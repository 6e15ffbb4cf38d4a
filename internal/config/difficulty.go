package config

// Level-indexed tables progress like a clamped difficulty curve: a level uses
// the last row whose From is not greater than the level, so the final row
// covers every level beyond it.

// rowIndex returns the row that applies to level, or -1 if none does.
func rowIndex(n int, level int, from func(int) int) int {
	idx := -1
	for i := 0; i < n; i++ {
		if from(i) > level {
			break
		}
		idx = i
	}
	return idx
}

// NumPhases returns the number of hunting phases per level.
func (c *VariantConfig) NumPhases() int {
	if len(c.Hunting.Levels) == 0 {
		return 0
	}
	return len(c.Hunting.Levels[0].Ticks)
}

// PhaseTicks returns the phase-duration row for a level.
func (c *VariantConfig) PhaseTicks(level int) []int {
	i := rowIndex(len(c.Hunting.Levels), level, func(i int) int { return c.Hunting.Levels[i].From })
	if i < 0 {
		return nil
	}
	return c.Hunting.Levels[i].Ticks
}

// PowerSeconds returns how long an energizer lasts on a level.
func (c *VariantConfig) PowerSeconds(level int) float64 {
	i := rowIndex(len(c.Power.Levels), level, func(i int) int { return c.Power.Levels[i].From })
	if i < 0 {
		return 0
	}
	return c.Power.Levels[i].Seconds
}

// DotLimits returns the private dot limits of a level.
func (c *VariantConfig) DotLimits(level int) DotLimitRow {
	i := rowIndex(len(c.House.DotLimits), level, func(i int) int { return c.House.DotLimits[i].From })
	if i < 0 {
		return DotLimitRow{}
	}
	return c.House.DotLimits[i]
}

// BonusFor returns the bonus symbol of a level.
func (c *VariantConfig) BonusFor(level int) BonusRow {
	i := rowIndex(len(c.Bonus.Levels), level, func(i int) int { return c.Bonus.Levels[i].From })
	if i < 0 {
		return BonusRow{}
	}
	return c.Bonus.Levels[i]
}
