package hunt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedDurations(ticks ...int) PhaseDurations {
	return func(_, phaseIndex int) int { return ticks[phaseIndex] }
}

func TestNewHuntingPhaseClockRejectsNoPhases(t *testing.T) {
	_, err := NewHuntingPhaseClock(0, fixedDurations())
	require.ErrorIs(t, err, ErrInvalidPhases)
	_, err = NewHuntingPhaseClock(-2, fixedDurations())
	require.ErrorIs(t, err, ErrInvalidPhases)
}

func TestHuntingPhaseClockAdvancesOnExpiry(t *testing.T) {
	c, err := NewHuntingPhaseClock(3, fixedDurations(2, 3, Indefinite))
	require.NoError(t, err)
	assert.False(t, c.Running())

	c.StartFirstPhase(1)
	assert.Equal(t, Scatter, c.Phase())

	changes := 0
	for tick := 1; tick <= 20; tick++ {
		changed, err := c.Update(1)
		require.NoError(t, err)
		if changed {
			changes++
			switch changes {
			case 1:
				assert.Equal(t, 3, tick, "first phase lasts two ticks")
				assert.Equal(t, Chase, c.Phase())
			case 2:
				assert.Equal(t, 7, tick, "second phase lasts three ticks")
				assert.Equal(t, Scatter, c.Phase())
			}
		}
	}
	assert.Equal(t, 2, changes)
	assert.Equal(t, 2, c.PhaseIndex())
}

func TestHuntingPhaseClockFailsPastLastPhase(t *testing.T) {
	c, err := NewHuntingPhaseClock(2, fixedDurations(1, 1))
	require.NoError(t, err)
	c.StartFirstPhase(1)

	var updateErr error
	for range 10 {
		if _, updateErr = c.Update(1); updateErr != nil {
			break
		}
	}
	require.ErrorIs(t, updateErr, ErrInvalidPhaseIndex)
	assert.Equal(t, 1, c.PhaseIndex())
}

func TestHuntingPhaseClockParity(t *testing.T) {
	c, err := NewHuntingPhaseClock(8, fixedDurations(1, 1, 1, 1, 1, 1, 1, Indefinite))
	require.NoError(t, err)
	c.StartFirstPhase(1)

	for {
		idx := c.PhaseIndex()
		scatter, isScatter := c.CurrentScatterPhaseIndex()
		chase, isChase := c.CurrentChasingPhaseIndex()
		if idx%2 == 0 {
			assert.Equal(t, Scatter, c.Phase())
			assert.True(t, isScatter)
			assert.False(t, isChase)
			assert.Equal(t, idx/2, scatter)
		} else {
			assert.Equal(t, Chase, c.Phase())
			assert.True(t, isChase)
			assert.False(t, isScatter)
			assert.Equal(t, idx/2, chase)
		}
		if idx == 7 {
			break
		}
		_, err := c.Update(1)
		require.NoError(t, err)
	}
}

func TestHuntingPhaseClockStopAndReset(t *testing.T) {
	c, err := NewHuntingPhaseClock(2, fixedDurations(5, Indefinite))
	require.NoError(t, err)
	c.StartFirstPhase(1)
	_, _ = c.Update(1)
	_, _ = c.Update(1)
	assert.Equal(t, 3, c.Remaining())

	c.Stop()
	_, _ = c.Update(1)
	assert.Equal(t, 3, c.Remaining(), "a stopped phase does not count")

	c.Resume()
	_, _ = c.Update(1)
	assert.Equal(t, 2, c.Remaining())

	c.Reset()
	assert.Equal(t, 0, c.PhaseIndex())
	assert.False(t, c.Running())
	assert.Equal(t, Indefinite, c.Remaining())
}

func TestHuntingPhaseClockStoppedAfterExpiryStays(t *testing.T) {
	c, err := NewHuntingPhaseClock(3, fixedDurations(2, 2, Indefinite))
	require.NoError(t, err)
	c.StartFirstPhase(1)
	_, _ = c.Update(1)
	_, _ = c.Update(1)
	require.Zero(t, c.Remaining())

	c.Stop()
	for range 5 {
		changed, err := c.Update(1)
		require.NoError(t, err)
		assert.False(t, changed)
	}
	assert.Equal(t, 0, c.PhaseIndex())
	assert.False(t, c.Running())

	c.Resume()
	changed, err := c.Update(1)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1, c.PhaseIndex())
}
