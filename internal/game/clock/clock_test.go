package clock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/gridquest/internal/game/clock"
)

func TestNew_RejectsBadCadence(t *testing.T) {
	_, err := clock.New(0)
	assert.Error(t, err)
	_, err = clock.New(-3)
	assert.Error(t, err)
}

func TestClock_StartsAtDay(t *testing.T) {
	c, err := clock.New(clock.DefaultCadence)
	require.NoError(t, err)
	assert.False(t, c.IsNight())
	assert.Equal(t, "day", c.Phase())
}

func TestClock_FlipsEveryCadenceCommands(t *testing.T) {
	c, err := clock.New(5)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		assert.False(t, c.Advance(), "command %d must not flip", i+1)
		assert.False(t, c.IsNight())
	}
	assert.True(t, c.Advance(), "fifth command flips to night")
	assert.True(t, c.IsNight())
	assert.Equal(t, "night", c.Phase())

	for i := 0; i < 4; i++ {
		assert.False(t, c.Advance())
		assert.True(t, c.IsNight())
	}
	assert.True(t, c.Advance(), "tenth command flips back to day")
	assert.False(t, c.IsNight())
}

func TestClock_PhasesAlwaysLastCadence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cadence := rapid.IntRange(1, 20).Draw(t, "cadence")
		commands := rapid.IntRange(0, 200).Draw(t, "commands")

		c, err := clock.New(cadence)
		if err != nil {
			t.Fatalf("new clock: %v", err)
		}
		flips := 0
		for i := 0; i < commands; i++ {
			if c.Advance() {
				flips++
			}
		}
		if want := commands / cadence; flips != want {
			t.Fatalf("after %d commands with cadence %d: %d flips, want %d", commands, cadence, flips, want)
		}
		if want := flips%2 == 1; c.IsNight() != want {
			t.Fatalf("night %v after %d flips", c.IsNight(), flips)
		}
	})
}
