// Package clock tracks the day/night cycle. The world starts in daylight and
// flips phase after a fixed number of accepted player commands.
package clock

import "fmt"

// DefaultCadence is the number of accepted commands between phase flips.
const DefaultCadence = 5

// Clock counts accepted commands and flips between day and night every
// cadence commands. It holds no global state; callers read IsNight and
// thread the phase into the systems that care.
type Clock struct {
	night    bool
	cadence  int
	commands int
}

// New creates a day-phase Clock that flips every cadence commands.
//
// Precondition: cadence must be >= 1.
func New(cadence int) (*Clock, error) {
	if cadence < 1 {
		return nil, fmt.Errorf("clock: cadence %d must be at least 1", cadence)
	}
	return &Clock{cadence: cadence}, nil
}

// IsNight reports whether the current phase is night.
func (c *Clock) IsNight() bool { return c.night }

// Cadence returns the number of commands between phase flips.
func (c *Clock) Cadence() int { return c.cadence }

// Advance records one accepted command and reports whether the phase flipped.
//
// Postcondition: the command counter resets to zero on every flip, so phases
// always last exactly cadence commands.
func (c *Clock) Advance() bool {
	c.commands++
	if c.commands < c.cadence {
		return false
	}
	c.commands = 0
	c.night = !c.night
	return true
}

// Phase returns "night" or "day" for display and logging.
func (c *Clock) Phase() string {
	if c.night {
		return "night"
	}
	return "day"
}
