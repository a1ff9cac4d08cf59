package character

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/gridquest/internal/game/dice"
	"github.com/cory-johannsen/gridquest/internal/game/race"
)

// Creature is a hostile board occupant. It carries no position of its own;
// the cell that owns it determines where it stands.
type Creature struct {
	*Character

	// ID uniquely identifies this spawned creature.
	ID string
}

// NewCreature creates a Creature of the given race.
//
// Precondition: def must have passed Validate.
func NewCreature(r race.Race, def race.Definition) *Creature {
	return &Creature{
		Character: New(r, def),
		ID:        uuid.New().String(),
	}
}

// Name returns the creature's display name.
func (c *Creature) Name() string {
	return fmt.Sprintf("%s (Enemy)", c.Race())
}

// GoldValue returns the gold reward for defeating this creature: its current
// effective defence, including item modifiers.
func (c *Creature) GoldValue() int {
	return c.Defence()
}

// RandomCreature spawns a Creature of a uniformly chosen race from the table.
//
// Precondition: tbl must have passed Validate; src must be non-nil.
func RandomCreature(tbl race.Table, src dice.Source) *Creature {
	r := race.All[src.Intn(len(race.All))]
	def, _ := tbl.Lookup(r)
	return NewCreature(r, def)
}
