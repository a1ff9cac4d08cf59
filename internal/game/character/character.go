// Package character implements the combat and inventory entity at the heart
// of the rules engine: base and effective stats, probabilistic attack
// resolution, race-specific defence reactions, and the carry-capacity rules.
package character

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/gridquest/internal/game/item"
	"github.com/cory-johannsen/gridquest/internal/game/race"
)

// Inventory rule violations. All are non-fatal; the attempted mutation leaves
// the character unchanged.
var (
	// ErrCapacityExceeded rejects a pickup whose weight would exceed strength.
	ErrCapacityExceeded = errors.New("carry capacity exceeded")
	// ErrCategoryConflict rejects a second non-ring item of an equipped category.
	ErrCategoryConflict = errors.New("item category already equipped")
	// ErrIndexOutOfRange rejects an inventory selection outside the current range.
	ErrIndexOutOfRange = errors.New("inventory index out of range")
)

// Character is a combat/inventory entity. Player and Creature wrap it; there
// is a single construction path parameterized by the race definition, so
// race behaviour is a data change rather than a subtype.
//
// Invariant: effective attack, defence, health, and strength never go below 0.
// Invariant: Alive() ⇔ health > 0.
type Character struct {
	race race.Race
	def  race.Definition

	baseAttack   int
	baseDefence  int
	baseHealth   int
	baseStrength int

	attack        int
	defence       int
	health        int
	strength      int
	carriedWeight int

	attackChance  float64
	defenceChance float64

	inventory []*item.Item
}

// New creates a Character from a race definition, snapshotting the day
// profile as its base stats. Lunar races are constructed from the day profile
// and shifted afterwards via UpdateForTime, mirroring spawn-then-refresh.
//
// Precondition: def must have passed Validate.
func New(r race.Race, def race.Definition) *Character {
	p := def.Day
	return &Character{
		race:          r,
		def:           def,
		baseAttack:    p.Attack,
		baseDefence:   p.Defence,
		baseHealth:    p.Health,
		baseStrength:  p.Strength,
		attack:        p.Attack,
		defence:       p.Defence,
		health:        p.Health,
		strength:      p.Strength,
		attackChance:  p.AttackChance,
		defenceChance: p.DefenceChance,
	}
}

// Race returns the character's race.
func (c *Character) Race() race.Race { return c.race }

// Attack returns the effective attack value after item and time modifiers.
func (c *Character) Attack() int { return c.attack }

// Defence returns the effective defence value after item and time modifiers.
func (c *Character) Defence() int { return c.defence }

// Health returns the current health.
func (c *Character) Health() int { return c.health }

// Strength returns the current carry capacity.
func (c *Character) Strength() int { return c.strength }

// CarriedWeight returns the total weight of the inventory.
func (c *Character) CarriedWeight() int { return c.carriedWeight }

// AttackChance returns the probability of a successful attack.
func (c *Character) AttackChance() float64 { return c.attackChance }

// DefenceChance returns the probability of a successful defence.
func (c *Character) DefenceChance() float64 { return c.defenceChance }

// BaseAttack returns the attack value snapshotted at creation.
func (c *Character) BaseAttack() int { return c.baseAttack }

// BaseDefence returns the defence value snapshotted at creation.
func (c *Character) BaseDefence() int { return c.baseDefence }

// Alive reports whether the character's health is above zero.
func (c *Character) Alive() bool { return c.health > 0 }

// ModifyAttack adjusts effective attack by delta, clamped at 0.
func (c *Character) ModifyAttack(delta int) {
	c.attack += delta
	if c.attack < 0 {
		c.attack = 0
	}
}

// ModifyDefence adjusts effective defence by delta, clamped at 0.
func (c *Character) ModifyDefence(delta int) {
	c.defence += delta
	if c.defence < 0 {
		c.defence = 0
	}
}

// ModifyHealth adjusts health by delta, clamped at 0.
func (c *Character) ModifyHealth(delta int) {
	c.health += delta
	if c.health < 0 {
		c.health = 0
	}
}

// ModifyStrength adjusts strength by delta, clamped at 0.
func (c *Character) ModifyStrength(delta int) {
	c.strength += delta
	if c.strength < 0 {
		c.strength = 0
	}
}

// UpdateForTime overwrites attack, attack chance, defence, and defence chance
// with the race's day or night profile. The overwrite is absolute rather than
// a delta, so repeated calls with the same flag do not drift. No-op for races
// whose stats do not shift with the clock.
func (c *Character) UpdateForTime(night bool) {
	if !c.def.Lunar() {
		return
	}
	p := c.def.ProfileFor(night)
	c.attack = p.Attack
	c.attackChance = p.AttackChance
	c.defence = p.Defence
	c.defenceChance = p.DefenceChance
}

// PickUp applies the item's effect and takes ownership into the inventory.
//
// Postcondition: on error (nil item, equipped non-ring category, or weight
// over strength) the character and item are unchanged and ownership stays
// with the caller.
func (c *Character) PickUp(it *item.Item) error {
	if it == nil {
		return fmt.Errorf("character: pick up nil item")
	}
	if !it.Category().Stackable() {
		for _, held := range c.inventory {
			if held.Category() == it.Category() {
				return fmt.Errorf("%s already equipped: %w", it.Category(), ErrCategoryConflict)
			}
		}
	}
	if c.carriedWeight+it.Weight() > c.strength {
		return fmt.Errorf("%s weighs %d, carrying %d/%d: %w",
			it.Name(), it.Weight(), c.carriedWeight, c.strength, ErrCapacityExceeded)
	}
	it.Apply(c)
	c.carriedWeight += it.Weight()
	c.inventory = append(c.inventory, it)
	return nil
}

// RemoveItemAt reverses the effect of the item at index and transfers
// ownership to the caller.
//
// Postcondition: on success the item's effect is removed and carried weight
// is reduced, floored at 0; on ErrIndexOutOfRange nothing changes.
func (c *Character) RemoveItemAt(index int) (*item.Item, error) {
	if index < 0 || index >= len(c.inventory) {
		return nil, fmt.Errorf("index %d of %d items: %w", index, len(c.inventory), ErrIndexOutOfRange)
	}
	it := c.inventory[index]
	it.Remove(c)
	c.carriedWeight -= it.Weight()
	if c.carriedWeight < 0 {
		c.carriedWeight = 0
	}
	c.inventory = append(c.inventory[:index], c.inventory[index+1:]...)
	return it, nil
}

// AddItemBack re-inserts an item after a rejected drop. Unlike PickUp it
// performs no category check: the item was removed from this inventory
// moments earlier, so no conflict can have appeared.
//
// Postcondition: on ErrCapacityExceeded the item is not re-owned and the
// caller decides its fate.
func (c *Character) AddItemBack(it *item.Item) error {
	if it == nil {
		return fmt.Errorf("character: add back nil item")
	}
	if c.carriedWeight+it.Weight() > c.strength {
		return fmt.Errorf("%s weighs %d, carrying %d/%d: %w",
			it.Name(), it.Weight(), c.carriedWeight, c.strength, ErrCapacityExceeded)
	}
	it.Apply(c)
	c.carriedWeight += it.Weight()
	c.inventory = append(c.inventory, it)
	return nil
}

// Inventory returns a snapshot copy of the inventory in insertion order.
//
// Postcondition: mutations of the returned slice do not affect the character.
func (c *Character) Inventory() []*item.Item {
	out := make([]*item.Item, len(c.inventory))
	copy(out, c.inventory)
	return out
}
