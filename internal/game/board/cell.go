package board

import (
	"fmt"

	"github.com/cory-johannsen/gridquest/internal/game/character"
	"github.com/cory-johannsen/gridquest/internal/game/item"
)

// Cell is a single grid position holding at most one occupant: an item or a
// creature, never both. The cell owns its occupant exclusively; taking an
// occupant out leaves the cell empty.
type Cell struct {
	item     *item.Item
	creature *character.Creature
}

// HasItem reports whether the cell holds an item.
func (c *Cell) HasItem() bool { return c.item != nil }

// HasCreature reports whether the cell holds a creature.
func (c *Cell) HasCreature() bool { return c.creature != nil }

// Item returns the cell's item without transferring ownership, or nil.
func (c *Cell) Item() *item.Item { return c.item }

// Creature returns the cell's creature without transferring ownership, or nil.
func (c *Cell) Creature() *character.Creature { return c.creature }

// PlaceItem puts an item into an empty cell. The board pre-checks emptiness;
// this check is the cell's own guard on its single-occupant invariant.
//
// Postcondition: returns ErrCellOccupied and leaves the cell unchanged if
// either slot is taken.
func (c *Cell) PlaceItem(it *item.Item) error {
	if c.item != nil || c.creature != nil {
		return ErrCellOccupied
	}
	c.item = it
	return nil
}

// PlaceCreature puts a creature into an empty cell.
//
// Postcondition: returns ErrCellOccupied and leaves the cell unchanged if
// either slot is taken.
func (c *Cell) PlaceCreature(cr *character.Creature) error {
	if c.item != nil || c.creature != nil {
		return ErrCellOccupied
	}
	c.creature = cr
	return nil
}

// TakeItem transfers the item out, leaving the slot empty.
//
// Postcondition: ok is false iff the cell held no item; the cell never holds
// the returned item afterwards.
func (c *Cell) TakeItem() (*item.Item, bool) {
	if c.item == nil {
		return nil, false
	}
	it := c.item
	c.item = nil
	return it, true
}

// TakeCreature transfers the creature out, leaving the slot empty.
//
// Postcondition: ok is false iff the cell held no creature.
func (c *Cell) TakeCreature() (*character.Creature, bool) {
	if c.creature == nil {
		return nil, false
	}
	cr := c.creature
	c.creature = nil
	return cr, true
}

// DropItem places an item onto the cell, rejecting the drop if the item is
// nil or either slot is occupied.
//
// Postcondition: on error the cell and any current occupant are unchanged.
func (c *Cell) DropItem(it *item.Item) error {
	if it == nil {
		return fmt.Errorf("board: drop nil item")
	}
	if c.item != nil || c.creature != nil {
		return ErrCellOccupied
	}
	c.item = it
	return nil
}

// Describe returns a human-readable summary of the cell's occupant.
func (c *Cell) Describe() string {
	switch {
	case c.creature != nil:
		return fmt.Sprintf("An enemy is here: %s (H:%d A:%d D:%d)",
			c.creature.Name(), c.creature.Health(), c.creature.Attack(), c.creature.Defence())
	case c.item != nil:
		return fmt.Sprintf("You see an item: %s (weight %d)", c.item.Name(), c.item.Weight())
	default:
		return "The square is empty."
	}
}
