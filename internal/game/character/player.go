package character

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/gridquest/internal/game/race"
)

// Player is the user-controlled character. It adds board position and gold
// on top of the shared Character behaviour.
type Player struct {
	*Character

	x, y int
	gold int
}

// NewPlayer creates a Player of the given race at a starting position.
//
// Precondition: def must have passed Validate.
func NewPlayer(r race.Race, def race.Definition, x, y int) *Player {
	return &Player{Character: New(r, def), x: x, y: y}
}

// Name returns the player's display name.
func (p *Player) Name() string {
	return fmt.Sprintf("Player(%s)", p.Race())
}

// Position returns the player's board coordinates.
func (p *Player) Position() (x, y int) { return p.x, p.y }

// SetPosition moves the player to the given coordinates. Bounds are the
// board's responsibility.
func (p *Player) SetPosition(x, y int) {
	p.x = x
	p.y = y
}

// Gold returns the player's accumulated gold.
func (p *Player) Gold() int { return p.gold }

// AddGold adds n gold to the player's purse.
//
// Precondition: n >= 0.
func (p *Player) AddGold(n int) { p.gold += n }

// StatsDescription renders the player's stats, gold, and inventory for the
// stats command.
func (p *Player) StatsDescription() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Player Stats ===\n")
	fmt.Fprintf(&b, "Race: %s\n", p.Race())
	fmt.Fprintf(&b, "Health (H): %d\n", p.Health())
	fmt.Fprintf(&b, "Attack (A): %d\n", p.Attack())
	fmt.Fprintf(&b, "Defence (D): %d\n", p.Defence())
	fmt.Fprintf(&b, "Strength (Carry Cap): %d\n", p.Strength())
	fmt.Fprintf(&b, "Gold: %d\n", p.gold)
	b.WriteString(p.InventoryDescription())
	return b.String()
}

// InventoryDescription renders the inventory with indexes usable by the
// drop command.
func (p *Player) InventoryDescription() string {
	items := p.Inventory()
	var b strings.Builder
	fmt.Fprintf(&b, "Inventory (%d) weight %d/%d:\n", len(items), p.CarriedWeight(), p.Strength())
	for i, it := range items {
		fmt.Fprintf(&b, " [%d] %s (w=%d)\n", i, it.Name(), it.Weight())
	}
	return b.String()
}
