package board

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/gridquest/internal/game/character"
	"github.com/cory-johannsen/gridquest/internal/game/dice"
	"github.com/cory-johannsen/gridquest/internal/game/item"
)

// CreatureFactory spawns a hostile creature for board population.
type CreatureFactory func() *character.Creature

// Board is an owning 2D grid of cells. It orchestrates every position-scoped
// player action and enforces the boundary and single-occupant rules the
// cells themselves only guard.
type Board struct {
	width  int
	height int
	cells  []Cell // row-major, index y*width+x

	items     *item.Factory
	creatures CreatureFactory
	src       dice.Source
	logger    *zap.Logger
}

// New creates a Board of empty cells.
//
// Precondition: width and height must be >= 1; items, creatures, and src
// must be non-nil. logger may be nil for a silent board.
func New(width, height int, items *item.Factory, creatures CreatureFactory, src dice.Source, logger *zap.Logger) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("board: size %dx%d must be at least 1x1", width, height)
	}
	if items == nil || creatures == nil || src == nil {
		return nil, fmt.Errorf("board: item factory, creature factory, and dice source are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Board{
		width:     width,
		height:    height,
		cells:     make([]Cell, width*height),
		items:     items,
		creatures: creatures,
		src:       src,
		logger:    logger,
	}, nil
}

// Width returns the board width in cells.
func (b *Board) Width() int { return b.width }

// Height returns the board height in cells.
func (b *Board) Height() int { return b.height }

// InBounds reports whether (x, y) is on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// CellAt returns the cell at (x, y).
//
// Precondition: (x, y) must be in bounds.
func (b *Board) CellAt(x, y int) *Cell {
	return &b.cells[y*b.width+x]
}

// Populate seeds every cell with a three-way uniform choice: a creature, an
// item, or nothing. Creatures are refreshed for the current clock phase at
// spawn so lunar races never linger on stale stats.
//
// Postcondition: every cell holds at most one occupant.
func (b *Board) Populate(night bool) {
	creatures, items := 0, 0
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			switch b.src.Intn(3) {
			case 0:
				cr := b.creatures()
				cr.UpdateForTime(night)
				if err := b.CellAt(x, y).PlaceCreature(cr); err == nil {
					creatures++
				}
			case 1:
				if err := b.CellAt(x, y).PlaceItem(b.items.Random()); err == nil {
					items++
				}
			}
		}
	}
	b.logger.Debug("board populated",
		zap.Int("width", b.width),
		zap.Int("height", b.height),
		zap.Int("creatures", creatures),
		zap.Int("items", items),
	)
}

// MovePlayer moves the player one cell in the given direction and returns a
// description of the destination. If the destination holds a creature, its
// time-of-day stats are refreshed before any further interaction.
//
// Postcondition: on ErrUnknownDirection or ErrOutOfBounds the player's
// position is unchanged.
func (b *Board) MovePlayer(p *character.Player, dir Direction, night bool) (string, error) {
	dx, dy := dir.offset()
	if dx == 0 && dy == 0 {
		return "", fmt.Errorf("%q: %w", dir, ErrUnknownDirection)
	}
	x, y := p.Position()
	nx, ny := x+dx, y+dy
	if !b.InBounds(nx, ny) {
		return "", fmt.Errorf("(%d, %d): %w", nx, ny, ErrOutOfBounds)
	}
	p.SetPosition(nx, ny)
	cell := b.CellAt(nx, ny)
	if cell.HasCreature() {
		cell.Creature().UpdateForTime(night)
	}
	b.logger.Debug("player moved",
		zap.String("direction", string(dir)),
		zap.Int("x", nx),
		zap.Int("y", ny),
	)
	return cell.Describe(), nil
}

// Describe renders the contents of the player's current cell.
func (b *Board) Describe(p *character.Player) string {
	x, y := p.Position()
	return b.CellAt(x, y).Describe()
}

// PickUpAt takes the item from the player's cell and hands it to the player.
// A rejected pickup puts the item back on the cell, so it is never lost.
//
// Postcondition: on success the cell is empty and the player owns the item;
// on any error cell and player are unchanged.
func (b *Board) PickUpAt(p *character.Player) (*item.Item, error) {
	x, y := p.Position()
	cell := b.CellAt(x, y)
	it, ok := cell.TakeItem()
	if !ok {
		return nil, fmt.Errorf("no item at (%d, %d): %w", x, y, ErrEmptyCell)
	}
	if err := p.PickUp(it); err != nil {
		if perr := cell.PlaceItem(it); perr != nil {
			// The cell was empty a moment ago; a failed restore means the
			// single-occupant invariant broke somewhere upstream.
			return nil, fmt.Errorf("restoring %s to cell: %w", it.Name(), perr)
		}
		return nil, err
	}
	b.logger.Debug("item picked up",
		zap.String("item", it.Name()),
		zap.Int("x", x),
		zap.Int("y", y),
	)
	return it, nil
}

// DropAt places an item onto the player's cell.
//
// Postcondition: on ErrCellOccupied the caller keeps ownership of the item.
func (b *Board) DropAt(p *character.Player, it *item.Item) error {
	x, y := p.Position()
	if err := b.CellAt(x, y).DropItem(it); err != nil {
		return err
	}
	b.logger.Debug("item dropped",
		zap.String("item", it.Name()),
		zap.Int("x", x),
		zap.Int("y", y),
	)
	return nil
}

// CombatReport describes one full attack round at the player's cell.
type CombatReport struct {
	// PlayerAttack is the player's attack on the creature.
	PlayerAttack character.AttackResult
	// GoldReward is the gold gained when the creature was defeated.
	GoldReward int
	// CounterAttack is the creature's reply, nil when the creature died.
	CounterAttack *character.AttackResult
	// PlayerDefeated is true when the counterattack left the player at 0 health.
	PlayerDefeated bool
}

// AttackAt resolves an attack on the creature in the player's cell. A killed
// creature is removed and converted into gold equal to its item-modified
// defence; a surviving creature always counterattacks once.
//
// Postcondition: returns ErrEmptyCell and changes nothing when the cell
// holds no creature.
func (b *Board) AttackAt(p *character.Player, night bool) (CombatReport, error) {
	x, y := p.Position()
	cell := b.CellAt(x, y)
	if !cell.HasCreature() {
		return CombatReport{}, fmt.Errorf("no enemy at (%d, %d): %w", x, y, ErrEmptyCell)
	}
	cr := cell.Creature()
	cr.UpdateForTime(night)

	attack, err := p.AttackTarget(cr.Character, night, b.src)
	if err != nil {
		return CombatReport{}, err
	}
	report := CombatReport{PlayerAttack: attack}

	if !cr.Alive() {
		dead, _ := cell.TakeCreature()
		report.GoldReward = dead.GoldValue()
		p.AddGold(report.GoldReward)
		b.logger.Debug("creature defeated",
			zap.String("creature", dead.Name()),
			zap.Int("gold", report.GoldReward),
		)
		return report, nil
	}

	counter, err := cr.AttackTarget(p.Character, night, b.src)
	if err != nil {
		return report, err
	}
	report.CounterAttack = &counter
	report.PlayerDefeated = !p.Alive()
	if report.PlayerDefeated {
		b.logger.Debug("player defeated",
			zap.String("creature", cr.Name()),
		)
	}
	return report, nil
}

// DebugString renders the grid with E for creatures, I for items, and dots
// for empty cells.
func (b *Board) DebugString() string {
	out := make([]byte, 0, b.height*(b.width*2+1))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := b.CellAt(x, y)
			switch {
			case cell.HasCreature():
				out = append(out, 'E', ' ')
			case cell.HasItem():
				out = append(out, 'I', ' ')
			default:
				out = append(out, '.', ' ')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
