package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/gridquest/internal/game/board"
	"github.com/cory-johannsen/gridquest/internal/game/character"
	"github.com/cory-johannsen/gridquest/internal/game/item"
	"github.com/cory-johannsen/gridquest/internal/game/race"
)

func testItem(name string, weight int) *item.Item {
	return item.New(item.Def{ID: name, Name: name, Category: item.CategoryWeapon, Weight: weight, AttackBoost: 1})
}

func testCreature(t *testing.T, r race.Race) *character.Creature {
	t.Helper()
	def, ok := race.DefaultTable().Lookup(r)
	require.True(t, ok)
	return character.NewCreature(r, def)
}

func TestCell_Empty(t *testing.T) {
	var c board.Cell
	assert.False(t, c.HasItem())
	assert.False(t, c.HasCreature())
	assert.Equal(t, "The square is empty.", c.Describe())

	_, ok := c.TakeItem()
	assert.False(t, ok)
	_, ok = c.TakeCreature()
	assert.False(t, ok)
}

func TestCell_PlaceAndTakeItem(t *testing.T) {
	var c board.Cell
	it := testItem("Sword", 10)
	require.NoError(t, c.PlaceItem(it))
	assert.True(t, c.HasItem())
	assert.Contains(t, c.Describe(), "Sword")
	assert.Contains(t, c.Describe(), "weight 10")

	got, ok := c.TakeItem()
	require.True(t, ok)
	assert.Same(t, it, got)
	assert.False(t, c.HasItem(), "taking the item leaves the cell empty")
}

func TestCell_PlaceAndTakeCreature(t *testing.T) {
	var c board.Cell
	cr := testCreature(t, race.Dwarf)
	require.NoError(t, c.PlaceCreature(cr))
	assert.True(t, c.HasCreature())
	assert.Contains(t, c.Describe(), "Dwarf (Enemy)")
	assert.Contains(t, c.Describe(), "H:50 A:30 D:20")

	got, ok := c.TakeCreature()
	require.True(t, ok)
	assert.Same(t, cr, got)
	assert.False(t, c.HasCreature())
}

func TestCell_PlaceGuardsOccupied(t *testing.T) {
	var c board.Cell
	require.NoError(t, c.PlaceItem(testItem("Sword", 10)))
	assert.ErrorIs(t, c.PlaceItem(testItem("Dagger", 5)), board.ErrCellOccupied)
	assert.ErrorIs(t, c.PlaceCreature(testCreature(t, race.Elf)), board.ErrCellOccupied)

	var c2 board.Cell
	require.NoError(t, c2.PlaceCreature(testCreature(t, race.Elf)))
	assert.ErrorIs(t, c2.PlaceItem(testItem("Sword", 10)), board.ErrCellOccupied)
}

func TestCell_DropItem(t *testing.T) {
	var c board.Cell
	original := testItem("Sword", 10)
	require.NoError(t, c.DropItem(original))

	// Spec scenario: a second drop fails and the original is untouched.
	err := c.DropItem(testItem("Dagger", 5))
	require.ErrorIs(t, err, board.ErrCellOccupied)
	assert.Same(t, original, c.Item())

	var c2 board.Cell
	assert.Error(t, c2.DropItem(nil))

	var c3 board.Cell
	require.NoError(t, c3.PlaceCreature(testCreature(t, race.Orc)))
	assert.ErrorIs(t, c3.DropItem(testItem("Sword", 10)), board.ErrCellOccupied)
}

func TestCell_NeverItemAndCreature(t *testing.T) {
	humanDef, ok := race.DefaultTable().Lookup(race.Human)
	require.True(t, ok)
	rapid.Check(t, func(t *rapid.T) {
		var c board.Cell
		ops := rapid.IntRange(1, 30).Draw(t, "ops")
		for i := 0; i < ops; i++ {
			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0:
				_ = c.DropItem(testItem("Sword", 1))
			case 1:
				_ = c.PlaceCreature(character.NewCreature(race.Human, humanDef))
			case 2:
				_, _ = c.TakeItem()
			case 3:
				_, _ = c.TakeCreature()
			}
			if c.HasItem() && c.HasCreature() {
				t.Fatal("cell holds an item and a creature simultaneously")
			}
		}
	})
}
