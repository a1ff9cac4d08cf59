package race_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/gridquest/internal/game/race"
)

func TestDefaultTable_Valid(t *testing.T) {
	tbl := race.DefaultTable()
	require.NoError(t, tbl.Validate())
}

func TestDefaultTable_Presets(t *testing.T) {
	tbl := race.DefaultTable()

	human, ok := tbl.Lookup(race.Human)
	require.True(t, ok)
	assert.Equal(t, 30, human.Day.Attack)
	assert.Equal(t, 20, human.Day.Defence)
	assert.Equal(t, 60, human.Day.Health)
	assert.False(t, human.Lunar())

	orc, ok := tbl.Lookup(race.Orc)
	require.True(t, ok)
	assert.True(t, orc.Lunar())
	assert.Equal(t, 25, orc.Day.Attack)
	assert.Equal(t, 45, orc.Night.Attack)
	assert.Equal(t, 0.5, orc.Night.DefenceChance)
	assert.Equal(t, orc.Day.Strength, orc.Night.Strength)
}

func TestDefaultTable_Reactions(t *testing.T) {
	tbl := race.DefaultTable()
	cases := map[race.Race]race.Reaction{
		race.Human:  race.ReactionBlock,
		race.Dwarf:  race.ReactionBlock,
		race.Elf:    race.ReactionRegenerate,
		race.Hobbit: race.ReactionThorns,
		race.Orc:    race.ReactionLunar,
	}
	for r, want := range cases {
		def, ok := tbl.Lookup(r)
		require.True(t, ok, r)
		assert.Equal(t, want, def.Reaction, r)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		want    race.Race
		wantErr bool
	}{
		{"Human", race.Human, false},
		{"human", race.Human, false},
		{"ORC", race.Orc, false},
		{"hobbit", race.Hobbit, false},
		{"Goblin", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := race.Parse(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestProfile_Validate(t *testing.T) {
	good := race.Profile{Attack: 10, AttackChance: 0.5, Defence: 5, DefenceChance: 0.25, Health: 40, Strength: 80}
	assert.NoError(t, good.Validate())

	bad := good
	bad.AttackChance = 1.5
	assert.Error(t, bad.Validate())

	bad = good
	bad.DefenceChance = -0.1
	assert.Error(t, bad.Validate())

	bad = good
	bad.Health = -1
	assert.Error(t, bad.Validate())
}

func TestTable_Validate_MissingRace(t *testing.T) {
	tbl := race.DefaultTable()
	delete(tbl, race.Dwarf)
	err := tbl.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Dwarf")
}

func TestLoadTable_RoundTrip(t *testing.T) {
	const doc = `
Human:
  day: {attack: 30, attack_chance: 0.66, defence: 20, defence_chance: 0.5, health: 60, strength: 100}
  night: {attack: 30, attack_chance: 0.66, defence: 20, defence_chance: 0.5, health: 60, strength: 100}
  reaction: block
Elf:
  day: {attack: 40, attack_chance: 1.0, defence: 10, defence_chance: 0.25, health: 40, strength: 70}
  night: {attack: 40, attack_chance: 1.0, defence: 10, defence_chance: 0.25, health: 40, strength: 70}
  reaction: regenerate
Dwarf:
  day: {attack: 30, attack_chance: 0.66, defence: 20, defence_chance: 0.66, health: 50, strength: 130}
  night: {attack: 30, attack_chance: 0.66, defence: 20, defence_chance: 0.66, health: 50, strength: 130}
  reaction: block
Hobbit:
  day: {attack: 25, attack_chance: 0.33, defence: 20, defence_chance: 0.66, health: 70, strength: 85}
  night: {attack: 25, attack_chance: 0.33, defence: 20, defence_chance: 0.66, health: 70, strength: 85}
  reaction: thorns
Orc:
  day: {attack: 25, attack_chance: 0.25, defence: 10, defence_chance: 0.25, health: 50, strength: 130}
  night: {attack: 45, attack_chance: 1.0, defence: 25, defence_chance: 0.5, health: 50, strength: 130}
  reaction: lunar
`
	path := filepath.Join(t.TempDir(), "races.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	tbl, err := race.LoadTable(path)
	require.NoError(t, err)

	orc, ok := tbl.Lookup(race.Orc)
	require.True(t, ok)
	assert.True(t, orc.Lunar())
	assert.Equal(t, race.ReactionLunar, orc.Reaction)
}

func TestLoadTable_RejectsInvalid(t *testing.T) {
	const doc = `
Human:
  day: {attack: 30, attack_chance: 2.0, defence: 20, defence_chance: 0.5, health: 60, strength: 100}
  night: {attack: 30, attack_chance: 2.0, defence: 20, defence_chance: 0.5, health: 60, strength: 100}
  reaction: block
`
	path := filepath.Join(t.TempDir(), "races.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := race.LoadTable(path)
	assert.Error(t, err)
}

func TestLoadTable_MissingFile(t *testing.T) {
	_, err := race.LoadTable(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
