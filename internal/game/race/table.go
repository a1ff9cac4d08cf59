package race

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Table maps every race to its Definition. It is read-only after construction.
type Table map[Race]Definition

// Validate checks that all five races are present and every definition is valid.
//
// Postcondition: returns nil iff the table is complete and internally consistent.
func (t Table) Validate() error {
	for _, r := range All {
		def, ok := t[r]
		if !ok {
			return fmt.Errorf("race table: missing definition for %q", r)
		}
		if err := def.Validate(); err != nil {
			return fmt.Errorf("race table: %s: %w", r, err)
		}
	}
	return nil
}

// Lookup returns the Definition for r.
//
// Postcondition: ok is false iff r is not in the table.
func (t Table) Lookup(r Race) (Definition, bool) {
	def, ok := t[r]
	return def, ok
}

// sameDayNight builds a Definition whose stats do not shift with the clock.
func sameDayNight(p Profile, reaction Reaction) Definition {
	return Definition{Day: p, Night: p, Reaction: reaction}
}

// DefaultTable returns the built-in balance presets.
//
// Postcondition: the returned table passes Validate.
func DefaultTable() Table {
	return Table{
		Human:  sameDayNight(Profile{Attack: 30, AttackChance: 2.0 / 3.0, Defence: 20, DefenceChance: 1.0 / 2.0, Health: 60, Strength: 100}, ReactionBlock),
		Elf:    sameDayNight(Profile{Attack: 40, AttackChance: 1.0, Defence: 10, DefenceChance: 1.0 / 4.0, Health: 40, Strength: 70}, ReactionRegenerate),
		Dwarf:  sameDayNight(Profile{Attack: 30, AttackChance: 2.0 / 3.0, Defence: 20, DefenceChance: 2.0 / 3.0, Health: 50, Strength: 130}, ReactionBlock),
		Hobbit: sameDayNight(Profile{Attack: 25, AttackChance: 1.0 / 3.0, Defence: 20, DefenceChance: 2.0 / 3.0, Health: 70, Strength: 85}, ReactionThorns),
		Orc: Definition{
			Day:      Profile{Attack: 25, AttackChance: 1.0 / 4.0, Defence: 10, DefenceChance: 1.0 / 4.0, Health: 50, Strength: 130},
			Night:    Profile{Attack: 45, AttackChance: 1.0, Defence: 25, DefenceChance: 1.0 / 2.0, Health: 50, Strength: 130},
			Reaction: ReactionLunar,
		},
	}
}

// LoadTable reads a race table from a YAML file and validates it.
//
// Precondition: path must be a readable YAML file mapping race names to definitions.
// Postcondition: returns a table that passes Validate, or an error.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("race: reading table %q: %w", path, err)
	}
	var raw map[Race]Definition
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("race: parsing table %q: %w", path, err)
	}
	t := Table(raw)
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("race: table %q: %w", path, err)
	}
	return t, nil
}
