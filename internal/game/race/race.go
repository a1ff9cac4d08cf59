// Package race defines the playable races, their stat profiles, and the
// defence-reaction policy attached to each race.
package race

import (
	"fmt"
	"strings"
)

// Race identifies one of the playable races.
type Race string

// The five playable races. Creatures draw from the same set.
const (
	Human  Race = "Human"
	Elf    Race = "Elf"
	Dwarf  Race = "Dwarf"
	Hobbit Race = "Hobbit"
	Orc    Race = "Orc"
)

// All contains every playable race in a fixed order.
var All = []Race{Human, Elf, Dwarf, Hobbit, Orc}

// Parse normalizes a user-supplied race name to a Race.
//
// Postcondition: returns the matching Race, or an error for unknown names.
func Parse(name string) (Race, error) {
	for _, r := range All {
		if strings.EqualFold(string(r), name) {
			return r, nil
		}
	}
	return "", fmt.Errorf("race: unknown race %q", name)
}

// Reaction selects the race-specific side effect triggered when a defence
// roll succeeds. A closed set: adding a race means adding a table entry, not
// a new Character subtype.
type Reaction string

const (
	// ReactionBlock fully negates the attack.
	ReactionBlock Reaction = "block"
	// ReactionRegenerate negates the attack and heals 1 health.
	ReactionRegenerate Reaction = "regenerate"
	// ReactionThorns negates the attack but the defender takes a small
	// random residual in [0, 5], independent of the attacker.
	ReactionThorns Reaction = "thorns"
	// ReactionLunar heals 1 at night; during the day the defender takes
	// max(0, baseAttack-baseDefence)/4 residual damage.
	ReactionLunar Reaction = "lunar"
)

var validReactions = map[Reaction]bool{
	ReactionBlock:      true,
	ReactionRegenerate: true,
	ReactionThorns:     true,
	ReactionLunar:      true,
}

// Profile holds the base statistics of a race.
type Profile struct {
	Attack        int     `yaml:"attack"`
	AttackChance  float64 `yaml:"attack_chance"`
	Defence       int     `yaml:"defence"`
	DefenceChance float64 `yaml:"defence_chance"`
	Health        int     `yaml:"health"`
	Strength      int     `yaml:"strength"`
}

// Validate checks that the profile satisfies its invariants.
//
// Postcondition: returns nil iff stats are non-negative and chances are in [0, 1].
func (p Profile) Validate() error {
	if p.Attack < 0 || p.Defence < 0 || p.Health < 0 || p.Strength < 0 {
		return fmt.Errorf("race profile: stats must be >= 0, got %+v", p)
	}
	if p.AttackChance < 0 || p.AttackChance > 1 {
		return fmt.Errorf("race profile: attack_chance must be in [0, 1], got %f", p.AttackChance)
	}
	if p.DefenceChance < 0 || p.DefenceChance > 1 {
		return fmt.Errorf("race profile: defence_chance must be in [0, 1], got %f", p.DefenceChance)
	}
	return nil
}

// Definition binds a race's day and night profiles to its defence reaction.
// Non-lunar races carry identical day and night profiles.
type Definition struct {
	Day      Profile  `yaml:"day"`
	Night    Profile  `yaml:"night"`
	Reaction Reaction `yaml:"reaction"`
}

// Lunar reports whether the race's stats shift with the day/night cycle.
func (d Definition) Lunar() bool {
	return d.Day != d.Night
}

// ProfileFor returns the Night profile when night is true, otherwise Day.
func (d Definition) ProfileFor(night bool) Profile {
	if night {
		return d.Night
	}
	return d.Day
}

// Validate checks both profiles and the reaction tag.
func (d Definition) Validate() error {
	if err := d.Day.Validate(); err != nil {
		return fmt.Errorf("day: %w", err)
	}
	if err := d.Night.Validate(); err != nil {
		return fmt.Errorf("night: %w", err)
	}
	if !validReactions[d.Reaction] {
		return fmt.Errorf("race definition: unknown reaction %q", d.Reaction)
	}
	return nil
}
