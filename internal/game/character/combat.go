package character

import (
	"errors"

	"github.com/cory-johannsen/gridquest/internal/game/dice"
	"github.com/cory-johannsen/gridquest/internal/game/race"
)

// Combat preconditions that cannot produce an attack round.
var (
	// ErrNoTarget rejects an attack with no target.
	ErrNoTarget = errors.New("no target to attack")
	// ErrTargetDefeated rejects an attack on a target that is already down.
	ErrTargetDefeated = errors.New("target is already defeated")
)

// AttackResult describes one resolved attack round. Callers render it; the
// rules never print.
type AttackResult struct {
	// Attacker and Target identify the two sides by race.
	Attacker race.Race
	Target   race.Race
	// Missed is true when the attack roll failed; the target is unaffected.
	Missed bool
	// Defended is true when the target's defence roll succeeded.
	Defended bool
	// Residual is the damage taken through a successful defence
	// (0 for a full block).
	Residual int
	// Damage is the damage dealt when the defence roll failed.
	Damage int
	// TargetDefeated is true when the round left the target at 0 health.
	TargetDefeated bool
}

// AttackTarget performs one attack round against target.
//
// Resolution order: attack roll, then the target's defence roll. A successful
// defence triggers the target's race reaction, which may heal the target or
// leave residual damage. A failed defence deals
// max(0, attacker.attack - target.defence).
//
// Precondition: src must be non-nil; night is the current world-clock phase.
// Postcondition: returns ErrNoTarget or ErrTargetDefeated without touching
// any state; otherwise returns a fully populated AttackResult.
func (c *Character) AttackTarget(target *Character, night bool, src dice.Source) (AttackResult, error) {
	if target == nil {
		return AttackResult{}, ErrNoTarget
	}
	if !target.Alive() {
		return AttackResult{}, ErrTargetDefeated
	}

	result := AttackResult{Attacker: c.race, Target: target.race}

	if !dice.Chance(src, c.attackChance) {
		result.Missed = true
		return result, nil
	}

	if dice.Chance(src, target.defenceChance) {
		result.Defended = true
		residual := target.reactToDefence(night, src)
		if residual > 0 {
			target.ModifyHealth(-residual)
		}
		result.Residual = residual
		result.TargetDefeated = !target.Alive()
		return result, nil
	}

	damage := c.attack - target.defence
	if damage < 0 {
		damage = 0
	}
	target.ModifyHealth(-damage)
	result.Damage = damage
	result.TargetDefeated = !target.Alive()
	return result, nil
}

// reactToDefence applies the race-specific side effect of a successful
// defence and returns the residual damage the defender still takes.
//
// Postcondition: result >= 0.
func (c *Character) reactToDefence(night bool, src dice.Source) int {
	switch c.def.Reaction {
	case race.ReactionRegenerate:
		c.ModifyHealth(+1)
		return 0
	case race.ReactionThorns:
		return dice.IntBetween(src, 0, 5)
	case race.ReactionLunar:
		if night {
			c.ModifyHealth(+1)
			return 0
		}
		adjusted := c.baseAttack - c.baseDefence
		if adjusted < 0 {
			adjusted = 0
		}
		return adjusted / 4
	default:
		// ReactionBlock: full negation.
		return 0
	}
}
