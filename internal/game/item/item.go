// Package item provides the four equippable item categories, their stat
// effects, and the registry/factory used to spawn items onto the board.
package item

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Category identifies an item's equipment category. A character may carry at
// most one item per category, except rings.
type Category string

const (
	// CategoryWeapon boosts attack.
	CategoryWeapon Category = "weapon"
	// CategoryArmour boosts defence, optionally at an attack penalty.
	CategoryArmour Category = "armour"
	// CategoryShield boosts defence, optionally at an attack penalty.
	CategoryShield Category = "shield"
	// CategoryRing boosts health and/or strength; the only stackable category.
	CategoryRing Category = "ring"
)

var validCategories = map[Category]bool{
	CategoryWeapon: true,
	CategoryArmour: true,
	CategoryShield: true,
	CategoryRing:   true,
}

// Stackable reports whether a character may hold more than one item of c.
func (c Category) Stackable() bool {
	return c == CategoryRing
}

// Def defines the static properties of an item loaded from YAML or from the
// built-in catalog.
type Def struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Category      Category `yaml:"category"`
	Weight        int      `yaml:"weight"`
	AttackBoost   int      `yaml:"attack_boost"`
	DefenceBoost  int      `yaml:"defence_boost"`
	AttackPenalty int      `yaml:"attack_penalty"`
	HealthBoost   int      `yaml:"health_boost"`
	StrengthBoost int      `yaml:"strength_boost"`
}

// Validate checks that the Def satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid for the category.
func (d *Def) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if !validCategories[d.Category] {
		errs = append(errs, fmt.Errorf("Category must be one of weapon, armour, shield, ring; got %q", d.Category))
	}
	if d.Weight < 0 {
		errs = append(errs, errors.New("Weight must be >= 0"))
	}
	switch d.Category {
	case CategoryWeapon:
		if d.DefenceBoost != 0 || d.AttackPenalty != 0 || d.HealthBoost != 0 || d.StrengthBoost != 0 {
			errs = append(errs, errors.New("weapon may only set attack_boost"))
		}
	case CategoryArmour, CategoryShield:
		if d.AttackBoost != 0 || d.HealthBoost != 0 || d.StrengthBoost != 0 {
			errs = append(errs, fmt.Errorf("%s may only set defence_boost and attack_penalty", d.Category))
		}
		if d.AttackPenalty < 0 {
			errs = append(errs, errors.New("attack_penalty must be >= 0"))
		}
	case CategoryRing:
		if d.AttackBoost != 0 || d.DefenceBoost != 0 || d.AttackPenalty != 0 {
			errs = append(errs, errors.New("ring may only set health_boost and strength_boost"))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("item validation failed: %v", errs)
	}
	return nil
}

// Bearer is the stat surface an item effect mutates. Character implements it;
// a local interface here avoids an item→character import cycle.
type Bearer interface {
	ModifyAttack(delta int)
	ModifyDefence(delta int)
	ModifyHealth(delta int)
	ModifyStrength(delta int)
}

// Item is a concrete spawned instance of a Def.
type Item struct {
	// InstanceID uniquely identifies this spawned item.
	InstanceID string
	def        Def
}

// New creates an Item instance from a validated Def.
//
// Precondition: def must have passed Validate.
// Postcondition: the returned Item carries a fresh InstanceID.
func New(def Def) *Item {
	return &Item{
		InstanceID: uuid.New().String(),
		def:        def,
	}
}

// Name returns the item's display name.
func (i *Item) Name() string { return i.def.Name }

// DefID returns the identifier of the definition this item was spawned from.
func (i *Item) DefID() string { return i.def.ID }

// Category returns the item's equipment category.
func (i *Item) Category() Category { return i.def.Category }

// Weight returns the item's carry weight.
func (i *Item) Weight() int { return i.def.Weight }

// Apply mutates b with this item's stat deltas.
//
// Apply and Remove are exact algebraic inverses for the same instance. The
// bearer clamps stats at 0, so a remove on a bearer sitting at a clamped
// floor may not restore the pre-apply value; that loss is the bearer's
// documented behaviour, not the item's.
func (i *Item) Apply(b Bearer) {
	switch i.def.Category {
	case CategoryWeapon:
		b.ModifyAttack(i.def.AttackBoost)
	case CategoryArmour, CategoryShield:
		b.ModifyDefence(i.def.DefenceBoost)
		if i.def.AttackPenalty != 0 {
			b.ModifyAttack(-i.def.AttackPenalty)
		}
	case CategoryRing:
		if i.def.HealthBoost != 0 {
			b.ModifyHealth(i.def.HealthBoost)
		}
		if i.def.StrengthBoost != 0 {
			b.ModifyStrength(i.def.StrengthBoost)
		}
	}
}

// Remove reverses Apply on b.
func (i *Item) Remove(b Bearer) {
	switch i.def.Category {
	case CategoryWeapon:
		b.ModifyAttack(-i.def.AttackBoost)
	case CategoryArmour, CategoryShield:
		b.ModifyDefence(-i.def.DefenceBoost)
		if i.def.AttackPenalty != 0 {
			b.ModifyAttack(i.def.AttackPenalty)
		}
	case CategoryRing:
		if i.def.HealthBoost != 0 {
			b.ModifyHealth(-i.def.HealthBoost)
		}
		if i.def.StrengthBoost != 0 {
			b.ModifyStrength(-i.def.StrengthBoost)
		}
	}
}
