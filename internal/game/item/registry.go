package item

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Registry holds validated item definitions keyed by ID.
type Registry struct {
	defs  map[string]Def
	order []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Def)}
}

// Register adds a definition to the registry.
//
// Precondition: d is non-nil.
// Postcondition: returns an error on validation failure or duplicate ID;
// on error the registry is unchanged.
func (r *Registry) Register(d *Def) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if _, exists := r.defs[d.ID]; exists {
		return fmt.Errorf("item registry: duplicate ID %q", d.ID)
	}
	r.defs[d.ID] = *d
	r.order = append(r.order, d.ID)
	return nil
}

// Lookup returns the definition for id.
func (r *Registry) Lookup(id string) (Def, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}

// IDs returns all definition IDs in registration order.
//
// Postcondition: returned slice is a copy.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// DefaultDefs returns the built-in item catalog.
//
// Postcondition: every returned Def passes Validate.
func DefaultDefs() []*Def {
	return []*Def{
		{ID: "sword", Name: "Sword", Category: CategoryWeapon, Weight: 10, AttackBoost: 10},
		{ID: "dagger", Name: "Dagger", Category: CategoryWeapon, Weight: 5, AttackBoost: 5},
		{ID: "plate-armour", Name: "Plate Armour", Category: CategoryArmour, Weight: 40, DefenceBoost: 10, AttackPenalty: 5},
		{ID: "leather-armour", Name: "Leather Armour", Category: CategoryArmour, Weight: 20, DefenceBoost: 5},
		{ID: "large-shield", Name: "Large Shield", Category: CategoryShield, Weight: 30, DefenceBoost: 10, AttackPenalty: 5},
		{ID: "small-shield", Name: "Small Shield", Category: CategoryShield, Weight: 10, DefenceBoost: 5},
		{ID: "ring-of-life", Name: "Ring of Life", Category: CategoryRing, Weight: 1, HealthBoost: 10},
		{ID: "ring-of-strength", Name: "Ring of Strength", Category: CategoryRing, Weight: 1, HealthBoost: -10, StrengthBoost: 50},
	}
}

// NewDefaultRegistry returns a Registry populated with the built-in catalog.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, d := range DefaultDefs() {
		if err := r.Register(d); err != nil {
			panic("item: invalid built-in catalog: " + err.Error())
		}
	}
	return r
}

// LoadDefs reads all *.yaml and *.yml files from dir, parses each as a Def,
// validates it, and returns the collected slice.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid Defs or the first encountered error.
func LoadDefs(dir string) ([]*Def, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadDefs: cannot read directory %q: %w", dir, err)
	}

	var defs []*Def
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadDefs: cannot read file %q: %w", path, err)
		}
		var d Def
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("LoadDefs: cannot parse file %q: %w", path, err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("LoadDefs: invalid item in %q: %w", path, err)
		}
		defs = append(defs, &d)
	}
	return defs, nil
}
