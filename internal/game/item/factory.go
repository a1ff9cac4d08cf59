package item

import (
	"fmt"

	"github.com/cory-johannsen/gridquest/internal/game/dice"
)

// Factory spawns item instances from a registry using an injected dice source.
type Factory struct {
	reg *Registry
	src dice.Source
}

// NewFactory creates a Factory over reg drawing randomness from src.
//
// Precondition: reg and src must be non-nil; reg must hold at least one Def.
func NewFactory(reg *Registry, src dice.Source) (*Factory, error) {
	if reg.Len() == 0 {
		return nil, fmt.Errorf("item factory: registry is empty")
	}
	return &Factory{reg: reg, src: src}, nil
}

// Random spawns an instance of a uniformly chosen definition.
//
// Postcondition: the returned Item carries a fresh InstanceID.
func (f *Factory) Random() *Item {
	ids := f.reg.IDs()
	id := ids[f.src.Intn(len(ids))]
	def, _ := f.reg.Lookup(id)
	return New(def)
}

// Spawn creates an instance of the definition with the given ID.
//
// Postcondition: returns an error iff id is not registered.
func (f *Factory) Spawn(id string) (*Item, error) {
	def, ok := f.reg.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("item factory: unknown item %q", id)
	}
	return New(def), nil
}
