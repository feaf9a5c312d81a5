// Package units holds the static table of SI base/derived/compound units
// and named mathematical constants (spec §1: "the static table of known
// physical units/constants" is an external collaborator; this package is
// that collaborator). Lookup is case-sensitive and modeled on
// CWBudde-go-dws/internal/units' registry shape (a name-keyed map with a
// Get/Put style accessor), repurposed here to hold physical unit data
// instead of DWScript source-file units.
package units

import (
	"sync"

	"github.com/jharlow/unitcalc/internal/quantity"
	"github.com/jharlow/unitcalc/internal/unit"
)

// Registry resolves surface names to compound units or constants.
type Registry struct {
	mu        sync.RWMutex
	compounds map[string]unit.CompoundUnit
	constants map[string]quantity.Quantity
}

var defaultRegistry = newDefaultRegistry()

// Default returns the process-wide static registry, populated with the SI
// and imperial units and the constant table (spec §B.2). The registry is
// read-only after init; the RWMutex guards against accidental future
// mutation from concurrent callers, not against contention in this
// single-threaded core (spec §5).
func Default() *Registry {
	return defaultRegistry
}

// LookupUnit returns the compound unit named name, if known.
func (r *Registry) LookupUnit(name string) (unit.CompoundUnit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.compounds[name]
	return u, ok
}

// LookupConstant returns the constant quantity named name, if known.
func (r *Registry) LookupConstant(name string) (quantity.Quantity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.constants[name]
	return c, ok
}

// IsKnownWord reports whether name resolves to either a unit or a constant.
func (r *Registry) IsKnownWord(name string) bool {
	_, u := r.LookupUnit(name)
	_, c := r.LookupConstant(name)
	return u || c
}

func newDefaultRegistry() *Registry {
	r := &Registry{
		compounds: make(map[string]unit.CompoundUnit),
		constants: make(map[string]quantity.Quantity),
	}
	registerBaseUnits(r)
	registerDerivedUnits(r)
	registerConstants(r)
	return r
}
