// Package opreg is a small named-registry, generalized from the
// teacher's codec registry (Name()/UID()-keyed lookup guarded by a
// RWMutex) to hold descriptors for the SA driver's mutation operators.
package opreg

import (
	"fmt"
	"sort"
	"sync"
)

// Operator describes one of the six mutation operators spec.md §4.3
// defines. The registry only carries metadata (name + human-readable
// description); the actual mutation logic lives in internal/core, whose
// concrete arguments differ per operator and so cannot be captured by a
// single uniform closure signature without losing type safety.
type Operator struct {
	Name        string
	Description string
}

// Registry is a mutex-guarded name -> Operator map, mirroring
// codec.Registry's Register/Get/List shape.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]Operator
}

var defaultRegistry = &Registry{ops: make(map[string]Operator)}

// Register adds op to the default registry.
func Register(op Operator) { defaultRegistry.Register(op) }

// Get retrieves an operator descriptor by name from the default registry.
func Get(name string) (Operator, error) { return defaultRegistry.Get(name) }

// Names returns all registered operator names, sorted, from the default
// registry.
func Names() []string { return defaultRegistry.Names() }

// ErrOperatorNotFound is returned when an operator name is not registered.
var ErrOperatorNotFound = fmt.Errorf("operator not found")

// Register adds op, keyed by its Name.
func (r *Registry) Register(op Operator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops[op.Name] = op
}

// Get retrieves an operator descriptor by name.
func (r *Registry) Get(name string) (Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[name]
	if !ok {
		return Operator{}, fmt.Errorf("%w: %q", ErrOperatorNotFound, name)
	}
	return op, nil
}

// Names returns all registered operator names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ops))
	for n := range r.ops {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
