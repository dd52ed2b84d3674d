package render

import (
	"fmt"
	"sync"

	"github.com/benchforge/stepgen/pkg/step"
)

// Predicate reports whether a template family applies to a step.
type Predicate func(step.Step) bool

// Registry stores template families as an ordered list of (predicate,
// renderer) pairs. Registration order is specificity order: Select walks the
// list top-down and the first match wins, so the catch-all family must be
// registered last.
type Registry struct {
	mu      sync.RWMutex
	entries []registryEntry
}

type registryEntry struct {
	matches  Predicate
	renderer Renderer
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a family with its applicability predicate. Duplicate
// renderer names return an error.
func (r *Registry) Register(matches Predicate, renderer Renderer) error {
	if matches == nil {
		return fmt.Errorf("render: predicate is required")
	}
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := renderer.Name()
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range r.entries {
		if entry.renderer.Name() == name {
			return fmt.Errorf("render: renderer %q already registered", name)
		}
	}

	r.entries = append(r.entries, registryEntry{matches: matches, renderer: renderer})
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(matches Predicate, renderer Renderer) {
	if err := r.Register(matches, renderer); err != nil {
		panic(err)
	}
}

// Select returns the most specific family applicable to the step. Selection
// is deterministic and, with the generic family registered, total.
func (r *Registry) Select(st step.Step) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.entries {
		if entry.matches(st) {
			return entry.renderer, nil
		}
	}
	return nil, &TemplateSelectionError{
		Actions:   st.OrderedActions(),
		Equipment: st.SortedEquipment(),
	}
}

// Get retrieves a family by name, bypassing predicate selection.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.entries {
		if entry.renderer.Name() == name {
			return entry.renderer, nil
		}
	}
	return nil, fmt.Errorf("render: renderer %q not found", name)
}

// Has reports whether a family with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, err := r.Get(name)
	return err == nil
}

// List returns the registered family names in specificity order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for _, entry := range r.entries {
		names = append(names, entry.renderer.Name())
	}
	return names
}
