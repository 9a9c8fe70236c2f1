package validate

import (
	"fmt"
	"sort"
	"sync"

	"github.com/simonhull/firebird-suite/wren/input"
)

// Registry is a named, concurrency-safe set of validators.
// It implements input.Provider.
type Registry struct {
	name string

	mu    sync.RWMutex
	rules map[string]input.Validator
}

// NewRegistry creates an empty registry. name identifies it in
// unknown-validator errors.
func NewRegistry(name string) *Registry {
	return &Registry{
		name:  name,
		rules: make(map[string]input.Validator),
	}
}

// Default returns a new registry holding the built-in rules:
// notEmpty, email, integer, number, alpha and alphanumeric.
func Default() *Registry {
	r := NewRegistry("validate.Default")
	r.MustRegister("notEmpty", input.NotEmpty)
	r.MustRegister("email", Email())
	r.MustRegister("integer", Integer())
	r.MustRegister("number", Number())
	r.MustRegister("alpha", Alpha())
	r.MustRegister("alphanumeric", Alphanumeric())
	return r
}

// Register adds a validator under name.
func (r *Registry) Register(name string, v input.Validator) error {
	if name == "" {
		return fmt.Errorf("cannot register validator with empty name")
	}
	if v == nil {
		return fmt.Errorf("cannot register nil validator %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rules[name]; exists {
		return fmt.Errorf("validator %q is already registered", name)
	}
	r.rules[name] = v
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, v input.Validator) {
	if err := r.Register(name, v); err != nil {
		panic(err)
	}
}

// Lookup implements input.Provider.
func (r *Registry) Lookup(name string) (input.Validator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.rules[name]
	return v, ok
}

// Name implements input.Provider.
func (r *Registry) Name() string {
	return r.name
}

// Has checks if a validator is registered
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// List returns all registered names in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Unregister removes a validator, reporting whether it was present.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rules[name]; exists {
		delete(r.rules, name)
		return true
	}
	return false
}

// Size returns the number of registered validators
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.rules)
}
