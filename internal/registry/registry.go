package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/noisegrid/internal/module"
)

// Module is the interface that every plugin package implements to be
// registered.
type Module interface {
	Register(r *Registry)
}

// RegisteredModule holds the compiled Go parts of one module type.
type RegisteredModule struct {
	// Description is a one-line summary shown by --list-modules.
	Description string
	// NewInput returns a pointer to a fresh input struct with defaults set.
	NewInput func() any
	// Build turns a decoded input into a module.
	Build func(input any) (module.Module, error)
}

// Registry holds every registered module type for a single application
// instance.
type Registry struct {
	modules map[string]*RegisteredModule
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{modules: make(map[string]*RegisteredModule)}
}

// RegisterModule registers a module type. Registering the same type twice
// is a programming error and panics.
func (r *Registry) RegisterModule(name string, m *RegisteredModule) {
	if _, exists := r.modules[name]; exists {
		panic(fmt.Sprintf("module type '%s' already registered", name))
	}
	if m == nil || m.NewInput == nil || m.Build == nil {
		panic(fmt.Sprintf("module type '%s' registered without NewInput or Build", name))
	}
	slog.Debug("Registering module type.", "type", name)
	r.modules[name] = m
}

// Lookup returns the registration for a module type.
func (r *Registry) Lookup(name string) (*RegisteredModule, bool) {
	m, ok := r.modules[name]
	return m, ok
}

// Types returns every registered module type, sorted.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.modules))
	for name := range r.modules {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

// Typed adapts a strongly typed input struct and build function to a
// RegisteredModule. defaults returns the input with its default values.
func Typed[T any](description string, defaults func() T, build func(in *T) (module.Module, error)) *RegisteredModule {
	return &RegisteredModule{
		Description: description,
		NewInput: func() any {
			in := defaults()
			return &in
		},
		Build: func(input any) (module.Module, error) {
			in, ok := input.(*T)
			if !ok {
				var zero T
				return nil, fmt.Errorf("input has type %T, expected *%T", input, zero)
			}
			return build(in)
		},
	}
}
