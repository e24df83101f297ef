package decorator

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// ErrDecoratorNotFound is returned when a component name has no registration.
var ErrDecoratorNotFound = errors.New("decorator: component not registered")

// Descriptor bundles a decorator with the assets its markup depends on.
type Descriptor struct {
	Name        string
	Decorator   FieldDecorator
	Stylesheets []string
}

// Registry tracks decorators keyed by component name. Names are matched
// case-insensitively after trimming.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		components: make(map[string]Descriptor),
	}
}

// Clone returns a deep copy of the registry to allow isolated mutations.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for name, descriptor := range r.components {
		cloned.components[name] = cloneDescriptor(descriptor)
	}
	return cloned
}

// Register associates a descriptor with name, replacing any previous entry.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	if name = normalize(name); name == "" {
		return errors.New("decorator: component name is required")
	}
	if descriptor.Decorator == nil {
		return fmt.Errorf("decorator: decorator for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor.Name = name
	r.components[name] = cloneDescriptor(descriptor)
	return nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches a descriptor by name.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.components[normalize(name)]
	if !ok {
		return Descriptor{}, false
	}
	return cloneDescriptor(descriptor), true
}

// Decorator returns the decorator registered under name.
func (r *Registry) Decorator(name string) (FieldDecorator, error) {
	descriptor, ok := r.Descriptor(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDecoratorNotFound, normalize(name))
	}
	return descriptor.Decorator, nil
}

// Names returns the registered component names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Assets resolves de-duplicated stylesheets for the provided component names,
// in first-seen order.
func (r *Registry) Assets(names []string) []string {
	if len(names) == 0 {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	var stylesheets []string
	for _, name := range names {
		descriptor, ok := r.components[normalize(name)]
		if !ok {
			continue
		}
		for _, href := range descriptor.Stylesheets {
			if href == "" {
				continue
			}
			if _, exists := seen[href]; exists {
				continue
			}
			seen[href] = struct{}{}
			stylesheets = append(stylesheets, href)
		}
	}
	return stylesheets
}

func cloneDescriptor(src Descriptor) Descriptor {
	return Descriptor{
		Name:        src.Name,
		Decorator:   src.Decorator,
		Stylesheets: slices.Clone(src.Stylesheets),
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
