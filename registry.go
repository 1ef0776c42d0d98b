package shape

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps shape type tags to shapes. Lookups happen once per entity
// paint; shapes that depend on other shapes resolve them when they are
// constructed. Registry is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	shapes map[string]Shape
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{shapes: make(map[string]Shape)}
}

// Register adds s under s.Type(). It follows the database/sql driver
// pattern and panics if s is nil or its type is already registered, so
// that duplicate registrations surface at program initialization.
func (r *Registry) Register(s Shape) {
	if s == nil {
		panic("shape: Register shape is nil")
	}
	name := s.Type()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.shapes[name]; dup {
		panic("shape: Register called twice for " + name)
	}
	r.shapes[name] = s
	Logger().Debug("shape: registered", "type", name)
}

// Unregister removes a shape type. Unknown names are ignored.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.shapes, name)
}

// Lookup returns the shape registered under name.
func (r *Registry) Lookup(name string) (Shape, error) {
	r.mu.RLock()
	s, ok := r.shapes[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownShape, name)
	}
	return s, nil
}

// Types returns the registered type tags in alphabetical order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.shapes))
	for name := range r.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Draw paints e with the shape registered for e.Type. Invisible entities
// are skipped. Errors from the shape are returned unchanged.
func (r *Registry) Draw(ctx Context, e *Entity, highlight bool) error {
	if e.Invisible {
		return nil
	}
	s, err := r.Lookup(e.Type)
	if err != nil {
		return err
	}
	Logger().Debug("shape: draw", "type", e.Type, "id", e.ID, "highlight", highlight)
	return s.Brush(ctx, e, highlight)
}

var defaultRegistry = newDefaultRegistry()

// newDefaultRegistry registers the built-in shapes. The ring is built on the
// registered sector.
func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewSector())
	sector, err := r.Lookup("sector")
	if err != nil {
		panic(err)
	}
	r.Register(NewRing(sector))
	r.Register(NewCircle())
	return r
}

// Default returns the package registry holding the built-in shapes.
func Default() *Registry { return defaultRegistry }

// Register adds s to the default registry. See [Registry.Register].
func Register(s Shape) { defaultRegistry.Register(s) }

// Lookup returns a shape from the default registry.
func Lookup(name string) (Shape, error) { return defaultRegistry.Lookup(name) }

// Types lists the default registry's type tags.
func Types() []string { return defaultRegistry.Types() }

// Draw paints e using the default registry.
func Draw(ctx Context, e *Entity, highlight bool) error {
	return defaultRegistry.Draw(ctx, e, highlight)
}
