package solver

// Registry is an ordered, name-unique collection of plugins.
//
// Registration order is the dispatch priority order: Solve consults plugins
// in exactly the sequence they were registered. Re-registering an existing
// name replaces the entry in place, preserving its original position, so a
// swapped-out plugin keeps its priority slot.
//
// The registry is populated once at construction time and treated as
// read-only thereafter; it is not safe for concurrent mutation.
type Registry struct {
	order  []string
	byName map[string]Plugin
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Plugin)}
}

// Register inserts the plugin, or replaces the existing entry of the same
// name in place. First-insertion order is preserved for all other names.
func (r *Registry) Register(p Plugin) {
	name := p.Name()
	if _, exists := r.byName[name]; !exists {
		r.order = append(r.order, name)
	}
	r.byName[name] = p
}

// Get returns the plugin registered under name, or nil.
func (r *Registry) Get(name string) Plugin {
	return r.byName[name]
}

// Has reports whether a plugin is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Unregister removes the named plugin, closing the gap in dispatch order.
// Returns false if no such plugin was registered.
func (r *Registry) Unregister(name string) bool {
	if _, ok := r.byName[name]; !ok {
		return false
	}
	delete(r.byName, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// All returns the registered plugins in dispatch order.
// The returned slice is a copy; mutating it does not affect the registry.
func (r *Registry) All() []Plugin {
	out := make([]Plugin, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Names returns the registered names in dispatch order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered plugins.
func (r *Registry) Len() int {
	return len(r.order)
}

// Clear removes all plugins.
func (r *Registry) Clear() {
	r.order = nil
	r.byName = make(map[string]Plugin)
}
