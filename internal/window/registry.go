package window

import (
	"fmt"
	"sort"
)

// Registry owns window instances by id.
type Registry struct {
	windows map[ID]Window
	next    ID
}

// NewRegistry creates an empty registry. The first id handed out is 0.
func NewRegistry() *Registry {
	return &Registry{windows: make(map[ID]Window)}
}

// Insert stores w under a fresh id and returns it.
func (r *Registry) Insert(w Window) ID {
	id := r.next
	r.next++
	r.windows[id] = w
	return id
}

// Remove deletes the window with id and returns it.
func (r *Registry) Remove(id ID) (Window, bool) {
	w, ok := r.windows[id]
	if ok {
		delete(r.windows, id)
	}
	return w, ok
}

// Lookup returns the window with id.
func (r *Registry) Lookup(id ID) (Window, bool) {
	w, ok := r.windows[id]
	return w, ok
}

// MustGet returns the window with id. A missing id means the manager's
// invariants are broken, and it panics.
func (r *Registry) MustGet(id ID) Window {
	w, ok := r.windows[id]
	if !ok {
		panic(fmt.Sprintf("window: unknown window id %d", id))
	}
	return w
}

// Contains reports whether id is live.
func (r *Registry) Contains(id ID) bool {
	_, ok := r.windows[id]
	return ok
}

// Len returns the number of live windows.
func (r *Registry) Len() int {
	return len(r.windows)
}

// IDs returns all live ids in ascending order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.windows))
	for id := range r.windows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
