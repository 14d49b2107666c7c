package inventory

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds loaded item definitions indexed by ID. It is safe for
// concurrent use.
type Registry struct {
	mu    sync.RWMutex
	items map[string]*Item
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]*Item)}
}

// Register adds item to the registry.
//
// Precondition: item must not be nil and must pass Validate.
// Postcondition: Item(item.ID) returns (item, true); returns an error if the ID
// is already registered.
func (r *Registry) Register(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("inventory: item ID %q already registered", item.ID)
	}
	r.items[item.ID] = item
	return nil
}

// Item returns the definition for id.
func (r *Registry) Item(id string) (*Item, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.items[id]
	return it, ok
}

// All returns every registered item sorted by ID.
func (r *Registry) All() []*Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
