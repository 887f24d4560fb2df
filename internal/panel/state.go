// Package panel holds the visibility state of the collapsible portfolio panel.
package panel

import (
	"slices"
	"sync"
)

var defaultItems = []string{"Project 1", "Project 2", "Project 3", "Project 4"}

// DefaultItems returns a copy of the fixed portfolio list shown when no items are configured.
func DefaultItems() []string {
	return slices.Clone(defaultItems)
}

// Listener is called with the new expanded value after every Toggle.
type Listener func(expanded bool)

// State is owned by a single screen instance. It starts collapsed and only changes
// via Toggle.
type State struct {
	expanded    bool
	items       []string
	listeners   map[int]Listener
	order       []int
	nextID      int
	listenersMu *sync.RWMutex
}

// New returns a collapsed panel state for the given items. DefaultItems is used
// when items is empty.
func New(items ...string) *State {
	if len(items) == 0 {
		items = defaultItems
	}

	return &State{
		items:       slices.Clone(items),
		listeners:   make(map[int]Listener),
		listenersMu: &sync.RWMutex{},
	}
}

// Expanded reports if the item list is currently visible.
func (s *State) Expanded() bool {
	return s.expanded
}

// Toggle flips the expanded flag and notifies all listeners in the order they subscribed.
func (s *State) Toggle() {
	s.expanded = !s.expanded

	s.listenersMu.RLock()
	listeners := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		listeners = append(listeners, s.listeners[id])
	}
	s.listenersMu.RUnlock()

	for _, listener := range listeners {
		listener(s.expanded)
	}
}

// Subscribe registers a listener for state changes. The returned func removes it
// and is safe to call more than once.
func (s *State) Subscribe(listener Listener) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.order = append(s.order, id)

	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()

		if _, found := s.listeners[id]; !found {
			return
		}

		delete(s.listeners, id)
		s.order = slices.DeleteFunc(s.order, func(v int) bool { return v == id })
	}
}

// Items returns the full fixed list in display order.
func (s *State) Items() []string {
	return slices.Clone(s.items)
}

// Visible returns the items that should be rendered for the current state.
func (s *State) Visible() []string {
	if !s.expanded {
		return nil
	}

	return s.Items()
}
