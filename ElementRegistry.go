package main

import (
	"fmt"
	"gridCore/contracts"
	"sync"
)

type FocusListener func(elementId string)

// ElementRegistry holds the focusable elements currently rendered and which one has focus
type ElementRegistry struct {
	mu        sync.RWMutex
	elements  map[string]bool
	focused   string
	listeners []FocusListener
}

func NewElementRegistry() *ElementRegistry {
	return &ElementRegistry{elements: map[string]bool{}}
}

func (r *ElementRegistry) OnFocus(listener FocusListener) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listeners = append(r.listeners, listener)
}

// Replace swaps the rendered element set. Focus on an element that disappeared is dropped.
func (r *ElementRegistry) Replace(elementIds []string) {
	elements := make(map[string]bool, len(elementIds))
	for _, elementId := range elementIds {
		elements[elementId] = true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.elements = elements
	if !elements[r.focused] {
		r.focused = ""
	}
}

func (r *ElementRegistry) Has(elementId string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.elements[elementId]
}

func (r *ElementRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.elements)
}

func (r *ElementRegistry) Focused() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.focused
}

func (r *ElementRegistry) Focus(elementId string) error {
	r.mu.Lock()
	if !r.elements[elementId] {
		r.mu.Unlock()
		return fmt.Errorf("%s: %w", elementId, contracts.FocusTargetMissingError)
	}

	r.focused = elementId
	listeners := make([]FocusListener, len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	for _, listener := range listeners {
		listener(elementId)
	}
	return nil
}

var _ contracts.Focuser = (*ElementRegistry)(nil)
