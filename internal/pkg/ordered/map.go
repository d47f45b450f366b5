// Package ordered provides map and set containers that iterate in
// first-insertion order.
package ordered

import "iter"

// Map is a map whose iteration order is the order in which keys were first
// inserted. Setting an existing key replaces its value but keeps its position.
// The zero value is not usable; create instances with NewMap.
type Map[K comparable, V any] struct {
	values map[K]V
	keys   []K
}

// NewMap returns an empty Map with room for sizeHint keys.
func NewMap[K comparable, V any](sizeHint int) *Map[K, V] {
	return &Map[K, V]{
		values: make(map[K]V, sizeHint),
		keys:   make([]K, 0, sizeHint),
	}
}

// Set stores value under key.
func (m *Map[K, V]) Set(key K, value V) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.values[key]
	return ok
}

func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// All yields key/value pairs in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}
