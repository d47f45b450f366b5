package ordered

import "iter"

// Set is a set that iterates in first-insertion order.
type Set[K comparable] struct {
	m *Map[K, struct{}]
}

func NewSet[K comparable](sizeHint int) *Set[K] {
	return &Set[K]{m: NewMap[K, struct{}](sizeHint)}
}

// Add inserts key. Adding a key that is already present is a no-op.
func (s *Set[K]) Add(key K) {
	s.m.Set(key, struct{}{})
}

func (s *Set[K]) Has(key K) bool {
	return s.m.Has(key)
}

func (s *Set[K]) Len() int {
	return s.m.Len()
}

// All yields members in insertion order.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.m.All() {
			if !yield(k) {
				return
			}
		}
	}
}
