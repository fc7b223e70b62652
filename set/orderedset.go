package set

import (
	"golang.org/x/exp/slices"
)

type nothing struct{}

// OrderedSet keeps items in the order they were first inserted.
// Removal is O(n).
type OrderedSet[T comparable] struct {
	m     map[T]nothing
	items []T
}

var _ Set[int] = (*OrderedSet[int])(nil)

func NewOrderedSet[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{
		m: make(map[T]nothing),
	}
}

func (s *OrderedSet[T]) Insert(item T) (modified bool) {
	if s.m == nil {
		s.m = make(map[T]nothing)
	}

	if _, found := s.m[item]; !found {
		s.m[item] = nothing{}
		s.items = append(s.items, item)
		modified = true
	}

	return modified
}

func (s *OrderedSet[T]) Clear() {
	s.m = make(map[T]nothing)
	s.items = nil
}

func (s *OrderedSet[T]) Remove(item T) bool {
	if _, found := s.m[item]; !found {
		return false
	}

	delete(s.m, item)
	if idx := slices.Index(s.items, item); idx >= 0 {
		s.items = slices.Delete(s.items, idx, idx+1)
	}

	return true
}

func (s *OrderedSet[T]) Items() []T {
	items := make([]T, len(s.items))
	copy(items, s.items)
	return items
}

func (s *OrderedSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *OrderedSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	for _, item := range sourceSet.Items() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *OrderedSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}
