package set

type Set[T comparable] interface {
	Insert(item T) (modified bool)
	Remove(item T) bool
	Clear()
	Has(item T) bool
	Items() []T
	Len() int
	InsertSet(sourceSet Set[T]) (modified bool)
}

// New creates an empty insertion ordered set
func New[T comparable]() *OrderedSet[T] {
	return NewOrderedSet[T]()
}
