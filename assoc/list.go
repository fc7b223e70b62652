package assoc

import (
	"context"
	"iter"

	"github.com/r4dulf/DotNetLab2/set"
	"golang.org/x/exp/slices"
)

type (
	// List is an ordered multi-value association list. The zero value is an empty list ready to use.
	List[K, V1, V2 comparable] struct {
		records []Record[K, V1, V2]
	}

	FilterFn[K, V1, V2 comparable]       func(r Record[K, V1, V2], order int) bool
	ForEachFn[K, V1, V2 comparable]      func(r Record[K, V1, V2], order int)
	ForEachUntilFn[K, V1, V2 comparable] func(r Record[K, V1, V2], order int) bool
)

func New[K, V1, V2 comparable]() *List[K, V1, V2] {
	return &List[K, V1, V2]{}
}

// Add appends a record to the end of the list, even if the key is already present
func (l *List[K, V1, V2]) Add(key K, value1 V1, value2 V2) {
	l.records = append(l.records, NewRecord(key, value1, value2))
}

// Remove deletes the first record with the given key
func (l *List[K, V1, V2]) Remove(key K) bool {
	idx := l.indexOf(key)
	if idx < 0 {
		return false
	}

	l.records = slices.Delete(l.records, idx, idx+1)
	return true
}

func (l *List[K, V1, V2]) ContainsKey(key K) bool {
	return l.indexOf(key) >= 0
}

func (l *List[K, V1, V2]) ContainsValue(value1 V1, value2 V2) bool {
	return slices.ContainsFunc(l.records, func(r Record[K, V1, V2]) bool {
		return r.value1 == value1 && r.value2 == value2
	})
}

// Lookup returns the first record with the given key or an error wrapping ErrNotFound
func (l *List[K, V1, V2]) Lookup(key K) (Record[K, V1, V2], error) {
	r, found := l.Get(key)
	if !found {
		return r, notFound(key)
	}

	return r, nil
}

// MustLookup is like Lookup but panics when the key is missing
func (l *List[K, V1, V2]) MustLookup(key K) Record[K, V1, V2] {
	r, err := l.Lookup(key)
	if err != nil {
		panic(err)
	}

	return r
}

func (l *List[K, V1, V2]) Get(key K) (Record[K, V1, V2], bool) {
	idx := l.indexOf(key)
	if idx < 0 {
		var zero Record[K, V1, V2]
		return zero, false
	}

	return l.records[idx], true
}

// LookupAll returns every record with the given key in list order
func (l *List[K, V1, V2]) LookupAll(key K) []Record[K, V1, V2] {
	var result []Record[K, V1, V2]
	for _, r := range l.records {
		if r.key == key {
			result = append(result, r)
		}
	}
	return result
}

// Keys returns distinct keys in order of first appearance
func (l *List[K, V1, V2]) Keys() []K {
	keys := set.NewOrderedSet[K]()
	for _, r := range l.records {
		keys.Insert(r.key)
	}
	return keys.Items()
}

func (l *List[K, V1, V2]) Len() int {
	return len(l.records)
}

func (l *List[K, V1, V2]) Clear() {
	l.records = nil
}

// Records returns a copy of the records in list order
func (l *List[K, V1, V2]) Records() []Record[K, V1, V2] {
	return slices.Clone(l.records)
}

// All iterates the records in list order. The list must not be modified
// while the iteration is in progress.
func (l *List[K, V1, V2]) All() iter.Seq[Record[K, V1, V2]] {
	return func(yield func(Record[K, V1, V2]) bool) {
		for _, r := range l.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Stream sends a snapshot of the records to the returned channel.
// The channel is closed when all records are sent or ctx is done.
func (l *List[K, V1, V2]) Stream(ctx context.Context) <-chan Record[K, V1, V2] {
	resultCh := make(chan Record[K, V1, V2])
	records := l.Records()

	go func() {
		defer close(resultCh)

		for _, r := range records {
			select {
			case <-ctx.Done():
				return
			case resultCh <- r:
			}
		}
	}()

	return resultCh
}

func (l *List[K, V1, V2]) ForEach(f ForEachFn[K, V1, V2]) {
	for order, r := range l.records {
		f(r, order)
	}
}

func (l *List[K, V1, V2]) ForEachUntil(f ForEachUntilFn[K, V1, V2]) *List[K, V1, V2] {
	for order, r := range l.records {
		if canGoOn := f(r, order); !canGoOn {
			break
		}
	}

	return l
}

func (l *List[K, V1, V2]) Filter(f FilterFn[K, V1, V2]) *List[K, V1, V2] {
	result := New[K, V1, V2]()
	for order, r := range l.records {
		if f(r, order) {
			result.records = append(result.records, r)
		}
	}

	return result
}

func (l *List[K, V1, V2]) Clone() *List[K, V1, V2] {
	return &List[K, V1, V2]{records: slices.Clone(l.records)}
}

func (l *List[K, V1, V2]) indexOf(key K) int {
	return slices.IndexFunc(l.records, func(r Record[K, V1, V2]) bool {
		return r.key == key
	})
}
