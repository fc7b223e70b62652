package assoc

import (
	"context"
	"iter"
	"sync"
)

// SyncList guards a List with a read-write mutex so it can be shared between goroutines.
type SyncList[K, V1, V2 comparable] struct {
	mux  sync.RWMutex
	list List[K, V1, V2]
}

func NewSync[K, V1, V2 comparable]() *SyncList[K, V1, V2] {
	return &SyncList[K, V1, V2]{}
}

func (s *SyncList[K, V1, V2]) Add(key K, value1 V1, value2 V2) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.list.Add(key, value1, value2)
}

func (s *SyncList[K, V1, V2]) Remove(key K) bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.list.Remove(key)
}

func (s *SyncList[K, V1, V2]) Clear() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.list.Clear()
}

func (s *SyncList[K, V1, V2]) ContainsKey(key K) bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.list.ContainsKey(key)
}

func (s *SyncList[K, V1, V2]) ContainsValue(value1 V1, value2 V2) bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.list.ContainsValue(value1, value2)
}

func (s *SyncList[K, V1, V2]) Lookup(key K) (Record[K, V1, V2], error) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.list.Lookup(key)
}

func (s *SyncList[K, V1, V2]) Get(key K) (Record[K, V1, V2], bool) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.list.Get(key)
}

func (s *SyncList[K, V1, V2]) LookupAll(key K) []Record[K, V1, V2] {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.list.LookupAll(key)
}

func (s *SyncList[K, V1, V2]) Keys() []K {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.list.Keys()
}

func (s *SyncList[K, V1, V2]) Len() int {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.list.Len()
}

func (s *SyncList[K, V1, V2]) Records() []Record[K, V1, V2] {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.list.Records()
}

// All iterates over a snapshot taken when iteration starts,
// so writers are never blocked by a slow consumer.
func (s *SyncList[K, V1, V2]) All() iter.Seq[Record[K, V1, V2]] {
	return func(yield func(Record[K, V1, V2]) bool) {
		for _, r := range s.Records() {
			if !yield(r) {
				return
			}
		}
	}
}

func (s *SyncList[K, V1, V2]) MustLookup(key K) Record[K, V1, V2] {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.list.MustLookup(key)
}

func (s *SyncList[K, V1, V2]) ForEach(f ForEachFn[K, V1, V2]) {
	for order, r := range s.Records() {
		f(r, order)
	}
}

func (s *SyncList[K, V1, V2]) ForEachUntil(f ForEachUntilFn[K, V1, V2]) *SyncList[K, V1, V2] {
	for order, r := range s.Records() {
		if canGoOn := f(r, order); !canGoOn {
			break
		}
	}

	return s
}

func (s *SyncList[K, V1, V2]) Filter(f FilterFn[K, V1, V2]) *SyncList[K, V1, V2] {
	result := NewSync[K, V1, V2]()
	for order, r := range s.Records() {
		if f(r, order) {
			result.list.records = append(result.list.records, r)
		}
	}

	return result
}

func (s *SyncList[K, V1, V2]) Clone() *SyncList[K, V1, V2] {
	return &SyncList[K, V1, V2]{list: List[K, V1, V2]{records: s.Records()}}
}

// Stream sends a snapshot of the records taken under the read lock.
// The channel is closed when all records are sent or ctx is done.
func (s *SyncList[K, V1, V2]) Stream(ctx context.Context) <-chan Record[K, V1, V2] {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.list.Stream(ctx)
}
