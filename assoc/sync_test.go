package assoc_test

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/r4dulf/DotNetLab2/assoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncList(t *testing.T) {
	t.Run("concurrent adds and reads", func(t *testing.T) {
		const workers = 10
		const perWorker = 100

		l := assoc.NewSync[int, int, int]()

		var wg sync.WaitGroup
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func(w int) {
				defer wg.Done()
				for i := 0; i < perWorker; i++ {
					l.Add(w, i, i*2)
					_ = l.ContainsKey(w)
					_ = l.Len()
				}
			}(w)
		}
		wg.Wait()

		assert.Equal(t, workers*perWorker, l.Len())
		assert.Len(t, l.Keys(), workers)
		for w := 0; w < workers; w++ {
			assert.Len(t, l.LookupAll(w), perWorker)
		}
	})

	t.Run("first match semantics", func(t *testing.T) {
		l := assoc.NewSync[string, string, string]()
		l.Add("k", "a", "1")
		l.Add("k", "b", "2")

		assert.True(t, l.Remove("k"))
		r, err := l.Lookup("k")
		require.NoError(t, err)
		assert.Equal(t, "b", r.Value1())
		assert.True(t, l.ContainsValue("b", "2"))
		assert.False(t, l.ContainsValue("a", "1"))

		assert.True(t, l.Remove("k"))
		_, err = l.Lookup("k")
		assert.True(t, errors.Is(err, assoc.ErrNotFound))
		_, found := l.Get("k")
		assert.False(t, found)
	})

	t.Run("iteration works on a snapshot", func(t *testing.T) {
		l := assoc.NewSync[int, string, string]()
		l.Add(1, "a", "")
		l.Add(2, "b", "")

		var keys []int
		for r := range l.All() {
			keys = append(keys, r.Key())
			l.Add(r.Key()+10, "late", "")
		}

		assert.Equal(t, []int{1, 2}, keys)
		assert.Equal(t, 4, l.Len())
		assert.Len(t, l.Records(), 4)

		l.Clear()
		assert.Equal(t, 0, l.Len())
	})
	t.Run("must lookup", func(t *testing.T) {
		l := assoc.NewSync[int, string, string]()
		l.Add(1, "a", "x")

		assert.Equal(t, "x", l.MustLookup(1).Value2())
		assert.Panics(t, func() { l.MustLookup(2) })

		// the read lock is released after the panic
		l.Add(2, "b", "y")
		assert.Equal(t, 2, l.Len())
	})

	t.Run("for each and for each until", func(t *testing.T) {
		l := assoc.NewSync[int, string, string]()
		for i := 0; i < 5; i++ {
			l.Add(i, "", "")
		}

		var keys []int
		l.ForEach(func(r rec, order int) {
			assert.Equal(t, r.Key(), order)
			keys = append(keys, r.Key())
			l.Add(r.Key()+10, "late", "")
		})
		assert.Equal(t, []int{0, 1, 2, 3, 4}, keys)
		assert.Equal(t, 10, l.Len())

		var visited []int
		l.ForEachUntil(func(r rec, order int) bool {
			visited = append(visited, order)
			return order < 2
		})
		assert.Equal(t, []int{0, 1, 2}, visited)
	})

	t.Run("filter and clone are independent", func(t *testing.T) {
		l := assoc.NewSync[int, string, string]()
		for i := 0; i < 6; i++ {
			l.Add(i, "", "")
		}

		even := l.Filter(func(r rec, order int) bool {
			return r.Key()%2 == 0
		})
		assert.Equal(t, []int{0, 2, 4}, even.Keys())

		clone := l.Clone()
		clone.Remove(0)
		clone.Add(10, "", "")
		even.Add(7, "", "")

		assert.Equal(t, 6, l.Len())
		assert.True(t, l.ContainsKey(0))
		assert.False(t, l.ContainsKey(10))
		assert.False(t, l.ContainsKey(7))
		assert.Equal(t, 6, clone.Len())
	})

	t.Run("stream while other goroutines write", func(t *testing.T) {
		const n = 100

		l := assoc.NewSync[int, int, int]()
		for i := 0; i < n; i++ {
			l.Add(i, i, i)
		}

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < n; i++ {
				l.Add(n+i, i, i)
				l.Remove(n + i)
			}
		}()

		var received []int
		go func() {
			defer wg.Done()
			for r := range l.Stream(context.Background()) {
				received = append(received, r.Key())
			}
		}()
		wg.Wait()

		require.GreaterOrEqual(t, len(received), n)
		for i := 0; i < n; i++ {
			assert.Equal(t, i, received[i])
		}
		assert.Equal(t, n, l.Len())
	})

	t.Run("cancelled stream closes the channel", func(t *testing.T) {
		l := assoc.NewSync[int, string, string]()
		for i := 0; i < 100; i++ {
			l.Add(i, "", "")
		}

		ctx, cancel := context.WithCancel(context.Background())
		ch := l.Stream(ctx)
		<-ch
		cancel()

		received := 0
		for range ch {
			received++
		}
		assert.Less(t, received, 100)
	})
}
