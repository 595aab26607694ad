package cheb3d

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/cheb3d/internal/fft"
)

func TestCacheReusesEntries(t *testing.T) {
	t.Parallel()

	c := NewCache(CacheOptions{})
	require.Equal(t, DefaultCacheCapacity, c.Capacity())
	require.Equal(t, BackendNative, c.Backend())

	var first *planEntry

	require.NoError(t, c.with(fft.Forward, 9, func(e *planEntry, sines []float64) {
		first = e
		require.Equal(t, 8, e.size)
		require.Len(t, e.buf, 8)
		require.Len(t, sines, 4)
	}))

	require.NoError(t, c.with(fft.Forward, 9, func(e *planEntry, _ []float64) {
		require.Same(t, first, e)
	}))

	require.NoError(t, c.with(fft.Inverse, 9, func(e *planEntry, _ []float64) {
		require.NotSame(t, first, e)
	}))

	stats := c.Stats()
	require.Equal(t, 1, stats.Forward)
	require.Equal(t, 1, stats.Inverse)
	require.Equal(t, 1, stats.SineTables)
	require.Contains(t, stats.String(), "forward=1/32")

	c.Reset()
	require.Equal(t, CacheStats{Capacity: DefaultCacheCapacity, Backend: BackendNative}, c.Stats())
}

func TestCacheSineTable(t *testing.T) {
	t.Parallel()

	c := NewCache(CacheOptions{})

	require.NoError(t, c.with(fft.Forward, 13, func(_ *planEntry, sines []float64) {
		require.Len(t, sines, 6)
		require.InDelta(t, 0, sines[0], 0)
		require.InDelta(t, 0.5, sines[2], 1e-15)
		require.InDelta(t, math.Sin(5*math.Pi/12), sines[5], 1e-15)
	}))
}

func TestCacheCapacity(t *testing.T) {
	t.Parallel()

	c := NewCache(CacheOptions{Capacity: 2})

	require.NoError(t, c.Prepare(5))
	require.NoError(t, c.Prepare(7))
	require.NoError(t, c.Prepare(5), "existing sizes do not count against capacity")

	err := c.Prepare(9)
	require.ErrorIs(t, err, ErrCacheFull)

	tr := NewTransformer(c)
	require.ErrorIs(t, tr.Forward(randomTensor(t, 1, 11, 1, 1)), ErrCacheFull)
	require.NoError(t, tr.Forward(randomTensor(t, 1, 7, 5, 1)))
}

func TestCachePrepareRejectsBadLength(t *testing.T) {
	t.Parallel()

	c := NewCache(CacheOptions{})
	for _, np := range []int{1, 3, 4, 6, 10} {
		require.ErrorIs(t, c.Prepare(np), ErrAxisLength, "np=%d", np)
	}

	require.Zero(t, c.Stats().Forward)
}

func TestCacheConcurrentUse(t *testing.T) {
	t.Parallel()

	c := NewCache(CacheOptions{})
	tr := NewTransformer(c)

	var wg sync.WaitGroup

	errs := make(chan error, 8)

	for w := range 8 {
		orig := randomTensor(t, int64(w), 9, 5, 7)

		wg.Add(1)

		go func() {
			defer wg.Done()

			work := orig.Clone()

			if err := tr.Forward(work); err != nil {
				errs <- err
				return
			}

			if err := tr.Inverse(work); err != nil {
				errs <- err
				return
			}

			for i, v := range work.Data() {
				if d := v - orig.Data()[i]; d > tol || d < -tol {
					errs <- fmt.Errorf("sample %d: got %g want %g", i, v, orig.Data()[i])
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	require.Equal(t, 3, c.Stats().Forward)
}
