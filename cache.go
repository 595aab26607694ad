package cheb3d

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/cheb3d/internal/fft"
)

// DefaultCacheCapacity bounds each registry of a Cache created with a zero
// Capacity. Entries are keyed by axis length, so the bound is the number of
// distinct axis lengths a process may transform.
const DefaultCacheCapacity = 32

// CacheOptions configures NewCache.
type CacheOptions struct {
	// Capacity is the maximum number of entries per registry.
	// Zero selects DefaultCacheCapacity.
	Capacity int

	// Backend selects the real FFT implementation.
	Backend Backend
}

// planEntry owns a scratch buffer and the real FFT plan bound to it.
type planEntry struct {
	size int
	buf  []float64
	plan fft.RealPlan
}

// sineTable holds sin(i*pi/(np-1)) for i in [0, (np-1)/2).
type sineTable struct {
	np  int
	sin []float64
}

// Cache holds transform plans and sine tables for reuse across transforms.
// Plans are created on first use and never evicted. A Cache is safe for
// concurrent use; transforms sharing a Cache are serialized.
type Cache struct {
	mu sync.Mutex

	backend  Backend
	capacity int
	forward  []*planEntry
	inverse  []*planEntry
	sines    []*sineTable
}

// DefaultCache is used by functions created without an explicit Cache.
var DefaultCache = NewCache(CacheOptions{})

// NewCache returns an empty cache.
func NewCache(opts CacheOptions) *Cache {
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}

	return &Cache{backend: opts.Backend, capacity: capacity}
}

// Backend returns the FFT backend used for new plans.
func (c *Cache) Backend() Backend { return c.backend }

// Capacity returns the per-registry entry limit.
func (c *Cache) Capacity() int { return c.capacity }

// CacheStats reports the number of entries in each registry.
type CacheStats struct {
	Forward    int
	Inverse    int
	SineTables int
	Capacity   int
	Backend    Backend
}

func (s CacheStats) String() string {
	return fmt.Sprintf("backend=%v forward=%d/%d inverse=%d/%d sine=%d/%d",
		s.Backend, s.Forward, s.Capacity, s.Inverse, s.Capacity, s.SineTables, s.Capacity)
}

// Stats returns the current registry sizes.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStats{
		Forward:    len(c.forward),
		Inverse:    len(c.inverse),
		SineTables: len(c.sines),
		Capacity:   c.capacity,
		Backend:    c.backend,
	}
}

// Reset drops every cached plan and sine table.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.forward = nil
	c.inverse = nil
	c.sines = nil
}

// Prepare creates the forward and inverse plans and the sine table for an
// axis of np points, so later transforms of that length cannot fail on
// capacity.
func (c *Cache) Prepare(np int) error {
	if err := checkAxisLength(np); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.planLocked(fft.Forward, np-1); err != nil {
		return err
	}

	if _, err := c.planLocked(fft.Inverse, np-1); err != nil {
		return err
	}

	_, err := c.sinesLocked(np)

	return err
}

// with runs fn with the plan of the given direction for an axis of np points
// and the matching sine table. The cache stays locked while fn runs because
// the plan's scratch buffer is shared by every user of the entry.
func (c *Cache) with(dir fft.Direction, np int, fn func(e *planEntry, sines []float64)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, err := c.planLocked(dir, np-1)
	if err != nil {
		return err
	}

	sines, err := c.sinesLocked(np)
	if err != nil {
		return err
	}

	fn(e, sines)

	return nil
}

func (c *Cache) planLocked(dir fft.Direction, n int) (*planEntry, error) {
	registry := &c.forward
	if dir == fft.Inverse {
		registry = &c.inverse
	}

	for _, e := range *registry {
		if e.size == n {
			return e, nil
		}
	}

	if len(*registry) >= c.capacity {
		return nil, fmt.Errorf("%w: %s registry holds %d plans", ErrCacheFull, dir, c.capacity)
	}

	buf := make([]float64, n)

	plan, err := fft.NewRealPlan(c.backend, dir, buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s plan of size %d: %w", dir, n, err)
	}

	e := &planEntry{size: n, buf: buf, plan: plan}
	*registry = append(*registry, e)

	return e, nil
}

func (c *Cache) sinesLocked(np int) ([]float64, error) {
	for _, t := range c.sines {
		if t.np == np {
			return t.sin, nil
		}
	}

	if len(c.sines) >= c.capacity {
		return nil, fmt.Errorf("%w: sine registry holds %d tables", ErrCacheFull, c.capacity)
	}

	n := np - 1

	tab := make([]float64, n/2)
	for i := range tab {
		tab[i] = math.Sin(float64(i) * math.Pi / float64(n))
	}

	c.sines = append(c.sines, &sineTable{np: np, sin: tab})

	return tab, nil
}
