package dedup

// boundedCache memoizes computed values with a hard size cap. When the cap is
// hit the whole map is dropped rather than evicting per entry; the workloads
// here are batch runs where a full rebuild is cheaper than LRU bookkeeping.
type boundedCache[K comparable, V any] struct {
	max     int
	entries map[K]V
}

func newBoundedCache[K comparable, V any](max int) *boundedCache[K, V] {
	return &boundedCache[K, V]{
		max:     max,
		entries: make(map[K]V),
	}
}

func (c *boundedCache[K, V]) Get(key K) (V, bool) {
	v, ok := c.entries[key]
	return v, ok
}

func (c *boundedCache[K, V]) Put(key K, value V) {
	if len(c.entries) >= c.max {
		c.entries = make(map[K]V)
	}
	c.entries[key] = value
}

func (c *boundedCache[K, V]) Len() int {
	return len(c.entries)
}
