package ordmap

import "github.com/guidanoli/yadsl-go/orderedset"

type entry[K any, V any] struct {
	key   K
	value V
}

// Map is a generic key-ordered map: Set/Get/Delete keyed by K, with
// entries kept in the order less defines over keys. Map has no
// iteration method.
//
// The zero value is not usable; construct one with New.
type Map[K any, V any] struct {
	set  *orderedset.Set[entry[K, V]]
	less func(a, b K) bool
}

type config[K any, V any] struct {
	free func(K, V)
}

// Option configures a Map at construction time.
type Option[K any, V any] func(*config[K, V])

// WithFree sets the hook invoked once per removed (key, value) pair (on
// Delete) and once per remaining pair (on Destroy).
func WithFree[K any, V any](free func(K, V)) Option[K, V] {
	return func(c *config[K, V]) { c.free = free }
}

// New creates an empty Map whose keys are ordered by less.
func New[K any, V any](less func(a, b K) bool, opts ...Option[K, V]) *Map[K, V] {
	cfg := &config[K, V]{}
	for _, opt := range opts {
		opt(cfg)
	}

	entryLess := func(a, b entry[K, V]) bool { return less(a.key, b.key) }
	var setOpts []orderedset.Option[entry[K, V]]
	if cfg.free != nil {
		setOpts = append(setOpts, orderedset.WithFree(func(e entry[K, V]) { cfg.free(e.key, e.value) }))
	}

	return &Map[K, V]{
		set:  orderedset.New(entryLess, setOpts...),
		less: less,
	}
}

// Len returns the number of (key, value) pairs stored.
func (m *Map[K, V]) Len() int { return m.set.Len() }

func (m *Map[K, V]) equalKey(a, b K) bool {
	return !m.less(a, b) && !m.less(b, a)
}

// Get returns the value associated with k, if present.
func (m *Map[K, V]) Get(k K) (V, bool) {
	var zero K
	_ = zero
	found, ok := m.set.Filter(func(e entry[K, V]) bool { return m.equalKey(e.key, k) })
	if !ok {
		var zeroV V
		return zeroV, false
	}
	return found.value, true
}

// Set associates k with v, overwriting any previous value. It returns the
// previous value and whether k was already present. On an overwrite, the
// displaced value is handed back without being passed to the configured
// free hook; only Delete and Destroy release values.
func (m *Map[K, V]) Set(k K, v V) (V, bool) {
	old, existed := m.set.Replace(entry[K, V]{key: k, value: v})
	return old.value, existed
}

// Delete removes k from the map, if present, returning the removed value.
func (m *Map[K, V]) Delete(k K) (V, bool) {
	removed, ok := m.set.Remove(entry[K, V]{key: k})
	if !ok {
		var zero V
		return zero, false
	}
	return removed.value, true
}

// Destroy releases the map, invoking the configured free hook (if any)
// exactly once per remaining (key, value) pair.
func (m *Map[K, V]) Destroy() {
	m.set.Destroy()
}
