package heap

// PriorityFunc reports whether a must sit above b in the heap: true iff a
// is of higher heap priority than b.
type PriorityFunc[T any] func(a, b T) bool

// Heap is a generic, array-backed binary heap.
//
// The tree is embedded in arr[0:size], with the children of index i at
// 2i+1 and 2i+2 (spec.md §4.2). Capacity only grows or shrinks via Resize.
//
// The zero value is not usable; construct one with New.
type Heap[T any] struct {
	arr    []T
	size   int
	prefer PriorityFunc[T]
	free   func(T)
}

// Option configures a Heap at construction time.
type Option[T any] func(*Heap[T])

// WithFree sets the hook invoked once per remaining element on Destroy.
func WithFree[T any](free func(T)) Option[T] {
	return func(h *Heap[T]) { h.free = free }
}

// New creates an empty Heap with the given initial capacity and mandatory
// priority predicate.
func New[T any](capacity int, prefer PriorityFunc[T], opts ...Option[T]) *Heap[T] {
	h := &Heap[T]{
		arr:    make([]T, capacity),
		prefer: prefer,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Len returns the number of elements currently stored.
func (h *Heap[T]) Len() int { return h.size }

// Cap returns the current capacity.
func (h *Heap[T]) Cap() int { return len(h.arr) }

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

// Insert appends object at the first empty slot and sifts it up.
//
// Returns ErrFull if the heap is at capacity.
func (h *Heap[T]) Insert(object T) error {
	if h.size == len(h.arr) {
		return ErrFull
	}
	i := h.size
	h.arr[i] = object
	h.size++
	for i != 0 {
		p := parent(i)
		if h.prefer(h.arr[i], h.arr[p]) {
			h.arr[i], h.arr[p] = h.arr[p], h.arr[i]
			i = p
		} else {
			break
		}
	}
	return nil
}

// Extract removes and returns the root (highest-priority) element,
// restoring the heap invariant by moving the tail element to the root and
// sifting it down.
//
// Returns ErrEmpty if the heap holds no elements.
func (h *Heap[T]) Extract() (T, error) {
	var zero T
	if h.size == 0 {
		return zero, ErrEmpty
	}
	top := h.arr[0]
	h.size--
	h.arr[0] = h.arr[h.size]
	h.arr[h.size] = zero

	i := 0
	for {
		l, r := left(i), right(i)
		if l >= h.size {
			break
		}
		if r >= h.size {
			if h.prefer(h.arr[l], h.arr[i]) {
				h.arr[i], h.arr[l] = h.arr[l], h.arr[i]
			}
			break
		}
		if !h.prefer(h.arr[l], h.arr[i]) && !h.prefer(h.arr[r], h.arr[i]) {
			break
		}
		pick := l
		if h.prefer(h.arr[r], h.arr[l]) {
			pick = r
		}
		h.arr[i], h.arr[pick] = h.arr[pick], h.arr[i]
		i = pick
	}
	return top, nil
}

// Resize requests a new capacity.
//
// Returns ErrShrink if newCapacity < current size; equal capacity is a
// successful no-op.
func (h *Heap[T]) Resize(newCapacity int) error {
	if newCapacity < h.size {
		return ErrShrink
	}
	if newCapacity == len(h.arr) {
		return nil
	}
	arr := make([]T, newCapacity)
	copy(arr, h.arr[:h.size])
	h.arr = arr
	return nil
}

// Destroy releases the heap, invoking the configured free hook (if any)
// exactly once per remaining element.
func (h *Heap[T]) Destroy() {
	if h.free != nil {
		for i := 0; i < h.size; i++ {
			h.free(h.arr[i])
		}
	}
	h.arr = nil
	h.size = 0
}
