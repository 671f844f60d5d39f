package orderedset

// LessFunc reports whether a sorts strictly before b. It must define a
// strict weak order; two values for which neither a<b nor b<a holds are
// treated as equal.
type LessFunc[T any] func(a, b T) bool

// item is a single node of the doubly linked, order-maintaining list.
type item[T any] struct {
	next, prev *item[T]
	value      T
}

// Set is a generic ordered set. The zero value is not usable; construct
// one with New.
type Set[T any] struct {
	first, last    *item[T]
	internalCursor *item[T]
	externalCursor *item[T]
	size           int
	less           LessFunc[T]
	free           func(T)
}

// Option configures a Set at construction time.
type Option[T any] func(*Set[T])

// WithFree sets the hook invoked once per removed element (on Remove) and
// once per remaining element (on Destroy).
func WithFree[T any](free func(T)) Option[T] {
	return func(s *Set[T]) { s.free = free }
}

// New creates an empty Set ordered by less.
func New[T any](less LessFunc[T], opts ...Option[T]) *Set[T] {
	s := &Set[T]{less: less}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the number of elements stored.
func (s *Set[T]) Len() int { return s.size }

// locate walks outward from the internal cursor looking for x, stopping
// at the first direction reversal (the zig-zag locality search). It
// returns the node holding x, or nil if x is not present.
func (s *Set[T]) locate(x T) *item[T] {
	var direction int
	p := s.internalCursor
	for p != nil {
		var current int
		switch {
		case s.less(x, p.value):
			current = -1
			p = p.prev
		case s.less(p.value, x):
			current = 1
			p = p.next
		default:
			return p
		}
		if current == -direction {
			break
		}
		direction = current
	}
	return nil
}

// Contains reports whether x (per the strict weak order) is present.
func (s *Set[T]) Contains(x T) bool {
	return s.locate(x) != nil
}

// Add inserts x into the set, maintaining sort order, and makes x the new
// locality anchor. It reports whether x was already present; on a
// duplicate the set is left unchanged.
func (s *Set[T]) Add(x T) bool {
	if s.locate(x) != nil {
		return true
	}

	n := &item[T]{value: x}
	p := s.internalCursor
	s.internalCursor = n

	if p == nil {
		s.externalCursor = n
		s.first = n
		s.last = n
		s.size++
		return false
	}

	var direction int
	for {
		var current int
		if s.less(x, p.value) {
			current = -1
			p = p.prev
		} else {
			current = 1
		}
		if current == -direction {
			s.linkAfter(n, p)
			s.size++
			return false
		}
		if current == 1 {
			p = p.next
		}
		direction = current
		if p == nil {
			break
		}
	}

	if direction == -1 {
		n.next = s.first
		s.first.prev = n
		s.first = n
	} else {
		n.prev = s.last
		s.last.next = n
		s.last = n
	}
	s.size++
	return false
}

// linkAfter splices n into the list immediately after p.
func (s *Set[T]) linkAfter(n, p *item[T]) {
	n.prev = p
	n.next = p.next
	if p.next != nil {
		p.next.prev = n
	} else {
		s.last = n
	}
	p.next = n
}

// Remove deletes x from the set, if present, returning the removed value
// and invoking the configured free hook on it.
func (s *Set[T]) Remove(x T) (T, bool) {
	var zero T
	p := s.locate(x)
	if p == nil {
		return zero, false
	}

	if p.next == nil {
		s.last = p.prev
	}
	if p.prev != nil {
		if p == s.internalCursor {
			s.internalCursor = p.prev
		}
		if p == s.externalCursor {
			s.externalCursor = p.prev
		}
		p.prev.next = p.next
	} else {
		if p == s.internalCursor {
			s.internalCursor = p.next
		}
		if p == s.externalCursor {
			s.externalCursor = p.next
		}
		s.first = p.next
	}
	if p.next != nil {
		p.next.prev = p.prev
	}

	s.size--
	if s.free != nil {
		s.free(p.value)
	}
	return p.value, true
}

// Replace inserts x into the set, maintaining sort order. If an element
// comparing equal to x (per the strict weak order) is already present,
// its value is overwritten in place and the displaced value is returned
// with ok set to true; the free hook is not invoked on it, since it is
// handed back to the caller rather than released. Otherwise x is
// inserted as with Add and ok is false.
func (s *Set[T]) Replace(x T) (T, bool) {
	if p := s.locate(x); p != nil {
		old := p.value
		p.value = x
		s.internalCursor = p
		return old, true
	}
	s.Add(x)
	var zero T
	return zero, false
}

// Filter scans at most Len() elements starting from the internal cursor,
// wrapping around to the first element when the end is reached, and
// returns the first one for which pred reports true.
func (s *Set[T]) Filter(pred func(T) bool) (T, bool) {
	var zero T
	remaining := s.size
	p := s.internalCursor
	for remaining > 0 && p != nil {
		remaining--
		if pred(p.value) {
			return p.value, true
		}
		if p.next != nil {
			p = p.next
		} else {
			p = s.first
		}
	}
	return zero, false
}

// Cursor returns the element currently pointed to by the external cursor.
func (s *Set[T]) Cursor() (T, error) {
	var zero T
	if s.externalCursor == nil {
		return zero, ErrEmpty
	}
	return s.externalCursor.value, nil
}

// CursorNext advances the external cursor to the next element.
func (s *Set[T]) CursorNext() error {
	if s.externalCursor == nil {
		return ErrEmpty
	}
	if s.externalCursor.next == nil {
		return ErrOutOfBounds
	}
	s.externalCursor = s.externalCursor.next
	return nil
}

// CursorPrevious moves the external cursor to the previous element.
func (s *Set[T]) CursorPrevious() error {
	if s.externalCursor == nil {
		return ErrEmpty
	}
	if s.externalCursor.prev == nil {
		return ErrOutOfBounds
	}
	s.externalCursor = s.externalCursor.prev
	return nil
}

// CursorFirst moves the external cursor to the smallest element.
func (s *Set[T]) CursorFirst() error {
	if s.externalCursor == nil {
		return ErrEmpty
	}
	s.externalCursor = s.first
	return nil
}

// CursorLast moves the external cursor to the largest element.
func (s *Set[T]) CursorLast() error {
	if s.externalCursor == nil {
		return ErrEmpty
	}
	s.externalCursor = s.last
	return nil
}

// Destroy releases the set, invoking the configured free hook (if any)
// exactly once per remaining element, from smallest to largest.
func (s *Set[T]) Destroy() {
	if s.free != nil {
		for p := s.first; p != nil; p = p.next {
			s.free(p.value)
		}
	}
	s.first = nil
	s.last = nil
	s.internalCursor = nil
	s.externalCursor = nil
	s.size = 0
}
