package heap

import "errors"

var (
	// ErrFull is returned by Insert when the heap is at capacity.
	ErrFull = errors.New("heap: full")

	// ErrEmpty is returned by Extract when the heap holds no elements.
	ErrEmpty = errors.New("heap: empty")

	// ErrShrink is returned by Resize when newCapacity < current size.
	ErrShrink = errors.New("heap: new capacity smaller than current size")
)
