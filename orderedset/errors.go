package orderedset

import "errors"

var (
	// ErrEmpty is returned by cursor operations when the set holds no
	// elements.
	ErrEmpty = errors.New("orderedset: set is empty")
	// ErrOutOfBounds is returned when CursorNext/CursorPrevious is asked
	// to move past the last/first element.
	ErrOutOfBounds = errors.New("orderedset: cursor out of bounds")
)
