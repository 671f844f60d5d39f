package graphsearch

import "errors"

var (
	// ErrVertexNotFound is returned when the start vertex is not in the
	// graph.
	ErrVertexNotFound = errors.New("graphsearch: start vertex not found")
	// ErrAlreadyVisited is returned when the start vertex's flag already
	// equals the traversal's visitedFlag.
	ErrAlreadyVisited = errors.New("graphsearch: start vertex already visited")
)
