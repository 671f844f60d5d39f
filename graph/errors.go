package graph

import "errors"

var (
	// ErrVertexNotFound is returned when an operation references a vertex
	// that is not in the graph.
	ErrVertexNotFound = errors.New("graph: vertex not found")
	// ErrEdgeExists is returned by AddEdge when the edge is already
	// present.
	ErrEdgeExists = errors.New("graph: edge already exists")
	// ErrEdgeNotFound is returned when an operation references an edge
	// that is not in the graph.
	ErrEdgeNotFound = errors.New("graph: edge not found")
	// ErrEmpty is returned by IterVertex when the graph has no vertices.
	ErrEmpty = errors.New("graph: graph is empty")
	// ErrNoEdges is returned by NextNeighbour when the vertex has no
	// neighbours in the requested direction.
	ErrNoEdges = errors.New("graph: vertex has no edges in that direction")
)
