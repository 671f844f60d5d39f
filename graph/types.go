package graph

import "github.com/guidanoli/yadsl-go/orderedset"

// VertexLess orders two vertex objects. It must define a strict weak
// order and is used both to keep the vertex set searchable and, for
// undirected graphs, to canonicalise an edge's source/destination.
type VertexLess[V any] func(a, b V) bool

// Direction selects which adjacency of a vertex to consult.
type Direction int

const (
	// Out selects edges for which the vertex is the source.
	Out Direction = iota
	// In selects edges for which the vertex is the destination.
	In
	// Both interleaves Out and In edges.
	Both
)

// IterDir selects the direction of a cursor-style iteration step.
type IterDir int

const (
	// Next advances the cursor forward (wrapping to the first element).
	Next IterDir = iota
	// Previous moves the cursor backward (wrapping to the last element).
	Previous
)

// Vertex is a graph vertex carrying a caller-owned object.
type Vertex[V, E any] struct {
	Object V

	flag int

	outEdges *orderedset.Set[*Edge[V, E]]
	inEdges  *orderedset.Set[*Edge[V, E]]

	outToIterate int
	inToIterate  int
}

// Edge is a graph edge carrying a caller-owned object and pointers to its
// endpoints. For an undirected graph, Source/Destination are canonicalised
// by the graph's VertexLess rather than by the order AddEdge was called
// with.
type Edge[V, E any] struct {
	Object      E
	Source      *Vertex[V, E]
	Destination *Vertex[V, E]

	seq uint64
}
