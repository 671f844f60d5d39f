// Package graph implements a generic directed/undirected graph over
// caller-owned vertex and edge objects.
//
// Errors:
//
//	ErrVertexNotFound - an operation referenced a non-existent vertex.
//	ErrEdgeExists     - AddEdge called with an edge already present.
//	ErrEdgeNotFound   - an operation referenced a non-existent edge.
//	ErrEmpty          - IterVertex called on a graph with no vertices.
//	ErrNoEdges        - NextNeighbour called on a vertex with no neighbours.
//
// Adjacency is stored per vertex as two orderedset.Set[*Edge[V, E]]
// (out-edges and in-edges), matching
// _examples/original_source/src/graph/graph.c's design. Undirected graphs
// canonicalise an edge's source/destination by the caller-supplied
// VertexLess order rather than by pointer address (invariant II of the
// original), since Go generics have no portable notion of address order
// over an arbitrary T. BOTH-direction neighbour iteration interleaves the
// in-edge and out-edge adjacency sets using the same counter-based
// algorithm as the original
// (yadsl_graph_adj_list_counters_reset_internal / the total_next / total_prev
// internal functions), reset whenever an edge touching the vertex is added
// or removed.
package graph
