// Package graphsearch implements depth-first and breadth-first traversal
// over a graph.Graph, using the graph's own per-vertex flag as the
// visited marker instead of an auxiliary visited set.
//
// Errors:
//
//	ErrVertexNotFound   - the start vertex is not in the graph.
//	ErrAlreadyVisited   - the start vertex's flag already equals visitedFlag.
//
// Grounded on _examples/original_source/src/graphsearch/graphsearch.c: DFS
// recurses directly over the graph's neighbour iterator, while BFS drives
// a FIFO of (parent, edge, child) tuples and marks a vertex visited at
// enqueue time rather than at dequeue time, matching the original's
// yadsl_graphsearch_add_nb_to_queue_internal.
package graphsearch
