package graphsearch

import (
	"github.com/guidanoli/yadsl-go/graph"
	"github.com/guidanoli/yadsl-go/queue"
)

// VertexVisitFunc is called once for each vertex a traversal visits.
type VertexVisitFunc[V any] func(vertex V)

// EdgeVisitFunc is called once for each edge a traversal follows, in the
// direction it was followed (source -> destination).
type EdgeVisitFunc[V, E any] func(source V, edge E, destination V)

// traversalDirection picks the adjacency a traversal walks: out-edges
// only for a directed graph, both in- and out-edges for an undirected
// one, matching the original's is_directed-gated edge_direction choice.
func traversalDirection[V, E any](g *graph.Graph[V, E]) graph.Direction {
	if g.IsDirected() {
		return graph.Out
	}
	return graph.Both
}

// DFS performs a recursive depth-first traversal of g starting at
// start, marking each visited vertex's flag as visitedFlag. It calls
// onVertex when a vertex is first visited and onEdge (if non-nil) for
// each edge followed to reach an unvisited neighbour; already-visited
// neighbours are skipped silently.
//
// Returns ErrVertexNotFound if start is not in g, or ErrAlreadyVisited
// if start's flag already equals visitedFlag.
func DFS[V, E any](g *graph.Graph[V, E], start V, visitedFlag int, onVertex VertexVisitFunc[V], onEdge EdgeVisitFunc[V, E]) error {
	flag, err := g.GetFlag(start)
	if err != nil {
		return ErrVertexNotFound
	}
	if flag == visitedFlag {
		return ErrAlreadyVisited
	}

	w := &dfsWalker[V, E]{
		g:        g,
		flag:     visitedFlag,
		dir:      traversalDirection(g),
		onVertex: onVertex,
		onEdge:   onEdge,
	}
	return w.visit(start)
}

type dfsWalker[V, E any] struct {
	g        *graph.Graph[V, E]
	flag     int
	dir      graph.Direction
	onVertex VertexVisitFunc[V]
	onEdge   EdgeVisitFunc[V, E]
}

func (w *dfsWalker[V, E]) visit(vertex V) error {
	if w.onVertex != nil {
		w.onVertex(vertex)
	}
	if err := w.g.SetFlag(vertex, w.flag); err != nil {
		return err
	}

	degree, err := w.g.Degree(vertex, w.dir)
	if err != nil {
		return err
	}
	for i := 0; i < degree; i++ {
		nb, edge, err := w.g.NextNeighbour(vertex, w.dir, graph.Next)
		if err != nil {
			return err
		}
		flag, err := w.g.GetFlag(nb)
		if err != nil {
			return err
		}
		if flag == w.flag {
			continue
		}
		if w.onEdge != nil {
			w.onEdge(vertex, edge, nb)
		}
		if err := w.visit(nb); err != nil {
			return err
		}
	}
	return nil
}

// bfsNode is one link in the BFS frontier, pairing a followed edge with
// the vertex it leads to.
type bfsNode[V, E any] struct {
	parent V
	edge   E
	child  V
}

// BFS performs a breadth-first traversal of g starting at start, marking
// each visited vertex's flag as visitedFlag. A neighbour is marked
// visited at the moment it is enqueued (not when it is dequeued), so a
// vertex reachable by more than one edge from the current frontier is
// only ever enqueued once. onVertex is called when a vertex is first
// visited and onEdge (if non-nil) for each edge followed.
//
// Returns ErrVertexNotFound if start is not in g, or ErrAlreadyVisited
// if start's flag already equals visitedFlag.
func BFS[V, E any](g *graph.Graph[V, E], start V, visitedFlag int, onVertex VertexVisitFunc[V], onEdge EdgeVisitFunc[V, E]) error {
	flag, err := g.GetFlag(start)
	if err != nil {
		return ErrVertexNotFound
	}
	if flag == visitedFlag {
		return ErrAlreadyVisited
	}

	dir := traversalDirection(g)
	q := queue.New[*bfsNode[V, E]]()

	if err := g.SetFlag(start, visitedFlag); err != nil {
		return err
	}
	if onVertex != nil {
		onVertex(start)
	}
	if err := enqueueUnvisited(g, q, start, dir, visitedFlag); err != nil {
		return err
	}

	for q.Len() > 0 {
		node, err := q.Dequeue()
		if err != nil {
			return err
		}
		if onEdge != nil {
			onEdge(node.parent, node.edge, node.child)
		}
		if onVertex != nil {
			onVertex(node.child)
		}
		if err := enqueueUnvisited(g, q, node.child, dir, visitedFlag); err != nil {
			return err
		}
	}
	return nil
}

// enqueueUnvisited appends one bfsNode per unvisited neighbour of
// vertex, marking each visited as it is enqueued.
func enqueueUnvisited[V, E any](g *graph.Graph[V, E], q *queue.Queue[*bfsNode[V, E]], vertex V, dir graph.Direction, visitedFlag int) error {
	degree, err := g.Degree(vertex, dir)
	if err != nil {
		return err
	}
	for i := 0; i < degree; i++ {
		nb, edge, err := g.NextNeighbour(vertex, dir, graph.Next)
		if err != nil {
			return err
		}
		flag, err := g.GetFlag(nb)
		if err != nil {
			return err
		}
		if flag == visitedFlag {
			continue
		}
		if err := g.SetFlag(nb, visitedFlag); err != nil {
			return err
		}
		q.Enqueue(&bfsNode[V, E]{parent: vertex, edge: edge, child: nb})
	}
	return nil
}
