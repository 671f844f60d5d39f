package graph

import (
	"errors"

	"github.com/guidanoli/yadsl-go/orderedset"
)

// Graph is a generic directed or undirected graph over caller-owned
// vertex and edge objects.
//
// The zero value is not usable; construct one with New.
type Graph[V, E any] struct {
	directed bool
	less     VertexLess[V]
	vertices *orderedset.Set[*Vertex[V, E]]

	freeVertex func(V)
	freeEdge   func(E)

	nextSeq uint64
}

// Option configures a Graph at construction time.
type Option[V, E any] func(*Graph[V, E])

// WithVertexFree sets the hook invoked once per remaining vertex object on
// Destroy and once per removed vertex object on RemoveVertex.
func WithVertexFree[V, E any](free func(V)) Option[V, E] {
	return func(g *Graph[V, E]) { g.freeVertex = free }
}

// WithEdgeFree sets the hook invoked once per remaining edge object on
// Destroy and once per removed edge object on RemoveEdge/RemoveVertex.
func WithEdgeFree[V, E any](free func(E)) Option[V, E] {
	return func(g *Graph[V, E]) { g.freeEdge = free }
}

// New creates an empty Graph. less orders vertex objects: it keeps the
// vertex set searchable and, for undirected graphs, canonicalises each
// edge's source/destination.
func New[V, E any](directed bool, less VertexLess[V], opts ...Option[V, E]) *Graph[V, E] {
	vertexLess := func(a, b *Vertex[V, E]) bool { return less(a.Object, b.Object) }
	g := &Graph[V, E]{
		directed: directed,
		less:     less,
		vertices: orderedset.New(vertexLess),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// IsDirected reports whether the graph is directed.
func (g *Graph[V, E]) IsDirected() bool { return g.directed }

// VertexCount returns the number of vertices.
func (g *Graph[V, E]) VertexCount() int { return g.vertices.Len() }

func (g *Graph[V, E]) equalVertex(a, b V) bool {
	return !g.less(a, b) && !g.less(b, a)
}

func (g *Graph[V, E]) findVertex(v V) (*Vertex[V, E], bool) {
	return g.vertices.Filter(func(candidate *Vertex[V, E]) bool {
		return g.equalVertex(candidate.Object, v)
	})
}

// ContainsVertex reports whether v is in the graph.
func (g *Graph[V, E]) ContainsVertex(v V) bool {
	_, ok := g.findVertex(v)
	return ok
}

// AddVertex adds v to the graph. It reports whether v was already
// present; on a duplicate the graph is left unchanged.
func (g *Graph[V, E]) AddVertex(v V) bool {
	if g.ContainsVertex(v) {
		return true
	}
	vertex := &Vertex[V, E]{
		Object:   v,
		outEdges: orderedset.New(edgeInsertionLess[V, E]),
		inEdges:  orderedset.New(edgeInsertionLess[V, E]),
	}
	g.vertices.Add(vertex)
	return false
}

// edgeInsertionLess orders edges by their address of creation as observed
// through slice append order is unavailable for pointers in a portable
// way, so adjacency sets are ordered by each edge's sequence number,
// assigned monotonically at AddEdge time; this keeps neighbour iteration
// deterministic without requiring a raw pointer order.
func edgeInsertionLess[V, E any](a, b *Edge[V, E]) bool {
	return a.seq < b.seq
}

// RemoveVertex deletes v and every edge touching it. It reports whether v
// was present.
func (g *Graph[V, E]) RemoveVertex(v V) bool {
	vertex, ok := g.findVertex(v)
	if !ok {
		return false
	}

	for vertex.outEdges.Len() > 0 {
		e, _ := vertex.outEdges.Filter(func(*Edge[V, E]) bool { return true })
		g.unlinkEdge(e)
	}
	for vertex.inEdges.Len() > 0 {
		e, _ := vertex.inEdges.Filter(func(*Edge[V, E]) bool { return true })
		g.unlinkEdge(e)
	}

	g.vertices.Remove(vertex)
	if g.freeVertex != nil {
		g.freeVertex(vertex.Object)
	}
	return true
}

// unlinkEdge removes e from both endpoints' adjacency sets and frees its
// object, without requiring the caller to know which endpoint holds it.
func (g *Graph[V, E]) unlinkEdge(e *Edge[V, E]) {
	e.Source.outEdges.Remove(e)
	resetAdjCounters(e.Source, 1)
	e.Destination.inEdges.Remove(e)
	resetAdjCounters(e.Destination, 1)
	if g.freeEdge != nil {
		g.freeEdge(e.Object)
	}
}

func resetAdjCounters[V, E any](vertex *Vertex[V, E], orientation int) {
	if orientation == 1 {
		vertex.inEdges.CursorFirst()
		vertex.outEdges.CursorFirst()
		vertex.inToIterate = vertex.inEdges.Len()
		vertex.outToIterate = vertex.outEdges.Len()
	} else {
		vertex.inEdges.CursorLast()
		vertex.outEdges.CursorLast()
		vertex.inToIterate = 0
		vertex.outToIterate = 0
	}
}

// cycleCursor advances s's external cursor one step in dir, wrapping
// around at either end, and returns the element it lands on. The set
// must not be empty.
func cycleCursor[T any](s *orderedset.Set[T], dir IterDir) (T, error) {
	var err error
	if dir == Next {
		if err = s.CursorNext(); errors.Is(err, orderedset.ErrOutOfBounds) {
			err = s.CursorFirst()
		}
	} else {
		if err = s.CursorPrevious(); errors.Is(err, orderedset.ErrOutOfBounds) {
			err = s.CursorLast()
		}
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return s.Cursor()
}

// IterVertex cycles the graph's vertex cursor one step in dir and returns
// the vertex object it lands on.
func (g *Graph[V, E]) IterVertex(dir IterDir) (V, error) {
	var zero V
	if g.vertices.Len() == 0 {
		return zero, ErrEmpty
	}
	v, err := cycleCursor(g.vertices, dir)
	if err != nil {
		return zero, err
	}
	return v.Object, nil
}

func (g *Graph[V, E]) canonicalOrder(uVertex, vVertex *Vertex[V, E]) (source, destination *Vertex[V, E]) {
	if g.directed || g.less(uVertex.Object, vVertex.Object) {
		return uVertex, vVertex
	}
	return vVertex, uVertex
}

func (g *Graph[V, E]) findEdge(uVertex, vVertex *Vertex[V, E]) (source, destination *Vertex[V, E], edge *Edge[V, E], ok bool) {
	source, destination = g.canonicalOrder(uVertex, vVertex)
	edge, ok = source.outEdges.Filter(func(e *Edge[V, E]) bool { return e.Destination == destination })
	return source, destination, edge, ok
}

// ContainsEdge reports whether an edge between u and v exists.
func (g *Graph[V, E]) ContainsEdge(u, v V) (bool, error) {
	uVertex, ok := g.findVertex(u)
	if !ok {
		return false, ErrVertexNotFound
	}
	vVertex, ok := g.findVertex(v)
	if !ok {
		return false, ErrVertexNotFound
	}
	_, _, _, ok = g.findEdge(uVertex, vVertex)
	return ok, nil
}

// GetEdge returns the object of the edge between u and v.
func (g *Graph[V, E]) GetEdge(u, v V) (E, error) {
	var zero E
	uVertex, ok := g.findVertex(u)
	if !ok {
		return zero, ErrVertexNotFound
	}
	vVertex, ok := g.findVertex(v)
	if !ok {
		return zero, ErrVertexNotFound
	}
	_, _, edge, ok := g.findEdge(uVertex, vVertex)
	if !ok {
		return zero, ErrEdgeNotFound
	}
	return edge.Object, nil
}

// AddEdge adds an edge from u to v (direction significant only for
// directed graphs) carrying obj, linking it into both endpoints'
// adjacency sets.
func (g *Graph[V, E]) AddEdge(u, v V, obj E) error {
	uVertex, ok := g.findVertex(u)
	if !ok {
		return ErrVertexNotFound
	}
	vVertex, ok := g.findVertex(v)
	if !ok {
		return ErrVertexNotFound
	}
	source, destination, _, exists := g.findEdge(uVertex, vVertex)
	if exists {
		return ErrEdgeExists
	}

	g.nextSeq++
	edge := &Edge[V, E]{Object: obj, Source: source, Destination: destination, seq: g.nextSeq}
	source.outEdges.Add(edge)
	resetAdjCounters(source, 1)
	destination.inEdges.Add(edge)
	resetAdjCounters(destination, 1)
	return nil
}

// RemoveEdge deletes the edge between u and v.
func (g *Graph[V, E]) RemoveEdge(u, v V) error {
	uVertex, ok := g.findVertex(u)
	if !ok {
		return ErrVertexNotFound
	}
	vVertex, ok := g.findVertex(v)
	if !ok {
		return ErrVertexNotFound
	}
	_, _, edge, ok := g.findEdge(uVertex, vVertex)
	if !ok {
		return ErrEdgeNotFound
	}
	g.unlinkEdge(edge)
	return nil
}

// Degree returns the number of edges touching v in the requested
// Direction.
func (g *Graph[V, E]) Degree(v V, dir Direction) (int, error) {
	vertex, ok := g.findVertex(v)
	if !ok {
		return 0, ErrVertexNotFound
	}
	switch dir {
	case In:
		return vertex.inEdges.Len(), nil
	case Out:
		return vertex.outEdges.Len(), nil
	default:
		return vertex.inEdges.Len() + vertex.outEdges.Len(), nil
	}
}

// NextNeighbour cycles through v's neighbours in the requested Direction
// and IterDir, returning the neighbouring vertex object and the edge
// object connecting them.
//
// For Both, each cycle walks one adjacency set in full and then the
// other, tracked by per-vertex counters that are reset whenever an edge
// touching v is added or removed; in-edges and out-edges do not
// alternate edge by edge.
func (g *Graph[V, E]) NextNeighbour(v V, dir Direction, iter IterDir) (V, E, error) {
	var zeroV V
	var zeroE E
	vertex, ok := g.findVertex(v)
	if !ok {
		return zeroV, zeroE, ErrVertexNotFound
	}

	var edge *Edge[V, E]
	var err error
	switch dir {
	case In:
		if vertex.inEdges.Len() == 0 {
			return zeroV, zeroE, ErrNoEdges
		}
		edge, err = cycleCursor(vertex.inEdges, iter)
	case Out:
		if vertex.outEdges.Len() == 0 {
			return zeroV, zeroE, ErrNoEdges
		}
		edge, err = cycleCursor(vertex.outEdges, iter)
	default:
		if iter == Next {
			edge, err = g.nextBoth(vertex)
		} else {
			edge, err = g.prevBoth(vertex)
		}
	}
	if err != nil {
		return zeroV, zeroE, err
	}

	var neighbour *Vertex[V, E]
	if edge.Destination == vertex {
		neighbour = edge.Source
	} else {
		neighbour = edge.Destination
	}
	return neighbour.Object, edge.Object, nil
}

func (g *Graph[V, E]) nextBoth(vertex *Vertex[V, E]) (*Edge[V, E], error) {
	inSize, outSize := vertex.inEdges.Len(), vertex.outEdges.Len()
	if inSize == 0 && outSize == 0 {
		return nil, ErrNoEdges
	}
	switch {
	case inSize == 0:
		return cycleCursor(vertex.outEdges, Next)
	case outSize == 0:
		return cycleCursor(vertex.inEdges, Next)
	case vertex.inToIterate == 0 && vertex.outToIterate == 0:
		resetAdjCounters(vertex, 1)
		vertex.inToIterate--
		return cycleCursor(vertex.inEdges, Next)
	case vertex.inToIterate == 0:
		vertex.outToIterate--
		return cycleCursor(vertex.outEdges, Next)
	default:
		vertex.inToIterate--
		return cycleCursor(vertex.inEdges, Next)
	}
}

func (g *Graph[V, E]) prevBoth(vertex *Vertex[V, E]) (*Edge[V, E], error) {
	inSize, outSize := vertex.inEdges.Len(), vertex.outEdges.Len()
	if inSize == 0 && outSize == 0 {
		return nil, ErrNoEdges
	}
	switch {
	case inSize == 0:
		return cycleCursor(vertex.outEdges, Previous)
	case outSize == 0:
		return cycleCursor(vertex.inEdges, Previous)
	case vertex.inToIterate == inSize:
		resetAdjCounters(vertex, -1)
		vertex.outToIterate++
		return cycleCursor(vertex.outEdges, Previous)
	case vertex.outToIterate == outSize:
		vertex.inToIterate++
		return cycleCursor(vertex.inEdges, Previous)
	default:
		vertex.outToIterate++
		return cycleCursor(vertex.outEdges, Previous)
	}
}

// GetFlag returns the flag currently associated with v.
func (g *Graph[V, E]) GetFlag(v V) (int, error) {
	vertex, ok := g.findVertex(v)
	if !ok {
		return 0, ErrVertexNotFound
	}
	return vertex.flag, nil
}

// SetFlag associates flag with v.
func (g *Graph[V, E]) SetFlag(v V, flag int) error {
	vertex, ok := g.findVertex(v)
	if !ok {
		return ErrVertexNotFound
	}
	vertex.flag = flag
	return nil
}

// SetAllFlags associates flag with every vertex in the graph.
func (g *Graph[V, E]) SetAllFlags(flag int) {
	for g.vertices.Len() > 0 {
		vertex, ok := g.vertices.Filter(func(v *Vertex[V, E]) bool {
			return v.flag != flag
		})
		if !ok {
			break
		}
		vertex.flag = flag
	}
}

// Destroy releases the graph, invoking the configured free hooks (if any)
// exactly once per remaining edge object and once per remaining vertex
// object. Vertices are released one at a time, each after the edges that
// still touch it.
func (g *Graph[V, E]) Destroy() {
	for g.vertices.Len() > 0 {
		vertex, _ := g.vertices.Filter(func(*Vertex[V, E]) bool { return true })
		g.RemoveVertex(vertex.Object)
	}
}
