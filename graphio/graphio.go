package graphio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/guidanoli/yadsl-go/graph"
	"github.com/guidanoli/yadsl-go/ordmap"
)

// VertexWriteFunc serializes a vertex object. It must not emit leading or
// trailing whitespace, since the reader treats whitespace as a field
// separator.
type VertexWriteFunc[V any] func(w io.Writer, vertex V) error

// EdgeWriteFunc serializes an edge object under the same constraint as
// VertexWriteFunc.
type EdgeWriteFunc[E any] func(w io.Writer, edge E) error

// VertexReadFunc deserializes one vertex object from r.
type VertexReadFunc[V any] func(r io.Reader) (V, error)

// EdgeReadFunc deserializes one edge object from r.
type EdgeReadFunc[E any] func(r io.Reader) (E, error)

// Write serializes g to w: a header (format version, directedness,
// vertex count), a vertex block (one serialized vertex plus its flag per
// line, in vertex-iteration order), and an edge block (one line per
// vertex giving its out-degree followed by neighbour-index/serialized-
// edge pairs). less must agree with the order g was constructed with; it
// is used to build the vertex-object -> emission-index lookup that the
// edge block needs.
func Write[V, E any](g *graph.Graph[V, E], w io.Writer, less graph.VertexLess[V], writeVertex VertexWriteFunc[V], writeEdge EdgeWriteFunc[E]) error {
	bw := bufio.NewWriter(w)

	vCount := g.VertexCount()
	if _, err := fmt.Fprintf(bw, "VERSION %d\n", fileFormatVersion); err != nil {
		return err
	}
	directedFlag := 0
	if g.IsDirected() {
		directedFlag = 1
	}
	if _, err := fmt.Fprintf(bw, "IS_DIRECTED %d\n", directedFlag); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "%d \n", vCount); err != nil {
		return err
	}

	order := make([]V, 0, vCount)
	index := ordmap.New[V, int](less)
	for i := 0; i < vCount; i++ {
		v, err := g.IterVertex(graph.Next)
		if err != nil {
			return err
		}
		order = append(order, v)
		index.Set(v, i)

		if err := writeVertex(bw, v); err != nil {
			return err
		}
		flag, err := g.GetFlag(v)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, " %d \n", flag); err != nil {
			return err
		}
	}

	for _, v := range order {
		degree, err := g.Degree(v, graph.Out)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "%d", degree); err != nil {
			return err
		}
		for i := 0; i < degree; i++ {
			nb, edge, err := g.NextNeighbour(v, graph.Out, graph.Next)
			if err != nil {
				return err
			}
			nbIndex, ok := index.Get(nb)
			if !ok {
				return ErrCorruptedFileFormat
			}
			if _, err := fmt.Fprintf(bw, " %d ", nbIndex); err != nil {
				return err
			}
			if err := writeEdge(bw, edge); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(bw, "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Read deserializes a graph previously written by Write. less orders the
// deserialized vertex objects exactly as the caller's original graph did;
// opts are forwarded to graph.New for free-hook configuration.
//
// Returns ErrDeprecatedFileFormat if the version header does not match,
// ErrSameCreation if the vertex block deserializes the same vertex twice,
// or ErrCorruptedFileFormat if the edge block references an out-of-range
// vertex index or a duplicate edge.
func Read[V, E any](r io.Reader, less graph.VertexLess[V], readVertex VertexReadFunc[V], readEdge EdgeReadFunc[E], opts ...graph.Option[V, E]) (*graph.Graph[V, E], error) {
	br := bufio.NewReader(r)

	var version int
	if _, err := fmt.Fscanf(br, "VERSION %d", &version); err != nil {
		return nil, err
	}
	if version != fileFormatVersion {
		return nil, ErrDeprecatedFileFormat
	}

	var directedFlag int
	if _, err := fmt.Fscanf(br, "\nIS_DIRECTED %d", &directedFlag); err != nil {
		return nil, err
	}

	var vCount int
	if _, err := fmt.Fscan(br, &vCount); err != nil {
		return nil, err
	}

	g := graph.New(directedFlag != 0, less, opts...)

	order := make([]V, 0, vCount)
	for i := 0; i < vCount; i++ {
		v, err := readVertex(br)
		if err != nil {
			return nil, err
		}
		order = append(order, v)
		if g.AddVertex(v) {
			return nil, ErrSameCreation
		}
		var flag int
		if _, err := fmt.Fscan(br, &flag); err != nil {
			return nil, err
		}
		if err := g.SetFlag(v, flag); err != nil {
			return nil, err
		}
	}

	for _, v := range order {
		var degree int
		if _, err := fmt.Fscan(br, &degree); err != nil {
			return nil, err
		}
		for i := 0; i < degree; i++ {
			var nbIndex int
			if _, err := fmt.Fscan(br, &nbIndex); err != nil {
				return nil, err
			}
			if nbIndex < 0 || nbIndex >= len(order) {
				return nil, ErrCorruptedFileFormat
			}
			edge, err := readEdge(br)
			if err != nil {
				return nil, err
			}
			if err := g.AddEdge(v, order[nbIndex], edge); err != nil {
				return nil, ErrCorruptedFileFormat
			}
		}
	}

	return g, nil
}
