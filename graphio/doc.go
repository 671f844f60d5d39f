// Package graphio serializes and deserializes a graph.Graph to a
// self-describing, whitespace-delimited text format.
//
// Errors:
//
//	ErrDeprecatedFileFormat - the file's VERSION header is not the one
//	                          this package writes.
//	ErrCorruptedFileFormat  - the edge block references a duplicate edge
//	                          or an out-of-range vertex index.
//	ErrSameCreation         - the vertex block deserialized the same
//	                          vertex identity twice.
//
// Grounded on _examples/original_source/src/graphio/graphio.c: a header
// (version, directedness, vertex count), a vertex block (one
// caller-serialized vertex plus its flag per line, in vertex-iteration
// order), and an edge block (one line per vertex giving its out-degree
// followed by neighbour-index/serialized-edge pairs). Vertices are
// referenced by their zero-based emission index; Read rebuilds them into
// a []V slice standing in for the original's index->pointer address map,
// since the index space is contiguous and known up front. Write needs
// the reverse direction (vertex object -> assigned index) and builds it
// with an ordmap.Map[V, int] keyed by the graph's own VertexLess, since a
// vertex object V is not guaranteed to be a Go-comparable type and so
// cannot key a built-in map.
package graphio
