package graphio

import "errors"

const fileFormatVersion = 1

var (
	// ErrDeprecatedFileFormat is returned by Read when the file's VERSION
	// header does not match the version this package writes.
	ErrDeprecatedFileFormat = errors.New("graphio: deprecated file format version")
	// ErrCorruptedFileFormat is returned by Read when the edge block
	// references an out-of-range vertex index or a duplicate edge.
	ErrCorruptedFileFormat = errors.New("graphio: corrupted file format")
	// ErrSameCreation is returned by Read when the vertex block
	// deserializes the same vertex identity twice.
	ErrSameCreation = errors.New("graphio: same vertex created twice")
)
