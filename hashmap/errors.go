package hashmap

import "errors"

var (
	// ErrExists is returned by Add when the key is already present.
	ErrExists = errors.New("hashmap: key already exists")

	// ErrNotFound is returned by Get/Remove when the key is absent.
	ErrNotFound = errors.New("hashmap: key not found")
)
