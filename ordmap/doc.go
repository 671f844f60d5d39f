// Package ordmap implements a generic key-ordered map as a thin wrapper
// over orderedset, matching the "map as an ordered set of (key, value)
// entries" design of
// _examples/original_source/src/map/map.c and map.h.
package ordmap
