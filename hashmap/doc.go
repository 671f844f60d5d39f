// Package hashmap implements a string-keyed hash map with a fixed,
// power-of-two bucket count, djb2 hashing, and per-bucket chaining.
//
// The key is deep-copied on insertion (a plain Go string already behaves
// this way — string headers are immutable and cheap to copy); the value is
// owned by the map per the usual container ownership contract until
// removed or until the map is destroyed.
package hashmap
