// Package orderedset implements a generic ordered set backed by a doubly
// linked list, kept sorted by a caller-supplied LessFunc.
//
// Two cursors are maintained: an internal one that anchors the locality
// walk used by Contains/Add/Remove/Filter (so repeated operations near
// the same neighbourhood of the order are close to O(1) rather than
// O(n)), and an external one exposed to callers for forward/backward
// iteration. Both are ported from
// _examples/original_source/src/set/set.c: the zig-zag search that stops
// at the first direction reversal, the asymmetric insertion-point search
// in Add, and Filter's wrap-around scan bounded by the set's size.
package orderedset
