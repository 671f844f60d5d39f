// Package heap implements a generic array-backed binary heap parameterised
// by a caller-supplied priority predicate, with explicit, resizable
// capacity (spec.md §4.2 — no default predicate: per spec.md §9's Open
// Question (b), the predicate is mandatory here, since a generic Go type
// has no portable notion of "raw pointer order" to fall back to).
package heap
