// Package yadsl is an umbrella module of generic, in-memory data
// structures: an AVL tree, a binary heap, a dual-cursor ordered set, a
// key-ordered map built on it, a directed/undirected graph with its own
// search and text serialization packages, an arbitrary-precision
// integer, a hash map, a queue, and a stack.
//
// Each data structure lives in its own subpackage and is independently
// usable; nothing in this module imports yadsl itself.
//
//	avltree/     — self-balancing binary search tree
//	heap/        — binary heap with a caller-supplied priority predicate
//	orderedset/  — dual-cursor ordered set
//	ordmap/      — key-ordered map built on orderedset
//	graph/       — generic directed/undirected graph
//	graphsearch/ — DFS/BFS over graph.Graph
//	graphio/     — text serialization for graph.Graph
//	bigint/      — arbitrary-precision signed integer
//	hashmap/     — string-keyed hash map with per-bucket chaining
//	queue/       — FIFO queue
//	stack/       — LIFO stack
package yadsl
