// Package avltree implements a generic self-balancing ordered set (AVL
// tree) with explicit node heights, in-order/pre-order/post-order
// traversal with visitor short-circuiting, and idempotent insert/remove.
//
// Rebalancing follows the original yadsl algorithm
// (_examples/original_source/src/avl/avl.c): after every recursive
// insert/remove return, the node's height is recomputed and, when the
// balance factor (right height - left height) exceeds 1 in magnitude, the
// standard LL/LR/RR/RL rotations restore it, tie-breaking a zero-balance
// inner subtree as the single-rotation case.
package avltree
