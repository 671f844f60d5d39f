package avltree

// Order selects the traversal order for Traverse.
type Order int

const (
	// PreOrder visits a node before its children.
	PreOrder Order = iota
	// InOrder visits the left subtree, then the node, then the right subtree.
	InOrder
	// PostOrder visits a node after its children.
	PostOrder
)
