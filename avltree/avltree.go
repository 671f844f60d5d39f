package avltree

// CompareFunc orders two elements: negative if a < b, zero if equal,
// positive if a > b.
type CompareFunc[T any] func(a, b T) int

// node is a single AVL tree node.
type node[T any] struct {
	left, right *node[T]
	height      int
	object      T
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func updateHeight[T any](n *node[T]) {
	n.height = 1 + maxInt(height(n.left), height(n.right))
}

func balanceOf[T any](n *node[T]) int {
	return height(n.right) - height(n.left)
}

// Tree is a generic self-balancing ordered set.
//
// The zero value is not usable; construct one with New.
type Tree[T any] struct {
	root *node[T]
	cmp  CompareFunc[T]
	free func(T)
	size int
}

// Option configures a Tree at construction time.
type Option[T any] func(*Tree[T])

// WithFree sets the hook invoked once per remaining object on Destroy and
// once per removed object on Remove.
func WithFree[T any](free func(T)) Option[T] {
	return func(t *Tree[T]) { t.free = free }
}

// New creates an empty Tree ordered by cmp.
func New[T any](cmp CompareFunc[T], opts ...Option[T]) *Tree[T] {
	t := &Tree[T]{cmp: cmp}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Len returns the number of objects stored.
func (t *Tree[T]) Len() int { return t.size }

// Height returns the height of the tree (0 for an empty tree).
func (t *Tree[T]) Height() int { return height(t.root) }

// Insert adds x to the tree. It reports whether x was already present
// (per the comparison predicate); on a duplicate the tree is left
// unchanged and the caller retains ownership of x.
func (t *Tree[T]) Insert(x T) bool {
	var existed bool
	t.root, existed = t.insert(t.root, x)
	if !existed {
		t.size++
	}
	return existed
}

func (t *Tree[T]) insert(n *node[T], x T) (*node[T], bool) {
	if n == nil {
		return &node[T]{object: x, height: 1}, false
	}
	c := t.cmp(x, n.object)
	switch {
	case c < 0:
		var existed bool
		n.left, existed = t.insert(n.left, x)
		if existed {
			return n, true
		}
	case c > 0:
		var existed bool
		n.right, existed = t.insert(n.right, x)
		if existed {
			return n, true
		}
	default:
		return n, true
	}
	return rebalance(n), false
}

// Search reports whether x (per the comparison predicate) is present, and
// returns the stored object if so.
func (t *Tree[T]) Search(x T) (T, bool) {
	n := t.root
	for n != nil {
		c := t.cmp(x, n.object)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.object, true
		}
	}
	var zero T
	return zero, false
}

// Remove deletes x from the tree, if present, returning the removed
// object to the caller and invoking the configured free hook on it.
func (t *Tree[T]) Remove(x T) (T, bool) {
	var removed T
	var ok bool
	t.root, removed, ok = t.remove(t.root, x)
	if ok {
		t.size--
		if t.free != nil {
			t.free(removed)
		}
	}
	return removed, ok
}

func (t *Tree[T]) remove(n *node[T], x T) (*node[T], T, bool) {
	var zero T
	if n == nil {
		return nil, zero, false
	}
	c := t.cmp(x, n.object)
	switch {
	case c < 0:
		var removed T
		var ok bool
		n.left, removed, ok = t.remove(n.left, x)
		if !ok {
			return n, zero, false
		}
		return rebalance(n), removed, true
	case c > 0:
		var removed T
		var ok bool
		n.right, removed, ok = t.remove(n.right, x)
		if !ok {
			return n, zero, false
		}
		return rebalance(n), removed, true
	default:
		removed := n.object
		if n.left == nil {
			return n.right, removed, true
		}
		if n.right == nil {
			return n.left, removed, true
		}
		// Two children: replace with the in-order successor (leftmost
		// descendant of the right subtree), then delete it from there.
		successor := leftmost(n.right)
		n.object = successor.object
		var ok bool
		n.right, _, ok = t.remove(n.right, successor.object)
		_ = ok
		return rebalance(n), removed, true
	}
}

func leftmost[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func rebalance[T any](n *node[T]) *node[T] {
	updateHeight(n)
	switch b := balanceOf(n); {
	case b < -1:
		if balanceOf(n.left) <= 0 {
			return rightRotate(n)
		}
		n.left = leftRotate(n.left)
		return rightRotate(n)
	case b > 1:
		if balanceOf(n.right) >= 0 {
			return leftRotate(n)
		}
		n.right = rightRotate(n.right)
		return leftRotate(n)
	default:
		return n
	}
}

func leftRotate[T any](x *node[T]) *node[T] {
	y := x.right
	x.right = y.left
	y.left = x
	updateHeight(x)
	updateHeight(y)
	return y
}

func rightRotate[T any](x *node[T]) *node[T] {
	y := x.left
	x.left = y.right
	y.right = x
	updateHeight(x)
	updateHeight(y)
	return y
}

// Traverse walks the tree in the given Order, calling visit on each
// object. If visit returns a non-nil value, traversal stops immediately
// and that value is returned; otherwise Traverse returns nil once the
// whole tree has been visited.
func (t *Tree[T]) Traverse(order Order, visit func(T) any) any {
	return traverse(t.root, order, visit)
}

func traverse[T any](n *node[T], order Order, visit func(T) any) any {
	if n == nil {
		return nil
	}
	if order == PreOrder {
		if v := visit(n.object); v != nil {
			return v
		}
	}
	if v := traverse(n.left, order, visit); v != nil {
		return v
	}
	if order == InOrder {
		if v := visit(n.object); v != nil {
			return v
		}
	}
	if v := traverse(n.right, order, visit); v != nil {
		return v
	}
	if order == PostOrder {
		if v := visit(n.object); v != nil {
			return v
		}
	}
	return nil
}

// Destroy releases the tree, invoking the configured free hook (if any)
// exactly once per remaining object, in unspecified order.
func (t *Tree[T]) Destroy() {
	if t.free != nil {
		traverse(t.root, PostOrder, func(x T) any {
			t.free(x)
			return nil
		})
	}
	t.root = nil
	t.size = 0
}
