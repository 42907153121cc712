package Trees

// Node in a BSTree. A node exclusively owns its two children; there are no
// parent links, so the nodes reachable from a root always form a strict tree.
// A nil *Node is an absent subtree.
type Node[T any] struct {
	v    T
	l, r *Node[T]
}

// Value stored at n.
func (n *Node[T]) Value() T {
	return n.v
}

// Left child of n, nil if there is none.
func (n *Node[T]) Left() *Node[T] {
	return n.l
}

// Right child of n, nil if there is none.
func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// height of the subtree rooting at n in edges; -1 for nil.
// Recursive.
func (n *Node[T]) height() int {
	if n == nil {
		return -1
	}
	return max(n.l.height(), n.r.height()) + 1
}

// balance returns the height of the subtree rooting at n counted in nodes,
// so nil is 0, or -1 if some node in the subtree is unbalanced. -1 always
// propagates to the top.
// Recursive.
func (n *Node[T]) balance() int {
	if n == nil {
		return 0
	}
	lh, rh := n.l.balance(), n.r.balance()
	if lh == -1 || rh == -1 || lh-rh > 1 || rh-lh > 1 {
		return -1
	}
	return max(lh, rh) + 1
}
