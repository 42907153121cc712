package Trees

// Tree represents an unbalanced binary search tree holding distinct values.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case x is the zero value of T and shouldn't be used.
// Methods implemented recursively are noted, otherwise they are implemented
// iteratively with an explicit stack, so the call stack doesn't grow with the
// depth of the tree.
// None of the implementations are safe for concurrent use when one of the callers
// mutates the tree.
type Tree[T any] interface {
	//Insert v to the Tree. Returns true if a new node was added, false if v
	//is already in the tree, in which case the tree is unchanged.
	Insert(v T) bool
	//Remove isn't supported. It always returns an *UnsupportedOperationError.
	Remove(v T) error
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Size of the tree.
	Size() uint
	//Height is the number of edges on the longest path from the root to a leaf.
	//An empty tree has height -1 and a single node has height 0.
	Height() int
	//Balanced reports whether the heights of the two subtrees of every node
	//differ by at most 1. An empty tree is balanced.
	Balanced() bool
	//InOrder returns the values in ascending order.
	InOrder() []T
	//PreOrder returns the values as node, left subtree, right subtree.
	PreOrder() []T
	//PostOrder returns the values as left subtree, right subtree, node.
	PostOrder() []T
	//LevelOrder returns the values breadth first, left to right on each level.
	LevelOrder() []T
	//Walk calls f for each value in the given order until f returns false.
	//The tree must not be modified during the walk.
	Walk(o Order, f func(T) bool)
	//Corrupt returns whether a value violates the ordering of the tree.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}
