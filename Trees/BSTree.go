package Trees

import (
	"github.com/Roberson-Andrade/own-kata-machine/Queues"
	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree with no repeated values. It doesn't balance
// itself, so the height D of the tree depends on the insertion order: O(log n)
// on average for random orders and n-1 when the values are inserted sorted.
// The zero value is an empty tree ready to use.
type BSTree[T constraints.Ordered] struct {
	root *Node[T]
	sz   uint
}

// New returns an empty BSTree.
func New[T constraints.Ordered]() *BSTree[T] {
	return &BSTree[T]{}
}

// BuildBSTree builds a BSTree using the given sorted slice recursively. This is faster than
// repeatedly calling Insert and gives a tree of minimal height. The given slice must be sorted
// in ascending order and mustn't contain duplicate elements.
// If safe==true, this function will check if the conditions are met and panic with InvalidSliceError
// if the conditions are broken. Otherwise, it is up to the caller to ensure the conditions are
// met, otherwise the tree will be corrupt.
// Time: O(n).
func BuildBSTree[T constraints.Ordered](sli []T, safe bool) *BSTree[T] {
	if safe {
		checkAscending(sli)
	}
	var build func([]T) *Node[T]
	build = func(s []T) *Node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		return &Node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
	}
	return &BSTree[T]{build(sli), uint(len(sli))}
}

func checkAscending[T constraints.Ordered](s []T) {
	for i := 1; i < len(s); i++ {
		if !(s[i-1] < s[i]) {
			panic(InvalidSliceError[T]{s[i-1], s[i]})
		}
	}
}

// Root of the tree, nil if the tree is empty.
func (u *BSTree[T]) Root() *Node[T] {
	return u.root
}

// Size [Tree.Size]
// Time: O(1)
func (u *BSTree[T]) Size() uint {
	return u.sz
}

// Clear the tree.
func (u *BSTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Insert [Tree.Insert]. Exactly one leaf is added on success, nothing is rotated.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Insert(v T) bool {
	cur := &u.root
	for *cur != nil {
		if n := *cur; v == n.v {
			return false
		} else if v > n.v {
			cur = &n.r
		} else {
			cur = &n.l
		}
	}
	*cur = &Node[T]{v: v}
	u.sz++
	return true
}

// Remove [Tree.Remove]
func (u *BSTree[T]) Remove(T) error {
	return &UnsupportedOperationError{"Remove"}
}

// Find the node holding v. Returns nil if v isn't in the tree.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Find(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		if v == cur.v {
			return cur
		} else if v > cur.v {
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	return u.Find(v) != nil
}

// SearchBFS looks for v breadth first without using the ordering of the tree.
// It always agrees with Has but costs O(n); it exists to check the tree against itself.
func (u *BSTree[T]) SearchBFS(v T) (found bool) {
	u.levelOrder(func(n *Node[T]) bool {
		found = n.v == v
		return !found
	})
	return
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, true
	}
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, true
	}
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *BSTree[T]) Height() int {
	return u.root.height()
}

// Balanced [Tree.Balanced]. Recursive.
// Time: O(n)
func (u *BSTree[T]) Balanced() bool {
	return u.root.balance() != -1
}

// Corrupt [Tree.Corrupt]
// Time: O(n)
func (u *BSTree[T]) Corrupt() (corrupt bool) {
	var prev *Node[T]
	u.inOrder(func(n *Node[T]) bool {
		corrupt = prev != nil && !(prev.v < n.v)
		prev = n
		return !corrupt
	})
	return
}

// InOrder [Tree.InOrder]
func (u *BSTree[T]) InOrder() []T {
	return u.collect(InOrder)
}

// PreOrder [Tree.PreOrder]
func (u *BSTree[T]) PreOrder() []T {
	return u.collect(PreOrder)
}

// PostOrder [Tree.PostOrder]
func (u *BSTree[T]) PostOrder() []T {
	return u.collect(PostOrder)
}

// LevelOrder [Tree.LevelOrder]
func (u *BSTree[T]) LevelOrder() []T {
	return u.collect(LevelOrder)
}

func (u *BSTree[T]) collect(o Order) []T {
	s := make([]T, 0, u.sz)
	u.Walk(o, func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

// Walk [Tree.Walk]. Panics on an unknown Order.
// Time: O(n); Space: O(D), O(n) for LevelOrder.
func (u *BSTree[T]) Walk(o Order, f func(T) bool) {
	g := func(n *Node[T]) bool { return f(n.v) }
	switch o {
	case InOrder:
		u.inOrder(g)
	case PreOrder:
		u.preOrder(g)
	case PostOrder:
		u.postOrder(g)
	case LevelOrder:
		u.levelOrder(g)
	default:
		panic("Trees: unknown order " + o.String())
	}
}

// InOrderIter returns a closure function f acting like an iterator. f
// gives the values in ascending order.
// Calling f is like calling "Next()" of iterators: val, valid=f()
// val is meaningful only if valid is true. When valid==false,
// then f is exhausted. valid can't turn true after it first became false.
// The tree must not be modified during the iteration of f.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *BSTree[T]) InOrderIter() func() (T, bool) {
	var st []*Node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for n := cur.r; n != nil; n = n.l {
			st = append(st, n)
		}
		return cur.v, true
	}
}

func (u *BSTree[T]) inOrder(f func(*Node[T]) bool) {
	var st []*Node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(cur) {
			return
		}
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
}

func (u *BSTree[T]) preOrder(f func(*Node[T]) bool) {
	if u.root == nil {
		return
	}
	for st := []*Node[T]{u.root}; len(st) > 0; {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(cur) {
			return
		}
		//right first so that left is popped first.
		if cur.r != nil {
			st = append(st, cur.r)
		}
		if cur.l != nil {
			st = append(st, cur.l)
		}
	}
}

func (u *BSTree[T]) postOrder(f func(*Node[T]) bool) {
	var st []*Node[T]
	var last *Node[T] // last emitted node
	for cur := u.root; cur != nil || len(st) > 0; {
		if cur != nil {
			st = append(st, cur)
			cur = cur.l
			continue
		}
		top := st[len(st)-1]
		if top.r != nil && top.r != last {
			cur = top.r
			continue
		}
		st = st[:len(st)-1]
		if !f(top) {
			return
		}
		last = top
	}
}

func (u *BSTree[T]) levelOrder(f func(*Node[T]) bool) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[*Node[T]](16)
	for q.Push(u.root); !q.Empty(); {
		cur, _ := q.Pop()
		if !f(cur) {
			return
		}
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
}
