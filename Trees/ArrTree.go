package Trees

import (
	"golang.org/x/exp/constraints"
)

// ArrBSTree is the same binary search tree as BSTree, but the nodes live in
// arrays and link to each other by handles of type S instead of pointers. This
// keeps the tree in two allocations and makes it cheap to copy or clear.
// S must be wide enough to address every node; Insert panics otherwise.
// The zero value isn't usable, create it with NewArr or ArrFrom.
type ArrBSTree[T constraints.Ordered, S constraints.Unsigned] struct {
	base[T, S]
}

// NewArr returns an empty ArrBSTree with room for hint nodes.
func NewArr[T constraints.Ordered, S constraints.Unsigned](hint S) *ArrBSTree[T, S] {
	return &ArrBSTree[T, S]{base: makeBase[T](hint)}
}

// ArrFrom a given sorted value slice, directly build a tree of minimal height. The slice is
// handed to the tree and it mustn't be modified by the caller later.
// The safe flag is the same as in BuildBSTree.
func ArrFrom[T constraints.Ordered, S constraints.Unsigned](vs []T, safe bool) *ArrBSTree[T, S] {
	if safe {
		checkAscending(vs)
	}
	if uint(S(len(vs))) != uint(len(vs)) {
		panic("Trees: arena is full, use a wider handle type")
	}
	root, ifs := buildIfs(S(len(vs)))
	return &ArrBSTree[T, S]{base: base[T, S]{root: root, ifs: ifs, vs: vs}}
}

// Insert [Tree.Insert]
// Time: O(D); Space: O(1)
func (u *ArrBSTree[T, S]) Insert(v T) bool {
	var parent S
	var right bool
	for curI := u.root; curI != 0; {
		cv := *u.getV(curI - 1)
		if v == cv {
			return false
		}
		parent = curI
		if right = v > cv; right {
			curI = u.getIf(curI).r
		} else {
			curI = u.getIf(curI).l
		}
	}
	n := u.alloc(v)
	if parent == 0 {
		u.root = n
	} else if right {
		u.getIf(parent).r = n
	} else {
		u.getIf(parent).l = n
	}
	return true
}

// Remove [Tree.Remove]
func (u *ArrBSTree[T, S]) Remove(T) error {
	return &UnsupportedOperationError{"Remove"}
}

// Find v in the tree. Returns the stored value and true, or false if v isn't in the tree.
// Time: O(D); Space: O(1)
func (u *ArrBSTree[T, S]) Find(v T) (T, bool) {
	for curI := u.root; curI != 0; {
		if cv := *u.getV(curI - 1); v == cv {
			return cv, true
		} else if v > cv {
			curI = u.getIf(curI).r
		} else {
			curI = u.getIf(curI).l
		}
	}
	return *new(T), false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *ArrBSTree[T, S]) Has(v T) bool {
	_, has := u.Find(v)
	return has
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *ArrBSTree[T, S]) Minimum() (T, bool) {
	if curI := u.root; curI == 0 {
		return *new(T), false
	} else {
		for u.getIf(curI).l != 0 {
			curI = u.getIf(curI).l
		}
		return *u.getV(curI - 1), true
	}
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *ArrBSTree[T, S]) Maximum() (T, bool) {
	if curI := u.root; curI == 0 {
		return *new(T), false
	} else {
		for u.getIf(curI).r != 0 {
			curI = u.getIf(curI).r
		}
		return *u.getV(curI - 1), true
	}
}

// Height [Tree.Height]. Recursive.
func (u *ArrBSTree[T, S]) Height() int {
	return u.height(u.root)
}

// Balanced [Tree.Balanced]. Recursive.
func (u *ArrBSTree[T, S]) Balanced() bool {
	return u.balance(u.root) != -1
}

// Corrupt [Tree.Corrupt]
func (u *ArrBSTree[T, S]) Corrupt() (corrupt bool) {
	var prev *T
	u.base.InOrder(func(v *T) bool {
		corrupt = prev != nil && !(*prev < *v)
		prev = v
		return !corrupt
	}, nil)
	return
}

// Walk [Tree.Walk]. Panics on an unknown Order.
func (u *ArrBSTree[T, S]) Walk(o Order, f func(T) bool) {
	g := func(v *T) bool { return f(*v) }
	switch o {
	case InOrder:
		u.base.InOrder(g, nil)
	case PreOrder:
		u.base.PreOrder(g, nil)
	case PostOrder:
		u.base.PostOrder(g, nil)
	case LevelOrder:
		u.base.LevelOrder(g)
	default:
		panic("Trees: unknown order " + o.String())
	}
}

func (u *ArrBSTree[T, S]) collect(o Order) []T {
	s := make([]T, 0, len(u.vs))
	u.Walk(o, func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

// InOrder [Tree.InOrder]
func (u *ArrBSTree[T, S]) InOrder() []T {
	return u.collect(InOrder)
}

// PreOrder [Tree.PreOrder]
func (u *ArrBSTree[T, S]) PreOrder() []T {
	return u.collect(PreOrder)
}

// PostOrder [Tree.PostOrder]
func (u *ArrBSTree[T, S]) PostOrder() []T {
	return u.collect(PostOrder)
}

// LevelOrder [Tree.LevelOrder]
func (u *ArrBSTree[T, S]) LevelOrder() []T {
	return u.collect(LevelOrder)
}
