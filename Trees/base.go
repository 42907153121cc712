package Trees

import (
	"github.com/Roberson-Andrade/own-kata-machine/Queues"
	"golang.org/x/exp/constraints"
)

// A node in the arena: the handles of its children.
// The zero value is meaningful, it's a node without children.
type info[S constraints.Unsigned] struct {
	l, r S
}

// base is an arena of nodes addressed by handles of type S. Handle 0 is the
// absent node; ifs[0] always stays the zero value. vs[i] is the value of the node ifs[i+1],
// so len(ifs)=len(vs)+1. Nodes are never freed, so a handle stays valid until Clear.
type base[T any, S constraints.Unsigned] struct {
	root S
	ifs  []info[S]
	vs   []T
}

func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	return base[T, S]{ifs: make([]info[S], 1, uint(hint)+1), vs: make([]T, 0, hint)}
}

func (u *base[T, S]) getIf(i S) *info[S] {
	return &u.ifs[i]
}

func (u *base[T, S]) getV(i S) *T {
	return &u.vs[i]
}

// alloc a node holding v and return its handle. Panics when S can't address it.
func (u *base[T, S]) alloc(v T) S {
	i := S(len(u.ifs))
	if uint(i) != uint(len(u.ifs)) {
		panic("Trees: arena is full, use a wider handle type")
	}
	u.ifs, u.vs = append(u.ifs, info[S]{}), append(u.vs, v)
	return i
}

func (u *base[T, S]) Size() uint {
	return uint(len(u.vs))
}

// Clear the tree, also resets memory of underlying value array if reset is true. O(1) if reset==false.
// O(size) if reset==true. Doesn't allocate new arrays.
func (u *base[T, S]) Clear(reset bool) {
	if reset {
		clear(u.vs)
	}
	u.root, u.ifs, u.vs = 0, u.ifs[:1], u.vs[:0]
}

// height in edges of the subtree rooting at curI. Recursive.
func (u *base[T, S]) height(curI S) int {
	if curI == 0 {
		return -1
	}
	cur := u.getIf(curI)
	return max(u.height(cur.l), u.height(cur.r)) + 1
}

// balance is the same as Node.balance. Recursive.
func (u *base[T, S]) balance(curI S) int {
	if curI == 0 {
		return 0
	}
	cur := u.getIf(curI)
	lh, rh := u.balance(cur.l), u.balance(cur.r)
	if lh == -1 || rh == -1 || lh-rh > 1 || rh-lh > 1 {
		return -1
	}
	return max(lh, rh) + 1
}

// InOrder traversal of the tree using the stack based iterative traversal. st is a buffer
// for the stack and is returned for reuse, it may be nil.
func (u *base[T, S]) InOrder(f func(*T) bool, st []S) []S {
	curI := u.root
	for st = st[:0]; curI != 0; curI = u.getIf(curI).l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if !f(u.getV(curI - 1)) {
			break
		}
		for curI = u.getIf(curI).r; curI != 0; curI = u.getIf(curI).l {
			st = append(st, curI)
		}
	}
	return st
}

// PreOrder traversal of the tree, st is the same as in InOrder.
func (u *base[T, S]) PreOrder(f func(*T) bool, st []S) []S {
	if st = st[:0]; u.root != 0 {
		st = append(st, u.root)
	}
	for len(st) > 0 {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(u.getV(curI - 1)) {
			break
		}
		cur := u.getIf(curI)
		if cur.r != 0 {
			st = append(st, cur.r)
		}
		if cur.l != 0 {
			st = append(st, cur.l)
		}
	}
	return st
}

// PostOrder traversal of the tree, st is the same as in InOrder.
func (u *base[T, S]) PostOrder(f func(*T) bool, st []S) []S {
	var last S
	st = st[:0]
	for curI := u.root; curI != 0 || len(st) > 0; {
		if curI != 0 {
			st = append(st, curI)
			curI = u.getIf(curI).l
			continue
		}
		topI := st[len(st)-1]
		if r := u.getIf(topI).r; r != 0 && r != last {
			curI = r
			continue
		}
		st = st[:len(st)-1]
		if !f(u.getV(topI - 1)) {
			break
		}
		last = topI
	}
	return st
}

// LevelOrder traversal of the tree.
func (u *base[T, S]) LevelOrder(f func(*T) bool) {
	if u.root == 0 {
		return
	}
	q := Queues.MakeArrayQueue[S](16)
	for q.Push(u.root); !q.Empty(); {
		curI, _ := q.Pop()
		if !f(u.getV(curI - 1)) {
			return
		}
		cur := u.getIf(curI)
		if cur.l != 0 {
			q.Push(cur.l)
		}
		if cur.r != 0 {
			q.Push(cur.r)
		}
	}
}

// buildIfs array of size vsLen+1 to represent a complete binary search tree over
// the sorted values vs[0..vsLen), node i holding vs[i-1].
func buildIfs[S constraints.Unsigned](vsLen S) (root S, ifs []info[S]) {
	ifs = make([]info[S], uint(vsLen)+1)
	if vsLen == 0 {
		return
	}
	mid := func(lo, hi S) S { return lo + (hi-lo+1)>>1 } // same as BuildBSTree
	st := make([][3]S, 0, 64) //[left,right,mid]
	{
		root = mid(1, vsLen)
		st = append(st, [3]S{1, vsLen, root})
	}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top[0] < top[2] {
			nr := top[2] - 1
			ifs[top[2]].l = mid(top[0], nr)
			st = append(st, [3]S{top[0], nr, ifs[top[2]].l})
		}
		if top[2] < top[1] {
			nl := top[2] + 1
			ifs[top[2]].r = mid(nl, top[1])
			st = append(st, [3]S{nl, top[1], ifs[top[2]].r})
		}
	}
	return
}
