package Trees

import (
	"slices"
	"testing"
)

func TestBSTree_Shape(t *testing.T) {
	tree := New[int]()
	tree.Insert(10)
	if r := tree.Root(); r == nil || r.Value() != 10 || r.Left() != nil || r.Right() != nil {
		t.Fatalf("root after one insert is %+v", r)
	}
	tree.Insert(5)
	if r := tree.Root(); r.Left() == nil || r.Left().Value() != 5 || r.Right() != nil {
		t.Fatalf("5 isn't the left child of the root")
	}
	tree.Insert(15)
	if r := tree.Root(); r.Right() == nil || r.Right().Value() != 15 {
		t.Fatalf("15 isn't the right child of the root")
	}
	for _, v := range []int{3, 7, 12, 17} {
		tree.Insert(v)
	}
	r := tree.Root()
	got := []int{r.Left().Left().Value(), r.Left().Right().Value(), r.Right().Left().Value(), r.Right().Right().Value()}
	if want := []int{3, 7, 12, 17}; !slices.Equal(got, want) {
		t.Errorf("grandchildren are %v, want %v", got, want)
	}
}

func TestBSTree_ZeroValue(t *testing.T) {
	var tree BSTree[int]
	if !tree.Insert(1) || tree.Size() != 1 || !tree.Has(1) {
		t.Errorf("zero value tree is not usable")
	}
}

func TestBSTree_Find(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{10, 5, 15, 3, 7, 7, 12, 17} {
		tree.Insert(v)
	}
	for _, v := range []int{7, 10, 3, 17} {
		if n := tree.Find(v); n == nil || n.Value() != v {
			t.Errorf("Find(%d) is %+v", v, n)
		}
	}
	if n := tree.Find(99); n != nil {
		t.Errorf("Find(99) is %+v, want nil", n)
	}
	if n := tree.Find(10); n != tree.Root() {
		t.Errorf("Find(10) isn't the root")
	}
}

func TestBSTree_SearchBFS(t *testing.T) {
	tree := New[int]()
	for range make([]struct{}, 2000) {
		tree.Insert(rg.Intn(4000))
	}
	for v := 0; v < 4000; v++ {
		if a, b := tree.SearchBFS(v), tree.Has(v); a != b {
			t.Fatalf("SearchBFS(%d) is %v, Has is %v", v, a, b)
		}
	}
	if New[int]().SearchBFS(0) {
		t.Errorf("SearchBFS found 0 in an empty tree")
	}
}

func TestBSTree_InOrderIter(t *testing.T) {
	tree := New[int]()
	content := make(map[int]struct{})
	for range make([]struct{}, tAddN / 4) {
		b := rg.Intn(tAddValRange)
		tree.Insert(b)
		content[b] = struct{}{}
	}
	var s []int
	f := tree.InOrderIter()
	for v, ok := f(); ok; v, ok = f() {
		s = append(s, v)
	}
	if _, ok := f(); ok {
		t.Errorf("exhausted iterator became valid")
	}
	if len(s) != len(content) {
		t.Errorf("sorted size is %d, want %d", len(s), len(content))
	}
	if !slices.Equal(s, tree.InOrder()) {
		t.Errorf("iterator disagrees with InOrder")
	}
	if _, ok := New[int]().InOrderIter()(); ok {
		t.Errorf("iterator of empty tree is valid")
	}
}

func TestBSTree_Build(t *testing.T) {
	content := make([]int, tAddN)
	for i := range content {
		content[i] = i * 2
	}
	tree := BuildBSTree(content, true)
	if tree.Size() != uint(len(content)) {
		t.Fatalf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if !slices.Equal(tree.InOrder(), content) {
		t.Fatalf("in-order differs from the source slice")
	}
	if !tree.Balanced() {
		t.Errorf("built tree is not balanced")
	}
	// minimal height is floor(log2(n)).
	if h, want := tree.Height(), 15; h != want {
		t.Errorf("height is %d, want %d", h, want)
	}
	if tree.Corrupt() {
		t.Errorf("built tree is corrupt")
	}
	if !tree.Insert(1) || !tree.Has(1) || tree.Size() != uint(len(content))+1 {
		t.Errorf("insert after build failed")
	}
	if e := BuildBSTree([]int{}, true); e.Root() != nil || e.Height() != -1 {
		t.Errorf("tree built from empty slice isn't empty")
	}
}

func TestBSTree_BuildSameShapeAsArr(t *testing.T) {
	for n := 0; n < 40; n++ {
		s := make([]int, n)
		for i := range s {
			s[i] = i
		}
		a, b := BuildBSTree(s, true), ArrFrom[int, uint16](slices.Clone(s), true)
		if !slices.Equal(a.PreOrder(), b.PreOrder()) {
			t.Fatalf("shapes differ for %d values: %v, %v", n, a.PreOrder(), b.PreOrder())
		}
	}
}

func expectInvalidSlice(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if _, ok := r.(InvalidSliceError[int]); !ok {
			t.Errorf("recovered %v, want InvalidSliceError", r)
		}
	}()
	f()
}

func TestBSTree_BuildInvalid(t *testing.T) {
	expectInvalidSlice(t, func() { BuildBSTree([]int{1, 3, 2}, true) })
	expectInvalidSlice(t, func() { BuildBSTree([]int{1, 1}, true) })
	e := InvalidSliceError[int]{3, 2}
	if e.Error() != "Trees: slice isn't strictly ascending: 3 is followed by 2" {
		t.Errorf("unexpected message %q", e.Error())
	}
}

func TestBSTree_Corrupt(t *testing.T) {
	tree := BuildBSTree([]int{3, 1, 2}, false)
	if !tree.Corrupt() {
		t.Errorf("unsorted build is not corrupt")
	}
	tree = BuildBSTree([]int{1, 2, 2}, false)
	if !tree.Corrupt() {
		t.Errorf("duplicate build is not corrupt")
	}
}

func TestBSTree_Clear(t *testing.T) {
	tree := New[int]()
	for _, v := range sample {
		tree.Insert(v)
	}
	tree.Clear()
	if tree.Size() != 0 || tree.Root() != nil || tree.Height() != -1 {
		t.Errorf("tree isn't empty after Clear")
	}
	if !tree.Insert(1) {
		t.Errorf("insert after Clear failed")
	}
}
