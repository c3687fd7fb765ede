package seqtree

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func checkInvariants(t *testing.T, tree *Tree[int]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func collect(tree *Tree[int]) []int {
	var out []int
	tree.ForEach(func(v int) bool {
		out = append(out, v)
		return true
	})
	return out
}

func equalSeq(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func treeOf(values ...int) *Tree[int] {
	tree := New[int]()
	for _, v := range values {
		tree.PushBack(v)
	}
	return tree
}

func TestPushBackAndAccess(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := treeOf(1, 2, 3, 4, 5)
	if tree.Len() != 5 {
		t.Errorf("expected Len()=5, is %d", tree.Len())
	}
	if tree.Front() != 1 {
		t.Errorf("expected Front()=1, is %d", tree.Front())
	}
	if tree.Back() != 5 {
		t.Errorf("expected Back()=5, is %d", tree.Back())
	}
	if tree.At(2) != 3 {
		t.Errorf("expected At(2)=3, is %d", tree.At(2))
	}
	checkInvariants(t, tree)
}

func TestEraseAt(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := treeOf(1, 2, 3, 4, 5)
	tree.EraseAt(2)
	if tree.Len() != 4 {
		t.Errorf("expected Len()=4 after erase, is %d", tree.Len())
	}
	if !equalSeq(collect(tree), []int{1, 2, 4, 5}) {
		t.Errorf("expected sequence [1 2 4 5], is %v", collect(tree))
	}
	checkInvariants(t, tree)
}

func TestPushFrontPopBoth(t *testing.T) {
	tree := New[int]()
	tree.PushFront(2)
	tree.PushFront(1)
	tree.PushBack(3)
	if !equalSeq(collect(tree), []int{1, 2, 3}) {
		t.Fatalf("expected [1 2 3], is %v", collect(tree))
	}
	tree.PopFront()
	tree.PopBack()
	if !equalSeq(collect(tree), []int{2}) {
		t.Fatalf("expected [2], is %v", collect(tree))
	}
	tree.PopBack()
	if !tree.IsEmpty() {
		t.Fatal("expected empty tree after popping all elements")
	}
	checkInvariants(t, tree)
}

func TestSetRefreshesValue(t *testing.T) {
	tree := treeOf(10, 20, 30)
	tree.Set(1, 99)
	if tree.At(1) != 99 {
		t.Errorf("expected At(1)=99 after Set, is %d", tree.At(1))
	}
	checkInvariants(t, tree)
}

func TestClearIsReusable(t *testing.T) {
	tree := treeOf(1, 2, 3, 4, 5, 6, 7, 8)
	tree.Clear()
	if !tree.IsEmpty() || tree.Len() != 0 {
		t.Fatalf("expected empty tree after Clear, Len()=%d", tree.Len())
	}
	tree.PushBack(42)
	if tree.Len() != 1 || tree.Front() != 42 {
		t.Fatal("tree not reusable after Clear")
	}
	checkInvariants(t, tree)
}

func TestRandomizedInsertErase(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	rng := rand.New(rand.NewSource(42))
	tree := New[int]()
	var model []int
	for i := 0; i < 1000; i++ {
		pos := rng.Intn(len(model) + 1)
		tree.InsertAt(pos, i)
		model = append(model[:pos:pos], append([]int{i}, model[pos:]...)...)
		if tree.Len() != len(model) {
			t.Fatalf("step %d: Len()=%d, model has %d", i, tree.Len(), len(model))
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if !equalSeq(collect(tree), model) {
		t.Fatal("sequence diverged from model after inserts")
	}
	for len(model) > 0 {
		pos := rng.Intn(len(model))
		tree.EraseAt(pos)
		model = append(model[:pos:pos], model[pos+1:]...)
		if err := tree.Check(); err != nil {
			t.Fatalf("erase at %d: %v", pos, err)
		}
		if tree.Len() != len(model) {
			t.Fatalf("erase at %d: Len()=%d, model has %d", pos, tree.Len(), len(model))
		}
	}
	if !tree.IsEmpty() {
		t.Fatal("expected empty tree after erasing everything")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	tree := treeOf(1, 2, 3, 4, 5)
	cp := tree.Clone()
	if !equalSeq(collect(cp), collect(tree)) {
		t.Fatalf("clone differs: %v vs %v", collect(cp), collect(tree))
	}
	checkInvariants(t, cp)
	cp.Set(0, 100)
	cp.EraseAt(4)
	if tree.At(0) != 1 || tree.Len() != 5 {
		t.Fatal("mutating the clone affected the original")
	}
	tree.PushBack(6)
	if cp.Len() != 4 {
		t.Fatal("mutating the original affected the clone")
	}
	checkInvariants(t, tree)
	checkInvariants(t, cp)
}

func TestMoveLeavesSourceEmpty(t *testing.T) {
	tree := treeOf(1, 2, 3)
	moved := tree.Move()
	if !tree.IsEmpty() {
		t.Fatal("expected moved-from tree to be empty")
	}
	if !equalSeq(collect(moved), []int{1, 2, 3}) {
		t.Fatalf("expected moved tree [1 2 3], is %v", collect(moved))
	}
	tree.PushBack(9) // moved-from tree stays usable
	if tree.Len() != 1 || moved.Len() != 3 {
		t.Fatal("moved-from tree not independent of its contents' new owner")
	}
}

func TestSwap(t *testing.T) {
	a := treeOf(1, 2)
	b := treeOf(3, 4, 5)
	a.Swap(b)
	if !equalSeq(collect(a), []int{3, 4, 5}) || !equalSeq(collect(b), []int{1, 2}) {
		t.Fatalf("swap failed: a=%v b=%v", collect(a), collect(b))
	}
}

func TestSelectOrderRoundtrip(t *testing.T) {
	tree := treeOf()
	for i := 0; i < 200; i++ {
		tree.PushBack(i)
	}
	for r := 0; r < tree.Len(); r++ {
		nd := selectNode(tree.head.left, r)
		if order(nd) != r {
			t.Fatalf("select/order roundtrip broken at rank %d: got %d", r, order(nd))
		}
	}
}

func TestAdvanceMatchesDifference(t *testing.T) {
	tree := treeOf()
	for i := 0; i < 128; i++ {
		tree.PushBack(i)
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		from := rng.Intn(tree.Len())
		to := rng.Intn(tree.Len())
		nd := selectNode(tree.head.left, from)
		moved := advance(nd, to-from)
		if got := difference(moved, nd); got != to-from {
			t.Fatalf("advance(%d, %d) landed %d positions away", from, to-from, got)
		}
		if order(moved) != to {
			t.Fatalf("advance(%d, %d) landed at rank %d", from, to-from, order(moved))
		}
	}
}
