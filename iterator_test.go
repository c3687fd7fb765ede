package seqtree

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestIterForward(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := treeOf(10, 20, 30)
	var got []int
	for it := tree.Begin(); it != tree.End(); it = it.Next() {
		got = append(got, it.Value())
	}
	if !equalSeq(got, []int{10, 20, 30}) {
		t.Errorf("forward iteration yielded %v", got)
	}
}

func TestIterBackward(t *testing.T) {
	tree := treeOf(10, 20, 30)
	var got []int
	for v := range tree.Backward() {
		got = append(got, v)
	}
	if !equalSeq(got, []int{30, 20, 10}) {
		t.Errorf("backward iteration yielded %v", got)
	}
	it := tree.End().Prev()
	if it.Value() != 30 {
		t.Errorf("End().Prev() is %d, expected 30", it.Value())
	}
}

func TestIterArithmetic(t *testing.T) {
	tree := treeOf()
	for i := 0; i < 50; i++ {
		tree.PushBack(i * 10)
	}
	it := tree.Begin().Advance(17)
	if it.Value() != 170 || it.Index() != 17 {
		t.Fatalf("Advance(17) landed on value %d at rank %d", it.Value(), it.Index())
	}
	back := it.Advance(-17)
	if back != tree.Begin() {
		t.Error("Advance(-17) did not return to Begin")
	}
	if d := it.Diff(tree.Begin()); d != 17 {
		t.Errorf("Diff to Begin is %d, expected 17", d)
	}
	if d := tree.End().Diff(tree.Begin()); d != tree.Len() {
		t.Errorf("End-Begin is %d, expected %d", d, tree.Len())
	}
	if !tree.Begin().Before(it) || it.Before(tree.Begin()) {
		t.Error("ordering comparison inconsistent")
	}
	if !it.After(tree.Begin()) {
		t.Error("After inconsistent with Before")
	}
	end := tree.Seek(tree.Len() - 1).Advance(1)
	if end != tree.End() {
		t.Error("advancing past the last element did not yield End")
	}
}

func TestIterSet(t *testing.T) {
	tree := treeOf(1, 2, 3)
	it := tree.Begin().Next()
	it.Set(22)
	if tree.At(1) != 22 {
		t.Errorf("expected At(1)=22 after Iter.Set, is %d", tree.At(1))
	}
}

func TestConstIterIsOneWay(t *testing.T) {
	tree := treeOf(5, 6, 7)
	cit := tree.Begin().Const()
	if cit.Value() != 5 {
		t.Errorf("const cursor value is %d, expected 5", cit.Value())
	}
	cit = cit.Next().Next()
	if cit.Value() != 7 || cit.Index() != 2 {
		t.Errorf("const navigation broken: value %d at rank %d", cit.Value(), cit.Index())
	}
	if cit.Advance(-2).Diff(tree.Begin().Const()) != 0 {
		t.Error("const cursor arithmetic broken")
	}
}

func TestIterStructuralView(t *testing.T) {
	tree := treeOf(1, 2, 3, 4, 5, 6, 7)
	root := tree.End().LeftChild() // the head's left child is the root
	if root.TreeLen() != 7 {
		t.Errorf("root subtree size is %d, expected 7", root.TreeLen())
	}
	if root.LeftChild().TreeLen()+root.RightChild().TreeLen()+1 != 7 {
		t.Error("children sizes do not add up")
	}
	if tree.Begin().LeftChild().IsNil() != true {
		t.Error("leftmost node should have no left child")
	}
}

func TestAllRanksAndValues(t *testing.T) {
	tree := treeOf(4, 5, 6)
	for i, v := range tree.All() {
		if v != tree.At(i) {
			t.Errorf("All() rank %d yields %d, At gives %d", i, v, tree.At(i))
		}
	}
}
