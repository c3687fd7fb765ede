package seqtree

/*
BSD 3-Clause License

Copyright (c) 2021–23, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "iter"

// Tree stores an ordered sequence of values in a balanced binary tree.
//
// A tree created by New is empty and ready for use. All positional
// operations are O(log n); whole-structure merge and split are O(log n) as
// well. Positions are 0-based ranks within the sequence.
//
// Out-of-range positions, access into an empty tree, and cursors from a
// different tree are contract violations and not checked; see the package
// documentation.
type Tree[T any] struct {
	head      *Node[T] // sentinel; head.left is the root
	recompute RecomputeFunc[T]
}

// New creates an empty sequence tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{head: newHead[T]()}
}

// Len returns the number of elements in the sequence. O(1).
func (t *Tree[T]) Len() int {
	return t.head.left.Len()
}

// IsEmpty reports whether the tree holds no elements. O(1).
func (t *Tree[T]) IsEmpty() bool {
	return t.head.left == nil
}

// Root returns the tree's root node, or nil for an empty tree. Derived
// structures use it for aggregate-guided descents.
func (t *Tree[T]) Root() *Node[T] {
	return t.head.left
}

// At returns the element at rank i. i must be in [0, Len).
func (t *Tree[T]) At(i int) T {
	return selectNode(t.head.left, i).value
}

// Set overwrites the element at rank i and refreshes aggregates along the
// ancestor path. i must be in [0, Len).
func (t *Tree[T]) Set(i int, value T) {
	nd := selectNode(t.head.left, i)
	nd.value = value
	for n := nd; n != t.head; n = n.parent {
		t.pull(n)
	}
}

// Front returns the first element. The tree must not be empty.
func (t *Tree[T]) Front() T {
	return first(t.head.left).value
}

// Back returns the last element. The tree must not be empty.
func (t *Tree[T]) Back() T {
	return last(t.head.left).value
}

// PushBack appends value at the end of the sequence.
func (t *Tree[T]) PushBack(value T) {
	t.insertBefore(t.head, newNode(value))
}

// PushFront prepends value at the start of the sequence.
func (t *Tree[T]) PushFront(value T) {
	t.insertBefore(first(t.head), newNode(value))
}

// PopBack removes the last element. The tree must not be empty.
func (t *Tree[T]) PopBack() {
	detach(t.removeNode(last(t.head.left)))
}

// PopFront removes the first element. The tree must not be empty.
func (t *Tree[T]) PopFront() {
	detach(t.removeNode(first(t.head.left)))
}

// Insert places value immediately before the position it, which may be End,
// and returns a cursor on the new element.
func (t *Tree[T]) Insert(it Iter[T], value T) Iter[T] {
	nd := newNode(value)
	t.insertBefore(it.node, nd)
	return Iter[T]{node: nd}
}

// InsertAt places value at rank i, shifting later elements one position to
// the right. i must be in [0, Len].
func (t *Tree[T]) InsertAt(i int, value T) Iter[T] {
	return t.Insert(t.Seek(i), value)
}

// Erase removes the element at it.
//
// Removal of a node with two children physically destroys the node of the
// in-order predecessor after swapping values with it: a cursor held on the
// predecessor position dangles afterwards, while a cursor on it stays valid
// and observes the predecessor's former value. This matches the container's
// cursor-stability contract; see the package documentation.
func (t *Tree[T]) Erase(it Iter[T]) {
	detach(t.removeNode(it.node))
}

// EraseAt removes the element at rank i. i must be in [0, Len).
func (t *Tree[T]) EraseAt(i int) {
	detach(t.removeNode(selectNode(t.head.left, i)))
}

// Clear removes all elements. The teardown is iterative, so arbitrarily tall
// trees cost no call-stack depth, and every node is unlinked exactly once.
func (t *Tree[T]) Clear() {
	clearSubtree(t.head)
}

// clearSubtree unlinks every node below nd in post-order, without recursion.
// Severing child and parent edges as we go lets each node be collected
// independently of its former neighbors.
func clearSubtree[T any](nd *Node[T]) {
	now := nd
	for {
		tmp := now
		if now.left != nil {
			now = now.left
			tmp.left = nil
		} else if now.right != nil {
			now = now.right
			tmp.right = nil
		} else if now == nd {
			break
		} else {
			now = now.parent
			tmp.parent = nil
		}
	}
}

// detach severs a removed node's stale links so the cursor-holder's garbage
// does not pin the rest of the tree.
func detach[T any](nd *Node[T]) {
	nd.left, nd.right, nd.parent = nil, nil, nil
}

// Clone returns a deep copy: a structurally identical tree with independent
// node ownership, preserving size, color and black-height per node. The
// recompute hook is shared. O(n), iterative.
func (t *Tree[T]) Clone() *Tree[T] {
	nt := &Tree[T]{head: newHead[T](), recompute: t.recompute}
	copySubtree(nt.head, t.head)
	return nt
}

func copySubtree[T any](dest, orig *Node[T]) {
	now := orig
	for {
		if dest.left == nil && now.left != nil {
			dest.left = cloneNode(now.left, dest)
			dest = dest.left
			now = now.left
		} else if dest.right == nil && now.right != nil {
			dest.right = cloneNode(now.right, dest)
			dest = dest.right
			now = now.right
		} else if now == orig {
			break
		} else {
			dest = dest.parent
			now = now.parent
		}
	}
}

// Swap exchanges the contents of two trees in O(1).
func (t *Tree[T]) Swap(other *Tree[T]) {
	t.head, other.head = other.head, t.head
	t.recompute, other.recompute = other.recompute, t.recompute
}

// Move transfers the tree's contents into a fresh tree in O(1), leaving the
// receiver empty but valid.
func (t *Tree[T]) Move() *Tree[T] {
	nt := &Tree[T]{head: t.head, recompute: t.recompute}
	t.head = newHead[T]()
	return nt
}

// Begin returns a cursor on the first element, or End for an empty tree.
func (t *Tree[T]) Begin() Iter[T] {
	return Iter[T]{node: first(t.head)}
}

// End returns the one-past-the-end cursor.
func (t *Tree[T]) End() Iter[T] {
	return Iter[T]{node: t.head}
}

// Seek returns a cursor on rank i, or End for i == Len. i must be in
// [0, Len].
func (t *Tree[T]) Seek(i int) Iter[T] {
	if i == t.Len() {
		return t.End()
	}
	return Iter[T]{node: selectNode(t.head.left, i)}
}

// Merge appends all of other's elements after t's, in order, leaving other
// empty. The join transfers nodes instead of copying them: the smaller tree
// donates a boundary element as the structural pivot, so the cost is
// O(log(n+m)).
//
// Both trees must use the same recompute hook (or none).
func (t *Tree[T]) Merge(other *Tree[T]) {
	if other.IsEmpty() {
		return
	}
	if t.IsEmpty() {
		t.head, other.head = other.head, t.head
		return
	}
	var pivot *Node[T]
	if other.head.left.size < t.head.left.size {
		pivot = other.removeNode(first(other.head.left))
	} else {
		pivot = t.removeNode(last(t.head.left))
	}
	connectLeft(t.head, t.mergeSubtrees(t.head.left, pivot, other.head.left))
	other.head.left = nil
}

// InsertMerge places value between t's elements and other's, donating all of
// other's nodes into t. other is left empty. The new element itself serves
// as the structural pivot, so no boundary element needs to be removed first.
func (t *Tree[T]) InsertMerge(other *Tree[T], value T) {
	connectLeft(t.head, t.mergeSubtrees(t.head.left, newNode(value), other.head.left))
	other.head.left = nil
}

// Split detaches everything from position it (inclusive) onward into a new
// tree and returns it; t retains the prefix. Splitting at End returns an
// empty tree. O(log n) amortized.
func (t *Tree[T]) Split(it Iter[T]) *Tree[T] {
	ret := &Tree[T]{head: newHead[T](), recompute: t.recompute}
	if it.node == t.head {
		return ret
	}
	l, r := t.splitSubtrees(it.node, true)
	connectLeft(t.head, l)
	connectLeft(ret.head, r)
	return ret
}

// SplitAt is Split at rank i. i must be in [0, Len].
func (t *Tree[T]) SplitAt(i int) *Tree[T] {
	return t.Split(t.Seek(i))
}

// EraseAndSplit removes the element at it and returns a new tree holding
// everything that was ordered strictly after it; t retains the prefix.
func (t *Tree[T]) EraseAndSplit(it Iter[T]) *Tree[T] {
	l, r := t.splitSubtrees(it.node, false)
	detach(it.node)
	connectLeft(t.head, l)
	ret := &Tree[T]{head: newHead[T](), recompute: t.recompute}
	connectLeft(ret.head, r)
	return ret
}

// PartitionBound binary-searches for the first position whose value fails
// pred, assuming pred is monotonic over the sequence: true for a prefix,
// false from some position on. Returns End if pred holds everywhere.
//
// The tree itself never orders values; PartitionBound is the seam through
// which callers impose sorted semantics of their own.
func (t *Tree[T]) PartitionBound(pred func(T) bool) Iter[T] {
	now, bound := t.head.left, t.head
	for now != nil {
		if pred(now.value) {
			now = now.right
		} else {
			bound = now
			now = now.left
		}
	}
	return Iter[T]{node: bound}
}

// IterPartitionBound is PartitionBound with the predicate receiving a
// read-only cursor instead of a raw value, for predicates that need
// positional context or subtree aggregates.
func (t *Tree[T]) IterPartitionBound(pred func(ConstIter[T]) bool) Iter[T] {
	now, bound := t.head.left, t.head
	for now != nil {
		if pred(ConstIter[T]{node: now}) {
			now = now.right
		} else {
			bound = now
			now = now.left
		}
	}
	return Iter[T]{node: bound}
}

// ForEach walks the sequence in order. Iteration stops early if fn returns
// false.
func (t *Tree[T]) ForEach(fn func(value T) bool) {
	for nd := first(t.head); nd != t.head; nd = next(nd) {
		if !fn(nd.value) {
			return
		}
	}
}

// Values ranges over the sequence in order.
func (t *Tree[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for nd := first(t.head); nd != t.head; nd = next(nd) {
			if !yield(nd.value) {
				return
			}
		}
	}
}

// Backward ranges over the sequence in reverse order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for nd := prev(t.head); nd != nil; nd = prev(nd) {
			if !yield(nd.value) {
				return
			}
		}
	}
}

// All ranges over (rank, value) pairs in order.
func (t *Tree[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for nd := first(t.head); nd != t.head; nd = next(nd) {
			if !yield(i, nd.value) {
				return
			}
			i++
		}
	}
}
