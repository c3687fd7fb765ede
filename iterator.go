package seqtree

// Iter is a mutable cursor into a sequence tree: a bare reference to a node,
// or to the tree's head for the one-past-the-end position. Cursors stay
// valid across mutations elsewhere in the tree; see Tree.Erase for the one
// subtlety around two-child removal.
//
// Random-access arithmetic (Advance, Diff, Index, the ordering predicates)
// costs O(log n) per call, not O(1). Tight loops should step sequentially
// with Next/Prev or use the range functions on Tree.
//
// Cursors compare with ==: two cursors are equal exactly if they reference
// the same node. The ordering predicates must only combine cursors of the
// same tree.
type Iter[T any] struct {
	node *Node[T]
}

// Value returns the referenced element. The cursor must not be at End.
func (it Iter[T]) Value() T {
	return it.node.value
}

// Set overwrites the referenced element. The cursor must not be at End.
//
// Set does not run the recompute hook; on augmented trees prefer Tree.Set,
// which refreshes aggregates along the ancestor path.
func (it Iter[T]) Set(value T) {
	it.node.value = value
}

// Next returns the cursor one position forward. Incrementing End is
// undefined.
func (it Iter[T]) Next() Iter[T] {
	return Iter[T]{node: next(it.node)}
}

// Prev returns the cursor one position backward. Decrementing Begin is
// undefined.
func (it Iter[T]) Prev() Iter[T] {
	return Iter[T]{node: prev(it.node)}
}

// Advance returns the cursor moved delta positions (negative for backward).
// The target position must exist, End included.
func (it Iter[T]) Advance(delta int) Iter[T] {
	return Iter[T]{node: advance(it.node, delta)}
}

// Index returns the cursor's 0-based rank; End yields Len.
func (it Iter[T]) Index() int {
	return order(it.node)
}

// Diff returns the number of positions it lies ahead of other.
func (it Iter[T]) Diff(other Iter[T]) int {
	return difference(it.node, other.node)
}

// Before reports whether it references an earlier position than other.
func (it Iter[T]) Before(other Iter[T]) bool {
	return difference(it.node, other.node) < 0
}

// After reports whether it references a later position than other.
func (it Iter[T]) After(other Iter[T]) bool {
	return other.Before(it)
}

// IsNil reports whether the cursor references no node at all (the zero
// cursor). An End cursor is not nil.
func (it Iter[T]) IsNil() bool {
	return it.node == nil
}

// TreeLen returns the size of the subtree under the cursor's node. Together
// with LeftChild and RightChild this exposes the structural view that
// aggregate-guided searches descend on; the children of End form the whole
// tree.
func (it Iter[T]) TreeLen() int {
	return it.node.Len()
}

// LeftChild returns a cursor on the node's left child (possibly nil).
func (it Iter[T]) LeftChild() Iter[T] {
	return Iter[T]{node: it.node.left}
}

// RightChild returns a cursor on the node's right child (possibly nil).
func (it Iter[T]) RightChild() Iter[T] {
	return Iter[T]{node: it.node.right}
}

// Const converts to a read-only cursor. There is no conversion back.
func (it Iter[T]) Const() ConstIter[T] {
	return ConstIter[T]{node: it.node}
}

// ConstIter is the read-only counterpart of Iter: same navigation, no write
// access to the referenced element. It is constructed from an Iter via
// Const, never the other way around.
type ConstIter[T any] struct {
	node *Node[T]
}

// Value returns the referenced element. The cursor must not be at End.
func (it ConstIter[T]) Value() T {
	return it.node.value
}

// Next returns the cursor one position forward.
func (it ConstIter[T]) Next() ConstIter[T] {
	return ConstIter[T]{node: next(it.node)}
}

// Prev returns the cursor one position backward.
func (it ConstIter[T]) Prev() ConstIter[T] {
	return ConstIter[T]{node: prev(it.node)}
}

// Advance returns the cursor moved delta positions (negative for backward).
func (it ConstIter[T]) Advance(delta int) ConstIter[T] {
	return ConstIter[T]{node: advance(it.node, delta)}
}

// Index returns the cursor's 0-based rank; End yields Len.
func (it ConstIter[T]) Index() int {
	return order(it.node)
}

// Diff returns the number of positions it lies ahead of other.
func (it ConstIter[T]) Diff(other ConstIter[T]) int {
	return difference(it.node, other.node)
}

// Before reports whether it references an earlier position than other.
func (it ConstIter[T]) Before(other ConstIter[T]) bool {
	return difference(it.node, other.node) < 0
}

// After reports whether it references a later position than other.
func (it ConstIter[T]) After(other ConstIter[T]) bool {
	return other.Before(it)
}

// IsNil reports whether the cursor references no node at all.
func (it ConstIter[T]) IsNil() bool {
	return it.node == nil
}

// TreeLen returns the size of the subtree under the cursor's node.
func (it ConstIter[T]) TreeLen() int {
	return it.node.Len()
}

// LeftChild returns a cursor on the node's left child (possibly nil).
func (it ConstIter[T]) LeftChild() ConstIter[T] {
	return ConstIter[T]{node: it.node.left}
}

// RightChild returns a cursor on the node's right child (possibly nil).
func (it ConstIter[T]) RightChild() ConstIter[T] {
	return ConstIter[T]{node: it.node.right}
}
