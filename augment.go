package seqtree

// RecomputeFunc is the augmentation seam of a sequence tree.
//
// The hook runs on every node whose subtree composition changed, immediately
// after the node's subtree size has been refreshed and after it has already
// run for any affected descendant. A hook maintains derived bottom-up
// aggregates by combining the node's own element with the aggregates of
// n.Left() and n.Right(), writing the result through n.Value().
//
// Hooks must be deterministic, must only touch the given node's value, and
// must tolerate either child being nil. Aggregates are consistent again by
// the time any public tree operation returns.
type RecomputeFunc[T any] func(n *Node[T])

// NewAugmented creates an empty sequence tree carrying a recompute hook.
//
// Trees that take part in the same Merge, InsertMerge or Split must carry
// the same hook; the receiving tree's hook is the one invoked during the
// join, so mixing policies silently corrupts aggregates (the same class of
// contract violation as mixing cursors across trees).
func NewAugmented[T any](recompute RecomputeFunc[T]) *Tree[T] {
	return &Tree[T]{head: newHead[T](), recompute: recompute}
}
