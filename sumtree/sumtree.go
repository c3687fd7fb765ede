package sumtree

import (
	"github.com/npillmayer/seqtree"
	"golang.org/x/exp/constraints"
)

// Summable constrains the element types a sum tree can aggregate.
type Summable interface {
	constraints.Integer | constraints.Float
}

// entry pairs an element with the sum of the subtree rooted at its node.
// The sum field is owned by the recompute hook.
type entry[V Summable] struct {
	val V
	sum V
}

// Tree is a positional sequence of numbers that additionally answers prefix
// sum and sum-guided search queries in O(log n).
//
// The zero value is not usable; create trees with New.
type Tree[V Summable] struct {
	seq *seqtree.Tree[entry[V]]
}

// New creates an empty sum tree.
func New[V Summable]() *Tree[V] {
	return &Tree[V]{
		seq: seqtree.NewAugmented(func(n *seqtree.Node[entry[V]]) {
			e := n.Value()
			e.sum = e.val + subtreeSum(n.Left()) + subtreeSum(n.Right())
		}),
	}
}

func subtreeSum[V Summable](n *seqtree.Node[entry[V]]) V {
	if n == nil {
		var zero V
		return zero
	}
	return n.Value().sum
}

// Len returns the number of elements.
func (t *Tree[V]) Len() int {
	return t.seq.Len()
}

// IsEmpty reports whether the tree holds no elements.
func (t *Tree[V]) IsEmpty() bool {
	return t.seq.IsEmpty()
}

// At returns the element at rank i. i must be in [0, Len).
func (t *Tree[V]) At(i int) V {
	return t.seq.At(i).val
}

// Total returns the sum of all elements. O(1).
func (t *Tree[V]) Total() V {
	if t.seq.IsEmpty() {
		var zero V
		return zero
	}
	return t.seq.Root().Value().sum
}

// Append adds v at the end of the sequence.
func (t *Tree[V]) Append(v V) {
	t.seq.PushBack(entry[V]{val: v})
}

// Insert places v at rank i. i must be in [0, Len].
func (t *Tree[V]) Insert(i int, v V) {
	t.seq.InsertAt(i, entry[V]{val: v})
}

// Erase removes the element at rank i. i must be in [0, Len).
func (t *Tree[V]) Erase(i int) {
	t.seq.EraseAt(i)
}

// Update overwrites the element at rank i, refreshing sums on the way up.
func (t *Tree[V]) Update(i int, v V) {
	t.seq.Set(i, entry[V]{val: v})
}

// PrefixSum returns the sum of the first i elements. i must be in [0, Len].
func (t *Tree[V]) PrefixSum(i int) V {
	var acc V
	n := t.seq.Root()
	for n != nil && i > 0 {
		ll := n.Left().Len()
		if i <= ll {
			n = n.Left()
			continue
		}
		acc += subtreeSum(n.Left()) + n.Value().val
		i -= ll + 1
		n = n.Right()
	}
	return acc
}

// FindPrefix returns the rank of the first element whose inclusive prefix
// sum exceeds target, descending on subtree sums. With all elements
// non-negative, prefix sums are monotonic and the answer is unique; ok is
// false if the total never exceeds target.
func (t *Tree[V]) FindPrefix(target V) (rank int, ok bool) {
	idx := 0
	var acc V
	n := t.seq.Root()
	for n != nil {
		leftSum := subtreeSum(n.Left())
		if target < acc+leftSum {
			n = n.Left()
			continue
		}
		if target < acc+leftSum+n.Value().val {
			tracer().Debugf("sum search hit rank %d", idx+n.Left().Len())
			return idx + n.Left().Len(), true
		}
		acc += leftSum + n.Value().val
		idx += n.Left().Len() + 1
		n = n.Right()
	}
	return t.seq.Len(), false
}

// Split detaches everything from rank i onward into a new sum tree,
// retaining the prefix. Sums on both sides are consistent afterwards.
func (t *Tree[V]) Split(i int) *Tree[V] {
	return &Tree[V]{seq: t.seq.SplitAt(i)}
}

// Merge appends all of other's elements after t's, leaving other empty.
func (t *Tree[V]) Merge(other *Tree[V]) {
	t.seq.Merge(other.seq)
}

// Values returns the elements as a slice, in sequence order.
func (t *Tree[V]) Values() []V {
	vals := make([]V, 0, t.seq.Len())
	for e := range t.seq.Values() {
		vals = append(vals, e.val)
	}
	return vals
}
