package seqtree

/*
BSD 3-Clause License

Copyright (c) 2021–23, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Node is the augmented tree node. Each node carries the size of its subtree
// (itself included), a red/black color tag, and its black-height: the number
// of black nodes, itself included if black, on any path down to an absent
// child. Sizes drive rank navigation, black-heights drive merge alignment.
//
// Nodes are owned by their tree. Client code only ever observes nodes through
// cursors and through the recompute hook; it must never re-link them.
type Node[T any] struct {
	left, right, parent *Node[T]
	size                int
	blackHeight         int
	black               bool
	value               T
}

// Left returns the node's left child, or nil.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the node's right child, or nil.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Parent returns the node's parent. For the root this is the tree's head
// sentinel, whose parent in turn is nil.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Len returns the number of nodes in the subtree rooted at n, including n
// itself. Len of a nil node is 0.
func (n *Node[T]) Len() int {
	if n == nil {
		return 0
	}
	return n.size
}

// Value returns a pointer to the stored element. Recompute hooks write
// derived aggregates through this pointer.
func (n *Node[T]) Value() *T {
	return &n.value
}

func newNode[T any](value T) *Node[T] {
	return &Node[T]{size: 1, value: value}
}

// newHead creates the sentinel that owns the root and represents the
// end-of-sequence position. Its value stays at the zero value and its
// bookkeeping fields are never consulted.
func newHead[T any]() *Node[T] {
	return &Node[T]{size: 1}
}

// cloneNode copies a node's payload and bookkeeping but none of its links,
// attaching the copy below parent p.
func cloneNode[T any](x, p *Node[T]) *Node[T] {
	return &Node[T]{
		parent:      p,
		size:        x.size,
		blackHeight: x.blackHeight,
		black:       x.black,
		value:       x.value,
	}
}

// --- Edge plumbing ---------------------------------------------------------

// The NoCheck variants require the child to be non-nil; the plain variants
// accept an absent child. Rebalancing code picks whichever the case analysis
// guarantees, avoiding nil tests on edges that cannot be empty.

func connectLeft[T any](p, ch *Node[T]) {
	p.left = ch
	if ch != nil {
		ch.parent = p
	}
}

func connectLeftNoCheck[T any](p, ch *Node[T]) {
	p.left = ch
	ch.parent = p
}

func connectRight[T any](p, ch *Node[T]) {
	p.right = ch
	if ch != nil {
		ch.parent = p
	}
}

func connectRightNoCheck[T any](p, ch *Node[T]) {
	p.right = ch
	ch.parent = p
}

// connectParent puts n into the place orig occupied below orig's parent.
func connectParent[T any](orig, n *Node[T]) {
	p := orig.parent
	n.parent = p
	if p != nil {
		if p.left == orig {
			p.left = n
		} else {
			p.right = n
		}
	}
}

func connectParentNoCheck[T any](orig, n *Node[T]) {
	p := orig.parent
	n.parent = p
	if p.left == orig {
		p.left = n
	} else {
		p.right = n
	}
}

// paintBlack turns a subtree root black, keeping its black-height in step.
// Subtrees cut loose during a split are repainted this way before they may
// serve as roots.
func paintBlack[T any](n *Node[T]) {
	if n != nil {
		if !n.black {
			n.blackHeight++
		}
		n.black = true
	}
}

// --- Size bookkeeping ------------------------------------------------------

// pull invokes the recompute hook, if any. It runs on every node whose
// subtree composition changed, after the node's size has been refreshed.
func (t *Tree[T]) pull(n *Node[T]) {
	if t.recompute != nil {
		t.recompute(n)
	}
}

func (t *Tree[T]) pullSize(n *Node[T]) {
	n.size = n.left.Len() + n.right.Len() + 1
	t.pull(n)
}

func (t *Tree[T]) pullSizeNoCheck(n *Node[T]) {
	n.size = n.left.size + n.right.size + 1
	t.pull(n)
}

// increaseSize adds sz to every subtree size from nd up to, excluding, head,
// and returns the last node below head. Insert repair uses it as the fast
// path once no further recoloring is needed.
func (t *Tree[T]) increaseSize(nd, head *Node[T], sz int) *Node[T] {
	for {
		nd.size += sz
		t.pull(nd)
		if nd.parent == head {
			return nd
		}
		nd = nd.parent
	}
}

func (t *Tree[T]) decreaseSize(nd *Node[T]) {
	for ; nd != t.head; nd = nd.parent {
		nd.size--
		t.pull(nd)
	}
}
