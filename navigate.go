package seqtree

// Raw navigation over the node graph. All primitives are O(log n) and never
// mutate structure; they are the shared substrate of cursors and rebalancing.
//
// The head sentinel participates naturally: next of the last node is the
// head, prev of the head is the last node, and order of the head equals the
// sequence length. That is what makes the head usable as the one-past-the-end
// position in cursor arithmetic.

// first returns the leftmost node of nd's subtree.
func first[T any](nd *Node[T]) *Node[T] {
	for nd.left != nil {
		nd = nd.left
	}
	return nd
}

// last returns the rightmost node of nd's subtree.
func last[T any](nd *Node[T]) *Node[T] {
	for nd.right != nil {
		nd = nd.right
	}
	return nd
}

// next returns nd's in-order successor.
func next[T any](nd *Node[T]) *Node[T] {
	if nd.right != nil {
		return first(nd.right)
	}
	for nd.parent != nil && nd.parent.right == nd {
		nd = nd.parent
	}
	return nd.parent
}

// prev returns nd's in-order predecessor.
func prev[T any](nd *Node[T]) *Node[T] {
	if nd.left != nil {
		return last(nd.left)
	}
	for nd.parent != nil && nd.parent.left == nd {
		nd = nd.parent
	}
	return nd.parent
}

// selectNode returns the node with 0-based in-order rank x within nd's
// subtree, descending by subtree sizes. x must be less than nd.Len().
func selectNode[T any](nd *Node[T], x int) *Node[T] {
	for {
		if nd.left.Len() == x {
			return nd
		}
		if nd.left.Len() > x {
			nd = nd.left
		} else {
			x -= nd.left.Len() + 1
			nd = nd.right
		}
	}
}

// advance moves x positions forward (or backward for negative x) from nd. It
// climbs until an off-path subtree holds enough nodes, then descends with
// selectNode. The target position must exist in the sequence, where the head
// counts as the position one past the last node.
func advance[T any](nd *Node[T], x int) *Node[T] {
	if x == 0 {
		return nd
	}
	if x < 0 {
		g := -x
		for nd.left.Len() < g {
			g -= nd.left.Len() + 1
			for nd.parent != nil && nd.parent.left == nd {
				nd = nd.parent
			}
			nd = nd.parent
			if g == 0 {
				return nd
			}
		}
		return selectNode(nd.left, nd.left.Len()-g)
	}
	g := x
	for nd.right.Len() < g {
		g -= nd.right.Len() + 1
		for nd.parent != nil && nd.parent.right == nd {
			nd = nd.parent
		}
		nd = nd.parent
		if g == 0 {
			return nd
		}
	}
	return selectNode(nd.right, g-1)
}

// order returns nd's 0-based in-order rank within its whole tree, summing
// left-subtree sizes while climbing to the head.
func order[T any](nd *Node[T]) int {
	ans := nd.left.Len()
	for ; nd.parent != nil; nd = nd.parent {
		if nd.parent.right == nd {
			ans += nd.parent.left.Len() + 1
		}
	}
	return ans
}

// difference returns order(a) - order(b) for two nodes of the same tree.
func difference[T any](a, b *Node[T]) int {
	return order(a) - order(b)
}
