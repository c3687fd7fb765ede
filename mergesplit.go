package seqtree

// mergeSubtrees joins two detached, balanced subtrees around the pivot node m
// and returns the root of the combined balanced subtree. l precedes m, r
// follows it; either side may be nil. No value is ever compared: the join is
// aligned purely on black-heights.
//
//   - One side absent: m becomes a red leaf at the extreme end of the other
//     side and ordinary insert repair runs over the detached subtree.
//   - Equal black-heights: m becomes a black root over both sides, O(1).
//   - Unequal: descend the taller side's inner spine to a black node of the
//     shorter side's black-height, graft m there as a red internal node, and
//     run insert repair weighted with the size of the grafted portion, so
//     ancestor sizes come out right in a single pass.
func (t *Tree[T]) mergeSubtrees(l, m, r *Node[T]) *Node[T] {
	if l == nil {
		m.left, m.right = nil, nil
		m.size = 1
		if r == nil {
			m.black = true
			m.blackHeight = 1
			return m
		}
		m.black = false
		m.blackHeight = 0
		connectLeftNoCheck(first(r), m)
		r.parent = nil
		return t.insertRepair(m, nil, 1)
	}
	if r == nil {
		m.left, m.right = nil, nil
		m.size = 1
		m.black = false
		m.blackHeight = 0
		connectRightNoCheck(last(l), m)
		l.parent = nil
		return t.insertRepair(m, nil, 1)
	}
	if l.blackHeight == r.blackHeight {
		connectLeftNoCheck(m, l)
		connectRightNoCheck(m, r)
		t.pullSizeNoCheck(m)
		m.black = true
		m.blackHeight = l.blackHeight + 1
		return m
	}
	if l.blackHeight < r.blackHeight {
		r.parent = nil
		x := r
		for !x.black || x.blackHeight != l.blackHeight {
			x = x.left
		}
		connectParentNoCheck(x, m)
		connectLeftNoCheck(m, l)
		connectRightNoCheck(m, x)
		t.pullSizeNoCheck(m)
		m.black = false
		m.blackHeight = l.blackHeight
		return t.insertRepair(m, nil, l.size+1)
	}
	l.parent = nil
	x := l
	for !x.black || x.blackHeight != r.blackHeight {
		x = x.right
	}
	connectParentNoCheck(x, m)
	connectLeftNoCheck(m, x)
	connectRightNoCheck(m, r)
	t.pullSizeNoCheck(m)
	m.black = false
	m.blackHeight = r.blackHeight
	return t.insertRepair(m, nil, r.size+1)
}

// splitSubtrees decomposes the tree around nd into two detached balanced
// subtrees: everything ordered before nd and everything ordered after it.
// With includePivot, nd itself is folded into the right side; otherwise nd is
// left dangling for the caller to discard.
//
// The decomposition climbs the ancestor spine, re-joining each ancestor's
// off-path child (repainted black, since it may have to serve as a root) into
// the matching accumulator, with the ancestor as pivot. The tree's head is
// left untouched; the caller re-attaches the left result.
func (t *Tree[T]) splitSubtrees(nd *Node[T], includePivot bool) (left, right *Node[T]) {
	assert(nd != t.head, "split pivot must be a value node")
	p := nd.parent
	left, right = nd.left, nd.right
	paintBlack(left)
	paintBlack(right)
	if includePivot {
		right = t.mergeSubtrees(nil, nd, right)
	}
	for p != t.head {
		isLeft := p.left == nd
		nd = p
		p = p.parent
		if isLeft {
			paintBlack(nd.right)
			right = t.mergeSubtrees(right, nd, nd.right)
		} else {
			paintBlack(nd.left)
			left = t.mergeSubtrees(nd.left, nd, left)
		}
	}
	return left, right
}
