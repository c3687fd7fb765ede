package seqtree

// insertBefore links b as the in-order predecessor position of a, or at the
// end of the sequence if a is the head, and repairs the tree. b must be a
// fresh red node of size 1.
func (t *Tree[T]) insertBefore(a, b *Node[T]) {
	assert(b.size == 1 && !b.black, "insertBefore requires a fresh red node")
	if a != t.head {
		if a.left == nil {
			connectLeftNoCheck(a, b)
		} else {
			connectRightNoCheck(last(a.left), b)
		}
	} else if t.head.left == nil {
		connectLeftNoCheck(t.head, b)
	} else {
		connectRightNoCheck(last(t.head.left), b)
	}
	t.insertRepair(b, t.head, 1)
}

// insertRepair restores the red-black invariants after nd has been attached
// as a red node, propagating subtree size increments of sz along the way and
// returning the final root below head.
//
// sz is 1 for a plain insertion. The merge engine attaches a pivot that
// already carries a whole subtree and passes the combined size, so every
// ancestor is corrected by the full increment in the same single pass.
//
// head bounds the climb: the tree's head sentinel for in-tree repairs, nil
// when repairing a detached subtree during a merge.
func (t *Tree[T]) insertRepair(nd, head *Node[T], sz int) *Node[T] {
	t.pull(nd)
	for {
		p := nd.parent
		if p == head { // nd is the root: paint it black
			nd.black = true
			nd.blackHeight++
			return nd
		}
		if p.black { // no conflict, sizes only
			return t.increaseSize(p, head, sz)
		}
		g := p.parent
		var u *Node[T] // uncle
		if g.left == p {
			u = g.right
		} else {
			u = g.left
		}
		if u == nil || u.black {
			// Red parent, black uncle: rotate p above g. An inner grandchild
			// first rotates into the parent position (zig-zag).
			if p == g.left {
				if nd == p.right {
					nd, p = p, nd
					connectRight(nd, p.left)
					connectLeftNoCheck(p, nd)
					t.pullSize(nd)
				}
				connectParent(g, p)
				connectLeft(g, p.right)
				connectRightNoCheck(p, g)
			} else {
				if nd == p.left {
					nd, p = p, nd
					connectLeft(nd, p.right)
					connectRightNoCheck(p, nd)
					t.pullSize(nd)
				}
				connectParent(g, p)
				connectRight(g, p.left)
				connectLeftNoCheck(p, g)
			}
			t.pullSize(g)
			g.black = false
			g.blackHeight--
			t.pullSizeNoCheck(p)
			p.black = true
			p.blackHeight++
			if p.parent == head {
				return p
			}
			return t.increaseSize(p.parent, head, sz)
		}
		// Red parent, red uncle: recolor and push the conflict up to g.
		p.size += sz
		p.black = true
		p.blackHeight++
		t.pull(p)
		g.size += sz
		g.black = false
		t.pull(g)
		u.black = true
		u.blackHeight++
		nd = g
	}
}
