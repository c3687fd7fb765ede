package seqtree

// removeNode unlinks one node from the tree and returns the node that was
// physically detached.
//
// A node with two children is not detached itself: its value is swapped with
// its in-order predecessor's, and the predecessor is removed instead. The
// returned node is therefore not necessarily a. Callers holding cursors on
// the predecessor position must treat them as dangling afterwards.
func (t *Tree[T]) removeNode(a *Node[T]) *Node[T] {
	if a.left != nil && a.right != nil {
		tmp := last(a.left)
		tmp.value, a.value = a.value, tmp.value
		a = tmp
	}
	if !a.black {
		// A red node here has no children; cut it off.
		if a.parent.left == a {
			a.parent.left = nil
		} else {
			a.parent.right = nil
		}
		t.decreaseSize(a.parent)
	} else {
		child := a.left
		if child == nil {
			child = a.right
		}
		if child != nil {
			// Black with one child: the child is red, replace and repaint.
			child.black = true
			child.blackHeight++
			connectParent(a, child)
			t.decreaseSize(child.parent)
		} else if a.parent.left == a {
			a.parent.left = nil
			t.removeRepair(a.parent, a.parent.right)
		} else {
			a.parent.right = nil
			t.removeRepair(a.parent, a.parent.left)
		}
	}
	return a
}

// removeRepair absorbs the black deficiency left by detaching a black leaf
// below p, with s the sibling on p's surviving side. It also owns the size
// decrement of the ancestor chain: every case either decrements as it
// recolors or ends in a decreaseSize run from the right spot.
func (t *Tree[T]) removeRepair(p, s *Node[T]) {
	if p == t.head {
		return
	}
	for {
		if !s.black {
			// Red sibling: rotate s above p, swap colors, and re-derive the
			// sibling on the deficient side. Fall through to the black-sibling
			// cases below. The pullSize results reflect the node already
			// removed, while the fall-through expects pre-removal sizes on
			// this path, so both get their one-off back.
			p.black = false
			p.blackHeight--
			s.black = true
			s.blackHeight++
			connectParentNoCheck(p, s)
			if p.left == s {
				connectLeft(p, s.right)
				connectRightNoCheck(s, p)
				t.pullSize(p)
				t.pullSize(s)
				p.size++
				s.size++
				s = p.left
			} else {
				connectRight(p, s.left)
				connectLeftNoCheck(s, p)
				t.pullSize(p)
				t.pullSize(s)
				p.size++
				s.size++
				s = p.right
			}
			break
		}
		if p.black && (s.left == nil || s.left.black) && (s.right == nil || s.right.black) {
			// Black parent, black sibling, black nephews: recolor s red and
			// push the deficiency up one level.
			s.black = false
			s.blackHeight--
			p.size--
			p.blackHeight--
			t.pull(p)
			nd := p
			p = nd.parent
			if p == t.head { // deficiency absorbed at the root
				return
			}
			if p.left == nd {
				s = p.right
			} else {
				s = p.left
			}
			continue
		}
		break
	}
	// s is black from here on.
	var sin, sout *Node[T] // nephews near to / far from the deficiency
	if p.left == s {
		sin, sout = s.right, s.left
	} else {
		sin, sout = s.left, s.right
	}
	if sout != nil && !sout.black {
		// Far nephew red: single rotation, s takes p's place and color.
		sout.black = true
		sout.blackHeight++
		if p.black {
			s.blackHeight++
			p.blackHeight--
		}
		s.black = p.black
		p.black = true
		connectParentNoCheck(p, s)
		if p.left == s {
			connectLeft(p, s.right)
			connectRightNoCheck(s, p)
		} else {
			connectRight(p, s.left)
			connectLeftNoCheck(s, p)
		}
		t.pullSize(p)
		t.pullSizeNoCheck(s)
		t.decreaseSize(s.parent)
	} else if sin != nil && !sin.black {
		// Near nephew red: double rotation lifts it between s and p.
		pWasBlack := p.black
		if pWasBlack {
			p.blackHeight--
			sin.blackHeight++
		}
		sin.blackHeight++
		sin.black = pWasBlack
		p.black = true
		connectParentNoCheck(p, sin)
		if p.left == s {
			connectRight(s, sin.left)
			connectLeft(p, sin.right)
			connectRightNoCheck(sin, p)
			connectLeftNoCheck(sin, s)
		} else {
			connectLeft(s, sin.right)
			connectRight(p, sin.left)
			connectLeftNoCheck(sin, p)
			connectRightNoCheck(sin, s)
		}
		t.pullSize(p)
		t.pullSize(s)
		t.pullSizeNoCheck(sin)
		t.decreaseSize(sin.parent)
	} else {
		// Red parent, all nephews black: recoloring alone absorbs it.
		s.black = false
		s.blackHeight--
		p.black = true
		t.decreaseSize(p)
	}
}
