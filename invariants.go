package seqtree

import "fmt"

// Check validates the full set of structural invariants: size bookkeeping,
// parent back-links, red-black coloring and black-height consistency.
//
// This checker is intentionally strict and exhaustive (O(n)); it is meant
// for tests and debugging sessions, not for production paths.
func (t *Tree[T]) Check() error {
	root := t.head.left
	if root == nil {
		return nil
	}
	if root.parent != t.head {
		return fmt.Errorf("%w: root parent is not the head sentinel", ErrInvariantViolated)
	}
	if !root.black {
		return fmt.Errorf("%w: root is red", ErrInvariantViolated)
	}
	return checkNode(root)
}

func checkNode[T any](n *Node[T]) error {
	want := n.blackHeight
	if n.black {
		want--
	}
	if blackHeightOf(n.left) != want || blackHeightOf(n.right) != want {
		return fmt.Errorf("%w: black-height %d/%d under node of height %d (rank %d)",
			ErrInvariantViolated, blackHeightOf(n.left), blackHeightOf(n.right), n.blackHeight, order(n))
	}
	if !n.black {
		if (n.left != nil && !n.left.black) || (n.right != nil && !n.right.black) {
			return fmt.Errorf("%w: red node with red child (rank %d)", ErrInvariantViolated, order(n))
		}
	}
	if n.left != nil && n.left.parent != n {
		return fmt.Errorf("%w: broken left parent link (rank %d)", ErrInvariantViolated, order(n))
	}
	if n.right != nil && n.right.parent != n {
		return fmt.Errorf("%w: broken right parent link (rank %d)", ErrInvariantViolated, order(n))
	}
	if n.size != n.left.Len()+n.right.Len()+1 {
		return fmt.Errorf("%w: size %d != %d+%d+1 (rank %d)",
			ErrInvariantViolated, n.size, n.left.Len(), n.right.Len(), order(n))
	}
	if n.left != nil {
		if err := checkNode(n.left); err != nil {
			return err
		}
	}
	if n.right != nil {
		if err := checkNode(n.right); err != nil {
			return err
		}
	}
	return nil
}

func blackHeightOf[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return n.blackHeight
}
