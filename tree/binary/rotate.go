package binary

import (
	"fmt"
)

// Rotate swaps the parent-child relationship between child and its
// parent, moving child into the position parent held.
//
// If child is the left child of parent, this is a right rotation:
//	      p            c
//	     / \          / \
//	    c   z   ->   x   p
//	   / \              / \
//	  x   m            m   z
// If child is the right child of parent, it is the mirror image,
// a left rotation:
//	    p                c
//	   / \              / \
//	  z   c     ->     p   x
//	     / \          / \
//	    m   x        z   m
// The middle subtree m moves from child to parent. If parent was the
// root, child becomes the root. The in-order sequence z, p, m, c, x (or
// its mirror) is preserved, and no node is created or dropped.
//
// Rotate returns ErrInvalidArgument if either node is nil, was not
// created by this tree since its last Clear, or if child is not a direct
// child of parent. It returns ErrInvariantViolation if the links around
// parent are found inconsistent. On error the tree is not modified.
func (t *Tree[T]) Rotate(child, parent *Node[T]) error {
	if child == nil || parent == nil {
		return fmt.Errorf("%w: cannot rotate a nil node", ErrInvalidArgument)
	}

	if !t.owns(child) || !t.owns(parent) {
		return fmt.Errorf("%w: node is not in this tree", ErrInvalidArgument)
	}

	if child.parent != parent {
		return fmt.Errorf("%w: %v is not a child of %v",
			ErrInvalidArgument, child.key, parent.key)
	}

	var childIsLeft bool
	switch child {
	case parent.left:
		childIsLeft = true
	case parent.right:
		childIsLeft = false
	default:
		// child points up at parent, but parent doesn't point back
		return fmt.Errorf("%w: %v is not linked from its parent %v",
			ErrInvalidArgument, child.key, parent.key)
	}

	// Find out where child will be reattached before touching anything.
	grandparent := parent.parent
	if err := t.checkAttached(parent, grandparent, child); err != nil {
		tracer().Errorf("rotate %v over %v: %v", child.key, parent.key, err)
		return err
	}

	if childIsLeft {
		tracer().Debugf("rotate right: %v over %v", child.key, parent.key)
		rotateRight(child, parent)
	} else {
		tracer().Debugf("rotate left: %v over %v", child.key, parent.key)
		rotateLeft(child, parent)
	}

	child.parent = grandparent

	switch {
	case grandparent == nil:
		t.root = child
	case grandparent.left == parent:
		grandparent.left = child
	case grandparent.right == parent:
		grandparent.right = child
	default:
		panic("unreachable")
	}

	return nil
}

// checkAttached verifies that parent is held by grandparent (or is the
// root if grandparent is nil).
func (t *Tree[T]) checkAttached(parent, grandparent, child *Node[T]) error {
	if grandparent == nil {
		if t.root != parent {
			return fmt.Errorf("%w: %v has no parent but is not the root",
				ErrInvariantViolation, parent.key)
		}
		return nil
	}

	if grandparent == child {
		return fmt.Errorf("%w: %v and %v are each other's parent",
			ErrInvariantViolation, child.key, parent.key)
	}

	if grandparent.left != parent && grandparent.right != parent {
		return fmt.Errorf("%w: %v is not linked from its parent %v",
			ErrInvariantViolation, parent.key, grandparent.key)
	}

	return nil
}

// rotateRight moves child (the left child of parent) above parent.
// Reattaching child to the grandparent is left to the caller.
func rotateRight[T any](child, parent *Node[T]) {
	middle := child.right

	parent.left = middle
	if middle != nil {
		middle.parent = parent
	}

	child.right = parent
	parent.parent = child
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft[T any](child, parent *Node[T]) {
	middle := child.left

	parent.right = middle
	if middle != nil {
		middle.parent = parent
	}

	child.left = parent
	parent.parent = child
}
