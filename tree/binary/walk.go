package binary

import (
	"fmt"

	"go.lepak.sg/bst/tree"
)

// stackWalker visits the nodes of a subtree in order.
// It does not rely on parent links, keeping the path back up in an
// explicit stack instead, so it can be used to check them.
//
// Recursive in order iteration looks like this:
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
// The first call to next runs everything up to (1), all the way down to
// the leftmost node, pushing what would be the visit stack frames.
// Every later call pops the current node off (it is at (2)) and pushes
// the left spine of its right subtree.
type stackWalker[T any] struct {
	root    *Node[T]
	stack   []*Node[T]
	started bool
}

// newStackWalker creates a new in-order walker.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
func newStackWalker[T any](root *Node[T], heightHint int) *stackWalker[T] {
	return &stackWalker[T]{
		root:  root,
		stack: make([]*Node[T], 0, heightHint+1),
	}
}

func (w *stackWalker[T]) pushLeftSpine(n *Node[T]) {
	for n != nil {
		w.stack = append(w.stack, n)
		n = n.left
	}
}

// next advances to the next node and reports whether there is one.
func (w *stackWalker[T]) next() bool {
	if !w.started {
		w.started = true
		w.pushLeftSpine(w.root)
		return len(w.stack) > 0
	}

	if len(w.stack) == 0 {
		return false
	}

	pop := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.pushLeftSpine(pop.right)

	return len(w.stack) > 0
}

func (w *stackWalker[T]) node() *Node[T] {
	return w.stack[len(w.stack)-1]
}

// Height returns the number of nodes on the longest path from the
// root down to a leaf. The empty tree has height 0.
func (t *Tree[T]) Height() int {
	type frame struct {
		n     *Node[T]
		depth int
	}

	if t.root == nil {
		return 0
	}

	height := 0
	stack := []frame{{t.root, 1}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth > height {
			height = f.depth
		}
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
	}

	return height
}

// Verify walks the whole tree and checks its invariants: keys are in
// non-decreasing order, every child's parent link points back at the
// node holding it, the root has no parent, and Size matches the number
// of reachable nodes. The first problem found is returned wrapped in
// ErrInvariantViolation.
//
// Verify is meant for tests and for policies built on Rotate.
func (t *Tree[T]) Verify() error {
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("%w: root %v has parent %v",
			ErrInvariantViolation, t.root.key, t.root.parent.key)
	}

	var prev *Node[T]
	reachable := 0

	w := newStackWalker(t.root, 0)
	for w.next() {
		n := w.node()
		reachable++

		// a cycle through the child links never ends the walk
		if reachable > t.count {
			return fmt.Errorf("%w: more than %d nodes reachable",
				ErrInvariantViolation, t.count)
		}

		if n.left != nil && n.left.parent != n {
			return fmt.Errorf("%w: left child %v of %v has the wrong parent",
				ErrInvariantViolation, n.left.key, n.key)
		}
		if n.right != nil && n.right.parent != n {
			return fmt.Errorf("%w: right child %v of %v has the wrong parent",
				ErrInvariantViolation, n.right.key, n.key)
		}

		if prev != nil && t.compare(prev.key, n.key) == tree.Greater {
			return fmt.Errorf("%w: %v comes before %v in order",
				ErrInvariantViolation, prev.key, n.key)
		}
		prev = n
	}

	if reachable != t.count {
		return fmt.Errorf("%w: size is %d but %d nodes are reachable",
			ErrInvariantViolation, t.count, reachable)
	}

	return nil
}
