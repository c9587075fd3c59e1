package binary

// Node is a node in a Tree.
//
// Nodes are handed out by Tree.Root and Tree.Find so that callers can
// navigate the tree and name the pair of nodes to rotate. Only the owning
// Tree ever changes a node's links.
type Node[T any] struct {
	key         T
	left, right *Node[T]
	// parent is for navigating upwards only; nodes are kept alive
	// by the child links from the root.
	parent *Node[T]

	// the tree that created this node, and its generation at the time
	owner *Tree[T]
	gen   uint64
}

// Key returns the node's key.
func (n *Node[T]) Key() T {
	return n.key
}

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Parent returns the parent, or nil if n is the root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

func (n *Node[T]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}
