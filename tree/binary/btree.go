package binary

import (
	"fmt"
	"reflect"
	"strings"

	"go.lepak.sg/bst/tree"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree. It is not safe for concurrent use:
// callers that share a Tree must serialize every call themselves.
//
// Create one with New or NewFunc. Tree should not be passed around
// as a value (nodes remember the *Tree that created them).
//
// This tree implementation does not support removal. It is also not
// self-balancing, but see Rotate.
//
// Invariants:
//   - An in-order walk of the tree yields keys in non-decreasing order.
//     Insert puts a key equal to N.Key into the subtree at N.Left.
//   - Every node except the root has its parent link pointing at the node
//     whose Left or Right slot holds it. The root has no parent.
//   - Duplicate keys are kept as separate nodes.
type Tree[T any] struct {
	// the tree is rooted here.
	root *Node[T]
	cmp  func(a, b T) tree.Order

	count int
	// bumped by Clear so that nodes from before can be told apart
	gen uint64
	// whether T has a nil value at all
	nilable bool
}

// New returns an empty tree ordered by the built-in comparison operators.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{
		cmp:     tree.Compare[T],
		nilable: false,
	}
}

// NewFunc returns an empty tree ordered by cmp, which must return a
// negative number, zero, or a positive number when a is less than, equal
// to or greater than b. cmp must be a total order and must not change
// its answer for keys already in the tree.
//
// If T is a pointer, interface, map, slice, func or chan type, Insert
// rejects nil keys and Contains reports them absent.
func NewFunc[T any](cmp func(a, b T) int) *Tree[T] {
	if cmp == nil {
		panic("binary: nil comparison function")
	}

	return &Tree[T]{
		cmp:     tree.CompareFunc(cmp),
		nilable: nilableType[T](),
	}
}

func nilableType[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

func (t *Tree[T]) isNil(k T) bool {
	if !t.nilable {
		return false
	}

	return reflect.ValueOf(&k).Elem().IsNil()
}

func (t *Tree[T]) compare(l, r T) tree.Order {
	if t.cmp == nil {
		panic("binary: Tree used without New or NewFunc")
	}

	return t.cmp(l, r)
}

// Contains searches for k in the tree and returns true if it was found.
// A nil k is never found.
func (t *Tree[T]) Contains(k T) bool {
	return t.Find(k) != nil
}

// Find returns the first node holding k on the search path from the
// root, or nil if there is none. With duplicates, that is the one
// closest to the root.
func (t *Tree[T]) Find(k T) *Node[T] {
	if t.isNil(k) {
		return nil
	}

	n := t.root

	for n != nil {
		switch t.compare(k, n.key) {
		case tree.Less:
			n = n.left
		case tree.Greater:
			n = n.right
		case tree.Equal:
			return n
		default:
			panic("unreachable")
		}
	}

	return nil
}

// Insert inserts k into the binary tree as a new leaf.
// Keys equal to one already in the tree are inserted too,
// into the left subtree of the existing key.
// A nil k is rejected with ErrInvalidArgument.
func (t *Tree[T]) Insert(k T) error {
	if t.isNil(k) {
		return fmt.Errorf("%w: nil key", ErrInvalidArgument)
	}

	newnode := t.nodeOf(k)

	if t.root == nil {
		t.root = newnode
		t.count = 1
		return nil
	}

	n, p := t.root, (*Node[T])(nil)
	var cmp tree.Order

	for n != nil {
		cmp = t.compare(k, n.key)
		switch cmp {
		case tree.Less, tree.Equal:
			n, p = n.left, n
		case tree.Greater:
			n, p = n.right, n
		default:
			panic("unreachable")
		}
	}

	newnode.parent = p

	switch cmp {
	case tree.Less, tree.Equal:
		if p.left != nil {
			panic("impossible")
		}
		p.left = newnode
	case tree.Greater:
		if p.right != nil {
			panic("impossible")
		}
		p.right = newnode
	default:
		panic("unreachable")
	}

	t.count++
	return nil
}

func (t *Tree[T]) nodeOf(k T) *Node[T] {
	return &Node[T]{
		key:   k,
		owner: t,
		gen:   t.gen,
	}
}

// owns reports whether n was inserted into t since the last Clear.
func (t *Tree[T]) owns(n *Node[T]) bool {
	return n.owner == t && n.gen == t.gen
}

// Root returns the root node, or nil if the tree is empty.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Size returns the number of keys in the tree.
func (t *Tree[T]) Size() int {
	return t.count
}

func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Clear drops every node in the tree. Nodes obtained before Clear are
// no longer accepted by Rotate.
func (t *Tree[T]) Clear() {
	if t.root != nil {
		tracer().Debugf("clear: dropping %d nodes", t.count)
	}

	t.root = nil
	t.count = 0
	t.gen++
}

// String returns a string representation of the tree.
// A complete binary tree with height 2 would look like this:
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[T]) String() string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[T any](
	sb *strings.Builder, n *Node[T], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n.key))
	sb.WriteRune('\n')

	if n.left != nil {
		printvisit(sb, n.left, prefix, treeLeftBranch, false, n.right != nil)
	}

	if n.right != nil {
		printvisit(sb, n.right, prefix, treeRightBranch, false, false)
	}
}
