// Package binary implements an unbalanced binary search tree with
// parent-linked nodes and a rotation primitive.
//
// The tree keeps no balancing policy of its own. Rotate is the building
// block such a policy (AVL, red-black, splay) would drive: it re-links a
// parent-child pair in place and keeps the in-order key sequence intact.
//
// Tracing goes to the "bst" trace key of schuko's tracing facility.
package binary

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("bst")
}
