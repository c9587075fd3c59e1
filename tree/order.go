// Package tree holds the key ordering shared by the tree implementations
// in its subpackages.
package tree

import (
	"golang.org/x/exp/constraints"
)

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

// Compare orders two keys using the built-in operators.
func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// OrderOf converts the result of a three-way comparison function
// (negative, zero, positive) into an Order.
func OrderOf(c int) Order {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}

// CompareFunc adapts a three-way comparison function like strings.Compare
// or (*big.Int).Cmp into one returning an Order.
//
// Using a function instead of an interface[T any] { CompareTo(T) int }
// constraint keeps the ordering out of the key itself: a key type that
// carried its own CompareTo could mutate behind the tree's back.
func CompareFunc[T any](cmp func(a, b T) int) func(a, b T) Order {
	return func(a, b T) Order {
		return OrderOf(cmp(a, b))
	}
}
