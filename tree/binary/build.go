package binary

import (
	"math/rand"
)

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	keys := make([]int, num)
	for i := 0; i < num; i++ {
		keys[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	tr := New[int]()
	for _, k := range keys {
		if err := tr.Insert(k); err != nil {
			// int keys are never nil
			panic(err)
		}
	}

	return tr
}

// RotateRandom performs rounds rotations on tr, each time picking a
// random non-root node and rotating it over its parent.
// It returns the number of rotations performed, which is less than
// rounds only if the tree has fewer than two nodes.
func RotateRandom[T any](tr *Tree[T], rounds int, seed int64) (int, error) {
	rd := rand.New(rand.NewSource(seed))

	if tr.Size() < 2 {
		return 0, nil
	}

	// node handles stay valid across rotations, so collect them once
	nodes := make([]*Node[T], 0, tr.Size())
	w := newStackWalker(tr.root, 0)
	for w.next() {
		nodes = append(nodes, w.node())
	}

	for i := 0; i < rounds; i++ {
		n := nodes[rd.Intn(len(nodes))]
		if n.parent == nil {
			// picked the root, rotate one of its children up instead
			n = tr.root.left
			if n == nil {
				n = tr.root.right
			}
		}

		if err := tr.Rotate(n, n.parent); err != nil {
			return i, err
		}
	}

	return rounds, nil
}
