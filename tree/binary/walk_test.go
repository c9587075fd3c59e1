package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newCompleteTree_2Tall(t *testing.T) *Tree[int] {
	return buildFrom(t, 4, 2, 6, 1, 3, 5, 7)
}

func TestStackWalker(t *testing.T) {
	tests := []struct {
		name   string
		create func(t *testing.T) *Tree[int]
		want   []int
	}{
		{
			name:   "empty",
			create: func(*testing.T) *Tree[int] { return New[int]() },
		},
		{
			name:   "one",
			create: func(t *testing.T) *Tree[int] { return buildFrom(t, 1) },
			want:   []int{1},
		},
		{
			name:   "height=2",
			create: newCompleteTree_2Tall,
			want:   []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:   "left spine",
			create: func(t *testing.T) *Tree[int] { return buildFrom(t, 5, 4, 3, 2, 1) },
			want:   []int{1, 2, 3, 4, 5},
		},
		{
			name:   "right spine",
			create: func(t *testing.T) *Tree[int] { return buildFrom(t, 1, 2, 3, 4, 5) },
			want:   []int{1, 2, 3, 4, 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := tt.create(t)
			w := newStackWalker(tr.root, tr.Height())

			var got []int
			for w.next() {
				got = append(got, w.node().key)
			}
			assert.Equal(t, tt.want, got)
			assert.False(t, w.next(), "walker restarted after finishing")
		})
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(tr *Tree[int])
	}{
		{
			name: "root has a parent",
			corrupt: func(tr *Tree[int]) {
				tr.root.parent = tr.root.left
			},
		},
		{
			name: "wrong parent on left child",
			corrupt: func(tr *Tree[int]) {
				tr.Find(1).parent = tr.root
			},
		},
		{
			name: "wrong parent on right child",
			corrupt: func(tr *Tree[int]) {
				tr.Find(7).parent = nil
			},
		},
		{
			name: "keys out of order",
			corrupt: func(tr *Tree[int]) {
				tr.Find(3).key = 9
			},
		},
		{
			name: "size too large",
			corrupt: func(tr *Tree[int]) {
				tr.count++
			},
		},
		{
			name: "size too small",
			corrupt: func(tr *Tree[int]) {
				tr.count--
			},
		},
		{
			name: "child link cycle",
			corrupt: func(tr *Tree[int]) {
				n := tr.Find(7)
				n.right = tr.root
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newCompleteTree_2Tall(t)
			assert.NoError(t, tr.Verify())

			tt.corrupt(tr)

			assert.ErrorIs(t, tr.Verify(), ErrInvariantViolation)
		})
	}
}
