package tree

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	assert.Equal(t, Less, Compare(1, 2))
	assert.Equal(t, Equal, Compare(2, 2))
	assert.Equal(t, Greater, Compare(3, 2))
	assert.Equal(t, Less, Compare("keyboard", "monitor"))
	assert.Equal(t, Greater, Compare(2.5, -1.0))
}

func TestOrderOf(t *testing.T) {
	tests := []struct {
		in   int
		want Order
	}{
		{in: -42, want: Less},
		{in: -1, want: Less},
		{in: 0, want: Equal},
		{in: 1, want: Greater},
		{in: 1 << 20, want: Greater},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OrderOf(tt.in), "OrderOf(%d)", tt.in)
	}
}

func TestCompareFunc(t *testing.T) {
	strcmp := CompareFunc(strings.Compare)
	assert.Equal(t, Less, strcmp("a", "b"))
	assert.Equal(t, Equal, strcmp("b", "b"))
	assert.Equal(t, Greater, strcmp("c", "b"))

	bigcmp := CompareFunc((*big.Int).Cmp)
	assert.Equal(t, Less, bigcmp(big.NewInt(-5), big.NewInt(5)))
	assert.Equal(t, Equal, bigcmp(big.NewInt(7), big.NewInt(7)))
	assert.Equal(t, Greater, bigcmp(big.NewInt(100), big.NewInt(7)))
}
