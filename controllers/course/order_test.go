package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOrderAlreadyContiguous(t *testing.T) {
	out := NormalizeOrder([]OrderPair{{ID: 1, Order: 0}, {ID: 2, Order: 1}, {ID: 3, Order: 2}})
	assert.Equal(t, []OrderPair{{ID: 1, Order: 0}, {ID: 2, Order: 1}, {ID: 3, Order: 2}}, out)
}

func TestNormalizeOrderClosesGaps(t *testing.T) {
	out := NormalizeOrder([]OrderPair{{ID: 7, Order: 10}, {ID: 8, Order: 50}, {ID: 9, Order: 3}})
	assert.Equal(t, []OrderPair{{ID: 9, Order: 0}, {ID: 7, Order: 1}, {ID: 8, Order: 2}}, out)
}

func TestNormalizeOrderDuplicateOrdersKeepRequestOrder(t *testing.T) {
	out := NormalizeOrder([]OrderPair{{ID: 1, Order: 5}, {ID: 2, Order: 5}, {ID: 3, Order: 1}})
	assert.Equal(t, []OrderPair{{ID: 3, Order: 0}, {ID: 1, Order: 1}, {ID: 2, Order: 2}}, out)
}

func TestNormalizeOrderProducesExactRange(t *testing.T) {
	pairs := []OrderPair{
		{ID: 1, Order: -4}, {ID: 2, Order: 99}, {ID: 3, Order: 0},
		{ID: 4, Order: 99}, {ID: 5, Order: 17}, {ID: 6, Order: 2},
	}
	out := NormalizeOrder(pairs)

	assert.Len(t, out, len(pairs))
	seen := map[int]bool{}
	for _, p := range out {
		seen[p.Order] = true
	}
	for want := 0; want < len(pairs); want++ {
		assert.True(t, seen[want], "missing order %d", want)
	}
}

func TestNormalizeOrderDoesNotMutateInput(t *testing.T) {
	in := []OrderPair{{ID: 1, Order: 9}, {ID: 2, Order: 3}}
	NormalizeOrder(in)
	assert.Equal(t, []OrderPair{{ID: 1, Order: 9}, {ID: 2, Order: 3}}, in)
}
