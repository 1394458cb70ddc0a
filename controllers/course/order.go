package controllers

import "sort"

// OrderPair is one {id, order} entry of a reorder request.
type OrderPair struct {
	ID    uint `json:"id"`
	Order int  `json:"order"`
}

// NormalizeOrder sorts the pairs by their requested order and renumbers them
// contiguously from zero, so the persisted sequence never has gaps or
// duplicates whatever the client sent.
func NormalizeOrder(pairs []OrderPair) []OrderPair {
	normalized := make([]OrderPair, len(pairs))
	copy(normalized, pairs)

	sort.SliceStable(normalized, func(i, j int) bool {
		return normalized[i].Order < normalized[j].Order
	})
	for i := range normalized {
		normalized[i].Order = i
	}
	return normalized
}
