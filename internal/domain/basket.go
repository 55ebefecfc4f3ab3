package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Basket is the ordered list of unit prices (yen) added since the last
// confirm or reset. It is session-scoped and never persisted directly.
type Basket []int

// Count returns the number of items in the basket.
func (b Basket) Count() int {
	return len(b)
}

// Total returns the sum of all unit prices in the basket.
func (b Basket) Total() int {
	total := 0
	for _, price := range b {
		total += price
	}
	return total
}

// IsEmpty reports whether the basket holds no items.
func (b Basket) IsEmpty() bool {
	return len(b) == 0
}

// PriceGroup is one distinct unit price and how many times it occurs.
type PriceGroup struct {
	Price int
	Count int
}

// Groups collapses the basket into a multiset of prices, sorted ascending
// by price. The result depends only on the multiset, not insertion order.
func (b Basket) Groups() []PriceGroup {
	counts := make(map[int]int, len(b))
	for _, price := range b {
		counts[price]++
	}

	prices := make([]int, 0, len(counts))
	for price := range counts {
		prices = append(prices, price)
	}
	sort.Ints(prices)

	groups := make([]PriceGroup, 0, len(prices))
	for _, price := range prices {
		groups = append(groups, PriceGroup{Price: price, Count: counts[price]})
	}
	return groups
}

// Detail renders the persisted breakdown string, e.g. "200円×1, 300円×2".
func (b Basket) Detail() string {
	parts := make([]string, 0, len(b))
	for _, g := range b.Groups() {
		parts = append(parts, fmt.Sprintf("%d円×%d", g.Price, g.Count))
	}
	return strings.Join(parts, ", ")
}

// Lines renders one display line per distinct price, e.g. "300円 × 2個".
func (b Basket) Lines() []string {
	lines := make([]string, 0, len(b))
	for _, g := range b.Groups() {
		lines = append(lines, fmt.Sprintf("%d円 × %d個", g.Price, g.Count))
	}
	return lines
}
