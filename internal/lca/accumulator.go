package lca

import (
	"sort"
)

// Accumulator collects running totals keyed by impact category and then by
// scenario key. Every (category, key) pair it was created with starts at
// zero. An Accumulator is owned by one caller and is not safe for
// concurrent mutation.
type Accumulator struct {
	totals map[string]map[string]float64
}

// NewAccumulator returns an accumulator with every category and key set to
// zero.
func NewAccumulator(categories, keys []string) *Accumulator {
	a := &Accumulator{totals: make(map[string]map[string]float64, len(categories))}
	for _, cat := range categories {
		inner := make(map[string]float64, len(keys))
		for _, k := range keys {
			inner[k] = 0
		}
		a.totals[cat] = inner
	}
	return a
}

// Add adds v to the running total of category and key, creating the entry
// when it does not exist.
func (a *Accumulator) Add(category, key string, v float64) {
	inner, ok := a.totals[category]
	if !ok {
		inner = make(map[string]float64)
		a.totals[category] = inner
	}
	inner[key] += v
}

// AddClimate adds every category of the climate dictionary under key.
func (a *Accumulator) AddClimate(key string, c ClimateTotals) {
	for cat, v := range c.Dictionary() {
		a.Add(cat, key, v)
	}
}

// Get returns the running total, zero when absent.
func (a *Accumulator) Get(category, key string) float64 {
	return a.totals[category][key]
}

// Categories returns the category names in sorted order.
func (a *Accumulator) Categories() []string {
	out := make([]string, 0, len(a.totals))
	for cat := range a.totals {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// Snapshot returns a deep copy of the totals.
func (a *Accumulator) Snapshot() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(a.totals))
	for cat, inner := range a.totals {
		cp := make(map[string]float64, len(inner))
		for k, v := range inner {
			cp[k] = v
		}
		out[cat] = cp
	}
	return out
}
