package lca

import (
	"github.com/rshade/sheep-lca/internal/livestock"
)

// Allocation holds the farm's co-product values and the economic allocation
// factors derived from them. The three factors sum to one.
type Allocation struct {
	LambValue  float64 `json:"lamb_value"`
	SheepValue float64 `json:"sheep_value"`
	WoolValue  float64 `json:"wool_value"`

	LambFactor  float64 `json:"lamb_factor"`
	SheepFactor float64 `json:"sheep_factor"`
	WoolFactor  float64 `json:"wool_factor"`

	// Physical outputs in kg.
	LiveWeightBought float64 `json:"live_weight_bought"`
	LambLiveWeight   float64 `json:"lamb_live_weight"`
	SheepLiveWeight  float64 `json:"sheep_live_weight"`
	WoolWeight       float64 `json:"wool_weight"`
}

// isLamb reports whether a cohort's sales count as lamb meat. Ewes and
// rams are sold as adult sheep meat.
func isLamb(c livestock.Cohort) bool {
	switch c {
	case livestock.LambLessThanYear, livestock.LambMoreThanYear, livestock.MaleLessThanYear:
		return true
	}
	return false
}

// Allocate computes the allocation between lamb meat, sheep meat and wool.
// Meat value is weight * sold * price; wool value is wool * price over the
// animals kept (population less sold). Cohorts with zero population are
// skipped. A herd with no output value returns a *DomainError.
func Allocate(h *livestock.Herd) (Allocation, error) {
	var a Allocation
	for _, e := range h.Entries() {
		an := e.Animal
		if an.Population == 0 {
			continue
		}
		sold := an.Weight * an.Sold
		kept := an.Population - an.Sold
		if isLamb(e.Cohort) {
			a.LambValue += sold * an.MeatPrice
			a.LambLiveWeight += sold
		} else {
			a.SheepValue += sold * an.MeatPrice
			a.SheepLiveWeight += sold
		}
		a.WoolValue += an.Wool * an.WoolPrice * kept
		a.WoolWeight += an.Wool * kept
		a.LiveWeightBought += an.Weight * an.Bought
	}

	total := a.LambValue + a.SheepValue + a.WoolValue
	if err := nonZero("total output value", total); err != nil {
		return a, err
	}
	a.LambFactor = a.LambValue / total
	a.SheepFactor = a.SheepValue / total
	a.WoolFactor = a.WoolValue / total
	return a, nil
}
