package livestock

import (
	"fmt"
)

// Defaults applied by NewAnimalCohort.
const (
	DefaultForage          = "average"
	DefaultConcentrateType = "concentrate"
	HoursPerDay            = 24.0
)

// AnimalCohort holds the per-animal attributes of one cohort on one farm.
// Quantities are per animal unless stated otherwise.
type AnimalCohort struct {
	// Cohort is the category these animals belong to.
	Cohort Cohort

	// Population is the number of animals. May be fractional.
	Population float64

	// Weight is the live weight in kg.
	Weight float64

	// Wool is the wool yield in kg per animal per year.
	Wool float64

	// Forage is the grass table key (e.g. "average").
	Forage string

	// Grazing selects the activity coefficient.
	Grazing GrazingRegime

	// ConcentrateType is the concentrate table key.
	ConcentrateType string

	// ConcentrateAmount is the concentrate fed in kg per day.
	ConcentrateAmount float64

	// HoursOutdoors, HoursIndoors and HoursStabled split the day. Their sum
	// must not exceed 24.
	HoursOutdoors float64
	HoursIndoors  float64
	HoursStabled  float64

	// Storage is the manure storage method for the housed fraction.
	Storage StorageMethod

	// Spreading is the daily spreading method for stored manure.
	Spreading SpreadingMethod

	// Sold and Bought are animal counts over the year.
	Sold   float64
	Bought float64

	// MeatPrice and WoolPrice are unit prices per kg.
	MeatPrice float64
	WoolPrice float64
}

// NewAnimalCohort returns a cohort record populated with the baseline
// defaults: zero population, average forage, flat pasture, no concentrate,
// all day outdoors, solid storage and no daily spreading.
func NewAnimalCohort(c Cohort) AnimalCohort {
	return AnimalCohort{
		Cohort:          c,
		Forage:          DefaultForage,
		Grazing:         FlatPasture,
		ConcentrateType: DefaultConcentrateType,
		HoursOutdoors:   HoursPerDay,
		Storage:         Solid,
		Spreading:       SpreadNone,
	}
}

// Validate checks the invariants of the record.
func (a AnimalCohort) Validate() error {
	if !a.Cohort.Valid() {
		return fmt.Errorf("%w: cohort %d", ErrInvalidCohort, int(a.Cohort))
	}
	if a.Population < 0 {
		return fmt.Errorf("%w: %s population %v is negative", ErrInvalidCohort, a.Cohort, a.Population)
	}
	for name, v := range map[string]float64{
		"weight":             a.Weight,
		"wool":               a.Wool,
		"concentrate amount": a.ConcentrateAmount,
		"hours outdoors":     a.HoursOutdoors,
		"hours indoors":      a.HoursIndoors,
		"hours stabled":      a.HoursStabled,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s %s %v is negative", ErrInvalidCohort, a.Cohort, name, v)
		}
	}
	if h := a.HoursOutdoors + a.HoursIndoors + a.HoursStabled; h > HoursPerDay {
		return fmt.Errorf("%w: %s spends %v hours per day across outdoors, indoors and stabled", ErrInvalidCohort, a.Cohort, h)
	}
	return nil
}

// Farm holds the farm-level inputs for one farm and year.
type Farm struct {
	ID   int
	Year int

	// Fertiliser quantities in kg.
	Urea        float64
	UreaAbated  float64
	NFertiliser float64
	PFertiliser float64
	KFertiliser float64
	Lime        float64

	// Diesel in kg, electricity in kWh.
	Diesel      float64
	Electricity float64
}

// HerdEntry pairs a cohort tag with its animal record.
type HerdEntry struct {
	Cohort Cohort
	Animal AnimalCohort
}

// Herd is the ordered set of cohorts present on one farm.
type Herd struct {
	FarmID  int
	entries []HerdEntry
}

// NewHerd builds a herd for the farm. Later animals replace earlier ones with
// the same cohort.
func NewHerd(farmID int, animals ...AnimalCohort) *Herd {
	h := &Herd{FarmID: farmID}
	for _, a := range animals {
		h.Set(a)
	}
	return h
}

// Set adds the animal record or replaces the record for the same cohort,
// keeping the original position.
func (h *Herd) Set(a AnimalCohort) {
	for i := range h.entries {
		if h.entries[i].Cohort == a.Cohort {
			h.entries[i].Animal = a
			return
		}
	}
	h.entries = append(h.entries, HerdEntry{Cohort: a.Cohort, Animal: a})
}

// Get returns the record for cohort c.
func (h *Herd) Get(c Cohort) (AnimalCohort, bool) {
	for _, e := range h.entries {
		if e.Cohort == c {
			return e.Animal, true
		}
	}
	return AnimalCohort{}, false
}

// Entries returns a copy of the herd's entries in insertion order.
func (h *Herd) Entries() []HerdEntry {
	out := make([]HerdEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of cohorts in the herd.
func (h *Herd) Len() int {
	return len(h.entries)
}

// Validate checks every populated cohort. Cohorts with zero population are
// placeholders and are not inspected.
func (h *Herd) Validate() error {
	for _, e := range h.entries {
		if e.Animal.Population == 0 {
			continue
		}
		if err := e.Animal.Validate(); err != nil {
			return fmt.Errorf("farm %d: %w", h.FarmID, err)
		}
	}
	return nil
}
