package livestock

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// CohortRecord is one raw cohort row as it appears in scenario files.
// Absent optional fields take the defaults of NewAnimalCohort.
type CohortRecord struct {
	FarmID         int      `yaml:"farm_id"`
	Cohort         string   `yaml:"cohort"`
	Population     float64  `yaml:"pop"`
	Weight         float64  `yaml:"weight"`
	Wool           float64  `yaml:"wool"`
	Forage         string   `yaml:"forage"`
	Grazing        string   `yaml:"grazing"`
	ConType        string   `yaml:"con_type"`
	ConAmount      float64  `yaml:"con_amount"`
	TOutdoors      *float64 `yaml:"t_outdoors"`
	TIndoors       float64  `yaml:"t_indoors"`
	TStabled       float64  `yaml:"t_stabled"`
	MMStorage      string   `yaml:"mm_storage"`
	DailySpreading string   `yaml:"daily_spreading"`
	NSold          float64  `yaml:"n_sold"`
	NBought        float64  `yaml:"n_bought"`
	MeatPriceKg    float64  `yaml:"meat_price_kg"`
	WoolPriceKg    float64  `yaml:"wool_price_kg"`
}

// FarmRecord is one raw farm row together with its cohorts.
type FarmRecord struct {
	FarmID          int            `yaml:"farm_id"`
	Year            int            `yaml:"year"`
	TotalUrea       float64        `yaml:"total_urea"`
	TotalUreaAbated float64        `yaml:"total_urea_abated"`
	TotalNFert      float64        `yaml:"total_n_fert"`
	TotalPFert      float64        `yaml:"total_p_fert"`
	TotalKFert      float64        `yaml:"total_k_fert"`
	TotalLime       float64        `yaml:"total_lime"`
	DieselKg        float64        `yaml:"diesel_kg"`
	ElecKwh         float64        `yaml:"elec_kwh"`
	Cohorts         []CohortRecord `yaml:"cohorts"`
}

// ScenarioFile is the on-disk layout read by LoadScenario.
type ScenarioFile struct {
	Country string       `yaml:"country"`
	Farms   []FarmRecord `yaml:"farms"`
}

// Scenario is one farm paired with its herd.
type Scenario struct {
	Farm Farm
	Herd *Herd
}

// LoadScenario decodes a YAML scenario file and converts every farm into a
// Scenario. The country named in the file is returned alongside.
func LoadScenario(r io.Reader) (string, []Scenario, error) {
	var file ScenarioFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return "", nil, fmt.Errorf("decode scenario: %w", err)
	}

	scenarios := make([]Scenario, 0, len(file.Farms))
	for _, fr := range file.Farms {
		herd := NewHerd(fr.FarmID)
		for _, cr := range fr.Cohorts {
			a, err := cr.Animal()
			if err != nil {
				return "", nil, fmt.Errorf("farm %d: %w", fr.FarmID, err)
			}
			herd.Set(a)
		}
		scenarios = append(scenarios, Scenario{Farm: fr.Farm(), Herd: herd})
	}
	return file.Country, scenarios, nil
}

// Farm converts the record into a Farm.
func (r FarmRecord) Farm() Farm {
	return Farm{
		ID:          r.FarmID,
		Year:        r.Year,
		Urea:        r.TotalUrea,
		UreaAbated:  r.TotalUreaAbated,
		NFertiliser: r.TotalNFert,
		PFertiliser: r.TotalPFert,
		KFertiliser: r.TotalKFert,
		Lime:        r.TotalLime,
		Diesel:      r.DieselKg,
		Electricity: r.ElecKwh,
	}
}

// Animal converts the record into an AnimalCohort, starting from a fresh set
// of defaults for every call.
func (r CohortRecord) Animal() (AnimalCohort, error) {
	c, err := ParseCohort(r.Cohort)
	if err != nil {
		return AnimalCohort{}, err
	}
	a := NewAnimalCohort(c)
	a.Population = r.Population
	a.Weight = r.Weight
	a.Wool = r.Wool
	a.ConcentrateAmount = r.ConAmount
	a.HoursIndoors = r.TIndoors
	a.HoursStabled = r.TStabled
	a.Sold = r.NSold
	a.Bought = r.NBought
	a.MeatPrice = r.MeatPriceKg
	a.WoolPrice = r.WoolPriceKg

	if r.TOutdoors != nil {
		a.HoursOutdoors = *r.TOutdoors
	}
	if r.Forage != "" {
		a.Forage = r.Forage
	}
	if r.ConType != "" {
		a.ConcentrateType = r.ConType
	}
	if r.Grazing != "" {
		if a.Grazing, err = ParseGrazingRegime(r.Grazing); err != nil {
			return AnimalCohort{}, err
		}
	}
	if r.MMStorage != "" {
		if a.Storage, err = ParseStorageMethod(r.MMStorage); err != nil {
			return AnimalCohort{}, err
		}
	}
	if r.DailySpreading != "" {
		if a.Spreading, err = ParseSpreadingMethod(r.DailySpreading); err != nil {
			return AnimalCohort{}, err
		}
	}
	return a, nil
}

// GroupHerds groups flat cohort rows into one herd per farm, keyed by farm
// ID. A repeated cohort for the same farm replaces the earlier row.
func GroupHerds(rows []CohortRecord) (map[int]*Herd, error) {
	herds := make(map[int]*Herd)
	for i, r := range rows {
		a, err := r.Animal()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		h, ok := herds[r.FarmID]
		if !ok {
			h = NewHerd(r.FarmID)
			herds[r.FarmID] = h
		}
		h.Set(a)
	}
	return herds, nil
}

// FarmIDs returns the keys of herds in ascending order.
func FarmIDs(herds map[int]*Herd) []int {
	ids := make([]int, 0, len(herds))
	for id := range herds {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
