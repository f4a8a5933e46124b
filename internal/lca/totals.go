package lca

import (
	"github.com/rshade/sheep-lca/internal/livestock"
)

// Climate category names used by ClimateTotals.Dictionary and the
// Accumulator.
const (
	EntericCH4             = "enteric_ch4"
	ManureManagementN2O    = "manure_management_N2O"
	ManureManagementCH4    = "manure_management_CH4"
	ManureAppliedN         = "manure_applied_N"
	NDirectPRP             = "N_direct_PRP"
	NIndirectPRP           = "N_indirect_PRP"
	NDirectFertiliser      = "N_direct_fertiliser"
	NIndirectFertiliser    = "N_indirect_fertiliser"
	SoilsCO2               = "soils_CO2"
	SoilOrganicNDirect     = "soil_organic_N_direct"
	SoilOrganicNIndirect   = "soil_organic_N_indirect"
	SoilInorganicNDirect   = "soil_inorganic_N_direct"
	SoilInorganicNIndirect = "soil_inorganic_N_indirect"
	SoilNDirect            = "soil_N_direct"
	SoilNIndirect          = "soil_N_indirect"
	SoilsN2O               = "soils_N2O"
	UpstreamCO2e           = "upstream_CO2e"
)

// ClimateCategories returns the climate dictionary keys in report order.
func ClimateCategories() []string {
	return []string{
		EntericCH4, ManureManagementN2O, ManureManagementCH4, ManureAppliedN,
		NDirectPRP, NIndirectPRP, NDirectFertiliser, NIndirectFertiliser,
		SoilsCO2, SoilOrganicNDirect, SoilOrganicNIndirect,
		SoilInorganicNDirect, SoilInorganicNIndirect,
		SoilNDirect, SoilNIndirect, SoilsN2O, UpstreamCO2e,
	}
}

// ClimateTotals are farm-level greenhouse gas emissions in kg of each gas.
// N2O terms are already converted from N2O-N with 44/28.
type ClimateTotals struct {
	EntericCH4            float64 `json:"enteric_ch4"`
	ManureCH4             float64 `json:"manure_ch4"`
	ManureManagementN2O   float64 `json:"manure_management_n2o"`
	ManureAppliedN2O      float64 `json:"manure_applied_n2o"`
	PRPDirectN2O          float64 `json:"prp_direct_n2o"`
	PRPIndirectN2O        float64 `json:"prp_indirect_n2o"`
	FertiliserDirectN2O   float64 `json:"fertiliser_direct_n2o"`
	FertiliserIndirectN2O float64 `json:"fertiliser_indirect_n2o"`
	UreaCO2               float64 `json:"urea_co2"`
	LimeCO2               float64 `json:"lime_co2"`
	UpstreamCO2e          float64 `json:"upstream_co2e"`
	ConcentrateCO2e       float64 `json:"concentrate_co2e"`
}

// SoilsCO2 returns CO2 from urea and lime.
func (c ClimateTotals) SoilsCO2() float64 {
	return c.UreaCO2 + c.LimeCO2
}

// Dictionary returns the totals keyed by climate category, including the
// soil roll-ups.
func (c ClimateTotals) Dictionary() map[string]float64 {
	organicDirect := c.ManureAppliedN2O + c.PRPDirectN2O
	organicIndirect := c.PRPIndirectN2O
	inorganicDirect := c.FertiliserDirectN2O
	inorganicIndirect := c.FertiliserIndirectN2O
	soilDirect := organicDirect + inorganicDirect
	soilIndirect := organicIndirect + inorganicIndirect

	return map[string]float64{
		EntericCH4:             c.EntericCH4,
		ManureManagementN2O:    c.ManureManagementN2O,
		ManureManagementCH4:    c.ManureCH4,
		ManureAppliedN:         c.ManureAppliedN2O,
		NDirectPRP:             c.PRPDirectN2O,
		NIndirectPRP:           c.PRPIndirectN2O,
		NDirectFertiliser:      c.FertiliserDirectN2O,
		NIndirectFertiliser:    c.FertiliserIndirectN2O,
		SoilsCO2:               c.SoilsCO2(),
		SoilOrganicNDirect:     organicDirect,
		SoilOrganicNIndirect:   organicIndirect,
		SoilInorganicNDirect:   inorganicDirect,
		SoilInorganicNIndirect: inorganicIndirect,
		SoilNDirect:            soilDirect,
		SoilNIndirect:          soilIndirect,
		SoilsN2O:               soilDirect + soilIndirect,
		UpstreamCO2e:           c.UpstreamCO2e + c.ConcentrateCO2e,
	}
}

// EutrophicationTotals are farm-level emissions in kg PO4e.
type EutrophicationTotals struct {
	ManureNH3          float64 `json:"manure_nh3"`
	SpreadingNH3       float64 `json:"spreading_nh3"`
	FertiliserNH3Leach float64 `json:"fertiliser_nh3_leach"`
	FertiliserPLeach   float64 `json:"fertiliser_p_leach"`
	GrazingNH3Leach    float64 `json:"grazing_nh3_leach"`
	GrazingPLeach      float64 `json:"grazing_p_leach"`
	Concentrate        float64 `json:"concentrate"`
	Upstream           float64 `json:"upstream"`
}

// FertiliserSoils returns the fertilised soils contribution.
func (e EutrophicationTotals) FertiliserSoils() float64 {
	return e.FertiliserNH3Leach + e.FertiliserPLeach
}

// GrazingSoils returns the grazed soils contribution.
func (e EutrophicationTotals) GrazingSoils() float64 {
	return e.GrazingNH3Leach + e.GrazingPLeach
}

// Total returns the sum of every eutrophication term.
func (e EutrophicationTotals) Total() float64 {
	return e.ManureNH3 + e.SpreadingNH3 + e.FertiliserSoils() + e.GrazingSoils() + e.Concentrate + e.Upstream
}

// AirQualityTotals are farm-level NH3-N emissions in kg.
type AirQualityTotals struct {
	ManureNH3     float64 `json:"manure_nh3"`
	SpreadingNH3  float64 `json:"spreading_nh3"`
	FertiliserNH3 float64 `json:"fertiliser_nh3"`
	GrazingNH3    float64 `json:"grazing_nh3"`
}

// Total returns the sum of every NH3 source.
func (a AirQualityTotals) Total() float64 {
	return a.ManureNH3 + a.SpreadingNH3 + a.FertiliserNH3 + a.GrazingNH3
}

// FarmTotals is the assembled result for one farm.
type FarmTotals struct {
	FarmID         int                  `json:"farm_id"`
	Year           int                  `json:"year"`
	Climate        ClimateTotals        `json:"climate"`
	Eutrophication EutrophicationTotals `json:"eutrophication"`
	AirQuality     AirQualityTotals     `json:"air_quality"`
	Allocation     *Allocation          `json:"allocation,omitempty"`
	Cohorts        []CohortResult       `json:"cohorts"`
}

// herdFlows are population-weighted sums of per-animal quantities.
type herdFlows struct {
	enteric         float64
	manureCH4       float64
	managementN2ON  float64
	appliedN2ON     float64
	prpDirectN      float64
	prpIndirectN    float64
	managementNH3   float64
	spreadingNH3    float64
	grazingNH3      float64
	grazingLeachN   float64
	grazingLeachP   float64
	concentrateCO2e float64
	concentratePO4e float64
}

func (s *herdFlows) add(r CohortResult) {
	pop := r.Population
	m := r.Manure
	s.enteric += r.EntericCH4 * pop
	s.manureCH4 += m.CH4() * pop
	s.managementN2ON += m.ManagementN2ON() * pop
	s.appliedN2ON += m.AppliedN2ON() * pop
	s.prpDirectN += m.Grazing.DirectN2O * pop
	s.prpIndirectN += m.Grazing.IndirectN2O * pop
	s.managementNH3 += m.ManagementNH3() * pop
	s.spreadingNH3 += m.Spreading.NH3 * pop
	s.grazingNH3 += m.Grazing.NH3 * pop
	s.grazingLeachN += m.Grazing.LeachN * pop
	s.grazingLeachP += m.Grazing.LeachP * pop
	s.concentrateCO2e += r.ConcentrateCO2e * pop
	s.concentratePO4e += r.ConcentratePO4e * pop
}

// Herd evaluates every populated cohort of h. Cohorts with zero population
// are skipped without being evaluated, so placeholder records never fail.
func (c *Calculator) Herd(h *livestock.Herd) ([]CohortResult, error) {
	entries := h.Entries()
	results := make([]CohortResult, 0, len(entries))
	for _, e := range entries {
		if e.Animal.Population == 0 {
			continue
		}
		if err := e.Animal.Validate(); err != nil {
			return nil, err
		}
		r, err := c.Cohort(e.Animal)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Assemble computes the climate, eutrophication and air quality totals for
// a farm and its herd. Any lookup or domain error for a populated cohort
// fails the whole farm.
func (c *Calculator) Assemble(farm livestock.Farm, herd *livestock.Herd) (FarmTotals, error) {
	out := FarmTotals{FarmID: farm.ID, Year: farm.Year}

	results, err := c.Herd(herd)
	if err != nil {
		return out, err
	}
	out.Cohorts = results

	var flows herdFlows
	for _, r := range results {
		flows.add(r)
	}

	ff, err := c.FertiliserFactors()
	if err != nil {
		return out, err
	}
	co2e, err := c.UpstreamCO2e()
	if err != nil {
		return out, err
	}
	po4e, err := c.UpstreamPO4e()
	if err != nil {
		return out, err
	}

	out.Climate = ClimateTotals{
		EntericCH4:            flows.enteric,
		ManureCH4:             flows.manureCH4,
		ManureManagementN2O:   flows.managementN2ON * N2OPerN,
		ManureAppliedN2O:      flows.appliedN2ON * N2OPerN,
		PRPDirectN2O:          flows.prpDirectN * N2OPerN,
		PRPIndirectN2O:        flows.prpIndirectN * N2OPerN,
		FertiliserDirectN2O:   (ff.UreaN2ODirect(farm.Urea, farm.UreaAbated) + ff.NFertiliserN2ODirect(farm.NFertiliser)) * N2OPerN,
		FertiliserIndirectN2O: (ff.UreaN2OIndirect(farm.Urea, farm.UreaAbated) + ff.NFertiliserN2OIndirect(farm.NFertiliser)) * N2OPerN,
		UreaCO2:               UreaCO2(c.ureaMethod, farm.Urea, farm.UreaAbated),
		LimeCO2:               ff.LimeCO2(farm.Lime),
		UpstreamCO2e:          co2e.Farm(farm),
		ConcentrateCO2e:       flows.concentrateCO2e,
	}

	fertNH3 := ff.UreaNH3(farm.Urea, farm.UreaAbated) + ff.NFertiliserNH3(farm.NFertiliser)
	fertLeach := ff.UreaNLeach(farm.Urea, farm.UreaAbated) + ff.NFertiliserNLeach(farm.NFertiliser)
	fertPLeach := ff.UreaPLeach(farm.Urea, farm.UreaAbated) + ff.NFertiliserPLeach(farm.NFertiliser) + ff.PFertiliserPLeach(farm.PFertiliser)

	out.Eutrophication = EutrophicationTotals{
		ManureNH3:          flows.managementNH3 * ff.Atmospheric * NitrogenToPO4e,
		SpreadingNH3:       flows.spreadingNH3 * ff.Atmospheric * NitrogenToPO4e,
		FertiliserNH3Leach: fertNH3*ff.Atmospheric + fertLeach*NitrogenToPO4e,
		FertiliserPLeach:   fertPLeach * PhosphorusToPO4e,
		GrazingNH3Leach:    flows.grazingNH3*ff.Atmospheric + flows.grazingLeachN*NitrogenToPO4e,
		GrazingPLeach:      flows.grazingLeachP * PhosphorusToPO4e,
		Concentrate:        flows.concentratePO4e,
		Upstream:           po4e.Farm(farm),
	}

	out.AirQuality = AirQualityTotals{
		ManureNH3:     flows.managementNH3,
		SpreadingNH3:  flows.spreadingNH3,
		FertiliserNH3: fertNH3,
		GrazingNH3:    flows.grazingNH3,
	}

	if alloc, err := Allocate(herd); err == nil {
		out.Allocation = &alloc
	} else {
		c.logger.Debug().Int("farm_id", farm.ID).Err(err).Msg("no allocation for farm without output value")
	}

	c.logger.Debug().
		Int("farm_id", farm.ID).
		Int("cohorts", len(results)).
		Float64("enteric_ch4", out.Climate.EntericCH4).
		Float64("air_quality_nh3", out.AirQuality.Total()).
		Msg("farm assembled")
	return out, nil
}
