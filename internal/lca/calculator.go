package lca

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rshade/sheep-lca/internal/coefficients"
	"github.com/rshade/sheep-lca/internal/livestock"
)

// UreaCO2Method selects the urea hydrolysis CO2 formula.
type UreaCO2Method string

const (
	// UreaCO2Inventory is (urea + abated) * 0.2 * 44/12.
	UreaCO2Inventory UreaCO2Method = "inventory"
	// UreaCO2IPCC is (urea + abated) / 47 * 44/12.
	UreaCO2IPCC UreaCO2Method = "ipcc"
)

// ParseUreaCO2Method validates a method name.
func ParseUreaCO2Method(s string) (UreaCO2Method, error) {
	switch m := UreaCO2Method(s); m {
	case UreaCO2Inventory, UreaCO2IPCC:
		return m, nil
	}
	return "", fmt.Errorf("unknown urea CO2 method %q", s)
}

// Calculator evaluates cohorts and farms against one coefficient Lookup.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	lookup     Lookup
	logger     zerolog.Logger
	ureaMethod UreaCO2Method
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger sets the calculator's logger. The default discards output.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Calculator) {
		c.logger = l
	}
}

// WithUreaCO2Method selects the urea CO2 formula. The default is
// UreaCO2Inventory.
func WithUreaCO2Method(m UreaCO2Method) Option {
	return func(c *Calculator) {
		c.ureaMethod = m
	}
}

// NewCalculator returns a Calculator reading coefficients from l.
func NewCalculator(l Lookup, opts ...Option) *Calculator {
	c := &Calculator{
		lookup:     l,
		logger:     zerolog.Nop(),
		ureaMethod: UreaCO2Inventory,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Energy runs the energy model for one animal in dependency order:
// digestibility ratios, net energy terms, concentrate intake, then grass
// intake from the energy balance.
func (c *Calculator) Energy(a livestock.AnimalCohort) (EnergyBalance, error) {
	var e EnergyBalance

	prof, err := c.lookup.Profile(a.Cohort)
	if err != nil {
		return e, err
	}
	if e.ForageDMD, err = c.lookup.ForageDigestibility(a.Forage); err != nil {
		return e, err
	}
	if e.REM, err = RatioNetEnergyMaintenance(e.ForageDMD); err != nil {
		return e, err
	}
	if e.REG, err = RatioNetEnergyGrowth(e.ForageDMD); err != nil {
		return e, err
	}

	ca, err := c.lookup.ActivityCoefficient(a.Grazing)
	if err != nil {
		return e, err
	}
	e.Maintenance = NetEnergyMaintenance(prof.MaintenanceCoefficient, a.Weight)
	e.Activity = NetEnergyActivity(ca, a.Weight)
	e.Growth = NetEnergyGrowth(prof)
	e.Lactation = NetEnergyLactation(prof)
	e.Pregnancy = NetEnergyPregnancy(prof, e.Maintenance)
	e.Wool = NetEnergyWool(a.Wool)

	if e.ConcentrateDMD, err = c.lookup.ConcentrateDigestibility(a.ConcentrateType); err != nil {
		return e, err
	}
	if e.ConcentrateDE, err = c.lookup.ConcentrateDigestibleEnergy(a.ConcentrateType); err != nil {
		return e, err
	}
	conGE, err := c.lookup.ConcentrateGrossEnergy(a.ConcentrateType)
	if err != nil {
		return e, err
	}
	e.GEC = GrossEnergyConcentrate(a.ConcentrateAmount, e.ConcentrateDMD, conGE)

	if e.GEG, err = GrossEnergyGrass(e.NetEnergy, e.REM, e.REG, e.ForageDMD, e.GEC); err != nil {
		return e, err
	}
	e.Ym = prof.MethaneConversion
	return e, nil
}

// EntericCH4 returns annual enteric methane in kg for one animal.
func (c *Calculator) EntericCH4(a livestock.AnimalCohort) (float64, error) {
	e, err := c.Energy(a)
	if err != nil {
		return 0, err
	}
	return EntericMethane(e.GrossEnergy(), e.Ym), nil
}

// DryMatterFromGrass returns daily grass dry matter intake in kg, with the
// digestibility weighted by the concentrate's share of energy demand.
func (c *Calculator) DryMatterFromGrass(a livestock.AnimalCohort) (float64, error) {
	e, err := c.Energy(a)
	if err != nil {
		return 0, err
	}
	grassGE, err := c.lookup.ForageGrossEnergy(a.Forage)
	if err != nil {
		return 0, err
	}
	if err := nonZero("forage gross energy", grassGE); err != nil {
		return 0, err
	}

	demand := e.maintenanceDemand()/e.REM + e.Growth/e.REG
	if err := nonZero("energy demand", demand); err != nil {
		return 0, err
	}
	share := e.GEC / demand
	dmd := share*e.ConcentrateDMD + (1-share)*e.ForageDMD
	if err := nonZero("blended digestibility", dmd); err != nil {
		return 0, err
	}
	return (demand/(dmd/100) - e.GEC) / grassGE, nil
}

// GrossAmountFromConcentrateShare returns daily concentrate intake in kg
// when concentrate supplies sharePercent of the diet, using digestibility
// and gross energy blended between concentrate and forage.
func (c *Calculator) GrossAmountFromConcentrateShare(a livestock.AnimalCohort, sharePercent float64) (float64, error) {
	e, err := c.Energy(a)
	if err != nil {
		return 0, err
	}
	conGE, err := c.lookup.ConcentrateGrossEnergy(a.ConcentrateType)
	if err != nil {
		return 0, err
	}
	grassGE, err := c.lookup.ForageGrossEnergy(a.Forage)
	if err != nil {
		return 0, err
	}

	share := sharePercent / 100
	dmd := share*e.ConcentrateDMD + (1-share)*e.ForageDMD
	ge := share*conGE + (1-share)*grassGE
	if err := nonZero("blended digestibility", dmd); err != nil {
		return 0, err
	}
	if err := nonZero("blended gross energy", ge); err != nil {
		return 0, err
	}

	demand := e.maintenanceDemand()/e.REM + e.Growth/e.REG
	return demand / (dmd / 100) / ge * share, nil
}

// ManureFlow runs the four manure stages for one animal given its energy
// balance.
func (c *Calculator) ManureFlow(a livestock.AnimalCohort, e EnergyBalance) (ManureFlow, error) {
	var flow ManureFlow

	forageCP, err := c.lookup.ForageCrudeProtein(a.Forage)
	if err != nil {
		return flow, err
	}
	conCP, err := c.lookup.ConcentrateCrudeProtein(a.ConcentrateType)
	if err != nil {
		return flow, err
	}
	prof, err := c.lookup.Profile(a.Cohort)
	if err != nil {
		return flow, err
	}

	var atmospheric, leaching float64
	if err := factors(c.lookup,
		factorRef{coefficients.AtmosphericDeposition, &atmospheric},
		factorRef{coefficients.LeachingRunoff, &leaching},
	); err != nil {
		return flow, err
	}

	outdoors := a.HoursOutdoors / HoursPerDay
	indoors := (a.HoursIndoors + a.HoursStabled) / HoursPerDay

	flow.Grazing = Graze(Excretion{
		Fraction: outdoors,
		VS:       VolatileSolids(e, outdoors),
		Nex:      NitrogenExcretion(e, forageCP, conCP, outdoors),
	}, GrazingFactors{
		TAN:         prof.PastureTAN,
		DirectN2O:   prof.PastureDirectN2O,
		Atmospheric: atmospheric,
		Leaching:    leaching,
	})

	houseTAN, err := c.lookup.HousingTAN(a.Storage)
	if err != nil {
		return flow, err
	}
	flow.Housing = House(Excretion{
		Fraction: indoors,
		VS:       VolatileSolids(e, indoors),
		Nex:      NitrogenExcretion(e, forageCP, conCP, indoors),
	}, HousingFactors{TAN: houseTAN, Atmospheric: atmospheric})

	sf := StorageFactors{Atmospheric: atmospheric}
	if sf.TAN, err = c.lookup.StorageTAN(a.Storage); err != nil {
		return flow, err
	}
	if sf.MCF, err = c.lookup.StorageMCF(a.Storage); err != nil {
		return flow, err
	}
	if sf.DirectN2O, err = c.lookup.StorageN2O(a.Storage); err != nil {
		return flow, err
	}
	flow.Storage = Store(flow.Housing, sf)

	spreadNH3, err := c.lookup.SpreadingNH3(a.Spreading)
	if err != nil {
		return flow, err
	}
	flow.Spreading = Spread(flow.Storage, SpreadingFactors{
		NH3:         spreadNH3,
		DirectN2O:   prof.SoilDirectN2O,
		Atmospheric: atmospheric,
		Leaching:    leaching,
	})
	return flow, nil
}

// CohortResult is the per-animal output for one cohort.
type CohortResult struct {
	Cohort     livestock.Cohort `json:"cohort"`
	Population float64          `json:"population"`
	Energy     EnergyBalance    `json:"energy"`
	EntericCH4 float64          `json:"enteric_ch4"`
	Manure     ManureFlow       `json:"manure"`

	// Concentrate production intensities per animal per year.
	ConcentrateCO2e float64 `json:"concentrate_co2e"`
	ConcentratePO4e float64 `json:"concentrate_po4e"`
}

// Cohort runs the full per-animal pipeline for a.
func (c *Calculator) Cohort(a livestock.AnimalCohort) (CohortResult, error) {
	res := CohortResult{Cohort: a.Cohort, Population: a.Population}

	e, err := c.Energy(a)
	if err != nil {
		return res, fmt.Errorf("%s energy: %w", a.Cohort, err)
	}
	res.Energy = e
	res.EntericCH4 = EntericMethane(e.GrossEnergy(), e.Ym)

	if res.Manure, err = c.ManureFlow(a, e); err != nil {
		return res, fmt.Errorf("%s manure: %w", a.Cohort, err)
	}

	co2, err := c.lookup.ConcentrateCO2e(a.ConcentrateType)
	if err != nil {
		return res, fmt.Errorf("%s concentrate: %w", a.Cohort, err)
	}
	po4, err := c.lookup.ConcentratePO4e(a.ConcentrateType)
	if err != nil {
		return res, fmt.Errorf("%s concentrate: %w", a.Cohort, err)
	}
	res.ConcentrateCO2e = a.ConcentrateAmount * co2 * DaysPerYear
	res.ConcentratePO4e = a.ConcentrateAmount * po4 * DaysPerYear

	c.logger.Debug().
		Stringer("cohort", a.Cohort).
		Float64("gross_energy", e.GrossEnergy()).
		Float64("enteric_ch4", res.EntericCH4).
		Float64("nex_housed", res.Manure.Housing.Nex).
		Msg("cohort evaluated")
	return res, nil
}
