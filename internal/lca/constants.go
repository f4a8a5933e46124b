// Package lca computes the annual greenhouse gas, eutrophication and air
// quality emissions of a sheep farm from its cohorts and farm-level inputs.
//
// The per-animal pipeline runs energy balance, enteric methane and a four
// stage manure nitrogen chain (grazing, housing, storage, spreading). Farm
// totals weight each cohort by its population and add fertiliser and
// upstream sources.
package lca

// Engine constants. These are fixed by the methodology and are not part of
// the country coefficient tables.
const (
	// DaysPerYear converts daily rates to annual totals.
	DaysPerYear = 365.0

	// HoursPerDay splits the day between pasture and housing.
	HoursPerDay = 24.0

	// MethaneEnergyContent is the energy content of methane in MJ/kg.
	MethaneEnergyContent = 55.65

	// UrinaryEnergyFraction is the share of gross energy lost in urine (UE).
	UrinaryEnergyFraction = 0.04

	// AshFraction is the ash content of manure on a dry matter basis.
	AshFraction = 0.08

	// FeedEnergyDensity is the gross energy of feed in MJ per kg dry matter,
	// used to convert energy intake back to mass.
	FeedEnergyDensity = 18.45

	// ProteinToNitrogen converts crude protein to nitrogen.
	ProteinToNitrogen = 6.25

	// NitrogenRetention is the fraction of intake nitrogen retained by the animal.
	NitrogenRetention = 0.10

	// TANFraction is the share of excreted nitrogen present as total ammonia nitrogen.
	TANFraction = 0.6

	// NitrogenLeachFraction is the share of excreted nitrogen lost to leaching and runoff.
	NitrogenLeachFraction = 0.1

	// PhosphorusPerNitrogen is the P:N ratio of sheep excreta.
	PhosphorusPerNitrogen = 1.8 / 5

	// PhosphorusLeachFraction is the share of excreted phosphorus lost to water.
	PhosphorusLeachFraction = 0.03

	// MethaneProducingCapacity is B0 in m3 CH4 per kg VS.
	MethaneProducingCapacity = 0.1

	// MethaneDensity converts m3 of CH4 to kg.
	MethaneDensity = 0.67

	// PastureMCF is the methane conversion factor of manure deposited on pasture.
	PastureMCF = 0.19

	// MilkEnergy is the net energy of milk in MJ/kg.
	MilkEnergy = 4.6

	// MilkPerWeightGain is kg of milk per kg of lamb weight gain to weaning.
	MilkPerWeightGain = 5.0

	// WoolEnergy is the energy value of wool in MJ/kg.
	WoolEnergy = 24.0

	// N2OPerN converts N2O-N to N2O by molar mass (44/28).
	N2OPerN = 44.0 / 28.0

	// CO2PerC converts CO2-C to CO2 by molar mass (44/12).
	CO2PerC = 44.0 / 12.0

	// UreaCarbonFraction is the carbon fraction applied to urea in the
	// national inventory formula.
	UreaCarbonFraction = 0.2

	// UreaMolarDivisor is the divisor of the superseded urea CO2 formula.
	UreaMolarDivisor = 47.0

	// NitrogenToPO4e converts NH3-N deposition and N leaching to PO4 equivalents.
	NitrogenToPO4e = 0.42

	// PhosphorusToPO4e converts leached P to PO4 equivalents.
	PhosphorusToPO4e = 3.06
)
