package lca

import (
	"math"

	"github.com/rshade/sheep-lca/internal/coefficients"
)

// NetEnergy holds the daily net energy requirements of one animal in MJ/day.
type NetEnergy struct {
	Maintenance float64
	Activity    float64
	Growth      float64
	Lactation   float64
	Pregnancy   float64
	Wool        float64
}

// maintenanceDemand is the part of the requirement converted with REM.
func (n NetEnergy) maintenanceDemand() float64 {
	return n.Maintenance + n.Activity + n.Lactation + n.Pregnancy
}

// EnergyBalance is the result of the energy model for one animal. Energies
// are in MJ/day, digestibilities in percent.
type EnergyBalance struct {
	NetEnergy

	// REM and REG are the ratios of net energy available for maintenance
	// and for growth to digestible energy consumed.
	REM float64
	REG float64

	// ForageDMD is the forage dry matter digestibility.
	ForageDMD float64

	// ConcentrateDMD and ConcentrateDE describe the concentrate fed.
	ConcentrateDMD float64
	ConcentrateDE  float64

	// GEC and GEG are gross energy intake from concentrate and grass.
	GEC float64
	GEG float64

	// Ym is the methane conversion factor of the cohort.
	Ym float64
}

// GrossEnergy returns total gross energy intake in MJ/day.
func (e EnergyBalance) GrossEnergy() float64 {
	return e.GEC + e.GEG
}

// RatioNetEnergyMaintenance returns REM for a forage digestibility de (%).
//
//	REM = 1.123 - 4.092e-3*DE + 1.126e-5*DE^2 - 25.4/DE
func RatioNetEnergyMaintenance(de float64) (float64, error) {
	if err := nonZero("forage digestibility", de); err != nil {
		return 0, err
	}
	return 1.123 - 4.092e-3*de + 1.126e-5*de*de - 25.4/de, nil
}

// RatioNetEnergyGrowth returns REG for a forage digestibility de (%).
//
//	REG = 1.164 - 5.160e-3*DE + 1.308e-5*DE^2 - 37.4/DE
func RatioNetEnergyGrowth(de float64) (float64, error) {
	if err := nonZero("forage digestibility", de); err != nil {
		return 0, err
	}
	return 1.164 - 5.160e-3*de + 1.308e-5*de*de - 37.4/de, nil
}

// NetEnergyMaintenance returns NEm = Cfi * weight^0.75.
func NetEnergyMaintenance(cfi, weight float64) float64 {
	return cfi * math.Pow(weight, 0.75)
}

// NetEnergyActivity returns NEa = Ca * weight.
func NetEnergyActivity(ca, weight float64) float64 {
	return ca * weight
}

// NetEnergyGrowth returns NEg from the cohort's reference weights and
// growth coefficients:
//
//	NEg = (BWf - BWi) * (a + 0.5*b*(BWi + BWf)) / 365
func NetEnergyGrowth(p coefficients.CohortProfile) float64 {
	gain := p.FinalWeight - p.InitialWeight
	return gain * (p.GrowthA + 0.5*p.GrowthB*(p.InitialWeight+p.FinalWeight)) / DaysPerYear
}

// NetEnergyLactation returns NEl for lactating cohorts and zero otherwise.
//
//	NEl = 5 * (weaning weight - birth weight) / 365 * 4.6
func NetEnergyLactation(p coefficients.CohortProfile) float64 {
	if !p.Lactating {
		return 0
	}
	return MilkPerWeightGain * p.LactationWeightGain / DaysPerYear * MilkEnergy
}

// NetEnergyPregnancy returns NEp = Cp * NEm for pregnant cohorts and zero
// otherwise.
func NetEnergyPregnancy(p coefficients.CohortProfile, nem float64) float64 {
	if !p.Pregnant {
		return 0
	}
	return p.PregnancyCoefficient * nem
}

// NetEnergyWool returns NEwool = 24 * wool / 365.
func NetEnergyWool(wool float64) float64 {
	return WoolEnergy * wool / DaysPerYear
}

// GrossEnergyConcentrate returns GEC = amount * DMD/100 * GE.
func GrossEnergyConcentrate(amount, dmd, grossEnergy float64) float64 {
	return amount * dmd / 100 * grossEnergy
}

// GrossEnergyGrass solves the energy balance for grass intake:
//
//	GEG = ((NEm+NEa+NEl+NEp)/REM + (NEg+NEwool)/REG) / (DMD/100) - GEC
func GrossEnergyGrass(ne NetEnergy, rem, reg, forageDMD, gec float64) (float64, error) {
	if err := nonZero("REM", rem); err != nil {
		return 0, err
	}
	if err := nonZero("REG", reg); err != nil {
		return 0, err
	}
	if err := nonZero("forage digestibility", forageDMD); err != nil {
		return 0, err
	}
	demand := ne.maintenanceDemand()/rem + (ne.Growth+ne.Wool)/reg
	return demand/(forageDMD/100) - gec, nil
}

// EntericMethane returns annual enteric CH4 in kg from daily gross energy
// intake and the methane conversion factor.
//
//	CH4 = GE * Ym * 365 / 55.65
func EntericMethane(grossEnergy, ym float64) float64 {
	return grossEnergy * ym * DaysPerYear / MethaneEnergyContent
}
