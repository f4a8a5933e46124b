package lca

import (
	"github.com/rshade/sheep-lca/internal/coefficients"
)

// FertiliserFactors are the emission factors for synthetic fertiliser and
// lime applied on the farm. Quantities passed to its methods are in kg and
// results are kg N (N2O-N, NH3-N, leached N), kg P or kg CO2.
type FertiliserFactors struct {
	Urea             float64
	UreaNBPT         float64
	FracGASFUrea     float64
	FracGASFUreaNBPT float64
	FracLeach        float64
	AmmoniumNitrate  float64
	FracGASFAmmonium float64
	Atmospheric      float64
	Leaching         float64
	FracPLeach       float64
	Lime             float64
}

// FertiliserFactors resolves the fertiliser emission factors.
func (c *Calculator) FertiliserFactors() (FertiliserFactors, error) {
	var f FertiliserFactors
	err := factors(c.lookup,
		factorRef{coefficients.Urea, &f.Urea},
		factorRef{coefficients.UreaNBPT, &f.UreaNBPT},
		factorRef{coefficients.FracGASFUrea, &f.FracGASFUrea},
		factorRef{coefficients.FracGASFUreaNBPT, &f.FracGASFUreaNBPT},
		factorRef{coefficients.FracLeachRunoff, &f.FracLeach},
		factorRef{coefficients.AmmoniumNitrate, &f.AmmoniumNitrate},
		factorRef{coefficients.FracGASFAmmonium, &f.FracGASFAmmonium},
		factorRef{coefficients.AtmosphericDeposition, &f.Atmospheric},
		factorRef{coefficients.LeachingRunoff, &f.Leaching},
		factorRef{coefficients.FracPLeach, &f.FracPLeach},
		factorRef{coefficients.LimeCO2, &f.Lime},
	)
	return f, err
}

// UreaN2ODirect returns direct N2O-N from urea and NBPT-abated urea.
func (f FertiliserFactors) UreaN2ODirect(urea, abated float64) float64 {
	return urea*f.Urea + abated*f.UreaNBPT
}

// UreaNH3 returns NH3-N volatilised from urea and abated urea.
func (f FertiliserFactors) UreaNH3(urea, abated float64) float64 {
	return urea*f.FracGASFUrea + abated*f.FracGASFUreaNBPT
}

// UreaNLeach returns N leached from urea and abated urea.
func (f FertiliserFactors) UreaNLeach(urea, abated float64) float64 {
	return (urea + abated) * f.FracLeach
}

// UreaN2OIndirect returns indirect N2O-N from urea volatilisation and leaching.
func (f FertiliserFactors) UreaN2OIndirect(urea, abated float64) float64 {
	return f.UreaNH3(urea, abated)*f.Atmospheric + f.UreaNLeach(urea, abated)*f.Leaching
}

// UreaPLeach returns P leached following urea application.
func (f FertiliserFactors) UreaPLeach(urea, abated float64) float64 {
	return (urea + abated) * f.FracPLeach
}

// NFertiliserN2ODirect returns direct N2O-N from ammonium nitrate.
func (f FertiliserFactors) NFertiliserN2ODirect(n float64) float64 {
	return n * f.AmmoniumNitrate
}

// NFertiliserNH3 returns NH3-N volatilised from ammonium nitrate.
func (f FertiliserFactors) NFertiliserNH3(n float64) float64 {
	return n * f.FracGASFAmmonium
}

// NFertiliserNLeach returns N leached from ammonium nitrate.
func (f FertiliserFactors) NFertiliserNLeach(n float64) float64 {
	return n * f.FracLeach
}

// NFertiliserN2OIndirect returns indirect N2O-N from ammonium nitrate.
func (f FertiliserFactors) NFertiliserN2OIndirect(n float64) float64 {
	return f.NFertiliserNH3(n)*f.Atmospheric + f.NFertiliserNLeach(n)*f.Leaching
}

// NFertiliserPLeach returns P leached following N fertiliser application.
func (f FertiliserFactors) NFertiliserPLeach(n float64) float64 {
	return n * f.FracPLeach
}

// PFertiliserPLeach returns P leached from P fertiliser.
func (f FertiliserFactors) PFertiliserPLeach(p float64) float64 {
	return p * f.FracPLeach
}

// LimeCO2 returns CO2 from lime application: lime * EF * 44/12.
func (f FertiliserFactors) LimeCO2(lime float64) float64 {
	return lime * f.Lime * CO2PerC
}

// UreaCO2 returns CO2 from urea hydrolysis using the selected formula.
func UreaCO2(m UreaCO2Method, urea, abated float64) float64 {
	total := urea + abated
	if m == UreaCO2IPCC {
		return total / UreaMolarDivisor * CO2PerC
	}
	return total * UreaCarbonFraction * CO2PerC
}
