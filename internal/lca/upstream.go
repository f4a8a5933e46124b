package lca

import (
	"github.com/rshade/sheep-lca/internal/coefficients"
	"github.com/rshade/sheep-lca/internal/livestock"
)

// UpstreamIntensity holds one indicator (CO2e or PO4e) per functional unit
// of each upstream input.
type UpstreamIntensity struct {
	DieselDirect         float64
	DieselIndirect       float64
	Electricity          float64
	AmmoniumNitrate      float64
	Urea                 float64
	TripleSuperphosphate float64
	PotassiumChloride    float64
	Lime                 float64
}

// upstreamIntensity resolves every upstream input with get.
func upstreamIntensity(get func(coefficients.UpstreamInput) (float64, error)) (UpstreamIntensity, error) {
	var u UpstreamIntensity
	refs := []struct {
		in  coefficients.UpstreamInput
		dst *float64
	}{
		{coefficients.DieselDirect, &u.DieselDirect},
		{coefficients.DieselIndirect, &u.DieselIndirect},
		{coefficients.ElectricityConsumed, &u.Electricity},
		{coefficients.AmmoniumNitrateFert, &u.AmmoniumNitrate},
		{coefficients.UreaFert, &u.Urea},
		{coefficients.TripleSuperphosphate, &u.TripleSuperphosphate},
		{coefficients.PotassiumChloride, &u.PotassiumChloride},
		{coefficients.LimeInput, &u.Lime},
	}
	for _, r := range refs {
		v, err := get(r.in)
		if err != nil {
			return u, err
		}
		*r.dst = v
	}
	return u, nil
}

// UpstreamCO2e resolves upstream kg CO2e intensities.
func (c *Calculator) UpstreamCO2e() (UpstreamIntensity, error) {
	return upstreamIntensity(c.lookup.UpstreamCO2e)
}

// UpstreamPO4e resolves upstream kg PO4e intensities.
func (c *Calculator) UpstreamPO4e() (UpstreamIntensity, error) {
	return upstreamIntensity(c.lookup.UpstreamPO4e)
}

// Diesel returns the burden of diesel use, direct plus indirect, in kg.
func (u UpstreamIntensity) Diesel(kg float64) float64 {
	return kg * (u.DieselDirect + u.DieselIndirect)
}

// ElectricityUse returns the burden of kwh of electricity.
func (u UpstreamIntensity) ElectricityUse(kwh float64) float64 {
	return kwh * u.Electricity
}

// Fertiliser returns the production burden of the farm's fertiliser.
// Abated urea carries the same production burden as urea.
func (u UpstreamIntensity) Fertiliser(f livestock.Farm) float64 {
	return f.NFertiliser*u.AmmoniumNitrate +
		f.Urea*u.Urea +
		f.UreaAbated*u.Urea +
		f.PFertiliser*u.TripleSuperphosphate +
		f.KFertiliser*u.PotassiumChloride
}

// LimeProduction returns the production burden of lime.
func (u UpstreamIntensity) LimeProduction(kg float64) float64 {
	return kg * u.Lime
}

// Farm returns the total upstream burden of the farm's fuel, electricity,
// fertiliser and lime.
func (u UpstreamIntensity) Farm(f livestock.Farm) float64 {
	return u.Diesel(f.Diesel) + u.ElectricityUse(f.Electricity) + u.Fertiliser(f) + u.LimeProduction(f.Lime)
}
