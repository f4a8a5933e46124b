package lca

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVolatileSolidsAndExcretion(t *testing.T) {
	e := EnergyBalance{GEG: 20, GEC: 5, ForageDMD: 75, ConcentrateDE: 80}

	vs := VolatileSolids(e, 0.5)
	want := ((20*0.25 + 0.04*20) + (5*0.2 + 0.04*5)) * (0.92 / 18.45) * 0.5
	assert.InDelta(t, want, vs, 1e-12)

	nex := NitrogenExcretion(e, 18, 16, 0.5)
	wantNex := (5*365/18.45*(0.16/6.25) + 20*365/18.45*(0.18/6.25)) * 0.9 * 0.5
	assert.InDelta(t, wantNex, nex, 1e-12)

	assert.Zero(t, VolatileSolids(e, 0))
	assert.Zero(t, NitrogenExcretion(e, 18, 16, 0))
}

func TestStageChain(t *testing.T) {
	g := Graze(Excretion{Fraction: 0.9, VS: 0.3, Nex: 10}, GrazingFactors{
		TAN: 0.21, DirectN2O: 0.003, Atmospheric: 0.01, Leaching: 0.011,
	})
	assert.InDelta(t, 0.3*365*0.1*0.67*0.19, g.CH4, 1e-12)
	assert.InDelta(t, 10*0.6*0.21, g.NH3, 1e-12)
	assert.InDelta(t, 1.0, g.LeachN, 1e-12)
	assert.InDelta(t, 10*1.8/5*0.03, g.LeachP, 1e-12)
	assert.InDelta(t, 0.03, g.DirectN2O, 1e-12)
	assert.InDelta(t, g.NH3*0.01+1.0*0.011, g.IndirectN2O, 1e-12)

	h := House(Excretion{Fraction: 0.1, VS: 0.05, Nex: 4}, HousingFactors{TAN: 0.22, Atmospheric: 0.01})
	assert.InDelta(t, 2.4, h.TAN, 1e-12)
	assert.InDelta(t, 2.4*0.22, h.NH3, 1e-12)
	assert.InDelta(t, h.NH3*0.01, h.IndirectN2O, 1e-12)

	s := Store(h, StorageFactors{TAN: 0.32, MCF: 0.02, DirectN2O: 0.01, Atmospheric: 0.01})
	assert.InDelta(t, 4-h.NH3, s.Nex, 1e-12)
	assert.InDelta(t, s.Nex*0.6*0.32, s.NH3, 1e-12)
	assert.InDelta(t, 0.05*365*0.1*0.67*0.02, s.CH4, 1e-12)
	assert.InDelta(t, s.Nex*0.01, s.DirectN2O, 1e-12)

	sp := Spread(s, SpreadingFactors{NH3: 0.55, DirectN2O: 0.01, Atmospheric: 0.01, Leaching: 0.011})
	assert.InDelta(t, s.Nex-s.DirectN2O-s.NH3-s.IndirectN2O, sp.Nex, 1e-12)
	assert.InDelta(t, sp.Nex*0.6*0.55, sp.NH3, 1e-12)
	assert.InDelta(t, sp.NH3*0.01+sp.LeachN*0.011, sp.IndirectN2O, 1e-12)

	flow := ManureFlow{Grazing: g, Housing: h, Storage: s, Spreading: sp}
	assert.InDelta(t, g.CH4+s.CH4, flow.CH4(), 1e-12)
	assert.InDelta(t, s.DirectN2O+s.IndirectN2O+h.IndirectN2O, flow.ManagementN2ON(), 1e-12)
	assert.InDelta(t, sp.DirectN2O+sp.IndirectN2O, flow.AppliedN2ON(), 1e-12)
	assert.InDelta(t, h.NH3+s.NH3, flow.ManagementNH3(), 1e-12)
}

func TestStageChainConservesNitrogen(t *testing.T) {
	fractions := []float64{0, 0.01, 0.1, 0.32, 0.5, 0.99, 1}
	for _, houseTAN := range fractions {
		for _, storeTAN := range fractions {
			for _, n2o := range fractions {
				h := House(Excretion{Nex: 7.5, VS: 0.1, Fraction: 0.2}, HousingFactors{TAN: houseTAN, Atmospheric: n2o})
				s := Store(h, StorageFactors{TAN: storeTAN, MCF: n2o, DirectN2O: n2o, Atmospheric: n2o})
				sp := Spread(s, SpreadingFactors{NH3: storeTAN, DirectN2O: n2o, Atmospheric: n2o, Leaching: n2o})

				assert.LessOrEqual(t, s.Nex, h.Nex)
				assert.LessOrEqual(t, sp.Nex, s.Nex)
			}
		}
	}
}
