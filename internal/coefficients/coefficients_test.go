package coefficients

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/sheep-lca/internal/livestock"
)

func loadIreland(t *testing.T) *Provider {
	t.Helper()
	p, err := Load("ireland")
	require.NoError(t, err)
	return p
}

func TestCountries(t *testing.T) {
	assert.Contains(t, Countries(), "ireland")
}

func TestLoad_UnknownCountry(t *testing.T) {
	_, err := Load("atlantis")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLookup)

	var le *LookupError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "country", le.Table)
}

func TestLoad_CachesProvider(t *testing.T) {
	var wg sync.WaitGroup
	providers := make([]*Provider, 8)
	for i := range providers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := Load(" Ireland ")
			assert.NoError(t, err)
			providers[i] = p
		}(i)
	}
	wg.Wait()

	for _, p := range providers[1:] {
		assert.Same(t, providers[0], p)
	}
}

func TestForageLookups(t *testing.T) {
	p := loadIreland(t)

	dmd, err := p.ForageDigestibility("Lolium")
	require.NoError(t, err)
	assert.InDelta(t, 76.0, dmd, 1e-9)

	_, err = p.ForageDigestibility("Bromus")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLookup)
}

func TestForageAverageIgnoresMissing(t *testing.T) {
	p := loadIreland(t)

	// Phleum has no crude protein, so the average is over five rows.
	cp, err := p.ForageCrudeProtein("average")
	require.NoError(t, err)
	assert.InDelta(t, (18.6+15.9+14.2+12.9+24.1)/5, cp, 1e-9)

	dmd, err := p.ForageDigestibility("average")
	require.NoError(t, err)
	assert.InDelta(t, (76.0+69.4+66.8+62.1+71.3+74.5)/6, dmd, 1e-9)

	_, err = p.ForageCrudeProtein("Phleum")
	var le *LookupError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, colForageCrudeProtein, le.Column)
}

func TestConcentrateLookups(t *testing.T) {
	p := loadIreland(t)

	de, err := p.ConcentrateDigestibleEnergy("concentrate")
	require.NoError(t, err)
	assert.InDelta(t, 80.0, de, 1e-9)

	co2, err := p.ConcentrateCO2e("barley")
	require.NoError(t, err)
	assert.InDelta(t, 0.45, co2, 1e-9)

	_, err = p.ConcentratePO4e("beet_pulp")
	assert.ErrorIs(t, err, ErrLookup)

	assert.Equal(t, "average", p.Concentrates()[len(p.Concentrates())-1])
}

func TestUpstream(t *testing.T) {
	p := loadIreland(t)

	v, err := p.UpstreamCO2e(DieselDirect)
	require.NoError(t, err)
	assert.InDelta(t, 3.16, v, 1e-9)

	rec, err := p.Upstream(ElectricityConsumed)
	require.NoError(t, err)
	assert.Equal(t, "kWh", rec.FunctionalUnit)
	require.NotNil(t, rec.MJE)
	assert.Nil(t, rec.Sbe)

	_, err = p.UpstreamCO2e("peat")
	assert.ErrorIs(t, err, ErrLookup)
	assert.Len(t, p.UpstreamInputs(), 8)
}

func TestProfiles(t *testing.T) {
	p := loadIreland(t)

	tests := []struct {
		cohort      livestock.Cohort
		gender      Gender
		maintenance float64
		methane     float64
		pregnant    bool
		lactating   bool
	}{
		{livestock.Ewes, Female, 0.217, 0.067, true, true},
		{livestock.LambLessThanYear, Female, 0.236, 0.045, false, false},
		{livestock.LambMoreThanYear, Female, 0.217, 0.067, false, false},
		{livestock.MaleLessThanYear, Male, 0.271, 0.045, false, false},
		{livestock.Ram, Male, 0.25, 0.067, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.cohort.String(), func(t *testing.T) {
			prof, err := p.Profile(tt.cohort)
			require.NoError(t, err)
			assert.Equal(t, tt.gender, prof.Gender)
			assert.InDelta(t, tt.maintenance, prof.MaintenanceCoefficient, 1e-12)
			assert.InDelta(t, tt.methane, prof.MethaneConversion, 1e-12)
			assert.Equal(t, tt.pregnant, prof.Pregnant)
			assert.Equal(t, tt.lactating, prof.Lactating)
			assert.InDelta(t, 0.21, prof.PastureTAN, 1e-12)
		})
	}

	ewes, err := p.Profile(livestock.Ewes)
	require.NoError(t, err)
	assert.InDelta(t, 33.0-4.5, ewes.LactationWeightGain, 1e-12)
	assert.InDelta(t, 40.0, ewes.InitialWeight, 1e-12)
	assert.InDelta(t, 55.0, ewes.FinalWeight, 1e-12)
	assert.InDelta(t, 68.0, ewes.MatureWeight, 1e-12)

	ram, err := p.Profile(livestock.Ram)
	require.NoError(t, err)
	assert.InDelta(t, 86.0, ram.MatureWeight, 1e-12)
	assert.Zero(t, ram.PregnancyCoefficient)
}

func TestMethodSelectors(t *testing.T) {
	p := loadIreland(t)

	got := func(v float64, err error) float64 {
		t.Helper()
		require.NoError(t, err)
		return v
	}

	assert.InDelta(t, 0.22, got(p.HousingTAN(livestock.Solid)), 1e-12)
	assert.InDelta(t, 0.24, got(p.HousingTAN(livestock.TankSolid)), 1e-12)
	assert.InDelta(t, 0.32, got(p.StorageTAN(livestock.Solid)), 1e-12)
	assert.InDelta(t, 0.1, got(p.StorageTAN(livestock.Biodigester)), 1e-12)
	assert.InDelta(t, 0.173, got(p.StorageMCF(livestock.TankSolid)), 1e-12)
	assert.InDelta(t, 0.01, got(p.StorageMCF(livestock.Biodigester)), 1e-12)
	assert.InDelta(t, 0.005, got(p.StorageN2O(livestock.TankSolid)), 1e-12)
	assert.InDelta(t, 0.0006, got(p.StorageN2O(livestock.Biodigester)), 1e-12)
	assert.InDelta(t, 0.32, got(p.SpreadingNH3(livestock.SpreadTrailingHose)), 1e-12)
	assert.InDelta(t, 0.024, got(p.ActivityCoefficient(livestock.HillyPasture)), 1e-12)

	_, err := p.StorageMCF("lagoon")
	assert.ErrorIs(t, err, ErrLookup)
	_, err = p.ActivityCoefficient("pasture")
	assert.ErrorIs(t, err, ErrLookup)
}

func testFS(factors string) fstest.MapFS {
	return fstest.MapFS{
		grassFile: {Data: []byte("grass_genus,forage_dry_matter_digestibility,crude_protein,gross_energy\n" +
			"Lolium,\"70,5\",18,18.4\n" +
			"Festuca,60,oops\n" +
			",1,2,3\n")},
		concentrateFile: {Data: []byte("con_type,con_dry_matter_digestibility,con_digestible_energy,con_crude_protein,gross_energy_mje_dry_matter,con_co2_e,con_po4_e\n" +
			"concentrate,80,78,15,18,0.5,0.002\n")},
		upstreamFile: {Data: []byte("upstream_type,upstream_fu,upstream_kg_co2e,upstream_kg_po4e,upstream_kg_so2e,upstream_mje,upstream_kg_sbe\n" +
			"lime,kg,0.07,,,,\n")},
		emissionFactorsFile: {Data: []byte(factors)},
		animalFeaturesFile:  {Data: []byte(`{"mature_weight_female": 60}`)},
	}
}

func TestLoadFS_PartialTables(t *testing.T) {
	p, err := LoadFS(testFS(`{"ef_urea": 0.0025, "ef_lime_co2": null}`), "testland")
	require.NoError(t, err)
	assert.Equal(t, "testland", p.Country())

	dmd, err := p.ForageDigestibility("Lolium")
	require.NoError(t, err)
	assert.InDelta(t, 70.5, dmd, 1e-9, "comma decimal separator")

	_, err = p.ForageDigestibility("Festuca")
	assert.ErrorIs(t, err, ErrLookup, "ragged row is skipped")

	_, err = p.Factor(LimeCO2)
	assert.ErrorIs(t, err, ErrLookup, "null factor is missing")

	_, err = p.Profile(livestock.Ewes)
	assert.ErrorIs(t, err, ErrLookup, "incomplete profile reported on lookup")

	_, err = p.UpstreamPO4e(LimeInput)
	assert.ErrorIs(t, err, ErrLookup)
}

func TestLoadFS_Errors(t *testing.T) {
	fsys := testFS(`{"ef_urea": "high"}`)
	_, err := LoadFS(fsys, "testland")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "emission_factors")

	delete(fsys, upstreamFile)
	_, err = LoadFS(fsys, "testland")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), upstreamFile))
}

func TestLookupError_Message(t *testing.T) {
	err := &LookupError{Country: "ireland", Table: TableGrass, Key: "Bromus"}
	assert.Contains(t, err.Error(), `"Bromus"`)
	assert.Contains(t, err.Error(), "ireland")
}
