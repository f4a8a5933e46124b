//go:build integration

// Run with: go test -tags=integration ./test/integration/... -v
package integration

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/sheep-lca/internal/coefficients"
	"github.com/rshade/sheep-lca/internal/lca"
	"github.com/rshade/sheep-lca/internal/livestock"
)

func irelandCalculator(t *testing.T) *lca.Calculator {
	t.Helper()
	p, err := coefficients.Load("ireland")
	require.NoError(t, err)
	return lca.NewCalculator(p)
}

// TestFarmEvaluation_HousingSplit verifies that the time split routes
// excreta to pasture or to the house and nowhere else.
func TestFarmEvaluation_HousingSplit(t *testing.T) {
	calc := irelandCalculator(t)

	tests := []struct {
		name         string
		outdoors     float64
		indoors      float64
		wantPasture  bool
		wantHousing  bool
		minEntericKg float64
		maxEntericKg float64
	}{
		{name: "all day outdoors", outdoors: 24, wantPasture: true, minEntericKg: 3, maxEntericKg: 40},
		{name: "fully housed", indoors: 24, wantHousing: true, minEntericKg: 3, maxEntericKg: 40},
		{name: "split day", outdoors: 18, indoors: 6, wantPasture: true, wantHousing: true, minEntericKg: 3, maxEntericKg: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ewes := livestock.NewAnimalCohort(livestock.Ewes)
			ewes.Population = 1
			ewes.Weight = 68
			ewes.HoursOutdoors = tt.outdoors
			ewes.HoursIndoors = tt.indoors
			ewes.Spreading = livestock.SpreadBroadcast

			got, err := calc.Assemble(livestock.Farm{ID: 1}, livestock.NewHerd(1, ewes))
			require.NoError(t, err)

			assert.GreaterOrEqual(t, got.Climate.EntericCH4, tt.minEntericKg)
			assert.LessOrEqual(t, got.Climate.EntericCH4, tt.maxEntericKg)

			if tt.wantPasture {
				assert.Greater(t, got.Climate.PRPDirectN2O, 0.0)
				assert.Greater(t, got.AirQuality.GrazingNH3, 0.0)
			} else {
				assert.Zero(t, got.Climate.PRPDirectN2O)
				assert.Zero(t, got.AirQuality.GrazingNH3)
			}
			if tt.wantHousing {
				assert.Greater(t, got.Climate.ManureManagementN2O, 0.0)
				assert.Greater(t, got.AirQuality.SpreadingNH3, 0.0)
			} else {
				assert.Zero(t, got.Climate.ManureManagementN2O)
				assert.Zero(t, got.Climate.ManureAppliedN2O)
				assert.Zero(t, got.AirQuality.SpreadingNH3)
			}
		})
	}
}

// TestFarmEvaluation_SpreadingMethods verifies that no daily spreading
// emits no spreading ammonia and broadcast emits the most.
func TestFarmEvaluation_SpreadingMethods(t *testing.T) {
	calc := irelandCalculator(t)

	nh3 := make(map[livestock.SpreadingMethod]float64)
	for _, m := range []livestock.SpreadingMethod{
		livestock.SpreadNone, livestock.SpreadBroadcast, livestock.SpreadInjection, livestock.SpreadTrailingHose,
	} {
		ewes := livestock.NewAnimalCohort(livestock.Ewes)
		ewes.Population = 100
		ewes.Weight = 68
		ewes.HoursOutdoors = 12
		ewes.HoursIndoors = 12
		ewes.Spreading = m

		got, err := calc.Assemble(livestock.Farm{ID: 1}, livestock.NewHerd(1, ewes))
		require.NoError(t, err)
		nh3[m] = got.AirQuality.SpreadingNH3
	}

	assert.Zero(t, nh3[livestock.SpreadNone])
	assert.Greater(t, nh3[livestock.SpreadBroadcast], nh3[livestock.SpreadTrailingHose])
	assert.Greater(t, nh3[livestock.SpreadBroadcast], nh3[livestock.SpreadInjection])
}

const twoFarms = `
country: ireland
farms:
  - farm_id: 10
    year: 2020
    total_n_fert: 5000
    total_lime: 1000
    cohorts:
      - cohort: ewes
        pop: 200
        weight: 70
        wool: 4
        n_sold: 20
        meat_price_kg: 3
        wool_price_kg: 0.5
      - cohort: male_less_1_yr
        pop: 150
        weight: 35
        n_sold: 140
        meat_price_kg: 6
  - farm_id: 11
    year: 2020
    total_urea: 3000
    cohorts:
      - cohort: ram
        pop: 8
        weight: 90
        grazing: hilly_pasture
`

// TestFarmEvaluation_ScenarioToAccumulator runs a YAML scenario through the
// batch runner and checks the accumulated climate summary.
func TestFarmEvaluation_ScenarioToAccumulator(t *testing.T) {
	country, scenarios, err := livestock.LoadScenario(strings.NewReader(twoFarms))
	require.NoError(t, err)
	p, err := coefficients.Load(country)
	require.NoError(t, err)
	calc := lca.NewCalculator(p)

	results, err := lca.RunBatch(context.Background(), calc, scenarios, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	keys := []string{"10", "11"}
	acc := lca.NewAccumulator(lca.ClimateCategories(), keys)
	for _, r := range results {
		acc.AddClimate(strconv.Itoa(r.Totals.FarmID), r.Totals.Climate)
	}

	for i, r := range results {
		for cat, v := range r.Totals.Climate.Dictionary() {
			assert.InDelta(t, v, acc.Get(cat, keys[i]), 1e-9, cat)
		}
	}

	assert.NotNil(t, results[0].Totals.Allocation)
	assert.Nil(t, results[1].Totals.Allocation, "a farm with no sales or wool has no allocation")
	assert.Greater(t, results[0].Totals.Climate.LimeCO2, 0.0)
	assert.Zero(t, results[1].Totals.Climate.LimeCO2)
	assert.Greater(t, results[1].Totals.Climate.UreaCO2, 0.0)
}
