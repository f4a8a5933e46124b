package lca

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulator(t *testing.T) {
	acc := NewAccumulator(ClimateCategories(), []string{"baseline", "scenario_1"})

	for _, cat := range ClimateCategories() {
		assert.Zero(t, acc.Get(cat, "baseline"))
		assert.Zero(t, acc.Get(cat, "scenario_1"))
	}

	acc.Add(EntericCH4, "baseline", 10)
	acc.Add(EntericCH4, "baseline", 5)
	assert.Equal(t, 15.0, acc.Get(EntericCH4, "baseline"))
	assert.Zero(t, acc.Get(EntericCH4, "scenario_1"))

	acc.AddClimate("scenario_1", ClimateTotals{EntericCH4: 2, UreaCO2: 1, LimeCO2: 1})
	assert.Equal(t, 2.0, acc.Get(EntericCH4, "scenario_1"))
	assert.Equal(t, 2.0, acc.Get(SoilsCO2, "scenario_1"))

	snap := acc.Snapshot()
	snap[EntericCH4]["baseline"] = 0
	assert.Equal(t, 15.0, acc.Get(EntericCH4, "baseline"), "snapshot is a copy")

	acc.Add("eutrophication", "baseline", 1)
	assert.Contains(t, acc.Categories(), "eutrophication")
	assert.Zero(t, acc.Get("air_quality", "baseline"))
}
