package lca

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/sheep-lca/internal/coefficients"
	"github.com/rshade/sheep-lca/internal/livestock"
)

func irelandCalculator(t testing.TB, opts ...Option) *Calculator {
	t.Helper()
	p, err := coefficients.Load("ireland")
	require.NoError(t, err)
	return NewCalculator(p, opts...)
}

func sampleEwes() livestock.AnimalCohort {
	a := livestock.NewAnimalCohort(livestock.Ewes)
	a.Population = 37812.8
	a.Weight = 68
	a.Wool = 4.5
	a.HoursOutdoors = 21.36
	a.HoursIndoors = 2.64
	a.Storage = livestock.Solid
	a.Spreading = livestock.SpreadBroadcast
	a.Sold = 2500
	a.MeatPrice = 1.2
	a.WoolPrice = 0.4
	return a
}

func sampleFarm() (livestock.Farm, *livestock.Herd) {
	farm := livestock.Farm{
		ID:          2018,
		Year:        2018,
		Urea:        2072487.127,
		NFertiliser: 17310655.18,
		PFertiliser: 1615261.859,
		KFertiliser: 3922778.8,
		Lime:        120000,
		Diesel:      350000,
		Electricity: 900000,
	}

	ram := livestock.NewAnimalCohort(livestock.Ram)
	ram.Population = 1146.4
	ram.Weight = 86
	ram.Wool = 4.5
	ram.HoursOutdoors = 21.36
	ram.HoursIndoors = 2.64

	lambMore := livestock.NewAnimalCohort(livestock.LambMoreThanYear)
	lambMore.Population = 2237.3
	lambMore.Weight = 68
	lambMore.Wool = 4.5
	lambMore.Grazing = livestock.HillyPasture
	lambMore.Sold = 300
	lambMore.MeatPrice = 3.1

	lambLess := livestock.NewAnimalCohort(livestock.LambLessThanYear)
	lambLess.Population = 17417.9
	lambLess.Weight = 33
	lambLess.ConcentrateAmount = 0.1
	lambLess.HoursOutdoors = 20
	lambLess.HoursStabled = 4
	lambLess.Storage = livestock.TankLiquid
	lambLess.Spreading = livestock.SpreadTrailingHose
	lambLess.Sold = 15000
	lambLess.MeatPrice = 3.5

	male := livestock.NewAnimalCohort(livestock.MaleLessThanYear)
	male.Population = 10891.9
	male.Weight = 33
	male.Sold = 10000
	male.MeatPrice = 3.5

	return farm, livestock.NewHerd(farm.ID, sampleEwes(), ram, lambMore, lambLess, male)
}
