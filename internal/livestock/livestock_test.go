package livestock

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCohort(t *testing.T) {
	for _, c := range Cohorts() {
		got, err := ParseCohort(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCohort("wether")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCohort)
}

func TestCohort_Immature(t *testing.T) {
	assert.True(t, LambLessThanYear.Immature())
	assert.True(t, MaleLessThanYear.Immature())
	assert.False(t, Ewes.Immature())
	assert.False(t, LambMoreThanYear.Immature())
	assert.False(t, Ram.Immature())
}

func TestParseStorageAndSpreading(t *testing.T) {
	m, err := ParseStorageMethod("tank_liquid")
	require.NoError(t, err)
	assert.Equal(t, TankLiquid, m)

	s, err := ParseSpreadingMethod("Trailing Hose")
	require.NoError(t, err)
	assert.Equal(t, SpreadTrailingHose, s)

	_, err = ParseStorageMethod("lagoon")
	assert.ErrorIs(t, err, ErrInvalidCohort)
	_, err = ParseSpreadingMethod("splash plate")
	assert.ErrorIs(t, err, ErrInvalidCohort)
	_, err = ParseGrazingRegime("mountain")
	assert.ErrorIs(t, err, ErrInvalidCohort)
}

func TestNewAnimalCohort_DefaultsAreIndependent(t *testing.T) {
	a := NewAnimalCohort(Ewes)
	b := NewAnimalCohort(Ram)

	a.Forage = "Lolium"
	a.HoursOutdoors = 10

	assert.Equal(t, DefaultForage, b.Forage)
	assert.Equal(t, HoursPerDay, b.HoursOutdoors)
	assert.Equal(t, Solid, b.Storage)
	assert.Equal(t, SpreadNone, b.Spreading)
	assert.Zero(t, b.Population)
}

func TestAnimalCohort_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AnimalCohort)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*AnimalCohort) {}},
		{name: "negative population", mutate: func(a *AnimalCohort) { a.Population = -1 }, wantErr: true},
		{name: "negative weight", mutate: func(a *AnimalCohort) { a.Weight = -5 }, wantErr: true},
		{name: "too many hours", mutate: func(a *AnimalCohort) { a.HoursIndoors = 2 }, wantErr: true},
		{name: "split day", mutate: func(a *AnimalCohort) {
			a.HoursOutdoors = 21.36
			a.HoursIndoors = 2.64
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnimalCohort(Ewes)
			tt.mutate(&a)
			err := a.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCohort)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHerd_SetReplacesAndKeepsOrder(t *testing.T) {
	ram := NewAnimalCohort(Ram)
	ewes := NewAnimalCohort(Ewes)
	h := NewHerd(7, ram, ewes)

	replacement := NewAnimalCohort(Ram)
	replacement.Population = 12
	h.Set(replacement)

	entries := h.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, Ram, entries[0].Cohort)
	assert.Equal(t, 12.0, entries[0].Animal.Population)
	assert.Equal(t, Ewes, entries[1].Cohort)

	_, ok := h.Get(MaleLessThanYear)
	assert.False(t, ok)
}

func TestHerd_ValidateSkipsEmptyCohorts(t *testing.T) {
	placeholder := NewAnimalCohort(Ram)
	placeholder.Weight = -100
	placeholder.HoursIndoors = 99
	h := NewHerd(1, placeholder)

	assert.NoError(t, h.Validate())
}

const scenarioYAML = `
country: ireland
farms:
  - farm_id: 2018
    year: 2018
    total_urea: 2072487.127
    total_n_fert: 17310655.18
    total_p_fert: 1615261.859
    total_k_fert: 3922778.8
    cohorts:
      - cohort: ewes
        pop: 37812.8
        weight: 68
        grazing: flat_pasture
        t_outdoors: 21.36
        t_indoors: 2.64
        wool: 4.5
        mm_storage: solid
        daily_spreading: broadcast
      - cohort: ram
        pop: 1146.4
        weight: 86
`

func TestLoadScenario(t *testing.T) {
	country, scenarios, err := LoadScenario(strings.NewReader(scenarioYAML))
	require.NoError(t, err)
	assert.Equal(t, "ireland", country)
	require.Len(t, scenarios, 1)

	s := scenarios[0]
	assert.Equal(t, 2018, s.Farm.ID)
	assert.InDelta(t, 17310655.18, s.Farm.NFertiliser, 1e-6)
	require.Equal(t, 2, s.Herd.Len())

	ewes, ok := s.Herd.Get(Ewes)
	require.True(t, ok)
	assert.Equal(t, 21.36, ewes.HoursOutdoors)
	assert.Equal(t, SpreadBroadcast, ewes.Spreading)
	assert.Equal(t, DefaultForage, ewes.Forage)

	ram, ok := s.Herd.Get(Ram)
	require.True(t, ok)
	assert.Equal(t, HoursPerDay, ram.HoursOutdoors, "omitted t_outdoors keeps the default")
	assert.Equal(t, SpreadNone, ram.Spreading)
}

func TestLoadScenario_RejectsUnknownCohort(t *testing.T) {
	_, _, err := LoadScenario(strings.NewReader(`
farms:
  - farm_id: 1
    cohorts:
      - cohort: goat
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCohort)
}

func TestGroupHerds(t *testing.T) {
	rows := []CohortRecord{
		{FarmID: 2, Cohort: "ram", Population: 3},
		{FarmID: 1, Cohort: "ewes", Population: 10},
		{FarmID: 1, Cohort: "ewes", Population: 20},
		{FarmID: 1, Cohort: "lamb_less_1_yr", Population: 5},
	}

	herds, err := GroupHerds(rows)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, FarmIDs(herds))

	ewes, ok := herds[1].Get(Ewes)
	require.True(t, ok)
	assert.Equal(t, 20.0, ewes.Population)
	assert.Equal(t, 2, herds[1].Len())
}

func TestCohort_TextRoundTrip(t *testing.T) {
	b, err := MaleLessThanYear.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "male_less_1_yr", string(b))

	var c Cohort
	require.NoError(t, c.UnmarshalText([]byte("ram")))
	assert.Equal(t, Ram, c)

	_, err = Cohort(42).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidCohort)
}
