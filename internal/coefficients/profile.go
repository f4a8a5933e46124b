package coefficients

import (
	"fmt"

	"github.com/rshade/sheep-lca/internal/livestock"
)

// Gender selects the growth and mature-weight coefficients of a cohort.
type Gender int

const (
	Female Gender = iota
	Male
)

func (g Gender) String() string {
	if g == Male {
		return "male"
	}
	return "female"
}

// CohortProfile bundles every per-cohort coefficient the energy model needs.
// Profiles are resolved once per provider so the energy functions never
// branch on cohort names.
type CohortProfile struct {
	Cohort livestock.Cohort
	Gender Gender

	// MaintenanceCoefficient is Cfi in MJ/day/kg^0.75.
	MaintenanceCoefficient float64

	// InitialWeight and FinalWeight bound the annual weight gain in kg.
	InitialWeight float64
	FinalWeight   float64

	// MatureWeight is the gender-specific adult weight in kg.
	MatureWeight float64

	// GrowthA and GrowthB are the NEg coefficients in MJ/kg.
	GrowthA float64
	GrowthB float64

	// Pregnant selects PregnancyCoefficient in NEp.
	Pregnant             bool
	PregnancyCoefficient float64

	// Lactating selects NEl with LactationWeightGain in kg.
	Lactating           bool
	LactationWeightGain float64

	// MethaneConversion is Ym as a fraction of gross energy.
	MethaneConversion float64

	// Nitrogen factors shared by every cohort.
	PastureTAN       float64
	PastureDirectN2O float64
	SoilDirectN2O    float64
}

// profileSpec lists the table keys that make up a cohort's profile.
type profileSpec struct {
	gender      Gender
	maintenance FactorKey
	initial     FeatureKey
	final       FeatureKey
	growthA     FactorKey
	growthB     FactorKey
	pregnant    bool
	lactating   bool
	methane     FactorKey
}

var profileSpecs = map[livestock.Cohort]profileSpec{
	livestock.Ewes: {
		gender:      Female,
		maintenance: MaintenanceSheepOverYear,
		initial:     EweWeightAfterWeaning,
		final:       EweWeightOneYear,
		growthA:     GrowthFemalesA,
		growthB:     GrowthFemalesB,
		pregnant:    true,
		lactating:   true,
		methane:     MethaneConversionSheep,
	},
	livestock.LambLessThanYear: {
		gender:      Female,
		maintenance: MaintenanceSheepUpToYear,
		initial:     LambWeightGain,
		final:       LambLessWeight,
		growthA:     GrowthFemalesA,
		growthB:     GrowthFemalesB,
		methane:     MethaneConversionLamb,
	},
	livestock.LambMoreThanYear: {
		gender:      Female,
		maintenance: MaintenanceSheepOverYear,
		initial:     LambWeightGain,
		final:       LambMoreWeight,
		growthA:     GrowthFemalesA,
		growthB:     GrowthFemalesB,
		methane:     MethaneConversionSheep,
	},
	livestock.MaleLessThanYear: {
		gender:      Male,
		maintenance: MaintenanceIntactMaleUpToYear,
		initial:     LambWeightGain,
		final:       LambLessWeight,
		growthA:     GrowthMalesA,
		growthB:     GrowthMalesB,
		methane:     MethaneConversionLamb,
	},
	livestock.Ram: {
		gender:      Male,
		maintenance: MaintenanceIntactMaleOverYear,
		initial:     RamWeightAfterWeaning,
		final:       RamWeightOneYear,
		growthA:     GrowthMalesA,
		growthB:     GrowthMalesB,
		methane:     MethaneConversionSheep,
	},
}

// buildProfile resolves every key in the cohort's profileSpec. The first
// missing key is returned as a *LookupError.
func (p *Provider) buildProfile(c livestock.Cohort) (CohortProfile, error) {
	keys, ok := profileSpecs[c]
	if !ok {
		return CohortProfile{}, fmt.Errorf("%w: no profile for %s", livestock.ErrInvalidCohort, c)
	}

	prof := CohortProfile{
		Cohort:    c,
		Gender:    keys.gender,
		Pregnant:  keys.pregnant,
		Lactating: keys.lactating,
	}

	factors := []struct {
		key FactorKey
		dst *float64
	}{
		{keys.maintenance, &prof.MaintenanceCoefficient},
		{keys.growthA, &prof.GrowthA},
		{keys.growthB, &prof.GrowthB},
		{keys.methane, &prof.MethaneConversion},
		{FracGASMPasture, &prof.PastureTAN},
		{EF3PastureDirectN2O, &prof.PastureDirectN2O},
		{SoilDirectN2O, &prof.SoilDirectN2O},
	}
	if keys.pregnant {
		factors = append(factors, struct {
			key FactorKey
			dst *float64
		}{Pregnancy, &prof.PregnancyCoefficient})
	}
	for _, f := range factors {
		v, err := p.Factor(f.key)
		if err != nil {
			return CohortProfile{}, err
		}
		*f.dst = v
	}

	mature := MatureWeightFemale
	if keys.gender == Male {
		mature = MatureWeightMale
	}
	features := []struct {
		key FeatureKey
		dst *float64
	}{
		{keys.initial, &prof.InitialWeight},
		{keys.final, &prof.FinalWeight},
		{mature, &prof.MatureWeight},
	}
	for _, f := range features {
		v, err := p.Feature(f.key)
		if err != nil {
			return CohortProfile{}, err
		}
		*f.dst = v
	}

	if keys.lactating {
		weaned, err := p.Feature(LambLessWeight)
		if err != nil {
			return CohortProfile{}, err
		}
		birth, err := p.Feature(LambWeightAtBirth)
		if err != nil {
			return CohortProfile{}, err
		}
		prof.LactationWeightGain = weaned - birth
	}
	return prof, nil
}
