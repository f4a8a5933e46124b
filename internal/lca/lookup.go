package lca

import (
	"github.com/rshade/sheep-lca/internal/coefficients"
	"github.com/rshade/sheep-lca/internal/livestock"
)

// Lookup is the read-only coefficient surface the engine consumes.
// *coefficients.Provider implements it. Every method returns an error
// wrapping coefficients.ErrLookup for a key that has no value.
type Lookup interface {
	ForageDigestibility(forage string) (float64, error)
	ForageCrudeProtein(forage string) (float64, error)
	ForageGrossEnergy(forage string) (float64, error)

	ConcentrateDigestibility(con string) (float64, error)
	ConcentrateDigestibleEnergy(con string) (float64, error)
	ConcentrateCrudeProtein(con string) (float64, error)
	ConcentrateGrossEnergy(con string) (float64, error)
	ConcentrateCO2e(con string) (float64, error)
	ConcentratePO4e(con string) (float64, error)

	UpstreamCO2e(in coefficients.UpstreamInput) (float64, error)
	UpstreamPO4e(in coefficients.UpstreamInput) (float64, error)

	Factor(key coefficients.FactorKey) (float64, error)
	Profile(c livestock.Cohort) (coefficients.CohortProfile, error)
	ActivityCoefficient(g livestock.GrazingRegime) (float64, error)
	HousingTAN(m livestock.StorageMethod) (float64, error)
	StorageTAN(m livestock.StorageMethod) (float64, error)
	StorageMCF(m livestock.StorageMethod) (float64, error)
	StorageN2O(m livestock.StorageMethod) (float64, error)
	SpreadingNH3(m livestock.SpreadingMethod) (float64, error)
}

var _ Lookup = (*coefficients.Provider)(nil)

// factors resolves several emission factors at once, stopping at the first
// missing key.
func factors(l Lookup, pairs ...factorRef) error {
	for _, p := range pairs {
		v, err := l.Factor(p.key)
		if err != nil {
			return err
		}
		*p.dst = v
	}
	return nil
}

type factorRef struct {
	key coefficients.FactorKey
	dst *float64
}
