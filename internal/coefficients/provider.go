package coefficients

import (
	"fmt"
	"io"
	"io/fs"
	"sort"

	"github.com/goccy/go-json"

	"github.com/rshade/sheep-lca/internal/livestock"
)

// File names expected in each country directory.
const (
	grassFile           = "grass.csv"
	concentrateFile     = "concentrates.csv"
	upstreamFile        = "upstream.csv"
	emissionFactorsFile = "emission_factors.json"
	animalFeaturesFile  = "animal_features.json"
)

// Sources holds the raw readers New parses. All five are required.
type Sources struct {
	Grass           io.Reader
	Concentrate     io.Reader
	Upstream        io.Reader
	EmissionFactors io.Reader
	AnimalFeatures  io.Reader
}

// Provider answers coefficient lookups for one country. A Provider is
// immutable after construction and safe for concurrent use.
type Provider struct {
	country string

	grass       *table
	concentrate *table
	upstream    *table
	factors     *flatTable
	features    *flatTable

	profiles    map[livestock.Cohort]CohortProfile
	profileErrs map[livestock.Cohort]error
}

// New parses the given tables for country. Forage and concentrate tables gain
// an "average" row. Cohort profiles are resolved eagerly; a profile whose
// keys are missing is reported by Profile, not by New.
func New(country string, src Sources) (*Provider, error) {
	p := &Provider{
		country:     country,
		profiles:    make(map[livestock.Cohort]CohortProfile),
		profileErrs: make(map[livestock.Cohort]error),
	}

	var err error
	if p.grass, err = parseTable(TableGrass, src.Grass); err != nil {
		return nil, err
	}
	p.grass.addAverage()

	if p.concentrate, err = parseTable(TableConcentrate, src.Concentrate); err != nil {
		return nil, err
	}
	p.concentrate.addAverage()

	if p.upstream, err = parseTable(TableUpstream, src.Upstream); err != nil {
		return nil, err
	}
	if p.factors, err = parseFlat(TableEmissionFactors, src.EmissionFactors); err != nil {
		return nil, err
	}
	if p.features, err = parseFlat(TableAnimalFeatures, src.AnimalFeatures); err != nil {
		return nil, err
	}

	for _, c := range livestock.Cohorts() {
		prof, err := p.buildProfile(c)
		if err != nil {
			log().Warn().Err(err).Str("country", country).Stringer("cohort", c).Msg("cohort profile incomplete")
			p.profileErrs[c] = err
			continue
		}
		p.profiles[c] = prof
	}

	log().Debug().
		Str("country", country).
		Int("forages", len(p.grass.rows)).
		Int("concentrates", len(p.concentrate.rows)).
		Int("upstream", len(p.upstream.rows)).
		Int("factors", len(p.factors.values)).
		Msg("coefficient tables loaded")
	return p, nil
}

func parseFlat(name string, r io.Reader) (*flatTable, error) {
	if r == nil {
		return nil, fmt.Errorf("%s table: no source", name)
	}
	var raw map[string]*float64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return newFlatTable(name, raw), nil
}

// LoadFS reads the five tables from the root of fsys.
func LoadFS(fsys fs.FS, country string) (*Provider, error) {
	names := []string{grassFile, concentrateFile, upstreamFile, emissionFactorsFile, animalFeaturesFile}
	files := make([]io.Reader, len(names))
	for i, name := range names {
		f, err := fsys.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open %s for %s: %w", name, country, err)
		}
		defer f.Close()
		files[i] = f
	}
	return New(country, Sources{
		Grass:           files[0],
		Concentrate:     files[1],
		Upstream:        files[2],
		EmissionFactors: files[3],
		AnimalFeatures:  files[4],
	})
}

// Country returns the country the provider was loaded for.
func (p *Provider) Country() string {
	return p.country
}

// ForageDigestibility returns the dry matter digestibility (%) of a forage.
func (p *Provider) ForageDigestibility(forage string) (float64, error) {
	return p.grass.value(p.country, forage, colForageDMD)
}

// ForageCrudeProtein returns the crude protein (%) of a forage.
func (p *Provider) ForageCrudeProtein(forage string) (float64, error) {
	return p.grass.value(p.country, forage, colForageCrudeProtein)
}

// ForageGrossEnergy returns the gross energy (MJ/kg DM) of a forage.
func (p *Provider) ForageGrossEnergy(forage string) (float64, error) {
	return p.grass.value(p.country, forage, colForageGrossEnergy)
}

// ConcentrateDigestibility returns the dry matter digestibility (%) of a concentrate.
func (p *Provider) ConcentrateDigestibility(con string) (float64, error) {
	return p.concentrate.value(p.country, con, colConDMD)
}

// ConcentrateDigestibleEnergy returns the digestible energy (%) of a concentrate.
func (p *Provider) ConcentrateDigestibleEnergy(con string) (float64, error) {
	return p.concentrate.value(p.country, con, colConDigestibleEnergy)
}

// ConcentrateCrudeProtein returns the crude protein (%) of a concentrate.
func (p *Provider) ConcentrateCrudeProtein(con string) (float64, error) {
	return p.concentrate.value(p.country, con, colConCrudeProtein)
}

// ConcentrateGrossEnergy returns the gross energy (MJ/kg DM) of a concentrate.
func (p *Provider) ConcentrateGrossEnergy(con string) (float64, error) {
	return p.concentrate.value(p.country, con, colConGrossEnergy)
}

// ConcentrateCO2e returns kg CO2e per kg of concentrate.
func (p *Provider) ConcentrateCO2e(con string) (float64, error) {
	return p.concentrate.value(p.country, con, colConCO2e)
}

// ConcentratePO4e returns kg PO4e per kg of concentrate.
func (p *Provider) ConcentratePO4e(con string) (float64, error) {
	return p.concentrate.value(p.country, con, colConPO4e)
}

// UpstreamCO2e returns kg CO2e per functional unit of an upstream input.
func (p *Provider) UpstreamCO2e(in UpstreamInput) (float64, error) {
	return p.upstream.value(p.country, string(in), colUpstreamCO2e)
}

// UpstreamPO4e returns kg PO4e per functional unit of an upstream input.
func (p *Provider) UpstreamPO4e(in UpstreamInput) (float64, error) {
	return p.upstream.value(p.country, string(in), colUpstreamPO4e)
}

// Factor returns a scalar emission factor.
func (p *Provider) Factor(key FactorKey) (float64, error) {
	return p.factors.value(p.country, string(key))
}

// Feature returns a scalar animal feature.
func (p *Provider) Feature(key FeatureKey) (float64, error) {
	return p.features.value(p.country, string(key))
}

// Profile returns the coefficient bundle for a cohort.
func (p *Provider) Profile(c livestock.Cohort) (CohortProfile, error) {
	if err, ok := p.profileErrs[c]; ok {
		return CohortProfile{}, err
	}
	prof, ok := p.profiles[c]
	if !ok {
		return CohortProfile{}, fmt.Errorf("%w: no profile for %s", livestock.ErrInvalidCohort, c)
	}
	return prof, nil
}

// ActivityCoefficient returns Ca for a grazing regime.
func (p *Provider) ActivityCoefficient(g livestock.GrazingRegime) (float64, error) {
	var key FactorKey
	switch g {
	case livestock.FlatPasture:
		key = FeedingFlatPasture
	case livestock.HillyPasture:
		key = FeedingHillyPasture
	case livestock.HousedEwe:
		key = FeedingHousedEwes
	case livestock.HousedLamb:
		key = FeedingHousedLambs
	default:
		return 0, p.methodError("grazing", string(g))
	}
	return p.Factor(key)
}

// HousingTAN returns the fraction of housed TAN volatilised as NH3 in the
// house. Solid systems use the deep-bedding factor, the rest the liquid one.
func (p *Provider) HousingTAN(m livestock.StorageMethod) (float64, error) {
	switch m {
	case livestock.Solid:
		return p.Factor(TANHouseSolid)
	case livestock.TankLiquid, livestock.TankSolid, livestock.Biodigester:
		return p.Factor(TANHouseLiquid)
	}
	return 0, p.methodError("storage", string(m))
}

// StorageTAN returns the fraction of stored TAN volatilised as NH3.
func (p *Provider) StorageTAN(m livestock.StorageMethod) (float64, error) {
	switch m {
	case livestock.Solid:
		return p.Factor(TANStorageSolid)
	case livestock.TankLiquid, livestock.TankSolid, livestock.Biodigester:
		return p.Factor(TANStorageTank)
	}
	return 0, p.methodError("storage", string(m))
}

// StorageMCF returns the methane conversion factor of a storage method.
func (p *Provider) StorageMCF(m livestock.StorageMethod) (float64, error) {
	switch m {
	case livestock.TankLiquid, livestock.TankSolid:
		return p.Factor(MCFLiquidTank)
	case livestock.Solid:
		return p.Factor(MCFSolidStorage)
	case livestock.Biodigester:
		return p.Factor(MCFAnaerobicDigestion)
	}
	return 0, p.methodError("storage", string(m))
}

// StorageN2O returns the direct N2O-N emission factor of a storage method.
func (p *Provider) StorageN2O(m livestock.StorageMethod) (float64, error) {
	switch m {
	case livestock.TankLiquid:
		return p.Factor(N2OStorageTankLiquid)
	case livestock.TankSolid:
		return p.Factor(N2OStorageTankSolid)
	case livestock.Solid:
		return p.Factor(N2OStorageSolid)
	case livestock.Biodigester:
		return p.Factor(N2OStorageAnaerobicDigestion)
	}
	return 0, p.methodError("storage", string(m))
}

// SpreadingNH3 returns the fraction of spread TAN volatilised as NH3.
func (p *Provider) SpreadingNH3(m livestock.SpreadingMethod) (float64, error) {
	switch m {
	case livestock.SpreadNone:
		return p.Factor(NH3SpreadingNone)
	case livestock.SpreadManure:
		return p.Factor(NH3SpreadingManure)
	case livestock.SpreadBroadcast:
		return p.Factor(NH3SpreadingBroadcast)
	case livestock.SpreadInjection:
		return p.Factor(NH3SpreadingInjection)
	case livestock.SpreadTrailingHose:
		return p.Factor(NH3SpreadingTrailingHose)
	}
	return 0, p.methodError("spreading", string(m))
}

func (p *Provider) methodError(kind, method string) error {
	return &LookupError{Country: p.country, Table: TableEmissionFactors, Key: kind + " method " + method}
}

// Forages returns the forage keys, "average" included.
func (p *Provider) Forages() []string {
	return p.grass.keys()
}

// Concentrates returns the concentrate keys, "average" included.
func (p *Provider) Concentrates() []string {
	return p.concentrate.keys()
}

// UpstreamInputs returns the upstream rows in file order.
func (p *Provider) UpstreamInputs() []UpstreamInput {
	keys := p.upstream.keys()
	out := make([]UpstreamInput, len(keys))
	for i, k := range keys {
		out[i] = UpstreamInput(k)
	}
	return out
}

// Factors returns a copy of the emission factor table.
func (p *Provider) Factors() map[string]float64 {
	out := make(map[string]float64, len(p.factors.values))
	for k, v := range p.factors.values {
		out[k] = v
	}
	return out
}

// FactorKeys returns the emission factor keys in sorted order.
func (p *Provider) FactorKeys() []string {
	return p.factors.keys()
}

// UpstreamRecord is one upstream row with all its indicator columns. Missing
// indicators are reported as nil.
type UpstreamRecord struct {
	Input          UpstreamInput `json:"input"`
	FunctionalUnit string        `json:"functional_unit"`
	CO2e           *float64      `json:"kg_co2e,omitempty"`
	PO4e           *float64      `json:"kg_po4e,omitempty"`
	SO2e           *float64      `json:"kg_so2e,omitempty"`
	MJE            *float64      `json:"mje,omitempty"`
	Sbe            *float64      `json:"kg_sbe,omitempty"`
}

// Upstream returns the full row for an upstream input.
func (p *Provider) Upstream(in UpstreamInput) (UpstreamRecord, error) {
	row, ok := p.upstream.rows[string(in)]
	if !ok {
		return UpstreamRecord{}, &LookupError{Country: p.country, Table: TableUpstream, Key: string(in)}
	}
	rec := UpstreamRecord{Input: in, FunctionalUnit: p.upstream.text[string(in)]["upstream_fu"]}
	pick := func(col string) *float64 {
		if v, ok := row[col]; ok {
			return &v
		}
		return nil
	}
	rec.CO2e = pick(colUpstreamCO2e)
	rec.PO4e = pick(colUpstreamPO4e)
	rec.SO2e = pick(colUpstreamSO2e)
	rec.MJE = pick(colUpstreamMJE)
	rec.Sbe = pick(colUpstreamSbe)
	return rec, nil
}

// sortedCountries is used by Countries.
func sortedCountries(entries []fs.DirEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out
}
