package lca

// Manure nitrogen flows through four stages. Each stage is built only from
// the previous stage's result, so a stage cannot read a later one.
//
// Grazing and housing split the excretion by time of day. Storage takes what
// leaves the house, and spreading takes what leaves storage. All nitrogen
// quantities are kg N per animal per year; methane is kg CH4 per animal per
// year.

// Excretion holds the volatile solids (kg/day) and nitrogen (kg N/yr)
// excreted by one animal in a fraction of the day.
type Excretion struct {
	Fraction float64
	VS       float64
	Nex      float64
}

// VolatileSolids returns the VS excretion rate in kg/day for the given
// fraction of the day:
//
//	VS = [GEG*(1-DMD/100) + UE*GEG + GEC*(1-DEC/100) + UE*GEC] * (1-ASH)/18.45 * fraction
func VolatileSolids(e EnergyBalance, fraction float64) float64 {
	grass := e.GEG*(1-e.ForageDMD/100) + UrinaryEnergyFraction*e.GEG
	con := e.GEC*(1-e.ConcentrateDE/100) + UrinaryEnergyFraction*e.GEC
	return (grass + con) * ((1 - AshFraction) / FeedEnergyDensity) * fraction
}

// NitrogenExcretion returns the annual N excretion in kg for the given
// fraction of the day, from crude protein intake less retention:
//
//	Nex = [GEC*365/18.45 * CPc/100/6.25 + GEG*365/18.45 * CPg/100/6.25] * (1-0.10) * fraction
func NitrogenExcretion(e EnergyBalance, forageCP, concentrateCP, fraction float64) float64 {
	con := e.GEC * DaysPerYear / FeedEnergyDensity * (concentrateCP / 100 / ProteinToNitrogen)
	grass := e.GEG * DaysPerYear / FeedEnergyDensity * (forageCP / 100 / ProteinToNitrogen)
	return (con + grass) * (1 - NitrogenRetention) * fraction
}

// GrazingFactors are the coefficients used on pasture.
type GrazingFactors struct {
	TAN         float64 // FracGASM for PRP deposition
	DirectN2O   float64 // EF3 PRP
	Atmospheric float64
	Leaching    float64
}

// GrazingStage is manure deposited on pasture, range and paddock.
type GrazingStage struct {
	Excretion
	CH4         float64
	NH3         float64
	LeachN      float64
	LeachP      float64
	DirectN2O   float64
	IndirectN2O float64
}

// Graze applies the pasture emission factors to the outdoor excretion.
func Graze(ex Excretion, f GrazingFactors) GrazingStage {
	s := GrazingStage{Excretion: ex}
	s.CH4 = ex.VS * DaysPerYear * MethaneProducingCapacity * MethaneDensity * PastureMCF
	s.NH3 = ex.Nex * TANFraction * f.TAN
	s.LeachN = ex.Nex * NitrogenLeachFraction
	s.LeachP = ex.Nex * PhosphorusPerNitrogen * PhosphorusLeachFraction
	s.DirectN2O = ex.Nex * f.DirectN2O
	s.IndirectN2O = s.NH3*f.Atmospheric + s.LeachN*f.Leaching
	return s
}

// HousingFactors are the coefficients used in the house.
type HousingFactors struct {
	TAN         float64 // house TAN volatilisation for the storage method
	Atmospheric float64
}

// HousingStage is manure excreted while indoors or stabled.
type HousingStage struct {
	Excretion
	TAN         float64
	NH3         float64
	IndirectN2O float64
}

// House applies the housing emission factors to the indoor excretion.
func House(ex Excretion, f HousingFactors) HousingStage {
	s := HousingStage{Excretion: ex}
	s.TAN = ex.Nex * TANFraction
	s.NH3 = s.TAN * f.TAN
	s.IndirectN2O = s.NH3 * f.Atmospheric
	return s
}

// StorageFactors are the coefficients of the manure storage method.
type StorageFactors struct {
	TAN         float64
	MCF         float64
	DirectN2O   float64
	Atmospheric float64
}

// StorageStage is the housed manure held in store.
type StorageStage struct {
	Nex         float64
	TAN         float64
	CH4         float64
	DirectN2O   float64
	NH3         float64
	IndirectN2O float64
}

// Store moves what is left of the housed nitrogen into storage.
func Store(h HousingStage, f StorageFactors) StorageStage {
	s := StorageStage{Nex: h.Nex - h.NH3}
	s.TAN = s.Nex * TANFraction
	s.CH4 = h.VS * DaysPerYear * MethaneProducingCapacity * MethaneDensity * f.MCF
	s.DirectN2O = s.Nex * f.DirectN2O
	s.NH3 = s.TAN * f.TAN
	s.IndirectN2O = s.NH3 * f.Atmospheric
	return s
}

// SpreadingFactors are the coefficients of daily spreading.
type SpreadingFactors struct {
	NH3         float64 // spreading method volatilisation
	DirectN2O   float64 // direct soil N2O
	Atmospheric float64
	Leaching    float64
}

// SpreadingStage is stored manure applied to land.
type SpreadingStage struct {
	Nex         float64
	TAN         float64
	NH3         float64
	DirectN2O   float64
	LeachN      float64
	LeachP      float64
	IndirectN2O float64
}

// Spread applies what leaves storage to land.
func Spread(s StorageStage, f SpreadingFactors) SpreadingStage {
	out := SpreadingStage{Nex: s.Nex - s.DirectN2O - s.NH3 - s.IndirectN2O}
	out.TAN = out.Nex * TANFraction
	out.NH3 = out.TAN * f.NH3
	out.DirectN2O = out.Nex * f.DirectN2O
	out.LeachN = out.Nex * NitrogenLeachFraction
	out.LeachP = out.Nex * PhosphorusPerNitrogen * PhosphorusLeachFraction
	out.IndirectN2O = out.NH3*f.Atmospheric + out.LeachN*f.Leaching
	return out
}

// ManureFlow is the full per-animal manure chain.
type ManureFlow struct {
	Grazing   GrazingStage
	Housing   HousingStage
	Storage   StorageStage
	Spreading SpreadingStage
}

// CH4 returns manure methane from pasture and storage.
func (m ManureFlow) CH4() float64 {
	return m.Grazing.CH4 + m.Storage.CH4
}

// ManagementN2ON returns the N2O-N of housing and storage: storage direct,
// storage indirect and housing indirect.
func (m ManureFlow) ManagementN2ON() float64 {
	return m.Storage.DirectN2O + m.Storage.IndirectN2O + m.Housing.IndirectN2O
}

// AppliedN2ON returns the N2O-N of spread manure.
func (m ManureFlow) AppliedN2ON() float64 {
	return m.Spreading.DirectN2O + m.Spreading.IndirectN2O
}

// ManagementNH3 returns NH3-N lost in the house and in storage.
func (m ManureFlow) ManagementNH3() float64 {
	return m.Housing.NH3 + m.Storage.NH3
}
