package coefficients

// Table names used in LookupError.
const (
	TableGrass           = "grass"
	TableConcentrate     = "concentrate"
	TableUpstream        = "upstream"
	TableEmissionFactors = "emission_factors"
	TableAnimalFeatures  = "animal_features"
)

// Forage table columns.
const (
	colForageDMD          = "forage_dry_matter_digestibility"
	colForageCrudeProtein = "crude_protein"
	colForageGrossEnergy  = "gross_energy"
)

// Concentrate table columns.
const (
	colConDMD              = "con_dry_matter_digestibility"
	colConDigestibleEnergy = "con_digestible_energy"
	colConCrudeProtein     = "con_crude_protein"
	colConGrossEnergy      = "gross_energy_mje_dry_matter"
	colConCO2e             = "con_co2_e"
	colConPO4e             = "con_po4_e"
)

// Upstream table columns.
const (
	colUpstreamCO2e = "upstream_kg_co2e"
	colUpstreamPO4e = "upstream_kg_po4e"
	colUpstreamSO2e = "upstream_kg_so2e"
	colUpstreamMJE  = "upstream_mje"
	colUpstreamSbe  = "upstream_kg_sbe"
)

// FactorKey names a scalar in the emission factor table.
type FactorKey string

// Emission factor keys.
const (
	MaintenanceSheepUpToYear      FactorKey = "ef_net_energy_for_maintenance_sheep_up_to_a_year"
	MaintenanceSheepOverYear      FactorKey = "ef_net_energy_for_maintenance_sheep_more_than_a_year"
	MaintenanceIntactMaleUpToYear FactorKey = "ef_net_energy_for_maintenance_intact_male_up_to_year"
	MaintenanceIntactMaleOverYear FactorKey = "ef_net_energy_for_maintenance_intact_male_more_than_a_year"
	FeedingHousedEwes             FactorKey = "ef_feeding_situation_housed_ewes"
	FeedingFlatPasture            FactorKey = "ef_feeding_situation_grazing_flat_pasture"
	FeedingHillyPasture           FactorKey = "ef_feeding_situation_grazing_hilly_pasture"
	FeedingHousedLambs            FactorKey = "ef_feeding_situation_housed_fattening_lambs"
	GrowthFemalesA                FactorKey = "ef_net_energy_for_growth_females_a"
	GrowthFemalesB                FactorKey = "ef_net_energy_for_growth_females_b"
	GrowthMalesA                  FactorKey = "ef_net_energy_for_growth_males_a"
	GrowthMalesB                  FactorKey = "ef_net_energy_for_growth_males_b"
	GrowthCastratesA              FactorKey = "ef_net_energy_for_growth_castrates_a"
	GrowthCastratesB              FactorKey = "ef_net_energy_for_growth_castrates_b"
	Pregnancy                     FactorKey = "ef_net_energy_for_pregnancy"
	MethaneConversionSheep        FactorKey = "ef_methane_conversion_factor_sheep"
	MethaneConversionLamb         FactorKey = "ef_methane_conversion_factor_lamb"
	FracGASMPasture               FactorKey = "ef_fracGASM_total_ammonia_nitrogen_pasture_range_paddock_deposition"
	EF3PastureDirectN2O           FactorKey = "ef3__cpp_pasture_range_paddock_sheep_direct_n2o"
	SoilDirectN2O                 FactorKey = "ef_direct_n2o_emissions_soils"
	AtmosphericDeposition         FactorKey = "ef_indirect_n2o_atmospheric_deposition_to_soils_and_water"
	LeachingRunoff                FactorKey = "ef_indirect_n2o_from_leaching_and_runoff"
	TANHouseLiquid                FactorKey = "ef_TAN_house_liquid"
	TANHouseSolid                 FactorKey = "ef_TAN_house_solid_deep_bedding"
	TANStorageTank                FactorKey = "ef_TAN_storage_tank"
	TANStorageSolid               FactorKey = "ef_TAN_storage_solid_deep_bedding"
	MCFLiquidTank                 FactorKey = "ef_mcf_liquid_tank"
	MCFSolidStorage               FactorKey = "ef_mcf_solid_storage_deep_bedding"
	MCFAnaerobicDigestion         FactorKey = "ef_mcf_anaerobic_digestion"
	N2OStorageTankLiquid          FactorKey = "ef_n2o_direct_storage_tank_liquid"
	N2OStorageTankSolid           FactorKey = "ef_n2o_direct_storage_tank_solid"
	N2OStorageSolid               FactorKey = "ef_n2o_direct_storage_solid_deep_bedding"
	N2OStorageAnaerobicDigestion  FactorKey = "ef_n2o_direct_storage_tank_anaerobic_digestion"
	NH3SpreadingNone              FactorKey = "ef_nh3_daily_spreading_none"
	NH3SpreadingManure            FactorKey = "ef_nh3_daily_spreading_manure"
	NH3SpreadingBroadcast         FactorKey = "ef_nh3_daily_spreading_broadcast"
	NH3SpreadingInjection         FactorKey = "ef_nh3_daily_spreading_injection"
	NH3SpreadingTrailingHose      FactorKey = "ef_nh3_daily_spreading_trailing_hose"
	Urea                          FactorKey = "ef_urea"
	UreaNBPT                      FactorKey = "ef_urea_and_nbpt"
	FracGASFUrea                  FactorKey = "ef_fracGASF_urea_fertilisers_to_nh3_and_nox"
	FracGASFUreaNBPT              FactorKey = "ef_fracGASF_urea_and_nbpt_to_nh3_and_nox"
	FracLeachRunoff               FactorKey = "ef_frac_leach_runoff"
	AmmoniumNitrate               FactorKey = "ef_ammonium_nitrate"
	FracGASFAmmonium              FactorKey = "ef_fracGASF_ammonium_fertilisers_to_nh3_and_nox"
	UreaCO2                       FactorKey = "ef_urea_co2"
	LimeCO2                       FactorKey = "ef_lime_co2"
	FracPLeach                    FactorKey = "ef_Frac_P_Leach"
)

// FeatureKey names a scalar in the animal features table.
type FeatureKey string

// Animal feature keys.
const (
	MatureWeightMale           FeatureKey = "mature_weight_male"
	MatureWeightFemale         FeatureKey = "mature_weight_female"
	EweWeightAfterWeaning      FeatureKey = "ewe_weight_after_weaning"
	LambLessWeightAfterWeaning FeatureKey = "lamb_less_1_yr_weight_after_weaning"
	LambMoreWeightAfterWeaning FeatureKey = "lamb_more_1_yr_weight_after_weaning"
	LambWeightGain             FeatureKey = "lamb_weight_gain"
	RamWeightAfterWeaning      FeatureKey = "ram_weight_after_weaning"
	EweWeightOneYear           FeatureKey = "ewe_weight_1_year_old"
	LambLessWeight             FeatureKey = "lamb_less_1_yr_weight"
	LambMoreWeight             FeatureKey = "lamb_more_1_yr_weight"
	LambMaleMoreOneYear        FeatureKey = "lamb_male_more_1_year_old"
	RamWeightOneYear           FeatureKey = "ram_weight_1_year_old"
	LambWeightAtBirth          FeatureKey = "lamb_weight_at_birth"
)

// UpstreamInput names a row of the upstream table.
type UpstreamInput string

// Upstream inputs.
const (
	DieselDirect         UpstreamInput = "diesel_direct"
	DieselIndirect       UpstreamInput = "diesel_indirect"
	ElectricityConsumed  UpstreamInput = "electricity_consumed"
	AmmoniumNitrateFert  UpstreamInput = "ammonium_nitrate_fertiliser"
	UreaFert             UpstreamInput = "urea_fert"
	TripleSuperphosphate UpstreamInput = "triple_superphosphate"
	PotassiumChloride    UpstreamInput = "potassium_chloride"
	LimeInput            UpstreamInput = "lime"
)
