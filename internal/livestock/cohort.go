// Package livestock describes the animal cohorts and farm-level inputs of a
// sheep farm scenario, and the closed enumerations used to select emission
// coefficients for them.
package livestock

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCohort is returned when a record names a cohort, grazing regime,
// storage method or spreading method outside the supported set.
var ErrInvalidCohort = errors.New("invalid cohort attribute")

// Cohort identifies one of the fixed sheep categories on a farm.
type Cohort int

const (
	// Ewes are breeding adult females.
	Ewes Cohort = iota
	// LambLessThanYear are female lambs under one year.
	LambLessThanYear
	// LambMoreThanYear are replacement lambs over one year.
	LambMoreThanYear
	// MaleLessThanYear are male lambs under one year.
	MaleLessThanYear
	// Ram are breeding adult males.
	Ram
)

var cohortNames = [...]string{
	Ewes:             "ewes",
	LambLessThanYear: "lamb_less_1_yr",
	LambMoreThanYear: "lamb_more_1_yr",
	MaleLessThanYear: "male_less_1_yr",
	Ram:              "ram",
}

// Cohorts returns every cohort in evaluation order.
func Cohorts() []Cohort {
	return []Cohort{Ewes, LambLessThanYear, LambMoreThanYear, MaleLessThanYear, Ram}
}

// String returns the canonical table name of the cohort.
func (c Cohort) String() string {
	if c < 0 || int(c) >= len(cohortNames) {
		return fmt.Sprintf("cohort(%d)", int(c))
	}
	return cohortNames[c]
}

// MarshalText encodes the cohort by its table name.
func (c Cohort) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: cohort %d", ErrInvalidCohort, int(c))
	}
	return []byte(cohortNames[c]), nil
}

// UnmarshalText decodes a cohort table name.
func (c *Cohort) UnmarshalText(b []byte) error {
	v, err := ParseCohort(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Valid reports whether c is one of the defined cohorts.
func (c Cohort) Valid() bool {
	return c >= 0 && int(c) < len(cohortNames)
}

// Immature reports whether the cohort uses the lamb methane conversion factor.
func (c Cohort) Immature() bool {
	return c == LambLessThanYear || c == MaleLessThanYear
}

// ParseCohort maps a table name such as "ewes" to its Cohort.
func ParseCohort(s string) (Cohort, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range cohortNames {
		if n == name {
			return Cohort(i), nil
		}
	}
	return 0, fmt.Errorf("%w: cohort %q", ErrInvalidCohort, s)
}

// GrazingRegime is the feeding situation that drives the activity coefficient.
type GrazingRegime string

const (
	FlatPasture  GrazingRegime = "flat_pasture"
	HillyPasture GrazingRegime = "hilly_pasture"
	HousedEwe    GrazingRegime = "housed_ewe"
	HousedLamb   GrazingRegime = "housed_lamb"
)

// ParseGrazingRegime validates a grazing regime name.
func ParseGrazingRegime(s string) (GrazingRegime, error) {
	g := GrazingRegime(strings.ToLower(strings.TrimSpace(s)))
	switch g {
	case FlatPasture, HillyPasture, HousedEwe, HousedLamb:
		return g, nil
	}
	return "", fmt.Errorf("%w: grazing regime %q", ErrInvalidCohort, s)
}

// StorageMethod is the manure storage system used for the housed fraction.
type StorageMethod string

const (
	TankLiquid  StorageMethod = "tank liquid"
	TankSolid   StorageMethod = "tank solid"
	Solid       StorageMethod = "solid"
	Biodigester StorageMethod = "biodigester"
)

// ParseStorageMethod validates a storage method name. Underscores are
// accepted in place of spaces.
func ParseStorageMethod(s string) (StorageMethod, error) {
	m := StorageMethod(normalizeName(s))
	switch m {
	case TankLiquid, TankSolid, Solid, Biodigester:
		return m, nil
	}
	return "", fmt.Errorf("%w: storage method %q", ErrInvalidCohort, s)
}

// SpreadingMethod is the daily spreading technique applied to stored manure.
type SpreadingMethod string

const (
	SpreadNone         SpreadingMethod = "none"
	SpreadManure       SpreadingMethod = "manure"
	SpreadBroadcast    SpreadingMethod = "broadcast"
	SpreadInjection    SpreadingMethod = "injection"
	SpreadTrailingHose SpreadingMethod = "trailing hose"
)

// ParseSpreadingMethod validates a spreading method name. Underscores are
// accepted in place of spaces.
func ParseSpreadingMethod(s string) (SpreadingMethod, error) {
	m := SpreadingMethod(normalizeName(s))
	switch m {
	case SpreadNone, SpreadManure, SpreadBroadcast, SpreadInjection, SpreadTrailingHose:
		return m, nil
	}
	return "", fmt.Errorf("%w: spreading method %q", ErrInvalidCohort, s)
}

func normalizeName(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", " ")
}
