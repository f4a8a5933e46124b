// Package coefficients loads the country-specific coefficient tables used by
// the sheep farm assessment: forage and concentrate feed properties, upstream
// input factors, emission factors and animal features.
//
// Tables are embedded per country under data/<country>/ and parsed once on
// first use. Every lookup is total: a missing key or missing value returns a
// *LookupError rather than a zero.
package coefficients

import (
	"errors"
	"fmt"
)

// ErrLookup is the sentinel wrapped by every *LookupError.
var ErrLookup = errors.New("coefficient lookup failed")

// LookupError reports a key or value that is not present in a coefficient
// table for the active country.
type LookupError struct {
	Country string
	Table   string
	Key     string
	Column  string
}

func (e *LookupError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s: %s table has no %s for %q (country %s)", ErrLookup, e.Table, e.Column, e.Key, e.Country)
	}
	return fmt.Sprintf("%s: %s table has no entry %q (country %s)", ErrLookup, e.Table, e.Key, e.Country)
}

// Unwrap lets errors.Is match ErrLookup.
func (e *LookupError) Unwrap() error {
	return ErrLookup
}
