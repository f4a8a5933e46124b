// Package main checks coefficient table directories before they are used
// through SHEEP_LCA_TABLES_DIR or added to the embedded set.
//
// Every <dir>/<country> subdirectory is loaded and probed for the profiles,
// method factors and upstream rows the calculator needs.
//
// Usage:
//
//	go run ./tools/check-tables [--dir ./internal/coefficients/data] [--country ireland]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/rshade/sheep-lca/internal/coefficients"
	"github.com/rshade/sheep-lca/internal/lca"
	"github.com/rshade/sheep-lca/internal/livestock"
)

func main() {
	dir := flag.String("dir", "./internal/coefficients/data", "Directory holding one subdirectory per country")
	country := flag.String("country", "", "Check only this country")
	flag.Parse()

	countries, err := listCountries(*dir, *country)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing countries: %v\n", err)
		os.Exit(1)
	}

	failed := false
	for _, c := range countries {
		problems, err := checkCountry(*dir, c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", c, err)
			failed = true
			continue
		}
		report(os.Stdout, c, problems)
		if len(problems) > 0 {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// listCountries returns the country subdirectories of dir, or just only
// when it is set.
func listCountries(dir, only string) ([]string, error) {
	if only != "" {
		return []string{only}, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, e.Name())
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no country directories in %s", dir)
	}
	sort.Strings(out)
	return out, nil
}

// checkCountry loads one country and returns every lookup the calculator
// would fail on. A table that cannot be parsed at all is returned as err.
func checkCountry(dir, country string) ([]string, error) {
	p, err := coefficients.LoadFS(os.DirFS(filepath.Join(dir, country)), country)
	if err != nil {
		return nil, err
	}

	var problems []string
	note := func(err error) {
		if err != nil {
			problems = append(problems, err.Error())
		}
	}

	for _, c := range livestock.Cohorts() {
		_, err := p.Profile(c)
		note(err)
	}
	for _, g := range []livestock.GrazingRegime{
		livestock.FlatPasture, livestock.HillyPasture, livestock.HousedEwe, livestock.HousedLamb,
	} {
		_, err := p.ActivityCoefficient(g)
		note(err)
	}
	for _, m := range []livestock.StorageMethod{
		livestock.TankLiquid, livestock.TankSolid, livestock.Solid, livestock.Biodigester,
	} {
		_, err := p.HousingTAN(m)
		note(err)
		_, err = p.StorageTAN(m)
		note(err)
		_, err = p.StorageMCF(m)
		note(err)
		_, err = p.StorageN2O(m)
		note(err)
	}
	for _, m := range []livestock.SpreadingMethod{
		livestock.SpreadNone, livestock.SpreadManure, livestock.SpreadBroadcast,
		livestock.SpreadInjection, livestock.SpreadTrailingHose,
	} {
		_, err := p.SpreadingNH3(m)
		note(err)
	}

	_, err = p.ForageDigestibility(livestock.DefaultForage)
	note(err)
	_, err = p.ConcentrateDigestibility(livestock.DefaultConcentrateType)
	note(err)

	calc := lca.NewCalculator(p)
	_, err = calc.FertiliserFactors()
	note(err)
	_, err = calc.UpstreamCO2e()
	note(err)
	_, err = calc.UpstreamPO4e()
	note(err)

	return problems, nil
}

func report(w io.Writer, country string, problems []string) {
	if len(problems) == 0 {
		fmt.Fprintf(w, "%s: ok\n", country)
		return
	}
	fmt.Fprintf(w, "%s: %d problem(s)\n", country, len(problems))
	for _, p := range problems {
		fmt.Fprintf(w, "  - %s\n", p)
	}
}
