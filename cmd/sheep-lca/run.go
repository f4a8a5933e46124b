package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/rshade/sheep-lca/internal/lca"
	"github.com/rshade/sheep-lca/internal/livestock"
)

// report is the JSON document written by the run command.
type report struct {
	Country       string                        `json:"country"`
	UreaCO2Method lca.UreaCO2Method             `json:"urea_co2_method"`
	GeneratedAt   time.Time                     `json:"generated_at"`
	Results       []lca.Result                  `json:"results"`
	Totals        map[string]map[string]float64 `json:"totals"`
}

type runOptions struct {
	workers     int
	ureaMethod  string
	output      string
	metricsFile string
	pretty      bool
}

func newRunCmd(a *app) *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run SCENARIO",
		Short: "Evaluate every farm in a YAML scenario file.",
		Long: `run reads a scenario file (use - for standard input), evaluates each farm
and writes per-farm totals plus a climate summary keyed by farm ID as JSON.

The coefficient country named in the scenario file is used unless --country
was given.`,
		DisableAutoGenTag: true,
		Args:              cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args[0], opts)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&opts.workers, "workers", 0, "farms evaluated at once (default from config)")
	flags.StringVar(&opts.ureaMethod, "urea-co2-method", "", "urea CO2 formula: inventory or ipcc")
	flags.StringVarP(&opts.output, "output", "o", "", "write the report to this file instead of stdout")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus textfile metrics to this path")
	flags.BoolVar(&opts.pretty, "pretty", false, "indent the JSON report")
	return cmd
}

func (a *app) run(cmd *cobra.Command, path string, opts runOptions) error {
	country, scenarios, err := readScenario(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	cfg := a.cfg
	if country != "" && a.country == "" {
		cfg.Country = strings.ToLower(country)
	}
	if opts.workers > 0 {
		cfg.Workers = opts.workers
	}
	if opts.ureaMethod != "" {
		m, err := lca.ParseUreaCO2Method(strings.ToLower(opts.ureaMethod))
		if err != nil {
			return err
		}
		cfg.UreaCO2Method = m
	}

	provider, err := cfg.Provider()
	if err != nil {
		return err
	}
	calc := lca.NewCalculator(provider,
		lca.WithLogger(a.logger),
		lca.WithUreaCO2Method(cfg.UreaCO2Method),
	)

	a.logger.Info().
		Str("country", cfg.Country).
		Int("farms", len(scenarios)).
		Int("workers", cfg.Workers).
		Msg("evaluating scenario")

	start := time.Now()
	results, err := lca.RunBatch(cmd.Context(), calc, scenarios, cfg.Workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	keys := make([]string, len(results))
	for i, r := range results {
		keys[i] = strconv.Itoa(r.Totals.FarmID)
	}
	acc := lca.NewAccumulator(lca.ClimateCategories(), keys)
	for i, r := range results {
		acc.AddClimate(keys[i], r.Totals.Climate)
	}

	rep := report{
		Country:       cfg.Country,
		UreaCO2Method: cfg.UreaCO2Method,
		GeneratedAt:   time.Now().UTC(),
		Results:       results,
		Totals:        acc.Snapshot(),
	}
	if err := a.writeReport(cmd, rep, opts); err != nil {
		return err
	}

	if opts.metricsFile != "" {
		m := newRunMetrics()
		m.observe(results, elapsed)
		if err := m.writeTextfile(opts.metricsFile); err != nil {
			return err
		}
		a.logger.Debug().Str("path", opts.metricsFile).Msg("metrics written")
	}
	return nil
}

func (a *app) writeReport(cmd *cobra.Command, rep report, opts runOptions) error {
	var w io.Writer = cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	if opts.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func readScenario(stdin io.Reader, path string) (string, []livestock.Scenario, error) {
	if path == "-" {
		return livestock.LoadScenario(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()
	return livestock.LoadScenario(f)
}
