package main

import (
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/rshade/sheep-lca/internal/coefficients"
)

type tablesReport struct {
	Country      string                        `json:"country"`
	Countries    []string                      `json:"countries"`
	Forages      []string                      `json:"forages"`
	Concentrates []string                      `json:"concentrates"`
	Upstream     []coefficients.UpstreamRecord `json:"upstream"`
	Factors      map[string]float64            `json:"factors"`
}

func newTablesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "tables",
		Short:             "Print the coefficient tables for the configured country as JSON.",
		DisableAutoGenTag: true,
		Args:              cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.cfg.Provider()
			if err != nil {
				return err
			}

			rep := tablesReport{
				Country:      p.Country(),
				Countries:    coefficients.Countries(),
				Forages:      p.Forages(),
				Concentrates: p.Concentrates(),
				Factors:      p.Factors(),
			}
			for _, in := range p.UpstreamInputs() {
				rec, err := p.Upstream(in)
				if err != nil {
					a.logger.Warn().Err(err).Str("input", string(in)).Msg("skipping upstream input")
					continue
				}
				rep.Upstream = append(rep.Upstream, rec)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		},
	}
}
