package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/rshade/sheep-lca/internal/coefficients"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print the version and the embedded coefficient countries.",
		DisableAutoGenTag: true,
		Args:              cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(a.stdout, "sheep-lca %s (%s) countries=%v\n", version, runtime.Version(), coefficients.Countries())
			return err
		},
	}
}
