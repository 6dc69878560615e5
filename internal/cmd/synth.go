// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inuritdino/Principal-Feature-Analysis/csvio"
	"github.com/inuritdino/Principal-Feature-Analysis/synth"
)

func newSynthCommand(_ *viper.Viper) *cobra.Command {
	var (
		kind   string
		n      int
		seed   int64
		output string
		list   bool
	)

	c := &cobra.Command{
		Use:   "synth",
		Short: "Generate a synthetic data set",
		Long: `Synth writes one of the built-in synthetic data sets as CSV, one feature
per line with the state first. Use --list to see the available kinds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if list {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(synth.Names(), "\n"))
				return nil
			}

			d, err := synth.ByName(kind, n, synth.WithSeed(seed))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			return csvio.WriteRows(w, d.Rows)
		},
	}

	f := c.Flags()
	f.StringVarP(&kind, "kind", "k", "xor", "data set kind")
	f.IntVarP(&n, "observations", "n", 1000, "number of observations")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.StringVarP(&output, "output", "o", "", "output file (default stdout)")
	f.BoolVar(&list, "list", false, "list data set kinds")

	return c
}
