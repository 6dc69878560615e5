// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inuritdino/Principal-Feature-Analysis/config"
)

func newConfigCommand(v *viper.Viper) *cobra.Command {
	var defaults bool

	c := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Config prints the configuration after merging defaults, the config file
and PFA_* environment variables. With --defaults it prints the built-in
defaults, suitable as a starting pfa.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if defaults {
				return config.Default().WriteYAML(cmd.OutOrStdout())
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			return cfg.WriteYAML(cmd.OutOrStdout())
		},
	}
	c.Flags().BoolVar(&defaults, "defaults", false, "print built-in defaults")

	return c
}
