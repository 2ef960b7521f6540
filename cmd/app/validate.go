// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"

	"github.com/fluent-wallet/fluent-docs/pkg/bundle"
	"github.com/fluent-wallet/fluent-docs/pkg/osfakes/osshim"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newValidateCmd(vip *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the site configuration, the sidebars and the links between them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			var o options
			if err := vip.Unmarshal(&o); err != nil {
				return err
			}
			cfg, sidebars, err := load(&osshim.OsShim{}, o.Sources, o.Deploy)
			if err != nil {
				return err
			}
			if err := bundle.Validate(cfg, sidebars); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: configuration is valid\n", cfg.Title)
			return nil
		},
	}
}
