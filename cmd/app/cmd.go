// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"flag"

	"github.com/fluent-wallet/fluent-docs/cmd/gendocs"
	"github.com/fluent-wallet/fluent-docs/cmd/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewCommand creates a new root command and propagates
// the context to its Run callback closure
func NewCommand(ctx context.Context) *cobra.Command {
	vip := viper.New()
	cmd := &cobra.Command{
		Use:   "fluentdocs",
		Short: "Forge the Fluent Wallet documentation portal configuration bundle",
		Long: `Forges the configuration bundle of the Fluent Wallet documentation portal:
the site configuration, the sidebars of every docs mount, the expanded
redirect table and static redirect pages, ready for the documentation generator.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return exec(ctx, vip, cmd.OutOrStdout())
		},
	}

	configureEnv(vip)
	configurePersistentFlags(cmd, vip)
	configureFlags(cmd, vip)

	cmd.AddCommand(newRedirectsCmd())
	cmd.AddCommand(newValidateCmd(vip))
	cmd.AddCommand(version.NewVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(gendocs.NewGenCmdDocs())

	AddFlags(cmd)

	return cmd
}

// AddFlags adds go flags to rootCmd
func AddFlags(rootCmd *cobra.Command) {
	flag.CommandLine.VisitAll(func(gf *flag.Flag) {
		rootCmd.PersistentFlags().AddGoFlag(gf)
	})
}
