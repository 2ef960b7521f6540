// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "FLUENTDOCS"

func configureEnv(vip *viper.Viper) {
	vip.SetEnvPrefix(envPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()
	// overwritten by the deployment workflow for staging / latest
	_ = vip.BindEnv("base-url", envPrefix+"_BASE_URL", "DEST")
	_ = vip.BindEnv("node-env", "NODE_ENV")
}

func configurePersistentFlags(command *cobra.Command, vip *viper.Viper) {
	command.PersistentFlags().StringP("config", "c", "",
		"Site configuration path. The built-in Fluent Wallet configuration is used when not set.")
	_ = vip.BindPFlag("config", command.PersistentFlags().Lookup("config"))

	command.PersistentFlags().String("sidebars-dir", "",
		"Directory with one <sidebar>.yaml file per docs mount. The built-in sidebars are used when not set.")
	_ = vip.BindPFlag("sidebars-dir", command.PersistentFlags().Lookup("sidebars-dir"))

	command.PersistentFlags().String("base-url", "",
		"Overrides the site base URL. Can also be set with the DEST environment variable.")
	_ = vip.BindPFlag("base-url", command.PersistentFlags().Lookup("base-url"))

	command.PersistentFlags().Bool("production", false,
		"Targets the production site. Also enabled with NODE_ENV=production.")
	_ = vip.BindPFlag("production", command.PersistentFlags().Lookup("production"))
}

func configureFlags(command *cobra.Command, vip *viper.Viper) {
	command.Flags().StringP("destination", "d", "",
		"Destination path.")
	_ = vip.BindPFlag("destination", command.Flags().Lookup("destination"))

	command.Flags().Bool("fail-fast", false,
		"Fail-fast vs fault tolerant operation.")
	_ = vip.BindPFlag("fail-fast", command.Flags().Lookup("fail-fast"))

	command.Flags().Bool("dry-run", false,
		"Runs the command end-to-end but instead of writing files, it will output the projected file/folder hierarchy to the standard output.")
	_ = vip.BindPFlag("dry-run", command.Flags().Lookup("dry-run"))

	command.Flags().Bool("skip-link-validation", false,
		"Links validation will be skipped")
	_ = vip.BindPFlag("skip-link-validation", command.Flags().Lookup("skip-link-validation"))

	command.Flags().Int("workers", 25,
		"Number of parallel workers writing redirect pages.")
	_ = vip.BindPFlag("workers", command.Flags().Lookup("workers"))
}
