// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fluent-wallet/fluent-docs/pkg/redirects"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

func newRedirectsCmd() *cobra.Command {
	var format string
	command := &cobra.Command{
		Use:   "redirects",
		Short: "Print the expanded redirect table",
		Long: `Prints the redirect table handed to the redirects plugin: every curated
rule followed by the same rule for the .html variant of its source path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return printRedirects(cmd.OutOrStdout(), format, redirects.Expand(redirects.Canonical()))
		},
	}
	command.Flags().StringVarP(&format, "output", "o", formatYAML,
		"Output format. Must be one of: `yaml` or `json`.")
	return command
}

func printRedirects(w io.Writer, format string, rules []redirects.Rule) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rules); err != nil {
			return err
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rules)
	}
	return fmt.Errorf("unknown output format '%s'. Must be one of %v", format, []string{formatYAML, formatJSON})
}
