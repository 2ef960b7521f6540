// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate completion script",
		Long: `To load completions:

**Bash**:

$ source <(fluentdocs completion bash)

To load completions for each session, execute once:
- Linux:
  $ fluentdocs completion bash > /etc/bash_completion.d/fluentdocs
- MacOS:
  $ fluentdocs completion bash > /usr/local/etc/bash_completion.d/fluentdocs

**Zsh**:

If shell completion is not already enabled in your environment you will need
to enable it.  You can execute the following once:

$ echo "autoload -U compinit; compinit" >> ~/.zshrc

To load completions for each session, execute once:
$ fluentdocs completion zsh > "${fpath[1]}/_fluentdocs"

You will need to start a new shell for this setup to take effect.

**Fish**:

$ fluentdocs completion fish | source

To load completions for each session, execute once:
$ fluentdocs completion fish > ~/.config/fish/completions/fluentdocs.fish
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.ExactValidArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletion(out)
			}
			return nil
		},
	}
}
