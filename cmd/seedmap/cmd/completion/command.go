// Package completion provides the shell completion script command.
package completion

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/seedmap/internal/cmd/constants"
)

// generator writes the completion script of one shell for root.
type generator func(root *cobra.Command, w io.Writer) error

var generators = map[string]generator{
	constants.ShellBash: func(root *cobra.Command, w io.Writer) error {
		return root.GenBashCompletionV2(w, true)
	},
	constants.ShellZsh: func(root *cobra.Command, w io.Writer) error {
		return root.GenZshCompletion(w)
	},
	constants.ShellFish: func(root *cobra.Command, w io.Writer) error {
		return root.GenFishCompletion(w, true)
	},
	constants.ShellPowerShell: func(root *cobra.Command, w io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(w)
	},
}

var setup = map[string]string{
	constants.ShellBash: `To load completions in your current shell session:

  source <(seedmap completion bash)

To load completions for every new session, execute once:

  # Linux:
  seedmap completion bash > /etc/bash_completion.d/seedmap

  # macOS:
  seedmap completion bash > $(brew --prefix)/etc/bash_completion.d/seedmap`,

	constants.ShellZsh: `To load completions in your current shell session:

  source <(seedmap completion zsh)

To load completions for every new session, execute once:

  seedmap completion zsh > "${fpath[1]}/_seedmap"

You will need to start a new shell for this setup to take effect.`,

	constants.ShellFish: `To load completions in your current shell session:

  seedmap completion fish | source

To load completions for every new session, execute once:

  seedmap completion fish > ~/.config/fish/completions/seedmap.fish`,

	constants.ShellPowerShell: `To load completions in your current shell session:

  seedmap completion powershell | Out-String | Invoke-Expression

To load completions for every new session, add the output of the above
command to your powershell profile.`,
}

// NewCommand creates the completion command with one subcommand per
// supported shell. It replaces Cobra's generated completion command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for seedmap.

The script is written to stdout. Run "seedmap completion <shell> --help"
for the steps to load it in your shell.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	for _, shell := range constants.Shells {
		cmd.AddCommand(newShellCommand(shell))
	}
	return cmd
}

func newShellCommand(shell string) *cobra.Command {
	gen := generators[shell]
	return &cobra.Command{
		Use:                   shell,
		Short:                 "Generate " + shell + " completion script",
		Long:                  "Generate the autocompletion script for " + shell + ".\n\n" + setup[shell],
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
