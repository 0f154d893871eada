package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/seedmap/cmd/seedmap/cmd/completion"
	"github.com/agentstation/seedmap/cmd/seedmap/cmd/export"
	"github.com/agentstation/seedmap/cmd/seedmap/cmd/list"
	"github.com/agentstation/seedmap/cmd/seedmap/cmd/sectors"
	"github.com/agentstation/seedmap/cmd/seedmap/cmd/serve"
	"github.com/agentstation/seedmap/cmd/seedmap/cmd/show"
	"github.com/agentstation/seedmap/cmd/seedmap/cmd/validate"
	"github.com/agentstation/seedmap/internal/cmd/output"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(show.NewCommand(a))
	rootCmd.AddCommand(sectors.NewCommand(a))
	rootCmd.AddCommand(serve.NewCommand(a, a.ServerConfig))

	// Management commands
	rootCmd.AddCommand(validate.NewCommand(a))
	rootCmd.AddCommand(export.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.NewVersionCommand())
	rootCmd.AddCommand(completion.NewCommand())
}

// versionInfo is the structured form of the version command's output.
type versionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	BuiltBy string `json:"built_by" yaml:"built_by"`
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := versionInfo{
				Version: a.version,
				Commit:  a.commit,
				Date:    a.date,
				BuiltBy: a.builtBy,
			}

			// Plain text unless a structured format was asked for
			if a.config.Format == "" {
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "seedmap %s\n", info.Version)
				if a.config.Verbose {
					_, _ = fmt.Fprintf(w, "  commit:   %s\n", info.Commit)
					_, _ = fmt.Fprintf(w, "  built:    %s\n", info.Date)
					_, _ = fmt.Fprintf(w, "  built by: %s\n", info.BuiltBy)
				}
				return nil
			}
			return output.FormatAny(cmd.OutOrStdout(), output.Format(a.config.Format), info)
		},
	}
}
