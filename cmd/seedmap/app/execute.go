package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/seedmap/internal/cmd/constants"
	"github.com/agentstation/seedmap/internal/cmd/output"
	"github.com/agentstation/seedmap/pkg/errors"
)

// Execute runs the seedmap CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "seedmap",
		Short:   "Startup directory CLI and web server",
		Version: a.version,
		Long: `Seedmap is a directory of early-stage startups. It loads a JSON
dataset of companies, then lets you filter them by sector, search them by
name, sort them by name or funding and page through the results.

The same dataset can be browsed from the terminal with list and show, or
served as a web grid with detail pages and a JSON API with serve.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands:",
	})

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is ./.seedmap.yaml or $HOME/.seedmap.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("format", "o", "", "output format: table, wide, json, yaml, markdown")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	flags.String("dataset", a.config.Dataset, `dataset path, http(s) URL, or "embedded"`)
	flags.String("locale", a.config.Locale, "collation locale for sorting by name")

	// --output is kept as a deprecated alias for --format
	flags.String("output", "", "")
	_ = flags.MarkDeprecated("output", "use --format instead")

	_ = rootCmd.RegisterFlagCompletionFunc("format",
		cobra.FixedCompletions(constants.Formats, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.SetVersionTemplate("seedmap {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs. It reloads the config
// file named by --config, applies the flags the user set and rebuilds the
// logger and components from the result.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if path := mustGetString(cmd, "config"); path != "" {
		config, err := LoadConfigFile(path)
		if err != nil {
			return errors.WrapResource("load", "config", path, err)
		}
		a.config = config
	}

	a.config.ApplyFlags(cmd.Flags())
	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return errors.NewValidationError("format", a.config.Format, err.Error())
	}

	logger := NewLogger(a.config)
	a.logger = &logger
	a.reset()

	a.logger.Debug().
		Str("dataset", a.config.Dataset).
		Str("locale", a.config.Locale).
		Str("config", a.config.ConfigFile).
		Msg("Configuration loaded")

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
