// Package serve provides the command that runs the seedmap web server.
package serve

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/seedmap/cmd/application"
	"github.com/agentstation/seedmap/internal/cmd/emoji"
	"github.com/agentstation/seedmap/internal/server"
	"github.com/agentstation/seedmap/pkg/constants"
)

// NewCommand creates the serve command. defaults supplies the server
// settings from the configuration; flags the user sets override them.
func NewCommand(app application.Application, defaults func() server.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"server"},
		GroupID: "core",
		Short:   "Start the web directory and JSON API",
		Long: `Start the seedmap web server.

Features:
  - Startup grid with sector filter, search, sorting and incremental pages
  - Detail page for every startup (/startup?id=<name>)
  - Light and dark theme remembered in a cookie
  - Best-effort favicon proxy for startup cards
  - JSON API under the path prefix (/startups, /sectors, /stats)
  - OpenAPI 3.0 documentation (/api/v1/openapi.json)
  - Rate limiting, optional API key authentication and CORS
  - Graceful shutdown with connection draining`,
		Example: `  # Start on default port 8080
  seedmap serve

  # Serve the sample dataset compiled into the binary
  seedmap serve --dataset embedded

  # Start on custom port with API authentication
  SEEDMAP_API_KEY=secret seedmap serve --port 3000 --auth

  # Dark theme by default and restore filters from the URL
  seedmap serve --theme dark --restore-url-state`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, defaults())
		},
	}

	d := defaults()

	// Server configuration flags
	cmd.Flags().Int("port", d.Port, "Server port")
	cmd.Flags().String("host", d.Host, "Bind address")
	cmd.Flags().String("prefix", d.PathPrefix, "API path prefix")

	// CORS flags
	cmd.Flags().Bool("cors", d.CORSEnabled, "Enable CORS for all origins")
	cmd.Flags().StringSlice("cors-origins", d.CORSOrigins, "Allowed CORS origins (comma-separated)")

	// Authentication flags
	cmd.Flags().Bool("auth", d.AuthEnabled, "Require an API key on the JSON API")
	cmd.Flags().String("auth-header", d.AuthHeader, "Authentication header name")

	// Performance flags
	cmd.Flags().Int("rate-limit", d.RateLimit, "Requests per minute per IP (0 to disable)")

	// Timeout flags
	cmd.Flags().Duration("read-timeout", d.ReadTimeout, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", d.WriteTimeout, "HTTP write timeout")
	cmd.Flags().Duration("idle-timeout", d.IdleTimeout, "HTTP idle timeout")

	// Page flags
	cmd.Flags().String("theme", d.Theme, "Theme used without a cookie or client hint: light or dark")
	cmd.Flags().Bool("secure-cookies", d.SecureCookies, "Mark the theme cookie Secure")
	cmd.Flags().Bool("restore-url-state", d.RestoreURLState, "Restore filter, search and sort from the page URL")

	return cmd
}

// run starts the server and blocks until the command context is canceled.
func run(cmd *cobra.Command, app application.Application, defaults server.Config) error {
	cfg := parseConfig(cmd, defaults)
	logger := app.Logger()

	logger.Info().
		Int("port", cfg.Port).
		Str("host", cfg.Host).
		Str("prefix", cfg.PathPrefix).
		Bool("cors", cfg.CORSEnabled).
		Bool("auth", cfg.AuthEnabled).
		Int("rate_limit", cfg.RateLimit).
		Str("theme", cfg.Theme).
		Msg("Starting server")

	srv, err := server.New(app, cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s Serving seedmap on http://%s\n", emoji.Launch, cfg.Addr())
	_, _ = fmt.Fprintln(out, "   Press Ctrl+C to stop")

	if err := srv.Run(cmd.Context(), constants.ShutdownTimeout); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "%s Server stopped\n", emoji.Stop)
	return nil
}

// parseConfig overlays the flags the user set on defaults.
func parseConfig(cmd *cobra.Command, cfg server.Config) server.Config {
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = mustGetInt(cmd, "port")
	}
	if flags.Changed("host") {
		cfg.Host = mustGetString(cmd, "host")
	}
	if flags.Changed("prefix") {
		cfg.PathPrefix = mustGetString(cmd, "prefix")
	}
	if flags.Changed("cors") {
		cfg.CORSEnabled = mustGetBool(cmd, "cors")
	}
	if flags.Changed("cors-origins") {
		cfg.CORSOrigins = mustGetStringSlice(cmd, "cors-origins")
		cfg.CORSEnabled = cfg.CORSEnabled || len(cfg.CORSOrigins) > 0
	}
	if flags.Changed("auth") {
		cfg.AuthEnabled = mustGetBool(cmd, "auth")
	}
	if flags.Changed("auth-header") {
		cfg.AuthHeader = mustGetString(cmd, "auth-header")
	}
	if flags.Changed("rate-limit") {
		cfg.RateLimit = mustGetInt(cmd, "rate-limit")
	}
	if flags.Changed("read-timeout") {
		cfg.ReadTimeout = mustGetDuration(cmd, "read-timeout")
	}
	if flags.Changed("write-timeout") {
		cfg.WriteTimeout = mustGetDuration(cmd, "write-timeout")
	}
	if flags.Changed("idle-timeout") {
		cfg.IdleTimeout = mustGetDuration(cmd, "idle-timeout")
	}
	if flags.Changed("theme") {
		cfg.Theme = mustGetString(cmd, "theme")
	}
	if flags.Changed("secure-cookies") {
		cfg.SecureCookies = mustGetBool(cmd, "secure-cookies")
	}
	if flags.Changed("restore-url-state") {
		cfg.RestoreURLState = mustGetBool(cmd, "restore-url-state")
	}
	return cfg
}

// mustGetInt retrieves an int flag value or panics if the flag doesn't exist.
func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetBool retrieves a bool flag value or panics if the flag doesn't exist.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetStringSlice retrieves a string slice flag value or panics if the flag doesn't exist.
func mustGetStringSlice(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetDuration retrieves a duration flag value or panics if the flag doesn't exist.
func mustGetDuration(cmd *cobra.Command, name string) time.Duration {
	val, err := cmd.Flags().GetDuration(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
