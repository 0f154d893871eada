package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentstation/seedmap/pkg/constants"
	"github.com/agentstation/seedmap/pkg/errors"
)

// EnvPrefix prefixes every environment variable read through viper.
const EnvPrefix = "SEEDMAP"

// EmbeddedDataset selects the sample dataset compiled into the binary.
const EmbeddedDataset = "embedded"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Dataset configuration
	Dataset      string // path, http(s) URL, or "embedded"
	DatasetToken string // credentials for a remote dataset
	Locale       string // collation locale for name sorting

	Favicon FaviconConfig
	Server  ServerConfig

	// Logging configuration
	LogLevel    string // --log-level
	EnvLogLevel string // LOG_LEVEL
	LogFormat   string
	LogOutput   string
}

// FaviconConfig configures the icon resolver.
type FaviconConfig struct {
	Endpoint    string
	Timeout     time.Duration
	Concurrency int
}

// ServerConfig holds the defaults of the serve command.
type ServerConfig struct {
	Host            string
	Port            int
	PathPrefix      string
	RateLimit       int
	CORS            bool
	CORSOrigins     []string
	Auth            bool
	AuthHeader      string
	APIKey          string
	Theme           string
	SecureCookies   bool
	RestoreURLState bool
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by ApplyFlags)
// 2. Environment variables (SEEDMAP_*)
// 3. .env files
// 4. Config file (./.seedmap.yaml or ~/.seedmap.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return LoadConfigFile(os.Getenv(EnvPrefix + "_CONFIG"))
}

// LoadConfigFile is LoadConfig with an explicit config file. An empty
// path searches the standard locations, and a missing file there is not
// an error.
func LoadConfigFile(path string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := bindEnv(v); err != nil {
		return nil, errors.NewConfigError("env", "binding environment variables", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("file", "reading "+path, err)
		}
	} else {
		v.SetConfigType("yaml")
		v.SetConfigName(".seedmap")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("file", "reading config", err)
			}
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		Dataset:      v.GetString("dataset"),
		DatasetToken: v.GetString("dataset_token"),
		Locale:       v.GetString("locale"),

		Favicon: FaviconConfig{
			Endpoint:    v.GetString("favicon.endpoint"),
			Timeout:     v.GetDuration("favicon.timeout"),
			Concurrency: v.GetInt("favicon.concurrency"),
		},

		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			Port:            v.GetInt("server.port"),
			PathPrefix:      v.GetString("server.path_prefix"),
			RateLimit:       v.GetInt("server.rate_limit"),
			CORS:            v.GetBool("server.cors"),
			CORSOrigins:     v.GetStringSlice("server.cors_origins"),
			Auth:            v.GetBool("server.auth"),
			AuthHeader:      v.GetString("server.auth_header"),
			APIKey:          v.GetString("server.api_key"),
			Theme:           v.GetString("theme"),
			SecureCookies:   v.GetBool("server.secure_cookies"),
			RestoreURLState: v.GetBool("restore_url_state"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			IdleTimeout:     v.GetDuration("server.idle_timeout"),
		},

		// Logging configuration
		EnvLogLevel: os.Getenv("LOG_LEVEL"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings no component can work with.
func (c *Config) Validate() error {
	switch {
	case c.Favicon.Timeout <= 0:
		return errors.NewConfigError("favicon", "timeout must be positive", nil)
	case c.Favicon.Concurrency <= 0:
		return errors.NewConfigError("favicon", "concurrency must be positive", nil)
	case c.Server.Port < 0 || c.Server.Port > 65535:
		return errors.NewConfigError("server", "port out of range", nil)
	case c.Server.RateLimit < 0:
		return errors.NewConfigError("server", "rate limit cannot be negative", nil)
	}
	return nil
}

// ApplyFlags copies every flag the user actually set over the loaded
// values, so flags win over env vars and the config file.
func (c *Config) ApplyFlags(flags *pflag.FlagSet) {
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "verbose":
			c.Verbose, _ = flags.GetBool(f.Name)
		case "quiet":
			c.Quiet, _ = flags.GetBool(f.Name)
		case "no-color":
			c.NoColor, _ = flags.GetBool(f.Name)
		case "format", "output":
			c.Format = f.Value.String()
		case "log-level":
			c.LogLevel = f.Value.String()
		case "dataset":
			c.Dataset = f.Value.String()
		case "locale":
			c.Locale = f.Value.String()
		}
	})
}

// IsEmbedded reports whether the embedded sample dataset is selected.
func (c *Config) IsEmbedded() bool {
	return strings.EqualFold(c.Dataset, EmbeddedDataset)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dataset", constants.DefaultDatasetPath)
	v.SetDefault("locale", constants.DefaultLocale)
	v.SetDefault("theme", "light")
	v.SetDefault("restore_url_state", false)

	v.SetDefault("favicon.endpoint", constants.DefaultFaviconEndpoint)
	v.SetDefault("favicon.timeout", constants.FaviconTimeout)
	v.SetDefault("favicon.concurrency", constants.MaxConcurrentFavicons)

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.path_prefix", "/api/v1")
	v.SetDefault("server.rate_limit", constants.DefaultRateLimit)
	v.SetDefault("server.cors", false)
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("server.auth", false)
	v.SetDefault("server.auth_header", "X-API-Key")
	v.SetDefault("server.secure_cookies", false)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 120*time.Second)
}

// bindEnv binds keys whose variable differs from the automatic name.
func bindEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"server.api_key": {EnvPrefix + "_SERVER_API_KEY", EnvPrefix + "_API_KEY"},
		"server.host":    {EnvPrefix + "_SERVER_HOST", "HTTP_HOST"},
		"server.port":    {EnvPrefix + "_SERVER_PORT", "HTTP_PORT"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return err
		}
	}
	return nil
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// .env.local overrides .env
	envFiles := []string{
		".env.local",
		".env",
	}

	// godotenv never overrides variables that are already set, so the
	// more specific file is loaded first
	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
