package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/grantlint/grantlint/internal/profile"
)

const (
	// Output format constants
	FormatText = "text"
	FormatJSON = "json"

	// Default values
	DefaultProfile     = "nih-application"
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB
)

// Config holds all configuration for the grantlint CLI.
type Config struct {
	// Validation configuration
	Profile       string // built-in profile name or path to a YAML profile
	IncludePasses bool

	// Output configuration
	Format string

	// Application configuration
	Version     string
	LogLevel    string
	MaxFileSize int64 // Maximum PDF file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Profile:     DefaultProfile,
		Format:      FormatText,
		Version:     "1.0.0",
		LogLevel:    DefaultLogLevel,
		MaxFileSize: DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("GRANTLINT")
	viper.AutomaticEnv()

	viper.SetDefault("profile", cfg.Profile)
	viper.SetDefault("format", cfg.Format)
	viper.SetDefault("passes", cfg.IncludePasses)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.String("profile", cfg.Profile, "Built-in profile name or path to a YAML profile file")
	pflag.String("format", cfg.Format, "Report output format: 'text' or 'json'")
	pflag.Bool("passes", cfg.IncludePasses, "Include explicit pass findings in the report")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	_ = viper.BindPFlag("profile", pflag.Lookup("profile"))
	_ = viper.BindPFlag("format", pflag.Lookup("format"))
	_ = viper.BindPFlag("passes", pflag.Lookup("passes"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message.
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\ngrantlint - compliance validation for grant application PDFs\n\n")
		fmt.Fprintf(os.Stderr, "  %s [flags] <application.pdf>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nBuilt-in profiles:\n")
		for _, name := range profile.BuiltinNames() {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s application.pdf                          # default profile, text output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --profile=nih-dmsp dmsp.pdf              # built-in DMSP profile\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --profile=rules.yaml --format=json x.pdf # custom profile, JSON output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  GRANTLINT_PROFILE      Validation profile\n")
		fmt.Fprintf(os.Stderr, "  GRANTLINT_FORMAT       Output format\n")
		fmt.Fprintf(os.Stderr, "  GRANTLINT_LOGLEVEL     Log level\n")
		fmt.Fprintf(os.Stderr, "  GRANTLINT_MAXFILESIZE  Maximum file size\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.Profile = viper.GetString("profile")
	cfg.Format = viper.GetString("format")
	cfg.IncludePasses = viper.GetBool("passes")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Profile == "" {
		return errors.New("profile cannot be empty")
	}

	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("invalid output format: %s (must be 'text' or 'json')", c.Format)
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Profile: %s, Format: %s, LogLevel: %s, MaxFileSize: %d}",
		c.Profile, c.Format, c.LogLevel, c.MaxFileSize)
}
