package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Default values
	DefaultLogLevel        = "info"
	DefaultMaxFileSize     = 100 * 1024 * 1024 // 100MB
	DefaultAdjacencyWindow = 12.0

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Config holds all configuration for the bid extractor
type Config struct {
	// Extraction configuration
	InputDirectory  string
	OutputDirectory string
	MaxFileSize     int64 // Maximum PDF file size in bytes
	AdjacencyWindow float64

	// Application configuration
	Version  string
	AppName  string
	LogLevel string
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		// Fallback to current directory if working directory cannot be determined
		currentDir = "."
	}

	return &Config{
		InputDirectory:  currentDir,
		OutputDirectory: currentDir,
		MaxFileSize:     DefaultMaxFileSize,
		AdjacencyWindow: DefaultAdjacencyWindow,
		Version:         "1.0.0",
		AppName:         "gem-bid-extractor",
		LogLevel:        DefaultLogLevel,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	// Check for version flag before parsing
	if err := checkVersionFlag(); err != nil {
		return nil, err
	}

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand paths if needed
	if cfg.InputDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.InputDirectory); err == nil {
			cfg.InputDirectory = expandedPath
		}
	}
	if cfg.OutputDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.OutputDirectory); err == nil {
			cfg.OutputDirectory = expandedPath
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	// Set environment variable prefix
	viper.SetEnvPrefix("GEM_BID")
	viper.AutomaticEnv()

	viper.SetDefault("input", cfg.InputDirectory)
	viper.SetDefault("output", cfg.OutputDirectory)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
	viper.SetDefault("linkwindow", cfg.AdjacencyWindow)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("input", cfg.InputDirectory, "Directory containing GeM bid PDF files")
	pflag.String("output", cfg.OutputDirectory, "Directory the XLSX report is written to")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
	pflag.Float64("linkwindow", cfg.AdjacencyWindow, "Vertical pixel window for resolving adjacent link annotations")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("input", pflag.Lookup("input"))
	_ = viper.BindPFlag("output", pflag.Lookup("output"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
	_ = viper.BindPFlag("linkwindow", pflag.Lookup("linkwindow"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nGeM Bid Extractor - extracts bid data from GeM tender PDFs into an XLSX report\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                   # current directory in and out\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --input=/path/to/pdfs             # custom input directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --input=./pdfs --output=./reports # custom input and output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  GEM_BID_INPUT       Input PDF directory\n")
		fmt.Fprintf(os.Stderr, "  GEM_BID_OUTPUT      Report output directory\n")
		fmt.Fprintf(os.Stderr, "  GEM_BID_LOGLEVEL    Log level\n")
		fmt.Fprintf(os.Stderr, "  GEM_BID_MAXFILESIZE Maximum file size\n")
		fmt.Fprintf(os.Stderr, "  GEM_BID_LINKWINDOW  Link adjacency window\n")
	}
}

// checkVersionFlag checks if version flag was requested
func checkVersionFlag() error {
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			return fmt.Errorf("version requested")
		}
	}
	return nil
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.InputDirectory = viper.GetString("input")
	cfg.OutputDirectory = viper.GetString("output")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
	cfg.AdjacencyWindow = viper.GetFloat64("linkwindow")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate input directory
	if c.InputDirectory == "" {
		return errors.New("input directory cannot be empty")
	}
	if info, err := os.Stat(c.InputDirectory); err != nil {
		return fmt.Errorf("cannot access input directory %s: %w", c.InputDirectory, err)
	} else if !info.IsDir() {
		return fmt.Errorf("input path %s is not a directory", c.InputDirectory)
	}

	// Validate output directory, create if it doesn't exist
	if c.OutputDirectory == "" {
		return errors.New("output directory cannot be empty")
	}
	if _, err := os.Stat(c.OutputDirectory); os.IsNotExist(err) {
		if err := os.MkdirAll(c.OutputDirectory, DefaultDirPerm); err != nil {
			return fmt.Errorf("cannot create output directory %s: %w", c.OutputDirectory, err)
		}
	} else if err != nil {
		return fmt.Errorf("cannot access output directory %s: %w", c.OutputDirectory, err)
	}

	// Validate max file size
	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	// Validate adjacency window
	if c.AdjacencyWindow <= 0 {
		return errors.New("link adjacency window must be positive")
	}

	// Validate log level
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

// SlogLevel maps the configured log level onto slog's leveling
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{InputDirectory: %s, OutputDirectory: %s, LogLevel: %s, MaxFileSize: %d, AdjacencyWindow: %.1f}",
		c.InputDirectory, c.OutputDirectory, c.LogLevel, c.MaxFileSize, c.AdjacencyWindow)
}
