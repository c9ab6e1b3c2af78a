package config

import (
	"log/slog"
	"os"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test default values
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.MaxFileSize != 100*1024*1024 {
		t.Errorf("Expected default max file size to be 100MB, got %d", cfg.MaxFileSize)
	}

	if cfg.AdjacencyWindow != 12.0 {
		t.Errorf("Expected default adjacency window to be 12.0, got %f", cfg.AdjacencyWindow)
	}

	if cfg.AppName != "gem-bid-extractor" {
		t.Errorf("Expected default app name to be 'gem-bid-extractor', got '%s'", cfg.AppName)
	}

	if cfg.Version != "1.0.0" {
		t.Errorf("Expected default version to be '1.0.0', got '%s'", cfg.Version)
	}

	// Test that both directories default to the current working directory
	currentDir, _ := os.Getwd()
	if cfg.InputDirectory != currentDir {
		t.Errorf("Expected default input directory to be '%s', got '%s'", currentDir, cfg.InputDirectory)
	}
	if cfg.OutputDirectory != currentDir {
		t.Errorf("Expected default output directory to be '%s', got '%s'", currentDir, cfg.OutputDirectory)
	}
}

func TestConfigValidate(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	valid := func() *Config {
		return &Config{
			InputDirectory:  inputDir,
			OutputDirectory: outputDir,
			MaxFileSize:     1024,
			AdjacencyWindow: 12.0,
			LogLevel:        "info",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty input directory",
			mutate:  func(c *Config) { c.InputDirectory = "" },
			wantErr: true,
		},
		{
			name:    "missing input directory",
			mutate:  func(c *Config) { c.InputDirectory = "/nonexistent/gem/pdfs" },
			wantErr: true,
		},
		{
			name:    "empty output directory",
			mutate:  func(c *Config) { c.OutputDirectory = "" },
			wantErr: true,
		},
		{
			name:    "zero max file size",
			mutate:  func(c *Config) { c.MaxFileSize = 0 },
			wantErr: true,
		},
		{
			name:    "negative adjacency window",
			mutate:  func(c *Config) { c.AdjacencyWindow = -1 },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCreatesMissingOutputDirectory(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir() + "/reports/2025"

	cfg := &Config{
		InputDirectory:  inputDir,
		OutputDirectory: outputDir,
		MaxFileSize:     1024,
		AdjacencyWindow: 12.0,
		LogLevel:        "info",
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	info, err := os.Stat(outputDir)
	if err != nil {
		t.Fatalf("Expected output directory to be created: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("Expected %s to be a directory", outputDir)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel() for %q = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestConfigString(t *testing.T) {
	cfg := &Config{
		InputDirectory:  "/pdfs",
		OutputDirectory: "/reports",
		LogLevel:        "info",
		MaxFileSize:     2048,
		AdjacencyWindow: 12.0,
	}

	want := "Config{InputDirectory: /pdfs, OutputDirectory: /reports, LogLevel: info, MaxFileSize: 2048, AdjacencyWindow: 12.0}"
	if got := cfg.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
