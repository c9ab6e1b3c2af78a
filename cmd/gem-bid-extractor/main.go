package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gembid/gem-bid-extractor/internal/config"
	"github.com/gembid/gem-bid-extractor/internal/service"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// newLogger builds the structured logger the pipeline reports through.
func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	// Load configuration from flags first
	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	logger := newLogger(cfg)
	if cfg.IsDebug() {
		logger.Debug("starting", "config", cfg.String())
	}

	svc := service.NewService(cfg, logger)

	// Cancel the batch between documents on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	batch, err := svc.ProcessDirectory(ctx, cfg.InputDirectory)
	if err != nil {
		log.Fatalf("Extraction failed: %v", err)
	}

	for _, failure := range batch.Failures {
		fmt.Fprintf(os.Stderr, "skipped %s: %s\n", failure.Path, failure.Message)
	}

	if len(batch.Records) == 0 {
		log.Fatalf("No bid data extracted from %d file(s) in %s", batch.FilesProcessed, cfg.InputDirectory)
	}

	reportPath, err := svc.WriteReport(batch, cfg.OutputDirectory, time.Now())
	if err != nil {
		log.Fatalf("Report generation failed: %v", err)
	}

	fmt.Printf("Processed %d file(s): %d extracted, %d failed, %d active, %d expired\n",
		batch.FilesProcessed,
		len(batch.Records),
		len(batch.Failures),
		len(batch.Cohort.Active),
		len(batch.Cohort.Expired),
	)
	fmt.Printf("Report written to %s\n", reportPath)
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("GeM Bid Extractor\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
