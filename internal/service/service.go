package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/gembid/gem-bid-extractor/internal/bids"
	"github.com/gembid/gem-bid-extractor/internal/config"
	"github.com/gembid/gem-bid-extractor/internal/extract"
	"github.com/gembid/gem-bid-extractor/internal/pdf"
	"github.com/gembid/gem-bid-extractor/internal/report"
)

// reportFilePerm is the mode the XLSX artifact is written with.
const reportFilePerm = 0o640

// FileFailure records one document that could not be processed. Message is
// the user-facing explanation; Err keeps the underlying cause.
type FileFailure struct {
	Path    string
	Err     error
	Message string
}

// Batch is the accumulated outcome of one extraction run.
type Batch struct {
	RunID     string
	StartedAt time.Time

	Records []bids.BidRecord
	// Validations is index-aligned with Records.
	Validations []bids.ValidationResult
	Cohort      bids.Cohort
	Failures    []FileFailure

	FilesProcessed int
}

// Service orchestrates the extraction pipeline: directory scan, structural
// validation, text and link decoding, field extraction, categorization and
// report generation. Documents are processed sequentially; one failing
// document never aborts the batch.
type Service struct {
	reader    *pdf.Reader
	validator *pdf.Validator
	search    *pdf.Search
	assembler *extract.Assembler
	logger    *slog.Logger
}

// NewService wires the pipeline from configuration.
func NewService(cfg *config.Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		reader:    pdf.NewReader(cfg.MaxFileSize),
		validator: pdf.NewValidator(cfg.MaxFileSize),
		search:    pdf.NewSearch(cfg.MaxFileSize),
		assembler: extract.NewAssemblerWithWindow(cfg.AdjacencyWindow),
		logger:    logger,
	}
}

// ProcessDirectory scans a directory for PDF files and processes them all.
func (s *Service) ProcessDirectory(ctx context.Context, dir string) (*Batch, error) {
	files, err := s.search.FindPDFsInDirectory(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}

	s.logger.Info("batch.scan", "dir", dir, "files", len(paths))
	return s.ProcessFiles(ctx, paths)
}

// ProcessFiles extracts a bid record from every given PDF. Per-document
// failures are recorded on the batch and processing continues; the context
// is checked between documents, so cancellation stops the batch before the
// next file rather than mid-document.
func (s *Service) ProcessFiles(ctx context.Context, paths []string) (*Batch, error) {
	batch := &Batch{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return batch, fmt.Errorf("batch %s canceled: %w", batch.RunID, err)
		}

		batch.FilesProcessed++

		rec, validation, err := s.processOne(path)
		if err != nil {
			message := pdf.UserMessage(err)
			s.logger.Warn("extract.fail",
				"run_id", batch.RunID,
				"file", path,
				"err", err,
				"user_message", message,
			)
			batch.Failures = append(batch.Failures, FileFailure{Path: path, Err: err, Message: message})
			continue
		}

		batch.Records = append(batch.Records, *rec)
		batch.Validations = append(batch.Validations, validation)
		s.logger.Info("extract.ok",
			"run_id", batch.RunID,
			"file", path,
			"bid_number", rec.BidNumber.Value,
			"valid", validation.Valid,
			"warnings", len(validation.Warnings),
		)
	}

	batch.Cohort = bids.Categorize(batch.Records, time.Now())

	s.logger.Info("batch.done",
		"run_id", batch.RunID,
		"processed", batch.FilesProcessed,
		"extracted", len(batch.Records),
		"failed", len(batch.Failures),
		"active", len(batch.Cohort.Active),
		"expired", len(batch.Cohort.Expired),
		"elapsed_ms", time.Since(batch.StartedAt).Milliseconds(),
	)
	return batch, nil
}

// processOne runs the full pipeline for a single document.
func (s *Service) processOne(path string) (*bids.BidRecord, bids.ValidationResult, error) {
	vres, err := s.validator.ValidateFile(path)
	if err != nil {
		return nil, bids.ValidationResult{}, fmt.Errorf("validate %s: %w", path, err)
	}
	if !vres.Valid {
		return nil, bids.ValidationResult{}, fmt.Errorf("%w: %s", pdf.ErrNotPDF, vres.Message)
	}

	read, err := s.reader.Read(path)
	if err != nil {
		return nil, bids.ValidationResult{}, fmt.Errorf("read %s: %w", path, err)
	}
	if read.PageErrors > 0 {
		s.logger.Debug("read.partial", "file", path, "page_errors", read.PageErrors)
	}
	if !read.Document.HasGeMMarkers() {
		s.logger.Debug("read.unmarked", "file", path)
	}

	rec, err := s.assembler.Assemble(read.Document, filepath.Base(path))
	if err != nil {
		return nil, bids.ValidationResult{}, fmt.Errorf("assemble %s: %w", path, err)
	}

	return rec, bids.Validate(*rec), nil
}

// WriteReport builds the XLSX report for a batch and writes it to outDir,
// returning the artifact path. A batch with no extracted records is an
// error.
func (s *Service) WriteReport(batch *Batch, outDir string, now time.Time) (string, error) {
	wb, err := report.Build(batch.Records, batch.Cohort, batch.FilesProcessed, now)
	if err != nil {
		return "", fmt.Errorf("build report: %w", err)
	}

	raw, err := report.Encode(wb)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	path := filepath.Join(outDir, report.Filename(now))
	if err := os.WriteFile(path, raw, reportFilePerm); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	s.logger.Info("report.ok",
		"run_id", batch.RunID,
		"path", path,
		"bytes", len(raw),
		"rows", len(batch.Records),
	)
	return path, nil
}
