package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Validator performs structural validation of PDF files before the reader
// attempts text extraction.
type Validator struct {
	maxFileSize int64
	conf        *model.Configuration
}

// NewValidator creates a new PDF validator with the specified constraints.
func NewValidator(maxFileSize int64) *Validator {
	conf := model.NewDefaultConfiguration()
	// Tender PDFs coming out of the GeM portal are frequently produced by
	// non-conforming generators; strict validation rejects too many of them.
	conf.ValidationMode = model.ValidationRelaxed

	return &Validator{
		maxFileSize: maxFileSize,
		conf:        conf,
	}
}

// ValidateFile performs comprehensive validation on a PDF file. Validation
// problems are reported in the result, not as an error.
func (v *Validator) ValidateFile(path string) (*ValidateFileResult, error) {
	result := &ValidateFileResult{
		Path:  path,
		Valid: false,
	}

	if err := v.validatePDFFile(path); err != nil {
		result.Message = err.Error()
		return result, nil //nolint:nilerr // validation outcome, not a processing error
	}

	pages, err := api.PageCountFile(path)
	if err != nil {
		result.Message = fmt.Sprintf("cannot determine page count: %v", err)
		return result, nil //nolint:nilerr
	}

	result.Valid = true
	result.Pages = pages
	return result, nil
}

// validatePDFFile performs detailed validation on a PDF file.
func (v *Validator) validatePDFFile(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", filePath)
	}
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}

	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	if !strings.HasSuffix(strings.ToLower(filePath), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", filePath)
	}

	if fileInfo.Size() == 0 {
		return fmt.Errorf("file is empty: %s", filePath)
	}

	if fileInfo.Size() > v.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), v.maxFileSize)
	}

	if err := api.ValidateFile(filePath, v.conf); err != nil {
		return fmt.Errorf("%w: %v", ErrNotPDF, err)
	}

	return nil
}

// IsValidPDF performs a quick check to see if a file is a valid PDF.
func (v *Validator) IsValidPDF(filePath string) bool {
	return v.validatePDFFile(filePath) == nil
}
