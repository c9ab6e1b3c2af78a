package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Search handles PDF discovery in a directory tree.
type Search struct {
	maxFileSize int64
	validator   *Validator
}

// NewSearch creates a new PDF search handler with the specified constraints.
func NewSearch(maxFileSize int64) *Search {
	return &Search{
		maxFileSize: maxFileSize,
		validator:   NewValidator(maxFileSize),
	}
}

// FindPDFsInDirectory finds all PDF files under the given directory,
// sorted by path for deterministic batch order.
func (s *Search) FindPDFsInDirectory(directory string) ([]FileInfo, error) {
	if directory == "" {
		return nil, fmt.Errorf("directory cannot be empty")
	}

	if _, err := os.Stat(directory); os.IsNotExist(err) {
		return nil, fmt.Errorf("directory does not exist: %s", directory)
	}

	absDirectory, err := filepath.Abs(directory)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory path: %w", err)
	}

	var pdfFiles []FileInfo
	err = filepath.Walk(absDirectory, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil //nolint:nilerr // continue walking on per-file errors
		}

		if info.IsDir() || !strings.HasSuffix(strings.ToLower(info.Name()), ".pdf") {
			return nil
		}

		if info.Size() == 0 || info.Size() > s.maxFileSize {
			return nil
		}

		pdfFiles = append(pdfFiles, FileInfo{
			Path:         path,
			Name:         info.Name(),
			Size:         info.Size(),
			ModifiedTime: info.ModTime().Format(time.RFC3339),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	sort.Slice(pdfFiles, func(i, j int) bool {
		return pdfFiles[i].Path < pdfFiles[j].Path
	})

	return pdfFiles, nil
}

// CountPDFsInDirectory counts the PDF files under a directory.
func (s *Search) CountPDFsInDirectory(directory string) (int, error) {
	files, err := s.FindPDFsInDirectory(directory)
	if err != nil {
		return 0, err
	}
	return len(files), nil
}
