package pdf

import "errors"

// Document-level fatal errors. Field-level extraction failures are not
// errors at all; they resolve to sentinel values downstream.
var (
	// ErrInsufficientText marks a document whose extractable text is too
	// short to carry bid data, typically a scanned or image-only PDF.
	ErrInsufficientText = errors.New("insufficient extractable text content")

	// ErrNotPDF marks a file that is not a readable PDF document.
	ErrNotPDF = errors.New("file is not a readable PDF")

	// ErrNoText marks a PDF from which no text at all could be decoded.
	ErrNoText = errors.New("no text content could be extracted")
)

// minExtractableText is the minimum concatenated text length for a document
// to be considered extractable at all.
const minExtractableText = 100

// UserMessage maps a document-level error to the message shown to the end
// user. Scanned documents, unreadable files and generic failures get
// distinct messages so the user knows what to fix.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientText), errors.Is(err, ErrNoText):
		return "This PDF appears to be a scanned document or image. Please use a PDF with extractable text."
	case errors.Is(err, ErrNotPDF):
		return "This file could not be opened as a PDF. Please check that it is a valid, uncorrupted PDF document."
	default:
		return "PDF processing failed. Please ensure the file contains extractable text and is not corrupted."
	}
}
