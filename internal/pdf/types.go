package pdf

// FileInfo represents information about a PDF file found on disk.
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// LinkAnnotation is one hyperlink annotation discovered on a page, together
// with the text rows found near its rectangle. URL may be empty when the
// annotation's action carries no URI; callers can try to resolve a URL from
// an adjacent annotation on the same page.
type LinkAnnotation struct {
	URL     string  `json:"url"`
	Context string  `json:"context"`
	Page    int     `json:"page"`
	Y       float64 `json:"y"`
}

// Document is the extraction view of one tender PDF: concatenated page
// text, a line-split view of it, and the link annotations in discovery
// order. It is built once per file and never mutated.
type Document struct {
	Path      string
	FullText  string
	Lines     []string
	Links     []LinkAnnotation
	PageCount int
}

// ReadResult wraps a Document with per-file read diagnostics.
type ReadResult struct {
	Document *Document
	Size     int64
	// PageErrors counts pages whose text could not be decoded; extraction
	// continues with the remaining pages.
	PageErrors int
}

// ValidateFileResult represents the result of a PDF validation operation.
type ValidateFileResult struct {
	Valid   bool   `json:"valid"`
	Path    string `json:"path"`
	Pages   int    `json:"pages"`
	Message string `json:"message,omitempty"`
}
