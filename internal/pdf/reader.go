package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DefaultContextWindow is the vertical distance, in PDF points, within
// which text rows are considered part of a link annotation's context.
const DefaultContextWindow = 10.0

// Reader extracts the text, lines and link annotations of a tender PDF.
type Reader struct {
	maxFileSize   int64
	maxTextSize   int
	contextWindow float64
}

// NewReader creates a new PDF reader with the specified constraints.
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize:   maxFileSize,
		maxTextSize:   10 * 1024 * 1024, // 10MB text limit
		contextWindow: DefaultContextWindow,
	}
}

// Read decodes one PDF file into a Document. A failure to decode a single
// page is tolerated and counted; a document whose total text is shorter
// than the extractable minimum is rejected with ErrInsufficientText.
func (r *Reader) Read(path string) (*ReadResult, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	if err := r.validatePDFFile(path, fileInfo); err != nil {
		return nil, err
	}

	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPDF, err)
	}
	defer f.Close()

	var builder strings.Builder
	var links []LinkAnnotation
	pageErrors := 0
	totalLength := 0

	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		// Annotations are independent of the content streams; collect them
		// even when the page's text cannot be decoded.
		links = append(links, r.extractPageLinks(pdfReader, pageNum)...)

		pageText, ok := r.extractPageText(pdfReader, pageNum)
		if !ok {
			pageErrors++
			continue
		}

		if totalLength+len(pageText) > r.maxTextSize {
			remaining := r.maxTextSize - totalLength
			if remaining > 0 {
				builder.WriteString(pageText[:remaining])
			}
			break
		}

		builder.WriteString(pageText)
		builder.WriteString("\n")
		totalLength += len(pageText)
	}

	fullText := builder.String()
	trimmed := strings.TrimSpace(fullText)
	if trimmed == "" {
		return nil, ErrNoText
	}
	if len(trimmed) < minExtractableText {
		return nil, fmt.Errorf("%w: got %d characters", ErrInsufficientText, len(trimmed))
	}

	doc := &Document{
		Path:      path,
		FullText:  fullText,
		Lines:     strings.Split(fullText, "\n"),
		Links:     links,
		PageCount: pdfReader.NumPage(),
	}

	return &ReadResult{
		Document:   doc,
		Size:       fileInfo.Size(),
		PageErrors: pageErrors,
	}, nil
}

// validatePDFFile performs basic validation on a PDF file.
func (r *Reader) validatePDFFile(filePath string, fileInfo os.FileInfo) error {
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	if !strings.HasSuffix(strings.ToLower(filePath), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", filePath)
	}

	if fileInfo.Size() == 0 {
		return fmt.Errorf("file is empty: %s", filePath)
	}

	if fileInfo.Size() > r.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}

	return nil
}

// extractPageText extracts the plain text of one page. The second return is
// false when the page could not be decoded.
func (r *Reader) extractPageText(pdfReader *pdf.Reader, pageNum int) (text string, ok bool) {
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()

	page := pdfReader.Page(pageNum)
	if page.V.IsNull() {
		return "", false
	}

	content, err := page.GetPlainText(nil)
	if err != nil {
		return "", false
	}

	return content, true
}

// extractPageLinks walks the page's annotation array looking for link
// annotations and pairs each with the text rows near its rectangle.
func (r *Reader) extractPageLinks(pdfReader *pdf.Reader, pageNum int) (links []LinkAnnotation) {
	defer func() {
		// Malformed annotation dictionaries can panic inside the decoder;
		// a page without usable links is not a failure.
		_ = recover()
	}()

	page := pdfReader.Page(pageNum)
	if page.V.IsNull() {
		return nil
	}

	annots := page.V.Key("Annots")
	if annots.IsNull() || annots.Kind() != pdf.Array {
		return nil
	}

	rows := pageTextRows(page)

	for i := 0; i < annots.Len(); i++ {
		annot := annots.Index(i)
		if annot.IsNull() {
			continue
		}

		subtype := annot.Key("Subtype")
		if subtype.IsNull() || subtype.Name() != "Link" {
			continue
		}

		midY := annotationMidY(annot)

		links = append(links, LinkAnnotation{
			URL:     annotationURI(annot),
			Context: r.nearbyText(rows, midY),
			Page:    pageNum,
			Y:       midY,
		})
	}

	return links
}

// pageTextRows returns the positioned text rows of a page, or nil when the
// content stream cannot be decoded. A page whose text is broken still gets
// its link annotations, just without context text.
func pageTextRows(page pdf.Page) (rows []pdf.Text) {
	defer func() {
		_ = recover()
	}()
	return page.Content().Text
}

// annotationURI pulls the URI out of a link annotation's action dictionary.
// Returns "" when the annotation carries no discoverable URL.
func annotationURI(annot pdf.Value) string {
	action := annot.Key("A")
	if action.IsNull() {
		return ""
	}

	uri := action.Key("URI")
	if uri.IsNull() || uri.Kind() != pdf.String {
		return ""
	}

	return uri.RawString()
}

// annotationMidY returns the vertical midpoint of the annotation rectangle.
func annotationMidY(annot pdf.Value) float64 {
	rect := annot.Key("Rect")
	if rect.IsNull() || rect.Kind() != pdf.Array || rect.Len() != 4 {
		return 0
	}

	y1 := rect.Index(1).Float64()
	y2 := rect.Index(3).Float64()
	return (y1 + y2) / 2
}

// nearbyText joins the page text rows within the vertical context window of
// the given position, in stream order.
func (r *Reader) nearbyText(rows []pdf.Text, y float64) string {
	if len(rows) == 0 {
		return ""
	}

	var parts []string
	for _, t := range rows {
		if t.S == "" {
			continue
		}
		delta := t.Y - y
		if delta < 0 {
			delta = -delta
		}
		if delta <= r.contextWindow {
			parts = append(parts, t.S)
		}
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}

// GeM marker strings used to sanity-check that a document looks like a GeM
// bidding PDF at all.
var gemMarkers = []string{"GeM", "Bidding", "बिड", "Item Category", "मद केटेगरी", "Technical Specifications"}

// HasGeMMarkers reports whether the document text contains any of the usual
// GeM bidding markers. A false result does not stop extraction; it is a
// hint that results may be incomplete.
func (d *Document) HasGeMMarkers() bool {
	for _, marker := range gemMarkers {
		if strings.Contains(d.FullText, marker) {
			return true
		}
	}
	return false
}
