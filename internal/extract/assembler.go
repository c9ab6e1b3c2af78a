package extract

import (
	"fmt"

	"github.com/gembid/gem-bid-extractor/internal/bids"
	"github.com/gembid/gem-bid-extractor/internal/pdf"
)

// DefaultAdjacencyWindow is the vertical pixel window used to resolve URLs
// from adjacent link annotations.
const DefaultAdjacencyWindow = 12.0

// Assembler runs every field extractor and the link classifier over one
// document and produces the canonical bid record. Stateless per call;
// assembling the same document twice yields identical records.
type Assembler struct {
	adjacencyWindow float64
}

// NewAssembler creates a record assembler with the default adjacency window.
func NewAssembler() *Assembler {
	return &Assembler{adjacencyWindow: DefaultAdjacencyWindow}
}

// NewAssemblerWithWindow creates a record assembler with a custom link
// adjacency window.
func NewAssemblerWithWindow(window float64) *Assembler {
	if window <= 0 {
		window = DefaultAdjacencyWindow
	}
	return &Assembler{adjacencyWindow: window}
}

// Assemble extracts one BidRecord from a document. Missing field data never
// causes an error; every field resolves to a tagged value. The only error
// condition is an unusable document itself.
func (a *Assembler) Assemble(doc *pdf.Document, sourceFilename string) (*bids.BidRecord, error) {
	if doc == nil {
		return nil, fmt.Errorf("document is nil")
	}
	if len(doc.FullText) < 100 {
		return nil, fmt.Errorf("%w: got %d characters", pdf.ErrInsufficientText, len(doc.FullText))
	}

	text := doc.FullText
	lines := doc.Lines

	startDate := ExtractStartDate(lines)
	validity := ExtractValidity(text)
	classified := ClassifyLinks(doc.Links, a.adjacencyWindow)

	rec := &bids.BidRecord{
		BidNumber:        ExtractBidNumber(text),
		Buyer:            ExtractBuyer(text),
		StartDate:        startDate,
		OfferValidity:    validity,
		EndDate:          bids.DeriveEndDate(startDate, validity),
		State:            ExtractState(lines),
		TotalQuantity:    ExtractTotalQuantity(text, lines),
		ItemCategory:     ExtractItemCategory(text, lines),
		SpecificationURL: ExtractSpecificationURL(classified),
		SourceFilename:   sourceFilename,
	}

	return rec, nil
}
