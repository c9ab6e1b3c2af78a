package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gembid/gem-bid-extractor/internal/bids"
	"github.com/gembid/gem-bid-extractor/internal/pdf"
)

func syntheticBidDocument() *pdf.Document {
	lines := []string{
		"GeM Bidding Document/जेम बिडिंग दस्तावेज़",
		"Bid Number: GEM/2025/B/6170919",
		"Dated/दिनांक : 17-06-2025",
		"Ministry Of Power Department Name PGCIL Organisation Name Grid Corporation",
		"Bid Offer Validity (From End Date) 120 (Days)",
		"Bid Opening Date/Time 08-2025 15:00:00",
		"Bid Details/बिड विवरण",
		"Item Category/मद केटेगरी",
		"MCB 32A Single Pole Switch Havells 10 Nos",
		"Armoured Copper Cable 2.5 sq.mm 5 Sets",
		"Experience Criteria/अनुभव मानदंड",
		"Estimated Bid Value shall not be disclosed",
	}

	return &pdf.Document{
		Path:     "/tmp/GEM-2025-B-6170919.pdf",
		FullText: strings.Join(lines, "\n"),
		Lines:    lines,
		Links: []pdf.LinkAnnotation{
			{URL: "https://gem.gov.in/landing", Context: "GeM Home", Page: 1, Y: 40},
			{URL: "https://bidplus.gem.gov.in/showfile?id=77", Context: "BOQ Detail Document View File", Page: 1, Y: 512},
		},
		PageCount: 3,
	}
}

func TestAssembleFullDocument(t *testing.T) {
	rec, err := NewAssembler().Assemble(syntheticBidDocument(), "GEM-2025-B-6170919.pdf")
	require.NoError(t, err)

	assert.Equal(t, "GEM/2025/B/6170919", rec.BidNumber.Value)
	assert.Equal(t, "labeled_bid_number", rec.BidNumber.Rule)

	assert.Equal(t, "Ministry Of Power", rec.Buyer.Value)
	assert.Equal(t, bids.OriginMatched, rec.Buyer.Origin)

	assert.Equal(t, "17-06-2025", rec.StartDate.Value)
	assert.Equal(t, "120 (Days)", rec.OfferValidity.Value)
	assert.Equal(t, "15-10-2025", rec.EndDate.Value)
	assert.Equal(t, "derived_end_date", rec.EndDate.Rule)

	assert.Equal(t, "Rajasthan", rec.State.Value)
	assert.Equal(t, "15", rec.TotalQuantity.Value)
	assert.Equal(t, "MCB 32A Single Pole Switch Havells 10 Nos | Armoured Copper Cable 2.5 sq.mm 5 Sets", rec.ItemCategory.Value)

	assert.Equal(t, "https://bidplus.gem.gov.in/showfile?id=77", rec.SpecificationURL.Value)
	assert.Equal(t, "boq_detail_document", rec.SpecificationURL.Rule)

	assert.Equal(t, "GEM-2025-B-6170919.pdf", rec.SourceFilename)
}

func TestAssembleIsDeterministic(t *testing.T) {
	a := NewAssembler()
	doc := syntheticBidDocument()

	first, err := a.Assemble(doc, "a.pdf")
	require.NoError(t, err)
	second, err := a.Assemble(doc, "a.pdf")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAssembleSparseDocumentFallsBackEverywhere(t *testing.T) {
	text := strings.Repeat("procedural boilerplate without any tender fields\n", 5)
	doc := &pdf.Document{
		FullText:  text,
		Lines:     strings.Split(text, "\n"),
		PageCount: 1,
	}

	rec, err := NewAssembler().Assemble(doc, "sparse.pdf")
	require.NoError(t, err)

	assert.Equal(t, bids.OriginDefaulted, rec.BidNumber.Origin)
	assert.Equal(t, bids.DefaultBidNumber, rec.BidNumber.Value)
	assert.Equal(t, bids.OriginDefaulted, rec.Buyer.Origin)
	assert.Equal(t, bids.OriginDefaulted, rec.StartDate.Origin)
	assert.Equal(t, bids.OriginDefaulted, rec.OfferValidity.Origin)
	assert.Equal(t, bids.OriginMissing, rec.State.Origin)
	assert.Equal(t, bids.OriginMissing, rec.TotalQuantity.Origin)
	assert.Equal(t, bids.NoItemsFound, rec.ItemCategory.Value)
	assert.Equal(t, bids.NoURLFound, rec.SpecificationURL.Value)

	// Defaults still derive a plausible end date.
	assert.Equal(t, bids.OriginMatched, rec.EndDate.Origin)
	assert.Equal(t, "17-06-2025", rec.EndDate.Value)
}

func TestAssembleRejectsNilDocument(t *testing.T) {
	_, err := NewAssembler().Assemble(nil, "x.pdf")
	assert.Error(t, err)
}

func TestAssembleRejectsInsufficientText(t *testing.T) {
	doc := &pdf.Document{FullText: "too short", Lines: []string{"too short"}}
	_, err := NewAssembler().Assemble(doc, "x.pdf")
	assert.ErrorIs(t, err, pdf.ErrInsufficientText)
}

func TestNewAssemblerWithWindowClampsNonPositive(t *testing.T) {
	a := NewAssemblerWithWindow(-1)
	assert.Equal(t, DefaultAdjacencyWindow, a.adjacencyWindow)
}
