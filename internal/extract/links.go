package extract

import (
	"strings"

	"github.com/gembid/gem-bid-extractor/internal/bids"
	"github.com/gembid/gem-bid-extractor/internal/pdf"
)

// LinkType is the semantic document-type label of a hyperlink annotation.
type LinkType int

const (
	// LinkTypeBOQ is a Bill of Quantities detail document link.
	LinkTypeBOQ LinkType = iota
	// LinkTypeBuyerSpec is a buyer-uploaded specification document link.
	LinkTypeBuyerSpec
	// LinkTypeGeMCategorySpec is a GeM category specification link.
	LinkTypeGeMCategorySpec
	// LinkTypeOther is any link that carries no specification semantics.
	LinkTypeOther
)

// String returns a human-readable name for the link type.
func (lt LinkType) String() string {
	switch lt {
	case LinkTypeBOQ:
		return "boq_detail_document"
	case LinkTypeBuyerSpec:
		return "buyer_specification_document"
	case LinkTypeGeMCategorySpec:
		return "gem_category_specification"
	default:
		return "other"
	}
}

// ClassifiedLink pairs a link annotation with its classification.
type ClassifiedLink struct {
	pdf.LinkAnnotation
	Type LinkType
}

// specPriority is the order in which link types are preferred when picking
// the technical specification URL. It overrides discovery order.
var specPriority = []LinkType{LinkTypeBOQ, LinkTypeBuyerSpec, LinkTypeGeMCategorySpec}

// ClassifyLink tags one link annotation with its document-type label.
// Decision order is fixed and first-match-wins, evaluated over the
// lower-cased URL and context text. Pure: no side effects.
func ClassifyLink(link pdf.LinkAnnotation) LinkType {
	url := strings.ToLower(link.URL)
	context := strings.ToLower(link.Context)

	switch {
	case strings.Contains(context, "boq detail document"),
		strings.Contains(context, "boq document"),
		strings.Contains(context, "boq") && strings.Contains(context, "view file"),
		strings.Contains(url, "boqdocument"),
		strings.Contains(url, "boq_detail_document"):
		return LinkTypeBOQ

	case strings.Contains(context, "buyer specification document"),
		strings.Contains(context, "buyer spec"),
		strings.Contains(context, "specification") && strings.Contains(context, "download"),
		strings.Contains(url, "buyer_specification"),
		strings.Contains(url, "buyerspecification"),
		strings.Contains(url, "spec_document"):
		return LinkTypeBuyerSpec

	case strings.Contains(context, "as per gem category specification"),
		strings.Contains(context, "विनिर्देश के अनुसार"),
		strings.Contains(context, "gem category spec"),
		strings.Contains(context, "as per") && (strings.Contains(context, "gem") || strings.Contains(context, "category")),
		strings.Contains(url, "category_specification"),
		strings.Contains(url, "categoryspec"),
		strings.Contains(url, "catalogattrs"),
		strings.Contains(url, "catalog_support"),
		strings.Contains(url, "catalog") && strings.Contains(url, "specification"):
		return LinkTypeGeMCategorySpec

	case strings.Contains(url, "tech_spec"),
		strings.Contains(url, "technical_specification"),
		strings.Contains(url, "specification_document"):
		if strings.Contains(url, "boq") {
			return LinkTypeBOQ
		}
		return LinkTypeBuyerSpec

	default:
		return LinkTypeOther
	}
}

// ClassifyLinks classifies every annotation of one document, resolving
// URL-less annotations from adjacent ones first. Discovery order is kept.
func ClassifyLinks(links []pdf.LinkAnnotation, adjacencyWindow float64) []ClassifiedLink {
	classified := make([]ClassifiedLink, 0, len(links))
	for i, link := range links {
		if link.URL == "" {
			link.URL = ResolveAdjacentURL(links, i, adjacencyWindow)
		}
		classified = append(classified, ClassifiedLink{
			LinkAnnotation: link,
			Type:           ClassifyLink(link),
		})
	}
	return classified
}

// ResolveAdjacentURL handles split text/hyperlink rendering artifacts: for
// an annotation lacking a URL it returns the URL of the nearest same-page
// annotation within the vertical pixel window, or "".
func ResolveAdjacentURL(links []pdf.LinkAnnotation, idx int, window float64) string {
	if idx < 0 || idx >= len(links) {
		return ""
	}
	target := links[idx]

	bestURL := ""
	bestDelta := window + 1
	for i, candidate := range links {
		if i == idx || candidate.URL == "" || candidate.Page != target.Page {
			continue
		}
		delta := candidate.Y - target.Y
		if delta < 0 {
			delta = -delta
		}
		if delta <= window && delta < bestDelta {
			bestURL = candidate.URL
			bestDelta = delta
		}
	}
	return bestURL
}

// ExtractSpecificationURL picks the technical specification URL from the
// classified links: the first link of the highest-priority type present
// (BOQ, then buyer specification, then GeM category specification).
func ExtractSpecificationURL(links []ClassifiedLink) bids.FieldResult {
	for _, want := range specPriority {
		for _, link := range links {
			if link.Type == want && link.URL != "" {
				return bids.Matched(link.URL, want.String())
			}
		}
	}
	return bids.Missing(bids.NoURLFound)
}
