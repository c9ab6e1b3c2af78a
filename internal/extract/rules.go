package extract

import "regexp"

// patternRule is one named recognition rule in a field's ordered fallback
// chain. Rules are tried in slice order; the first match wins and its name
// is recorded on the resulting field.
type patternRule struct {
	name    string
	pattern *regexp.Regexp
}

// bidNumberRules match the GEM/YYYY/CODE/NUMBER reference. The labeled
// variants (English and Hindi) are preferred over a bare match anywhere in
// the text.
var bidNumberRules = []patternRule{
	{"labeled_bid_number", regexp.MustCompile(`(?i)Bid\s+Number\s*[:/]*\s*(GEM/\d{4}/[A-Z]+/\d+)`)},
	{"labeled_bid_number_hindi", regexp.MustCompile(`(?:बिड\s+संख्या|बोली\s+क्रमांक)\s*[:/]*\s*(GEM/\d{4}/[A-Z]+/\d+)`)},
	{"bare_bid_number", regexp.MustCompile(`\b([A-Z]{2,}/\d{4}/[A-Z]+/\d{4,})\b`)},
}

// buyerRules locate the buying ministry or department.
var buyerRules = []patternRule{
	{"ministry_of", regexp.MustCompile(`(?i)Ministry\s+Of\s+[A-Za-z\s&]+`)},
	{"ministry", regexp.MustCompile(`(?i)Ministry\s+[A-Za-z\s&]+`)},
	{"department_of", regexp.MustCompile(`(?i)Department\s+Of\s+[A-Za-z\s&]+`)},
}

// buyerBoilerplate lists label tokens the noisy text layout sometimes glues
// onto the end of a buyer match; a candidate is cut at the first occurrence.
var buyerBoilerplate = []string{
	"Department Name",
	"Organisation Name",
	"Office Name",
	"Buyer Email",
}

// knownMinistries is the verbatim fallback list scanned when no buyer
// template produces a usable candidate.
var knownMinistries = []string{
	"Ministry of Defence",
	"Ministry of Railways",
	"Ministry of Home Affairs",
	"Ministry of Finance",
	"Ministry of Power",
	"Ministry of Steel",
	"Ministry of Coal",
	"Ministry of Petroleum and Natural Gas",
	"Ministry of Health and Family Welfare",
	"Department of Atomic Energy",
}

// validityRules match the bid offer validity period.
var validityRules = []patternRule{
	{"days_parenthesized", regexp.MustCompile(`(?i)(\d+)\s*\(\s*Days?\s*\)`)},
	{"days_bare", regexp.MustCompile(`(?i)(\d+)\s*Days?\b`)},
	{"validity_labeled", regexp.MustCompile(`(?i)Validity\D*?(\d+)`)},
}

// Date handling.
var (
	dateTokenRe = regexp.MustCompile(`\b(\d{2}-\d{2}-\d{4})\b`)
	datedLabels = []string{"Dated", "दिनांक"}
)

// headerZoneLines is how many leading lines count as the document header
// zone for the start-date fallback scan.
const headerZoneLines = 20

// State extraction. The primary path decodes the 2-digit state code sitting
// in the month position of the bid-opening timestamp.
var (
	openingDateLabels = []string{"Bid Opening Date", "बिड खुलने"}
	stateCodeRe       = regexp.MustCompile(`\b(\d{2})-\d{4}\s+\d{2}:\d{2}:\d{2}`)
	stateLabelRules   = []patternRule{
		{"state_labeled", regexp.MustCompile(`(?i)State\s*[:\-/]\s*([A-Za-z ]+)`)},
		{"state_labeled_hindi", regexp.MustCompile(`राज्य\s*[:\-/]?\s*([A-Za-z ]+)`)},
	}
)

// stateCodeTable maps the 2-digit codes found in bid-opening timestamps to
// state/UT names. The numbering convention is taken as given; it has no
// authoritative source in the tender documents themselves.
var stateCodeTable = map[string]string{
	"01": "Jammu and Kashmir",
	"02": "Himachal Pradesh",
	"03": "Punjab",
	"04": "Chandigarh",
	"05": "Uttarakhand",
	"06": "Haryana",
	"07": "Delhi",
	"08": "Rajasthan",
	"09": "Uttar Pradesh",
	"10": "Bihar",
	"11": "Sikkim",
	"12": "Arunachal Pradesh",
	"13": "Nagaland",
	"14": "Manipur",
	"15": "Mizoram",
	"16": "Tripura",
	"17": "Meghalaya",
	"18": "Assam",
	"19": "West Bengal",
	"20": "Jharkhand",
	"21": "Odisha",
	"22": "Chhattisgarh",
	"23": "Madhya Pradesh",
	"24": "Gujarat",
	"25": "Daman and Diu",
	"26": "Dadra and Nagar Haveli",
	"27": "Maharashtra",
	"28": "Andhra Pradesh",
	"29": "Karnataka",
	"30": "Goa",
	"31": "Lakshadweep",
	"32": "Kerala",
	"33": "Tamil Nadu",
	"34": "Puducherry",
	"35": "Andaman and Nicobar Islands",
	"36": "Telangana",
	"37": "Ladakh",
}

// Item section boundaries, shared by the quantity and item-category
// extractors. sectionPairMarker requires both strings on the same line.
var (
	sectionStartMarkers = []string{
		"VARIOUS TYPES OF ELECTRICAL SPARES",
		"Item Category/",
		"मद केटेगरी",
	}
	sectionPairMarker = [2]string{"Bid Details", "बिड विवरण"}

	sectionStopMarkers = []string{
		"Experience Criteria",
		"Preference to Make In India",
		"Purchase preference for MSEs",
		"Estimated Bid Value",
		"Past Performance",
		"Technical Specifications",
		"Consignees/Reporting Officer",
		"Buyer Added Bid",
		"Input Tax Credit",
		"EMD Detail",
		"Evaluation Method",
		"Inspection Required",
	}
)

// quantityWindowLines caps the forward scan for unit quantities after a
// section start marker.
const quantityWindowLines = 50

// unitQuantityRe matches "<N> <unit>" item quantities inside the item
// section. All matches on a line contribute to the running sum.
var unitQuantityRe = regexp.MustCompile(`(?i)(\d+)\s*(?:Nos?|Units?|Pieces?|Sets?|Meters?|Mtr|Rolls?|Boxes?)\b`)

// Quantity bounds accepted for a single line item.
const (
	minItemQuantity = 1
	maxItemQuantity = 999999
)

// quantityLabelRules are the generic labeled fallbacks applied to the whole
// text when the item-section sum comes up empty.
var quantityLabelRules = []patternRule{
	{"total_quantity_bilingual", regexp.MustCompile(`Total\s+Quantity/कुल\s+मात्रा\s*[:\-]?\s*(\d+)`)},
	{"total_quantity", regexp.MustCompile(`(?i)Total\s+Quantity.*?[:\-]?\s*(\d{2,6})`)},
	{"total_quantity_hindi", regexp.MustCompile(`कुल\s+मात्रा\s*[:\-]?\s*(\d+)`)},
	{"quantity", regexp.MustCompile(`(?i)Quantity.*?[:\-]?\s*(\d{2,6})`)},
	{"total_qty", regexp.MustCompile(`(?i)Total\s+Qty.*?[:\-]?\s*(\d+)`)},
	{"qty", regexp.MustCompile(`(?i)Qty.*?[:\-]?\s*(\d+)`)},
}

// Item category line filtering.
var (
	pageNumberLineRe  = regexp.MustCompile(`^\d+\s*/\s*\d+$`)
	leadingNumberRe   = regexp.MustCompile(`^\d+\.\s*`)
	leadingSymbolsRe  = regexp.MustCompile(`^[^\w\s]*\s*`)
	itemNoiseContains = []string{
		"GeMARPTS",
		"Strings used in",
		"Result generated",
		"Categories selected",
		"Policy",
		"criteria",
		"preference",
		"percentage",
		"registration",
		"financial year",
	}
	itemNoisePrefixes = []string{"मम", "अधिसूचना"}
)

// Item line length bounds (exclusive) after trimming numbering and symbols.
const (
	minItemLineLength = 10
	maxItemLineLength = 300
)

// maxItemCategoryEntries caps how many item snippets make it into the
// pipe-joined category field.
const maxItemCategoryEntries = 20

// itemIndicators are domain substrings at least one of which must appear
// (case-insensitively) in a candidate item line: component names, units,
// part-number markers and common brands.
var itemIndicators = []string{
	"switch", "socket", "plug", "holder", "tape", "capacitor", "tube light",
	"lamp", "cable", "contactor", "relay", "timer", "diode", "lugs", "fuse",
	"mcb", "wire", "led", "insulation", "copper", "brass", "part no.",
	"nos", "units", "pieces", "sets", "mtr", "sq.mm", "volt", "watt", "amp",
	"havells", "anchor", "philips", "crompton", "finolex", "polycab",
	"legrand", "siemens", "schneider",
}

// itemFallbackRules are the whole-text patterns tried when no qualifying
// lines were collected from the item section.
var itemFallbackRules = []patternRule{
	{"switch_socket", regexp.MustCompile(`(?i)Switch.*?Socket.*?\d+V.*?\d+A`)},
	{"plug_top", regexp.MustCompile(`(?i)Plug.*?Top.*?\d+A`)},
	{"holder_bc", regexp.MustCompile(`(?i)Holder.*?BC.*?Brass`)},
	{"insulation_tape", regexp.MustCompile(`(?i)Insulation.*?Tape.*?\d+.*?Mtr`)},
	{"capacitor", regexp.MustCompile(`(?i)Capacitor.*?\d+.*?mFD.*?\d+V`)},
	{"tube_light_holder", regexp.MustCompile(`(?i)Tube.*?Light.*?Holder`)},
	{"lamp", regexp.MustCompile(`(?i)Lamp.*?\d+V.*?\d+W`)},
	{"copper_cable", regexp.MustCompile(`(?i)Cable.*?\d+.*?sq\.mm.*?Copper`)},
	{"contactor", regexp.MustCompile(`(?i)Contactor.*?\d+V.*?Coil`)},
	{"relay", regexp.MustCompile(`(?i)Relay.*?range.*?\d+.*?\d+A`)},
	{"timer", regexp.MustCompile(`(?i)Timer.*?Range.*?\d+.*?\d+S`)},
	{"charger_diode", regexp.MustCompile(`(?i)Diode.*?battery.*?Charge`)},
	{"cable_lugs", regexp.MustCompile(`(?i)Cable.*?Lugs.*?SIZE.*?\d+.*?Sq\.mm`)},
}
