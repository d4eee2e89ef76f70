package offsets

import (
	"fmt"
	"regexp"
)

// Dialect identifies one of the supported OCR markup formats
type Dialect int

const (
	// Unknown is the zero value, never returned with a nil error
	Unknown Dialect = iota
	// MiniOCR is the compact <ocr>/<p>/<l>/<w> format
	MiniOCR
	// HOCR is the HTML based format with ocr_page/ocrx_word classes
	HOCR
	// ALTO is the LoC XML format with <String CONTENT="..."> words
	ALTO
)

// String returns the conventional spelling of the dialect name
func (d Dialect) String() string {
	switch d {
	case MiniOCR:
		return "MiniOCR"
	case HOCR:
		return "hOCR"
	case ALTO:
		return "ALTO"
	default:
		return "Unknown"
	}
}

// Non-whitespace, matching the Unicode White_Space property rather than RE2's ASCII \s
const wordChars = `[^\s\v\x{85}\p{Z}]`

// dialectSpec pairs everything that is dialect specific so that detection
// and extraction can never disagree on which word pattern belongs to which format
type dialectSpec struct {
	dialect   Dialect
	signature *regexp.Regexp
	word      *regexp.Regexp
	textGroup int
	// page start for a given identifier, %s is replaced by the quoted id
	pageStart string
}

// dialectSpecs is ordered by detection priority. MiniOCR is anchored at the
// document start and must be tested before the unanchored hOCR and ALTO signatures.
var dialectSpecs = []*dialectSpec{
	newDialectSpec(
		MiniOCR,
		`^(?:<\?xml.+?\?>)?<ocr>`,
		`<w.*?>(?P<text>`+wordChars+`+?)</w>`,
		`<p(?:\s[^>]*?)?\s(?:xml:)?id=["']%s["']`,
	),
	newDialectSpec(
		HOCR,
		`<div class=['"]ocr_page['"]`,
		`<span class=['"]ocrx_word['"].+?>(?P<text>`+wordChars+`+?)</span>`,
		`<div class=['"]ocr_page['"][^>]*?\sid=['"]%s['"]`,
	),
	newDialectSpec(
		ALTO,
		`<alto[\s>]`,
		`<String.+?CONTENT="(?P<text>.+?)".*?>`,
		`<Page\s[^>]*?ID=["']%s["']`,
	),
}

func newDialectSpec(d Dialect, signature, word, pageStart string) *dialectSpec {
	wordRe := regexp.MustCompile(word)
	return &dialectSpec{
		dialect:   d,
		signature: regexp.MustCompile(signature),
		word:      wordRe,
		textGroup: wordRe.SubexpIndex("text"),
		pageStart: pageStart,
	}
}

// specFor returns the pattern table entry for d, or nil for Unknown and out-of-range values
func specFor(d Dialect) *dialectSpec {
	for _, s := range dialectSpecs {
		if s.dialect == d {
			return s
		}
	}
	return nil
}

// pageStartPattern compiles the page-start pattern for a page identifier
func (s *dialectSpec) pageStartPattern(id string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(s.pageStart, regexp.QuoteMeta(id)))
}
