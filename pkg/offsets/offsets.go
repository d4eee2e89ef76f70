// Package offsets converts OCR documents into a flat stream of word/byte-offset tokens.
//
// Full-text indexers store OCR output verbatim and only index the words. To map a
// search hit back to the position in the scan, every indexed word carries the byte
// offset of its markup in the original document:
//
//	Hello⚑26 World⚑47
//
// Three OCR markup dialects are supported and detected automatically:
//
// - MiniOCR: documents rooted at <ocr>, words are <w> elements
// - hOCR: HTML with a <div class="ocr_page">, words are <span class="ocrx_word"> elements
// - ALTO: XML rooted at <alto>, words are the CONTENT attribute of <String> elements
//
// Words are matched on the raw bytes of the document, so offsets always refer to the
// document as stored, even for documents declared in a legacy charset. Character
// references inside words (&amp;, &#39;, ...) are resolved after matching.
//
// Main Functions:
//
// - Detect: Determines the dialect of a document
// - Extract: Lazily yields the tokens of a document of a given dialect
// - WriteTokens: Writes tokens in the "{text}{delimiter}{offset} " format
// - Convert: Detects, extracts and writes in one call
package offsets

import (
	"fmt"
	"io"
)

// Result summarizes a conversion
type Result struct {
	Dialect Dialect // Detected dialect
	Tokens  int     // Number of tokens written
}

// Convert detects the dialect of doc and writes its tokens to w.
// Nothing is written when the dialect cannot be detected.
func Convert(doc []byte, w io.Writer, cfg Config) (Result, error) {
	dialect, err := Detect(doc)
	if err != nil {
		return Result{}, err
	}

	delimiter := cfg.Delimiter
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	count, err := WriteTokens(w, Extract(doc, dialect, cfg), delimiter)
	result := Result{Dialect: dialect, Tokens: count}
	if err != nil {
		return result, fmt.Errorf("failed to convert %s document: %w", dialect, err)
	}
	return result, nil
}
