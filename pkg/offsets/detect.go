package offsets

import (
	"errors"
)

// ErrUnknownFormat is returned when a document matches none of the dialect signatures
var ErrUnknownFormat = errors.New("unknown OCR format")

// Detect classifies the document by testing the dialect signatures in priority order:
// MiniOCR (anchored at the document start), then hOCR, then ALTO.
func Detect(doc []byte) (Dialect, error) {
	for _, s := range dialectSpecs {
		if s.signature.Match(doc) {
			return s.dialect, nil
		}
	}
	return Unknown, ErrUnknownFormat
}
