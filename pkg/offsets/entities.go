package offsets

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// EntityError reports a malformed or unknown character reference in word text
type EntityError struct {
	Entity string // The offending reference as it appears in the word
	Offset int    // Byte offset of the word's matched span in the document
	Reason string
}

func (e *EntityError) Error() string {
	return fmt.Sprintf("malformed entity %q in word at byte %d: %s", e.Entity, e.Offset, e.Reason)
}

// xmlEntities are the predefined XML entities, apos is missing from the HTML 4 table
var xmlEntities = map[string]string{
	"amp":  "&",
	"lt":   "<",
	"gt":   ">",
	"quot": `"`,
	"apos": "'",
}

// maxEntityLen bounds the search for the terminating ';'
const maxEntityLen = 32

// decodeEntities resolves every character reference in text. The returned
// *EntityError has no Offset, the caller knows where the word starts.
func decodeEntities(text []byte) (string, error) {
	if bytes.IndexByte(text, '&') < 0 {
		return string(text), nil
	}

	var builder strings.Builder
	builder.Grow(len(text))
	for i := 0; i < len(text); {
		amp := bytes.IndexByte(text[i:], '&')
		if amp < 0 {
			builder.Write(text[i:])
			break
		}
		builder.Write(text[i : i+amp])
		i += amp

		decoded, n, reason := decodeReference(text[i:])
		if reason != "" {
			end := i + n
			if end > len(text) {
				end = len(text)
			}
			return "", &EntityError{
				Entity: string(text[i:end]),
				Reason: reason,
			}
		}
		builder.WriteString(decoded)
		i += n
	}
	return builder.String(), nil
}

// decodeReference decodes the reference at the start of ref, which begins with '&'.
// It returns the replacement, the number of bytes consumed, and a non-empty reason on failure.
func decodeReference(ref []byte) (string, int, string) {
	limit := len(ref)
	if limit > maxEntityLen {
		limit = maxEntityLen
	}
	semi := bytes.IndexByte(ref[:limit], ';')
	if semi < 0 {
		return "", limit, "missing terminating ';'"
	}
	n := semi + 1
	name := string(ref[1:semi])
	if name == "" {
		return "", n, "empty reference"
	}

	if name[0] != '#' {
		if v, ok := xmlEntities[name]; ok {
			return v, n, ""
		}
		if v, ok := xml.HTMLEntity[name]; ok {
			return v, n, ""
		}
		return "", n, "unknown named entity"
	}

	digits, base := name[1:], 10
	if len(digits) > 0 && (digits[0] == 'x' || digits[0] == 'X') {
		digits, base = digits[1:], 16
	}
	if digits == "" {
		return "", n, "missing code point"
	}
	cp, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return "", n, "invalid code point"
	}
	r := rune(cp)
	if cp > utf8.MaxRune || !utf8.ValidRune(r) {
		return "", n, "code point is not a Unicode scalar value"
	}
	if cp == 0 {
		return "", n, "code point is not a valid character"
	}
	return string(r), n, ""
}
