package offsets

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

// EncodingError reports a charset label that cannot be resolved
type EncodingError struct {
	Label string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("unsupported character encoding %q", e.Label)
}

// Only the document head is searched for a charset declaration
const sniffLen = 1024

var (
	xmlDeclEncoding = regexp.MustCompile(`^\s*<\?xml[^>]*?\sencoding=["']([^"']+)["']`)
	metaCharset     = regexp.MustCompile(`(?i)<meta[^>]+?charset=["']?([^"'\s;/>]+)`)
)

// declaredCharset returns the charset label declared in the document head, if any
func declaredCharset(doc []byte) string {
	head := doc
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	if m := xmlDeclEncoding.FindSubmatch(head); m != nil {
		return strings.ToLower(string(m[1]))
	}
	if m := metaCharset.FindSubmatch(head); m != nil {
		return strings.ToLower(string(m[1]))
	}
	return ""
}

// textDecoder transcodes captured word bytes to UTF-8. A nil decoder leaves
// the bytes untouched, which is the case for UTF-8 documents.
type textDecoder struct {
	enc  encoding.Encoding
	name string
}

// asciiIncompatible lists the encodings whose bytes cannot contain the ASCII
// markup the word patterns match on
var asciiIncompatible = map[string]bool{
	"utf-16le":    true,
	"utf-16be":    true,
	"replacement": true,
}

// newTextDecoder resolves the encoding for the document. An explicit label
// must be known and ASCII compatible. A declared one that is not falls back
// to UTF-8, since the markup matched as ASCII contradicts the declaration.
func newTextDecoder(doc []byte, explicit string) (*textDecoder, error) {
	label := explicit
	if label == "" {
		label = declaredCharset(doc)
	}
	if label == "" {
		return nil, nil
	}

	enc, name := charset.Lookup(label)
	if enc == nil || asciiIncompatible[name] {
		if explicit != "" {
			return nil, &EncodingError{Label: explicit}
		}
		return nil, nil
	}
	if name == "utf-8" {
		return nil, nil
	}
	return &textDecoder{enc: enc, name: name}, nil
}

// ResolveEncoding returns the canonical name of the encoding Extract uses to
// decode the words of doc, "utf-8" when they are used verbatim.
func ResolveEncoding(doc []byte, cfg Config) (string, error) {
	decoder, err := newTextDecoder(doc, cfg.Encoding)
	if err != nil {
		return "", err
	}
	return decoder.Name(), nil
}

// decode converts raw into UTF-8
func (d *textDecoder) decode(raw []byte) ([]byte, error) {
	if d == nil {
		return raw, nil
	}
	// ASCII is identical in every encoding newTextDecoder accepts
	if isASCII(raw) {
		return raw, nil
	}
	out, err := d.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s text: %w", d.name, err)
	}
	return out, nil
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

// Name returns the canonical encoding name, "utf-8" for a nil decoder
func (d *textDecoder) Name() string {
	if d == nil {
		return "utf-8"
	}
	return d.name
}
