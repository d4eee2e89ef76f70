package offsets

import (
	"errors"
	"fmt"
	"iter"
)

// Token is a decoded word and the byte offset of its markup in the document
type Token struct {
	Text   string // Word text with character references resolved
	Offset int    // Byte offset of the start of the matched markup span
}

// Extract returns the words of doc in document order. The word pattern is the
// one paired with d, so d should come from Detect. Matching runs on the raw
// bytes and each captured word is decoded afterwards, which keeps offsets raw.
//
// The sequence stops after yielding the first error.
func Extract(doc []byte, d Dialect, cfg Config) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		spec := specFor(d)
		if spec == nil {
			yield(Token{}, fmt.Errorf("cannot extract words from %s document: %w", d, ErrUnknownFormat))
			return
		}

		start, end, err := pageRegion(doc, spec, cfg.StartPage, cfg.EndPage)
		if err != nil {
			yield(Token{}, err)
			return
		}

		decoder, err := newTextDecoder(doc, cfg.Encoding)
		if err != nil {
			yield(Token{}, err)
			return
		}

		region := doc[start:end]
		for pos := 0; pos < len(region); {
			loc := spec.word.FindSubmatchIndex(region[pos:])
			if loc == nil {
				return
			}
			offset := start + pos + loc[0]
			raw := region[pos+loc[2*spec.textGroup] : pos+loc[2*spec.textGroup+1]]
			pos += loc[1]

			token, err := decodeWord(raw, offset, decoder)
			if !yield(token, err) || err != nil {
				return
			}
		}
	}
}

// decodeWord turns captured bytes into a Token
func decodeWord(raw []byte, offset int, decoder *textDecoder) (Token, error) {
	utf8Text, err := decoder.decode(raw)
	if err != nil {
		return Token{}, fmt.Errorf("word at byte %d: %w", offset, err)
	}
	text, err := decodeEntities(utf8Text)
	if err != nil {
		var entityErr *EntityError
		if errors.As(err, &entityErr) {
			entityErr.Offset = offset
		}
		return Token{}, err
	}
	return Token{Text: text, Offset: offset}, nil
}

// Tokens collects all words of doc, failing on the first error
func Tokens(doc []byte, d Dialect, cfg Config) ([]Token, error) {
	var tokens []Token
	for token, err := range Extract(doc, d, cfg) {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}
