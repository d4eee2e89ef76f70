package offsets

// DefaultDelimiter separates a word from its offset. It is chosen to be unlikely
// to appear in OCR word text and never appears in a decimal number.
const DefaultDelimiter = "⚑"

// Config holds user options for converting an OCR document
type Config struct {
	Delimiter string // Separator between word and offset
	StartPage string // Identifier of the first page to convert (empty = document start)
	EndPage   string // Identifier of the page to stop at, exclusive (empty = document end)
	Encoding  string // Charset label overriding the document's declaration
}

// DefaultConfig returns a config that converts the whole document
func DefaultConfig() Config {
	return Config{
		Delimiter: DefaultDelimiter,
	}
}
