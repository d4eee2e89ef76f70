package offsets

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
)

// WriteTokens writes every token as "{text}{delimiter}{offset} " and returns
// the number of tokens written. It stops at the first extraction or write error.
// Tokens written before the error are flushed and left in place.
func WriteTokens(w io.Writer, tokens iter.Seq2[Token, error], delimiter string) (int, error) {
	bw := bufio.NewWriter(w)
	var buf []byte
	count := 0
	for token, err := range tokens {
		if err != nil {
			if ferr := bw.Flush(); ferr != nil {
				return count, fmt.Errorf("error writing tokens: %w", ferr)
			}
			return count, err
		}
		buf = append(buf[:0], token.Text...)
		buf = append(buf, delimiter...)
		buf = strconv.AppendInt(buf, int64(token.Offset), 10)
		buf = append(buf, ' ')
		if _, err := bw.Write(buf); err != nil {
			return count, fmt.Errorf("error writing tokens: %w", err)
		}
		count++
	}
	if err := bw.Flush(); err != nil {
		return count, fmt.Errorf("error writing tokens: %w", err)
	}
	return count, nil
}
