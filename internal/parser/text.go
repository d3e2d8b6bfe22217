package parser

import (
	"fmt"
	"io"
	"strings"
)

const utf8BOM = "\ufeff"

// TextParser handles plain text files. Invalid UTF-8 is dropped rather than
// rejected.
type TextParser struct{}

func (p *TextParser) Extract(r io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filename, err)
	}
	return Decode(data), nil
}

// Decode converts bytes to a string, stripping a UTF-8 byte order mark and
// discarding invalid byte sequences.
func Decode(data []byte) string {
	s := strings.ToValidUTF8(string(data), "")
	return strings.TrimPrefix(s, utf8BOM)
}
