package core

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	utf16BOM = []byte{0xFE, 0xFF}
	utf8BOM  = []byte{0xEF, 0xBB, 0xBF}
)

// Text interprets the string as a PDF text string and returns it as UTF-8.
// A leading FE FF marks UTF-16BE and EF BB BF marks UTF-8; anything else is
// read as Latin-1, which agrees with PDFDocEncoding for printable ASCII and
// most accented letters.
func (s String) Text() string {
	b := []byte(s)

	var dec *encoding.Decoder
	switch {
	case bytes.HasPrefix(b, utf16BOM):
		dec = unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
	case bytes.HasPrefix(b, utf8BOM):
		dec = unicode.UTF8BOM.NewDecoder()
	default:
		dec = charmap.ISO8859_1.NewDecoder()
	}

	out, _, err := transform.Bytes(dec, b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
