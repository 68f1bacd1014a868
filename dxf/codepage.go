package dxf

import (
	"bytes"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// dwgCodePages maps the $DWGCODEPAGE header variable to the decoder its
// bytes need. Only the Shift-JIS family is mapped; every other code page
// (ANSI_1252 and friends) is left as-is, since the source files this
// pipeline targets are already ASCII or UTF-8 in practice and the
// dependency this carries forward only ever decoded Japanese text.
var dwgCodePages = map[string]bool{
	"ANSI_932": true, // Shift-JIS
}

// decodeText re-decodes a DXF string value through its document's code
// page when that page is Shift-JIS, the same decode-with-fallback idiom
// the source this pipeline's text handling is grounded on uses for its
// own strings: a failed conversion returns the original bytes rather
// than an error, since a best-effort label beats an aborted import.
func decodeText(s, codePage string) string {
	if !dwgCodePages[codePage] {
		return s
	}
	decoder := japanese.ShiftJIS.NewDecoder()
	result, _, err := transform.Bytes(decoder, []byte(s))
	if err != nil {
		return s
	}
	return string(bytes.TrimRight(result, "\x00"))
}
