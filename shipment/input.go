package shipment

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// NormalizeText prepares pasted text for segmenting: \r\n and lone \r become
// \n, and combining marks are composed (NFC) so that "U\u0308A" reads as "ÜA".
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return norm.NFC.String(s)
}

// DecodeText turns uploaded bytes into a string. UTF-8 (with or without a
// BOM) is taken as is; anything else is read as Windows-1254, the code page
// Turkish Excel exports text in.
func DecodeText(b []byte) (string, error) {
	b = bytes.TrimPrefix(b, utf8BOM)
	if utf8.Valid(b) {
		return string(b), nil
	}
	out, err := charmap.Windows1254.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("shipment: decoding windows-1254 text: %w", err)
	}
	return string(out), nil
}
