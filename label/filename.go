package label

import (
	"strings"
	"unicode"
)

const maxFilenameRunes = 60

// BulkFilename is the download name of a multi-label PDF.
const BulkFilename = "etiketler_toplu.pdf"

// Slug reduces a recipient name to a file-system safe stem: punctuation is
// dropped, whitespace runs become '_' and the result is capped at 60 runes.
// An empty stem becomes "etiket".
func Slug(name string) string {
	var b strings.Builder
	pendingSpace := false
	for _, r := range strings.TrimSpace(name) {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = true
			continue
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r), r == '_', r == '-':
		default:
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte('_')
		}
		pendingSpace = false
		b.WriteRune(r)
	}

	out := []rune(b.String())
	if len(out) > maxFilenameRunes {
		out = out[:maxFilenameRunes]
	}
	if len(out) == 0 {
		return "etiket"
	}
	return string(out)
}

// Filename returns the download name of a single label PDF.
func Filename(name string) string {
	return "etiket_" + Slug(name) + ".pdf"
}
