package shipment

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Every pass has the shape func(text) (match, rest). rest is text with the
// match replaced by a single space; a pass that finds nothing returns ""
// and text unchanged.

var (
	// A digit, at least six digits or separators, and a closing digit.
	phonePattern = regexp.MustCompile(`\+?[0-9][0-9 \t()\-]{6,}[0-9]`)
	// Text ending in a door-number label such as "No:" or "No.".
	doorLabel = regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}])no\s*[:.]?\s*$`)
	// Text ending in a phone label such as "Tel No:" or "GSM No".
	phoneLabel = regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}])(?:tel(?:efon)?|gsm|cep)\.?\s*no\s*[:.]?\s*$`)
	// A phone label anywhere in the text, with or without "No".
	phoneTag = regexp.MustCompile(`(?i)(?:tel(?:efon)?|gsm|cep)\.?(?:\s*no)?\s*[:.]?`)

	payerPattern = regexp.MustCompile(`(?i)ÜA|UA|ÜG|UG`)

	addressRun    = regexp.MustCompile(`[\p{L}\p{M}\p{N}\s.,:/\\\-]+`)
	streetKeyword = regexp.MustCompile(`(?i)mah(?:alle(?:si)?)?|sok(?:ak|ağı)?|cad(?:de(?:si)?)?|numara|no`)

	// Turkish capital İ and dotless ı are not case-folded to i/I by the
	// regexp engine, so both spellings are listed.
	invoiceMarker = regexp.MustCompile(`(?i)fatura|[iİıI]rsal[iİıI]ye`)
	// An invoice marker with an optional reference number: "FATURA NO:123".
	invoiceRef = regexp.MustCompile(`(?i)(?:fatura|[iİıI]rsal[iİıI]ye)(?:\s*no\s*[:.]?\s*[\p{L}\p{N}/\-]*\p{N}[\p{L}\p{N}/\-]*)?`)
	noiseWord  = regexp.MustCompile(`(?i)showroom|tesl[iİıI]mat|fatura|[iİıI]rsal[iİıI]ye|kargo|up`)

	leadingDate = regexp.MustCompile(`^\s*[0-9]{2}\.[0-9]{2}\.[0-9]{4}`)

	// A capital letter followed by letters, spaces, dots or quotes. Tabs and
	// newlines are cell and row separators in spreadsheet pastes and end a run.
	nameRun = regexp.MustCompile(`\p{Lu}[\p{L}\p{M} \x{00A0}."]+`)

	whitespace = regexp.MustCompile(`\s+`)
)

func phonePass(text string) (string, string) {
	for from := 0; from < len(text); {
		loc := phonePattern.FindStringIndex(text[from:])
		if loc == nil {
			break
		}
		start, end := from+loc[0], from+loc[1]
		if next, ok := doorNumber(text, start, end); ok {
			// "No:5 0532 ...": skip the door number and look again.
			from = next
			continue
		}
		return text[start:end], cut(text, start, end)
	}
	return "", text
}

// doorNumber reports whether the phone-shaped run text[start:end] opens with
// a door number glued to the phone after it, as in "No:5 0532 111 22 33".
// It returns the offset just past the door number. A door number has one to
// four digits without a leading zero and must be followed by a run of at
// least seven digits; numbers after a phone label are never door numbers.
func doorNumber(text string, start, end int) (int, bool) {
	head := text[:start]
	if !doorLabel.MatchString(head) || phoneLabel.MatchString(head) {
		return 0, false
	}
	i := start
	for i < end && isDigit(text[i]) {
		i++
	}
	if n := i - start; n == 0 || n > 4 || text[start] == '0' {
		return 0, false
	}
	loc := phonePattern.FindStringIndex(text[i:])
	if loc == nil || digitCount(text[i+loc[0]:i+loc[1]]) < 7 {
		return 0, false
	}
	return i, true
}

func digitCount(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			n++
		}
	}
	return n
}

func payerPass(text string) (string, string) {
	words := wholeWords(payerPattern, text)
	if len(words) == 0 {
		return "", text
	}
	w := words[0]
	return text[w[0]:w[1]], cut(text, w[0], w[1])
}

// addressPass picks the longest address-like run that holds a street
// keyword. Runs break at the leading date, at invoice references, at phone
// labels and at noise words, none of which belong in an address.
func addressPass(text string) (string, string) {
	shadow := []byte(text)
	blank := func(loc []int) {
		for i := loc[0]; i < loc[1]; i++ {
			shadow[i] = 0
		}
	}
	if loc := leadingDate.FindStringIndex(text); loc != nil {
		blank(loc)
	}
	for _, loc := range invoiceRef.FindAllStringIndex(text, -1) {
		blank(loc)
	}
	for _, loc := range wholeWords(phoneTag, text) {
		blank(loc)
	}
	for _, loc := range wholeWords(noiseWord, text) {
		blank(loc)
	}

	bestStart, bestEnd, bestLen := -1, -1, 0
	for _, run := range addressRun.FindAllIndex(shadow, -1) {
		start, end := trimSpan(text, run[0], run[1])
		if start == end || !hasStreetKeyword(text[start:end]) {
			continue
		}
		if n := utf8.RuneCountInString(text[start:end]); n > bestLen {
			bestStart, bestEnd, bestLen = start, end, n
		}
	}
	if bestStart < 0 {
		return "", text
	}
	return collapse(text[bestStart:bestEnd]), cut(text, bestStart, bestEnd)
}

// namePass takes the last proper-noun-like run before the first invoice or
// waybill marker. Earlier runs in that zone are usually labels such as a
// showroom or city name; noise words always end a run.
func namePass(text string) (string, string) {
	marker := invoiceMarker.FindStringIndex(text)
	if marker == nil {
		return "", text
	}
	zone := []byte(text[:marker[0]])
	for _, loc := range wholeWords(noiseWord, text[:marker[0]]) {
		for i := loc[0]; i < loc[1]; i++ {
			zone[i] = 0
		}
	}
	runs := nameRun.FindAllIndex(zone, -1)
	if len(runs) == 0 {
		return "", text
	}
	last := runs[len(runs)-1]
	raw := text[last[0]:last[1]]
	name := strings.TrimSpace(raw)
	start := last[0] + strings.Index(raw, name)
	return name, cut(text, start, start+len(name))
}

// fallbackAddress is used when no street keyword was found: whatever the
// other passes left, minus the date, phone labels and noise words.
func fallbackAddress(text string) string {
	if loc := leadingDate.FindStringIndex(text); loc != nil {
		text = text[loc[1]:]
	}
	for _, re := range []*regexp.Regexp{phoneTag, noiseWord} {
		words := wholeWords(re, text)
		for i := len(words) - 1; i >= 0; i-- {
			text = text[:words[i][0]] + " " + text[words[i][1]:]
		}
	}
	return collapse(text)
}

func hasStreetKeyword(s string) bool {
	for _, loc := range streetKeyword.FindAllStringIndex(s, -1) {
		if loc[0] > 0 {
			r, _ := utf8.DecodeLastRuneInString(s[:loc[0]])
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				continue
			}
		}
		// The keyword must be followed by more address text, and not by a
		// letter ("Mahmut" is not "Mah").
		if loc[1] >= len(s) {
			continue
		}
		if r, _ := utf8.DecodeRuneInString(s[loc[1]:]); unicode.IsLetter(r) {
			continue
		}
		return true
	}
	return false
}

// wholeWords returns the matches of re that are not glued to a letter, mark,
// digit or underscore. regexp's \b only knows ASCII, which misses "ÜA".
func wholeWords(re *regexp.Regexp, text string) [][]int {
	var out [][]int
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if wordBounded(text, loc[0], loc[1]) {
			out = append(out, loc)
		}
	}
	return out
}

func wordBounded(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAddressPad(r rune) bool {
	return unicode.IsSpace(r) || r == ',' || r == '-' || r == '/'
}

// trimSpan narrows text[start:end] to drop surrounding padding.
func trimSpan(text string, start, end int) (int, int) {
	s := text[start:end]
	left := strings.TrimLeftFunc(s, isAddressPad)
	start += len(s) - len(left)
	return start, start + len(strings.TrimRightFunc(left, isAddressPad))
}

func cut(text string, start, end int) string {
	return text[:start] + " " + text[end:]
}

func collapse(s string) string {
	return strings.TrimFunc(whitespace.ReplaceAllString(s, " "), isAddressPad)
}
