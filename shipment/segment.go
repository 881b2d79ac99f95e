package shipment

import (
	"regexp"
	"strings"
)

// dateAnchor marks the start of a shipment: DD.MM.YYYY at the beginning of a
// line. Delimiters are not used for splitting because commas, tabs and
// semicolons turn up inside names and addresses.
var dateAnchor = regexp.MustCompile(`(?m)^[ \t]*[0-9]{2}\.[0-9]{2}\.[0-9]{4}`)

// Segment cuts text into shipment blocks, in input order. The text is split
// right before every date anchor; blocks are trimmed and empty ones dropped.
// Text without any anchor comes back as a single block. Expects text already
// passed through [NormalizeText].
func Segment(text string) []RawBlock {
	anchors := dateAnchor.FindAllStringIndex(text, -1)

	cuts := make([]int, 0, len(anchors)+2)
	cuts = append(cuts, 0)
	for _, a := range anchors {
		if a[0] > 0 {
			cuts = append(cuts, a[0])
		}
	}
	cuts = append(cuts, len(text))

	var blocks []RawBlock
	for i := 0; i+1 < len(cuts); i++ {
		b := strings.TrimSpace(text[cuts[i]:cuts[i+1]])
		if b != "" {
			blocks = append(blocks, RawBlock(b))
		}
	}
	return blocks
}
