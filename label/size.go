package label

import "strings"

// Size names a label page format.
type Size string

// Supported label sizes.
const (
	A4        Size = "A4"
	A5        Size = "A5"
	Size10x15 Size = "100x150"
)

// Sizes lists every supported size in display order.
var Sizes = []Size{A4, A5, Size10x15}

// ParseSize maps a user supplied name onto a Size. Names are matched case
// insensitively; anything unrecognised falls back to A5.
func ParseSize(name string) Size {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "A4":
		return A4
	case "100X150", "100X150MM", "10X15":
		return Size10x15
	default:
		return A5
	}
}

// CSS returns the @page rule for the size.
func (s Size) CSS() string {
	switch s {
	case A4:
		return "@page { size: A4; margin: 10mm; }"
	case Size10x15:
		return "@page { size: 100mm 150mm; margin: 8mm; }"
	default:
		return "@page { size: A5; margin: 8mm; }"
	}
}

// Dimensions returns the page width and height in centimetres.
func (s Size) Dimensions() (width, height float64) {
	switch s {
	case A4:
		return 21.0, 29.7
	case Size10x15:
		return 10.0, 15.0
	default:
		return 14.8, 21.0
	}
}
