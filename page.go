package kargo

import "github.com/okang-lab/Kaffesa-Cargo-Print/label"

// PageSize represents paper dimensions in centimeters.
type PageSize struct {
	Width  float64 // Width in centimeters.
	Height float64 // Height in centimeters.
}

// Label page sizes.
var (
	A4         = PageSize{Width: 21.0, Height: 29.7}
	A5         = PageSize{Width: 14.8, Height: 21.0}
	Label10x15 = PageSize{Width: 10.0, Height: 15.0}
)

// PageSizeOf returns the paper size matching a label size.
func PageSizeOf(s label.Size) PageSize {
	w, h := s.Dimensions()
	return PageSize{Width: w, Height: h}
}

// Orientation represents the page orientation.
type Orientation int

const (
	// Portrait is the default vertical orientation.
	Portrait Orientation = iota
	// Landscape rotates the page to horizontal orientation.
	Landscape
)

// Margin represents page margins in centimeters.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformMargin returns a Margin with the same value on all sides.
func UniformMargin(cm float64) Margin {
	return Margin{Top: cm, Right: cm, Bottom: cm, Left: cm}
}

// PageConfig controls the PDF output parameters.
//
// A nil PageConfig or zero-value fields fall back to A4 paper, portrait
// orientation, 1 cm margins and scale 1.0.
type PageConfig struct {
	// Size specifies the paper size. Defaults to A4.
	Size PageSize

	// Orientation specifies portrait or landscape. Defaults to Portrait.
	Orientation Orientation

	// Margin specifies page margins in centimeters. Defaults to 1 cm on all sides.
	Margin Margin

	// Scale of the rendering. Must be between 0.1 and 2.0. Defaults to 1.0.
	Scale float64

	// PrintBackground keeps background colours, which the payer badge needs.
	PrintBackground bool

	// PreferCSSPageSize gives precedence to the document's @page rule
	// over the Size field.
	PreferCSSPageSize bool
}

// DefaultPageConfig returns a PageConfig with the default values.
func DefaultPageConfig() PageConfig {
	return PageConfig{
		Size:            A4,
		Orientation:     Portrait,
		Margin:          UniformMargin(1.0),
		Scale:           1.0,
		PrintBackground: true,
	}
}

// LabelPageConfig returns the page setup for a label sheet: the sheet's
// paper size, with the @page rule in the rendered HTML taking precedence.
func LabelPageConfig(sheet label.Sheet) PageConfig {
	return PageConfig{
		Size:              PageSizeOf(sheet.Size),
		Orientation:       Portrait,
		Margin:            UniformMargin(0.8),
		Scale:             1.0,
		PrintBackground:   true,
		PreferCSSPageSize: true,
	}
}

// resolved returns a PageConfig with all zero values replaced by defaults.
func (p *PageConfig) resolved() PageConfig {
	d := DefaultPageConfig()
	if p == nil {
		return d
	}
	r := *p
	if r.Size == (PageSize{}) {
		r.Size = d.Size
	}
	if r.Scale <= 0 {
		r.Scale = d.Scale
	}
	if r.Margin == (Margin{}) {
		r.Margin = d.Margin
	}
	return r
}

func cmToInches(cm float64) float64 {
	return cm / 2.54
}

// paperDimensions returns the paper width and height in inches,
// accounting for orientation.
func (p *PageConfig) paperDimensions() (width, height float64) {
	r := p.resolved()
	w := cmToInches(r.Size.Width)
	h := cmToInches(r.Size.Height)
	if r.Orientation == Landscape {
		return h, w
	}
	return w, h
}

// marginInches returns margins converted to inches.
func (p *PageConfig) marginInches() (top, right, bottom, left float64) {
	r := p.resolved()
	return cmToInches(r.Margin.Top),
		cmToInches(r.Margin.Right),
		cmToInches(r.Margin.Bottom),
		cmToInches(r.Margin.Left)
}
