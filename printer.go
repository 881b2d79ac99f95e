package kargo

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/okang-lab/Kaffesa-Cargo-Print/label"
	"github.com/okang-lab/Kaffesa-Cargo-Print/shipment"
)

// HTMLConverter turns an HTML document into a PDF. [*Converter]
// implements it.
type HTMLConverter interface {
	ConvertHTML(ctx context.Context, html string, pg *PageConfig) (*Result, error)
}

// Printer renders shipment labels on a fixed sheet setup.
type Printer struct {
	conv  HTMLConverter
	sheet label.Sheet
}

// NewPrinter returns a Printer that renders PDFs through conv.
func NewPrinter(conv HTMLConverter, sheet label.Sheet) *Printer {
	return &Printer{conv: conv, sheet: sheet}
}

// Sheet returns the label settings the Printer uses.
func (p *Printer) Sheet() label.Sheet {
	return p.sheet
}

// LabelPDF renders a single label. The result is named after the recipient.
func (p *Printer) LabelPDF(ctx context.Context, rec shipment.Record) (*Result, error) {
	res, err := p.render(ctx, []shipment.Record{rec})
	if err != nil {
		return nil, err
	}
	res.filename = label.Filename(rec.Name)
	return res, nil
}

// BulkPDF renders one page per record, in order, into a single document.
func (p *Printer) BulkPDF(ctx context.Context, recs []shipment.Record) (*Result, error) {
	res, err := p.render(ctx, recs)
	if err != nil {
		return nil, err
	}
	res.filename = label.BulkFilename
	return res, nil
}

// PrintHTML writes a browser-printable document that opens the print
// dialog on load.
func (p *Printer) PrintHTML(w io.Writer, recs []shipment.Record) error {
	if len(recs) == 0 {
		return ErrNoRecords
	}
	return label.RenderHTML(w, p.sheet, label.FromRecords(recs), label.WithAutoPrint())
}

func (p *Printer) render(ctx context.Context, recs []shipment.Record) (*Result, error) {
	if len(recs) == 0 {
		return nil, ErrNoRecords
	}

	var buf bytes.Buffer
	if err := label.RenderHTML(&buf, p.sheet, label.FromRecords(recs)); err != nil {
		return nil, err
	}

	pg := LabelPageConfig(p.sheet)
	res, err := p.conv.ConvertHTML(ctx, buf.String(), &pg)
	if err != nil {
		return nil, fmt.Errorf("kargo: rendering %d label(s): %w", len(recs), err)
	}
	return res, nil
}
