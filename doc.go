// Package kargo turns pasted shipment lists into printable cargo labels.
//
// Parsing lives in the shipment package and HTML layout in the label
// package. This package renders those labels to PDF with headless Chrome
// (Chrome DevTools Protocol).
//
// Create a [Converter] once and reuse it; it keeps one browser process:
//
//	c, err := kargo.NewConverter(kargo.WithNoSandbox())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
// A [Printer] pairs a converter with the label sheet settings:
//
//	p := kargo.NewPrinter(c, label.DefaultSheet())
//	res, err := p.BulkPDF(ctx, shipment.Parse(text).Records)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res.WriteToFile(res.Filename(), 0o644) // etiketler_toplu.pdf
//
// [Printer.PrintHTML] writes the same labels as an HTML document that opens
// the browser print dialog instead.
//
// Chrome or Chromium must be available in PATH, or use [WithAutoDownload]:
//
//	c, err := kargo.NewConverter(kargo.WithAutoDownload())
package kargo
