package kargo_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	kargo "github.com/okang-lab/Kaffesa-Cargo-Print"
	"github.com/okang-lab/Kaffesa-Cargo-Print/label"
	"github.com/okang-lab/Kaffesa-Cargo-Print/shipment"
)

// chromeAvailable reports whether a Chrome/Chromium executable is in PATH.
func chromeAvailable() bool {
	for _, name := range []string{
		"chromium-browser", "chromium", "google-chrome",
		"google-chrome-stable", "chrome",
	} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

func skipIfNoChrome(t *testing.T) {
	t.Helper()
	if !chromeAvailable() {
		t.Skip("skipping: Chrome/Chromium not found in PATH")
	}
}

func newTestConverter(t *testing.T) *kargo.Converter {
	t.Helper()
	skipIfNoChrome(t)
	c, err := kargo.NewConverter(kargo.WithNoSandbox())
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

// isPDF checks whether data starts with the PDF magic number.
func isPDF(data []byte) bool {
	return len(data) > 4 && string(data[:5]) == "%PDF-"
}

func TestConvertHTML_Basic(t *testing.T) {
	c := newTestConverter(t)

	res, err := c.ConvertHTML(context.Background(), "<h1>Merhaba Dünya</h1>", nil)
	if err != nil {
		t.Fatalf("ConvertHTML: %v", err)
	}
	if !isPDF(res.Bytes()) {
		t.Fatal("output is not a valid PDF")
	}
	if res.Len() < 100 {
		t.Errorf("PDF unexpectedly small: %d bytes", res.Len())
	}
}

func TestPrinter_AllSizes(t *testing.T) {
	c := newTestConverter(t)
	recs := shipment.Parse("07.10.2025 GÖKBERK ÇIRAKOĞLU FATURA NO:123 Adalet Mah. Sok No:5 0532 111 22 33 ÜA").Records
	if len(recs) != 1 {
		t.Fatalf("parsed %d records, want 1", len(recs))
	}

	for _, size := range label.Sizes {
		t.Run(string(size), func(t *testing.T) {
			p := kargo.NewPrinter(c, label.Sheet{Size: size})
			res, err := p.LabelPDF(context.Background(), recs[0])
			if err != nil {
				t.Fatalf("LabelPDF: %v", err)
			}
			if !isPDF(res.Bytes()) {
				t.Fatal("output is not a valid PDF")
			}
		})
	}
}

func TestPrinter_BulkPDF(t *testing.T) {
	c := newTestConverter(t)
	p := kargo.NewPrinter(c, label.DefaultSheet())

	recs := []shipment.Record{
		{Name: "Ali Veli", FinalPayer: shipment.PayerRecipient},
		{Name: "Ayşe Demir", FinalPayer: shipment.PayerSender},
	}
	res, err := p.BulkPDF(context.Background(), recs)
	if err != nil {
		t.Fatalf("BulkPDF: %v", err)
	}
	if !isPDF(res.Bytes()) {
		t.Fatal("output is not a valid PDF")
	}
	if res.Filename() != "etiketler_toplu.pdf" {
		t.Errorf("filename = %q", res.Filename())
	}
}

func TestConverter_CloseIdempotent(t *testing.T) {
	skipIfNoChrome(t)

	c, err := kargo.NewConverter(kargo.WithNoSandbox())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestConverter_UsedAfterClose(t *testing.T) {
	skipIfNoChrome(t)

	c, err := kargo.NewConverter(kargo.WithNoSandbox())
	if err != nil {
		t.Fatal(err)
	}
	c.Close()

	_, err = c.ConvertHTML(context.Background(), "<p>test</p>", nil)
	if !errors.Is(err, kargo.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestConvertHTML_CanceledContext(t *testing.T) {
	c := newTestConverter(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.ConvertHTML(ctx, "<p>late</p>", nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestConvertHTML_PackageLevel(t *testing.T) {
	skipIfNoChrome(t)

	res, err := kargo.ConvertHTML(
		context.Background(),
		"<p>Package-level function</p>",
		nil,
		kargo.WithNoSandbox(),
	)
	if err != nil {
		t.Fatalf("ConvertHTML: %v", err)
	}
	if !isPDF(res.Bytes()) {
		t.Fatal("output is not a valid PDF")
	}
}
