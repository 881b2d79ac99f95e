package label

import (
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/okang-lab/Kaffesa-Cargo-Print/shipment"
)

// ErrEmpty is returned when there is nothing to render.
var ErrEmpty = errors.New("label: no labels to render")

// Label is the content of one printed page.
type Label struct {
	Name    string
	Address string
	Phone   string
	// Payer is the short badge text, "ÜA" or "ÜG".
	Payer string
}

// FromRecord builds a Label from a parsed record. The badge shows the
// record's final payer.
func FromRecord(rec shipment.Record) Label {
	return Label{
		Name:    rec.Name,
		Address: rec.Address,
		Phone:   rec.Phone,
		Payer:   rec.FinalPayer.String(),
	}
}

// FromRecords converts records in order.
func FromRecords(recs []shipment.Record) []Label {
	out := make([]Label, len(recs))
	for i, r := range recs {
		out[i] = FromRecord(r)
	}
	return out
}

type renderConfig struct {
	autoPrint bool
}

// RenderOption tweaks a single [RenderHTML] call.
type RenderOption func(*renderConfig)

// WithAutoPrint adds a script that opens the browser print dialog once the
// document has loaded.
func WithAutoPrint() RenderOption {
	return func(c *renderConfig) {
		c.autoPrint = true
	}
}

type document struct {
	Title     string
	PageCSS   template.CSS
	PillFont  int
	PillPadV  int
	PillPadH  int
	Logo      template.URL
	Sender    string
	Labels    []Label
	Paged     bool
	AutoPrint bool
}

// RenderHTML writes one HTML document with a page per label.
func RenderHTML(w io.Writer, sheet Sheet, labels []Label, opts ...RenderOption) error {
	if len(labels) == 0 {
		return ErrEmpty
	}
	var cfg renderConfig
	for _, o := range opts {
		o(&cfg)
	}

	scale := sheet.Scale()
	doc := document{
		Title:     "Etiket",
		PageCSS:   template.CSS(sheet.Size.CSS()),
		PillFont:  int(22 * scale),
		PillPadV:  int(6 * scale),
		PillPadH:  int(14 * scale),
		Sender:    sheet.Sender,
		Labels:    labels,
		Paged:     len(labels) > 1,
		AutoPrint: cfg.autoPrint,
	}
	if doc.Paged {
		doc.Title = "Toplu Etiket Yazdır"
	}
	if len(sheet.Logo) > 0 {
		doc.Logo = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(sheet.Logo))
	}

	if err := labelTemplate.Execute(w, doc); err != nil {
		return fmt.Errorf("label: rendering html: %w", err)
	}
	return nil
}

var labelTemplate = template.Must(template.New("label").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
{{.PageCSS}}
body{font-family:Arial,sans-serif;margin:0;padding:0;-webkit-print-color-adjust:exact;print-color-adjust:exact;}
.frame{border:1px solid #000;padding:8mm;margin:8mm;position:relative;}
.pill{position:absolute;top:8mm;right:8mm;font-weight:800;font-size:{{.PillFont}}px;color:#fff;background:#d00;padding:{{.PillPadV}}px {{.PillPadH}}px;border-radius:10px;}
.head{display:flex;align-items:center;gap:8mm;margin-bottom:6mm;}
.head img{height:auto;width:30mm;object-fit:contain;margin-right:8mm;}
.sec{font-weight:700;margin-top:6mm;font-size:15px;}
.r-name{font-size:28px;font-weight:700;margin:4mm 0;}
.r-addr{font-size:18px;line-height:1.35;white-space:pre-wrap;}
.r-phone{font-size:16px;margin:2mm 0;}
.s-label{font-size:16px;margin-top:10mm;font-weight:700;}
.s-body{font-size:14px;white-space:pre-wrap;line-height:1.45;}
.page{page-break-after:always;}
</style>
</head>
<body>
{{- range .Labels}}
<div class="frame{{if $.Paged}} page{{end}}">
<div class="pill">{{.Payer}}</div>
<div class="head">{{if $.Logo}}<img src="{{$.Logo}}" alt="logo">{{end}}</div>
<div class="sec">ALICI</div>
<div class="r-name">{{.Name}}</div>
<div class="r-addr">{{.Address}}</div>
<div class="r-phone">Tel: {{.Phone}}</div>
<div class="s-label">Gönderici</div>
<div class="s-body">{{$.Sender}}</div>
</div>
{{- end}}
{{- if .AutoPrint}}
<script>window.onload=function(){try{window.focus();setTimeout(function(){window.print();},120);}catch(e){console.error(e);}};</script>
{{- end}}
</body>
</html>
`))
