package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	kargo "github.com/okang-lab/Kaffesa-Cargo-Print"
	"github.com/okang-lab/Kaffesa-Cargo-Print/label"
	"github.com/okang-lab/Kaffesa-Cargo-Print/shipment"
)

func newLabelsCmd(root *rootOptions) *cobra.Command {
	var (
		outDir string
		bulk   bool
		asHTML bool
		payer  string
		size   string
	)
	cmd := &cobra.Command{
		Use:   "labels [file]",
		Short: "Render cargo labels as PDF or printable HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.load(cmd)
			if err != nil {
				return err
			}
			if size != "" {
				cfg.Label.Size = size
			}
			sheet, err := cfg.Sheet()
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			res := shipment.NewParser(shipment.WithLogger(logger)).Parse(text)
			if err := overridePayer(res.Records, payer); err != nil {
				return err
			}
			if len(res.Records) == 0 {
				return kargo.ErrNoRecords
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			var conv kargo.HTMLConverter
			if !asHTML {
				c, err := kargo.NewConverter(cfg.ConverterOptions()...)
				if err != nil {
					return err
				}
				defer c.Close()
				conv = c
			}
			p := kargo.NewPrinter(conv, sheet)
			names := newNamer()

			var written []string
			write := func(name string, data []byte) error {
				path := filepath.Join(outDir, names.unique(name))
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return err
				}
				written = append(written, path)
				return nil
			}

			switch {
			case asHTML && bulk:
				var buf bytes.Buffer
				if err := p.PrintHTML(&buf, res.Records); err != nil {
					return err
				}
				err = write(strings.TrimSuffix(label.BulkFilename, ".pdf")+".html", buf.Bytes())
			case asHTML:
				for _, rec := range res.Records {
					var buf bytes.Buffer
					if err = p.PrintHTML(&buf, []shipment.Record{rec}); err != nil {
						break
					}
					if err = write(strings.TrimSuffix(label.Filename(rec.Name), ".pdf")+".html", buf.Bytes()); err != nil {
						break
					}
				}
			case bulk:
				var r *kargo.Result
				if r, err = p.BulkPDF(cmd.Context(), res.Records); err == nil {
					err = write(r.Filename(), r.Bytes())
				}
			default:
				for _, rec := range res.Records {
					var r *kargo.Result
					if r, err = p.LabelPDF(cmd.Context(), rec); err != nil {
						break
					}
					if err = write(r.Filename(), r.Bytes()); err != nil {
						break
					}
				}
			}
			if err != nil {
				return err
			}

			logger.Info("labels written", "files", len(written), "records", len(res.Records), "dropped", res.Dropped)
			for _, path := range written {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().BoolVar(&bulk, "bulk", false, "write every label into one document")
	cmd.Flags().BoolVar(&asHTML, "html", false, "write browser-printable HTML instead of PDF")
	cmd.Flags().StringVar(&payer, "payer", "", "set the final payer of every record (ÜA or ÜG)")
	cmd.Flags().StringVar(&size, "size", "", "label size: A4, A5 or 100x150")
	return cmd
}

// namer keeps file names unique within one run.
type namer map[string]int

func newNamer() namer { return namer{} }

func (n namer) unique(name string) string {
	n[name]++
	if c := n[name]; c > 1 {
		ext := filepath.Ext(name)
		return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(name, ext), c, ext)
	}
	return name
}
