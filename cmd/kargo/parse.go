package main

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/okang-lab/Kaffesa-Cargo-Print/shipment"
)

type parseOutput struct {
	Records []shipment.Record `json:"records" yaml:"records"`
	Blocks  int               `json:"blocks" yaml:"blocks"`
	Dropped int               `json:"dropped" yaml:"dropped"`
}

func newParseCmd(root *rootOptions) *cobra.Command {
	var (
		format string
		payer  string
	)
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse shipments and print the records",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := root.load(cmd)
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
			out := parseOutput{Records: res.Records, Blocks: res.Blocks, Dropped: res.Dropped}
			if out.Records == nil {
				out.Records = []shipment.Record{}
			}

			w := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			case "yaml":
				b, err := yaml.Marshal(out)
				if err != nil {
					return err
				}
				_, err = w.Write(b)
				return err
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().StringVar(&payer, "payer", "", "set the final payer of every record (ÜA or ÜG)")
	return cmd
}

// overridePayer sets FinalPayer on every record when token is non-empty.
func overridePayer(recs []shipment.Record, token string) error {
	if token == "" {
		return nil
	}
	p := shipment.NormalizePayer(token)
	if p == shipment.PayerUnknown {
		return fmt.Errorf("invalid --payer %q (want ÜA or ÜG)", token)
	}
	for i := range recs {
		recs[i].FinalPayer = p
	}
	return nil
}
