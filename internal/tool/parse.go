// Package tool exposes the shipment parser as an MCP tool.
package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/okang-lab/Kaffesa-Cargo-Print/shipment"
)

// MetadataParseShipments describes the parse_shipments tool.
var MetadataParseShipments = &mcp.Tool{
	Name: "parse_shipments",
	Description: "Parse a pasted Turkish shipment list (one shipment per line, each starting with a " +
		"DD.MM.YYYY date) into cargo label records. Each record has the recipient name, phone, " +
		"address, the payer token found in the text (ÜA = recipient pays, ÜG = sender pays, empty " +
		"when absent) and the final payer used on the label. Blocks without a recipient name are " +
		"dropped and counted.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"text"},
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "Raw pasted text, for example rows copied from a spreadsheet",
			},
		},
	},
}

// InputParseShipments is the input for the ParseShipments tool.
type InputParseShipments struct {
	Text string `json:"text"`
}

// RecordView is a record with its payer codes spelled out.
type RecordView struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Payer      string `json:"payer"`
	FinalPayer string `json:"final_payer"`
}

// OutputParseShipments is the output for the ParseShipments tool.
type OutputParseShipments struct {
	Records []RecordView `json:"records"`
	// Blocks is the number of date-anchored blocks found.
	Blocks int `json:"blocks"`
	// Dropped counts blocks that yielded no recipient name.
	Dropped int `json:"dropped"`
}

// ParseShipments runs the shipment parser over the given text. Text without
// shipments gives an empty record list, not an error.
func ParseShipments(_ context.Context, _ *mcp.CallToolRequest, input InputParseShipments) (*mcp.CallToolResult, OutputParseShipments, error) {
	res := shipment.Parse(input.Text)
	out := OutputParseShipments{
		Records: make([]RecordView, len(res.Records)),
		Blocks:  res.Blocks,
		Dropped: res.Dropped,
	}
	for i, r := range res.Records {
		out.Records[i] = RecordView{
			Name:       r.Name,
			Phone:      r.Phone,
			Address:    r.Address,
			Payer:      r.Payer.String(),
			FinalPayer: r.FinalPayer.String(),
		}
	}
	return nil, out, nil
}

// NewServer returns an MCP server with every tool registered.
func NewServer(version string) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: "kargo", Version: version}, nil)
	mcp.AddTool(srv, MetadataParseShipments, ParseShipments)
	return srv
}
