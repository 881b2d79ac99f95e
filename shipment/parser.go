package shipment

import "log/slog"

// Parser runs the full pipeline: normalise, segment, extract, validate.
// A Parser holds no per-run state and is safe for concurrent use.
type Parser struct {
	logger *slog.Logger
}

// Option configures a [Parser].
type Option func(*Parser)

// WithLogger sets the logger dropped blocks are reported to, at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewParser creates a Parser with the given options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{logger: slog.New(slog.DiscardHandler)}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Result is the outcome of one parse.
type Result struct {
	// Records holds the shipments that named a recipient, in input order.
	Records []Record
	// Blocks is the number of blocks the segmenter produced.
	Blocks int
	// Dropped counts blocks that yielded no recipient name.
	Dropped int
}

// Parse extracts every shipment from pasted text. Empty or unusable input
// gives an empty Result, never an error.
func (p *Parser) Parse(text string) Result {
	blocks := Segment(NormalizeText(text))

	extracted := make([]Record, 0, len(blocks))
	for i, b := range blocks {
		rec, ok := Extract(b)
		if !ok {
			p.logger.Debug("shipment block has no recipient name", "block", i, "bytes", len(b))
		}
		extracted = append(extracted, rec)
	}

	kept, dropped := Validate(extracted)
	p.logger.Debug("shipment text parsed", "blocks", len(blocks), "records", len(kept), "dropped", dropped)
	return Result{Records: kept, Blocks: len(blocks), Dropped: dropped}
}

// Parse runs a default [Parser] over text.
func Parse(text string) Result {
	return NewParser().Parse(text)
}
