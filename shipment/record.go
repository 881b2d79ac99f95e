package shipment

// RawBlock is the trimmed text of a single shipment as cut by [Segment].
type RawBlock string

// PayerCode says who pays the cargo fee on delivery.
type PayerCode int

const (
	// PayerUnknown means no payer token was found or it was not recognised.
	PayerUnknown PayerCode = iota
	// PayerRecipient is "ÜA", ücret alıcı: the recipient pays.
	PayerRecipient
	// PayerSender is "ÜG", ücret gönderici: the sender pays.
	PayerSender
)

// String returns the short code printed on the label badge.
func (c PayerCode) String() string {
	switch c {
	case PayerRecipient:
		return "ÜA"
	case PayerSender:
		return "ÜG"
	default:
		return ""
	}
}

// Title returns the long caption shown next to the short code.
func (c PayerCode) Title() string {
	switch c {
	case PayerRecipient:
		return "Ücret Alıcı"
	case PayerSender:
		return "Ücret Gönderici"
	default:
		return ""
	}
}

// MarshalText encodes the short code.
func (c PayerCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts anything [NormalizePayer] accepts. Unrecognised
// input decodes to PayerUnknown.
func (c *PayerCode) UnmarshalText(text []byte) error {
	*c = NormalizePayer(string(text))
	return nil
}

// MarshalYAML encodes the short code for YAML output.
func (c PayerCode) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// DefaultFinalPayer picks the payer a label is printed with when nobody
// overrides it: the sender only when the text said so, the recipient otherwise.
func DefaultFinalPayer(parsed PayerCode) PayerCode {
	if parsed == PayerSender {
		return PayerSender
	}
	return PayerRecipient
}

// Record is one shipment extracted from pasted text.
type Record struct {
	Name    string `json:"name" yaml:"name"`
	Phone   string `json:"phone" yaml:"phone"`
	Address string `json:"address" yaml:"address"`

	// Payer is what the text said.
	Payer PayerCode `json:"payer" yaml:"payer"`

	// FinalPayer is what gets printed. It starts as DefaultFinalPayer(Payer)
	// and may be overridden by the user.
	FinalPayer PayerCode `json:"final_payer" yaml:"final_payer"`
}
