package shipment

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// payerTokens is the whole normalisation table. Keys are NFKC, lower-cased
// and space-free.
var payerTokens = map[string]PayerCode{
	"üa": PayerRecipient,
	"ua": PayerRecipient,
	"üg": PayerSender,
	"ug": PayerSender,
}

// NormalizePayer maps a raw payer token to a PayerCode. Tokens with or
// without the dotted Ü, in any case and with stray spaces, are folded
// together; anything else, including "", is PayerUnknown.
func NormalizePayer(token string) PayerCode {
	t := norm.NFKC.String(token)
	t = strings.ToLower(strings.TrimSpace(t))
	t = strings.ReplaceAll(t, " ", "")
	return payerTokens[t]
}
