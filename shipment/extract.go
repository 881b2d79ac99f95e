package shipment

// Extract reads one shipment block. Passes run in a fixed order (phone,
// payer, address, name, address fallback) and each one only sees what the
// previous passes left. ok reports whether a recipient name was found;
// records without one should not be printed.
func Extract(block RawBlock) (rec Record, ok bool) {
	text := string(block)

	var payer string
	rec.Phone, text = phonePass(text)
	payer, text = payerPass(text)
	rec.Address, text = addressPass(text)
	rec.Name, text = namePass(text)
	if rec.Address == "" {
		rec.Address = fallbackAddress(text)
	}

	rec.Payer = NormalizePayer(payer)
	rec.FinalPayer = DefaultFinalPayer(rec.Payer)
	return rec, rec.Name != ""
}
