// Package shipment turns pasted shipment text into structured records.
//
// Text copied from a spreadsheet or typed freely is split into one block per
// shipment, using a DD.MM.YYYY date at the start of a line as the anchor:
//
//	07.10.2025 GÖKBERK ÇIRAKOĞLU FATURA NO:123 Adalet Mah. Sok No:5 0532 111 22 33 ÜA
//	08.10.2025 Ayşe Demir İRSALİYE Gül Sok. No:3 Çankaya 0216 444 55 66 ug
//
// Each block then goes through ordered extraction passes. Every pass claims
// the text it matched so later passes cannot read it again:
//
//  1. phone: a run of at least eight characters counting separators, that
//     starts and ends with a digit and has only digits, spaces, hyphens and
//     parentheses inside; a door number glued in front ("No:5 0532 ...") is
//     skipped
//  2. payer: the whole word ÜA, UA, ÜG or UG in any case
//  3. address: the longest address-like run holding a street keyword
//     (Mah, Sok, Cad, No)
//  4. name: the last proper-noun-like run before FATURA or İRSALİYE
//  5. address fallback: whatever is left once dates and noise words are gone
//
// Blocks that yield no name are dropped. Nothing in the pipeline returns an
// error; a missing field is simply empty.
//
//	res := shipment.Parse(pasted)
//	for _, r := range res.Records {
//	    fmt.Println(r.Name, r.Phone, r.Address, r.Payer)
//	}
//	fmt.Println(res.Dropped, "blocks without a recipient")
package shipment
