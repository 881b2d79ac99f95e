package shipment

import "strings"

// Validate keeps the records that name a recipient and reports how many
// were dropped.
func Validate(records []Record) (kept []Record, dropped int) {
	kept = make([]Record, 0, len(records))
	for _, r := range records {
		if strings.TrimSpace(r.Name) == "" {
			continue
		}
		kept = append(kept, r)
	}
	return kept, len(records) - len(kept)
}
