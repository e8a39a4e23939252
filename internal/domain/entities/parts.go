package entities

import (
	"encoding/json"
	"strconv"
)

// PartLine is one normalized line of the free-text parts list a user typed on
// a service job.
type PartLine struct {
	Name      string  `json:"name"`
	Qty       float64 `json:"qty"`
	Price     float64 `json:"price"`
	LineTotal float64 `json:"line_total"`
}

const fallbackPartName = "Part"

// ParseParts turns the serialized parts_used payload into normalized line
// items. It is a best-effort normalizer: users paste this field by hand, so
// alternate key spellings are accepted and anything malformed degrades to an
// empty list instead of failing. Invoice generation must never break on a
// badly typed parts field.
//
// Accepted aliases: name|part|description, qty|quantity|count (default 1),
// price|unitPrice|cost (default 0).
func ParseParts(raw string) []PartLine {
	if raw == "" {
		return []PartLine{}
	}

	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []PartLine{}
	}

	lines := make([]PartLine, 0, len(items))
	for _, entry := range items {
		// Loose elements (a bare string, a number) still count as a line;
		// they just normalize to the placeholder name and defaults.
		item, _ := entry.(map[string]any)
		name := firstString(item, "name", "part", "description")
		if name == "" {
			name = fallbackPartName
		}
		qty := firstNumber(item, 1, "qty", "quantity", "count")
		price := firstNumber(item, 0, "price", "unitPrice", "cost")

		lines = append(lines, PartLine{
			Name:      name,
			Qty:       qty,
			Price:     price,
			LineTotal: qty * price,
		})
	}
	return lines
}

// PartsTotal sums the line totals for the parts subtotal of an invoice.
func PartsTotal(lines []PartLine) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.LineTotal
	}
	return total
}

func firstString(item map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := item[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func firstNumber(item map[string]any, def float64, keys ...string) float64 {
	for _, key := range keys {
		v, ok := item[key]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			if n == safeAmount(n) {
				return n
			}
		case string:
			if parsed, err := strconv.ParseFloat(n, 64); err == nil && parsed == safeAmount(parsed) {
				return parsed
			}
		}
		// Present but not usable; coerce to the safe default.
		return def
	}
	return def
}
