// Package narrative builds textual quote descriptions: a deterministic source
// text, an optional learned compression step, and a pure template fallback
// that can never fail.
package narrative

import (
	"fmt"
	"strings"

	"github.com/jonathan/quote-insights/internal/types"
)

// scopeSentence is the fixed boilerplate appended to every source description.
const scopeSentence = "Scope includes supply and installation to Reliant Windows standards, " +
	"final site measurements prior to fabrication, and warranty-backed workmanship."

// BuildSourceText renders the deterministic description the learned step
// compresses: customer, formatted total, one line per item, boilerplate scope.
func BuildSourceText(input types.QuoteNarrative) string {
	lines := []string{
		fmt.Sprintf("Customer: %s.", input.CustomerName),
		fmt.Sprintf("Total quoted amount: $%s.", formatMoney(input.TotalAmount)),
		"Items:",
	}
	for i, item := range input.Items {
		name := item.Name
		if name == "" {
			name = "Item"
		}
		category := item.Category
		if category == "" {
			category = "General"
		}
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		lines = append(lines, fmt.Sprintf("- %d. %s (%s), Qty: %d, Size: %s", i+1, name, category, quantity, formatDims(item)))
	}
	lines = append(lines, scopeSentence)
	return strings.Join(lines, " ")
}

// formatDims renders "W.WWft x H.HHft", or "N/A" when either dimension is
// absent.
func formatDims(item types.LineItem) string {
	if item.WidthFt == nil || item.HeightFt == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2fft x %.2fft", *item.WidthFt, *item.HeightFt)
}

// formatMoney renders an amount with comma thousands grouping and two
// decimals, e.g. 1234567.5 -> "1,234,567.50".
func formatMoney(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var sb strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		sb.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(intPart[i : i+3])
	}
	out := sb.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}
