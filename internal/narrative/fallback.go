package narrative

import (
	"fmt"
	"strings"

	"github.com/jonathan/quote-insights/internal/types"
)

// maxFallbackNames bounds how many distinct item names the fallback lists.
const maxFallbackNames = 6

// FallbackSummary deterministically constructs a summary from the first six
// distinct item names, the total item count, and the formatted total value.
// Pure, no external dependency; this is the strategy that can never fail.
func FallbackSummary(input types.QuoteNarrative) string {
	seen := make(map[string]bool)
	var names []string
	count := 0
	for _, item := range input.Items {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		count += quantity
		name := item.Name
		if name == "" {
			name = "product"
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	nameStr := "the specified products"
	if len(names) > 0 {
		shown := names
		suffix := ""
		if len(names) > maxFallbackNames {
			shown = names[:maxFallbackNames]
			suffix = "..."
		}
		nameStr = strings.Join(shown, ", ") + suffix
	}

	return fmt.Sprintf(
		"This quotation for %s covers supply and installation of %d item type(s) (%s) with a total value of $%s. "+
			"The scope includes site verification, fabrication to final measurements, and installation aligned with Reliant Windows standards.",
		input.CustomerName, count, nameStr, formatMoney(input.TotalAmount),
	)
}
