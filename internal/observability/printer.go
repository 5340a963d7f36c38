// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/quote-insights/internal/pricing"
	"github.com/jonathan/quote-insights/internal/segmentation"
)

// Printer handles formatted output for the CLI commands.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintSegments outputs the segmentation report as a fixed-width table.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSegments(rows []segmentation.Assignment) {
	if len(rows) == 0 {
		fmt.Fprintln(p.out, "No customers to segment.")
		return
	}

	header := fmt.Sprintf("%-6s %-24s %-20s %8s %12s %12s %10s",
		"ID", "Customer", "Segment", "Quotes", "Total", "Avg", "Days")
	fmt.Fprintln(p.out, header)
	fmt.Fprintln(p.out, strings.Repeat("-", len(header)))
	for _, r := range rows {
		fmt.Fprintf(p.out, "%-6d %-24s %-20s %8d %12.2f %12.2f %10d\n",
			r.CustomerID, truncate(r.CustomerName, 24), truncate(r.Segment, 20),
			r.TotalQuotes, r.TotalValue, r.AvgValue, r.DaysSinceLast)
	}
}

// PrintPrediction outputs the predicted total for a draft quote.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintPrediction(itemCount int, total float64) {
	fmt.Fprintf(p.out, "Predicted total for %d line(s): $%.2f\n", itemCount, total)
}

// PrintArtifact outputs a short description of a trained price model.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintArtifact(a *pricing.Artifact) {
	fmt.Fprintf(p.out, "Model %s trained %s over %d rows (%d categories)\n",
		a.ModelID, a.TrainedAt.Format("2006-01-02 15:04:05"), a.RowCount, len(a.Categories))
}

// truncate shortens s to at most n runes, appending "..." when cut.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
