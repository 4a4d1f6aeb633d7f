package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/civmods/forceval/internal/model"
)

// Renderer writes comparison reports as JSON, Markdown or a plain table.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer. The footer can be disabled for reports
// embedded in other documents.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report to path as indented JSON.
func (r *Renderer) RenderJSON(report *model.ComparisonReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes the report to path as a Markdown document.
func (r *Renderer) RenderMarkdown(report *model.ComparisonReport, path string) error {
	var b strings.Builder

	b.WriteString("# Force Rating Comparison\n\n")
	fmt.Fprintf(&b, "- Corpus: %s\n", report.UnitsURL)
	fmt.Fprintf(&b, "- Reference: %s\n", report.ReferenceURL)
	fmt.Fprintf(&b, "- Fetched: %s\n\n", report.FetchedAt.Format("2006-01-02 15:04:05 UTC"))

	fmt.Fprintf(&b, "**%d units, mean |Δ| %.2f, max |Δ| %.2f (%s), %.0f%% within 5%%**\n\n",
		report.Summary.Units, report.Summary.MeanAbsDelta, report.Summary.MaxAbsDelta,
		report.Summary.WorstUnit, report.Summary.WithinPercent*100)

	b.WriteString("| Unit | Documented | Computed | Delta |\n")
	b.WriteString("|------|-----------:|---------:|------:|\n")
	for _, row := range report.Rows {
		if row.Missing {
			fmt.Fprintf(&b, "| %s | %.0f | missing | — |\n", row.Name, row.Expected)
			continue
		}
		fmt.Fprintf(&b, "| %s | %.0f | %.2f | %+.2f |\n", row.Name, row.Expected, row.Computed, row.Delta)
	}

	if report.LLM != nil && report.LLM.Enabled && report.LLM.SummaryMD != "" {
		b.WriteString("\n## Summary\n\n")
		b.WriteString(report.LLM.SummaryMD)
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("\n---\n*Generated by forceval*\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// WriteText prints the report as an aligned plain-text table.
func (r *Renderer) WriteText(w io.Writer, report *model.ComparisonReport) {
	fmt.Fprintf(w, "%-40s %10s %12s %10s\n", "Unit", "Documented", "Computed", "Delta")
	fmt.Fprintln(w, strings.Repeat("-", 76))

	for _, row := range report.Rows {
		if row.Missing {
			fmt.Fprintf(w, "%-40s %10.2f %12s %10s\n", row.Name, row.Expected, "MISSING", "N/A")
			continue
		}
		fmt.Fprintf(w, "%-40s %10.2f %12.2f %10.2f\n", row.Name, row.Expected, row.Computed, row.Delta)
	}

	fmt.Fprintln(w, strings.Repeat("-", 76))
	fmt.Fprintf(w, "units: %d  missing: %d  mean |delta|: %.2f  max |delta|: %.2f (%s)\n",
		report.Summary.Units, report.Summary.Missing, report.Summary.MeanAbsDelta,
		report.Summary.MaxAbsDelta, report.Summary.WorstUnit)
}
