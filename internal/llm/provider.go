// Package llm generates an optional natural-language read of a comparison
// report. The summary never feeds back into any computed number.
package llm

import (
	"context"
	"fmt"

	"github.com/civmods/forceval/internal/model"
)

// Provider is a chat-completion backend.
type Provider interface {
	Name() string
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)
}

// SummarizeRequest is the input for report summarization.
type SummarizeRequest struct {
	Report    *model.ComparisonReport
	Model     string
	MaxTokens int
}

// SummarizeResponse is the provider's output.
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// BuildPrompt renders the comparison report into the summarization prompt.
// Only aggregate numbers and the worst offenders go in, to keep token use
// bounded on large corpora.
func BuildPrompt(report *model.ComparisonReport) string {
	prompt := fmt.Sprintf(`You are summarizing a force-rating comparison for a game modding tool.
The tool computes a combat-power score per unit from its stats and ability text,
then diffs the result against the values documented upstream.

Numbers:
- Units compared: %d (%d documented but missing from the corpus)
- Mean absolute delta: %.2f
- Max absolute delta: %.2f (%s)
- Share within 5%% of documented: %.0f%%

Largest deviations:
`, report.Summary.Units, report.Summary.Missing, report.Summary.MeanAbsDelta,
		report.Summary.MaxAbsDelta, report.Summary.WorstUnit, report.Summary.WithinPercent*100)

	for _, row := range worstRows(report, 5) {
		prompt += fmt.Sprintf("- %s: documented %.0f, computed %.2f (delta %+.2f)\n",
			row.Name, row.Expected, row.Computed, row.Delta)
	}

	prompt += "\nIn 3-4 sentences, describe how well the formula tracks the documented values and which unit classes drive the deviations. Do not invent units or numbers not listed above."
	return prompt
}

func worstRows(report *model.ComparisonReport, n int) []model.ComparisonRow {
	rows := make([]model.ComparisonRow, 0, len(report.Rows))
	for _, row := range report.Rows {
		if !row.Missing {
			rows = append(rows, row)
		}
	}

	// Selection sort for the top few is plenty at corpus scale.
	for i := 0; i < len(rows) && i < n; i++ {
		max := i
		for j := i + 1; j < len(rows); j++ {
			if abs(rows[j].Delta) > abs(rows[max].Delta) {
				max = j
			}
		}
		rows[i], rows[max] = rows[max], rows[i]
	}

	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
