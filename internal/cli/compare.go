package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/civmods/forceval/internal/llm"
	"github.com/civmods/forceval/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	compareJSON     string
	compareMD       string
	compareTimeout  time.Duration
	compareNoCache  bool
	compareNoFooter bool
	compareInsecure bool
	compareUnitsURL string
	compareRefURL   string
	compareLLM      string
	compareLLMModel string
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Diff computed force ratings against the documented reference",
	Long: `Compare fetches the unit corpus and the upstream force-rating document,
computes every documented unit's force, and reports per-unit deltas.

By default both documents come from the pinned Unciv commit the reference
table was written against; point --units-url at another mod's corpus to
validate a mod instead.

Example:
  forceval compare
  forceval compare --json report.json --md report.md
  forceval compare --llm openai --llm-model gpt-4o-mini --md report.md`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVar(&compareJSON, "json", "", "output JSON path (optional)")
	compareCmd.Flags().StringVar(&compareMD, "md", "", "output Markdown path (optional)")
	compareCmd.Flags().DurationVar(&compareTimeout, "timeout", 2*time.Minute, "overall run timeout")
	compareCmd.Flags().BoolVar(&compareNoCache, "no-cache", false, "disable cache (force fresh fetch)")
	compareCmd.Flags().BoolVar(&compareNoFooter, "no-footer", false, "disable footer in Markdown reports")
	compareCmd.Flags().BoolVar(&compareInsecure, "insecure", false, "skip TLS certificate verification")
	compareCmd.Flags().StringVar(&compareUnitsURL, "units-url", "", "override unit corpus URL")
	compareCmd.Flags().StringVar(&compareRefURL, "reference-url", "", "override reference document URL")
	compareCmd.Flags().StringVar(&compareLLM, "llm", "", "LLM provider for report summary (openai)")
	compareCmd.Flags().StringVar(&compareLLMModel, "llm-model", "", "LLM model name")
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), compareTimeout)
	defer cancel()

	cfg := loadConfig()
	cfg.HTTP.Timeout = compareTimeout
	cfg.HTTP.InsecureTLS = compareInsecure
	if compareNoCache {
		cfg.Cache.Enabled = false
	}
	if compareUnitsURL != "" {
		cfg.Sources.UnitsURL = compareUnitsURL
	}
	if compareRefURL != "" {
		cfg.Sources.ReferenceURL = compareRefURL
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Corpus:    %s\n", cfg.Sources.UnitsURL)
		fmt.Fprintf(os.Stderr, "Reference: %s\n", cfg.Sources.ReferenceURL)
		fmt.Fprintf(os.Stderr, "Cache:     %v\n\n", cfg.Cache.Enabled)
	}

	report, err := pipeline.New(cfg).Compare(ctx)
	if err != nil {
		return fmt.Errorf("compare failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Compared %d units (%d missing from corpus)\n",
			report.Summary.Units, report.Summary.Missing)
	}

	if compareLLM != "" {
		cfg.LLM.Provider = compareLLM
		cfg.LLM.Model = compareLLMModel
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")

		summarizer, err := llm.NewSummarizer(cfg.LLM)
		if err != nil {
			return err
		}
		if err := summarizer.Summarize(ctx, report); err != nil {
			// The numbers stand on their own; a failed summary is a warning.
			fmt.Fprintf(os.Stderr, "Warning: LLM summary failed: %v\n", err)
		} else if verbose {
			fmt.Fprintf(os.Stderr, "✓ Generated summary using %s/%s\n",
				report.LLM.Provider, report.LLM.Model)
		}
	}

	renderer := pipeline.NewRenderer(!compareNoFooter)
	renderer.WriteText(os.Stdout, report)

	if compareJSON != "" {
		if err := renderer.RenderJSON(report, compareJSON); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", compareJSON)
		}
	}
	if compareMD != "" {
		if err := renderer.RenderMarkdown(report, compareMD); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", compareMD)
		}
	}

	return nil
}
