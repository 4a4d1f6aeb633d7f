package llm

import (
	"context"
	"fmt"

	"github.com/civmods/forceval/internal/model"
)

// Summarizer attaches an LLM summary to a comparison report.
type Summarizer struct {
	provider Provider
	cfg      model.LLMConfig
}

// NewSummarizer builds a summarizer from config, or returns an error when the
// provider is unknown or misconfigured.
func NewSummarizer(cfg model.LLMConfig) (*Summarizer, error) {
	switch cfg.Provider {
	case "openai":
		provider, err := NewOpenAIProvider(cfg.APIKey, cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		return &Summarizer{provider: provider, cfg: cfg}, nil
	case "":
		return nil, fmt.Errorf("no LLM provider configured")
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}

// Summarize fills in report.LLM. Failures are returned, not fatal: the
// caller decides whether a missing summary should abort anything.
func (s *Summarizer) Summarize(ctx context.Context, report *model.ComparisonReport) error {
	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Report:    report,
		Model:     s.cfg.Model,
		MaxTokens: s.cfg.MaxTokens,
	})
	if err != nil {
		return fmt.Errorf("%s summarize: %w", s.provider.Name(), err)
	}

	report.LLM = &model.LLMSummary{
		Enabled:   true,
		Provider:  s.provider.Name(),
		Model:     resp.Model,
		SummaryMD: resp.Summary,
	}
	return nil
}
