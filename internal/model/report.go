package model

import "time"

// ComparisonReport is the result of diffing computed force ratings against
// the documented values in the upstream reference table.
type ComparisonReport struct {
	UnitsURL     string    `json:"units_url"`
	ReferenceURL string    `json:"reference_url"`
	FetchedAt    time.Time `json:"fetched_at"`
	FetchMeta    FetchMeta `json:"fetch_meta"`

	Weights Weights         `json:"weights"`
	Rows    []ComparisonRow `json:"rows"`
	Summary ComparisonStats `json:"summary"`

	LLM *LLMSummary `json:"llm,omitempty"`
}

// FetchMeta carries HTTP metadata from fetching the unit corpus.
type FetchMeta struct {
	StatusCode   int    `json:"status_code"`
	ContentType  string `json:"content_type,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
	ETag         string `json:"etag,omitempty"`
}

// ComparisonRow is one unit's computed-vs-documented result.
type ComparisonRow struct {
	Name      string         `json:"name"`
	Expected  float64        `json:"expected"`
	Computed  float64        `json:"computed,omitempty"`
	Delta     float64        `json:"delta,omitempty"`
	Missing   bool           `json:"missing,omitempty"` // documented but absent from the corpus
	Modifiers ModifierRecord `json:"modifiers"`
}

// ComparisonStats aggregates the per-unit deltas.
type ComparisonStats struct {
	Units         int     `json:"units"`
	Missing       int     `json:"missing"`
	MeanAbsDelta  float64 `json:"mean_abs_delta"`
	MaxAbsDelta   float64 `json:"max_abs_delta"`
	WorstUnit     string  `json:"worst_unit,omitempty"`
	WithinPercent float64 `json:"within_5_percent"` // share of units within 5% of documented
}

// TuneResult is one evaluated candidate from the weight grid search.
type TuneResult struct {
	Weights      Weights `json:"weights"`
	MeanAbsDelta float64 `json:"mean_abs_delta"`
}

// TuneReport is the outcome of a grid search over formula weights.
type TuneReport struct {
	Candidates int          `json:"candidates"`
	Best       TuneResult   `json:"best"`
	Baseline   TuneResult   `json:"baseline"`
	Top        []TuneResult `json:"top,omitempty"`
}

// LLMSummary is the optional model-generated commentary on a report.
// It never affects computed numbers and is rendered separately.
type LLMSummary struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
