package model

import "time"

// Config is the full forceval configuration.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" json:"http"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Sources     SourcesConfig     `yaml:"sources" json:"sources"`
	Weights     Weights           `yaml:"weights" json:"weights"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// HTTPConfig controls the fetcher.
type HTTPConfig struct {
	Timeout           time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent         string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	InsecureTLS       bool          `yaml:"insecure_tls" json:"insecure_tls"`
	RequestsPerSecond float64       `yaml:"requests_per_second" json:"requests_per_second"`
	HTTPProxy         string        `yaml:"http_proxy,omitempty" json:"http_proxy,omitempty"`
	HTTPSProxy        string        `yaml:"https_proxy,omitempty" json:"https_proxy,omitempty"`
	NoProxy           string        `yaml:"no_proxy,omitempty" json:"no_proxy,omitempty"`
}

// CacheConfig controls caching of fetched corpus documents.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// SourcesConfig holds the upstream corpus and reference document URLs.
// Defaults are pinned to the Unciv commit the reference table was written
// against, so computed-vs-documented comparisons stay reproducible.
type SourcesConfig struct {
	UnitsURL     string `yaml:"units_url" json:"units_url"`
	ReferenceURL string `yaml:"reference_url" json:"reference_url"`
}

// ConcurrencyConfig bounds the worker pool used by the tuner.
type ConcurrencyConfig struct {
	TuneWorkers int `yaml:"tune_workers" json:"tune_workers"`
}

// LLMConfig configures the optional report summarizer. Disabled unless a
// provider is set; never affects computed numbers.
type LLMConfig struct {
	Provider  string `yaml:"provider,omitempty" json:"provider,omitempty"`
	Model     string `yaml:"model,omitempty" json:"model,omitempty"`
	APIKey    string `yaml:"-" json:"-"`
	BaseURL   string `yaml:"base_url,omitempty" json:"base_url,omitempty"`
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// Weights are the force formula constants. The upstream reference document
// has gone through several mutually inconsistent revisions, so none of these
// are treated as immutable law: they can be overridden from the config file
// and grid-searched by the tuner.
type Weights struct {
	RangedExponent   float64 `yaml:"ranged_exponent" json:"ranged_exponent"`
	MeleeExponent    float64 `yaml:"melee_exponent" json:"melee_exponent"`
	MovementExponent float64 `yaml:"movement_exponent" json:"movement_exponent"`

	RangedNavalFactor  float64 `yaml:"ranged_naval_factor" json:"ranged_naval_factor"`
	SelfDestructFactor float64 `yaml:"self_destruct_factor" json:"self_destruct_factor"`
	ParadropFactor     float64 `yaml:"paradrop_factor" json:"paradrop_factor"`
	SetUpFactor        float64 `yaml:"set_up_factor" json:"set_up_factor"`

	CityAttackWeight float64 `yaml:"city_attack_weight" json:"city_attack_weight"`
	AttackVsWeight   float64 `yaml:"attack_vs_weight" json:"attack_vs_weight"`
	AttackWeight     float64 `yaml:"attack_weight" json:"attack_weight"`
	DefendWeight     float64 `yaml:"defend_weight" json:"defend_weight"`
	TerrainWeight    float64 `yaml:"terrain_weight" json:"terrain_weight"`

	ExtraAttackWeight float64 `yaml:"extra_attack_weight" json:"extra_attack_weight"`
	NukeBonus         float64 `yaml:"nuke_bonus" json:"nuke_bonus"`
}

// The Unciv commit the G&K reference table was generated from.
const pinnedCommit = "b57046317937f566c5b4d9c2d2c317183bc60c9f"

// DefaultWeights returns the formula constants from the most recent revision
// of the upstream force-rating document.
func DefaultWeights() Weights {
	return Weights{
		RangedExponent:     1.45,
		MeleeExponent:      1.5,
		MovementExponent:   0.3,
		RangedNavalFactor:  0.5,
		SelfDestructFactor: 0.5,
		ParadropFactor:     1.25,
		SetUpFactor:        0.8,
		CityAttackWeight:   0.5,
		AttackVsWeight:     0.25,
		AttackWeight:       0.5,
		DefendWeight:       0.5,
		TerrainWeight:      0.5,
		ExtraAttackWeight:  0.2,
		NukeBonus:          4000,
	}
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:           2 * time.Minute,
			UserAgent:         "Forceval/0.2 (+https://github.com/civmods/forceval)",
			MaxBodyBytes:      2_000_000,
			RequestsPerSecond: 2,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Sources: SourcesConfig{
			UnitsURL:     "https://raw.githubusercontent.com/yairm210/Unciv/" + pinnedCommit + "/android/assets/jsons/Civ%20V%20-%20Vanilla/Units.json",
			ReferenceURL: "https://raw.githubusercontent.com/yairm210/Unciv/" + pinnedCommit + "/docs/Other/Force-rating-calculation.md",
		},
		Weights: DefaultWeights(),
		Concurrency: ConcurrencyConfig{
			TuneWorkers: 4,
		},
		LLM: LLMConfig{
			MaxTokens: 1000,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
