// Package config provides configuration loading and validation for the CLI and API server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-screener/internal/types"
)

// Defaults applied by MergeWithDefaults when a value is unset
const (
	DefaultShortlistThreshold = 70.0
	DefaultEmbeddingModel     = "text-embedding-004"
	DefaultEmbeddingTimeout   = 10
	DefaultPort               = 8080
	DefaultRateLimitPerMinute = 60
	DefaultRateLimitBurst     = 10
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Job        string `json:"job,omitempty"`        // Path to job description text file
	JobURL     string `json:"job_url,omitempty"`    // URL to fetch job description from
	Candidates string `json:"candidates,omitempty"` // Path to candidate records JSON

	// Scoring
	Weights            *types.WeightPercentages `json:"weights,omitempty"`             // Component weights in percent
	NormalizeWeights   bool                     `json:"normalize_weights,omitempty"`   // Rescale weights to sum to 100%
	MinScore           float64                  `json:"min_score,omitempty"`           // Drop candidates below this overall score
	SortBy             string                   `json:"sort_by,omitempty"`             // overall, skills or experience
	TopN               int                      `json:"top_n,omitempty"`               // Keep only the first N candidates
	ShortlistThreshold float64                  `json:"shortlist_threshold,omitempty"` // Overall score needed to be shortlisted
	Parallelism        int                      `json:"parallelism,omitempty"`         // Candidates scored concurrently

	// Similarity backend
	Embedding EmbeddingConfig `json:"embedding,omitempty"`

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	LogJSON     bool   `json:"log_json,omitempty"`     // Emit JSON logs instead of console logs

	Server ServerConfig `json:"server,omitempty"`
}

// EmbeddingConfig configures the vector similarity backend
type EmbeddingConfig struct {
	Enabled        bool   `json:"enabled,omitempty"`
	Model          string `json:"model,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Port               int         `json:"port,omitempty"`
	RateLimitPerMinute int         `json:"rate_limit_per_minute,omitempty"`
	RateLimitBurst     int         `json:"rate_limit_burst,omitempty"`
	RequireAuth        bool        `json:"require_auth,omitempty"`
	Clients            []APIClient `json:"clients,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("config error: 'min_score' must be between 0 and 100")
	}
	if c.ShortlistThreshold < 0 || c.ShortlistThreshold > 100 {
		return fmt.Errorf("config error: 'shortlist_threshold' must be between 0 and 100")
	}
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("config error: 'parallelism' must be non-negative")
	}
	switch c.SortBy {
	case "", "overall", "skills", "experience":
	default:
		return fmt.Errorf("config error: 'sort_by' must be one of overall, skills, experience")
	}

	if c.Embedding.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'embedding.timeout_seconds' must be non-negative")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' out of range")
	}
	if c.Server.RateLimitPerMinute < 0 || c.Server.RateLimitBurst < 0 {
		return fmt.Errorf("config error: rate limits must be non-negative")
	}

	if _, err := c.ResolveWeights(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.Candidates != "" {
		if _, err := os.Stat(c.Candidates); os.IsNotExist(err) {
			return fmt.Errorf("config error: candidates file not found: %s", c.Candidates)
		}
	}

	return nil
}

// ResolveWeights returns the scoring weights as fractions. Unset weights use the defaults;
// with NormalizeWeights set they are rescaled to sum to 1 before validation.
func (c *Config) ResolveWeights() (types.Weights, error) {
	if c.Weights == nil || c.Weights.IsZero() {
		return types.DefaultWeights(), nil
	}

	weights := c.Weights.Weights()
	if c.NormalizeWeights {
		weights = weights.Normalize()
	}
	if err := weights.Validate(); err != nil {
		return types.Weights{}, err
	}
	return weights, nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Candidates == "" {
		result.Candidates = defaults.Candidates
	}
	if result.SortBy == "" {
		result.SortBy = defaults.SortBy
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Embedding.Model == "" {
		result.Embedding.Model = firstNonEmpty(defaults.Embedding.Model, DefaultEmbeddingModel)
	}

	if result.Weights == nil {
		result.Weights = defaults.Weights
	}

	// Numeric fields: use default if zero
	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.Parallelism == 0 {
		result.Parallelism = defaults.Parallelism
	}
	if result.ShortlistThreshold == 0 {
		result.ShortlistThreshold = firstPositive(defaults.ShortlistThreshold, DefaultShortlistThreshold)
	}
	if result.Embedding.TimeoutSeconds == 0 {
		result.Embedding.TimeoutSeconds = int(firstPositive(float64(defaults.Embedding.TimeoutSeconds), DefaultEmbeddingTimeout))
	}
	if result.Server.Port == 0 {
		result.Server.Port = int(firstPositive(float64(defaults.Server.Port), DefaultPort))
	}
	if result.Server.RateLimitPerMinute == 0 {
		result.Server.RateLimitPerMinute = int(firstPositive(float64(defaults.Server.RateLimitPerMinute), DefaultRateLimitPerMinute))
	}
	if result.Server.RateLimitBurst == 0 {
		result.Server.RateLimitBurst = int(firstPositive(float64(defaults.Server.RateLimitBurst), DefaultRateLimitBurst))
	}
	if len(result.Server.Clients) == 0 {
		result.Server.Clients = defaults.Server.Clients
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...float64) float64 {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
