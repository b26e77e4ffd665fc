package model

import "time"

// Config is the complete tool configuration
type Config struct {
	LLM     LLMConfig     `yaml:"llm" json:"llm"`
	Dataset DatasetConfig `yaml:"dataset" json:"dataset"`
	Output  OutputConfig  `yaml:"output" json:"output"`
}

// LLMConfig configures the inference backend
type LLMConfig struct {
	// APIKey for the OpenAI API (falls back to OPENAI_API_KEY)
	APIKey string `yaml:"api_key,omitempty" json:"api_key,omitempty"`

	// Model name
	Model string `yaml:"model" json:"model"`

	// BaseURL for custom endpoints (used by tests)
	BaseURL string `yaml:"base_url,omitempty" json:"base_url,omitempty"`

	// Timeout for a single API request, in seconds
	Timeout int `yaml:"timeout" json:"timeout"`

	// MaxRetries is the number of additional attempts after the first
	MaxRetries int `yaml:"max_retries" json:"max_retries"`

	// Temperature for sampling (kept low to favor determinism)
	Temperature float32 `yaml:"temperature" json:"temperature"`

	// MaxTokens limits the response length
	MaxTokens int `yaml:"max_tokens" json:"max_tokens"`
}

// DatasetConfig configures recipe/review loading
type DatasetConfig struct {
	// RecipeDir holds one <recipe_id>.json file per recipe
	RecipeDir string `yaml:"recipe_dir" json:"recipe_dir"`

	// CacheTTL for parsed recipes held in memory
	CacheTTL time.Duration `yaml:"cache_ttl" json:"cache_ttl"`

	// CacheCleanup interval for expired entries
	CacheCleanup time.Duration `yaml:"cache_cleanup" json:"cache_cleanup"`
}

// OutputConfig controls CLI output behavior
type OutputConfig struct {
	Verbose bool `yaml:"verbose" json:"verbose"`

	// Pretty enables human-readable (console) diagnostics instead of JSON lines
	Pretty bool `yaml:"pretty" json:"pretty"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		LLM: LLMConfig{
			Model:       "gpt-4o-mini",
			Timeout:     30,
			MaxRetries:  2,
			Temperature: 0.1,
			MaxTokens:   2000,
		},
		Dataset: DatasetConfig{
			RecipeDir:    "./recipes",
			CacheTTL:     10 * time.Minute,
			CacheCleanup: 15 * time.Minute,
		},
		Output: OutputConfig{},
	}
}
