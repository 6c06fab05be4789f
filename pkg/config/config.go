package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:tubescope.db?cache=shared&mode=rwc&_txlock=immediate,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	YouTube struct {
		APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=YouTube Data API key (can use environment variable)"`
		Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=HTTP timeout for listing and enrichment requests"`
		UserAgent   string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Tubescope/1.0,description=User agent for HTTP requests"`
		MaxPerFeed  int           `yaml:"max_per_feed" json:"max_per_feed" jsonschema:"default=15,description=Maximum candidates listed per channel feed"`
		MaxParallel int           `yaml:"max_parallel" json:"max_parallel" jsonschema:"default=5,description=Maximum concurrent channel feed fetches"`
	} `yaml:"youtube" json:"youtube" jsonschema:"description=YouTube listing and enrichment configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for triage and scoring"`

	Ranking RankingConfig `yaml:"ranking" json:"ranking" jsonschema:"description=Ranking pipeline configuration"`
}

// LLMConfig holds settings for the OpenAI-compatible backend
type LLMConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint (empty for api.openai.com)"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=2000,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
}

// RankingConfig holds the pipeline tunables. Zero values fall back to
// the defaults in the ranker package.
type RankingConfig struct {
	PoolCap         int           `yaml:"pool_cap" json:"pool_cap" jsonschema:"default=200,description=Maximum candidate pool size per run"`
	TriageBatchSize int           `yaml:"triage_batch_size" json:"triage_batch_size" jsonschema:"default=25,description=Videos per triage request"`
	ScoreBatchSize  int           `yaml:"score_batch_size" json:"score_batch_size" jsonschema:"default=10,description=Videos per detailed scoring request"`
	EnrichTop       int           `yaml:"enrich_top" json:"enrich_top" jsonschema:"default=20,description=Number of top candidates to enrich and score"`
	RubricTTL       time.Duration `yaml:"rubric_ttl" json:"rubric_ttl" jsonschema:"default=24h,description=Validity window of a compiled rubric"`
	ReputationAlpha float64       `yaml:"reputation_alpha" json:"reputation_alpha" jsonschema:"default=0.1,description=EMA smoothing factor for source pass rate"`
	HighPassRate    float64       `yaml:"high_pass_rate" json:"high_pass_rate" jsonschema:"default=0.8,description=Pass rate above which a source gets a score boost"`
	LowPassRate     float64       `yaml:"low_pass_rate" json:"low_pass_rate" jsonschema:"default=0.3,description=Pass rate below which a source gets demoted"`
	BoostFactor     float64       `yaml:"boost_factor" json:"boost_factor" jsonschema:"default=1.1,description=Score multiplier for sources above the high pass rate"`
	DemoteFactor    float64       `yaml:"demote_factor" json:"demote_factor" jsonschema:"default=0.7,description=Score multiplier for sources below the low pass rate"`
	DiversityAfter  int           `yaml:"diversity_after" json:"diversity_after" jsonschema:"default=3,description=Same-source occurrences before the diversity penalty kicks in"`
	DiversityFactor float64       `yaml:"diversity_factor" json:"diversity_factor" jsonschema:"default=0.8,description=Score multiplier from the repeated same-source occurrence onward"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:tubescope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for youtube
	if cfg.YouTube.Timeout == 0 {
		cfg.YouTube.Timeout = 15 * time.Second
	}
	if cfg.YouTube.UserAgent == "" {
		cfg.YouTube.UserAgent = "Tubescope/1.0"
	}
	if cfg.YouTube.MaxPerFeed == 0 {
		cfg.YouTube.MaxPerFeed = 15
	}
	if cfg.YouTube.MaxParallel == 0 {
		cfg.YouTube.MaxParallel = 5
	}

	// set defaults for LLM
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.3
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 2000
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 60 * time.Second
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	if cfg.Ranking.PoolCap < 0 {
		return fmt.Errorf("ranking.pool_cap must be non-negative")
	}
	if cfg.Ranking.TriageBatchSize < 0 || cfg.Ranking.ScoreBatchSize < 0 {
		return fmt.Errorf("ranking batch sizes must be non-negative")
	}
	if cfg.Ranking.ReputationAlpha < 0 || cfg.Ranking.ReputationAlpha > 1 {
		return fmt.Errorf("ranking.reputation_alpha must be between 0 and 1")
	}
	if cfg.Ranking.HighPassRate < 0 || cfg.Ranking.HighPassRate > 1 {
		return fmt.Errorf("ranking.high_pass_rate must be between 0 and 1")
	}
	if cfg.Ranking.LowPassRate < 0 || cfg.Ranking.LowPassRate > 1 {
		return fmt.Errorf("ranking.low_pass_rate must be between 0 and 1")
	}
	if cfg.Ranking.BoostFactor < 0 || cfg.Ranking.DemoteFactor < 0 || cfg.Ranking.DiversityFactor < 0 {
		return fmt.Errorf("ranking factors must be non-negative")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetRankingConfig returns ranking pipeline configuration
func (c *Config) GetRankingConfig() RankingConfig {
	return c.Ranking
}
