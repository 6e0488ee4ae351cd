package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
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
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:analyzer.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Cadence configuration"`

	Analysis AnalysisConfig `yaml:"analysis" json:"analysis" jsonschema:"description=Activity analysis configuration"`

	AI AIConfig `yaml:"ai" json:"ai" jsonschema:"description=AI provider configuration"`
}

// ScheduleConfig holds cadence settings for periodic runs and recovery
type ScheduleConfig struct {
	RunInterval      time.Duration `yaml:"run_interval" json:"run_interval" jsonschema:"default=1h,description=Interval between analysis runs"`
	RecoveryInterval time.Duration `yaml:"recovery_interval" json:"recovery_interval" jsonschema:"default=30m,description=Interval between interrupted-analysis recovery passes"`
	RecoveryTimeout  int           `yaml:"recovery_timeout_minutes" json:"recovery_timeout_minutes" jsonschema:"default=60,description=Minutes of inactivity before an in-progress analysis counts as interrupted"`
	MaxRecoveries    int           `yaml:"max_recoveries" json:"max_recoveries" jsonschema:"default=50,description=Maximum records recovered per pass"`
}

// AnalysisConfig holds thresholds and batch sizing for the analysis pipeline
type AnalysisConfig struct {
	PostThreshold    int `yaml:"post_threshold" json:"post_threshold" jsonschema:"default=5,minimum=1,description=Posts since last analysis required to qualify"`
	MessageThreshold int `yaml:"message_threshold" json:"message_threshold" jsonschema:"default=10,minimum=1,description=Messages since last analysis required to qualify"`
	TimeoutMinutes   int `yaml:"timeout_minutes" json:"timeout_minutes" jsonschema:"default=15,minimum=1,description=Wall-clock budget for one full run"`
	MaxUsersPerRun   int `yaml:"max_users_per_run" json:"max_users_per_run" jsonschema:"default=100,minimum=1,description=Cap on qualifying users per run"`

	InitialBatchSize int `yaml:"initial_batch_size" json:"initial_batch_size" jsonschema:"default=50,minimum=1,description=Starting adaptive batch size"`
	MinBatchSize     int `yaml:"min_batch_size" json:"min_batch_size" jsonschema:"default=10,minimum=1,description=Lower bound for adaptive batch size"`
	MaxBatchSize     int `yaml:"max_batch_size" json:"max_batch_size" jsonschema:"default=200,minimum=1,description=Upper bound for adaptive batch size"`
	MinConcurrency   int `yaml:"min_concurrency" json:"min_concurrency" jsonschema:"default=2,minimum=1,description=Lower bound for batch concurrency"`
	MaxConcurrency   int `yaml:"max_concurrency" json:"max_concurrency" jsonschema:"default=15,minimum=1,description=Upper bound for batch concurrency"`

	MemoryWarningMB float64 `yaml:"memory_warning_mb" json:"memory_warning_mb" jsonschema:"default=512,description=Average heap size that triggers batch shrinking"`
	MinThroughput   float64 `yaml:"min_throughput" json:"min_throughput" jsonschema:"default=0.5,description=Users/second required before growing batches"`
	MinSuccessRate  float64 `yaml:"min_success_rate" json:"min_success_rate" jsonschema:"default=0.9,description=Success rate required before growing batches"`
}

// ProviderConfig describes one AI provider in the chain
type ProviderConfig struct {
	Name              string        `yaml:"name" json:"name" jsonschema:"required,description=Provider identifier used in logs and rate limiting"`
	Kind              string        `yaml:"kind" json:"kind" jsonschema:"default=openai,description=Provider kind (openai or openrouter)"`
	Endpoint          string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey            string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model             string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini)"`
	MaxTokens         int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=1000,description=Maximum tokens in response"`
	Temperature       float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	Timeout           time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	RequestsPerMinute int           `yaml:"requests_per_minute" json:"requests_per_minute" jsonschema:"default=60,description=Sliding-window rate limit for this provider"`
}

// RetryConfig bounds the backoff applied around provider calls
type RetryConfig struct {
	MaxAttempts  int           `yaml:"max_attempts" json:"max_attempts" jsonschema:"default=3,minimum=1,description=Attempts per provider before falling back"`
	InitialDelay time.Duration `yaml:"initial_delay" json:"initial_delay" jsonschema:"default=1s,description=First backoff delay"`
	MaxDelay     time.Duration `yaml:"max_delay" json:"max_delay" jsonschema:"default=30s,description=Backoff delay ceiling"`
}

// AIConfig holds the provider chain and shared AI settings
type AIConfig struct {
	Primary                 ProviderConfig   `yaml:"primary" json:"primary" jsonschema:"description=Primary provider"`
	Fallbacks               []ProviderConfig `yaml:"fallbacks" json:"fallbacks" jsonschema:"description=Ordered fallback providers"`
	Retry                   RetryConfig      `yaml:"retry" json:"retry" jsonschema:"description=Retry/backoff bounds"`
	HealthCheckInterval     time.Duration    `yaml:"health_check_interval" json:"health_check_interval" jsonschema:"default=5m,description=Background provider health probe interval"`
	GlobalRequestsPerMinute int              `yaml:"global_requests_per_minute" json:"global_requests_per_minute" jsonschema:"default=120,description=Sliding-window rate limit across all providers"`
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

	setDefaults(&cfg)

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// schema verification is supplementary, warn but don't fail
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		lgr.Printf("[WARN] config schema validation failed: %v", err)
	}

	return &cfg, nil
}

// Default returns a safe in-process configuration used when no config file is
// available or the provided one fails validation. Callers log the fallback.
func Default() *Config {
	var cfg Config
	cfg.AI.Primary = ProviderConfig{
		Name:   "openai",
		Kind:   "openai",
		APIKey: os.Getenv("OPENAI_API_KEY"),
		Model:  "gpt-4o-mini",
	}
	setDefaults(&cfg)
	return &cfg
}

// setDefaults fills zero values with defaults
func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:analyzer.db?cache=shared&mode=rwc&_txlock=immediate"
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

	if cfg.Schedule.RunInterval == 0 {
		cfg.Schedule.RunInterval = time.Hour
	}
	if cfg.Schedule.RecoveryInterval == 0 {
		cfg.Schedule.RecoveryInterval = 30 * time.Minute
	}
	if cfg.Schedule.RecoveryTimeout == 0 {
		cfg.Schedule.RecoveryTimeout = 60
	}
	if cfg.Schedule.MaxRecoveries == 0 {
		cfg.Schedule.MaxRecoveries = 50
	}

	if cfg.Analysis.PostThreshold == 0 {
		cfg.Analysis.PostThreshold = 5
	}
	if cfg.Analysis.MessageThreshold == 0 {
		cfg.Analysis.MessageThreshold = 10
	}
	if cfg.Analysis.TimeoutMinutes == 0 {
		cfg.Analysis.TimeoutMinutes = 15
	}
	if cfg.Analysis.MaxUsersPerRun == 0 {
		cfg.Analysis.MaxUsersPerRun = 100
	}
	if cfg.Analysis.InitialBatchSize == 0 {
		cfg.Analysis.InitialBatchSize = 50
	}
	if cfg.Analysis.MinBatchSize == 0 {
		cfg.Analysis.MinBatchSize = 10
	}
	if cfg.Analysis.MaxBatchSize == 0 {
		cfg.Analysis.MaxBatchSize = 200
	}
	if cfg.Analysis.MinConcurrency == 0 {
		cfg.Analysis.MinConcurrency = 2
	}
	if cfg.Analysis.MaxConcurrency == 0 {
		cfg.Analysis.MaxConcurrency = 15
	}
	if cfg.Analysis.MemoryWarningMB == 0 {
		cfg.Analysis.MemoryWarningMB = 512
	}
	if cfg.Analysis.MinThroughput == 0 {
		cfg.Analysis.MinThroughput = 0.5
	}
	if cfg.Analysis.MinSuccessRate == 0 {
		cfg.Analysis.MinSuccessRate = 0.9
	}

	setProviderDefaults(&cfg.AI.Primary)
	for i := range cfg.AI.Fallbacks {
		setProviderDefaults(&cfg.AI.Fallbacks[i])
	}
	if cfg.AI.Retry.MaxAttempts == 0 {
		cfg.AI.Retry.MaxAttempts = 3
	}
	if cfg.AI.Retry.InitialDelay == 0 {
		cfg.AI.Retry.InitialDelay = time.Second
	}
	if cfg.AI.Retry.MaxDelay == 0 {
		cfg.AI.Retry.MaxDelay = 30 * time.Second
	}
	if cfg.AI.HealthCheckInterval == 0 {
		cfg.AI.HealthCheckInterval = 5 * time.Minute
	}
	if cfg.AI.GlobalRequestsPerMinute == 0 {
		cfg.AI.GlobalRequestsPerMinute = 120
	}
}

// setProviderDefaults fills zero values for a single provider entry
func setProviderDefaults(p *ProviderConfig) {
	if p.Kind == "" {
		p.Kind = "openai"
	}
	if p.MaxTokens == 0 {
		p.MaxTokens = 1000
	}
	if p.Temperature == 0 {
		p.Temperature = 0.3
	}
	if p.Timeout == 0 {
		p.Timeout = 30 * time.Second
	}
	if p.RequestsPerMinute == 0 {
		p.RequestsPerMinute = 60
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if err := validateProvider(&cfg.AI.Primary, "ai.primary"); err != nil {
		return err
	}
	for i := range cfg.AI.Fallbacks {
		if err := validateProvider(&cfg.AI.Fallbacks[i], fmt.Sprintf("ai.fallbacks[%d]", i)); err != nil {
			return err
		}
	}

	if cfg.AI.Retry.MaxAttempts < 1 {
		return fmt.Errorf("ai.retry.max_attempts must be at least 1")
	}
	if cfg.AI.Retry.InitialDelay <= 0 || cfg.AI.Retry.MaxDelay <= 0 {
		return fmt.Errorf("ai.retry delays must be positive")
	}
	if cfg.AI.Retry.MaxDelay < cfg.AI.Retry.InitialDelay {
		return fmt.Errorf("ai.retry.max_delay must be >= initial_delay")
	}

	if cfg.Analysis.PostThreshold < 1 {
		return fmt.Errorf("analysis.post_threshold must be positive")
	}
	if cfg.Analysis.MessageThreshold < 1 {
		return fmt.Errorf("analysis.message_threshold must be positive")
	}
	if cfg.Analysis.TimeoutMinutes < 1 {
		return fmt.Errorf("analysis.timeout_minutes must be positive")
	}
	if cfg.Analysis.MinBatchSize > cfg.Analysis.MaxBatchSize {
		return fmt.Errorf("analysis.min_batch_size must be <= max_batch_size")
	}
	if cfg.Analysis.InitialBatchSize < cfg.Analysis.MinBatchSize || cfg.Analysis.InitialBatchSize > cfg.Analysis.MaxBatchSize {
		return fmt.Errorf("analysis.initial_batch_size must be within batch size bounds")
	}
	if cfg.Analysis.MinConcurrency > cfg.Analysis.MaxConcurrency {
		return fmt.Errorf("analysis.min_concurrency must be <= max_concurrency")
	}
	if cfg.Analysis.MinSuccessRate < 0 || cfg.Analysis.MinSuccessRate > 1 {
		return fmt.Errorf("analysis.min_success_rate must be between 0 and 1")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// validateProvider checks a single provider entry
func validateProvider(p *ProviderConfig, prefix string) error {
	if p.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if p.Model == "" {
		return fmt.Errorf("%s.model is required", prefix)
	}
	if p.Kind != "openai" && p.Kind != "openrouter" {
		return fmt.Errorf("%s.kind must be openai or openrouter, got %q", prefix, p.Kind)
	}
	if p.Temperature < 0 || p.Temperature > 2 {
		return fmt.Errorf("%s.temperature must be between 0 and 2", prefix)
	}
	if p.RequestsPerMinute < 1 {
		return fmt.Errorf("%s.requests_per_minute must be positive", prefix)
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetAnalysisConfig returns analysis configuration
func (c *Config) GetAnalysisConfig() AnalysisConfig {
	return c.Analysis
}

// GetAIConfig returns AI provider configuration
func (c *Config) GetAIConfig() AIConfig {
	return c.AI
}

// Providers returns the full ordered chain, primary first
func (c *AIConfig) Providers() []ProviderConfig {
	res := make([]ProviderConfig, 0, len(c.Fallbacks)+1)
	res = append(res, c.Primary)
	res = append(res, c.Fallbacks...)
	return res
}
