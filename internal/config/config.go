package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the jobmatch API configuration.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	CORS     CORSConfig     `yaml:"cors"`
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`
	Matching MatchingConfig `yaml:"matching"`
	Limits   LimitsConfig   `yaml:"limits"`
	MCP      MCPConfig      `yaml:"mcp"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// CORSConfig lists browser origins allowed to call the API (extension origins included).
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int   `yaml:"port"`
	ReadTimeoutSec  int   `yaml:"read_timeout_sec"`
	WriteTimeoutSec int   `yaml:"write_timeout_sec"`
	ShutdownSec     int   `yaml:"shutdown_timeout_sec"`
	MaxBodyBytes    int64 `yaml:"max_body_bytes"`
}

// DatabaseConfig holds resume storage settings.
type DatabaseConfig struct {
	Driver           string   `yaml:"driver"` // sqlite, redis, valkey (default: sqlite)
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	Standalone       bool     `yaml:"standalone"`
	Path             string   `yaml:"path"` // sqlite file
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	KeyPrefix string `yaml:"key_prefix"`
}

// WeightsConfig overrides scoring constants. Zero values keep the defaults.
type WeightsConfig struct {
	Enriched float64 `yaml:"enriched"`
	Exact    float64 `yaml:"exact"`
	Jaccard  float64 `yaml:"jaccard"`
	Boost    float64 `yaml:"boost"`
	Scale    float64 `yaml:"scale"`
	Cap      int     `yaml:"cap"`
}

// MatchingConfig holds engine settings.
type MatchingConfig struct {
	Weights WeightsConfig `yaml:"weights"`
	// ValidateJobPosting rejects text that does not look like a job description.
	ValidateJobPosting *bool `yaml:"validate_job_posting"`
	// ThesaurusPath points to an optional YAML file merged into the built-in thesaurus.
	ThesaurusPath string `yaml:"thesaurus_path"`
}

// LimitsConfig bounds accepted inputs.
type LimitsConfig struct {
	JobMinChars    int   `yaml:"job_min_chars"`
	JobMaxChars    int   `yaml:"job_max_chars"`
	ResumeMinChars int   `yaml:"resume_min_chars"`
	ResumeMaxBytes int64 `yaml:"resume_max_bytes"`
}

// MCPConfig toggles the MCP endpoint.
type MCPConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration, expanding env variables and applying defaults.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 30
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		c.HTTP.MaxBodyBytes = 1 << 20
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Driver == "sqlite" && c.Database.Path == "" {
		c.Database.Path = filepath.Join("data", "jobmatch.db")
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Storage.KeyPrefix == "" {
		c.Storage.KeyPrefix = "jobmatch:"
	}
	if c.Matching.ValidateJobPosting == nil {
		enabled := true
		c.Matching.ValidateJobPosting = &enabled
	}
	w := &c.Matching.Weights
	if w.Enriched == 0 && w.Exact == 0 && w.Jaccard == 0 {
		w.Enriched, w.Exact, w.Jaccard = 0.7, 0.2, 0.1
	}
	if w.Boost == 0 {
		w.Boost = 0.1
	}
	if w.Scale == 0 {
		w.Scale = 1.5
	}
	if w.Cap == 0 {
		w.Cap = 100
	}
	if c.Limits.JobMinChars <= 0 {
		c.Limits.JobMinChars = 100
	}
	if c.Limits.JobMaxChars <= 0 {
		c.Limits.JobMaxChars = 50000
	}
	if c.Limits.ResumeMinChars <= 0 {
		c.Limits.ResumeMinChars = 100
	}
	if c.Limits.ResumeMaxBytes <= 0 {
		c.Limits.ResumeMaxBytes = 10 << 20
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.Database.Driver {
	case "redis", "valkey":
		if len(c.Database.Addrs) == 0 {
			return fmt.Errorf("database.addrs is required for driver %q", c.Database.Driver)
		}
	case "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("database.path is required for driver \"sqlite\"")
		}
	default:
		return fmt.Errorf("database.driver must be \"sqlite\", \"redis\" or \"valkey\", got %q", c.Database.Driver)
	}
	if c.Limits.JobMinChars > c.Limits.JobMaxChars {
		return fmt.Errorf("limits.job_min_chars (%d) exceeds limits.job_max_chars (%d)",
			c.Limits.JobMinChars, c.Limits.JobMaxChars)
	}
	w := c.Matching.Weights
	if w.Enriched < 0 || w.Exact < 0 || w.Jaccard < 0 || w.Boost < 0 || w.Scale < 0 {
		return fmt.Errorf("matching.weights must be non-negative")
	}
	if w.Cap < 1 || w.Cap > 100 {
		return fmt.Errorf("matching.weights.cap must be between 1 and 100, got %d", w.Cap)
	}
	for _, o := range c.CORS.AllowedOrigins {
		if o == "*" && len(c.Auth.APIKeys) > 0 {
			return fmt.Errorf("cors.allowed_origins must list explicit origins when auth.api_keys is set")
		}
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
