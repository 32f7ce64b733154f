// Package config loads the moltscope API configuration from per-environment
// YAML files with ${VAR} expansion.
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

// Config holds the moltscope API configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Corpus  CorpusConfig  `yaml:"corpus"`
	Auth    AuthConfig    `yaml:"auth"`
	Query   QueryConfig   `yaml:"query"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// CorpusConfig selects and parameterizes the corpus source.
type CorpusConfig struct {
	Source  string      `yaml:"source"`   // file, redis (default: file)
	DataDir string      `yaml:"data_dir"` // file source: directory with the JSON sequences
	Redis   RedisConfig `yaml:"redis"`
}

// RedisConfig holds redis corpus source settings.
type RedisConfig struct {
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	DB               int      `yaml:"db"`
	KeyPrefix        string   `yaml:"key_prefix"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// QueryConfig holds query defaults and caps.
type QueryConfig struct {
	DefaultPageSize  int `yaml:"default_page_size"`
	MaxPageSize      int `yaml:"max_page_size"`
	DefaultTopLimit  int `yaml:"default_top_limit"`
	DefaultBins      int `yaml:"default_bins"`
	MaxBins          int `yaml:"max_bins"`
	DefaultNeighbors int `yaml:"default_neighbors"`
	MaxNeighbors     int `yaml:"max_neighbors"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
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

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
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
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Corpus.Source == "" {
		c.Corpus.Source = "file"
	}
	if c.Corpus.DataDir == "" {
		c.Corpus.DataDir = "data"
	}
	if c.Corpus.Redis.KeyPrefix == "" {
		c.Corpus.Redis.KeyPrefix = "moltscope:corpus:"
	}
	if c.Corpus.Redis.ReadinessTimeout <= 0 {
		c.Corpus.Redis.ReadinessTimeout = 10
	}
	if c.Query.DefaultPageSize <= 0 {
		c.Query.DefaultPageSize = 50
	}
	if c.Query.MaxPageSize <= 0 {
		c.Query.MaxPageSize = 500
	}
	if c.Query.DefaultTopLimit <= 0 {
		c.Query.DefaultTopLimit = 20
	}
	if c.Query.DefaultBins <= 0 {
		c.Query.DefaultBins = 20
	}
	if c.Query.MaxBins <= 0 {
		c.Query.MaxBins = 200
	}
	if c.Query.DefaultNeighbors <= 0 {
		c.Query.DefaultNeighbors = 10
	}
	if c.Query.MaxNeighbors <= 0 {
		c.Query.MaxNeighbors = 100
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.Corpus.Source {
	case "file":
		if c.Corpus.DataDir == "" {
			return fmt.Errorf("corpus.data_dir is required for the file source")
		}
	case "redis":
		if len(c.Corpus.Redis.Addrs) == 0 {
			return fmt.Errorf("corpus.redis.addrs is required for the redis source")
		}
	default:
		return fmt.Errorf("corpus.source must be \"file\" or \"redis\", got %q", c.Corpus.Source)
	}
	if c.Query.DefaultPageSize > c.Query.MaxPageSize {
		return fmt.Errorf("query.default_page_size exceeds query.max_page_size")
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
