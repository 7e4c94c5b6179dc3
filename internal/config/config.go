package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration shared by the CLI and the web server.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Parser ParserConfig `yaml:"parser"`
	Batch  BatchConfig  `yaml:"batch"`
	Server ServerConfig `yaml:"server"`
}

// LogConfig contains logging settings
type LogConfig struct {
	ErrorFile string `yaml:"error_file"`
	Level     string `yaml:"level"`
}

// ParserConfig contains address parser settings
type ParserConfig struct {
	StrictKeywords bool          `yaml:"strict_keywords"`
	MatchTimeout   time.Duration `yaml:"match_timeout"`
}

// BatchConfig contains batch processing settings
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	APIKey string `yaml:"api_key"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			ErrorFile: "error_logs.log",
			Level:     "info",
		},
		Parser: ParserConfig{
			MatchTimeout: 100 * time.Millisecond,
		},
		Batch: BatchConfig{
			Workers: 4,
		},
		Server: ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in that order of precedence (environment wins).
func Load(filename string) (*Config, error) {
	cfg := DefaultConfig()

	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", filename, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", filename, err)
		}
	}

	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg.applyEnv()

	if cfg.Batch.Workers < 1 {
		cfg.Batch.Workers = 1
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Log.ErrorFile = GetEnv("ADDRESS_ERROR_LOG", c.Log.ErrorFile)
	c.Log.Level = GetEnv("ADDRESS_LOG_LEVEL", c.Log.Level)
	c.Parser.StrictKeywords = GetEnvBool("ADDRESS_STRICT_KEYWORDS", c.Parser.StrictKeywords)
	c.Parser.MatchTimeout = GetEnvDuration("ADDRESS_MATCH_TIMEOUT", c.Parser.MatchTimeout)
	c.Batch.Workers = GetEnvInt("ADDRESS_WORKERS", c.Batch.Workers)
	c.Server.Host = GetEnv("WEB_HOST", c.Server.Host)
	c.Server.Port = GetEnvInt("WEB_PORT", c.Server.Port)
	c.Server.APIKey = GetEnv("API_KEY", c.Server.APIKey)
}
