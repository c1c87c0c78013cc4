// Package config provides centralized configuration for PoliGap. It defines
// typed configuration structures with defaults, validation, and loading from
// YAML files plus POLIGAP_* environment variables.
package config

import (
	"fmt"
	"time"
)

// Config is the complete application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" yaml:"server" json:"server"`
	Database   DatabaseConfig   `mapstructure:"database" yaml:"database" json:"database"`
	Redis      RedisConfig      `mapstructure:"redis" yaml:"redis" json:"redis"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" json:"logging"`
	Analysis   AnalysisConfig   `mapstructure:"analysis" yaml:"analysis" json:"analysis"`
	Summarizer SummarizerConfig `mapstructure:"summarizer" yaml:"summarizer" json:"summarizer"`
}

// ServerConfig defines HTTP server configuration.
type ServerConfig struct {
	Host               string        `mapstructure:"host" yaml:"host" json:"host"`
	Port               int           `mapstructure:"port" yaml:"port" json:"port"`
	Environment        string        `mapstructure:"environment" yaml:"environment" json:"environment"`
	ReadTimeout        time.Duration `mapstructure:"read_timeout" yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout" yaml:"write_timeout" json:"write_timeout"`
	IdleTimeout        time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout" json:"idle_timeout"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
	EnableCORS         bool          `mapstructure:"enable_cors" yaml:"enable_cors" json:"enable_cors"`
	CORSAllowedOrigins []string      `mapstructure:"cors_allowed_origins" yaml:"cors_allowed_origins" json:"cors_allowed_origins"`
	EnableMetrics      bool          `mapstructure:"enable_metrics" yaml:"enable_metrics" json:"enable_metrics"`
}

// Address returns the host:port bind address.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig defines the optional PostgreSQL history store.
type DatabaseConfig struct {
	// Enabled turns analysis persistence on.
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	Host     string `mapstructure:"host" yaml:"host" json:"host"`
	Port     int    `mapstructure:"port" yaml:"port" json:"port"`
	Database string `mapstructure:"database" yaml:"database" json:"database"`
	Username string `mapstructure:"username" yaml:"username" json:"username"`
	Password string `mapstructure:"password" yaml:"password" json:"password"`
	SSLMode  string `mapstructure:"ssl_mode" yaml:"ssl_mode" json:"ssl_mode"`

	MaxOpenConns    int           `mapstructure:"max_open_conns" yaml:"max_open_conns" json:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" yaml:"max_idle_conns" json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime" json:"conn_max_lifetime"`
}

// DSN builds the PostgreSQL connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode)
}

// RedisConfig defines the optional distributed extraction cache.
type RedisConfig struct {
	// Enabled switches the extraction cache from in-memory to Redis.
	Enabled   bool          `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	Addr      string        `mapstructure:"addr" yaml:"addr" json:"addr"`
	Password  string        `mapstructure:"password" yaml:"password" json:"password"`
	DB        int           `mapstructure:"db" yaml:"db" json:"db"`
	PoolSize  int           `mapstructure:"pool_size" yaml:"pool_size" json:"pool_size"`
	KeyPrefix string        `mapstructure:"key_prefix" yaml:"key_prefix" json:"key_prefix"`
	TTL       time.Duration `mapstructure:"ttl" yaml:"ttl" json:"ttl"`
}

// LoggingConfig defines the structured logging setup.
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level" json:"level"`
	Format     string `mapstructure:"format" yaml:"format" json:"format"`
	Output     string `mapstructure:"output" yaml:"output" json:"output"`
	FilePath   string `mapstructure:"file_path" yaml:"file_path" json:"file_path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" json:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days" json:"max_age_days"`
	Compress   bool   `mapstructure:"compress" yaml:"compress" json:"compress"`
}

// AnalysisConfig tunes the analysis pipeline.
type AnalysisConfig struct {
	// TopRecommendations sets the default size of the prioritized gap list.
	TopRecommendations int `mapstructure:"top_recommendations" yaml:"top_recommendations" json:"top_recommendations"`

	// DefaultFrameworks applies when a request names none.
	DefaultFrameworks []string `mapstructure:"default_frameworks" yaml:"default_frameworks" json:"default_frameworks"`

	// DefaultIndustry applies when a request names none.
	DefaultIndustry string `mapstructure:"default_industry" yaml:"default_industry" json:"default_industry"`

	// CatalogOverridePath points at a YAML file replacing built-in rule sets.
	CatalogOverridePath string `mapstructure:"catalog_override_path" yaml:"catalog_override_path" json:"catalog_override_path"`

	// BenchmarkOverridePath points at a YAML file replacing built-in industry
	// benchmark rows.
	BenchmarkOverridePath string `mapstructure:"benchmark_override_path" yaml:"benchmark_override_path" json:"benchmark_override_path"`
}

// SummarizerConfig defines the optional generative summarizer endpoint.
type SummarizerConfig struct {
	Enabled    bool          `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	BaseURL    string        `mapstructure:"base_url" yaml:"base_url" json:"base_url"`
	APIKey     string        `mapstructure:"api_key" yaml:"api_key" json:"api_key"`
	Model      string        `mapstructure:"model" yaml:"model" json:"model"`
	Timeout    time.Duration `mapstructure:"timeout" yaml:"timeout" json:"timeout"`
	MaxRetries int           `mapstructure:"max_retries" yaml:"max_retries" json:"max_retries"`
}

// Validate checks cross-field constraints after loading.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Analysis.TopRecommendations < 1 {
		return fmt.Errorf("analysis.top_recommendations must be positive, got %d", c.Analysis.TopRecommendations)
	}
	if c.Database.Enabled {
		if c.Database.Host == "" || c.Database.Database == "" {
			return fmt.Errorf("database.host and database.database are required when persistence is enabled")
		}
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when the redis cache is enabled")
	}
	if c.Summarizer.Enabled && c.Summarizer.BaseURL == "" {
		return fmt.Errorf("summarizer.base_url is required when the summarizer is enabled")
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
