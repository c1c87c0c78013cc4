package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoaderOptions controls where configuration is read from.
type LoaderOptions struct {
	// ConfigFile is an explicit config file path; empty searches defaults.
	ConfigFile string

	// ConfigPaths are extra directories searched for config.yaml.
	ConfigPaths []string

	// EnvPrefix overrides the POLIGAP environment variable prefix.
	EnvPrefix string
}

// Load reads configuration from file and environment, applies defaults, and
// validates the result. A missing config file is fine; defaults plus
// environment variables still apply.
func Load(opts LoaderOptions) (*Config, error) {
	v := viper.New()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/poligap")
		for _, path := range opts.ConfigPaths {
			v.AddConfigPath(path)
		}
	}

	envPrefix := opts.EnvPrefix
	if envPrefix == "" {
		envPrefix = "POLIGAP"
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "15s")
	v.SetDefault("server.enable_cors", true)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("server.enable_metrics", true)

	v.SetDefault("database.enabled", false)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.key_prefix", "poligap:extraction:")
	v.SetDefault("redis.ttl", "1h")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")
	v.SetDefault("logging.max_size_mb", 100)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age_days", 28)

	v.SetDefault("analysis.top_recommendations", 5)
	v.SetDefault("analysis.default_frameworks", []string{"GDPR", "HIPAA", "SOX"})
	v.SetDefault("analysis.default_industry", "Technology")

	v.SetDefault("summarizer.enabled", false)
	v.SetDefault("summarizer.model", "gemini-1.5-flash")
	v.SetDefault("summarizer.timeout", "30s")
	v.SetDefault("summarizer.max_retries", 2)
}
