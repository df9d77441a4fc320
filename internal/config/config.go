package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Data   DataConfig   `yaml:"data" mapstructure:"data"`
	Cache  CacheConfig  `yaml:"cache" mapstructure:"cache"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// DataConfig locates the case table.
type DataConfig struct {
	Path      string `yaml:"path" mapstructure:"path"`
	Sheet     string `yaml:"sheet" mapstructure:"sheet"`
	Delimiter string `yaml:"delimiter" mapstructure:"delimiter"`
	// WaitAttempts is how many times serve tries to load a missing table
	// before giving up.
	WaitAttempts  int `yaml:"wait_attempts" mapstructure:"wait_attempts"`
	WaitBackoffMS int `yaml:"wait_backoff_ms" mapstructure:"wait_backoff_ms"`
}

// CacheConfig configures the canonical table cache. A TTL of zero keeps
// loaded tables until the input file changes.
type CacheConfig struct {
	TTLMinutes int `yaml:"ttl_minutes" mapstructure:"ttl_minutes"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	CORSOrigins    []string `yaml:"cors_origins" mapstructure:"cors_origins"`
	RateLimitRPS   float64  `yaml:"rate_limit_rps" mapstructure:"rate_limit_rps"`
	RateLimitBurst int      `yaml:"rate_limit_burst" mapstructure:"rate_limit_burst"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultDataPath is the case table read when no path is configured.
const DefaultDataPath = "140_greenwashing_cases.csv"

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LITIGATION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data.path", DefaultDataPath)
	v.SetDefault("data.sheet", "")
	v.SetDefault("data.delimiter", ",")
	v.SetDefault("data.wait_attempts", 1)
	v.SetDefault("data.wait_backoff_ms", 500)
	v.SetDefault("cache.ttl_minutes", 0)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.rate_limit_rps", 20.0)
	v.SetDefault("server.rate_limit_burst", 40)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// DelimiterRune returns the configured CSV delimiter, or zero for the default.
func (d DataConfig) DelimiterRune() rune {
	for _, r := range d.Delimiter {
		return r
	}
	return 0
}

// Validate checks the settings a command mode depends on. Modes are "cli"
// and "serve".
func (c *Config) Validate(mode string) error {
	var problems []string

	switch mode {
	case "cli":
	case "serve":
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			problems = append(problems, "server.port must be > 0 and <= 65535")
		}
		if c.Data.WaitAttempts < 1 {
			problems = append(problems, "data.wait_attempts must be >= 1")
		}
		if c.Data.WaitBackoffMS < 0 {
			problems = append(problems, "data.wait_backoff_ms must be >= 0")
		}
		if c.Server.RateLimitRPS < 0 {
			problems = append(problems, "server.rate_limit_rps must be >= 0")
		}
		if c.Server.RateLimitBurst < 0 {
			problems = append(problems, "server.rate_limit_burst must be >= 0")
		}
		if c.Server.RateLimitRPS > 0 && c.Server.RateLimitBurst == 0 {
			problems = append(problems, "server.rate_limit_burst must be > 0 when rate limiting is enabled")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if strings.TrimSpace(c.Data.Path) == "" {
		problems = append(problems, "data.path is required")
	}
	if len([]rune(c.Data.Delimiter)) > 1 {
		problems = append(problems, "data.delimiter must be a single character")
	}
	if c.Cache.TTLMinutes < 0 {
		problems = append(problems, "cache.ttl_minutes must be >= 0")
	}

	if len(problems) > 0 {
		return eris.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
