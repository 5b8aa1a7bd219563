// Package config loads process configuration for convokit applications. A
// .env file is applied first (best effort), then environment variables with
// the CONVOKIT_ prefix and an optional convokit.yaml override the defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/hupe1980/convokit/logging"
)

// Config carries every tunable the pipeline wiring needs.
type Config struct {
	// StorePath is the context store snapshot file.
	StorePath string `mapstructure:"store_path"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// LogFormat is json or text.
	LogFormat string `mapstructure:"log_format"`
	// TranslateEndpoint overrides the translation endpoint.
	TranslateEndpoint string `mapstructure:"translate_endpoint"`
	// TranslateTimeout bounds one translation round trip.
	TranslateTimeout time.Duration `mapstructure:"translate_timeout"`
	// Mode is the default assistant persona.
	Mode string `mapstructure:"mode"`
}

// Options configure loading.
type Options struct {
	// EnvFile is the dotenv file applied before reading the environment.
	// Missing files are ignored. Defaults to ".env".
	EnvFile string
	// ConfigPaths are searched for an optional convokit.yaml.
	ConfigPaths []string
}

// Load reads the configuration with defaults suitable for local development.
func Load(optFns ...func(o *Options)) (*Config, error) {
	opts := Options{EnvFile: ".env", ConfigPaths: []string{"."}}
	for _, fn := range optFns {
		fn(&opts)
	}

	_ = godotenv.Load(opts.EnvFile)

	v := viper.New()
	v.SetDefault("store_path", "data/contexts.json")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("translate_endpoint", "")
	v.SetDefault("translate_timeout", 10*time.Second)
	v.SetDefault("mode", "assistant")

	v.SetEnvPrefix("convokit")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("convokit")
	v.SetConfigType("yaml")
	for _, p := range opts.ConfigPaths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Level converts the configured log level string to a logging.LogLevel.
func (c *Config) Level() logging.LogLevel {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return logging.LogLevelDebug
	case "warn", "warning":
		return logging.LogLevelWarn
	case "error":
		return logging.LogLevelError
	default:
		return logging.LogLevelInfo
	}
}
