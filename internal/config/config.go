// Package config loads settings for the palindrome binaries using Viper.
//
// Sources, highest priority first: bound command-line flags, PALINDROME_*
// environment variables (dots become underscores, so server.port is
// PALINDROME_SERVER_PORT), the config file, then defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "PALINDROME"

// DefaultConfigName is looked up in the working directory when no file is given.
const DefaultConfigName = ".palindrome"

type Config struct {
	Normalizer  string       `mapstructure:"normalizer" validate:"oneof=default ascii folding"`
	Format      string       `mapstructure:"format" validate:"oneof=text json yaml"`
	Labels      LabelsConfig `mapstructure:"labels"`
	Server      ServerConfig `mapstructure:"server"`
	Log         LogConfig    `mapstructure:"log"`
	WarmUp      bool         `mapstructure:"warm_up"`
	MaxLineSize int          `mapstructure:"max_line_size" validate:"gte=0"`
	Workers     int          `mapstructure:"workers" validate:"gte=0"` // 0 means one per CPU
}

// LabelsConfig holds the words printed for a verdict.
type LabelsConfig struct {
	Yes string `mapstructure:"yes" validate:"required"`
	No  string `mapstructure:"no" validate:"required"`
}

type ServerConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port" validate:"min=1,max=65535"`
	LivePort       int           `mapstructure:"live_port" validate:"min=0,max=65535"` // 0 disables the live socket
	ReadTimeout    time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	MaxRequestSize int           `mapstructure:"max_request_size" validate:"gt=0"`
	Concurrency    int           `mapstructure:"concurrency" validate:"gte=0"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level" validate:"oneof=debug info warn warning error"`
}

// SetDefaults registers every key with its default so that environment
// overrides reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("normalizer", "default")
	v.SetDefault("format", "text")
	v.SetDefault("labels.yes", "Si")
	v.SetDefault("labels.no", "No")
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.live_port", 8081)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.max_request_size", 1024*1024)
	v.SetDefault("server.concurrency", 0)
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("log.file", "")
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("warm_up", false)
	v.SetDefault("max_line_size", 1024*1024)
	v.SetDefault("workers", 1)
}

// NewViper builds a Viper instance with defaults, environment binding and
// the config file read in. configFile may be empty, in which case a missing
// .palindrome.yml is not an error.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return v, nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Normalizer = strings.ToLower(strings.TrimSpace(cfg.Normalizer))
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New()

// Validate checks field constraints and reports every failing field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s", fe.Namespace(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
