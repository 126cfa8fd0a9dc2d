package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ytget/vocab-trainer/internal/platform"
)

// Environment variables bound to configuration keys
const (
	EnvAPIKey    = "VOCAB_TRAINER_API_KEY"
	EnvBaseURL   = "VOCAB_TRAINER_BASE_URL"
	EnvLogLevel  = "VOCAB_TRAINER_LOG_LEVEL"
	EnvLogFormat = "VOCAB_TRAINER_LOG_FORMAT"
)

// Default values
const (
	DefaultBaseURL   = "https://dictionaryapi.com/api/v3/references/"
	DefaultUserAgent = "vocab-trainer"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	// FileName is the name of the config file looked up in the search paths
	FileName = "config.yaml"
)

// Config is the file and environment configuration of the application
type Config struct {
	API APIConfig `mapstructure:"api"`
	Log LogConfig `mapstructure:"log"`
}

type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url" validate:"required,url,endswith=/"`
	Key       string        `mapstructure:"key" validate:"required"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gte=0"`
	UserAgent string        `mapstructure:"user_agent"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// Load reads configuration from configFile, or from config.yaml in the working
// directory or the platform config directory when configFile is empty. A
// missing file is not an error; environment variables and defaults still apply.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.AddConfigPath(".")
		if dir, err := platform.ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	setDefaults(v)

	bindings := map[string]string{
		"api.key":      EnvAPIKey,
		"api.base_url": EnvBaseURL,
		"log.level":    EnvLogLevel,
		"log.format":   EnvLogFormat,
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", DefaultBaseURL)
	v.SetDefault("api.timeout", time.Duration(0))
	v.SetDefault("api.user_agent", DefaultUserAgent)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
}

// DefaultPath returns where the config file lives in the platform config directory
func DefaultPath() (string, error) {
	dir, err := platform.ConfigDir()
	if err != nil {
		return "", fmt.Errorf("platform.ConfigDir > %w", err)
	}
	return filepath.Join(dir, FileName), nil
}

// WriteDefault writes a config file with default values and apiKey to path.
// An existing file is only replaced when force is set.
func WriteDefault(path, apiKey string, force bool) error {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("platform.CreateDirectoryIfNotExists > %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.Set("api.key", apiKey)

	write := v.SafeWriteConfigAs
	if force {
		write = v.WriteConfigAs
	}
	if err := write(path); err != nil {
		return fmt.Errorf("failed to write configuration to %s: %w", path, err)
	}
	return os.Chmod(path, platform.DefaultFilePermissions)
}
