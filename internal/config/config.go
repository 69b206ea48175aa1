// Package config loads csiapi settings from csiapi.yaml, .env and CSIAPI_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CSIAPI_STORE.
const EnvPrefix = "CSIAPI"

// Config is the complete csiapi configuration.
type Config struct {
	// Store is the SQLite file that holds offline models.
	Store string `mapstructure:"store"`
	// Model is the stored model commands work on.
	Model string `mapstructure:"model"`
	// Version is the host version reported by newly created models.
	Version string `mapstructure:"version"`
	// Units are the units of newly created models, e.g. "kN_m_C".
	Units   string        `mapstructure:"units"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text" or "json"
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Store:   "csiapi.db",
		Model:   "model",
		Version: "23.0.0",
		Units:   "kip_in_F",
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads path, or csiapi.yaml from the working directory when path is
// empty. Variables in .env are loaded first and never replace variables
// already set.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	def := Default()
	v.SetDefault("store", def.Store)
	v.SetDefault("model", def.Model)
	v.SetDefault("version", def.Version)
	v.SetDefault("units", def.Units)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("csiapi")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
