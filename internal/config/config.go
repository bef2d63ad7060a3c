// Package config loads the settings of the symcalc tool server.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/njchilds90/symcalc/internal/logging"
)

// Environment variables
const (
	ENV_CONFIG_FILE    = "SYMCALC_CONFIG_FILE"
	ENV_PORT           = "SYMCALC_PORT"
	ENV_GIN_DEBUG      = "SYMCALC_GIN_DEBUG"
	ENV_LOG_LEVEL      = "SYMCALC_LOG_LEVEL"
	ENV_LOG_FILE       = "SYMCALC_LOG_FILE"
	ENV_AUTO_SIMPLIFY  = "SYMCALC_AUTO_SIMPLIFY"
	ENV_MAX_BODY_BYTES = "SYMCALC_MAX_BODY_BYTES"
	ENV_MAX_DIFF_ORDER = "SYMCALC_MAX_DIFF_ORDER"
)

type Config struct {
	Port         string         `yaml:"port"`
	GinDebugMode bool           `yaml:"gin_debug_mode"`
	AutoSimplify bool           `yaml:"auto_simplify"`
	MaxBodyBytes int64          `yaml:"max_body_bytes"`
	MaxDiffOrder int            `yaml:"max_diff_order"`
	Logging      logging.Config `yaml:"logging"`
}

func Default() Config {
	return Config{
		Port:         "8080",
		AutoSimplify: true,
		MaxBodyBytes: 1 << 20, // 1 MiB
		MaxDiffOrder: 8,
		Logging: logging.Config{
			Level:      "info",
			MaxSize:    100,
			MaxAge:     28,
			MaxBackups: 3,
		},
	}
}

// Load reads an optional .env file, then the YAML file named by
// SYMCALC_CONFIG_FILE, then applies the remaining environment overrides on
// top of Default().
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	conf := Default()
	if path := os.Getenv(ENV_CONFIG_FILE); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := Parse(data, &conf); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&conf); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// Parse overlays the YAML document in data onto conf. Unknown keys are an
// error.
func Parse(data []byte, conf *Config) error {
	if err := yaml.UnmarshalStrict(data, conf); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

func applyEnv(conf *Config) error {
	if v := os.Getenv(ENV_PORT); v != "" {
		conf.Port = v
	}
	if v := os.Getenv(ENV_LOG_LEVEL); v != "" {
		conf.Logging.Level = v
	}
	if v := os.Getenv(ENV_LOG_FILE); v != "" {
		conf.Logging.Filename = v
	}
	if v := os.Getenv(ENV_GIN_DEBUG); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", ENV_GIN_DEBUG, err)
		}
		conf.GinDebugMode = b
	}
	if v := os.Getenv(ENV_AUTO_SIMPLIFY); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", ENV_AUTO_SIMPLIFY, err)
		}
		conf.AutoSimplify = b
	}
	if v := os.Getenv(ENV_MAX_BODY_BYTES); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer", ENV_MAX_BODY_BYTES)
		}
		conf.MaxBodyBytes = n
	}
	if v := os.Getenv(ENV_MAX_DIFF_ORDER); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer", ENV_MAX_DIFF_ORDER)
		}
		conf.MaxDiffOrder = n
	}
	return nil
}
