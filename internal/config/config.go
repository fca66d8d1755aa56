package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"error"`
	LogFile   string    `yaml:"log-file" env:"LOG_FILE"`
	NoColor   bool      `yaml:"no-color" env:"TICTACTOE_NO_COLOR" env-default:"false"`
	Marks     Marks     `yaml:"marks"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type Marks struct {
	First  string `yaml:"first" env:"MARK_FIRST" env-default:"o"`
	Second string `yaml:"second" env:"MARK_SECOND" env-default:"x"`
}

type Telemetry struct {
	Enabled  bool   `yaml:"enabled" env:"TELEMETRY_ENABLED" env-default:"false"`
	Endpoint string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load reads the YAML file at path with environment overrides. A missing file
// is not an error: defaults and the environment apply alone.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	}

	// NO_COLOR disables colors whenever it is set to anything non-empty.
	if os.Getenv("NO_COLOR") != "" {
		config.NoColor = true
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
