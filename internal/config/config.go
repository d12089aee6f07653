// Package config loads application configuration from an optional YAML
// file layered over built-in defaults, then validates the result.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// The MTA's static subway schedule. It represents the normal schedule
// and is updated a few times a year.
const defaultGTFSURL = "https://rrgtfsfeeds.s3.amazonaws.com/gtfs_subway.zip"

// Base URL for the GTFS-Realtime feeds. The base serves the numbered
// lines; the lettered lines append a group suffix with a hyphen.
const defaultFeedBaseURL = "https://api-endpoint.mta.info/Dataservice/mtagtfsfeeds/nyct%2Fgtfs"

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	GTFS     GTFSConfig     `yaml:"gtfs"`
	Realtime RealtimeConfig `yaml:"realtime"`
}

type ServerConfig struct {
	Port int    `yaml:"port" validate:"min=1,max=65535"`
	Env  string `yaml:"env" validate:"oneof=development staging production test"`
}

type GTFSConfig struct {
	// Source is a URL or a local file path to a static GTFS zip.
	Source string `yaml:"source" validate:"required"`
}

type RealtimeConfig struct {
	BaseURL             string `yaml:"base_url" validate:"required,url"`
	PollIntervalSeconds int    `yaml:"poll_interval_seconds" validate:"min=5,max=120"`
	ArrivalsPerRoute    int    `yaml:"arrivals_per_route" validate:"min=1,max=10"`
}

// PollInterval returns the monitor poll interval as a duration.
func (c RealtimeConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 4000,
			Env:  "development",
		},
		GTFS: GTFSConfig{
			Source: defaultGTFSURL,
		},
		Realtime: RealtimeConfig{
			BaseURL:             defaultFeedBaseURL,
			PollIntervalSeconds: 10,
			ArrivalsPerRoute:    2,
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. An empty path returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration's bounds.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
