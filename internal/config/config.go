// Package config loads CLI defaults from FORMDECOR_* environment variables.
// Command-line flags take precedence over the values loaded here.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Prefix is prepended to every variable name.
const Prefix = "FORMDECOR_"

// Config carries the env-configurable defaults for both CLIs.
type Config struct {
	BaseURL     string        `env:"BASE_URL"     envDefault:"/"`
	Eager       bool          `env:"EAGER"`
	Selection   string        `env:"SELECTION"`
	FormID      string        `env:"FORM_ID"      envDefault:"form"`
	Field       string        `env:"FIELD"        envDefault:"team"`
	Label       string        `env:"LABEL"`
	LogoPrefix  string        `env:"LOGO_PREFIX"  envDefault:"/nfl_logos"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	Verbose     bool          `env:"VERBOSE"`

	Logos LogosConfig `envPrefix:"LOGOS_"`
}

// LogosConfig configures the logo downloader.
type LogosConfig struct {
	BaseURL string        `env:"BASE_URL"`
	Dir     string        `env:"DIR"   envDefault:"nfl_logos"`
	Delay   time.Duration `env:"DELAY" envDefault:"500ms"`
}

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{Prefix: Prefix})
}

// LoadFrom parses an explicit environment map, ignoring the process env.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}
