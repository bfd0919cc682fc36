package sender

import (
	"fmt"

	"github.com/vrischmann/envconfig"
)

type envOverrides struct {
	Host string `envconfig:"optional,STATSD_HOST"`
	Port int    `envconfig:"optional,STATSD_PORT"`
}

// ApplyEnv overrides cfg's Host and Port from the STATSD_HOST and
// STATSD_PORT environment variables when those are set. A malformed port
// value fails with ErrInvalidConfig rather than falling back silently.
func ApplyEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Init(&env); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if env.Host != "" {
		cfg.Host = env.Host
	}
	if env.Port != 0 {
		cfg.Port = env.Port
	}
	return nil
}

// ConfigFromEnv returns DefaultConfig with any environment overrides applied.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
