package config

import (
	"fmt"
	"time"
)

// NATSConfig holds the broker connection settings.
type NATSConfig struct {
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

// String returns a string representation of the NATS configuration.
func (c *NATSConfig) String() string {
	return fmt.Sprintf("\n--- NATS ---\n  url: %s\n  timeout: %s\n", c.URL, c.Timeout)
}

func (c *NATSConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("NATS URL is not configured")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("NATS dial timeout is not configured")
	}
	return nil
}
