package config

import (
	"fmt"
	"time"
)

// SubscriberConfig holds the pull consumer settings for a JetStream subscriber.
type SubscriberConfig struct {
	Stream   string        `koanf:"stream"`
	Subject  string        `koanf:"subject"`
	Consumer string        `koanf:"consumer"`
	Batch    int           `koanf:"batch"`
	Timeout  time.Duration `koanf:"timeout"`
	Interval time.Duration `koanf:"interval"`
	Workers  int           `koanf:"workers"`
}

// String returns a string representation of the subscriber configuration.
func (c *SubscriberConfig) String() string {
	return fmt.Sprintf(
		"\n--- NATS Subscriber ---\n  stream: %s\n  subject: %s\n  consumer: %s\n  batch: %d\n  timeout: %s\n  interval: %s\n  workers: %d\n",
		c.Stream, c.Subject, c.Consumer, c.Batch, c.Timeout, c.Interval, c.Workers,
	)
}

func (c *SubscriberConfig) Validate() error {
	names := map[string]string{
		"stream":   c.Stream,
		"subject":  c.Subject,
		"consumer": c.Consumer,
	}
	for field, value := range names {
		if value == "" {
			return fmt.Errorf("SubscriberConfig: %s is not configured", field)
		}
	}
	if c.Batch <= 0 {
		return fmt.Errorf("SubscriberConfig: batch must be greater than zero")
	}
	if c.Timeout <= 0 || c.Interval <= 0 {
		return fmt.Errorf("SubscriberConfig: timeout and interval must be greater than zero")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("SubscriberConfig: workers must be greater than zero")
	}
	return nil
}
