package notifier

import (
	"strings"

	"github.com/mayasbakes/bakehouse/pkg/config"
	"github.com/mayasbakes/bakehouse/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

// Config is the configuration of the notifier worker.
type Config struct {
	Log        config.LogConfig        `koanf:"log"`
	Nats       config.NATSConfig       `koanf:"nats"`
	Subscriber config.SubscriberConfig `koanf:"subscriber"`
	Mailer     config.MailerConfig     `koanf:"mailer"`
	PProf      config.PProfConfig      `koanf:"pprof"`
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.Log.String())
	b.WriteString(c.Nats.String())
	b.WriteString(c.Subscriber.String())
	b.WriteString(c.Mailer.String())
	b.WriteString(c.PProf.String())
	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Nats.Validate(); err != nil {
		return err
	}
	if err := c.Subscriber.Validate(); err != nil {
		return err
	}
	if err := c.Mailer.Validate(); err != nil {
		return err
	}
	if err := c.PProf.Validate(); err != nil {
		return err
	}
	return nil
}
