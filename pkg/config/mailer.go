package config

import (
	"fmt"
	"strings"
)

// MailerConfig holds credentials and addressing for outbound email.
type MailerConfig struct {
	APIKey string `koanf:"apiKey"`
	From   string `koanf:"from"`
	To     string `koanf:"to"`
}

// String returns a string representation of the mailer configuration.
// The API key is never printed.
func (c *MailerConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Mailer ---\n")
	b.WriteString(fmt.Sprintf("  from: %s\n", c.From))
	b.WriteString(fmt.Sprintf("  to: %s\n", c.To))
	b.WriteString(fmt.Sprintf("  apiKey: %s\n", maskSecret(c.APIKey)))
	return b.String()
}

func (c *MailerConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("mailer API key is not configured")
	}
	if c.From == "" {
		return fmt.Errorf("mailer sender address is not configured")
	}
	if c.To == "" {
		return fmt.Errorf("mailer recipient address is not configured")
	}
	return nil
}

func maskSecret(s string) string {
	if s == "" {
		return "<not configured>"
	}
	return "****"
}
