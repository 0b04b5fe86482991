package config

import (
	"fmt"
	"strings"
)

// AdminConfig holds the shared token protecting the admin triage endpoints.
type AdminConfig struct {
	Token string `koanf:"token"`
}

// String returns a string representation of the admin configuration.
// The token itself is never printed.
func (c *AdminConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Admin ---\n")
	b.WriteString(fmt.Sprintf("  token: %s\n", maskSecret(c.Token)))
	return b.String()
}

func (c *AdminConfig) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("admin token is not configured")
	}
	return nil
}
