package config

import (
	"fmt"
	"strings"
)

// CloudinaryConfig holds credentials for the media host's Admin API.
type CloudinaryConfig struct {
	CloudName string `koanf:"cloudName"`
	APIKey    string `koanf:"apiKey"`
	APISecret string `koanf:"apiSecret"`
}

// String returns a string representation of the Cloudinary configuration.
// Secrets are never printed.
func (c *CloudinaryConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Cloudinary ---\n")
	b.WriteString(fmt.Sprintf("  cloudName: %s\n", c.CloudName))
	b.WriteString(fmt.Sprintf("  apiKey: %s\n", maskSecret(c.APIKey)))
	b.WriteString(fmt.Sprintf("  apiSecret: %s\n", maskSecret(c.APISecret)))
	return b.String()
}

func (c *CloudinaryConfig) Validate() error {
	if c.CloudName == "" {
		return fmt.Errorf("cloudinary cloud name is not configured")
	}
	if c.APIKey == "" {
		return fmt.Errorf("cloudinary API key is not configured")
	}
	if c.APISecret == "" {
		return fmt.Errorf("cloudinary API secret is not configured")
	}
	return nil
}
