package config

import (
	"fmt"
	"strings"
)

// CORSConfig controls which browser origin may call the REST API.
// The storefront SPA is served from a different origin than the API.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowedOrigins"`
}

// String returns a string representation of the CORS configuration.
func (c *CORSConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- CORS ---\n")
	b.WriteString(fmt.Sprintf("  allowedOrigins: %s\n", strings.Join(c.AllowedOrigins, ", ")))
	return b.String()
}

func (c *CORSConfig) Validate() error {
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one allowed CORS origin must be configured")
	}
	return nil
}
