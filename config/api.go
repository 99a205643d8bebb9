package config

import "fmt"

// APIConfig defines settings for the HTTP API server.
type APIConfig struct {
	// Address is the listen address, e.g. ":8080".
	Address string `json:"address"`
	// AuthToken, when set, requires a matching Bearer token on every request.
	AuthToken string `json:"auth_token"`
	// PromAddress, when set, exposes Prometheus metrics on a separate listener.
	PromAddress string `json:"prom_address"`
}

// SetDefaults applies sane defaults.
func (c *APIConfig) SetDefaults() {
	if c.Address == "" {
		c.Address = ":8080"
	}
}

// Validate checks mandatory fields.
func (c APIConfig) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("address is required")
	}
	return nil
}
