package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Drive.validate(); err != nil {
		return fmt.Errorf("drive: %w", err)
	}
	if err := c.Ingest.validate(); err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	return nil
}

func (c *DriveConfig) validate() error {
	// Partial credentials are a misconfiguration; fully absent credentials
	// are legal here and rejected later by the pipeline with a ConfigError.
	if (c.ServiceAccountEmail == "") != (c.PrivateKey == "") {
		return fmt.Errorf("service_account_email and private_key must be set together")
	}
	if c.ServiceAccountEmail != "" && !strings.Contains(c.ServiceAccountEmail, "@") {
		return fmt.Errorf("service_account_email %q is not an email address", c.ServiceAccountEmail)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if c.TokenURL == "" {
		return fmt.Errorf("token_url must not be empty")
	}
	return nil
}

func (c *IngestConfig) validate() error {
	if c.FilePrefix == "" {
		return fmt.Errorf("file_prefix must not be empty")
	}
	if c.MaxProbes < 1 || c.MaxProbes > 50 {
		return fmt.Errorf("max_probes must be in [1, 50] (got %d)", c.MaxProbes)
	}
	if c.PageSize < 1 || c.PageSize > 1000 {
		return fmt.Errorf("page_size must be in [1, 1000] (got %d)", c.PageSize)
	}
	return nil
}
