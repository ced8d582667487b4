package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateGroup(); err != nil {
		return err
	}
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validatePoll(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("paths.data_dir must be set")
	}
	return nil
}

func (c *Config) validateGroup() error {
	if c.Group.DefaultID == 0 {
		return errors.New("group.default_id must be non-zero")
	}
	return nil
}

func (c *Config) validateTMDB() error {
	// An empty API key disables enrichment; only reject a configured key
	// pointing at a blank base URL.
	if c.MetadataEnabled() && strings.TrimSpace(c.TMDB.BaseURL) == "" {
		return errors.New("tmdb.base_url must be set when tmdb.api_key is configured")
	}
	return nil
}

func (c *Config) validatePoll() error {
	if c.Poll.DefaultOptions < 1 || c.Poll.DefaultOptions > 10 {
		return fmt.Errorf("poll.default_options must be between 1 and 10, got %d", c.Poll.DefaultOptions)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
