package client

import (
	"fmt"
	"time"

	"github.com/kbukum/httpcall/version"
)

const defaultTimeout = 30 * time.Second

// Config configures a Service.
type Config struct {
	// Name identifies the service in logs, traces, and metrics.
	// Defaults to "httpcall".
	Name string `yaml:"name" mapstructure:"name" validate:"omitempty,max=64"`

	// Timeout is the per-request timeout applied when the Service builds
	// its own transport client. Ignored when a custom Doer is supplied.
	// Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to every request that does not
	// already carry the key.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// UserAgent is sent when neither the request nor Headers carries a
	// User-Agent. Defaults to version.UserAgent().
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "httpcall"
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent()
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("client: timeout must be positive")
	}
	for key := range c.Headers {
		if restrictedHeaders[canonicalKey(key)] {
			return fmt.Errorf("client: default header %q is reserved by the transport", key)
		}
	}
	return nil
}
