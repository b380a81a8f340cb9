package config

import (
	"fmt"

	"github.com/kbukum/httpcall/client"
	"github.com/kbukum/httpcall/logger"
	"github.com/kbukum/httpcall/middleware"
)

// Config is the top-level configuration for an httpcall client stack.
type Config struct {
	// Name identifies the client in logs, traces, and metrics.
	Name string `yaml:"name" mapstructure:"name" validate:"required,max=64"`

	// Client configures the underlying Service.
	Client client.Config `yaml:"client" mapstructure:"client"`

	// Auth configures the authorization middleware. Type "none" (or empty)
	// disables it.
	Auth AuthConfig `yaml:"auth" mapstructure:"auth"`

	// Logging configures the logger used by the logging middleware.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Client.Name == "" {
		c.Client.Name = c.Name
	}
	c.Client.ApplyDefaults()
	c.Logging.ApplyDefaults()
}

// Validate checks the whole configuration tree.
func (c *Config) Validate() error {
	if err := ValidateStruct(c); err != nil {
		return err
	}
	if err := c.Client.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// AuthConfig configures request authorization.
type AuthConfig struct {
	// Type is one of "none", "bearer", "basic", "apikey".
	Type string `yaml:"type" mapstructure:"type" validate:"omitempty,oneof=none bearer basic apikey"`
	// Token is the bearer token (type "bearer").
	Token string `yaml:"token" mapstructure:"token"`
	// Username is the basic auth username (type "basic").
	Username string `yaml:"username" mapstructure:"username"`
	// Password is the basic auth password (type "basic").
	Password string `yaml:"password" mapstructure:"password"`
	// Header is the API key header name (type "apikey"). Defaults to
	// "X-API-Key".
	Header string `yaml:"header" mapstructure:"header"`
	// Key is the API key value (type "apikey").
	Key string `yaml:"key" mapstructure:"key"`
}

// Validate checks that the fields required by the selected type are set.
func (a *AuthConfig) Validate() error {
	switch a.Type {
	case "", "none":
		return nil
	case "bearer":
		if a.Token == "" {
			return fmt.Errorf("config: auth.token is required for bearer auth")
		}
	case "basic":
		if a.Username == "" {
			return fmt.Errorf("config: auth.username is required for basic auth")
		}
	case "apikey":
		if a.Key == "" {
			return fmt.Errorf("config: auth.key is required for apikey auth")
		}
	default:
		return fmt.Errorf("config: auth.type %q is not supported", a.Type)
	}
	return nil
}

// Middleware returns the authorization middleware for this config, or nil
// when authorization is disabled.
func (a *AuthConfig) Middleware() middleware.Middleware {
	switch a.Type {
	case "bearer":
		return middleware.WithBearerAuth(a.Token)
	case "basic":
		return middleware.WithBasicAuth(a.Username, a.Password)
	case "apikey":
		return middleware.WithAPIKeyAuth(a.Header, a.Key)
	default:
		return nil
	}
}
