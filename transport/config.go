package transport

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ledgerpay/ledgerpay-go/logger"
	"github.com/ledgerpay/ledgerpay-go/version"
)

const (
	defaultTimeout = 30 * time.Second
)

// Config configures the transport. It is copied at construction time and
// never mutated afterwards; resource clients hold only an immutable
// reference to the resulting Transport.
type Config struct {
	// Endpoint is the API base URL prepended to all request paths.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`

	// AuthToken is the static API token sent as a Bearer credential.
	AuthToken string `yaml:"auth_token" mapstructure:"auth_token"`

	// Timeout is the per-request timeout. Defaults to 30s. Ignored when
	// HTTPClient is supplied.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// UserAgent overrides the default User-Agent header.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// Logger receives debug logs for each request. Nil means silent.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`

	// HTTPClient overrides the underlying *http.Client.
	HTTPClient *http.Client `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent()
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("transport: endpoint is required")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("transport: endpoint must be a valid http(s) URL (got: %s)", c.Endpoint)
	}
	if c.AuthToken == "" {
		return fmt.Errorf("transport: auth token is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("transport: timeout must not be negative")
	}
	return nil
}
