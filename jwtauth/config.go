package jwtauth

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Config holds immutable configuration for signing and verifying tokens.
// The shared secret comes in through an option at process start; it is
// deliberately not readable back out of the package.
type Config struct {
	secret          []byte
	tokenTTL        time.Duration
	clockSkewLeeway time.Duration
	cookieName      string
	logger          *zap.Logger
}

// ConfigOption is a functional option for configuring the codec and gate
type ConfigOption func(*Config) error

// NewConfig creates a new immutable configuration with the given options
func NewConfig(opts ...ConfigOption) (*Config, error) {
	cfg := &Config{
		tokenTTL:        168 * time.Hour, // 7 days
		clockSkewLeeway: 60 * time.Second,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, NewValidationError(ErrConfigError, fmt.Sprintf("configuration error: %v", err), err)
		}
	}

	if len(cfg.secret) == 0 {
		return nil, NewValidationError(ErrConfigError, "a signing secret must be configured (use WithSecret)", nil)
	}

	return cfg, nil
}

// WithSecret configures the HMAC-SHA256 shared secret used to sign and
// verify tokens. Callers load it from runtime configuration.
func WithSecret(secret []byte) ConfigOption {
	return func(c *Config) error {
		if len(secret) < 32 {
			return fmt.Errorf("secret must be at least 32 bytes (256 bits), got %d bytes", len(secret))
		}
		c.secret = secret
		return nil
	}
}

// WithTokenTTL sets how long newly signed tokens stay valid
func WithTokenTTL(ttl time.Duration) ConfigOption {
	return func(c *Config) error {
		if ttl <= 0 {
			return fmt.Errorf("token TTL must be positive, got %v", ttl)
		}
		c.tokenTTL = ttl
		return nil
	}
}

// WithClockSkew sets the clock skew tolerance for exp validation
func WithClockSkew(skew time.Duration) ConfigOption {
	return func(c *Config) error {
		if skew < 0 {
			return fmt.Errorf("clock skew must be non-negative, got %v", skew)
		}
		c.clockSkewLeeway = skew
		return nil
	}
}

// WithCookie enables token extraction from a cookie with the given name,
// as a fallback when the Authorization header is absent
func WithCookie(cookieName string) ConfigOption {
	return func(c *Config) error {
		c.cookieName = cookieName
		return nil
	}
}

// WithLogger sets a structured logger for security events
func WithLogger(logger *zap.Logger) ConfigOption {
	return func(c *Config) error {
		c.logger = logger
		return nil
	}
}

// Getter methods for internal use

func (c *Config) TokenTTL() time.Duration {
	return c.tokenTTL
}

func (c *Config) ClockSkewLeeway() time.Duration {
	return c.clockSkewLeeway
}

func (c *Config) CookieName() string {
	return c.cookieName
}

func (c *Config) Logger() *zap.Logger {
	return c.logger
}
