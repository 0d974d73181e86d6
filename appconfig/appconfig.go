// Package appconfig holds the runtime configuration of the service.
//
// Configuration is loaded once at process start and exposed through Get().
// Secrets (the JWT signing key, the database URI) are only ever sourced
// from the environment, never compiled into the binary.
package appconfig

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort     = "8080"
	defaultTokenTTL = 168 * time.Hour // 7 days

	// minSecretKeyLength matches the HS256 key size requirement: a
	// shorter secret weakens the signature beyond what the algorithm
	// promises.
	minSecretKeyLength = 32
)

type Config struct {
	port         string
	jwtSecretKey []byte
	tokenTTL     time.Duration
	postgresURI  string

	isLoaded bool
}

var runtimeConfig Config

// Load reads a .env file if present, validates the environment and sets
// the process-wide configuration. It must be called before Get().
func Load() error {
	// A missing .env file is fine; the environment may be set by the host.
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY env is required")
	}
	if len(secret) < minSecretKeyLength {
		return fmt.Errorf("JWT_SECRET_KEY env must be at least %d bytes, got %d", minSecretKeyLength, len(secret))
	}

	pgURI := os.Getenv("POSTGRES_DB_URI")
	if pgURI == "" {
		return fmt.Errorf("POSTGRES_DB_URI env is required")
	}

	tokenTTL := defaultTokenTTL
	if ttl := os.Getenv("JWT_TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return fmt.Errorf("JWT_TOKEN_TTL env is not a valid duration: %v", err)
		}
		if d <= 0 {
			return fmt.Errorf("JWT_TOKEN_TTL env must be positive, got %v", d)
		}
		tokenTTL = d
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	runtimeConfig = Config{
		port:         port,
		jwtSecretKey: []byte(secret),
		tokenTTL:     tokenTTL,
		postgresURI:  pgURI,
		isLoaded:     true,
	}
	return nil
}

func Get() Config { return runtimeConfig }

func (c Config) IsLoaded() bool          { return c.isLoaded }
func (c Config) JWTSecretKey() []byte    { return c.jwtSecretKey }
func (c Config) TokenTTL() time.Duration { return c.tokenTTL }
func (c Config) PgURI() string           { return c.postgresURI }
func (c Config) BindAddr() string        { return ":" + c.port }
