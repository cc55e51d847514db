package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel  int      `env:"LOG_LEVEL" envDefault:"0"`
	LogFormat string   `env:"LOG_FORMAT" envDefault:"text"`
	HTTP      HTTP     `envPrefix:"HTTP_"`
	Database  Database `envPrefix:"DATABASE_"`
	JWT       JWT      `envPrefix:"JWT_"`
	Cache     Cache    `envPrefix:"CACHE_"`
	Hasher    Hasher   `envPrefix:"HASHER_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"8000"`
	APIPrefix          string `env:"API_PREFIX" envDefault:"/api/v1"`
	MaxPayloadSize     int64  `env:"MAX_PAYLOAD_SIZE" envDefault:"1048576"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Database contains storage connection parameters.
type Database struct {
	Driver   string `env:"DRIVER" envDefault:"postgres"`
	User     string `env:"USER" envDefault:"user"`
	Password string `env:"PASSWORD" envDefault:"password"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	Name     string `env:"NAME" envDefault:"social_media_db"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"`
	// DSN overrides the connection string assembled from the fields above.
	DSN string `env:"DSN"`
	// Path is the database file used by the sqlite driver.
	Path string `env:"PATH" envDefault:"postfeed.db"`
}

// ConnString returns the postgres connection string.
func (d Database) ConnString() string {
	if d.DSN != "" {
		return d.DSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

// JWT contains JWT-related parameters.
type JWT struct {
	Secret     string `env:"SECRET" envDefault:"your-secret-key-for-jwt"`
	Algorithm  string `env:"ALGORITHM" envDefault:"HS256"`
	TTLMinutes int    `env:"TTL_MINUTES" envDefault:"30"`
}

// TTL returns the access token lifetime.
func (j JWT) TTL() time.Duration {
	return time.Duration(j.TTLMinutes) * time.Minute
}

// Cache contains post list cache parameters.
type Cache struct {
	TTLSeconds int `env:"TTL_SECONDS" envDefault:"300"`
}

// TTL returns the cache entry lifetime.
func (c Cache) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// Hasher contains password hashing parameters.
type Hasher struct {
	Algorithm  string `env:"ALGORITHM" envDefault:"argon2id"`
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"12"`
}

// NewConfig loads configuration from an optional .env file and environment
// variables. Variables already set in the environment win over .env.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unknown database driver %q", c.Database.Driver))
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}

	switch c.JWT.Algorithm {
	case "HS256", "HS384", "HS512":
	default:
		errs = append(errs, fmt.Errorf("unsupported jwt algorithm %q", c.JWT.Algorithm))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt secret is empty"))
	}
	if c.JWT.TTLMinutes <= 0 {
		errs = append(errs, errors.New("jwt ttl must be positive"))
	}
	if c.Cache.TTLSeconds <= 0 {
		errs = append(errs, errors.New("cache ttl must be positive"))
	}
	if c.HTTP.MaxPayloadSize <= 0 {
		errs = append(errs, errors.New("max payload size must be positive"))
	}

	switch c.Hasher.Algorithm {
	case "argon2id":
	case "bcrypt":
		if c.Hasher.BcryptCost < 4 || c.Hasher.BcryptCost > 31 {
			errs = append(errs, fmt.Errorf("bcrypt cost %d out of range", c.Hasher.BcryptCost))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported hasher algorithm %q", c.Hasher.Algorithm))
	}

	return errors.Join(errs...)
}
