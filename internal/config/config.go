package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const devSessionSecret = "dev-session-secret-change-me"

// Config contains the server configuration, read from the environment.
type Config struct {
	Port       string    `env:"PORT" envDefault:"5005"`
	Env        string    `env:"ENV" envDefault:"development"`
	LogLevel   int       `env:"LOG_LEVEL" envDefault:"0"`
	BcryptCost int       `env:"BCRYPT_COST" envDefault:"12"`
	Database   Database  `envPrefix:"DB_"`
	Redis      Redis     `envPrefix:"REDIS_"`
	Session    Session   `envPrefix:"SESSION_"`
	RateLimit  RateLimit `envPrefix:"RATE_LIMIT_"`
	CORS       CORS      `envPrefix:"CORS_"`

	// TrustedProxies lists the CIDRs whose X-Forwarded-For entries are
	// believed. Empty means the connection address is the client.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// Database contains the Postgres connection parameters.
type Database struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD" envDefault:"postgres"`
	Name     string `env:"NAME" envDefault:"typingsite"`
	Port     string `env:"PORT" envDefault:"5432"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
}

// Redis contains the session store connection parameters.
type Redis struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	TLS      bool   `env:"TLS" envDefault:"false"`
}

// Session contains session lifetime and token signing parameters.
type Session struct {
	Secret       string        `env:"SECRET" envDefault:"dev-session-secret-change-me"`
	TTL          time.Duration `env:"TTL" envDefault:"1h"`
	MaxAge       time.Duration `env:"MAX_AGE" envDefault:"24h"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`
}

type RateLimit struct {
	RPS   float64 `env:"RPS" envDefault:"5"`
	Burst int     `env:"BURST" envDefault:"10"`
}

type CORS struct {
	Origins []string `env:"ORIGINS" envDefault:"*" envSeparator:","`
}

// DSN builds the Postgres DSN the gorm driver expects.
func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

// LoadDotEnv loads variables from .env files into the process environment.
// Variables already set are not overridden.
func LoadDotEnv(files ...string) error {
	return godotenv.Load(files...)
}

// NewConfig parses the configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Env == "production" && c.Session.Secret == devSessionSecret {
		return errors.New("SESSION_SECRET must be set in production")
	}
	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.Session.MaxAge < c.Session.TTL {
		return errors.New("SESSION_MAX_AGE must not be shorter than SESSION_TTL")
	}
	for _, cidr := range c.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			return fmt.Errorf("TRUSTED_PROXIES: %w", err)
		}
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", c.BcryptCost)
	}
	return nil
}
