package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs every access token; treated as an opaque value.
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=1h"`

	// BasicRealm is returned in WWW-Authenticate on Basic Auth failures.
	BasicRealm string `env:"BASIC_REALM, default=Restricted"`

	// SeedUsers lists the startup accounts as
	// "username:password:role,username:password:role". Passwords are
	// hashed during seeding and the plaintext is discarded.
	SeedUsers string `env:"SEED_USERS, default=user1:password:user,admin1:password:admin"`

	Redis RedisConfig
}

// RedisConfig configures the optional external revocation list. An
// empty Addr leaves revocation checking unwired.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
