package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppPort     string `env:"APP_PORT" envDefault:"8080"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Identity provider (GoTrue-style aggregate auth API).
	AuthBaseURL   string `env:"AUTH_BASE_URL,required"`
	AuthAnonKey   string `env:"AUTH_ANON_KEY,required"`
	AuthJWTSecret string `env:"AUTH_JWT_SECRET,required"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	DatabaseDSN string `env:"DATABASE_DSN,required"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsDevelopment reports whether the service runs in a local/dev
// deployment. Only the redirect resolver consults this.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}
