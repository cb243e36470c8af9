package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var Empty = new(Config)

type Config struct {
	AppName      string `envconfig:"APP_NAME" default:"Movieland API"`
	AppEnv       string `envconfig:"APP_ENV" default:"local"`
	Debug        bool   `envconfig:"DEBUG"`
	Port         int    `envconfig:"PORT" default:"8000"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`
	RateLimit    int    `envconfig:"RATE_LIMIT"`

	DB struct {
		Driver    string `envconfig:"DB_DRIVER" default:"sqlite"`
		Path      string `envconfig:"DB_PATH" default:"data/movies.db"`
		Name      string `envconfig:"DB_NAME"`
		Host      string `envconfig:"DB_HOST"`
		Port      int    `envconfig:"DB_PORT" default:"5432"`
		User      string `envconfig:"DB_USER"`
		Pass      string `envconfig:"DB_PASS"`
		EnableSSL bool   `envconfig:"ENABLE_SSL"`
		LogSQL    bool   `envconfig:"DB_LOG_SQL"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}
