package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string `env:"SERVER_PORT, default=8080"`
	Env        string `env:"ENV,         default=development"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`

	MySQLDSN  string `env:"MYSQL_DSN, default=user:password@tcp(localhost:3306)/perpus?charset=utf8mb4&parseTime=True&loc=Local"`
	JWTSecret string `env:"JWT_SECRET, default=change-me"`

	Redis RedisConfig
	SMTP  SMTPConfig

	SwaggerHost string `env:"SWAGGER_HOST"`
}

// RedisConfig configures the token store and read cache.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	DB       int    `env:"REDIS_DB,   default=0"`
	Password string `env:"REDIS_PASSWORD"`
}

// SMTPConfig configures outbound OTP mail. When Host is empty the mailer
// falls back to logging messages instead of sending them.
type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM, default=perpus@mail.co"`
}

// Load builds Config from the environment.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
