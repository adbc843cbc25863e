package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the full service configuration, read from the environment.
type Config struct {
	AppPort int    `env:"APP_PORT" env-default:"8080"`
	LogFile string `env:"LOG_FILE" env-default:"hraccess.log"`

	PostgresHost     string `env:"POSTGRES_HOST" env-default:"localhost"`
	PostgresPort     int    `env:"POSTGRES_PORT" env-default:"5432"`
	PostgresUser     string `env:"POSTGRES_USER" env-default:"hraccess"`
	PostgresPassword string `env:"POSTGRES_PASSWORD"`
	PostgresDB       string `env:"POSTGRES_DB" env-default:"hraccess"`

	RedisHost     string `env:"REDIS_HOST" env-default:"localhost"`
	RedisPort     int    `env:"REDIS_PORT" env-default:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	JWTSecret   string        `env:"JWT_SECRET" env-required:"true"`
	StorageRoot string        `env:"STORAGE_ROOT" env-default:"./storage"`
	CacheTTL    time.Duration `env:"CACHE_TTL" env-default:"30m"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
